// SPDX-License-Identifier: MIT
// Package: motif/preset

package preset

import "errors"

var (
	// ErrNoPatterns indicates a preset file without any pattern entries.
	ErrNoPatterns = errors.New("preset: no patterns")
	// ErrMissingName indicates a pattern entry without a name.
	ErrMissingName = errors.New("preset: pattern name is required")
	// ErrBadName indicates a name that cannot serve as a file name.
	ErrBadName = errors.New("preset: pattern name must be a plain file name")
	// ErrDuplicateName indicates two entries sharing a name.
	ErrDuplicateName = errors.New("preset: duplicate pattern name")
	// ErrMissingKind indicates a pattern entry without a kind.
	ErrMissingKind = errors.New("preset: pattern kind is required")
	// ErrKnobsAndParams indicates an entry that sets both knobs and params.
	ErrKnobsAndParams = errors.New("preset: knobs and params are mutually exclusive")
)
