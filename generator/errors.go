// SPDX-License-Identifier: MIT
// Package: motif/generator
//
// errors.go - sentinel errors for the generator package.
//
// Error policy:
//   - Generators themselves never fail; out-of-range knobs are clamped.
//   - Only the registry and name parsing return errors, always wrapping one
//     of these sentinels with %w and a method prefix (see constants.go).
//   - Option constructors panic on nil arguments; that is a programmer error.

package generator

import "errors"

// ErrUnknownKind indicates a kind name or value outside the fixed set.
// Usage: if errors.Is(err, ErrUnknownKind) { /* reject request */ }.
var ErrUnknownKind = errors.New("generator: unknown kind")

// ErrNilParams indicates Dispatch received nil (or a typed nil pointer).
var ErrNilParams = errors.New("generator: nil params")
