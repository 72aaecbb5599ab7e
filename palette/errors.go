// SPDX-License-Identifier: MIT
// Package: motif/palette
//
// errors.go - sentinel errors for palette construction and loading.
//
// Resolve itself never returns errors; these surface only from New/Load.

package palette

import "errors"

// ErrBadColor indicates a role paint that looks like a hex colour but does not parse.
var ErrBadColor = errors.New("palette: invalid colour literal")

// ErrEmptyToken indicates a role with an empty or blank name.
var ErrEmptyToken = errors.New("palette: empty token")
