// SPDX-License-Identifier: MIT
// Package: motif/shape

package shape

import "errors"

// ErrUnknownShape indicates a shape name that ParseKind does not recognise.
var ErrUnknownShape = errors.New("shape: unknown shape")
