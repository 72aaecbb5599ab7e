// SPDX-License-Identifier: MIT
// Package: motif/engine

package engine

import "errors"

// ErrCanceled indicates the context ended before a request was rendered.
// The context's own error is wrapped alongside it.
var ErrCanceled = errors.New("engine: canceled")
