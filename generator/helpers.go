// SPDX-License-Identifier: MIT
// Package: motif/generator
//
// helpers.go - numeric guards shared by the impl files.
//
// Every knob passes through one of these before it reaches geometry, which
// is how the package keeps NaN and Inf out of documents.

package generator

import (
	"math"

	"github.com/samber/lo"
)

// isFinite reports whether v is neither NaN nor infinite.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// finiteOr returns v if finite, otherwise def.
func finiteOr(v, def float64) float64 {
	return lo.Ternary(isFinite(v), v, def)
}

// positiveOr returns v if it is finite and > 0, otherwise def.
func positiveOr(v, def float64) float64 {
	return lo.Ternary(isFinite(v) && v > 0, v, def)
}

// clampf clamps v into [low, high]; non-finite v maps to low.
func clampf(v, low, high float64) float64 {
	return lo.Clamp(finiteOr(v, low), low, high)
}

// clampi clamps v into [low, high].
func clampi(v, low, high int) int {
	return lo.Clamp(v, low, high)
}
