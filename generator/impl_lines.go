// SPDX-License-Identifier: MIT
// Package: motif/generator
//
// impl_lines.go - parallel stripes at an arbitrary angle.
//
// Branches (selected on the normalised angle, never on division results):
//   - Horizontal (|sin| < axisEpsilon): square tile of side AxisLines*spacing,
//     stripe i at y = (i+0.5)*spacing, spanning the full width.
//   - Vertical (|cos| < axisEpsilon): the transposed case.
//   - Diagonal: tile T = clamp(|spacing/sin|, MinDiagonalTile, MaxDiagonalTile),
//     at least ceil(T/spacing)+2 stripes at normal offsets (i - n/2)*spacing
//     from the tile centre, each 2T long so it crosses the whole tile. When T
//     is clamped up, extra stripes are added until the corners are covered.
//
// Jitter shifts each stripe by (r-0.5)*Jitter*spacing along its normal; one
// draw per stripe, always taken. Dash renders as stroke-dasharray.
//
// Complexity: O(stripes); stripes <= 2*MaxDiagonalTile/MinLineSpacing + 3.

package generator

import (
	"math"
	"strings"

	"github.com/samber/lo"

	"github.com/katalvlaran/motif/rng"
	"github.com/katalvlaran/motif/shape"
)

func lines(p LinesParams, colors ColorConfig, cfg config) Result {
	src, seed := cfg.source(p.Seed)
	st := cfg.style(colors, false, p.StrokeWidth, p.Opacity)

	return finish(linesFrame(p, st, src), seed)
}

func linesFrame(p LinesParams, st shape.Style, src *rng.Source) frame {
	spacing := math.Max(positiveOr(p.Spacing, DefaultLineSpacing), MinLineSpacing)
	jitter := finiteOr(p.Jitter, 0) * spacing
	angle := normalizeAngle(p.AngleDeg)
	sin, cos := math.Sincos(angle * math.Pi / halfTurnDeg)

	var f frame
	switch {
	case math.Abs(sin) < axisEpsilon:
		f = axisLines(spacing, jitter, src, st, true)
	case math.Abs(cos) < axisEpsilon:
		f = axisLines(spacing, jitter, src, st, false)
	default:
		f = diagonalLines(spacing, jitter, sin, cos, src, st)
	}

	if dash := dashArray(p.Dash); dash != "" {
		for i := range f.prims {
			f.prims[i] = f.prims[i].With("stroke-dasharray", dash)
		}
	}

	return f
}

// normalizeAngle maps degrees into [0, 180); non-finite input maps to 0.
func normalizeAngle(deg float64) float64 {
	a := math.Mod(finiteOr(deg, 0), halfTurnDeg)
	if a < 0 {
		a += halfTurnDeg
	}

	return a
}

func axisLines(spacing, jitter float64, src *rng.Source, st shape.Style, horizontal bool) frame {
	size := spacing * AxisLines
	prims := make([]shape.Primitive, 0, AxisLines)
	for i := 0; i < AxisLines; i++ {
		pos := (float64(i)+half)*spacing + (src.Next()-half)*jitter
		if horizontal {
			prims = append(prims, shape.Line(0, pos, size, pos, st))
		} else {
			prims = append(prims, shape.Line(pos, 0, pos, size, st))
		}
	}

	return frame{width: size, height: size, prims: prims}
}

func diagonalLines(spacing, jitter, sin, cos float64, src *rng.Source, st shape.Style) frame {
	size := clampf(math.Abs(spacing/sin), MinDiagonalTile, MaxDiagonalTile)
	first, last := diagonalSpan(size, spacing, sin, cos)
	centre := size * half
	nx, ny := -sin, cos // unit normal

	count := int(last-first) + 1
	prims := make([]shape.Primitive, 0, count)
	for i := 0; i < count; i++ {
		off := (first+float64(i))*spacing + (src.Next()-half)*jitter
		px, py := centre+nx*off, centre+ny*off
		prims = append(prims, shape.Line(px-cos*size, py-sin*size, px+cos*size, py+sin*size, st))
	}

	return frame{width: size, height: size, prims: prims}
}

// diagonalSpan returns the first and last stripe index, in units of spacing
// from the tile centre. The base set has ceil(size/spacing)+extraDiagonal
// stripes; it grows on either end until the stripes reach the tile corners,
// which project to +-(size/2)(|sin|+|cos|) on the normal.
func diagonalSpan(size, spacing, sin, cos float64) (first, last float64) {
	count := math.Ceil(size/spacing) + extraDiagonal
	reach := size * half * (math.Abs(sin) + math.Abs(cos))
	first = -count * half
	last = first + count - 1
	for (first-1)*spacing >= -reach {
		first--
	}
	for (last+1)*spacing <= reach {
		last++
	}

	return first, last
}

// dashArray formats positive finite dash lengths; "" disables dashing.
func dashArray(dash []float64) string {
	parts := lo.FilterMap(dash, func(d float64, _ int) (string, bool) {
		return shape.Num(d), isFinite(d) && d > 0
	})

	return strings.Join(parts, " ")
}
