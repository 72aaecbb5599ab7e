// SPDX-License-Identifier: MIT
// Package: motif/generator
//
// impl_parallelogram.go - one horizontally sheared rectangle per tile.
//
// Geometry: shear = Height*tan(Skew). The top edge is shifted right by shear
// relative to the bottom edge. The tile is Width+|shear|+2*Gap by
// Height+2*Gap, so the shape sits centred with a Gap margin on every side.
//
// Skew is clamped to [-MaxSkew, MaxSkew]; tan() is unbounded at 90 degrees.
// No randomness is consumed.

package generator

import (
	"math"

	"github.com/katalvlaran/motif/shape"
)

func parallelogram(p ParallelogramParams, colors ColorConfig, cfg config) Result {
	_, seed := cfg.source(p.Seed)
	st := cfg.style(colors, p.Filled, p.StrokeWidth, p.Opacity)

	return finish(parallelogramFrame(p, st), seed)
}

func parallelogramFrame(p ParallelogramParams, st shape.Style) frame {
	w := positiveOr(p.Width, DefaultParallelogramWidth)
	h := positiveOr(p.Height, DefaultParallelogramHeight)
	gap := math.Max(finiteOr(p.Gap, 0), 0)
	skew := clampf(p.Skew, -MaxSkew, MaxSkew)
	shear := h * math.Tan(skew*math.Pi/halfTurnDeg)

	top := gap + math.Max(shear, 0)
	bottom := top - shear
	pts := [][2]float64{
		{top, gap},
		{top + w, gap},
		{bottom + w, gap + h},
		{bottom, gap + h},
	}

	return frame{
		width:  w + math.Abs(shear) + 2*gap,
		height: h + 2*gap,
		prims:  []shape.Primitive{shape.Polygon(pts, st)},
	}
}
