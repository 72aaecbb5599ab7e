// SPDX-License-Identifier: MIT
// Package: motif/generator
//
// impl_grid.go - shapes at the cell centres of a regular lattice.
//
// Contract:
//   - Cols and Rows clamp into [1, MaxGridDim]; Gap <= 0 uses DefaultGridGap;
//     DotSize <= 0 uses Gap/3.
//   - Tile is exactly Cols*Gap x Rows*Gap, so the lattice is seamless by
//     construction and needs no wrap copies.
//   - Emission is row-major (row asc, then col asc).
//   - Randomness is drawn only when Jitter > 0 (two draws per cell: dx, dy).
//
// Complexity: O(Cols*Rows).

package generator

import (
	"github.com/katalvlaran/motif/rng"
	"github.com/katalvlaran/motif/shape"
)

const gridDotDivisor = 3.0 // default DotSize = Gap/3

func grid(p GridParams, colors ColorConfig, cfg config) Result {
	src, seed := cfg.source(p.Seed)
	st := cfg.style(colors, p.Filled, p.StrokeWidth, p.Opacity)
	st.Glyph = p.Glyph

	return finish(gridFrame(p, st, src), seed)
}

func gridFrame(p GridParams, st shape.Style, src *rng.Source) frame {
	cols := clampi(p.Cols, minGridDim, MaxGridDim)
	rows := clampi(p.Rows, minGridDim, MaxGridDim)
	gap := positiveOr(p.Gap, DefaultGridGap)
	dot := positiveOr(p.DotSize, gap/gridDotDivisor)
	jitter := clampf(p.Jitter, 0, 1) * gap
	rot := finiteOr(p.Rotation, 0)

	prims := make([]shape.Primitive, 0, cols*rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cx := (float64(c) + half) * gap
			cy := (float64(r) + half) * gap
			if jitter > 0 {
				cx += (src.Next() - half) * jitter
				cy += (src.Next() - half) * jitter
			}
			prims = append(prims, shape.Emit(p.Shape, cx, cy, dot, rot, st))
		}
	}

	return frame{width: float64(cols) * gap, height: float64(rows) * gap, prims: prims}
}
