// SPDX-License-Identifier: MIT
// Package: motif/generator
//
// impl_scatter.go - random placement with single-axis edge duplicates.
//
// Contract:
//   - Draw order per instance is fixed: x, y, size, rotation. Rotation is
//     always drawn (scaled by RotationRange), so the stream never depends
//     on whether rotation is enabled.
//   - Positions are rounded before the edge test, so the recorded (rounded)
//     x/y decide duplication.
//   - A shape with x < ScatterEdgeBand gets a copy at x+tile; one with
//     y < ScatterEdgeBand gets a copy at y+tile. Shapes near the corner are
//     not copied diagonally. Changing that would change every seeded output.
//   - Copies are emitted right after their primary.
//
// Complexity: O(Count) time and O(Count) primitives (at most 3*Count).

package generator

import (
	"github.com/katalvlaran/motif/rng"
	"github.com/katalvlaran/motif/shape"
)

func scatter(p ScatterParams, colors ColorConfig, cfg config) Result {
	src, seed := cfg.source(p.Seed)
	st := cfg.style(colors, p.Filled, p.StrokeWidth, p.Opacity)
	st.Glyph = p.Glyph

	return finish(scatterFrame(p, st, src), seed)
}

func scatterFrame(p ScatterParams, st shape.Style, src *rng.Source) frame {
	size := positiveOr(p.TileSize, DefaultScatterTile)
	count := clampi(p.Count, 0, MaxScatterCount)

	sizeMin := clampf(p.SizeMin, 0, size)
	sizeMax := clampf(p.SizeMax, 0, size)
	if sizeMin > sizeMax {
		sizeMin, sizeMax = sizeMax, sizeMin
	}
	rotRange := finiteOr(p.RotationRange, 0)

	prims := make([]shape.Primitive, 0, count)
	for i := 0; i < count; i++ {
		x := shape.Round(src.Next() * size)
		y := shape.Round(src.Next() * size)
		s := sizeMin + src.Next()*(sizeMax-sizeMin)
		rot := src.Next() * rotRange

		prims = append(prims, shape.Emit(p.Shape, x, y, s, rot, st))
		if x < ScatterEdgeBand {
			prims = append(prims, shape.Emit(p.Shape, x+size, y, s, rot, st))
		}
		if y < ScatterEdgeBand {
			prims = append(prims, shape.Emit(p.Shape, x, y+size, s, rot, st))
		}
	}

	return frame{width: size, height: size, prims: prims}
}
