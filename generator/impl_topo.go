// SPDX-License-Identifier: MIT
// Package: motif/generator
//
// impl_topo.go - topographic contour loops around one jittered centre.
//
// Contract:
//   - Centre: T/2 + (r-0.5)*0.2*T on each axis (two draws, x then y).
//   - Level l in [0, Levels): baseRadius = 5 + l*(T/Levels/2).
//   - Each loop has TopoVertices vertices at equal angles, radius
//     baseRadius*(1 + (2r-1)*0.2), i.e. up to +/-20% of baseRadius.
//   - Loops are closed, smoothed paths: quadratic segments through the
//     midpoints of consecutive vertices, with the vertices as controls.
//   - Levels <= 0 yields an empty tile; the division by Levels is never
//     reached in that case.
//
// Complexity: O(Levels*TopoVertices).

package generator

import (
	"math"

	"github.com/katalvlaran/motif/rng"
	"github.com/katalvlaran/motif/shape"
)

func topo(p TopoParams, colors ColorConfig, cfg config) Result {
	src, seed := cfg.source(p.Seed)
	st := cfg.style(colors, false, p.StrokeWidth, p.Opacity)

	return finish(topoFrame(p, st, src), seed)
}

func topoFrame(p TopoParams, st shape.Style, src *rng.Source) frame {
	size := positiveOr(p.TileSize, DefaultTopoTile)
	levels := clampi(p.Levels, 0, MaxTopoLevels)
	f := frame{width: size, height: size}
	if levels == 0 {
		return f
	}

	cx := size*half + (src.Next()-half)*topoCenterSpan*size
	cy := size*half + (src.Next()-half)*topoCenterSpan*size
	ring := size / float64(levels) * half

	f.prims = make([]shape.Primitive, 0, levels)
	var pts [TopoVertices][2]float64
	for l := 0; l < levels; l++ {
		base := topoInnerRadius + float64(l)*ring
		for i := range pts {
			a := float64(i) * 2 * math.Pi / TopoVertices
			r := base * (1 + (2*src.Next()-1)*topoWobble)
			pts[i] = [2]float64{cx + r*math.Cos(a), cy + r*math.Sin(a)}
		}
		at := shape.Anchor{X: shape.Round(cx), Y: shape.Round(cy), Size: shape.Round(2 * base)}
		f.prims = append(f.prims, shape.Stroke(smoothLoop(pts[:]), st, at))
	}

	return f
}

// smoothLoop builds a closed path through the midpoints of consecutive
// vertices, using each vertex as the quadratic control point.
func smoothLoop(pts [][2]float64) *shape.PathData {
	n := len(pts)
	mid := func(i int) (float64, float64) {
		a, b := pts[i%n], pts[(i+1)%n]
		return (a[0] + b[0]) * half, (a[1] + b[1]) * half
	}

	var d shape.PathData
	mx, my := mid(n - 1)
	d.MoveTo(mx, my)
	for i := 0; i < n; i++ {
		ex, ey := mid(i)
		d.QuadTo(pts[i][0], pts[i][1], ex, ey)
	}

	return d.Close()
}
