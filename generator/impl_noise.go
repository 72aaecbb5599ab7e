// SPDX-License-Identifier: MIT
// Package: motif/generator
//
// impl_noise.go - film-grain approximation with faint random dots.
//
// This is deliberately not a continuous noise field: round(Intensity*500)
// filled circles with per-dot opacity in a fixed 50x50 tile read as grain at
// background scale and cost O(n).
//
// Draw order per dot: x, y, radius, opacity.

package generator

import (
	"math"

	"github.com/katalvlaran/motif/rng"
	"github.com/katalvlaran/motif/shape"
)

func noise(p NoiseParams, colors ColorConfig, cfg config) Result {
	src, seed := cfg.source(p.Seed)
	st := cfg.style(colors, true, 0, 0)

	return finish(noiseFrame(p, st, src), seed)
}

func noiseFrame(p NoiseParams, st shape.Style, src *rng.Source) frame {
	intensity := clampf(p.Intensity, 0, MaxNoiseIntensity)
	count := int(math.Round(intensity * NoiseDotsPerIntensity))
	scale := positiveOr(p.DotScale, 1)
	maxOpacity := clampf(positiveOr(p.MaxOpacity, DefaultNoiseOpacity), noiseMinOpacity, MaxNoiseOpacity)

	prims := make([]shape.Primitive, 0, count)
	for i := 0; i < count; i++ {
		x := src.Next() * NoiseTile
		y := src.Next() * NoiseTile
		r := (noiseMinRadius + src.Next()*noiseRadiusSpan) * scale
		dot := st
		dot.Opacity = noiseMinOpacity + src.Next()*(maxOpacity-noiseMinOpacity)
		prims = append(prims, shape.Emit(shape.Circle, x, y, 2*r, 0, dot))
	}

	return frame{width: NoiseTile, height: NoiseTile, prims: prims}
}
