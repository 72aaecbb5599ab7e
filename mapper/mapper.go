// SPDX-License-Identifier: MIT
// Package: motif/mapper

package mapper

import (
	"fmt"
	"math"
	"slices"

	"github.com/samber/lo"

	"github.com/katalvlaran/motif/generator"
	"github.com/katalvlaran/motif/palette"
	"github.com/katalvlaran/motif/shape"
)

const (
	methodMap = "Map"

	gridDensityDivisor  = 5.0   // Density 20 => 4x4 lattice
	topoDensityDivisor  = 10.0  // Density 40 => 4 contours
	noiseDensityDivisor = 100.0 // Density 40 => intensity 0.4
)

// Map reinterprets u for kind and returns the generator's parameter record
// carrying seed. A "none" fill in colors turns filled rendering off, since
// a filled shape would be invisible.
//
// Errors: generator.ErrUnknownKind for kinds outside the fixed set,
// shape.ErrUnknownShape for an unrecognised u.Shape.
func Map(kind generator.Kind, u Unified, colors generator.ColorConfig, seed string) (generator.Params, error) {
	sk := shape.Circle
	if u.Shape != "" {
		var err error
		if sk, err = shape.ParseKind(u.Shape); err != nil {
			return nil, fmt.Errorf("%s: %w", methodMap, err)
		}
	}
	filled := u.Filled && colors.Fill != palette.None

	switch kind {
	case generator.KindScatter:
		return generator.ScatterParams{
			Seed:          seed,
			Count:         roundInt(u.Density),
			SizeMin:       u.SizeMin,
			SizeMax:       u.SizeMax,
			RotationRange: u.Rotation,
			Shape:         sk,
			Glyph:         u.Glyph,
			Filled:        filled,
			StrokeWidth:   u.StrokeWidth,
			Opacity:       u.Opacity,
		}, nil
	case generator.KindGrid:
		n := max(1, roundInt(u.Density/gridDensityDivisor))
		return generator.GridParams{
			Seed:        seed,
			Cols:        n,
			Rows:        n,
			Gap:         u.Spacing,
			DotSize:     (u.SizeMin + u.SizeMax) / 2,
			Shape:       sk,
			Glyph:       u.Glyph,
			Rotation:    u.Rotation,
			Jitter:      u.Jitter,
			Filled:      filled,
			StrokeWidth: u.StrokeWidth,
			Opacity:     u.Opacity,
		}, nil
	case generator.KindLines:
		return generator.LinesParams{
			Seed:        seed,
			AngleDeg:    u.Rotation,
			Spacing:     u.Spacing,
			StrokeWidth: u.StrokeWidth,
			Jitter:      u.Jitter,
			Dash:        slices.Clone(u.Dash),
			Opacity:     u.Opacity,
		}, nil
	case generator.KindWaves:
		return generator.WavesParams{
			Seed:        seed,
			Amplitude:   u.SizeMax / 2,
			Frequency:   u.Frequency,
			StrokeWidth: u.StrokeWidth,
			Opacity:     u.Opacity,
		}, nil
	case generator.KindNoise:
		return generator.NoiseParams{
			Seed:       seed,
			Intensity:  lo.Ternary(u.Intensity > 0, u.Intensity, u.Density/noiseDensityDivisor),
			MaxOpacity: u.Opacity * generator.DefaultNoiseOpacity,
		}, nil
	case generator.KindTopo:
		return generator.TopoParams{
			Seed:        seed,
			Levels:      max(1, roundInt(u.Density/topoDensityDivisor)),
			StrokeWidth: u.StrokeWidth,
			Opacity:     u.Opacity,
		}, nil
	case generator.KindParallelogram:
		return generator.ParallelogramParams{
			Seed:        seed,
			Width:       u.SizeMax,
			Height:      u.SizeMin,
			Skew:        u.Rotation,
			Gap:         u.Spacing / 2,
			Filled:      filled,
			StrokeWidth: u.StrokeWidth,
			Opacity:     u.Opacity,
		}, nil
	default:
		return nil, fmt.Errorf("%s: kind %d: %w", methodMap, uint8(kind), generator.ErrUnknownKind)
	}
}

// roundInt rounds to the nearest int; non-finite or negative values give 0
// so the generators' own clamps take over.
func roundInt(v float64) int {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= math.MaxInt32 {
		return math.MaxInt32
	}

	return int(math.Round(v))
}
