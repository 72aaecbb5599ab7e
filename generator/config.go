// SPDX-License-Identifier: MIT
// Package: motif/generator
//
// config.go - per-call configuration resolved from functional options.
//
// Design:
//   - config is the single source of truth for palette and entropy.
//   - Defaults are deterministic apart from entropy, which only matters when
//     a params record carries no seed.
//   - newConfig applies options in order (later overrides earlier).
//
// Deterministic defaults:
//   - palette = palette.Default()    (roles -> var(--role))
//   - entropy = rng.SystemEntropy{}  (crypto/rand)

package generator

import (
	"github.com/katalvlaran/motif/palette"
	"github.com/katalvlaran/motif/rng"
	"github.com/katalvlaran/motif/shape"
)

// config is passed by value into every generator.
type config struct {
	palette *palette.Palette
	entropy rng.Entropy
}

// newConfig builds a config with defaults and applies opts in order.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{
		palette: palette.Default(),
		entropy: rng.SystemEntropy{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// source returns the random stream for one generation and the seed it was
// built from, minting a seed when none was given.
func (c config) source(seed string) (*rng.Source, string) {
	if seed == "" {
		seed = rng.Mint(c.entropy)
	}

	return rng.New(seed), seed
}

// style resolves the colour config into concrete paint for one run.
func (c config) style(colors ColorConfig, filled bool, strokeWidth, opacity float64) shape.Style {
	if !(strokeWidth > 0) {
		strokeWidth = defaultStrokeWidth
	}

	return shape.Style{
		Fill:        c.palette.Resolve(colors.Fill, fallbackPaint),
		Stroke:      c.palette.Resolve(colors.Stroke, fallbackPaint),
		StrokeWidth: strokeWidth,
		Opacity:     opacity,
		Filled:      filled,
	}
}
