// SPDX-License-Identifier: MIT
// Package: motif/generator
//
// options.go - functional options for generator calls.
//
// Contract:
//   - Option constructors validate and panic on nil; generators never panic.
//   - No hidden globals; everything flows through config.

package generator

import (
	"github.com/katalvlaran/motif/palette"
	"github.com/katalvlaran/motif/rng"
)

// Option customises one generator call.
type Option func(*config)

// WithPalette sets the palette used to resolve colour tokens.
// Panics on nil.
func WithPalette(p *palette.Palette) Option {
	if p == nil {
		panic("generator: WithPalette(nil)")
	}
	return func(c *config) {
		c.palette = p
	}
}

// WithEntropy sets the entropy used to mint a seed when params carry none.
// Inject a fixed source in tests to make the seed-less path reproducible.
// Panics on nil.
func WithEntropy(e rng.Entropy) Option {
	if e == nil {
		panic("generator: WithEntropy(nil)")
	}
	return func(c *config) {
		c.entropy = e
	}
}
