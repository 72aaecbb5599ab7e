// SPDX-License-Identifier: MIT
// Package: motif/engine
//
// options.go - functional options for New. Constructors panic on values that
// can never be meaningful.

package engine

import (
	"fmt"
	"runtime"

	"github.com/katalvlaran/motif/palette"
	"github.com/katalvlaran/motif/rng"
)

type config struct {
	palette *palette.Palette
	entropy rng.Entropy
	workers int
}

func newConfig(opts ...Option) config {
	cfg := config{
		palette: palette.Default(),
		entropy: rng.SystemEntropy{},
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Option customises an Engine.
type Option func(*config)

// WithPalette sets the palette every request resolves tokens against.
// Panics on nil.
func WithPalette(p *palette.Palette) Option {
	if p == nil {
		panic("engine: WithPalette(nil)")
	}
	return func(c *config) { c.palette = p }
}

// WithEntropy sets the source used to mint seeds for seed-less requests.
// Panics on nil.
func WithEntropy(e rng.Entropy) Option {
	if e == nil {
		panic("engine: WithEntropy(nil)")
	}
	return func(c *config) { c.entropy = e }
}

// WithWorkers bounds GenerateBatch parallelism. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("engine: WithWorkers(%d): need at least 1", n))
	}
	return func(c *config) { c.workers = n }
}
