// SPDX-License-Identifier: MIT
// Package: motif/engine

package engine_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/motif/engine"
	"github.com/katalvlaran/motif/generator"
	"github.com/katalvlaran/motif/mapper"
)

// Example maps the same knobs onto two generators.
func Example() {
	e := engine.New(engine.WithWorkers(2))
	knobs := mapper.DefaultUnified()

	results, err := e.GenerateBatch(context.Background(), []engine.Request{
		{Kind: generator.KindGrid, Seed: "demo", Knobs: &knobs},
		{Kind: generator.KindParallelogram, Seed: "demo", Knobs: &knobs},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, r := range results {
		fmt.Println(r.Seed, len(r.Fingerprint()))
	}
	// Output:
	// demo 64
	// demo 64
}
