// SPDX-License-Identifier: MIT
// Package: motif/generator

package generator_test

import (
	"fmt"

	"github.com/katalvlaran/motif/generator"
	"github.com/katalvlaran/motif/palette"
	"github.com/katalvlaran/motif/rng"
	"github.com/katalvlaran/motif/shape"
)

// ExampleGrid renders a two-dot lattice; the tile is exactly Cols*Gap wide.
func ExampleGrid() {
	res := generator.Grid(generator.GridParams{
		Seed: "demo", Cols: 2, Rows: 1, Gap: 10, DotSize: 4, Shape: shape.Circle, Filled: true,
	}, generator.ColorConfig{Fill: palette.Primary})

	fmt.Println(res.Document)
	// Output:
	// <svg xmlns="http://www.w3.org/2000/svg" width="100" height="100" viewBox="0 0 100 100"><defs><pattern id="motif-tile" x="0" y="0" width="20" height="10" patternUnits="userSpaceOnUse"><circle cx="5" cy="5" r="2" fill="var(--primary)" stroke="none"/><circle cx="15" cy="5" r="2" fill="var(--primary)" stroke="none"/></pattern></defs><rect width="100" height="100" fill="url(#motif-tile)"/></svg>
}

// ExampleDispatch shows the registry and seed reporting.
func ExampleDispatch() {
	entropy := generator.WithEntropy(rng.EntropyFunc(func() uint64 { return 46655 }))
	res, err := generator.Dispatch(generator.ParallelogramParams{Width: 40, Height: 20, Gap: 5}, generator.ColorConfig{}, entropy)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Seed)
	// Output:
	// 00000zzz
}

// ExampleParseKind resolves aliases to canonical kinds.
func ExampleParseKind() {
	k, _ := generator.ParseKind("Stripes")
	fmt.Println(k, "-", k.Description())
	// Output:
	// lines - parallel stripes at any angle, optional jitter and dashes
}
