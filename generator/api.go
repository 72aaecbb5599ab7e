// SPDX-License-Identifier: MIT
// Package: motif/generator
//
// api.go - public entry points: the registry and one function per algorithm.
//
// Design contract:
//   - One dispatcher: Dispatch(params, colors, opts...). The concrete Params
//     type selects the algorithm; there is no string-keyed table.
//   - Each algorithm is declared here and implemented in impl_*.go.
//   - Determinism: same params (with seed), colors and palette => identical
//     Document bytes.
//   - Generators never panic and never return errors; degenerate knobs are
//     clamped in the impl files.

package generator

import (
	"fmt"
	"reflect"

	"github.com/katalvlaran/motif/shape"
	"github.com/katalvlaran/motif/tile"
)

// frame is a generator's output before serialisation.
type frame struct {
	width, height float64
	prims         []shape.Primitive
}

// finish wraps f into a Result carrying the seed actually used.
func finish(f frame, seed string) Result {
	return Result{Document: tile.Wrap(f.prims, f.width, f.height), Seed: seed}
}

// Dispatch runs the generator selected by the concrete type of p.
// Errors: ErrNilParams for nil or typed-nil pointer params.
// Complexity: that of the selected generator.
func Dispatch(p Params, colors ColorConfig, opts ...Option) (Result, error) {
	if IsNil(p) {
		return Result{}, fmt.Errorf("%s: %w", methodDispatch, ErrNilParams)
	}

	return p.render(colors, newConfig(opts...)), nil
}

// IsNil reports whether p is nil or a typed nil pointer.
func IsNil(p Params) bool {
	if p == nil {
		return true
	}
	v := reflect.ValueOf(p)

	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Scatter places p.Count shapes at random positions in a square tile and
// duplicates those within ScatterEdgeBand of the top/left edge onto the
// opposite edge (single axis only, no diagonal copies).
// Complexity: O(Count).
func Scatter(p ScatterParams, colors ColorConfig, opts ...Option) Result {
	return scatter(p, colors, newConfig(opts...))
}

// Grid places one shape at every cell centre of a Cols x Rows lattice.
// The tile is exactly Cols*Gap x Rows*Gap.
// Complexity: O(Cols*Rows).
func Grid(p GridParams, colors ColorConfig, opts ...Option) Result {
	return grid(p, colors, newConfig(opts...))
}

// Lines draws parallel stripes at p.AngleDeg.
// Complexity: O(number of stripes), at most O(MaxDiagonalTile/MinLineSpacing).
func Lines(p LinesParams, colors ColorConfig, opts ...Option) Result {
	return lines(p, colors, newConfig(opts...))
}

// Waves draws one sine period per tile as a single open path.
// Complexity: O(tile width / WaveStep).
func Waves(p WavesParams, colors ColorConfig, opts ...Option) Result {
	return waves(p, colors, newConfig(opts...))
}

// Noise sprinkles round(Intensity*500) faint dots over a 50x50 tile.
// Complexity: O(Intensity).
func Noise(p NoiseParams, colors ColorConfig, opts ...Option) Result {
	return noise(p, colors, newConfig(opts...))
}

// Topo draws p.Levels concentric jittered contour loops.
// Complexity: O(Levels).
func Topo(p TopoParams, colors ColorConfig, opts ...Option) Result {
	return topo(p, colors, newConfig(opts...))
}

// Parallelogram draws one horizontally skewed rectangle with a Gap margin.
// Complexity: O(1).
func Parallelogram(p ParallelogramParams, colors ColorConfig, opts ...Option) Result {
	return parallelogram(p, colors, newConfig(opts...))
}
