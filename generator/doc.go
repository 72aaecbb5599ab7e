// SPDX-License-Identifier: MIT
// Package: motif/generator

// Package generator implements the seven tileable pattern algorithms and the
// registry that dispatches between them.
//
// Each algorithm turns a typed parameter record plus a ColorConfig into a
// Result: a complete, self-contained tile document and the seed that
// produced it. The algorithms are:
//
//   - Scatter:       random shapes; shapes near the top/left edge are
//     duplicated on the opposite edge so the tile repeats without seams.
//   - Grid:          a Cols x Rows lattice, seamless by construction.
//   - Lines:         parallel stripes at any angle, with axis-aligned and
//     diagonal tiling branches.
//   - Waves:         one sine period per tile.
//   - Noise:         faint grain dots.
//   - Topo:          concentric jittered contour loops.
//   - Parallelogram: one skewed quadrilateral with a margin.
//
// Registry:
//
//	res, err := generator.Dispatch(generator.GridParams{Cols: 4, Rows: 4, Gap: 24},
//	    generator.ColorConfig{Fill: palette.Primary})
//
// Params is a closed union; its concrete type selects the algorithm.
//
// Guarantees:
//
//   - Determinism: equal params (including Seed), colors and palette give
//     byte-identical documents. A missing seed is minted from the configured
//     Entropy and returned in Result.Seed.
//   - Totality: generators never panic and never fail. Out-of-range knobs are
//     clamped, non-finite numbers are replaced, and no document contains NaN.
//   - Isolation: every call owns its random stream; calls are safe to run
//     concurrently.
//
// Options (WithPalette, WithEntropy) follow the functional-options pattern
// and panic on nil arguments.
package generator
