// Package motif is a deterministic engine for small, seamlessly tileable SVG
// patterns: dots, stripes, waves, grain, contours and more, driven by a seed.
//
// What it does
//
//	Given a generator kind, a parameter record, colour tokens and an
//	optional seed, motif returns a self-contained SVG document and the seed
//	that reproduces it byte for byte:
//	  - Scatter: random shapes with single-axis edge wrap
//	  - Grid: a lattice that tiles exactly
//	  - Lines: stripes at any angle, with jitter and dashes
//	  - Waves: one sine period per tile
//	  - Noise: low-opacity grain
//	  - Topo: jittered contour loops
//	  - Parallelogram: one skewed quadrilateral
//
// Why it looks this way
//
//   - Reproducible: same request and seed, same bytes; seeds are returned
//   - Total: out-of-range knobs are clamped, never rejected; no NaN escapes
//   - Themeable: colours are palette roles (primary, accent…) or literals
//   - Concurrent: every call owns its random stream
//
// Layout:
//
//	rng/         seeded mulberry32 stream and seed minting
//	palette/     colour roles and YAML palettes
//	shape/       shape primitives with one-decimal coordinates
//	tile/        the <pattern> document wrapper and data URIs
//	generator/   the seven algorithms and the Dispatch registry
//	mapper/      unified knobs → generator parameters
//	engine/      requests, seed overrides, parallel batches
//	preset/      named requests in YAML
//	toolserver/  MCP tools for assistants
//	cmd/motif/   render, batch and serve commands
//
// Quick example:
//
//	res := generator.Grid(generator.GridParams{Cols: 4, Rows: 4, Gap: 24, DotSize: 8},
//	    generator.ColorConfig{Fill: palette.Primary})
//	// res.Document is a 96x96 tile repeated over a 100x100 canvas.
//
//	go install github.com/katalvlaran/motif/cmd/motif@latest
package motif
