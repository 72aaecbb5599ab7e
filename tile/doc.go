// Package tile assembles shape primitives into one self-contained SVG
// document whose <pattern> repeat unit fills a fixed 100x100 canvas.
//
// The repeat unit's size comes from the generator (Grid uses cols*gap,
// Noise a fixed 50, ...); the canvas never changes, so previews of every
// pattern share one footprint. DataURI turns a document into a CSS
// background-image source.
package tile
