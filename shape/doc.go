// Package shape renders single vector primitives: the seven placeable
// shapes (circle, square, diamond, triangle, hexagon, star, glyph) plus the
// lines, paths and polygons the generators build from.
//
// A Primitive is an element tag with ordered attributes; package tile turns
// a slice of them into a document. Every coordinate is rounded to one
// decimal place on the way in, which keeps generated documents byte-stable.
//
// Geometry:
//
//	circle    r = size/2
//	square    side = size
//	diamond   side = 0.7*size, rotated 45 degrees plus the requested rotation
//	triangle  3 vertices at i*2pi/3 - pi/2, r = size/2
//	hexagon   6 vertices at i*pi/3, r = size/2
//	star      10 vertices at i*pi/5 - pi/2, r alternating size/2 and 0.4*size/2
//	glyph     text centred on the point, font-size = size
package shape
