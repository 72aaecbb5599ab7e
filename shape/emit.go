// SPDX-License-Identifier: MIT
// Package: motif/shape
//
// emit.go - pure constructors for every primitive a generator can place.
//
// Contract:
//   - Emit never panics; unknown kinds render as circles.
//   - All coordinates are rounded through Num before they reach Attrs.
//   - Attribute order is fixed per primitive so output is byte-stable.

package shape

import "math"

// Geometry constants.
const (
	half            = 0.5
	diamondScale    = 0.7  // diamond side relative to size
	diamondTurn     = 45.0 // base rotation of a diamond, degrees
	starInnerRatio  = 0.4  // inner/outer radius of a star
	starPoints      = 5
	triangleCorners = 3
	hexagonCorners  = 6
	defaultGlyph    = "+"
)

// Emit renders one shape centred at (cx, cy).
// size is the bounding diameter, rotation is in degrees clockwise.
// Complexity: O(1).
func Emit(kind Kind, cx, cy, size, rotation float64, st Style) Primitive {
	anchor := Anchor{X: Round(cx), Y: Round(cy), Size: Round(size), Rotation: Round(rotation)}
	r := size * half

	var p Primitive
	switch kind {
	case Square:
		p = rect(cx, cy, size, rotation)
	case Diamond:
		p = rect(cx, cy, size*diamondScale, diamondTurn+rotation)
	case Triangle:
		p = polygonAt(regular(cx, cy, r, triangleCorners, -math.Pi/2), cx, cy, rotation)
	case Hexagon:
		p = polygonAt(regular(cx, cy, r, hexagonCorners, 0), cx, cy, rotation)
	case Star:
		p = polygonAt(star(cx, cy, r), cx, cy, rotation)
	case Glyph:
		p = text(cx, cy, size, rotation, st.Glyph)
	default:
		p = Primitive{Tag: "circle", Attrs: []Attr{
			{"cx", Num(cx)}, {"cy", Num(cy)}, {"r", Num(r)},
		}}
	}
	p.Attrs = append(p.Attrs, paint(st)...)
	p.Anchor = anchor

	return p
}

// Line renders a stroked segment. Lines always use the stroke paint,
// whatever st.Filled says.
func Line(x1, y1, x2, y2 float64, st Style) Primitive {
	attrs := []Attr{
		{"x1", Num(x1)}, {"y1", Num(y1)}, {"x2", Num(x2)}, {"y2", Num(y2)},
		{"stroke", st.Stroke}, {"stroke-width", Num(st.StrokeWidth)},
	}
	attrs = append(attrs, opacity(st)...)

	return Primitive{Tag: "line", Attrs: attrs, Anchor: Anchor{X: Round(x1), Y: Round(y1)}}
}

// Path renders path data d with the style's paint.
func Path(d *PathData, st Style, at Anchor) Primitive {
	attrs := append([]Attr{{"d", d.String()}}, paint(st)...)

	return Primitive{Tag: "path", Attrs: attrs, Anchor: at}
}

// Stroke renders path data d as an unfilled outline regardless of st.Filled.
func Stroke(d *PathData, st Style, at Anchor) Primitive {
	st.Filled = false

	return Path(d, st, at)
}

// Polygon renders a closed vertex list with the style's paint.
func Polygon(pts [][2]float64, st Style) Primitive {
	p := Primitive{Tag: "polygon", Attrs: []Attr{{"points", points(pts)}}}
	p.Attrs = append(p.Attrs, paint(st)...)
	if len(pts) > 0 {
		p.Anchor = Anchor{X: Round(pts[0][0]), Y: Round(pts[0][1])}
	}

	return p
}

// rect is a square of side s centred on (cx, cy).
func rect(cx, cy, s, rotation float64) Primitive {
	p := Primitive{Tag: "rect", Attrs: []Attr{
		{"x", Num(cx - s*half)}, {"y", Num(cy - s*half)},
		{"width", Num(s)}, {"height", Num(s)},
	}}

	return rotated(p, cx, cy, rotation)
}

func polygonAt(pts [][2]float64, cx, cy, rotation float64) Primitive {
	p := Primitive{Tag: "polygon", Attrs: []Attr{{"points", points(pts)}}}

	return rotated(p, cx, cy, rotation)
}

func text(cx, cy, size, rotation float64, glyph string) Primitive {
	if glyph == "" {
		glyph = defaultGlyph
	}
	p := Primitive{Tag: "text", Text: glyph, Attrs: []Attr{
		{"x", Num(cx)}, {"y", Num(cy)}, {"font-size", Num(size)},
		{"text-anchor", "middle"}, {"dominant-baseline", "central"},
	}}

	return rotated(p, cx, cy, rotation)
}

// rotated appends a rotate transform about (cx, cy) when the rounded angle
// is non-zero.
func rotated(p Primitive, cx, cy, deg float64) Primitive {
	if Round(deg) == 0 {
		return p
	}
	p.Attrs = append(p.Attrs, Attr{"transform", "rotate(" + Num(deg) + " " + Num(cx) + " " + Num(cy) + ")"})

	return p
}

// regular returns n vertices on a circle of radius r starting at angle start.
func regular(cx, cy, r float64, n int, start float64) [][2]float64 {
	pts := make([][2]float64, n)
	step := 2 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		a := float64(i)*step + start
		pts[i] = [2]float64{cx + r*math.Cos(a), cy + r*math.Sin(a)}
	}

	return pts
}

// star alternates outer and inner radii over 2*starPoints vertices.
func star(cx, cy, outer float64) [][2]float64 {
	n := 2 * starPoints
	inner := outer * starInnerRatio
	pts := make([][2]float64, n)
	for i := 0; i < n; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := float64(i)*math.Pi/starPoints - math.Pi/2
		pts[i] = [2]float64{cx + r*math.Cos(a), cy + r*math.Sin(a)}
	}

	return pts
}

// paint returns fill/stroke attributes for filled or outline rendering.
func paint(st Style) []Attr {
	var attrs []Attr
	if st.Filled {
		attrs = []Attr{{"fill", st.Fill}, {"stroke", "none"}}
	} else {
		attrs = []Attr{{"fill", "none"}, {"stroke", st.Stroke}, {"stroke-width", Num(st.StrokeWidth)}}
	}

	return append(attrs, opacity(st)...)
}

func opacity(st Style) []Attr {
	if st.Opacity > 0 && st.Opacity < 1 {
		return []Attr{{"opacity", Num(st.Opacity)}}
	}

	return nil
}
