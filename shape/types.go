// SPDX-License-Identifier: MIT
// Package: motif/shape
//
// types.go - shape kinds, paint style and the Primitive element model.

package shape

import (
	"fmt"
	"strings"
)

// Kind enumerates the drawable shape primitives.
type Kind uint8

const (
	// Circle has radius size/2.
	Circle Kind = iota
	// Square is an axis-aligned square of side size (unless rotated).
	Square
	// Diamond is a 0.7-scaled square turned 45 degrees.
	Diamond
	// Triangle is an upward-pointing equilateral triangle, circumradius size/2.
	Triangle
	// Hexagon is a regular hexagon, circumradius size/2.
	Hexagon
	// Star is a five-pointed star, outer radius size/2, inner 0.4 of that.
	Star
	// Glyph is a short text string centred on the point with font-size size.
	Glyph
)

var kindNames = [...]string{
	Circle:   "circle",
	Square:   "square",
	Diamond:  "diamond",
	Triangle: "triangle",
	Hexagon:  "hexagon",
	Star:     "star",
	Glyph:    "glyph",
}

// String returns the lowercase shape name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("shape(%d)", uint8(k))
}

// ParseKind maps a shape name to its Kind. "symbol" is accepted for Glyph.
// Matching is case-insensitive; unknown names return ErrUnknownShape.
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "symbol" {
		return Glyph, nil
	}
	for k, s := range kindNames {
		if s == n {
			return Kind(k), nil
		}
	}

	return Circle, fmt.Errorf("shape: ParseKind(%q): %w", name, ErrUnknownShape)
}

// MarshalText encodes the lowercase name.
func (k Kind) MarshalText() ([]byte, error) {
	if int(k) >= len(kindNames) {
		return nil, fmt.Errorf("shape: MarshalText(%d): %w", uint8(k), ErrUnknownShape)
	}

	return []byte(kindNames[k]), nil
}

// UnmarshalText decodes a shape name via ParseKind.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed

	return nil
}

// Kinds lists every shape kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kindNames))
	for i := range kindNames {
		out[i] = Kind(i)
	}

	return out
}

// Style is the paint applied uniformly to primitives of one generator run.
type Style struct {
	Fill        string  // resolved fill paint
	Stroke      string  // resolved stroke paint
	StrokeWidth float64 // used only when Filled is false (and always for lines)
	Opacity     float64 // emitted only when strictly inside (0,1)
	Filled      bool    // solid fill, no stroke; otherwise outline only
	Glyph       string  // text drawn by the Glyph kind
}

// Attr is one serialised attribute. Order is preserved on output.
type Attr struct {
	Name  string
	Value string
}

// Anchor records where a primitive was placed, rounded like the markup.
type Anchor struct {
	X, Y     float64
	Size     float64
	Rotation float64
}

// Primitive is one vector element ready for serialisation.
type Primitive struct {
	Tag    string
	Attrs  []Attr
	Text   string // character data, used by <text>
	Anchor Anchor
}

// Attr returns the value of the named attribute.
func (p Primitive) Attr(name string) (string, bool) {
	for _, a := range p.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}

	return "", false
}

// With returns a copy of p with one extra attribute appended.
func (p Primitive) With(name, value string) Primitive {
	attrs := make([]Attr, len(p.Attrs), len(p.Attrs)+1)
	copy(attrs, p.Attrs)
	p.Attrs = append(attrs, Attr{Name: name, Value: value})

	return p
}
