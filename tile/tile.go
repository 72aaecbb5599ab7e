// SPDX-License-Identifier: MIT
// Package: motif/tile
//
// tile.go - wraps primitives into a self-contained repeating SVG document.
//
// Layout (single line, no whitespace between elements):
//
//	<svg xmlns=".." width="100" height="100" viewBox="0 0 100 100">
//	  <defs><pattern id="motif-tile" x="0" y="0" width="W" height="H" patternUnits="userSpaceOnUse">
//	    ...primitives...
//	  </pattern></defs>
//	  <rect width="100" height="100" fill="url(#motif-tile)"/>
//	</svg>
//
// The outer canvas is always 100x100; the W x H tile repeats inside it.

package tile

import (
	"encoding/base64"
	"strings"

	"github.com/katalvlaran/motif/shape"
)

const (
	// CanvasSize is the fixed outer canvas edge, in user units.
	CanvasSize = 100
	// PatternID is the repeat unit's id. It is constant: every document is
	// consumed on its own, so ids never need to be globally unique.
	PatternID = "motif-tile"

	svgNS        = "http://www.w3.org/2000/svg"
	dataURIStart = "data:image/svg+xml;base64,"
)

var attrEscaper = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `>`, "&gt;", `"`, "&quot;")
var textEscaper = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `>`, "&gt;")

// Document is a tile before serialisation.
type Document struct {
	Width, Height float64
	Primitives    []shape.Primitive
}

// Wrap serialises prims inside a width x height repeat unit.
// Complexity: O(total attribute bytes).
func Wrap(prims []shape.Primitive, width, height float64) string {
	return Document{Width: width, Height: height, Primitives: prims}.String()
}

// String renders the document markup.
func (d Document) String() string {
	var b strings.Builder
	canvas := shape.Num(CanvasSize)

	b.WriteString(`<svg xmlns="` + svgNS + `" width="` + canvas + `" height="` + canvas +
		`" viewBox="0 0 ` + canvas + ` ` + canvas + `">`)
	b.WriteString(`<defs><pattern id="` + PatternID + `" x="0" y="0" width="` + shape.Num(d.Width) +
		`" height="` + shape.Num(d.Height) + `" patternUnits="userSpaceOnUse">`)
	for _, p := range d.Primitives {
		writePrimitive(&b, p)
	}
	b.WriteString(`</pattern></defs>`)
	b.WriteString(`<rect width="` + canvas + `" height="` + canvas + `" fill="url(#` + PatternID + `)"/>`)
	b.WriteString(`</svg>`)

	return b.String()
}

// DataURI encodes a document for use as a CSS background-image source.
func DataURI(doc string) string {
	return dataURIStart + base64.StdEncoding.EncodeToString([]byte(doc))
}

func writePrimitive(b *strings.Builder, p shape.Primitive) {
	b.WriteByte('<')
	b.WriteString(p.Tag)
	for _, a := range p.Attrs {
		b.WriteByte(' ')
		b.WriteString(a.Name)
		b.WriteString(`="`)
		b.WriteString(attrEscaper.Replace(a.Value))
		b.WriteByte('"')
	}
	if p.Text == "" {
		b.WriteString("/>")
		return
	}
	b.WriteByte('>')
	b.WriteString(textEscaper.Replace(p.Text))
	b.WriteString("</")
	b.WriteString(p.Tag)
	b.WriteByte('>')
}
