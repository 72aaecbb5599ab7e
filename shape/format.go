// SPDX-License-Identifier: MIT
// Package: motif/shape
//
// format.go - numeric rounding and path data.
//
// Every coordinate that reaches a document goes through Num, so byte-level
// comparisons of generated documents are stable.

package shape

import (
	"math"
	"strconv"
	"strings"
)

const roundScale = 10.0 // one decimal place

// Round rounds v to one decimal place. NaN and infinities become 0 and
// negative zero becomes positive zero.
func Round(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	r := math.Round(v*roundScale) / roundScale
	if r == 0 {
		return 0
	}

	return r
}

// Num formats v rounded to one decimal, without trailing zeros ("12", "3.5").
func Num(v float64) string {
	return strconv.FormatFloat(Round(v), 'f', -1, 64)
}

// PathData accumulates SVG path commands with rounded coordinates.
// The zero value is ready to use.
type PathData struct {
	b strings.Builder
}

// MoveTo starts a new subpath.
func (d *PathData) MoveTo(x, y float64) *PathData {
	d.cmd("M", x, y)
	return d
}

// LineTo draws a straight segment.
func (d *PathData) LineTo(x, y float64) *PathData {
	d.cmd("L", x, y)
	return d
}

// QuadTo draws a quadratic Bezier with control (cx,cy) ending at (x,y).
func (d *PathData) QuadTo(cx, cy, x, y float64) *PathData {
	d.cmd("Q", cx, cy, x, y)
	return d
}

// Close closes the current subpath.
func (d *PathData) Close() *PathData {
	if d.b.Len() > 0 {
		d.b.WriteByte(' ')
	}
	d.b.WriteByte('Z')

	return d
}

// String returns the accumulated path data.
func (d *PathData) String() string { return d.b.String() }

func (d *PathData) cmd(op string, coords ...float64) {
	if d.b.Len() > 0 {
		d.b.WriteByte(' ')
	}
	d.b.WriteString(op)
	for i, c := range coords {
		if i > 0 {
			d.b.WriteByte(' ')
		}
		d.b.WriteString(Num(c))
	}
}

// points serialises a vertex list as "x,y x,y ...".
func points(pts [][2]float64) string {
	var b strings.Builder
	for i, p := range pts {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(Num(p[0]))
		b.WriteByte(',')
		b.WriteString(Num(p[1]))
	}

	return b.String()
}
