// seehuhn.de/go/polyfill - integer polygon rasterization
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package polyfill

import "slices"

// Crossings appends to dst the x coordinates where the horizontal line at
// height y crosses the edges of the polygon, and returns the extended
// slice. The appended values are sorted in increasing order.
//
// An edge from (x1, y1) to (x2, y2) crosses the line if y1 <= y < y2 or
// y2 <= y < y1. Because this test is half-open, a vertex where the
// boundary passes through the line is counted for exactly one of its two
// edges. At a local extremum in y the vertex is counted twice or not at
// all, so the parity is unaffected. Horizontal edges are never counted.
// The crossing is located by integer interpolation, rounding towards zero.
func Crossings(dst []int, vertices Polygon, y int) []int {
	start := len(dst)
	for p1, p2 := range vertices.Edges() {
		if p1.Y == p2.Y {
			continue
		}
		if (p1.Y <= y && y < p2.Y) || (p2.Y <= y && y < p1.Y) {
			x := p1.X + (y-p1.Y)*(p2.X-p1.X)/(p2.Y-p1.Y)
			dst = append(dst, x)
		}
	}
	slices.Sort(dst[start:])
	return dst
}

// Scanner computes the interior of polygons, one scanline at a time.
// The zero value is ready for use. Internal buffers grow as needed and
// are reused across calls.
//
// A Scanner is not safe for concurrent use.
type Scanner struct {
	xs []int // crossings for the current scanline
}

// Spans calls emit for every run of interior pixels of the polygon,
// using the even-odd rule. Rows are visited from top to bottom, and
// within each row the runs are reported from left to right. Each run
// covers the pixels xMin..xMax of row y, both ends included.
//
// The runs exclude the crossing pixels themselves: for a pair of
// consecutive crossings a < b, the run is a+1..b-1. If this is empty, no
// run is reported. A trailing unpaired crossing is ignored.
//
// Polygons with fewer than three vertices have no interior.
func (s *Scanner) Spans(vertices Polygon, emit func(y, xMin, xMax int)) {
	if len(vertices) < 3 {
		return
	}

	yMin, yMax := vertices.yRange()
	for y := yMin; y <= yMax; y++ {
		s.xs = Crossings(s.xs[:0], vertices, y)
		for i := 0; i+1 < len(s.xs); i += 2 {
			xMin := s.xs[i] + 1
			xMax := s.xs[i+1] - 1
			if xMin <= xMax {
				emit(y, xMin, xMax)
			}
		}
	}
}

// fill paints the interior of the polygon onto c.
func (s *Scanner) fill(c *Canvas, vertices Polygon, col Color) {
	s.Spans(vertices, func(y, xMin, xMax int) {
		c.hline(y, xMin, xMax, col)
	})
}

// FillInterior paints the interior of the polygon, as determined by
// [Scanner.Spans]. Boundary pixels are not touched and no outline is
// drawn.
func FillInterior(c *Canvas, vertices Polygon, fill Color) {
	var s Scanner
	s.fill(c, vertices, fill)
}

// FillPolygon paints the interior of the polygon using the fill color
// and then draws the outline on top, using the outline color.
// Polygons with fewer than three vertices are ignored.
func FillPolygon(c *Canvas, vertices Polygon, fill, outline Color) {
	if len(vertices) < 3 {
		return
	}
	FillInterior(c, vertices, fill)
	DrawOutline(c, vertices, outline)
}
