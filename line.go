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

import "iter"

// Line iterates over the pixels of the straight line from p1 to p2,
// in order from p1 to p2. Both end points are included.
// The pixels are chosen using Bresenham's algorithm, which uses integer
// arithmetic only. If p1 == p2, the sequence consists of a single pixel.
func Line(p1, p2 Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		x, y := p1.X, p1.Y

		dx := abs(p2.X - x)
		dy := abs(p2.Y - y)
		sx := -1
		if x < p2.X {
			sx = 1
		}
		sy := -1
		if y < p2.Y {
			sy = 1
		}

		err := dx - dy
		for {
			if !yield(Point{x, y}) {
				return
			}
			if x == p2.X && y == p2.Y {
				return
			}

			e2 := 2 * err
			if e2 > -dy {
				err -= dy
				x += sx
			}
			if e2 < dx {
				err += dx
				y += sy
			}
		}
	}
}

// DrawLine paints the pixels of the line from p1 to p2, including both
// end points. Pixels outside the canvas are skipped.
func DrawLine(c *Canvas, p1, p2 Point, col Color) {
	for p := range Line(p1, p2) {
		c.Set(p.X, p.Y, col)
	}
}

// DrawOutline draws the edges of the closed polygon given by vertices.
// A polygon with a single vertex is drawn as a single pixel.
func DrawOutline(c *Canvas, vertices Polygon, col Color) {
	for p1, p2 := range vertices.Edges() {
		DrawLine(c, p1, p2, col)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
