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

// Package polyfill rasterizes filled polygons onto an RGB pixel buffer
// using integer geometry only.
//
// Polygons are filled with a scanline algorithm using the even-odd rule.
// Interior spans are shrunk by one pixel on each side, so that the fill
// never covers the boundary pixels; outlines are drawn afterwards with
// Bresenham's line algorithm and always end up on top. Holes are
// implemented by over-painting the hole interiors with a second color
// before the outlines are drawn.
//
// Coordinates may lie outside the canvas. Writes to such pixels are
// silently discarded.
package polyfill

//go:generate go run ./scenes/export

import (
	"image"
	"iter"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Point is a pixel position. The origin is the top-left corner of the
// canvas, x grows to the right and y grows downwards.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Polygon is a closed polygon, given by its vertices in order.
// The last vertex is implicitly connected back to the first one.
type Polygon []Point

// Edges iterates over the edges of the polygon, including the closing
// edge from the last vertex back to the first.
func (p Polygon) Edges() iter.Seq2[Point, Point] {
	return func(yield func(Point, Point) bool) {
		n := len(p)
		for i := range n {
			if !yield(p[i], p[(i+1)%n]) {
				return
			}
		}
	}
}

// Bounds returns the smallest rectangle containing all vertices.
// As usual for image.Rectangle, Max is exclusive.
// The result is empty if the polygon has no vertices.
func (p Polygon) Bounds() image.Rectangle {
	if len(p) == 0 {
		return image.Rectangle{}
	}
	r := image.Rectangle{Min: image.Point(p[0]), Max: image.Point(p[0])}
	for _, v := range p[1:] {
		r.Min.X = min(r.Min.X, v.X)
		r.Min.Y = min(r.Min.Y, v.Y)
		r.Max.X = max(r.Max.X, v.X)
		r.Max.Y = max(r.Max.Y, v.Y)
	}
	r.Max.X++
	r.Max.Y++
	return r
}

// yRange returns the smallest and largest vertex y coordinate.
func (p Polygon) yRange() (yMin, yMax int) {
	yMin, yMax = p[0].Y, p[0].Y
	for _, v := range p[1:] {
		yMin = min(yMin, v.Y)
		yMax = max(yMax, v.Y)
	}
	return yMin, yMax
}

// Path converts the polygon into a closed vector path.
// Vertices are placed at pixel centres, so that a renderer using the
// usual pixel-area convention draws the outline over the same pixels
// which DrawOutline paints.
func (p Polygon) Path() *path.Data {
	res := &path.Data{}
	if len(p) == 0 {
		return res
	}
	res.MoveTo(pixelCentre(p[0]))
	for _, v := range p[1:] {
		res.LineTo(pixelCentre(v))
	}
	return res.Close()
}

func pixelCentre(p Point) vec.Vec2 {
	return vec.Vec2{X: float64(p.X) + 0.5, Y: float64(p.Y) + 0.5}
}
