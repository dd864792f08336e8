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

import (
	"image"
	"image/color"
)

// Canvas is a fixed-size grid of RGB pixels, stored in row-major order.
// All drawing operations go through Set, which discards writes outside
// the canvas.
//
// Canvas implements the image.Image interface.
// A Canvas is not safe for concurrent use.
type Canvas struct {
	width  int
	height int
	pix    []Color
}

// MaxPixels is the largest number of pixels a Canvas can hold.
const MaxPixels = 1 << 28

// NewCanvas allocates a canvas of the given size. All pixels are
// initially black. Negative dimensions are treated as zero.
// If the canvas would have more than MaxPixels pixels, NewCanvas returns
// an empty canvas.
func NewCanvas(width, height int) *Canvas {
	width = max(width, 0)
	height = max(height, 0)
	if width > 0 && height > MaxPixels/width {
		width, height = 0, 0
	}
	return &Canvas{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}
}

// Width returns the width of the canvas in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas in pixels.
func (c *Canvas) Height() int {
	return c.height
}

func (c *Canvas) inside(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Set changes the color of the pixel at (x, y).
// If (x, y) lies outside the canvas, Set does nothing.
func (c *Canvas) Set(x, y int, col Color) {
	if !c.inside(x, y) {
		return
	}
	c.pix[y*c.width+x] = col
}

// Get returns the color of the pixel at (x, y).
// The second return value is false if (x, y) lies outside the canvas.
func (c *Canvas) Get(x, y int) (Color, bool) {
	if !c.inside(x, y) {
		return Color{}, false
	}
	return c.pix[y*c.width+x], true
}

// Clear sets every pixel of the canvas to col.
func (c *Canvas) Clear(col Color) {
	for i := range c.pix {
		c.pix[i] = col
	}
}

// hline paints the pixels xMin..xMax (inclusive) of row y.
// The span is clipped to the canvas before any pixel is written.
func (c *Canvas) hline(y, xMin, xMax int, col Color) {
	if y < 0 || y >= c.height {
		return
	}
	xMin = max(xMin, 0)
	xMax = min(xMax, c.width-1)
	if xMin > xMax {
		return
	}
	row := c.pix[y*c.width : (y+1)*c.width]
	for x := xMin; x <= xMax; x++ {
		row[x] = col
	}
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.RGBAModel
}

// At implements the image.Image interface.
// Pixels outside the canvas are reported as black.
func (c *Canvas) At(x, y int) color.Color {
	col, _ := c.Get(x, y)
	return col
}

// RGBA returns a copy of the canvas as an *image.RGBA.
// All pixels of the result are fully opaque.
func (c *Canvas) RGBA() *image.RGBA {
	img := image.NewRGBA(c.Bounds())
	for i, col := range c.pix {
		img.Pix[4*i+0] = col.R
		img.Pix[4*i+1] = col.G
		img.Pix[4*i+2] = col.B
		img.Pix[4*i+3] = 0xff
	}
	return img
}
