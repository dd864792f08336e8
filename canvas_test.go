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
	"math"
	"strconv"
	"testing"
)

func TestCanvasSetGet(t *testing.T) {
	c := NewCanvas(4, 3)
	if c.Width() != 4 || c.Height() != 3 {
		t.Fatalf("size is %dx%d, want 4x3", c.Width(), c.Height())
	}

	c.Set(1, 2, Red)
	c.Set(3, 0, Blue)

	col, ok := c.Get(1, 2)
	if !ok || col != Red {
		t.Errorf("Get(1, 2) = %v, %t, want %v, true", col, ok, Red)
	}
	col, ok = c.Get(3, 0)
	if !ok || col != Blue {
		t.Errorf("Get(3, 0) = %v, %t, want %v, true", col, ok, Blue)
	}
	col, ok = c.Get(0, 0)
	if !ok || col != Black {
		t.Errorf("Get(0, 0) = %v, %t, want %v, true", col, ok, Black)
	}
}

func TestCanvasOutside(t *testing.T) {
	c := NewCanvas(4, 3)
	c.Clear(White)

	outside := []Point{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {4, 3}, {-100, 200}}
	for _, p := range outside {
		c.Set(p.X, p.Y, Red) // must not panic
		if col, ok := c.Get(p.X, p.Y); ok {
			t.Errorf("Get(%d, %d) = %v, true, want absent", p.X, p.Y, col)
		}
	}

	for y := range 3 {
		for x := range 4 {
			if col, _ := c.Get(x, y); col != White {
				t.Errorf("pixel (%d, %d) changed to %v", x, y, col)
			}
		}
	}
}

func TestCanvasNegativeSize(t *testing.T) {
	c := NewCanvas(-5, 10)
	if c.Width() != 0 || c.Height() != 10 {
		t.Errorf("size is %dx%d, want 0x10", c.Width(), c.Height())
	}
	c.Set(0, 0, Red)
	if _, ok := c.Get(0, 0); ok {
		t.Error("empty canvas reports a pixel")
	}
}

func TestCanvasHugeSize(t *testing.T) {
	sizes := [][2]int{
		{1 << (strconv.IntSize / 2), 1 << (strconv.IntSize / 2)}, // width*height wraps to 0
		{math.MaxInt, math.MaxInt},
		{math.MaxInt, 1},
		{MaxPixels, 2},
		{MaxPixels + 1, 1},
	}
	for _, size := range sizes {
		c := NewCanvas(size[0], size[1])
		if c.Width() != 0 || c.Height() != 0 {
			t.Errorf("%dx%d: got size %dx%d, want 0x0",
				size[0], size[1], c.Width(), c.Height())
		}
		c.Set(1, 0, Red) // must not panic
		FillPolygon(c, Polygon{{0, 0}, {10, 0}, {10, 10}}, Red, Black)
		if _, ok := c.Get(1, 0); ok {
			t.Errorf("%dx%d: empty canvas reports a pixel", size[0], size[1])
		}
	}
}

func TestCanvasImage(t *testing.T) {
	c := NewCanvas(3, 2)
	c.Clear(Yellow)
	c.Set(2, 1, Color{R: 1, G: 2, B: 3})

	var img image.Image = c
	if img.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Errorf("Bounds() = %v", img.Bounds())
	}
	want := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	if got := color.RGBAModel.Convert(img.At(2, 1)); got != want {
		t.Errorf("At(2, 1) = %v, want %v", got, want)
	}

	rgba := c.RGBA()
	if got := rgba.RGBAAt(2, 1); got != want {
		t.Errorf("RGBAAt(2, 1) = %v, want %v", got, want)
	}
	if got := rgba.RGBAAt(0, 0); got != (color.RGBA{R: 255, G: 255, B: 0, A: 255}) {
		t.Errorf("RGBAAt(0, 0) = %v", got)
	}
	if !rgba.Opaque() {
		t.Error("RGBA() result is not opaque")
	}
}

// pixels returns the set of canvas pixels which have the given color.
func pixels(c *Canvas, col Color) map[Point]bool {
	res := make(map[Point]bool)
	for y := range c.Height() {
		for x := range c.Width() {
			if got, _ := c.Get(x, y); got == col {
				res[Point{x, y}] = true
			}
		}
	}
	return res
}

// samePixels compares two canvases pixel by pixel.
func samePixels(t *testing.T, got, want *Canvas) {
	t.Helper()
	if got.Width() != want.Width() || got.Height() != want.Height() {
		t.Fatalf("size %dx%d, want %dx%d",
			got.Width(), got.Height(), want.Width(), want.Height())
	}
	diffs := 0
	for y := range want.Height() {
		for x := range want.Width() {
			a, _ := got.Get(x, y)
			b, _ := want.Get(x, y)
			if a != b {
				if diffs < 10 {
					t.Errorf("pixel (%d, %d) is %v, want %v", x, y, a, b)
				}
				diffs++
			}
		}
	}
	if diffs >= 10 {
		t.Errorf("%d pixels differ in total", diffs)
	}
}
