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

// Package scenes provides pictures made of filled polygons, both built-in
// ones and ones loaded from JSON files, and renders them onto a canvas.
package scenes

import (
	"errors"
	"fmt"

	"seehuhn.de/go/polyfill"
)

// MaxSize is the largest canvas width or height a scene may use.
const MaxSize = 1 << 14

// ErrInvalidSize is returned for scenes with a canvas size outside the
// range 1..MaxSize.
var ErrInvalidSize = errors.New("scenes: invalid canvas size")

// CheckSize returns an error wrapping ErrInvalidSize unless width and
// height both lie in the range 1..MaxSize.
func CheckSize(width, height int) error {
	if width < 1 || width > MaxSize || height < 1 || height > MaxSize {
		return fmt.Errorf("%w %dx%d", ErrInvalidSize, width, height)
	}
	return nil
}

// Scene is a picture made of filled polygons.
type Scene struct {
	Name       string         // lowercase a-z, 0-9 and _ only
	Width      int            // canvas width in pixels
	Height     int            // canvas height in pixels
	Background polyfill.Color // initial color of every pixel
	Shapes     []Shape        // painted in order
}

// Shape is a filled polygon, optionally with holes.
type Shape struct {
	Outer    polyfill.Polygon
	Holes    []polyfill.Polygon // empty for a plain polygon
	Fill     polyfill.Color     // interior of Outer
	HoleFill polyfill.Color     // interior of the holes
	Outline  polyfill.Color     // all boundaries
}

// poly is a helper to create a polygon from a list of x, y pairs.
func poly(coords ...int) polyfill.Polygon {
	p := make(polyfill.Polygon, len(coords)/2)
	for i := range p {
		p[i] = polyfill.Pt(coords[2*i], coords[2*i+1])
	}
	return p
}
