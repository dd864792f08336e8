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

package scenes

import "seehuhn.de/go/polyfill"

// Render allocates a canvas of the scene's size, fills it with the
// background color and draws the scene.
func (s *Scene) Render() *polyfill.Canvas {
	c := polyfill.NewCanvas(s.Width, s.Height)
	c.Clear(s.Background)
	s.Draw(c)
	return c
}

// Draw paints the shapes of the scene onto c, in order.
// The canvas is not cleared first.
func (s *Scene) Draw(c *polyfill.Canvas) {
	for i := range s.Shapes {
		sh := &s.Shapes[i]
		if len(sh.Holes) == 0 {
			polyfill.FillPolygon(c, sh.Outer, sh.Fill, sh.Outline)
		} else {
			polyfill.FillWithHoles(c, sh.Outer, sh.Holes, sh.Fill, sh.HoleFill, sh.Outline)
		}
	}
	polyfill.Logger().Debug("scene drawn", "scene", s.Name, "shapes", len(s.Shapes))
}
