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
	"context"
	"log/slog"
)

// FillWithHoles paints a polygon with holes.
//
// The interior of outer is painted with outerColor first. Then the
// interior of every hole is painted with holeColor, in the order given;
// where holes overlap, the later hole wins. Finally the outlines of the
// outer polygon and of all holes are drawn using outline, so that the
// boundaries end up on top of both fills.
//
// Holes are not removed from the outer polygon: the hole pixels are just
// painted over. Use the background color as holeColor to make the holes
// appear empty. No check is made that the holes lie inside outer.
//
// If outer has fewer than three vertices, nothing is drawn.
func FillWithHoles(c *Canvas, outer Polygon, holes []Polygon, outerColor, holeColor, outline Color) {
	if len(outer) < 3 {
		return
	}

	var s Scanner
	s.fill(c, outer, outerColor)
	for _, hole := range holes {
		s.fill(c, hole, holeColor)
	}

	DrawOutline(c, outer, outline)
	for _, hole := range holes {
		DrawOutline(c, hole, outline)
	}

	if log := Logger(); log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("filled polygon with holes",
			"vertices", len(outer),
			"holes", len(holes))
	}
}
