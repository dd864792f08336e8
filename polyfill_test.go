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
	"slices"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestEdges(t *testing.T) {
	p := Polygon{{0, 0}, {4, 0}, {2, 3}}
	var got [][2]Point
	for a, b := range p.Edges() {
		got = append(got, [2]Point{a, b})
	}
	want := [][2]Point{
		{{0, 0}, {4, 0}},
		{{4, 0}, {2, 3}},
		{{2, 3}, {0, 0}},
	}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	// early exit
	n := 0
	for range p.Edges() {
		n++
		break
	}
	if n != 1 {
		t.Errorf("loop ran %d times", n)
	}

	for range Polygon(nil).Edges() {
		t.Error("empty polygon has edges")
	}
}

func TestBounds(t *testing.T) {
	cases := []struct {
		p    Polygon
		want image.Rectangle
	}{
		{nil, image.Rectangle{}},
		{Polygon{{3, 4}}, image.Rect(3, 4, 4, 5)},
		{Polygon{{5, -2}, {-1, 7}, {2, 2}}, image.Rect(-1, -2, 6, 8)},
	}
	for _, tc := range cases {
		if got := tc.p.Bounds(); got != tc.want {
			t.Errorf("%v: got %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestPath(t *testing.T) {
	p := Polygon{{0, 0}, {10, 0}, {10, 5}}
	d := p.Path()

	wantCmds := []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose}
	if !slices.Equal(d.Cmds, wantCmds) {
		t.Errorf("commands %v, want %v", d.Cmds, wantCmds)
	}
	wantCoords := []vec.Vec2{{X: 0.5, Y: 0.5}, {X: 10.5, Y: 0.5}, {X: 10.5, Y: 5.5}}
	if !slices.Equal(d.Coords, wantCoords) {
		t.Errorf("coordinates %v, want %v", d.Coords, wantCoords)
	}

	if d := Polygon(nil).Path(); len(d.Cmds) != 0 {
		t.Errorf("empty polygon gives %v", d.Cmds)
	}
}
