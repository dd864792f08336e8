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

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"seehuhn.de/go/polyfill"
)

// jsonScene is the file representation of a Scene.
// Points are stored as [x, y] pairs and colors as "#rrggbb" strings.
type jsonScene struct {
	Name       string         `json:"name,omitempty"`
	Width      int            `json:"width"`
	Height     int            `json:"height"`
	Background polyfill.Color `json:"background"`
	Shapes     []jsonShape    `json:"shapes"`
}

// Points are decoded as []int, so that points of the wrong length can be
// detected.
type jsonShape struct {
	Outer    [][]int        `json:"outer"`
	Holes    [][][]int      `json:"holes,omitempty"`
	Fill     polyfill.Color `json:"fill"`
	HoleFill polyfill.Color `json:"hole_fill,omitzero"`
	Outline  polyfill.Color `json:"outline"`
}

// Encode writes the scene to w in JSON format.
func Encode(w io.Writer, s *Scene) error {
	js := jsonScene{
		Name:       s.Name,
		Width:      s.Width,
		Height:     s.Height,
		Background: s.Background,
		Shapes:     make([]jsonShape, len(s.Shapes)),
	}
	for i, sh := range s.Shapes {
		jsh := jsonShape{
			Outer:    toPairs(sh.Outer),
			Fill:     sh.Fill,
			HoleFill: sh.HoleFill,
			Outline:  sh.Outline,
		}
		for _, h := range sh.Holes {
			jsh.Holes = append(jsh.Holes, toPairs(h))
		}
		js.Shapes[i] = jsh
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(js); err != nil {
		return fmt.Errorf("scenes: encode %q: %w", s.Name, err)
	}
	return nil
}

// Decode reads a scene in JSON format from r.
// Unknown fields and trailing data are rejected, the canvas size must
// pass CheckSize, and every point must have exactly two coordinates.
// The polygons are not validated otherwise.
func Decode(r io.Reader) (*Scene, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var js jsonScene
	if err := dec.Decode(&js); err != nil {
		return nil, fmt.Errorf("scenes: decode: %w", err)
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); err != io.EOF {
		return nil, errors.New("scenes: decode: unexpected data after scene")
	}
	if err := CheckSize(js.Width, js.Height); err != nil {
		return nil, fmt.Errorf("scenes: decode: %w", err)
	}

	s := &Scene{
		Name:       js.Name,
		Width:      js.Width,
		Height:     js.Height,
		Background: js.Background,
		Shapes:     make([]Shape, len(js.Shapes)),
	}
	for i, jsh := range js.Shapes {
		outer, err := fromPairs(jsh.Outer)
		if err != nil {
			return nil, fmt.Errorf("scenes: decode: shape %d: outer: %w", i, err)
		}
		sh := Shape{
			Outer:    outer,
			Fill:     jsh.Fill,
			HoleFill: jsh.HoleFill,
			Outline:  jsh.Outline,
		}
		for j, h := range jsh.Holes {
			hole, err := fromPairs(h)
			if err != nil {
				return nil, fmt.Errorf("scenes: decode: shape %d: hole %d: %w", i, j, err)
			}
			sh.Holes = append(sh.Holes, hole)
		}
		s.Shapes[i] = sh
	}
	return s, nil
}

// Load reads a scene from a JSON file.
// If the file does not specify a name, the file name is used.
func Load(fname string) (s *Scene, err error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	s, err = Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	if s.Name == "" {
		s.Name = fname
	}
	return s, nil
}

func toPairs(p polyfill.Polygon) [][]int {
	res := make([][]int, len(p))
	for i, v := range p {
		res[i] = []int{v.X, v.Y}
	}
	return res
}

func fromPairs(pairs [][]int) (polyfill.Polygon, error) {
	res := make(polyfill.Polygon, len(pairs))
	for i, xy := range pairs {
		if len(xy) != 2 {
			return nil, fmt.Errorf("point %d has %d coordinates, want 2", i, len(xy))
		}
		res[i] = polyfill.Pt(xy[0], xy[1])
	}
	return res, nil
}
