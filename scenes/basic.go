package scenes

import "seehuhn.de/go/polyfill"

var orange = polyfill.Color{R: 255, G: 128, B: 0}

var basicScenes = []Scene{
	{
		Name:       "triangle",
		Width:      100,
		Height:     100,
		Background: polyfill.White,
		Shapes: []Shape{
			{Outer: poly(50, 10, 90, 85, 10, 85), Fill: polyfill.Red, Outline: polyfill.Black},
		},
	},
	{
		Name:       "rectangle",
		Width:      100,
		Height:     100,
		Background: polyfill.White,
		Shapes: []Shape{
			{Outer: poly(20, 25, 80, 25, 80, 75, 20, 75), Fill: polyfill.Green, Outline: polyfill.Black},
		},
	},
	{
		// concave polygon: some scanlines cross the boundary four times
		Name:       "arrow",
		Width:      100,
		Height:     100,
		Background: polyfill.White,
		Shapes: []Shape{
			{
				Outer:   poly(10, 40, 60, 40, 60, 20, 90, 50, 60, 80, 60, 60, 10, 60),
				Fill:    polyfill.Blue,
				Outline: polyfill.Black,
			},
		},
	},
	{
		// self-intersecting: the even-odd rule leaves the centre empty
		Name:       "star",
		Width:      100,
		Height:     100,
		Background: polyfill.White,
		Shapes: []Shape{
			{
				Outer:   poly(50, 10, 74, 82, 12, 38, 88, 38, 26, 82),
				Fill:    polyfill.Yellow,
				Outline: polyfill.Black,
			},
		},
	},
	{
		// the vertices at y=50 lie exactly on a scanline
		Name:       "pentagon",
		Width:      100,
		Height:     100,
		Background: polyfill.White,
		Shapes: []Shape{
			{
				Outer:   poly(50, 10, 90, 50, 74, 90, 26, 90, 10, 50),
				Fill:    orange,
				Outline: polyfill.Black,
			},
		},
	},
}
