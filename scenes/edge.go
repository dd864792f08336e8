package scenes

import "seehuhn.de/go/polyfill"

// edgeScenes exercise unusual input: geometry outside the canvas,
// degenerate polygons, and polygons sharing an edge.
var edgeScenes = []Scene{
	{
		Name:       "offcanvas",
		Width:      100,
		Height:     100,
		Background: polyfill.White,
		Shapes: []Shape{
			{
				Outer:   poly(-30, 20, 60, -40, 130, 50, 40, 140),
				Fill:    polyfill.Red,
				Outline: polyfill.Black,
			},
		},
	},
	{
		Name:       "degenerate",
		Width:      100,
		Height:     100,
		Background: polyfill.White,
		Shapes: []Shape{
			// two vertices: ignored completely
			{Outer: poly(10, 10, 90, 90), Fill: polyfill.Red, Outline: polyfill.Black},
			// collinear vertices: outline only
			{Outer: poly(10, 50, 50, 50, 90, 50), Fill: polyfill.Red, Outline: polyfill.Blue},
			{Outer: poly(20, 60, 40, 80, 60, 100), Fill: polyfill.Red, Outline: polyfill.Green},
		},
	},
	{
		Name:       "adjacent",
		Width:      100,
		Height:     100,
		Background: polyfill.White,
		Shapes: []Shape{
			{Outer: poly(10, 20, 50, 20, 50, 80, 10, 80), Fill: polyfill.Red, Outline: polyfill.Black},
			{Outer: poly(50, 20, 90, 20, 90, 80, 50, 80), Fill: polyfill.Blue, Outline: polyfill.Black},
		},
	},
}
