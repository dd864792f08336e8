package scenes

import "seehuhn.de/go/polyfill"

var grey = polyfill.Color{R: 200, G: 200, B: 200}

var holeScenes = []Scene{
	{
		Name:       "square",
		Width:      100,
		Height:     100,
		Background: polyfill.White,
		Shapes: []Shape{
			{
				Outer:    poly(10, 10, 90, 10, 90, 90, 10, 90),
				Holes:    []polyfill.Polygon{poly(35, 35, 65, 35, 65, 65, 35, 65)},
				Fill:     polyfill.Red,
				HoleFill: polyfill.White,
				Outline:  polyfill.Black,
			},
		},
	},
	{
		// overlapping holes are painted in order
		Name:       "overlap",
		Width:      100,
		Height:     100,
		Background: polyfill.White,
		Shapes: []Shape{
			{
				Outer: poly(10, 10, 90, 10, 90, 90, 10, 90),
				Holes: []polyfill.Polygon{
					poly(20, 20, 55, 20, 55, 55, 20, 55),
					poly(45, 45, 80, 45, 80, 80, 45, 80),
				},
				Fill:     polyfill.Blue,
				HoleFill: grey,
				Outline:  polyfill.Black,
			},
		},
	},
	{
		// the hole shares part of the bottom edge of the outer triangle
		Name:       "touching",
		Width:      100,
		Height:     100,
		Background: polyfill.White,
		Shapes: []Shape{
			{
				Outer:    poly(10, 90, 50, 10, 90, 90),
				Holes:    []polyfill.Polygon{poly(30, 90, 50, 50, 70, 90)},
				Fill:     polyfill.Green,
				HoleFill: polyfill.White,
				Outline:  polyfill.Black,
			},
		},
	},
}
