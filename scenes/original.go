package scenes

import "seehuhn.de/go/polyfill"

// originalScenes contains the reference picture of the polygon filler:
// four polygons on an 800x600 canvas, the last one with a hole.
var originalScenes = []Scene{
	{
		Name:       "shapes",
		Width:      800,
		Height:     600,
		Background: polyfill.White,
		Shapes: []Shape{
			{
				Outer: poly(
					165, 380, 185, 360, 180, 330, 207, 345, 233, 330,
					230, 360, 250, 380, 220, 385, 205, 410, 193, 383,
				),
				Fill:    polyfill.Red,
				Outline: polyfill.Black,
			},
			{
				Outer:   poly(321, 335, 288, 286, 339, 251, 374, 302),
				Fill:    polyfill.Green,
				Outline: polyfill.Black,
			},
			{
				Outer:   poly(377, 249, 411, 197, 436, 249),
				Fill:    polyfill.Blue,
				Outline: polyfill.Black,
			},
			{
				Outer: poly(
					413, 177, 448, 159, 502, 88, 553, 53, 535, 36,
					676, 37, 660, 52, 750, 145, 761, 179, 672, 192,
					659, 214, 615, 214, 632, 230, 580, 230, 597, 215,
					552, 214, 517, 144, 466, 180,
				),
				Holes: []polyfill.Polygon{
					poly(682, 175, 708, 120, 735, 148, 739, 170),
				},
				Fill:     polyfill.Yellow,
				HoleFill: polyfill.White,
				Outline:  polyfill.Black,
			},
		},
	},
}
