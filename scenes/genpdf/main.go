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

// Command genpdf generates vector reference images for the built-in scenes.
// It writes one PDF per scene and, with -png, renders them to PNGs using
// Ghostscript.  Run from the module root directory.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/polyfill"
	"seehuhn.de/go/polyfill/scenes"
)

const refDir = "testdata/reference"

func main() {
	withPNG := flag.Bool("png", false, "also render the PDFs to PNG using Ghostscript")
	flag.Parse()

	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, name := range scenes.Names() {
		s, err := scenes.Lookup(name)
		if err != nil {
			panic(err)
		}
		pdfPath := filepath.Join(refDir, name+".pdf")
		if err := generatePDF(s, pdfPath); err != nil {
			panic(fmt.Errorf("%s: %w", name, err))
		}

		if *withPNG {
			pngPath := filepath.Join(refDir, name+".png")
			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(s *scenes.Scene, pdfPath string) error {
	// 1 point = 1 pixel at 72 DPI
	w, h := float64(s.Width), float64(s.Height)
	paper := &pdf.Rectangle{URx: w, URy: h}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(pdfColor(s.Background))
	page.Rectangle(0, 0, w, h)
	page.Fill()

	// PDF origin is bottom-left, scenes use top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, h})

	page.SetLineWidth(1)
	page.SetLineCap(graphics.LineCapButt)
	page.SetLineJoin(graphics.LineJoinMiter)

	for _, sh := range s.Shapes {
		if len(sh.Outer) < 3 {
			continue
		}

		page.SetFillColor(pdfColor(sh.Fill))
		addPolygon(page, sh.Outer)
		page.FillEvenOdd()

		page.SetFillColor(pdfColor(sh.HoleFill))
		for _, hole := range sh.Holes {
			if len(hole) < 3 {
				continue
			}
			addPolygon(page, hole)
			page.FillEvenOdd()
		}

		page.SetStrokeColor(pdfColor(sh.Outline))
		addPolygon(page, sh.Outer)
		for _, hole := range sh.Holes {
			addPolygon(page, hole)
		}
		page.Stroke()
	}

	return page.Close()
}

// pathWriter is the part of the PDF page API used to construct paths.
type pathWriter interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
}

func addPolygon(page pathWriter, p polyfill.Polygon) {
	for cmd, pts := range p.Path().Iter() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}

func pdfColor(c polyfill.Color) color.Color {
	return color.DeviceRGB{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=png16m: 24-bit RGB
	// -r72: 1 point = 1 pixel
	// -dGraphicsAlphaBits=1: no anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=png16m",
		"-r72",
		"-dGraphicsAlphaBits=1",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
