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

// Polyfill renders a scene of filled polygons and saves it as an image.
//
// Usage:
//
//	polyfill [-o out.png] [-scene name | -f scene.json] [-width w] [-height h] [-bg #rrggbb] [-v]
//	polyfill -list
//
// The output format is chosen from the extension of the output file name:
// .png, .bmp, .tif or .tiff. Without -scene or -f, the built-in scene
// original_shapes is rendered.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"seehuhn.de/go/polyfill"
	"seehuhn.de/go/polyfill/scenes"
)

type options struct {
	out       string
	sceneName string
	sceneFile string
	width     int
	height    int
	bg        *polyfill.Color
	verbose   bool
	list      bool
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: polyfill [flags]\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	opt := &options{}
	flag.StringVar(&opt.out, "o", "out.png", "output image `file` (.png, .bmp, .tif)")
	flag.StringVar(&opt.sceneName, "scene", "original_shapes", "built-in scene to render")
	flag.StringVar(&opt.sceneFile, "f", "", "read the scene from a JSON `file`")
	flag.IntVar(&opt.width, "width", 0, "canvas width, overrides the scene")
	flag.IntVar(&opt.height, "height", 0, "canvas height, overrides the scene")
	flag.Func("bg", "background `color` (#rrggbb), overrides the scene", func(s string) error {
		col, err := polyfill.ParseColor(s)
		if err != nil {
			return err
		}
		opt.bg = &col
		return nil
	})
	flag.BoolVar(&opt.verbose, "v", false, "print debug messages")
	flag.BoolVar(&opt.list, "list", false, "list the built-in scenes and exit")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() > 0 {
		usage()
	}

	level := slog.LevelInfo
	if opt.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	polyfill.SetLogger(logger)
	slog.SetDefault(logger)

	if opt.list {
		for _, name := range scenes.Names() {
			fmt.Println(name)
		}
		return
	}

	if err := run(opt); err != nil {
		logger.Error("rendering failed", "error", err)
		os.Exit(1)
	}
	fmt.Printf("image saved as %s\n", opt.out)
}

func run(opt *options) error {
	var s *scenes.Scene
	var err error
	if opt.sceneFile != "" {
		s, err = scenes.Load(opt.sceneFile)
	} else {
		s, err = scenes.Lookup(opt.sceneName)
	}
	if err != nil {
		return err
	}

	if opt.width > 0 {
		s.Width = opt.width
	}
	if opt.height > 0 {
		s.Height = opt.height
	}
	if opt.bg != nil {
		s.Background = *opt.bg
	}
	if err := scenes.CheckSize(s.Width, s.Height); err != nil {
		return err
	}

	slog.Debug("rendering scene",
		"scene", s.Name, "width", s.Width, "height", s.Height,
		"shapes", len(s.Shapes))
	c := s.Render()
	return c.Save(opt.out)
}
