// Command export writes the built-in scenes to JSON files, together with
// the rendered images.  The JSON files can be edited and passed to
// polyfill -f.  Run from the module root directory.
package main

import (
	"os"
	"path/filepath"

	"seehuhn.de/go/polyfill/scenes"
)

const outDir = "testdata/scenes"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, name := range scenes.Names() {
		s, err := scenes.Lookup(name)
		if err != nil {
			panic(err)
		}
		if err := writeJSON(s, filepath.Join(outDir, name+".json")); err != nil {
			panic(err)
		}
		if err := s.Render().Save(filepath.Join(outDir, name+".png")); err != nil {
			panic(err)
		}
	}
}

func writeJSON(s *scenes.Scene, fname string) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if e := f.Close(); err == nil {
			err = e
		}
	}()
	return scenes.Encode(f, s)
}
