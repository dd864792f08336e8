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
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnknownFormat is returned when an image file name has an extension
// which does not correspond to a supported format.
var ErrUnknownFormat = errors.New("polyfill: unknown image format")

// Format is a lossless image file format.
type Format int

// These are the supported image formats.
const (
	PNG Format = iota
	BMP
	TIFF
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case BMP:
		return "bmp"
	case TIFF:
		return "tiff"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath determines the image format from the extension of a file
// name. Recognised extensions are .png, .bmp, .tif and .tiff, in any
// letter case.
func FormatFromPath(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		return PNG, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Encode writes the canvas to w, using the given image format.
func (c *Canvas) Encode(w io.Writer, f Format) error {
	img := c.RGBA()

	var err error
	switch f {
	case PNG:
		err = png.Encode(w, img)
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("polyfill: encode %s: %w", f, err)
	}
	return nil
}

// Save writes the canvas to the named file. The image format is chosen
// based on the file name extension, see [FormatFromPath].
//
// The image is first written to a temporary file in the same directory,
// which is then renamed. If Save fails, an existing file of the same name
// is left unchanged. A replaced file keeps its permissions; a new file
// is created with mode 0666, as modified by the umask.
func (c *Canvas) Save(name string) (err error) {
	f, err := FormatFromPath(name)
	if err != nil {
		return err
	}

	log := Logger()
	log.Debug("saving image", "path", name, "format", f,
		"width", c.width, "height", c.height)

	dir, base := filepath.Split(name)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return fmt.Errorf("polyfill: save %q: %w", name, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	err = c.Encode(tmp, f)
	if cerr := tmp.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("polyfill: save %q: %w", name, cerr)
	}
	if err != nil {
		return err
	}

	// CreateTemp uses mode 0600.
	if err = os.Chmod(tmp.Name(), fileMode(name)); err != nil {
		return fmt.Errorf("polyfill: save %q: %w", name, err)
	}
	if err = os.Rename(tmp.Name(), name); err != nil {
		return fmt.Errorf("polyfill: save %q: %w", name, err)
	}

	log.Debug("image saved", "path", name)
	return nil
}

// fileMode returns the permissions for the file written by Save: those of
// an existing file, or 0666 minus the umask for a new one.
func fileMode(name string) os.FileMode {
	if fi, err := os.Stat(name); err == nil && fi.Mode().IsRegular() {
		return fi.Mode().Perm()
	}
	return os.FileMode(0o666 &^ umask)
}
