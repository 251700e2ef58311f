// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package export

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"strings"

	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/draw"

	"github.com/gogpu/ggscene"
)

// Imager is anything holding rendered pixels, such as *ggsurface.Surface.
type Imager interface {
	Image() image.Image
}

// File types accepted by TempFileOptions.FileType.
const (
	FileTypePNG = "png"
	FileTypeJPG = "jpg"
)

// DefaultQuality is the JPEG quality used when none is given.
const DefaultQuality = 90

// TempFileOptions selects what part of the surface is exported and how.
// Zero values mean "whole surface", "no resize", PNG and DefaultQuality.
type TempFileOptions struct {
	// X, Y, Width, Height select a region of the surface in pixels.
	X, Y, Width, Height int

	// DestWidth and DestHeight resize the exported image.
	// When only one is set the other keeps the aspect ratio.
	DestWidth, DestHeight int

	// FileType is "png" or "jpg".
	FileType string

	// Quality is the JPEG quality, 1-100.
	Quality int

	// Dir is the directory for the file. Empty uses os.TempDir().
	Dir string
}

// ToTempFile writes the surface pixels to a new temporary file and
// returns its path. The caller owns the file.
func ToTempFile(src Imager, opts TempFileOptions) (string, error) {
	img, err := Prepare(src.Image(), opts)
	if err != nil {
		return "", err
	}

	ft := strings.ToLower(opts.FileType)
	switch ft {
	case "", FileTypePNG:
		ft = FileTypePNG
	case FileTypeJPG, "jpeg":
		ft = FileTypeJPG
	default:
		return "", fmt.Errorf("export: unsupported file type %q", opts.FileType)
	}

	f, err := os.CreateTemp(opts.Dir, "ggscene-*."+ft)
	if err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	if ft == FileTypePNG {
		err = png.Encode(f, img)
	} else {
		q := opts.Quality
		if q <= 0 || q > 100 {
			q = DefaultQuality
		}
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: q})
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("export: encode %s: %w", f.Name(), err)
	}

	ggscene.Logger().Info("export: wrote temp file", "path", f.Name(),
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return f.Name(), nil
}

// Prepare crops and resizes img according to opts.
func Prepare(img image.Image, opts TempFileOptions) (image.Image, error) {
	b := img.Bounds()
	if opts.Width > 0 || opts.Height > 0 || opts.X != 0 || opts.Y != 0 {
		w, h := opts.Width, opts.Height
		if w <= 0 {
			w = b.Dx() - opts.X
		}
		if h <= 0 {
			h = b.Dy() - opts.Y
		}
		r := image.Rect(opts.X, opts.Y, opts.X+w, opts.Y+h).Add(b.Min).Intersect(b)
		if r.Empty() {
			return nil, fmt.Errorf("export: region %v outside surface %v", r, b)
		}
		img = crop(img, r)
		b = img.Bounds()
	}

	dw, dh := opts.DestWidth, opts.DestHeight
	switch {
	case dw <= 0 && dh <= 0:
		return img, nil
	case dw <= 0:
		dw = b.Dx() * dh / b.Dy()
	case dh <= 0:
		dh = b.Dy() * dw / b.Dx()
	}
	if dw == b.Dx() && dh == b.Dy() {
		return img, nil
	}
	return transform.Resize(img, dw, dh, transform.Linear), nil
}

func crop(img image.Image, r image.Rectangle) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(dst, dst.Bounds(), img, r.Min, draw.Src)
	return dst
}
