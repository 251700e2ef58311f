// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggscene

import "context"

// Surface is the drawing capability a scene renders onto.
//
// The method set mirrors an HTML-canvas style context: path construction
// does not draw, Fill/Stroke/Clip act on the current path without clearing
// it, and BeginPath starts over. Save/Restore push and pop the complete
// style state (colors, line width, font size and clip).
//
// All coordinates are in surface pixels. Errors returned by a Surface are
// never swallowed by the renderers; they abort the remaining scene.
type Surface interface {
	Save()
	Restore()

	BeginPath()
	ClosePath()
	MoveTo(x, y float64)
	LineTo(x, y float64)

	// Arc adds a circular arc centered at (x, y) from angle start to end,
	// in radians, clockwise in a y-down coordinate system. When a path is
	// open, a straight segment joins the current point to the arc start.
	Arc(x, y, r, start, end float64)

	Clip()
	Fill() error
	Stroke() error

	SetLineWidth(width float64)
	SetFillStyle(color string)
	SetStrokeStyle(color string)
	SetFontSize(size float64)

	// FillText draws text with its baseline starting at (x, y).
	FillText(text string, x, y float64)

	// MeasureText returns the advance width of text at the current font
	// size, in pixels.
	MeasureText(text string) float64

	// DrawImage draws the image stored at path scaled into the box.
	DrawImage(path string, x, y, w, h float64) error

	// Draw commits everything drawn so far.
	Draw() error
}

// ImageInfo describes an image made available to the surface by an
// [ImageLoader]. The zero value means "no image".
type ImageInfo struct {
	Path   string
	Width  int
	Height int
}

// ImageLoader resolves an image URL into something the surface can draw.
// Load must return the zero ImageInfo and no error for an empty URL.
type ImageLoader interface {
	Load(ctx context.Context, url string) (ImageInfo, error)
}

// ImageLoaderFunc adapts a function to [ImageLoader].
type ImageLoaderFunc func(ctx context.Context, url string) (ImageInfo, error)

// Load implements ImageLoader.
func (f ImageLoaderFunc) Load(ctx context.Context, url string) (ImageInfo, error) {
	return f(ctx, url)
}

// Fetcher retrieves a raw scene payload.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// FetcherFunc adapts a function to [Fetcher].
type FetcherFunc func(ctx context.Context, url string) ([]byte, error)

// Fetch implements Fetcher.
func (f FetcherFunc) Fetch(ctx context.Context, url string) ([]byte, error) {
	return f(ctx, url)
}
