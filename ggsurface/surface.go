// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggsurface

import (
	"fmt"
	"image"
	"io"
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/ggscene"
)

// Canvas defaults for a fresh state.
const (
	defaultLineWidth = 1
	defaultFontSize  = 10
)

var (
	defaultFontOnce sync.Once
	defaultFont     *text.FontSource
)

// DefaultFont returns the Go Regular font source, parsed once.
// It returns nil if the embedded font cannot be parsed.
func DefaultFont() *text.FontSource {
	defaultFontOnce.Do(func() {
		src, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			ggscene.Logger().Warn("ggsurface: default font unavailable", "err", err)
			return
		}
		defaultFont = src
	})
	return defaultFont
}

// state is the style part of the canvas state stack.
type state struct {
	fill      gg.RGBA
	stroke    gg.RGBA
	lineWidth float64
	fontSize  float64
}

// Surface is a ggscene.Surface backed by a gg.Context.
//
// gg keeps a single brush for fill and stroke and its Push/Pop only saves
// transform, clip and mask. Surface therefore keeps its own fill color,
// stroke color, line width and font size, saves them on Save, and selects
// the right brush right before each fill, stroke or text draw.
//
// Surface is not safe for concurrent use.
type Surface struct {
	dc     *gg.Context
	font   *text.FontSource
	st     state
	stack  []state
	onDraw func()

	commits int
}

var _ ggscene.Surface = (*Surface)(nil)

// Option configures a Surface.
type Option func(*Surface)

// WithFont sets the font source used for text. The default is Go Regular.
func WithFont(src *text.FontSource) Option {
	return func(s *Surface) {
		if src != nil {
			s.font = src
		}
	}
}

// WithBackground clears the surface to c before anything is drawn.
func WithBackground(c gg.RGBA) Option {
	return func(s *Surface) {
		s.dc.ClearWithColor(c)
	}
}

// OnDraw registers a callback invoked after every commit.
func OnDraw(f func()) Option {
	return func(s *Surface) {
		s.onDraw = f
	}
}

// New creates a width x height pixel surface.
func New(width, height int, opts ...Option) *Surface {
	s := &Surface{
		dc:   gg.NewContext(width, height),
		font: DefaultFont(),
		st: state{
			fill:      gg.Black,
			stroke:    gg.Black,
			lineWidth: defaultLineWidth,
			fontSize:  defaultFontSize,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.apply()
	return s
}

// apply pushes the tracked state into the gg context.
func (s *Surface) apply() {
	s.dc.SetLineWidth(s.st.lineWidth)
	if s.font != nil {
		s.dc.SetFont(s.font.Face(s.st.fontSize))
	}
}

// Save implements ggscene.Surface.
func (s *Surface) Save() {
	s.stack = append(s.stack, s.st)
	s.dc.Push()
}

// Restore implements ggscene.Surface. An unmatched Restore is ignored.
func (s *Surface) Restore() {
	n := len(s.stack)
	if n == 0 {
		return
	}
	s.st = s.stack[n-1]
	s.stack = s.stack[:n-1]
	s.dc.Pop()
	s.apply()
}

// BeginPath implements ggscene.Surface.
func (s *Surface) BeginPath() { s.dc.ClearPath() }

// ClosePath implements ggscene.Surface.
func (s *Surface) ClosePath() { s.dc.ClosePath() }

// MoveTo implements ggscene.Surface.
func (s *Surface) MoveTo(x, y float64) { s.dc.MoveTo(x, y) }

// LineTo implements ggscene.Surface.
func (s *Surface) LineTo(x, y float64) { s.dc.LineTo(x, y) }

// Arc implements ggscene.Surface.
func (s *Surface) Arc(x, y, r, start, end float64) {
	sx, sy := x+r*math.Cos(start), y+r*math.Sin(start)
	if _, _, ok := s.dc.GetCurrentPoint(); ok {
		s.dc.LineTo(sx, sy)
	} else {
		s.dc.MoveTo(sx, sy)
	}
	if r > 0 && end != start {
		s.dc.DrawArc(x, y, r, start, end)
	}
}

// Clip implements ggscene.Surface. The path is kept.
func (s *Surface) Clip() { s.dc.ClipPreserve() }

// Fill implements ggscene.Surface. The path is kept.
func (s *Surface) Fill() error {
	s.dc.SetFillBrush(gg.Solid(s.st.fill))
	return s.dc.FillPreserve()
}

// Stroke implements ggscene.Surface. The path is kept.
func (s *Surface) Stroke() error {
	s.dc.SetStrokeBrush(gg.Solid(s.st.stroke))
	s.dc.SetLineWidth(s.st.lineWidth)
	return s.dc.StrokePreserve()
}

// SetLineWidth implements ggscene.Surface.
func (s *Surface) SetLineWidth(width float64) {
	s.st.lineWidth = width
	s.dc.SetLineWidth(width)
}

// SetFillStyle implements ggscene.Surface.
// An unparsable color is logged and leaves the fill color unchanged.
func (s *Surface) SetFillStyle(color string) {
	if c, ok := parseLogged(color); ok {
		s.st.fill = c
	}
}

// SetStrokeStyle implements ggscene.Surface.
// An unparsable color is logged and leaves the stroke color unchanged.
func (s *Surface) SetStrokeStyle(color string) {
	if c, ok := parseLogged(color); ok {
		s.st.stroke = c
	}
}

func parseLogged(color string) (gg.RGBA, bool) {
	c, err := ParseColor(color)
	if err != nil {
		ggscene.Logger().Warn("ggsurface: ignoring color", "color", color, "err", err)
		return gg.RGBA{}, false
	}
	return c, true
}

// SetFontSize implements ggscene.Surface.
func (s *Surface) SetFontSize(size float64) {
	s.st.fontSize = size
	if s.font != nil {
		s.dc.SetFont(s.font.Face(size))
	}
}

// FillText implements ggscene.Surface.
func (s *Surface) FillText(str string, x, y float64) {
	s.dc.SetFillBrush(gg.Solid(s.st.fill))
	s.dc.DrawString(str, x, y)
}

// MeasureText implements ggscene.Surface.
func (s *Surface) MeasureText(str string) float64 {
	w, _ := s.dc.MeasureString(str)
	return w
}

// DrawImage implements ggscene.Surface. The image file is decoded on every
// call; nothing is cached between draws.
func (s *Surface) DrawImage(path string, x, y, w, h float64) error {
	img, err := gg.LoadImage(path)
	if err != nil {
		return fmt.Errorf("ggsurface: load %s: %w", path, err)
	}
	s.dc.DrawImageEx(img, gg.DrawImageOptions{
		X:             x,
		Y:             y,
		DstWidth:      w,
		DstHeight:     h,
		Interpolation: gg.InterpBilinear,
		Opacity:       1,
		BlendMode:     gg.BlendNormal,
	})
	return nil
}

// Draw implements ggscene.Surface. It flushes pending GPU work, if any,
// and then runs the OnDraw callback.
func (s *Surface) Draw() error {
	if err := s.dc.FlushGPU(); err != nil {
		return fmt.Errorf("ggsurface: flush: %w", err)
	}
	s.commits++
	if s.onDraw != nil {
		s.onDraw()
	}
	return nil
}

// Commits returns how many times Draw has completed.
func (s *Surface) Commits() int { return s.commits }

// Context returns the underlying gg context.
func (s *Surface) Context() *gg.Context { return s.dc }

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.dc.Width() }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.dc.Height() }

// Image returns the rendered pixels.
func (s *Surface) Image() image.Image { return s.dc.Image() }

// EncodePNG writes the surface as PNG.
func (s *Surface) EncodePNG(w io.Writer) error { return s.dc.EncodePNG(w) }

// EncodeJPEG writes the surface as JPEG with the given quality (1-100).
func (s *Surface) EncodeJPEG(w io.Writer, quality int) error {
	return s.dc.EncodeJPEG(w, quality)
}

// SavePNG writes the surface to a PNG file.
func (s *Surface) SavePNG(path string) error { return s.dc.SavePNG(path) }

// Close releases the gg context.
func (s *Surface) Close() error { return s.dc.Close() }
