// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggscene

// Text defaults, in device-independent units.
const (
	DefaultFontSize = 24
	DefaultMaxWidth = 100
)

// boldOffset is the displacement used to fake a bold weight by redrawing.
const boldOffset = 0.5

// DrawLine strokes a segment from (x, y) to (x+w, y+h).
// Nothing is drawn when both w and h are non-positive.
// The segment starts a fresh path with BeginPath, so subpaths left open by
// earlier directives are not stroked again; traces show that extra call.
func DrawLine(s Surface, conv Converter, a *Attrs) error {
	if a.W <= 0 && a.H <= 0 {
		return nil
	}
	s.Save()
	defer s.Restore()

	x, y := conv.ToPixels(a.X), conv.ToPixels(a.Y)
	s.BeginPath()
	s.MoveTo(x, y)
	s.LineTo(x+conv.ToPixels(a.W), y+conv.ToPixels(a.H))

	ApplyStyle(s, conv, a)
	return s.Stroke()
}

// DrawRect clips to, fills and strokes a rectangle whose corners are
// rounded according to the topLeft/topRight/bottomLeft/bottomRight flags.
func DrawRect(s Surface, conv Converter, a *Attrs) error {
	return RoundedPath(s, conv, a.X, a.Y, a.W, a.H, a.R, a.Corners(), func() error {
		ApplyStyle(s, conv, a)
		s.Clip()
		if err := s.Fill(); err != nil {
			return err
		}
		return s.Stroke()
	})
}

// DrawText fills a.Text starting at baseline (x, y), one line per wrapped
// line when wrap is set. Bold text is drawn five times, the extra four
// shifted by half a unit in each direction.
func DrawText(s Surface, conv Converter, a *Attrs) error {
	if a.Text == "" {
		return nil
	}
	s.Save()
	defer s.Restore()

	ApplyStyle(s, conv, a)

	fontSize := float64(DefaultFontSize)
	if a.FontSize != nil && *a.FontSize != 0 {
		fontSize = *a.FontSize
	}
	s.SetFontSize(conv.ToPixels(fontSize))

	lines := []string{a.Text}
	if a.Wrap {
		maxWidth := a.MaxWidth
		if maxWidth == 0 {
			maxWidth = DefaultMaxWidth
		}
		lines = Wrap(s, conv, a.Text, maxWidth)
	}

	for i, line := range lines {
		top := a.Y + (fontSize+a.LineSpace)*float64(i)
		s.FillText(line, conv.ToPixels(a.X), conv.ToPixels(top))
		if a.Bold {
			s.FillText(line, conv.ToPixels(a.X-boldOffset), conv.ToPixels(top))
			s.FillText(line, conv.ToPixels(a.X+boldOffset), conv.ToPixels(top))
			s.FillText(line, conv.ToPixels(a.X), conv.ToPixels(top+boldOffset))
			s.FillText(line, conv.ToPixels(a.X), conv.ToPixels(top-boldOffset))
		}
	}
	return nil
}

// DrawImage draws the image at a.Path into the directive box. With a
// corner radius the image is clipped to a rectangle with all four corners
// rounded, whatever the per-corner flags say, and the outline is stroked.
func DrawImage(s Surface, conv Converter, a *Attrs) error {
	if a.Path == "" || a.W <= 0 || a.H <= 0 {
		return nil
	}
	x, y := conv.ToPixels(a.X), conv.ToPixels(a.Y)
	w, h := conv.ToPixels(a.W), conv.ToPixels(a.H)

	if a.R == 0 {
		s.Save()
		defer s.Restore()
		ApplyStyle(s, conv, a)
		return s.DrawImage(a.Path, x, y, w, h)
	}

	return RoundedPath(s, conv, a.X, a.Y, a.W, a.H, a.R, AllCorners, func() error {
		ApplyStyle(s, conv, a)
		s.Clip()
		if err := s.DrawImage(a.Path, x, y, w, h); err != nil {
			return err
		}
		return s.Stroke()
	})
}
