// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

// Target receives replayed commands. Its method set matches
// ggscene.Surface, so any surface (including another Recorder) can be
// used as a playback target.
type Target interface {
	// State management
	Save()
	Restore()

	// Path building
	BeginPath()
	ClosePath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(x, y, r, start, end float64)

	// Drawing
	Clip()
	Fill() error
	Stroke() error
	FillText(text string, x, y float64)
	DrawImage(path string, x, y, w, h float64) error
	Draw() error

	// Style
	SetLineWidth(width float64)
	SetFillStyle(color string)
	SetStrokeStyle(color string)
	SetFontSize(size float64)

	// Queries
	MeasureText(text string) float64
}

var _ Target = (*Recorder)(nil)

// Playback replays the recorded commands onto t in order and returns the
// first error a drawing call reports. Measurement queries are not replayed:
// their results were already consumed when the commands were recorded.
func (r *Recorder) Playback(t Target) error {
	for _, cmd := range r.commands {
		if err := play(t, cmd); err != nil {
			return err
		}
	}
	return nil
}

func play(t Target, cmd Command) error {
	switch c := cmd.(type) {
	case SaveCommand:
		t.Save()
	case RestoreCommand:
		t.Restore()
	case BeginPathCommand:
		t.BeginPath()
	case ClosePathCommand:
		t.ClosePath()
	case MoveToCommand:
		t.MoveTo(c.X, c.Y)
	case LineToCommand:
		t.LineTo(c.X, c.Y)
	case ArcCommand:
		t.Arc(c.X, c.Y, c.R, c.Start, c.End)
	case ClipCommand:
		t.Clip()
	case FillCommand:
		return t.Fill()
	case StrokeCommand:
		return t.Stroke()
	case FillTextCommand:
		t.FillText(c.Text, c.X, c.Y)
	case DrawImageCommand:
		return t.DrawImage(c.Path, c.X, c.Y, c.W, c.H)
	case DrawCommand:
		return t.Draw()
	case SetLineWidthCommand:
		t.SetLineWidth(c.Width)
	case SetFillStyleCommand:
		t.SetFillStyle(c.Color)
	case SetStrokeStyleCommand:
		t.SetStrokeStyle(c.Color)
	case SetFontSizeCommand:
		t.SetFontSize(c.Size)
	case MeasureTextCommand:
		// Query only.
	}
	return nil
}
