// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"encoding/json"
	"io"
	"slices"
	"unicode/utf8"
)

// defaultFontSize matches the canvas default of 10px.
const defaultFontSize = 10

// MeasureFunc returns the width of text at the given font size.
type MeasureFunc func(text string, fontSize float64) float64

// HalfEm measures every character as half the font size wide.
func HalfEm(text string, fontSize float64) float64 {
	return float64(utf8.RuneCountInString(text)) * fontSize / 2
}

// Recorder is a surface that records every call as a Command instead of
// drawing. It tracks the font size across Save/Restore so that text
// measurement stays consistent with what a real surface would report.
//
// Example:
//
//	rec := recording.NewRecorder()
//	err := interpreter.Render(ctx, rec, scene)
//	for _, line := range rec.Trace() {
//	    fmt.Println(line)
//	}
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	commands []Command
	measure  MeasureFunc
	fontSize float64
	stack    []float64
	failures map[CommandType]error
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithMeasureFunc replaces the HalfEm text measurement.
func WithMeasureFunc(f MeasureFunc) Option {
	return func(r *Recorder) {
		if f != nil {
			r.measure = f
		}
	}
}

// NewRecorder creates an empty Recorder.
func NewRecorder(opts ...Option) *Recorder {
	r := &Recorder{
		commands: make([]Command, 0, 64),
		measure:  HalfEm,
		fontSize: defaultFontSize,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FailOn makes every later call of the given type return err.
// Only calls that can fail (Fill, Stroke, DrawImage, Draw) are affected.
// The failing call is still recorded.
func (r *Recorder) FailOn(t CommandType, err error) {
	if r.failures == nil {
		r.failures = make(map[CommandType]error)
	}
	r.failures[t] = err
}

func (r *Recorder) record(c Command) {
	r.commands = append(r.commands, c)
}

func (r *Recorder) recordErr(c Command) error {
	r.record(c)
	return r.failures[c.Type()]
}

// Save implements ggscene.Surface.
func (r *Recorder) Save() {
	r.stack = append(r.stack, r.fontSize)
	r.record(SaveCommand{})
}

// Restore implements ggscene.Surface.
func (r *Recorder) Restore() {
	if n := len(r.stack); n > 0 {
		r.fontSize = r.stack[n-1]
		r.stack = r.stack[:n-1]
	}
	r.record(RestoreCommand{})
}

// BeginPath implements ggscene.Surface.
func (r *Recorder) BeginPath() { r.record(BeginPathCommand{}) }

// ClosePath implements ggscene.Surface.
func (r *Recorder) ClosePath() { r.record(ClosePathCommand{}) }

// MoveTo implements ggscene.Surface.
func (r *Recorder) MoveTo(x, y float64) { r.record(MoveToCommand{X: x, Y: y}) }

// LineTo implements ggscene.Surface.
func (r *Recorder) LineTo(x, y float64) { r.record(LineToCommand{X: x, Y: y}) }

// Arc implements ggscene.Surface.
func (r *Recorder) Arc(x, y, radius, start, end float64) {
	r.record(ArcCommand{X: x, Y: y, R: radius, Start: start, End: end})
}

// Clip implements ggscene.Surface.
func (r *Recorder) Clip() { r.record(ClipCommand{}) }

// Fill implements ggscene.Surface.
func (r *Recorder) Fill() error { return r.recordErr(FillCommand{}) }

// Stroke implements ggscene.Surface.
func (r *Recorder) Stroke() error { return r.recordErr(StrokeCommand{}) }

// SetLineWidth implements ggscene.Surface.
func (r *Recorder) SetLineWidth(width float64) {
	r.record(SetLineWidthCommand{Width: width})
}

// SetFillStyle implements ggscene.Surface.
func (r *Recorder) SetFillStyle(color string) {
	r.record(SetFillStyleCommand{Color: color})
}

// SetStrokeStyle implements ggscene.Surface.
func (r *Recorder) SetStrokeStyle(color string) {
	r.record(SetStrokeStyleCommand{Color: color})
}

// SetFontSize implements ggscene.Surface.
func (r *Recorder) SetFontSize(size float64) {
	r.fontSize = size
	r.record(SetFontSizeCommand{Size: size})
}

// FillText implements ggscene.Surface.
func (r *Recorder) FillText(text string, x, y float64) {
	r.record(FillTextCommand{Text: text, X: x, Y: y})
}

// MeasureText implements ggscene.Surface.
func (r *Recorder) MeasureText(text string) float64 {
	w := r.measure(text, r.fontSize)
	r.record(MeasureTextCommand{Text: text, Width: w})
	return w
}

// DrawImage implements ggscene.Surface.
func (r *Recorder) DrawImage(path string, x, y, w, h float64) error {
	return r.recordErr(DrawImageCommand{Path: path, X: x, Y: y, W: w, H: h})
}

// Draw implements ggscene.Surface.
func (r *Recorder) Draw() error { return r.recordErr(DrawCommand{}) }

// FontSize returns the current font size.
func (r *Recorder) FontSize() float64 { return r.fontSize }

// Depth returns the number of unmatched Save calls.
func (r *Recorder) Depth() int { return len(r.stack) }

// Commands returns a copy of the recorded commands.
func (r *Recorder) Commands() []Command {
	return slices.Clone(r.commands)
}

// Filter returns the recorded commands whose type is one of types.
func (r *Recorder) Filter(types ...CommandType) []Command {
	var out []Command
	for _, c := range r.commands {
		if slices.Contains(types, c.Type()) {
			out = append(out, c)
		}
	}
	return out
}

// Count returns how many commands of type t were recorded.
func (r *Recorder) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// Trace formats the recorded commands, one per line. Measurement queries
// are left out so that traces only describe drawing.
func (r *Recorder) Trace() []string {
	out := make([]string, 0, len(r.commands))
	for _, c := range r.commands {
		if c.Type() == CmdMeasureText {
			continue
		}
		out = append(out, c.String())
	}
	return out
}

// Reset discards the recorded commands and restores the default state.
// Injected failures are kept.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
	r.stack = r.stack[:0]
	r.fontSize = defaultFontSize
}

type jsonCommand struct {
	Op   string  `json:"op"`
	Args Command `json:"args,omitempty"`
}

// WriteJSON writes the recorded commands as a JSON array of
// {"op": ..., "args": {...}} objects.
func (r *Recorder) WriteJSON(w io.Writer) error {
	return writeJSON(w, r.commands)
}

func writeJSON(w io.Writer, cmds []Command) error {
	out := make([]jsonCommand, len(cmds))
	for i, c := range cmds {
		out[i] = jsonCommand{Op: c.Type().String(), Args: c}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
