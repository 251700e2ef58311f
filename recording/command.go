// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import "fmt"

// CommandType identifies the surface call a command records.
type CommandType uint8

const (
	// State commands
	CmdSave    CommandType = iota // Save current state
	CmdRestore                    // Restore previous state

	// Path commands
	CmdBeginPath // Start a new path
	CmdClosePath // Close the current subpath
	CmdMoveTo    // Start a subpath
	CmdLineTo    // Add a line segment
	CmdArc       // Add a circular arc

	// Drawing commands
	CmdClip      // Clip to the current path
	CmdFill      // Fill the current path
	CmdStroke    // Stroke the current path
	CmdFillText  // Draw text
	CmdDrawImage // Draw an image
	CmdDraw      // Commit the surface

	// Style commands
	CmdSetLineWidth   // Set stroke width
	CmdSetFillStyle   // Set fill color
	CmdSetStrokeStyle // Set stroke color
	CmdSetFontSize    // Set font size

	// Queries
	CmdMeasureText // Measure text width
)

var commandTypeNames = [...]string{
	CmdSave:           "Save",
	CmdRestore:        "Restore",
	CmdBeginPath:      "BeginPath",
	CmdClosePath:      "ClosePath",
	CmdMoveTo:         "MoveTo",
	CmdLineTo:         "LineTo",
	CmdArc:            "Arc",
	CmdClip:           "Clip",
	CmdFill:           "Fill",
	CmdStroke:         "Stroke",
	CmdFillText:       "FillText",
	CmdDrawImage:      "DrawImage",
	CmdDraw:           "Draw",
	CmdSetLineWidth:   "SetLineWidth",
	CmdSetFillStyle:   "SetFillStyle",
	CmdSetStrokeStyle: "SetStrokeStyle",
	CmdSetFontSize:    "SetFontSize",
	CmdMeasureText:    "MeasureText",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is one recorded surface call.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
	// String formats the call, e.g. "MoveTo(10, 20)".
	String() string
}

// SaveCommand records Surface.Save.
type SaveCommand struct{}

func (SaveCommand) Type() CommandType { return CmdSave }
func (SaveCommand) String() string    { return "Save()" }

// RestoreCommand records Surface.Restore.
type RestoreCommand struct{}

func (RestoreCommand) Type() CommandType { return CmdRestore }
func (RestoreCommand) String() string    { return "Restore()" }

// BeginPathCommand records Surface.BeginPath.
type BeginPathCommand struct{}

func (BeginPathCommand) Type() CommandType { return CmdBeginPath }
func (BeginPathCommand) String() string    { return "BeginPath()" }

// ClosePathCommand records Surface.ClosePath.
type ClosePathCommand struct{}

func (ClosePathCommand) Type() CommandType { return CmdClosePath }
func (ClosePathCommand) String() string    { return "ClosePath()" }

// MoveToCommand records Surface.MoveTo.
type MoveToCommand struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (MoveToCommand) Type() CommandType { return CmdMoveTo }
func (c MoveToCommand) String() string  { return fmt.Sprintf("MoveTo(%g, %g)", c.X, c.Y) }

// LineToCommand records Surface.LineTo.
type LineToCommand struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (LineToCommand) Type() CommandType { return CmdLineTo }
func (c LineToCommand) String() string  { return fmt.Sprintf("LineTo(%g, %g)", c.X, c.Y) }

// ArcCommand records Surface.Arc.
type ArcCommand struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	R     float64 `json:"r"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

func (ArcCommand) Type() CommandType { return CmdArc }
func (c ArcCommand) String() string {
	return fmt.Sprintf("Arc(%g, %g, %g, %.4g, %.4g)", c.X, c.Y, c.R, c.Start, c.End)
}

// ClipCommand records Surface.Clip.
type ClipCommand struct{}

func (ClipCommand) Type() CommandType { return CmdClip }
func (ClipCommand) String() string    { return "Clip()" }

// FillCommand records Surface.Fill.
type FillCommand struct{}

func (FillCommand) Type() CommandType { return CmdFill }
func (FillCommand) String() string    { return "Fill()" }

// StrokeCommand records Surface.Stroke.
type StrokeCommand struct{}

func (StrokeCommand) Type() CommandType { return CmdStroke }
func (StrokeCommand) String() string    { return "Stroke()" }

// FillTextCommand records Surface.FillText.
type FillTextCommand struct {
	Text string  `json:"text"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

func (FillTextCommand) Type() CommandType { return CmdFillText }
func (c FillTextCommand) String() string {
	return fmt.Sprintf("FillText(%q, %g, %g)", c.Text, c.X, c.Y)
}

// DrawImageCommand records Surface.DrawImage.
type DrawImageCommand struct {
	Path string  `json:"path"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	W    float64 `json:"w"`
	H    float64 `json:"h"`
}

func (DrawImageCommand) Type() CommandType { return CmdDrawImage }
func (c DrawImageCommand) String() string {
	return fmt.Sprintf("DrawImage(%q, %g, %g, %g, %g)", c.Path, c.X, c.Y, c.W, c.H)
}

// DrawCommand records Surface.Draw.
type DrawCommand struct{}

func (DrawCommand) Type() CommandType { return CmdDraw }
func (DrawCommand) String() string    { return "Draw()" }

// SetLineWidthCommand records Surface.SetLineWidth.
type SetLineWidthCommand struct {
	Width float64 `json:"width"`
}

func (SetLineWidthCommand) Type() CommandType { return CmdSetLineWidth }
func (c SetLineWidthCommand) String() string  { return fmt.Sprintf("SetLineWidth(%g)", c.Width) }

// SetFillStyleCommand records Surface.SetFillStyle.
type SetFillStyleCommand struct {
	Color string `json:"color"`
}

func (SetFillStyleCommand) Type() CommandType { return CmdSetFillStyle }
func (c SetFillStyleCommand) String() string  { return fmt.Sprintf("SetFillStyle(%q)", c.Color) }

// SetStrokeStyleCommand records Surface.SetStrokeStyle.
type SetStrokeStyleCommand struct {
	Color string `json:"color"`
}

func (SetStrokeStyleCommand) Type() CommandType { return CmdSetStrokeStyle }
func (c SetStrokeStyleCommand) String() string  { return fmt.Sprintf("SetStrokeStyle(%q)", c.Color) }

// SetFontSizeCommand records Surface.SetFontSize.
type SetFontSizeCommand struct {
	Size float64 `json:"size"`
}

func (SetFontSizeCommand) Type() CommandType { return CmdSetFontSize }
func (c SetFontSizeCommand) String() string  { return fmt.Sprintf("SetFontSize(%g)", c.Size) }

// MeasureTextCommand records Surface.MeasureText and its result.
type MeasureTextCommand struct {
	Text  string  `json:"text"`
	Width float64 `json:"width"`
}

func (MeasureTextCommand) Type() CommandType { return CmdMeasureText }
func (c MeasureTextCommand) String() string {
	return fmt.Sprintf("MeasureText(%q) = %g", c.Text, c.Width)
}
