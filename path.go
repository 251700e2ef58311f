// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggscene

import "math"

// Corners is a set of rectangle corners to round.
type Corners uint8

const (
	TopLeft Corners = 1 << iota
	TopRight
	BottomRight
	BottomLeft

	NoCorners  Corners = 0
	AllCorners         = TopLeft | TopRight | BottomRight | BottomLeft
)

// Has reports whether c contains every corner in o.
func (c Corners) Has(o Corners) bool { return c&o == o }

// RoundedPath builds a closed rectangle path on s with the corners in
// corners rounded by r, runs action with that path current, then resets
// the path. Geometry is in device-independent units and converted with conv.
//
// Nothing is drawn when w or h is not positive. Otherwise the surface state
// is saved before the path is built and restored on every return, including
// when action fails; action's error is returned.
//
// A non-positive r rounds no corner.
func RoundedPath(s Surface, conv Converter, x, y, w, h, r float64, corners Corners, action func() error) (err error) {
	if w <= 0 || h <= 0 {
		return nil
	}
	if r <= 0 {
		corners = NoCorners
	}

	s.Save()
	defer func() {
		s.BeginPath()
		s.ClosePath()
		s.Restore()
	}()

	px, py := conv.ToPixels(x), conv.ToPixels(y)
	pw, ph := conv.ToPixels(w), conv.ToPixels(h)
	pr := conv.ToPixels(r)
	right, bottom := px+pw, py+ph

	s.BeginPath()

	if corners.Has(TopLeft) {
		s.MoveTo(px, py+pr)
		s.Arc(px+pr, py+pr, pr, math.Pi, math.Pi*1.5)
	} else {
		s.MoveTo(px, py)
	}

	if corners.Has(TopRight) {
		s.LineTo(right-pr, py)
		s.Arc(right-pr, py+pr, pr, math.Pi*1.5, math.Pi*2)
	} else {
		s.LineTo(right, py)
	}

	if corners.Has(BottomRight) {
		s.LineTo(right, bottom-pr)
		s.Arc(right-pr, bottom-pr, pr, 0, math.Pi*0.5)
	} else {
		s.LineTo(right, bottom)
	}

	if corners.Has(BottomLeft) {
		s.LineTo(px+pr, bottom)
		s.Arc(px+pr, bottom-pr, pr, math.Pi*0.5, math.Pi)
	} else {
		s.LineTo(px, bottom)
	}

	s.ClosePath()

	if action == nil {
		return nil
	}
	return action()
}
