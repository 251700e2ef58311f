// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggscene

// StyleKey names a style attribute understood by [ApplyStyle].
type StyleKey uint8

const (
	StyleLineWidth StyleKey = iota
	StyleBgColor
	StyleColor
	StyleFontColor
	StyleFontSize
	StyleBorderColor
	numStyleKeys
)

var styleKeyNames = [...]string{
	StyleLineWidth:   "lineWidth",
	StyleBgColor:     "bgColor",
	StyleColor:       "color",
	StyleFontColor:   "fontColor",
	StyleFontSize:    "fontSize",
	StyleBorderColor: "borderColor",
}

// String returns the JSON attribute name of the key.
func (k StyleKey) String() string {
	if k < numStyleKeys {
		return styleKeyNames[k]
	}
	return "unknown"
}

// styleMutator applies one attribute of a to s when it is present.
type styleMutator func(s Surface, conv Converter, a *Attrs) bool

// styleTable is applied in key order, so fontColor overrides bgColor and
// borderColor overrides color when both are set.
var styleTable = [numStyleKeys]styleMutator{
	StyleLineWidth: func(s Surface, conv Converter, a *Attrs) bool {
		if a.LineWidth == nil {
			return false
		}
		s.SetLineWidth(conv.ToPixels(*a.LineWidth))
		return true
	},
	StyleBgColor: func(s Surface, _ Converter, a *Attrs) bool {
		return setColor(a.BgColor, s.SetFillStyle)
	},
	StyleColor: func(s Surface, _ Converter, a *Attrs) bool {
		return setColor(a.Color, s.SetStrokeStyle)
	},
	StyleFontColor: func(s Surface, _ Converter, a *Attrs) bool {
		return setColor(a.FontColor, s.SetFillStyle)
	},
	StyleFontSize: func(s Surface, conv Converter, a *Attrs) bool {
		if a.FontSize == nil {
			return false
		}
		s.SetFontSize(conv.ToPixels(*a.FontSize))
		return true
	},
	StyleBorderColor: func(s Surface, _ Converter, a *Attrs) bool {
		return setColor(a.BorderColor, s.SetStrokeStyle)
	},
}

func setColor(c *string, set func(string)) bool {
	if c == nil {
		return false
	}
	set(*c)
	return true
}

// ApplyStyle pushes the style attributes present in a onto s.
// Lengths are converted to pixels, colors are passed through verbatim.
// It returns the keys that were applied, in application order.
func ApplyStyle(s Surface, conv Converter, a *Attrs) []StyleKey {
	if a == nil {
		return nil
	}
	var applied []StyleKey
	for k, apply := range styleTable {
		if apply(s, conv, a) {
			applied = append(applied, StyleKey(k))
		}
	}
	return applied
}
