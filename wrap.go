// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggscene

import (
	"strings"

	"github.com/go-text/typesetting/segmenter"
)

// Wrap splits text into lines no wider than maxWidth device-independent
// units, as measured by s at its current font size.
//
// Breaking is greedy and per character (grapheme cluster), so words may be
// split. A character that alone exceeds the width still gets a line of its
// own. The last line is always returned: Wrap of "" is []string{""}.
// Lines are substrings of text; joined they give text back byte for byte.
func Wrap(s Surface, conv Converter, text string, maxWidth float64) []string {
	limit := conv.ToPixels(maxWidth)
	chars := graphemes(text)
	if len(chars) == 0 {
		return []string{""}
	}

	var (
		lines []string
		line  strings.Builder
	)
	for i, ch := range chars {
		candidate := line.String() + ch
		if i > 0 && s.MeasureText(candidate) > limit {
			lines = append(lines, line.String())
			line.Reset()
		}
		line.WriteString(ch)
	}
	return append(lines, line.String())
}

// graphemes splits text into user-perceived characters.
func graphemes(text string) []string {
	if text == "" {
		return nil
	}
	var seg segmenter.Segmenter
	seg.Init([]rune(text))
	it := seg.GraphemeIterator()

	var out []string
	for it.Next() {
		out = append(out, string(it.Grapheme().Text))
	}
	return out
}
