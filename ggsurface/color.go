// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggsurface

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// ParseColor parses a CSS color: #rgb, #rgba, #rrggbb, #rrggbbaa,
// rgb(r, g, b), rgba(r, g, b, a), "transparent" or a CSS color name.
func ParseColor(s string) (gg.RGBA, error) {
	str := strings.ToLower(strings.TrimSpace(s))
	switch {
	case str == "":
		return gg.RGBA{}, fmt.Errorf("ggsurface: empty color")
	case str == "transparent":
		return gg.RGBA2(0, 0, 0, 0), nil
	case strings.HasPrefix(str, "#"):
		return parseHexColor(str[1:], s)
	case strings.HasPrefix(str, "rgb"):
		return parseFuncColor(str, s)
	}
	if c, ok := colornames.Map[str]; ok {
		return gg.FromColor(c), nil
	}
	return gg.RGBA{}, fmt.Errorf("ggsurface: unknown color %q", s)
}

func parseHexColor(hex, orig string) (gg.RGBA, error) {
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, fmt.Errorf("ggsurface: invalid hex color %q", orig)
	}
	if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
		return gg.RGBA{}, fmt.Errorf("ggsurface: invalid hex color %q", orig)
	}
	return gg.Hex(hex), nil
}

// parseFuncColor handles rgb() and rgba(). Channels are 0-255 or
// percentages; alpha is 0-1.
func parseFuncColor(str, orig string) (gg.RGBA, error) {
	open := strings.IndexByte(str, '(')
	if open < 0 || !strings.HasSuffix(str, ")") {
		return gg.RGBA{}, fmt.Errorf("ggsurface: invalid color %q", orig)
	}
	fields := strings.FieldsFunc(str[open+1:len(str)-1], func(r rune) bool {
		return r == ',' || r == ' ' || r == '/'
	})
	if len(fields) != 3 && len(fields) != 4 {
		return gg.RGBA{}, fmt.Errorf("ggsurface: invalid color %q", orig)
	}

	var ch [4]float64
	ch[3] = 1
	for i, f := range fields {
		pct := strings.HasSuffix(f, "%")
		v, err := strconv.ParseFloat(strings.TrimSuffix(f, "%"), 64)
		if err != nil {
			return gg.RGBA{}, fmt.Errorf("ggsurface: invalid color %q: %w", orig, err)
		}
		switch {
		case pct:
			v /= 100
		case i < 3:
			v /= 255
		}
		ch[i] = clamp01(v)
	}
	return gg.RGBA2(ch[0], ch[1], ch[2], ch[3]), nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
