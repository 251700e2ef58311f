// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggsurface

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func colorNear(a, b gg.RGBA) bool {
	const eps = 1e-3
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps && math.Abs(a.A-b.A) < eps
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want gg.RGBA
	}{
		{"#ff0000", gg.RGB(1, 0, 0)},
		{"#F00", gg.RGB(1, 0, 0)},
		{"#00ff0080", gg.RGBA2(0, 1, 0, 128.0/255)},
		{"#0008", gg.RGBA2(0, 0, 0, 136.0/255)},
		{" #ffffff ", gg.RGB(1, 1, 1)},
		{"rgb(255, 0, 0)", gg.RGB(1, 0, 0)},
		{"rgba(0, 0, 255, 0.5)", gg.RGBA2(0, 0, 1, 0.5)},
		{"rgba(0,0,0,.25)", gg.RGBA2(0, 0, 0, 0.25)},
		{"rgb(100%, 50%, 0%)", gg.RGB(1, 0.5, 0)},
		{"rgb(300, -5, 0)", gg.RGB(1, 0, 0)},
		{"transparent", gg.RGBA2(0, 0, 0, 0)},
		{"red", gg.RGB(1, 0, 0)},
		{"White", gg.RGB(1, 1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q) error: %v", tt.in, err)
			}
			if !colorNear(got, tt.want) {
				t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#12345", "#gggggg", "rgb(1,2)", "rgb(1,2,3", "rgb(a,b,c)", "notacolor"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) succeeded, want error", in)
		}
	}
}
