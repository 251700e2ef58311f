// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggscene

import (
	"slices"
	"testing"
)

func kinds(g Group) []Kind {
	out := make([]Kind, len(g))
	for i, d := range g {
		out[i] = d.Kind
	}
	return out
}

func TestParseSceneKeyOrder(t *testing.T) {
	scene, err := ParseScene([]byte(`[
		{"rect": {"w": 10, "h": 10}, "text": {"text": "a"}},
		{"text": {"text": "b"}, "image": {"url": "u"}, "line": {"w": 1}}
	]`))
	if err != nil {
		t.Fatal(err)
	}
	if len(scene) != 2 {
		t.Fatalf("len(scene) = %d, want 2", len(scene))
	}
	if got := kinds(scene[0]); !slices.Equal(got, []Kind{KindRect, KindText}) {
		t.Errorf("group 0 = %v", got)
	}
	if got := kinds(scene[1]); !slices.Equal(got, []Kind{KindText, KindImage, KindLine}) {
		t.Errorf("group 1 = %v", got)
	}
	if scene.Len() != 5 {
		t.Errorf("Len() = %d, want 5", scene.Len())
	}
}

func TestParseSceneFalsyDirectives(t *testing.T) {
	scene, err := ParseScene([]byte(`[{"line": null, "rect": false, "text": 0, "image": ""}]`))
	if err != nil {
		t.Fatal(err)
	}
	if len(scene) != 1 || len(scene[0]) != 0 {
		t.Errorf("scene = %+v, want one empty group", scene)
	}
}

func TestParseSceneDuplicateKey(t *testing.T) {
	scene, err := ParseScene([]byte(`[{"text": {"text": "a"}, "rect": {}, "text": {"text": "b"}}]`))
	if err != nil {
		t.Fatal(err)
	}
	g := scene[0]
	if got := kinds(g); !slices.Equal(got, []Kind{KindText, KindRect}) {
		t.Fatalf("kinds = %v", got)
	}
	if g[0].Attrs.Text != "b" {
		t.Errorf("text = %q, want the later value", g[0].Attrs.Text)
	}
}

func TestParseSceneSkipsUnknownAndMalformed(t *testing.T) {
	scene, err := ParseScene([]byte(`[
		{"circle": {"r": 3}, "rect": [1, 2], "line": "yes", "image": {"x": "ten"}, "text": {"text": "ok"}},
		7,
		null
	]`))
	if err != nil {
		t.Fatal(err)
	}
	if len(scene) != 3 {
		t.Fatalf("len(scene) = %d, want 3", len(scene))
	}
	if got := kinds(scene[0]); !slices.Equal(got, []Kind{KindText}) {
		t.Errorf("group 0 = %v, want [text]", got)
	}
	if len(scene[1]) != 0 || len(scene[2]) != 0 {
		t.Errorf("non-object groups should be empty: %v %v", scene[1], scene[2])
	}
}

func TestParseSceneErrors(t *testing.T) {
	for _, in := range []string{`{"rect": {}}`, `[{"rect": {}`, `nope`} {
		if _, err := ParseScene([]byte(in)); err == nil {
			t.Errorf("ParseScene(%s) succeeded, want error", in)
		}
	}
}

func TestParseSceneAttrs(t *testing.T) {
	scene, err := ParseScene([]byte(`[{"rect": {
		"x": 1, "y": 2, "w": 3, "h": 4, "r": 5,
		"topLeft": 1, "topRight": "yes", "bottomLeft": 0, "bottomRight": "",
		"bgColor": "#fff", "lineWidth": 2
	}}]`))
	if err != nil {
		t.Fatal(err)
	}
	a := scene[0][0].Attrs
	if a.X != 1 || a.Y != 2 || a.W != 3 || a.H != 4 || a.R != 5 {
		t.Errorf("geometry = %+v", a)
	}
	if got := a.Corners(); got != TopLeft|TopRight {
		t.Errorf("Corners() = %04b, want %04b", got, TopLeft|TopRight)
	}
	if a.BgColor == nil || *a.BgColor != "#fff" {
		t.Errorf("bgColor = %v", a.BgColor)
	}
	if a.LineWidth == nil || *a.LineWidth != 2 {
		t.Errorf("lineWidth = %v", a.LineWidth)
	}
	if a.Color != nil || a.FontSize != nil {
		t.Error("absent style attributes should be nil")
	}
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{`null`, false},
		{`false`, false},
		{`0`, false},
		{`0.0`, false},
		{`""`, false},
		{``, false},
		{`true`, true},
		{`1`, true},
		{`-2.5`, true},
		{`"0"`, true},
		{`"false"`, true},
		{`{}`, true},
		{`[]`, true},
		{`  true `, true},
	}
	for _, tt := range tests {
		if got := truthy([]byte(tt.raw)); got != tt.want {
			t.Errorf("truthy(%s) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestKind(t *testing.T) {
	for _, name := range []string{"line", "rect", "text", "image"} {
		k, ok := ParseKind(name)
		if !ok || k.String() != name {
			t.Errorf("ParseKind(%q) = %v, %v", name, k, ok)
		}
	}
	if _, ok := ParseKind("circle"); ok {
		t.Error("ParseKind(circle) should fail")
	}
	if got := Kind(9).String(); got != "unknown" {
		t.Errorf("Kind(9).String() = %q", got)
	}
}
