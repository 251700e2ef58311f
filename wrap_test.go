// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggscene

import (
	"slices"
	"strings"
	"testing"

	"github.com/gogpu/ggscene/recording"
)

// With the recorder's default 10px font every character is 5px wide.
func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWidth float64
		want     []string
	}{
		{"empty", "", 100, []string{""}},
		{"fits", "hello", 100, []string{"hello"}},
		{"exact fit", "abcd", 20, []string{"abcd"}},
		{"greedy", "abcdef", 12, []string{"ab", "cd", "ef"}},
		{"splits words", "ab cd", 15, []string{"ab ", "cd"}},
		{"narrower than a char", "abc", 3, []string{"a", "b", "c"}},
		{"zero width", "xy", 0, []string{"x", "y"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := recording.NewRecorder()
			got := Wrap(rec, identity, tt.text, tt.maxWidth)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Wrap(%q, %v) = %q, want %q", tt.text, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestWrapConcatenatesToInput(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog"
	for _, w := range []float64{1, 7, 33, 120, 1000} {
		lines := Wrap(recording.NewRecorder(), identity, text, w)
		if got := strings.Join(lines, ""); got != text {
			t.Errorf("maxWidth %v: joined lines = %q", w, got)
		}
	}
}

func TestWrapConvertsMaxWidth(t *testing.T) {
	// 750 wide screen: 10 units become 20px, room for four characters.
	conv := Converter{Device: StaticDevice(750)}
	got := Wrap(recording.NewRecorder(), conv, "abcdefgh", 10)
	want := []string{"abcd", "efgh"}
	if !slices.Equal(got, want) {
		t.Errorf("Wrap = %q, want %q", got, want)
	}
}

func TestWrapGraphemes(t *testing.T) {
	// e + combining acute is one character of two runes (10px here).
	rec := recording.NewRecorder()
	got := Wrap(rec, identity, "e\u0301e\u0301e\u0301", 20)
	want := []string{"e\u0301e\u0301", "e\u0301"}
	if !slices.Equal(got, want) {
		t.Errorf("Wrap = %q, want %q", got, want)
	}

	// A flag emoji is one grapheme made of two runes and is never split.
	lines := Wrap(recording.NewRecorder(), identity, "🇫🇷🇫🇷", 1)
	if !slices.Equal(lines, []string{"🇫🇷", "🇫🇷"}) {
		t.Errorf("Wrap(flags) = %q", lines)
	}
}

func TestWrapKeepsInputBytes(t *testing.T) {
	for _, in := range []string{"cafe\u0301", "caf\u00e9", "a\u0308o\u0308"} {
		got := Wrap(recording.NewRecorder(), identity, in, 1000)
		if !slices.Equal(got, []string{in}) {
			t.Errorf("Wrap(%+q) = %+q, want the input unchanged", in, got)
		}
	}
}

func TestWrapUsesCurrentFontSize(t *testing.T) {
	rec := recording.NewRecorder()
	rec.SetFontSize(20)
	got := Wrap(rec, identity, "abcd", 20)
	if !slices.Equal(got, []string{"ab", "cd"}) {
		t.Errorf("Wrap at 20px = %q", got)
	}
}
