// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggscene

import (
	"context"
	"errors"
	"testing"

	"github.com/gogpu/ggscene/recording"
)

func staticFetcher(payload string, err error) Fetcher {
	return FetcherFunc(func(context.Context, string) ([]byte, error) {
		return []byte(payload), err
	})
}

func TestRenderURL(t *testing.T) {
	var gotURL string
	fetcher := FetcherFunc(func(_ context.Context, url string) ([]byte, error) {
		gotURL = url
		return []byte(`[{"rect":{"w":10,"h":10,"bgColor":"#fff"}}]`), nil
	})
	rec := recording.NewRecorder()
	if err := New(WithFetcher(fetcher)).RenderURL(context.Background(), rec, "https://example.com/s.json"); err != nil {
		t.Fatal(err)
	}
	if gotURL != "https://example.com/s.json" {
		t.Errorf("fetched %q", gotURL)
	}
	if rec.Count(recording.CmdFill) != 1 || rec.Count(recording.CmdDraw) != 1 {
		t.Errorf("trace = %v", rec.Trace())
	}
}

func TestRenderURLErrors(t *testing.T) {
	boom := errors.New("connection refused")
	tests := []struct {
		name    string
		fetcher Fetcher
		want    error
	}{
		{"no fetcher", nil, ErrNoFetcher},
		{"fetch error", staticFetcher("", boom), boom},
		{"empty payload", staticFetcher("", nil), ErrEmptyPayload},
		{"blank payload", staticFetcher(" \n\t", nil), ErrEmptyPayload},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts []Option
			if tt.fetcher != nil {
				opts = append(opts, WithFetcher(tt.fetcher))
			}
			rec := recording.NewRecorder()
			err := New(opts...).RenderURL(context.Background(), rec, "u")
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
			if n := len(rec.Commands()); n != 0 {
				t.Errorf("%d commands, want 0", n)
			}
		})
	}
}

func TestRenderJSONMalformed(t *testing.T) {
	rec := recording.NewRecorder()
	err := New().RenderJSON(context.Background(), rec, []byte(`{"not":"a list"}`))
	if err == nil {
		t.Fatal("want parse error")
	}
	if errors.Is(err, ErrEmptyPayload) {
		t.Errorf("err = %v, should not be ErrEmptyPayload", err)
	}
	if len(rec.Commands()) != 0 {
		t.Error("nothing should be drawn for a malformed payload")
	}
}
