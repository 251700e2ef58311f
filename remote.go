// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggscene

import (
	"bytes"
	"context"
	"fmt"
)

// RenderURL fetches a JSON scene from url with the configured Fetcher and
// renders it onto s. Fetch and parse failures are returned as is; an empty
// payload is ErrEmptyPayload.
func (in *Interpreter) RenderURL(ctx context.Context, s Surface, url string) error {
	if in.fetcher == nil {
		return ErrNoFetcher
	}
	data, err := in.fetcher.Fetch(ctx, url)
	if err != nil {
		return fmt.Errorf("ggscene: fetch scene %s: %w", url, err)
	}
	return in.RenderJSON(ctx, s, data)
}

// RenderJSON parses a JSON scene payload and renders it onto s.
func (in *Interpreter) RenderJSON(ctx context.Context, s Surface, data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyPayload
	}
	scene, err := ParseScene(data)
	if err != nil {
		return err
	}
	return in.Render(ctx, s, scene)
}
