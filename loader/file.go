// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileFetcher reads scene payloads from local files. Relative paths are
// resolved against Root.
type FileFetcher struct {
	Root string
}

// Fetch implements ggscene.Fetcher. It accepts plain paths and file:// URLs.
func (f FileFetcher) Fetch(_ context.Context, path string) ([]byte, error) {
	path = strings.TrimPrefix(path, "file://")
	if !filepath.IsAbs(path) && f.Root != "" {
		path = filepath.Join(f.Root, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	return data, nil
}

// MuxFetcher dispatches scene fetches on the URL scheme.
type MuxFetcher struct {
	HTTP *HTTPFetcher
	File FileFetcher
}

// Fetch implements ggscene.Fetcher.
func (m *MuxFetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	switch scheme(rawURL) {
	case "http", "https":
		if m.HTTP == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedScheme, rawURL)
		}
		return m.HTTP.Fetch(ctx, rawURL)
	case "", "file":
		return m.File.Fetch(ctx, rawURL)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedScheme, rawURL)
}
