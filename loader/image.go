// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package loader

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/gogpu/ggscene"
)

// HTTPImageLoader downloads images to temporary files so that a surface
// can draw them by path.
//
// Every Load downloads again; nothing is cached. Call Cleanup to remove
// the downloaded files once the render that used them is finished.
type HTTPImageLoader struct {
	HTTPOptions

	// Dir is where downloads are written. Empty uses os.TempDir().
	Dir string

	mu    sync.Mutex
	files []string
}

// NewHTTPImageLoader returns an HTTPImageLoader using opts.
func NewHTTPImageLoader(opts HTTPOptions, dir string) *HTTPImageLoader {
	return &HTTPImageLoader{HTTPOptions: opts, Dir: dir}
}

// Load implements ggscene.ImageLoader.
func (l *HTTPImageLoader) Load(ctx context.Context, rawURL string) (ggscene.ImageInfo, error) {
	if rawURL == "" {
		return ggscene.ImageInfo{}, nil
	}
	body, err := l.get(ctx, rawURL)
	if err != nil {
		return ggscene.ImageInfo{}, err
	}

	kind, err := filetype.Match(body)
	if err != nil || !filetype.IsImage(body) {
		return ggscene.ImageInfo{}, fmt.Errorf("%w: %s", ErrNotImage, rawURL)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(body))
	if err != nil {
		return ggscene.ImageInfo{}, fmt.Errorf("loader: decode %s: %w", rawURL, err)
	}

	f, err := os.CreateTemp(l.Dir, "ggscene-*."+kind.Extension)
	if err != nil {
		return ggscene.ImageInfo{}, fmt.Errorf("loader: %w", err)
	}
	l.track(f.Name())
	if _, err := f.Write(body); err != nil {
		f.Close()
		return ggscene.ImageInfo{}, fmt.Errorf("loader: write %s: %w", f.Name(), err)
	}
	if err := f.Close(); err != nil {
		return ggscene.ImageInfo{}, fmt.Errorf("loader: write %s: %w", f.Name(), err)
	}

	ggscene.Logger().Debug("loader: image downloaded", "url", rawURL, "path", f.Name(),
		"type", kind.MIME.Value, "bytes", len(body))
	return ggscene.ImageInfo{Path: f.Name(), Width: cfg.Width, Height: cfg.Height}, nil
}

func (l *HTTPImageLoader) track(path string) {
	l.mu.Lock()
	l.files = append(l.files, path)
	l.mu.Unlock()
}

// Files returns the paths downloaded so far.
func (l *HTTPImageLoader) Files() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.files...)
}

// Cleanup removes every downloaded file and returns the first error.
func (l *HTTPImageLoader) Cleanup() error {
	l.mu.Lock()
	files := l.files
	l.files = nil
	l.mu.Unlock()

	var first error
	for _, f := range files {
		if err := os.Remove(f); err != nil && !os.IsNotExist(err) && first == nil {
			first = err
		}
	}
	return first
}

// FileImageLoader serves local files, given as plain paths or file:// URLs.
// Relative paths are resolved against Root.
type FileImageLoader struct {
	Root string
}

// Load implements ggscene.ImageLoader.
func (l FileImageLoader) Load(_ context.Context, rawURL string) (ggscene.ImageInfo, error) {
	if rawURL == "" {
		return ggscene.ImageInfo{}, nil
	}
	path := rawURL
	if strings.HasPrefix(rawURL, "file:") {
		u, err := url.Parse(rawURL)
		if err != nil {
			return ggscene.ImageInfo{}, fmt.Errorf("loader: %w", err)
		}
		path = filepath.FromSlash(u.Path)
	}
	if !filepath.IsAbs(path) && l.Root != "" {
		path = filepath.Join(l.Root, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return ggscene.ImageInfo{}, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return ggscene.ImageInfo{}, fmt.Errorf("loader: decode %s: %w", path, err)
	}
	return ggscene.ImageInfo{Path: path, Width: cfg.Width, Height: cfg.Height}, nil
}

// MuxImageLoader dispatches on the URL scheme: http and https go to HTTP,
// file URLs and scheme-less paths go to File.
type MuxImageLoader struct {
	HTTP *HTTPImageLoader
	File FileImageLoader
}

// NewMuxImageLoader returns a MuxImageLoader with default HTTP options.
func NewMuxImageLoader() *MuxImageLoader {
	return &MuxImageLoader{HTTP: NewHTTPImageLoader(HTTPOptions{}, "")}
}

// Load implements ggscene.ImageLoader.
func (m *MuxImageLoader) Load(ctx context.Context, rawURL string) (ggscene.ImageInfo, error) {
	if rawURL == "" {
		return ggscene.ImageInfo{}, nil
	}
	switch scheme(rawURL) {
	case "http", "https":
		if m.HTTP == nil {
			return ggscene.ImageInfo{}, fmt.Errorf("%w: %s", ErrUnsupportedScheme, rawURL)
		}
		return m.HTTP.Load(ctx, rawURL)
	case "", "file":
		return m.File.Load(ctx, rawURL)
	}
	return ggscene.ImageInfo{}, fmt.Errorf("%w: %s", ErrUnsupportedScheme, rawURL)
}

// Cleanup removes files downloaded by the HTTP loader.
func (m *MuxImageLoader) Cleanup() error {
	if m.HTTP == nil {
		return nil
	}
	return m.HTTP.Cleanup()
}

// scheme returns the lower-cased URL scheme, or "" for a plain path.
// Windows drive letters are not schemes.
func scheme(rawURL string) string {
	i := strings.Index(rawURL, "://")
	if i <= 1 {
		if strings.HasPrefix(rawURL, "file:") {
			return "file"
		}
		return ""
	}
	return strings.ToLower(rawURL[:i])
}
