// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package loader

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func imageServer(t *testing.T, body []byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Deliberately wrong content type: the loader sniffs the bytes.
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPImageLoader(t *testing.T) {
	srv := imageServer(t, pngBytes(t, 12, 7))
	dir := t.TempDir()
	l := NewHTTPImageLoader(HTTPOptions{}, dir)

	info, err := l.Load(context.Background(), srv.URL+"/avatar")
	require.NoError(t, err)
	assert.Equal(t, 12, info.Width)
	assert.Equal(t, 7, info.Height)
	assert.Equal(t, dir, filepath.Dir(info.Path))
	assert.True(t, strings.HasSuffix(info.Path, ".png"), info.Path)
	assert.FileExists(t, info.Path)
	assert.Equal(t, []string{info.Path}, l.Files())

	require.NoError(t, l.Cleanup())
	assert.NoFileExists(t, info.Path)
	assert.Empty(t, l.Files())
}

func TestHTTPImageLoaderEmptyURL(t *testing.T) {
	info, err := NewHTTPImageLoader(HTTPOptions{}, "").Load(context.Background(), "")
	require.NoError(t, err)
	assert.Zero(t, info)
}

func TestHTTPImageLoaderNotImage(t *testing.T) {
	srv := imageServer(t, []byte("<html>nope</html>"))
	l := NewHTTPImageLoader(HTTPOptions{}, t.TempDir())
	_, err := l.Load(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrNotImage)
	assert.Empty(t, l.Files())
}

func TestHTTPImageLoaderStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewHTTPImageLoader(HTTPOptions{}, t.TempDir()).Load(context.Background(), srv.URL)
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusInternalServerError, se.StatusCode)
}

func TestFileImageLoader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.png")
	require.NoError(t, os.WriteFile(path, pngBytes(t, 3, 4), 0o600))

	l := FileImageLoader{Root: dir}
	for _, in := range []string{"a.png", path, "file://" + filepath.ToSlash(path)} {
		info, err := l.Load(context.Background(), in)
		require.NoError(t, err, in)
		assert.Equal(t, path, info.Path, in)
		assert.Equal(t, 3, info.Width, in)
		assert.Equal(t, 4, info.Height, in)
	}

	_, err := l.Load(context.Background(), "missing.png")
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("text"), 0o600))
	_, err = l.Load(context.Background(), "b.txt")
	assert.Error(t, err)
}

func TestMuxImageLoader(t *testing.T) {
	srv := imageServer(t, pngBytes(t, 5, 5))
	dir := t.TempDir()
	local := filepath.Join(dir, "local.png")
	require.NoError(t, os.WriteFile(local, pngBytes(t, 2, 2), 0o600))

	m := &MuxImageLoader{HTTP: NewHTTPImageLoader(HTTPOptions{}, dir), File: FileImageLoader{Root: dir}}
	t.Cleanup(func() { _ = m.Cleanup() })

	info, err := m.Load(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, 5, info.Width)

	info, err = m.Load(context.Background(), "local.png")
	require.NoError(t, err)
	assert.Equal(t, local, info.Path)

	info, err = m.Load(context.Background(), "")
	require.NoError(t, err)
	assert.Zero(t, info)

	_, err = m.Load(context.Background(), "gopher://x/y.png")
	assert.ErrorIs(t, err, ErrUnsupportedScheme)

	require.NoError(t, m.Cleanup())
	assert.Empty(t, m.HTTP.Files())
	assert.FileExists(t, local, "Cleanup must not remove local files")
}
