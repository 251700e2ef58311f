// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package loader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/c2h5oh/datasize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPFetcher(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.UserAgent()
		w.Write([]byte(`[{"text":{"text":"hi"}}]`))
	}))
	defer srv.Close()

	f := NewHTTPFetcher(HTTPOptions{UserAgent: "poster/1.0"})
	body, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"text":{"text":"hi"}}]`, string(body))
	assert.Equal(t, "poster/1.0", gotUA)
}

func TestHTTPFetcherDefaultUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.UserAgent()
	}))
	defer srv.Close()

	_, err := NewHTTPFetcher(HTTPOptions{}).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, DefaultUserAgent, gotUA)
}

func TestHTTPFetcherStatus(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := NewHTTPFetcher(HTTPOptions{}).Fetch(context.Background(), srv.URL+"/missing.json")
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusNotFound, se.StatusCode)
	assert.Contains(t, err.Error(), "missing.json")
}

func TestHTTPFetcherTooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(strings.Repeat("x", 2048)))
	}))
	defer srv.Close()

	f := NewHTTPFetcher(HTTPOptions{MaxSize: 1 * datasize.KB})
	_, err := f.Fetch(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrTooLarge)

	f.MaxSize = 2 * datasize.KB
	body, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Len(t, body, 2048)
}

func TestHTTPFetcherCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewHTTPFetcher(HTTPOptions{}).Fetch(ctx, srv.URL)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileFetcher(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scene.json"), []byte("[]"), 0o600))

	f := FileFetcher{Root: dir}
	body, err := f.Fetch(context.Background(), "scene.json")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))

	body, err = FileFetcher{}.Fetch(context.Background(), "file://"+filepath.Join(dir, "scene.json"))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))

	_, err = f.Fetch(context.Background(), "nope.json")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMuxFetcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("remote"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "s.json"), []byte("local"), 0o600))

	m := &MuxFetcher{HTTP: NewHTTPFetcher(HTTPOptions{}), File: FileFetcher{Root: dir}}
	body, err := m.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "remote", string(body))

	body, err = m.Fetch(context.Background(), "s.json")
	require.NoError(t, err)
	assert.Equal(t, "local", string(body))

	_, err = m.Fetch(context.Background(), "ftp://example.com/s.json")
	assert.ErrorIs(t, err, ErrUnsupportedScheme)

	_, err = (&MuxFetcher{}).Fetch(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrUnsupportedScheme)
}

func TestScheme(t *testing.T) {
	tests := map[string]string{
		"http://x/a.png":     "http",
		"HTTPS://x/a.png":    "https",
		"file:///tmp/a.png":  "file",
		"file:a.png":         "file",
		"/tmp/a.png":         "",
		"a.png":              "",
		`C://windows/a.png`:  "",
		"ftp://example.com/": "ftp",
	}
	for in, want := range tests {
		assert.Equal(t, want, scheme(in), in)
	}
}
