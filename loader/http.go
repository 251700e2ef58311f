// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/c2h5oh/datasize"
)

// Defaults for HTTP requests.
const (
	DefaultTimeout   = 30 * time.Second
	DefaultMaxSize   = 20 * datasize.MB
	DefaultUserAgent = "ggscene"
)

// HTTPOptions configures HTTP access shared by the fetcher and the image
// loader.
type HTTPOptions struct {
	// Client is the HTTP client. Nil uses a client with Timeout.
	Client *http.Client

	// Timeout bounds each request when Client is nil. Zero uses DefaultTimeout.
	Timeout time.Duration

	// MaxSize caps response bodies. Zero uses DefaultMaxSize.
	MaxSize datasize.ByteSize

	// UserAgent is sent with every request. Empty uses DefaultUserAgent.
	UserAgent string
}

func (o HTTPOptions) client() *http.Client {
	if o.Client != nil {
		return o.Client
	}
	timeout := o.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

func (o HTTPOptions) maxSize() int64 {
	if o.MaxSize == 0 {
		return int64(DefaultMaxSize.Bytes())
	}
	return int64(o.MaxSize.Bytes())
}

func (o HTTPOptions) userAgent() string {
	if o.UserAgent == "" {
		return DefaultUserAgent
	}
	return o.UserAgent
}

// get performs a GET request and returns the body, capped at MaxSize.
func (o HTTPOptions) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	req.Header.Set("User-Agent", o.userAgent())

	resp, err := o.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	limit := o.maxSize()
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("loader: read %s: %w", url, err)
	}
	if int64(len(body)) > limit {
		return nil, fmt.Errorf("%w: %s exceeds %s", ErrTooLarge, url, datasize.ByteSize(limit).HumanReadable())
	}
	return body, nil
}

// HTTPFetcher fetches scene payloads over HTTP.
type HTTPFetcher struct {
	HTTPOptions
}

// NewHTTPFetcher returns an HTTPFetcher using opts.
func NewHTTPFetcher(opts HTTPOptions) *HTTPFetcher {
	return &HTTPFetcher{HTTPOptions: opts}
}

// Fetch implements ggscene.Fetcher.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	return f.get(ctx, url)
}
