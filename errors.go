// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggscene

import "errors"

// Sentinel errors for ggscene.
var (
	// ErrEmptyPayload is returned when a fetched scene payload has no content.
	ErrEmptyPayload = errors.New("ggscene: empty scene payload")

	// ErrNoFetcher is returned by RenderURL when no Fetcher is configured.
	ErrNoFetcher = errors.New("ggscene: no fetcher configured")

	// ErrNoImageLoader is wrapped in a LoadError when a scene references an
	// image URL and no ImageLoader is configured.
	ErrNoImageLoader = errors.New("ggscene: no image loader configured")
)

// LoadError reports a failed image load. The render that triggered it
// draws nothing.
type LoadError struct {
	URL string
	Err error
}

func (e *LoadError) Error() string {
	return "ggscene: load image " + e.URL + ": " + e.Err.Error()
}

func (e *LoadError) Unwrap() error { return e.Err }

// DrawError reports a surface failure while drawing a directive.
// Directives after the failing one are not drawn and the surface is not
// committed.
type DrawError struct {
	Group int
	Kind  Kind
	Err   error
}

func (e *DrawError) Error() string {
	return "ggscene: draw " + e.Kind.String() + ": " + e.Err.Error()
}

func (e *DrawError) Unwrap() error { return e.Err }
