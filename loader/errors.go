// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package loader

import (
	"errors"
	"strconv"
)

// Sentinel errors for loader.
var (
	// ErrTooLarge is returned when a response exceeds the configured size cap.
	ErrTooLarge = errors.New("loader: response too large")

	// ErrNotImage is returned when downloaded content is not a known image type.
	ErrNotImage = errors.New("loader: content is not an image")

	// ErrUnsupportedScheme is returned for URLs no loader can serve.
	ErrUnsupportedScheme = errors.New("loader: unsupported URL scheme")
)

// StatusError is returned for a non-2xx HTTP response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return "loader: GET " + e.URL + ": status " + strconv.Itoa(e.StatusCode)
}
