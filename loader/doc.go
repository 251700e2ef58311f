// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package loader provides the network and file capabilities a ggscene
// render depends on: fetching scene payloads and resolving image URLs into
// local files a surface can draw.
//
// Downloaded images are sniffed with github.com/h2non/filetype, written to
// temporary files named after their real type, and measured with
// image.DecodeConfig (PNG, JPEG, GIF, BMP and WebP are registered).
// Response bodies are capped by HTTPOptions.MaxSize.
//
// Loaders never retry and never cache.
package loader
