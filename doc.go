// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package ggscene renders declarative JSON scenes onto a 2D drawing surface.
//
// # Overview
//
// A scene is a JSON array of directive groups. Each group is an object whose
// keys name a primitive (line, rect, text, image) and whose values carry the
// primitive's attributes in device-independent units:
//
//	[
//	  {"rect":  {"x": 0, "y": 0, "w": 750, "h": 400, "r": 16,
//	             "topLeft": true, "topRight": true, "bgColor": "#fff"}},
//	  {"image": {"url": "https://example.com/a.png", "x": 20, "y": 20,
//	             "w": 120, "h": 120, "r": 60}},
//	  {"text":  {"text": "hello", "x": 160, "y": 60, "fontSize": 28,
//	             "wrap": true, "maxWidth": 500, "bold": true}}
//	]
//
// # Quick Start
//
//	dc := ggsurface.New(750, 1200)
//	in := ggscene.New(
//	    ggscene.WithImageLoader(loader.NewMuxImageLoader()),
//	    ggscene.WithDevice(ggscene.StaticDevice(375)),
//	)
//	if err := in.RenderURL(ctx, dc, "https://example.com/scene.json"); err != nil {
//	    return err
//	}
//	dc.SavePNG("scene.png")
//
// # Rendering Model
//
// Rendering happens in two phases. First every image directive is resolved
// concurrently through the [ImageLoader]. Only after all loads have succeeded
// are the primitives drawn, strictly in scene order, and the surface committed
// once with [Surface.Draw]. A failed load aborts the render before anything
// is drawn.
//
// # Units
//
// Scene coordinates are device-independent: 750 units span the device screen.
// [Converter.ToPixels] maps them to surface pixels from the current
// [DeviceInfo] screen width on every call.
//
// # Surfaces
//
// The core talks to the host through the narrow [Surface] interface:
//   - ggsurface: raster surface backed by github.com/gogpu/gg
//   - recording: command recorder used for tests and traces
package ggscene
