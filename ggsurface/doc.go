// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package ggsurface implements a ggscene.Surface on top of gg.Context.
//
// It gives gg the canvas semantics the scene renderers expect: separate
// fill and stroke colors, a style stack saved by Save/Restore, paths that
// survive Clip/Fill/Stroke until BeginPath, arcs joined to the current
// point, CSS color strings and font sizes in pixels.
//
// # Usage
//
//	dc := ggsurface.New(750, 1334, ggsurface.WithBackground(gg.White))
//	defer dc.Close()
//
//	if err := ggscene.New().Render(ctx, dc, scene); err != nil {
//	    return err
//	}
//	return dc.SavePNG("scene.png")
package ggsurface
