// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package recording provides a ggscene surface that records drawing calls.
//
// Every call made on a [Recorder] is captured as a typed command
// (SaveCommand, ArcCommand, FillTextCommand, ...) instead of being
// rasterized. Recordings are inspectable, which makes them the reference
// test double for the scene interpreter, and they can be dumped as JSON to
// trace what a scene would draw.
//
// Design follows typed command structs for inspectability, one struct per
// surface call, identified by a CommandType.
//
// # Example
//
//	rec := recording.NewRecorder()
//	if err := ggscene.New().Render(ctx, rec, scene); err != nil {
//	    return err
//	}
//	fmt.Println(rec.Count(recording.CmdFillText), "text draws")
//	rec.WriteJSON(os.Stdout)
//
// # Playback and Formats
//
// A recording can be replayed onto any [Target], such as a raster surface,
// so a scene is loaded and laid out once and then both traced and drawn:
//
//	rec.WriteFormat(os.Stdout, "text")
//	err := rec.Playback(surface)
//
// Trace formats ("json", "text") are kept in a registry; more can be added
// with [RegisterFormat].
//
// # Text Measurement
//
// A Recorder has no fonts. Text is measured with a [MeasureFunc] that
// receives the current font size; the default [HalfEm] makes every
// character half an em wide.
package recording
