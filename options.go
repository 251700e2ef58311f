// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggscene

// Option configures an Interpreter.
//
// Example:
//
//	in := ggscene.New(
//	    ggscene.WithImageLoader(loader.NewMuxImageLoader()),
//	    ggscene.WithDevice(ggscene.StaticDevice(414)),
//	)
type Option func(*Interpreter)

// WithImageLoader sets the loader used for image directives.
// Without one, an image URL fails the render.
func WithImageLoader(l ImageLoader) Option {
	return func(in *Interpreter) {
		in.loader = l
	}
}

// WithFetcher sets the fetcher used by RenderURL.
func WithFetcher(f Fetcher) Option {
	return func(in *Interpreter) {
		in.fetcher = f
	}
}

// WithDevice sets the device used for unit conversion.
// The default is a 375 pixel wide screen, which makes one unit one pixel.
func WithDevice(d DeviceInfo) Option {
	return func(in *Interpreter) {
		if d != nil {
			in.conv.Device = d
		}
	}
}

// WithFetchLimit bounds the number of image loads in flight.
// Zero or a negative value means no limit.
func WithFetchLimit(n int) Option {
	return func(in *Interpreter) {
		in.fetchLimit = n
	}
}
