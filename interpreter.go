// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggscene

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// defaultScreenWidth makes one device-independent unit one pixel.
const defaultScreenWidth = DesignWidth / 2

// Interpreter renders scenes. It holds no per-render state and may be
// shared by concurrent renders onto different surfaces.
type Interpreter struct {
	loader     ImageLoader
	fetcher    Fetcher
	conv       Converter
	fetchLimit int
}

// New returns an Interpreter configured by opts.
func New(opts ...Option) *Interpreter {
	in := &Interpreter{
		conv: Converter{Device: StaticDevice(defaultScreenWidth)},
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Converter returns the unit converter used by the interpreter.
func (in *Interpreter) Converter() Converter {
	return in.conv
}

// step is one resolved directive waiting to be drawn.
type step struct {
	group int
	dir   Directive
}

// Render draws scene onto s and commits the surface.
//
// Image directives are loaded concurrently first. If any load fails,
// Render returns its *LoadError without drawing anything and without
// committing. Otherwise every directive is drawn in scene order and
// s.Draw is called exactly once. A nil surface or an empty scene is a no-op.
func (in *Interpreter) Render(ctx context.Context, s Surface, scene Scene) error {
	if s == nil || len(scene) == 0 {
		return nil
	}

	steps, err := in.resolve(ctx, scene)
	if err != nil {
		return err
	}
	Logger().Debug("ggscene: scene resolved", "groups", len(scene), "directives", len(steps))

	for i := range steps {
		st := &steps[i]
		if err := in.draw(s, &st.dir); err != nil {
			return &DrawError{Group: st.group, Kind: st.dir.Kind, Err: err}
		}
	}

	if err := s.Draw(); err != nil {
		return fmt.Errorf("ggscene: commit: %w", err)
	}
	Logger().Info("ggscene: scene rendered", "directives", len(steps))
	return nil
}

// resolve turns the scene into a flat, ordered list of drawable directives.
// Image URLs are loaded concurrently; each load writes only its own slot.
func (in *Interpreter) resolve(ctx context.Context, scene Scene) ([]step, error) {
	steps := make([]step, 0, scene.Len())
	var loads []int
	for gi, group := range scene {
		for _, d := range group {
			if d.Kind == KindImage {
				if d.Attrs.URL == "" {
					continue
				}
				loads = append(loads, len(steps))
			}
			steps = append(steps, step{group: gi, dir: d})
		}
	}
	if len(loads) == 0 {
		return steps, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	if in.fetchLimit > 0 {
		g.SetLimit(in.fetchLimit)
	}
	for _, idx := range loads {
		st := &steps[idx]
		g.Go(func() error {
			return in.loadImage(gctx, &st.dir.Attrs)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return steps, nil
}

// loadImage resolves a.URL and fills in a.Path unless the directive
// already names a path of its own.
func (in *Interpreter) loadImage(ctx context.Context, a *Attrs) error {
	if in.loader == nil {
		return &LoadError{URL: a.URL, Err: ErrNoImageLoader}
	}
	info, err := in.loader.Load(ctx, a.URL)
	if err != nil {
		return &LoadError{URL: a.URL, Err: err}
	}
	Logger().Debug("ggscene: image loaded", "url", a.URL, "path", info.Path,
		"width", info.Width, "height", info.Height)
	if a.Path == "" {
		a.Path = info.Path
	}
	return nil
}

func (in *Interpreter) draw(s Surface, d *Directive) error {
	Logger().Debug("ggscene: draw", "kind", d.Kind.String())
	switch d.Kind {
	case KindLine:
		return DrawLine(s, in.conv, &d.Attrs)
	case KindRect:
		return DrawRect(s, in.conv, &d.Attrs)
	case KindText:
		return DrawText(s, in.conv, &d.Attrs)
	case KindImage:
		return DrawImage(s, in.conv, &d.Attrs)
	}
	return nil
}
