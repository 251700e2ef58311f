// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/ggscene"
	"github.com/gogpu/ggscene/config"
	"github.com/gogpu/ggscene/export"
	"github.com/gogpu/ggscene/ggsurface"
	"github.com/gogpu/ggscene/loader"
	"github.com/gogpu/ggscene/recording"
)

// renderFlags are shared by render and watch.
type renderFlags struct {
	config string
	scene  string
	url    string
	output string
	trace  string
	format string
	album  bool
}

func (f *renderFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.config, "config", "", "Path to a .toml or .yaml config file")
	fs.StringVar(&f.scene, "scene", "", "Scene JSON file, or - for stdin")
	fs.StringVar(&f.url, "url", "", "Fetch the scene from this URL")
	fs.StringVar(&f.output, "o", "", "Output image path (overrides output.path)")
	fs.StringVar(&f.trace, "trace", "", "Also write the drawing command trace to this file, or - for stdout")
	fs.StringVar(&f.format, "trace-format", "json", "Trace format: "+strings.Join(recording.Formats(), ", "))
	fs.BoolVar(&f.album, "album", false, "Also save the image into the album directory")
}

func (f *renderFlags) validate() error {
	switch {
	case f.scene == "" && f.url == "":
		return errors.New("one of -scene or -url is required")
	case f.scene != "" && f.url != "":
		return errors.New("-scene and -url are mutually exclusive")
	}
	return nil
}

// Render implements the 'ggscene render' command.
func Render(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	var f renderFlags
	f.register(fs)
	fs.Parse(args)

	if err := f.validate(); err != nil {
		return err
	}
	cfg, err := loadConfig(f.config)
	if err != nil {
		return err
	}
	if err := installLogger(cfg); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out, err := renderOnce(ctx, cfg, f)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Wrote %s\n", out)
	return nil
}

func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	cfg := config.Default()
	if err := cfg.ExpandPaths(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func installLogger(cfg config.Config) error {
	l, err := cfg.Log.NewLogger(os.Stderr)
	if err != nil {
		return err
	}
	ggscene.SetLogger(l)
	gg.SetLogger(l)
	return nil
}

// renderOnce runs a full render and returns the path it wrote.
func renderOnce(ctx context.Context, cfg config.Config, f renderFlags) (string, error) {
	httpOpts := loader.HTTPOptions{
		Timeout:   time.Duration(cfg.Fetch.Timeout),
		MaxSize:   cfg.Fetch.MaxSize,
		UserAgent: cfg.Fetch.UserAgent,
	}
	images := &loader.MuxImageLoader{HTTP: loader.NewHTTPImageLoader(httpOpts, cfg.Fetch.TempDir)}
	defer images.Cleanup()

	in := ggscene.New(
		ggscene.WithImageLoader(images),
		ggscene.WithFetcher(&loader.MuxFetcher{HTTP: loader.NewHTTPFetcher(httpOpts)}),
		ggscene.WithDevice(ggscene.StaticDevice(cfg.Device.ScreenWidth)),
		ggscene.WithFetchLimit(cfg.Fetch.Limit),
	)

	surface, err := newSurface(cfg)
	if err != nil {
		return "", err
	}
	defer surface.Close()

	if f.trace == "" {
		if err := runScene(ctx, in, surface, f); err != nil {
			return "", err
		}
		return exportImage(ctx, cfg, surface, f)
	}

	// Record first, measuring text with the real font, then replay the
	// recording onto the surface.
	rec := recording.NewRecorder(recording.WithMeasureFunc(func(str string, size float64) float64 {
		surface.Save()
		defer surface.Restore()
		surface.SetFontSize(size)
		return surface.MeasureText(str)
	}))
	if err := runScene(ctx, in, rec, f); err != nil {
		return "", err
	}
	if err := writeTrace(rec, f.trace, f.format); err != nil {
		return "", err
	}
	if err := rec.Playback(surface); err != nil {
		return "", err
	}
	return exportImage(ctx, cfg, surface, f)
}

func newSurface(cfg config.Config) (*ggsurface.Surface, error) {
	var opts []ggsurface.Option
	if cfg.Font.Path != "" {
		src, err := text.NewFontSourceFromFile(cfg.Font.Path)
		if err != nil {
			return nil, err
		}
		opts = append(opts, ggsurface.WithFont(src))
	}
	if cfg.Canvas.Background != "" {
		bg, err := ggsurface.ParseColor(cfg.Canvas.Background)
		if err != nil {
			return nil, fmt.Errorf("canvas.background: %w", err)
		}
		opts = append(opts, ggsurface.WithBackground(bg))
	}
	return ggsurface.New(cfg.Canvas.Width, cfg.Canvas.Height, opts...), nil
}

func runScene(ctx context.Context, in *ggscene.Interpreter, s ggscene.Surface, f renderFlags) error {
	if f.url != "" {
		return in.RenderURL(ctx, s, f.url)
	}

	var (
		data []byte
		err  error
	)
	if f.scene == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(f.scene)
	}
	if err != nil {
		return err
	}
	return in.RenderJSON(ctx, s, data)
}

func writeTrace(rec *recording.Recorder, path, format string) error {
	if path == "-" {
		return rec.WriteFormat(os.Stdout, format)
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := rec.WriteFormat(out, format); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func exportImage(ctx context.Context, cfg config.Config, surface *ggsurface.Surface, f renderFlags) (string, error) {
	outPath := cfg.Output.Path
	if f.output != "" {
		outPath = f.output
	}

	// The temp file lives next to the target so the rename stays on one filesystem.
	tmp, err := export.ToTempFile(surface, export.TempFileOptions{
		DestWidth:  cfg.Output.DestWidth,
		DestHeight: cfg.Output.DestHeight,
		FileType:   cfg.Output.Format,
		Quality:    cfg.Output.Quality,
		Dir:        filepath.Dir(outPath),
	})
	if err != nil {
		return "", err
	}
	if err := os.Rename(tmp, outPath); err != nil {
		os.Remove(tmp)
		return "", err
	}

	if f.album {
		var auth export.Authorizer = export.StaticAuthorizer(true)
		if !cfg.Album.Allow {
			auth = &export.PromptAuthorizer{In: os.Stdin, Out: os.Stderr}
		}
		album := &export.Album{Dir: cfg.Album.Dir, Auth: auth}
		saved, err := album.Save(ctx, outPath)
		if err != nil {
			return "", err
		}
		fmt.Printf("✓ Saved to album: %s\n", saved)
	}
	return outPath, nil
}
