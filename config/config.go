// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package config loads ggscene host settings from TOML or YAML files.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/c2h5oh/datasize"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config is the complete host configuration.
type Config struct {
	Canvas CanvasConfig `toml:"canvas" yaml:"canvas"`
	Device DeviceConfig `toml:"device" yaml:"device"`
	Font   FontConfig   `toml:"font" yaml:"font"`
	Fetch  FetchConfig  `toml:"fetch" yaml:"fetch"`
	Output OutputConfig `toml:"output" yaml:"output"`
	Album  AlbumConfig  `toml:"album" yaml:"album"`
	Log    LogConfig    `toml:"log" yaml:"log"`
}

// CanvasConfig sizes the drawing surface in pixels.
type CanvasConfig struct {
	Width  int `toml:"width" yaml:"width"`
	Height int `toml:"height" yaml:"height"`
	// Background is a CSS color; empty leaves the surface transparent.
	Background string `toml:"background" yaml:"background"`
}

// DeviceConfig describes the device used for unit conversion.
type DeviceConfig struct {
	// ScreenWidth is the logical screen width in pixels.
	ScreenWidth float64 `toml:"screen_width" yaml:"screen_width"`
}

// FontConfig selects the text font.
type FontConfig struct {
	// Path to a TTF/OTF file. Empty uses Go Regular.
	Path string `toml:"path" yaml:"path"`
}

// FetchConfig controls network access.
type FetchConfig struct {
	Timeout   Duration          `toml:"timeout" yaml:"timeout"`
	Limit     int               `toml:"limit" yaml:"limit"`
	MaxSize   datasize.ByteSize `toml:"max_size" yaml:"max_size"`
	TempDir   string            `toml:"temp_dir" yaml:"temp_dir"`
	UserAgent string            `toml:"user_agent" yaml:"user_agent"`
}

// OutputConfig controls the exported file.
type OutputConfig struct {
	Path       string `toml:"path" yaml:"path"`
	Format     string `toml:"format" yaml:"format"`
	Quality    int    `toml:"quality" yaml:"quality"`
	DestWidth  int    `toml:"dest_width" yaml:"dest_width"`
	DestHeight int    `toml:"dest_height" yaml:"dest_height"`
}

// AlbumConfig controls saving to the album directory.
type AlbumConfig struct {
	Dir string `toml:"dir" yaml:"dir"`
	// Allow pre-grants the album write permission. When false the user is
	// asked interactively.
	Allow bool `toml:"allow" yaml:"allow"`
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// Duration is a time.Duration written as a Go duration string ("15s").
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Canvas: CanvasConfig{Width: 750, Height: 1334, Background: "#ffffff"},
		Device: DeviceConfig{ScreenWidth: 375},
		Fetch: FetchConfig{
			Timeout:   Duration(30 * time.Second),
			MaxSize:   20 * datasize.MB,
			UserAgent: "ggscene",
		},
		Output: OutputConfig{Path: "scene.png", Format: "png", Quality: 90},
		Album:  AlbumConfig{Dir: "~/Pictures/ggscene"},
		Log:    LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads path on top of Default. The format follows the extension:
// .toml, or .yaml/.yml. Paths in the result have "~" expanded.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("config: unsupported file type %q", filepath.Ext(path))
	}
	if err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := cfg.expandPaths(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) expandPaths() error {
	for _, p := range []*string{&c.Font.Path, &c.Fetch.TempDir, &c.Output.Path, &c.Album.Dir} {
		v, err := homedir.Expand(*p)
		if err != nil {
			return fmt.Errorf("config: expand %q: %w", *p, err)
		}
		*p = v
	}
	return nil
}

// ExpandPaths expands "~" in every path field. Load calls it; callers
// building a Config by hand may call it themselves.
func (c *Config) ExpandPaths() error { return c.expandPaths() }

// Validate reports configuration values that cannot work.
func (c Config) Validate() error {
	var errs []error
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		errs = append(errs, fmt.Errorf("canvas size %dx%d must be positive", c.Canvas.Width, c.Canvas.Height))
	}
	if c.Device.ScreenWidth <= 0 {
		errs = append(errs, fmt.Errorf("device.screen_width %g must be positive", c.Device.ScreenWidth))
	}
	if c.Fetch.Limit < 0 {
		errs = append(errs, fmt.Errorf("fetch.limit %d must not be negative", c.Fetch.Limit))
	}
	switch strings.ToLower(c.Output.Format) {
	case "", "png", "jpg", "jpeg":
	default:
		errs = append(errs, fmt.Errorf("output.format %q must be png or jpg", c.Output.Format))
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format %q must be text or json", c.Log.Format))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// SlogLevel maps Level to a slog.Level. Empty means info.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if l.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log.level: %w", err)
	}
	return lvl, nil
}
