// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/ggscene"
	"github.com/gogpu/ggscene/config"
)

// debounce collapses the burst of events editors emit on save.
const debounce = 100 * time.Millisecond

// Watch implements the 'ggscene watch' command.
func Watch(args []string) error {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	var f renderFlags
	f.register(fs)
	fs.Parse(args)

	if f.scene == "" || f.scene == "-" {
		return errors.New("watch needs a -scene file")
	}
	f.url = ""
	f.album = false

	cfg, err := loadConfig(f.config)
	if err != nil {
		return err
	}
	if err := installLogger(cfg); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch directories rather than files: editors often replace the file.
	watched := map[string]bool{}
	for _, p := range []string{f.scene, f.config} {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		watched[abs] = true
		if err := watcher.Add(filepath.Dir(abs)); err != nil {
			return err
		}
	}

	fmt.Printf("Watching %s for changes...\n", f.scene)
	fmt.Println("Press Ctrl+C to stop")
	rerender(ctx, &cfg, f)

	var timer <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			abs, _ := filepath.Abs(event.Name)
			if !watched[abs] || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				continue
			}
			timer = time.After(debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			ggscene.Logger().Warn("watch: watcher error", "err", err)
		case <-timer:
			timer = nil
			rerender(ctx, &cfg, f)
		}
	}
}

// rerender reloads the config when one is given and renders once. Failures
// are reported and the watch goes on.
func rerender(ctx context.Context, cfg *config.Config, f renderFlags) {
	if f.config != "" {
		c, err := loadConfig(f.config)
		if err != nil {
			fmt.Fprintf(os.Stderr, "✗ %v\n", err)
			return
		}
		*cfg = c
	}
	out, err := renderOnce(ctx, *cfg, f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "✗ %v\n", err)
		return
	}
	fmt.Printf("✓ Wrote %s\n", out)
}
