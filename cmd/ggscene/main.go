// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command ggscene renders JSON scene descriptions to PNG or JPEG files.
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "render":
		err = Render(args)
	case "watch":
		err = Watch(args)
	case "version", "-v", "--version":
		fmt.Printf("ggscene version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`ggscene - JSON scene renderer

Usage: ggscene <command> [options]

Commands:
  render   Render a scene once
  watch    Re-render whenever the scene or config file changes
  version  Print version information
  help     Show this help message

Examples:
  ggscene render -scene poster.json -o poster.png
  ggscene render -url https://example.com/poster.json -config ggscene.toml
  ggscene render -scene poster.json -trace trace.json
  ggscene watch -scene poster.json -o poster.png

Configuration:
  Canvas size, device width, fonts, fetch limits and output format are read
  from a .toml or .yaml file given with -config.`)
}
