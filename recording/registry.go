// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
)

// Formatter writes a list of recorded commands to w.
// Formatters are registered via RegisterFormat and looked up by name.
type Formatter func(w io.Writer, cmds []Command) error

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	formats    = make(map[string]Formatter)
)

func init() {
	RegisterFormat("json", writeJSON)
	RegisterFormat("text", writeText)
}

// RegisterFormat registers a trace formatter under name, following the
// database/sql driver pattern:
//
//	func init() {
//	    recording.RegisterFormat("svg", writeSVG)
//	}
//
// RegisterFormat panics if f is nil or name is already registered.
func RegisterFormat(name string, f Formatter) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if f == nil {
		panic("recording: RegisterFormat formatter is nil")
	}
	if _, dup := formats[name]; dup {
		panic("recording: RegisterFormat called twice for " + name)
	}
	formats[name] = f
}

// UnregisterFormat removes a formatter. It is a no-op for unknown names.
func UnregisterFormat(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(formats, name)
}

// Formats returns the registered format names, sorted.
func Formats() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WriteFormat writes the recorded commands to w using the named formatter.
func (r *Recorder) WriteFormat(w io.Writer, name string) error {
	registryMu.RLock()
	f, ok := formats[name]
	registryMu.RUnlock()

	if !ok {
		return fmt.Errorf("recording: unknown format %q (have %s)", name, strings.Join(Formats(), ", "))
	}
	return f(w, r.commands)
}

// writeText writes one formatted call per line, leaving out measurement
// queries like Trace does.
func writeText(w io.Writer, cmds []Command) error {
	for _, c := range cmds {
		if c.Type() == CmdMeasureText {
			continue
		}
		if _, err := fmt.Fprintln(w, c.String()); err != nil {
			return err
		}
	}
	return nil
}
