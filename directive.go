// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggscene

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind identifies the primitive a directive draws.
type Kind uint8

const (
	KindLine Kind = iota
	KindRect
	KindText
	KindImage
)

var kindNames = [...]string{
	KindLine:  "line",
	KindRect:  "rect",
	KindText:  "text",
	KindImage: "image",
}

// String returns the JSON key of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ParseKind maps a JSON key to a Kind.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), true
		}
	}
	return 0, false
}

// Flag is a boolean attribute decoded with JavaScript truthiness:
// false, 0, "" and null are false, any other scalar is true.
type Flag bool

// UnmarshalJSON implements json.Unmarshaler.
func (f *Flag) UnmarshalJSON(data []byte) error {
	*f = Flag(truthy(data))
	return nil
}

// Attrs is the attribute set of one directive. Lengths are in
// device-independent units. Style attributes are pointers so that an
// absent attribute is distinguishable from a zero one.
type Attrs struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
	R float64 `json:"r"`

	TopLeft     Flag `json:"topLeft"`
	TopRight    Flag `json:"topRight"`
	BottomLeft  Flag `json:"bottomLeft"`
	BottomRight Flag `json:"bottomRight"`

	Color       *string  `json:"color,omitempty"`
	BgColor     *string  `json:"bgColor,omitempty"`
	FontColor   *string  `json:"fontColor,omitempty"`
	BorderColor *string  `json:"borderColor,omitempty"`
	LineWidth   *float64 `json:"lineWidth,omitempty"`
	FontSize    *float64 `json:"fontSize,omitempty"`

	Text      string  `json:"text"`
	Wrap      Flag    `json:"wrap"`
	MaxWidth  float64 `json:"maxWidth"`
	LineSpace float64 `json:"lineSpace"`
	Bold      Flag    `json:"bold"`

	URL  string `json:"url"`
	Path string `json:"path"`
}

// Corners returns the per-corner rounding flags of the attribute set.
func (a *Attrs) Corners() Corners {
	var c Corners
	if a.TopLeft {
		c |= TopLeft
	}
	if a.TopRight {
		c |= TopRight
	}
	if a.BottomRight {
		c |= BottomRight
	}
	if a.BottomLeft {
		c |= BottomLeft
	}
	return c
}

// Directive is one drawing instruction.
type Directive struct {
	Kind  Kind
	Attrs Attrs
}

// Group holds the directives of one scene entry in JSON key order.
// Each kind appears at most once.
type Group []Directive

// UnmarshalJSON decodes a directive group object. Keys holding a falsy
// value are absent; unknown keys and malformed values are skipped.
// A repeated key replaces the earlier value without moving it.
func (g *Group) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*g = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		// Not an object: nothing to draw.
		*g = nil
		return nil
	}

	var out Group
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		key, _ := keyTok.(string)
		kind, ok := ParseKind(key)
		if !ok || !truthy(raw) {
			continue
		}
		raw = bytes.TrimSpace(raw)
		if len(raw) == 0 || raw[0] != '{' {
			Logger().Debug("ggscene: skipping malformed directive", "kind", key)
			continue
		}
		var attrs Attrs
		if err := json.Unmarshal(raw, &attrs); err != nil {
			Logger().Debug("ggscene: skipping malformed directive", "kind", key, "err", err)
			continue
		}
		out = out.with(Directive{Kind: kind, Attrs: attrs})
	}
	*g = out
	return nil
}

func (g Group) with(d Directive) Group {
	for i := range g {
		if g[i].Kind == d.Kind {
			g[i] = d
			return g
		}
	}
	return append(g, d)
}

// Scene is an ordered list of directive groups. Slice order is paint order.
type Scene []Group

// Len returns the number of directives in the scene.
func (s Scene) Len() int {
	n := 0
	for _, g := range s {
		n += len(g)
	}
	return n
}

// ParseScene decodes a JSON scene payload.
func ParseScene(data []byte) (Scene, error) {
	var s Scene
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("ggscene: parse scene: %w", err)
	}
	return s, nil
}

// truthy reports whether a raw JSON value is truthy in JavaScript terms.
func truthy(raw []byte) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return false
	}
	switch raw[0] {
	case 'n', 'f':
		return false
	case 't', '{', '[':
		return true
	case '"':
		return len(raw) > 2
	}
	n, err := strconv.ParseFloat(string(raw), 64)
	return err == nil && n != 0
}
