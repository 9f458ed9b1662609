// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package markdown

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

// Renderer turns Markdown into display text. Content is passed unmodified.
type Renderer interface {
	Render(content string) (string, error)
}

// Style names accepted by NewGlamour.
const (
	StyleAuto  = "auto"
	StyleDark  = "dark"
	StyleLight = "light"
	StylePlain = "notty"
)

// Glamour renders Markdown for the terminal. Changing the width rebuilds the
// underlying renderer on the next Render call.
type Glamour struct {
	mu    sync.Mutex
	style string
	width int
	tr    *glamour.TermRenderer
}

// NewGlamour returns a renderer with style ("auto", "dark", "light" or
// "notty") wrapping at width columns. Auto picks dark or light from the
// terminal background.
func NewGlamour(style string, width int) *Glamour {
	return &Glamour{style: ResolveStyle(style), width: width}
}

// ResolveStyle maps a configured style to a concrete glamour style name.
func ResolveStyle(style string) string {
	switch style {
	case StyleDark, StyleLight, StylePlain:
		return style
	default:
		if termenv.HasDarkBackground() {
			return StyleDark
		}
		return StyleLight
	}
}

// SetWidth changes the wrap width.
func (g *Glamour) SetWidth(width int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if width != g.width {
		g.width = width
		g.tr = nil
	}
}

// Render implements Renderer.
func (g *Glamour) Render(content string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.tr == nil {
		opts := []glamour.TermRendererOption{glamour.WithStandardStyle(g.style)}
		if g.width > 0 {
			opts = append(opts, glamour.WithWordWrap(g.width))
		}
		tr, err := glamour.NewTermRenderer(opts...)
		if err != nil {
			return "", fmt.Errorf("create markdown renderer: %w", err)
		}
		g.tr = tr
	}

	out, err := g.tr.Render(content)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

// Plain returns content as-is. Used when output is not a terminal.
type Plain struct{}

// Render implements Renderer.
func (Plain) Render(content string) (string, error) { return content, nil }

// RenderOrRaw renders content, falling back to the raw text on error.
func RenderOrRaw(r Renderer, content string) string {
	if r == nil {
		return content
	}
	out, err := r.Render(content)
	if err != nil {
		return content
	}
	return out
}
