// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/jeranaias/marknote/internal/markdown"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines the keyboard bindings for every screen. Each binding carries
// its help text for the footer.
type KeyMap struct {
	// Global
	Quit    key.Binding
	Help    key.Binding
	Dismiss key.Binding

	// List
	Up      key.Binding
	Down    key.Binding
	Top     key.Binding
	Bottom  key.Binding
	Open    key.Binding
	New     key.Binding
	Edit    key.Binding
	Delete  key.Binding
	Search  key.Binding
	Filters key.Binding
	Left    key.Binding
	Right   key.Binding
	Toggle  key.Binding
	Clear   key.Binding

	// Detail
	Back key.Binding
	Copy key.Binding

	// Form
	Save       key.Binding
	NextField  key.Binding
	PrevField  key.Binding
	Preview    key.Binding
	Mark       key.Binding
	Formatting map[markdown.Format]key.Binding

	// Confirm
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "dismiss toast"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "next"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "first"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "last"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new note"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Search: key.NewBinding(
			key.WithKeys("/", "ctrl+f"),
			key.WithHelp("/", "search"),
		),
		Filters: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "tag filters"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "previous tag"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next tag"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("C-l", "clear filters"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy content"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "save"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "previous field"),
		),
		Preview: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("C-p", "preview"),
		),
		Mark: key.NewBinding(
			key.WithKeys("ctrl+@"),
			key.WithHelp("C-space", "mark selection"),
		),
		Formatting: map[markdown.Format]key.Binding{
			markdown.Bold:          key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("C-b", "bold")),
			markdown.Italic:        key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("C-t", "italic")),
			markdown.Heading:       key.NewBinding(key.WithKeys("alt+h"), key.WithHelp("M-h", "heading")),
			markdown.Quote:         key.NewBinding(key.WithKeys("alt+q"), key.WithHelp("M-q", "quote")),
			markdown.UnorderedList: key.NewBinding(key.WithKeys("alt+u"), key.WithHelp("M-u", "list")),
			markdown.OrderedList:   key.NewBinding(key.WithKeys("alt+o"), key.WithHelp("M-o", "numbered")),
			markdown.Link:          key.NewBinding(key.WithKeys("alt+l"), key.WithHelp("M-l", "link")),
			markdown.Image:         key.NewBinding(key.WithKeys("alt+i"), key.WithHelp("M-i", "image")),
			markdown.Table:         key.NewBinding(key.WithKeys("alt+t"), key.WithHelp("M-t", "table")),
			markdown.Code:          key.NewBinding(key.WithKeys("alt+c"), key.WithHelp("M-c", "code")),
		},
		Confirm: key.NewBinding(
			key.WithKeys("y", "enter"),
			key.WithHelp("y", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n/esc", "cancel"),
		),
	}
}

// =============================================================================
// HELP
// =============================================================================

// HelpKeys adapts a slice of bindings to help.KeyMap.
type HelpKeys struct {
	short []key.Binding
	full  [][]key.Binding
}

func (h HelpKeys) ShortHelp() []key.Binding  { return h.short }
func (h HelpKeys) FullHelp() [][]key.Binding { return h.full }

// ListHelp returns the bindings shown on the list screen.
func (k KeyMap) ListHelp() HelpKeys {
	return HelpKeys{
		short: []key.Binding{k.Open, k.New, k.Edit, k.Delete, k.Search, k.Filters, k.Help, k.Quit},
		full: [][]key.Binding{
			{k.Up, k.Down, k.Top, k.Bottom},
			{k.Open, k.New, k.Edit, k.Delete},
			{k.Search, k.Filters, k.Toggle, k.Clear},
			{k.Dismiss, k.Help, k.Quit},
		},
	}
}

// DetailHelp returns the bindings shown on the detail screen.
func (k KeyMap) DetailHelp() HelpKeys {
	return HelpKeys{
		short: []key.Binding{k.Back, k.Edit, k.Delete, k.Copy, k.Help},
		full: [][]key.Binding{
			{k.Up, k.Down, k.Top, k.Bottom},
			{k.Back, k.Edit, k.Delete, k.Copy},
			{k.Dismiss, k.Help, k.Quit},
		},
	}
}

// FormHelp returns the bindings shown on the create and edit screens.
func (k KeyMap) FormHelp() HelpKeys {
	formatting := make([]key.Binding, 0, len(markdown.Formats))
	for _, f := range markdown.Formats {
		formatting = append(formatting, k.Formatting[f])
	}
	return HelpKeys{
		short: []key.Binding{k.Save, k.NextField, k.Preview, k.Back, k.Help},
		full: [][]key.Binding{
			{k.Save, k.NextField, k.PrevField, k.Preview, k.Mark, k.Back},
			formatting[:5],
			formatting[5:],
		},
	}
}

// ConfirmHelp returns the bindings shown in the delete dialog.
func (k KeyMap) ConfirmHelp() HelpKeys {
	return HelpKeys{short: []key.Binding{k.Confirm, k.Cancel}}
}
