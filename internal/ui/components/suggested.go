// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"slices"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/marknote/internal/tags"
	"github.com/jeranaias/marknote/internal/ui/styles"
)

// SuggestedTags is the row of configured quick-pick tags under the tag input.
// Tags already on the note are rendered disabled.
type SuggestedTags struct {
	tags    []string
	sel     *tags.Selector
	cursor  int
	focused bool
	theme   *styles.Theme
}

// NewSuggestedTags creates the row for sel.
func NewSuggestedTags(suggested []string, sel *tags.Selector, theme *styles.Theme) *SuggestedTags {
	return &SuggestedTags{tags: slices.Clone(suggested), sel: sel, theme: theme}
}

// Len returns the number of suggestions.
func (s *SuggestedTags) Len() int { return len(s.tags) }

// Focus gives the row keyboard focus.
func (s *SuggestedTags) Focus() { s.focused = len(s.tags) > 0 }

// Blur removes keyboard focus.
func (s *SuggestedTags) Blur() { s.focused = false }

// Focused reports whether the row has focus.
func (s *SuggestedTags) Focused() bool { return s.focused }

// Left moves the cursor left.
func (s *SuggestedTags) Left() {
	if s.cursor > 0 {
		s.cursor--
	}
}

// Right moves the cursor right.
func (s *SuggestedTags) Right() {
	if s.cursor < len(s.tags)-1 {
		s.cursor++
	}
}

// Pick adds the suggestion under the cursor unless the note already has it.
// Disabled suggestions are ignored silently.
func (s *SuggestedTags) Pick() bool {
	if s.cursor < 0 || s.cursor >= len(s.tags) {
		return false
	}
	tag := s.tags[s.cursor]
	if slices.Contains(s.sel.Selected(), tag) {
		return false
	}
	return s.sel.AddTag(tag)
}

// View renders the row.
func (s *SuggestedTags) View() string {
	if len(s.tags) == 0 {
		return ""
	}
	selected := s.sel.Selected()
	parts := []string{s.theme.Label.Render("Suggested: ")}
	for i, tag := range s.tags {
		style := s.theme.TagChip
		if slices.Contains(selected, tag) {
			style = s.theme.TagChipDisabled
		}
		label := tag
		if s.focused && i == s.cursor {
			style = style.Underline(true)
			label = "[" + tag + "]"
		}
		if i > 0 {
			parts = append(parts, " ")
		}
		parts = append(parts, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
