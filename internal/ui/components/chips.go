// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/marknote/internal/filter"
	"github.com/jeranaias/marknote/internal/ui/styles"
)

// =============================================================================
// FILTER CHIPS COMPONENT
// =============================================================================

// FilterChips shows every known tag as a toggle. Active chips are the tags a
// note must carry to stay in the list.
type FilterChips struct {
	tags    []string
	set     *filter.TagSet
	cursor  int
	focused bool
	theme   *styles.Theme
}

// NewFilterChips creates chips backed by set.
func NewFilterChips(set *filter.TagSet, theme *styles.Theme) *FilterChips {
	return &FilterChips{set: set, theme: theme}
}

// SetTags replaces the known tags and drops required tags no note carries.
func (c *FilterChips) SetTags(tags []string) {
	c.tags = tags
	c.set.Prune(tags)
	if c.cursor >= len(tags) {
		c.cursor = len(tags) - 1
	}
	if c.cursor < 0 {
		c.cursor = 0
	}
}

// Focus moves keyboard focus onto the chips.
func (c *FilterChips) Focus() { c.focused = len(c.tags) > 0 }

// Blur removes keyboard focus.
func (c *FilterChips) Blur() { c.focused = false }

// Focused reports whether the chips have focus.
func (c *FilterChips) Focused() bool { return c.focused }

// Left moves the chip cursor left.
func (c *FilterChips) Left() {
	if c.cursor > 0 {
		c.cursor--
	}
}

// Right moves the chip cursor right.
func (c *FilterChips) Right() {
	if c.cursor < len(c.tags)-1 {
		c.cursor++
	}
}

// Toggle flips the chip under the cursor and returns its new state.
func (c *FilterChips) Toggle() bool {
	if c.cursor < 0 || c.cursor >= len(c.tags) {
		return false
	}
	return c.set.Toggle(c.tags[c.cursor])
}

// Required returns the active tags.
func (c *FilterChips) Required() []string { return c.set.Tags() }

// View renders the chips on one line.
func (c *FilterChips) View() string {
	if len(c.tags) == 0 {
		return ""
	}
	chips := make([]string, 0, len(c.tags)*2)
	for i, tag := range c.tags {
		style := c.theme.TagChip
		if c.set.Has(tag) {
			style = c.theme.TagChipActive
		}
		label := tag
		if c.focused && i == c.cursor {
			style = style.Underline(true)
			label = "[" + tag + "]"
		}
		if i > 0 {
			chips = append(chips, " ")
		}
		chips = append(chips, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}
