// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/marknote/internal/ui/styles"
	"github.com/jeranaias/marknote/internal/util"
)

// NoResultsText is shown when the suggestion panel has nothing to offer.
const NoResultsText = "No matching tags"

// CreateLabel is the text of the row that creates an unknown tag.
func CreateLabel(tag string) string { return "Create \"" + tag + "\"" }

// =============================================================================
// SUGGESTION POPUP COMPONENT
// =============================================================================

// SuggestionPopup renders the tag suggestion panel under the tag input.
type SuggestionPopup struct {
	items      []string
	active     int
	create     string
	hasCreate  bool
	maxVisible int
	width      int
	theme      *styles.Theme
}

// NewSuggestionPopup creates an empty popup.
func NewSuggestionPopup(theme *styles.Theme) *SuggestionPopup {
	return &SuggestionPopup{
		active:     -1,
		maxVisible: 6,
		width:      32,
		theme:      theme,
	}
}

// SetItems replaces the candidates and the highlighted index (-1 for none).
func (p *SuggestionPopup) SetItems(items []string, active int) {
	p.items = items
	p.active = active
}

// SetCreate sets the create row. ok=false hides it.
func (p *SuggestionPopup) SetCreate(tag string, ok bool) {
	p.create = tag
	p.hasCreate = ok
}

// SetWidth sets the popup width.
func (p *SuggestionPopup) SetWidth(width int) {
	if width > 8 {
		p.width = width
	}
}

// SetMaxVisible sets the maximum number of visible rows.
func (p *SuggestionPopup) SetMaxVisible(n int) {
	if n > 0 {
		p.maxVisible = n
	}
}

// visibleRange returns the scrolling window that keeps the active row in view.
func (p *SuggestionPopup) visibleRange() (int, int) {
	n := len(p.items)
	if n <= p.maxVisible {
		return 0, n
	}
	start := 0
	if p.active >= 0 {
		start = p.active - p.maxVisible/2
	}
	if start < 0 {
		start = 0
	}
	end := start + p.maxVisible
	if end > n {
		end = n
		start = end - p.maxVisible
	}
	return start, end
}

// View renders the popup.
func (p *SuggestionPopup) View() string {
	inner := p.width - 4
	var rows []string

	switch {
	case len(p.items) > 0:
		start, end := p.visibleRange()
		if start > 0 {
			rows = append(rows, p.theme.DropdownEmpty.Render("  ..."))
		}
		for i := start; i < end; i++ {
			label := util.TruncateWidth(p.items[i], inner-2)
			if i == p.active {
				rows = append(rows, p.theme.DropdownActive.Render("> "+util.PadWidth(label, inner-2)))
			} else {
				rows = append(rows, p.theme.DropdownItem.Render("  "+label))
			}
		}
		if end < len(p.items) {
			rows = append(rows, p.theme.DropdownEmpty.Render("  ..."))
		}
	case p.hasCreate:
		rows = append(rows, p.theme.DropdownCreate.Render("+ "+util.TruncateWidth(CreateLabel(p.create), inner-2)))
	default:
		rows = append(rows, p.theme.DropdownEmpty.Render(NoResultsText))
	}

	return p.theme.Dropdown.
		Width(p.width - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, strings.Join(rows, "\n")))
}
