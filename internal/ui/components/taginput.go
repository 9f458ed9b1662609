// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/marknote/internal/tags"
	"github.com/jeranaias/marknote/internal/ui/styles"
)

// =============================================================================
// TAG INPUT COMPONENT
// =============================================================================

// TagInput is the form control for a note's tags: the selected tags as pills,
// a text input, and the suggestion panel. All state lives in the
// tags.Selector; this type maps keys onto it and renders it.
type TagInput struct {
	sel   *tags.Selector
	input textinput.Model
	popup *SuggestionPopup
	theme *styles.Theme
	width int
}

// NewTagInput wraps sel.
func NewTagInput(sel *tags.Selector, theme *styles.Theme) *TagInput {
	ti := textinput.New()
	ti.Prompt = "# "
	ti.Placeholder = "add a tag"
	ti.CharLimit = 64
	ti.SetValue(sel.Query())

	return &TagInput{
		sel:   sel,
		input: ti,
		popup: NewSuggestionPopup(theme),
		theme: theme,
		width: 40,
	}
}

// Selector returns the underlying state machine.
func (t *TagInput) Selector() *tags.Selector { return t.sel }

// Focus focuses the input and opens the suggestion panel.
func (t *TagInput) Focus() tea.Cmd {
	t.sel.Focus()
	return t.input.Focus()
}

// Blur removes focus and closes the panel.
func (t *TagInput) Blur() {
	t.sel.Blur()
	t.input.Blur()
}

// Focused reports whether the input has focus.
func (t *TagInput) Focused() bool { return t.sel.Focused() }

// SetWidth sets the rendered width.
func (t *TagInput) SetWidth(width int) {
	t.width = width
	t.input.Width = width - 4
	t.popup.SetWidth(min(width, 40))
}

// keyFor maps a terminal key to a selector key.
func keyFor(msg tea.KeyMsg) (tags.Key, bool) {
	switch msg.Type {
	case tea.KeyEnter:
		return tags.KeyEnter, true
	case tea.KeyDown:
		return tags.KeyDown, true
	case tea.KeyUp:
		return tags.KeyUp, true
	case tea.KeyBackspace:
		return tags.KeyBackspace, true
	case tea.KeyEsc:
		return tags.KeyEscape, true
	}
	return 0, false
}

// Update handles a message while the input is focused. handled reports
// whether a key was consumed; an unconsumed Enter, Esc or arrow is left to
// the owner.
func (t *TagInput) Update(msg tea.Msg) (handled bool, cmd tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		t.input, cmd = t.input.Update(msg)
		return false, cmd
	}

	if k, ok := keyFor(keyMsg); ok {
		if t.sel.HandleKey(k) {
			t.syncInput()
			return true, nil
		}
		if k != tags.KeyBackspace {
			return false, nil
		}
	}

	t.input, cmd = t.input.Update(keyMsg)
	t.sel.SetQuery(t.input.Value())
	return true, cmd
}

// syncInput copies the selector's query back into the text input after the
// selector changed it (adding a tag clears the query).
func (t *TagInput) syncInput() {
	if t.input.Value() != t.sel.Query() {
		t.input.SetValue(t.sel.Query())
		t.input.CursorEnd()
	}
}

// Refresh re-reads the selector after the owner changed it directly.
func (t *TagInput) Refresh() { t.syncInput() }

// View renders the pills, the input and, when open, the suggestion panel.
func (t *TagInput) View() string {
	var pills []string
	for _, tag := range t.sel.Selected() {
		pills = append(pills, t.theme.TagChipActive.Render(tag+" x"))
	}

	field := t.theme.Field
	if t.sel.Focused() {
		field = t.theme.FieldFocused
	}

	var b strings.Builder
	if len(pills) > 0 {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, joinWithSpace(pills)...))
		b.WriteString("\n")
	}
	b.WriteString(t.input.View())

	out := field.Width(t.width - 2).Render(b.String())
	if t.sel.IsOpen() {
		tag, ok := t.sel.CreateOption()
		t.popup.SetItems(t.sel.Candidates(), t.sel.Active())
		t.popup.SetCreate(tag, ok)
		out = lipgloss.JoinVertical(lipgloss.Left, out, t.popup.View())
	}
	return out
}

func joinWithSpace(parts []string) []string {
	out := make([]string, 0, len(parts)*2)
	for i, p := range parts {
		if i > 0 {
			out = append(out, " ")
		}
		out = append(out, p)
	}
	return out
}
