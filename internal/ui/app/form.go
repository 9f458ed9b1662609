// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/marknote/internal/markdown"
	"github.com/jeranaias/marknote/internal/model"
	"github.com/jeranaias/marknote/internal/tags"
	"github.com/jeranaias/marknote/internal/ui/components"
)

// formField is the form element receiving keys.
type formField int

const (
	fieldTitle formField = iota
	fieldContent
	fieldTags
	fieldSuggested
)

// noMark means no selection anchor is set.
const noMark = -1

// form is the state of the create and edit screens. id is empty when
// creating.
type form struct {
	id        string
	title     textinput.Model
	content   textarea.Model
	sel       *tags.Selector
	tagInput  *components.TagInput
	suggested *components.SuggestedTags
	field     formField

	preview     bool
	previewText string

	// mark anchors a selection in the content; the caret is the other end.
	mark int
}

// newForm builds the form for draft.
func (m *Model) newForm(id string, draft model.Draft) *form {
	title := textinput.New()
	title.Prompt = ""
	title.Placeholder = "Title"
	title.CharLimit = 200
	title.SetValue(draft.Title)

	content := textarea.New()
	content.Placeholder = "Write Markdown..."
	content.ShowLineNumbers = false
	content.CharLimit = 0
	content.MaxHeight = 0
	content.SetValue(draft.Content)

	sel := tags.NewSelector(m.svc.AllTags(), draft.Tags,
		tags.WithNotifier(m.toasts),
		tags.WithCreation(m.allowCreation),
	)

	f := &form{
		id:        id,
		title:     title,
		content:   content,
		sel:       sel,
		tagInput:  components.NewTagInput(sel, m.theme),
		suggested: components.NewSuggestedTags(m.suggested, sel, m.theme),
		mark:      noMark,
	}
	f.setSize(m.width, m.bodyHeight())
	return f
}

// draft collects the current field values.
func (f *form) draft() model.Draft {
	return model.Draft{
		Title:   f.title.Value(),
		Content: f.content.Value(),
		Tags:    f.sel.Selected(),
	}
}

// setSize lays the fields out in width x height.
func (f *form) setSize(width, height int) {
	f.title.Width = width - 6
	f.content.SetWidth(width - 4)
	// title, tags, suggestions, labels and the toolbar take the rest
	h := height - 14
	if h < 3 {
		h = 3
	}
	f.content.SetHeight(h)
	f.tagInput.SetWidth(width)
}

// =============================================================================
// FOCUS
// =============================================================================

func (f *form) next() formField {
	switch f.field {
	case fieldTitle:
		return fieldContent
	case fieldContent:
		return fieldTags
	case fieldTags:
		if f.suggested.Len() > 0 {
			return fieldSuggested
		}
	}
	return fieldTitle
}

func (f *form) prev() formField {
	switch f.field {
	case fieldContent:
		return fieldTitle
	case fieldTags:
		return fieldContent
	case fieldSuggested:
		return fieldTags
	}
	if f.suggested.Len() > 0 {
		return fieldSuggested
	}
	return fieldTags
}

// focusField moves focus to field. Leaving the tag input closes its panel.
func (f *form) focusField(field formField) tea.Cmd {
	f.title.Blur()
	f.content.Blur()
	f.tagInput.Blur()
	f.suggested.Blur()
	f.field = field

	switch field {
	case fieldContent:
		return f.content.Focus()
	case fieldTags:
		return f.tagInput.Focus()
	case fieldSuggested:
		f.suggested.Focus()
		return nil
	default:
		return f.title.Focus()
	}
}

// =============================================================================
// INPUT
// =============================================================================

// update forwards non-key messages, such as cursor blinks, to the focused field.
func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.field {
	case fieldTitle:
		f.title, cmd = f.title.Update(msg)
	case fieldContent:
		f.content, cmd = f.content.Update(msg)
	case fieldTags:
		_, cmd = f.tagInput.Update(msg)
	}
	return cmd
}

// handleKey applies a key to the focused field.
func (f *form) handleKey(msg tea.KeyMsg, keys KeyMap) tea.Cmd {
	switch f.field {
	case fieldTitle:
		if msg.Type == tea.KeyEnter || msg.Type == tea.KeyDown {
			return f.focusField(fieldContent)
		}
		var cmd tea.Cmd
		f.title, cmd = f.title.Update(msg)
		return cmd

	case fieldContent:
		if key.Matches(msg, keys.Mark) {
			f.mark = caretOffset(f.content)
			return nil
		}
		for _, format := range markdown.Formats {
			if key.Matches(msg, keys.Formatting[format]) {
				f.applyFormat(format)
				return nil
			}
		}
		var cmd tea.Cmd
		f.content, cmd = f.content.Update(msg)
		return cmd

	case fieldTags:
		handled, cmd := f.tagInput.Update(msg)
		if !handled && msg.Type == tea.KeyDown && f.suggested.Len() > 0 {
			return f.focusField(fieldSuggested)
		}
		return cmd

	case fieldSuggested:
		switch {
		case key.Matches(msg, keys.Left):
			f.suggested.Left()
		case key.Matches(msg, keys.Right):
			f.suggested.Right()
		case msg.Type == tea.KeyEnter || msg.Type == tea.KeySpace:
			f.suggested.Pick()
			f.tagInput.Refresh()
		case msg.Type == tea.KeyUp:
			return f.focusField(fieldTags)
		}
	}
	return nil
}

// applyFormat runs a toolbar action on the content. With a mark set the
// selection runs from the mark to the caret.
func (f *form) applyFormat(format markdown.Format) {
	caret := caretOffset(f.content)
	start, end := caret, caret
	if f.mark != noMark {
		start = f.mark
	}
	text, pos := markdown.Insert(f.content.Value(), start, end, format)
	setValueWithCaret(&f.content, text, pos)
	f.mark = noMark
}

// =============================================================================
// TEXTAREA CARET
// =============================================================================

// caretOffset returns the caret position in runes from the start of ta's value.
func caretOffset(ta textarea.Model) int {
	lines := strings.Split(ta.Value(), "\n")
	row := ta.Line()
	off := 0
	for i := 0; i < row && i < len(lines); i++ {
		off += len([]rune(lines[i])) + 1
	}
	info := ta.LineInfo()
	return off + info.StartColumn + info.ColumnOffset
}

// setValueWithCaret replaces ta's value and puts the caret at the rune offset
// caret. The text after the caret is set first, then the text before it is
// inserted from the top, which leaves the cursor at the boundary.
func setValueWithCaret(ta *textarea.Model, text string, caret int) {
	r := []rune(text)
	if caret < 0 {
		caret = 0
	}
	if caret > len(r) {
		caret = len(r)
	}

	ta.SetValue(string(r[caret:]))
	for guard := len(r) + 1; ta.Line() > 0 && guard > 0; guard-- {
		ta.CursorUp()
	}
	ta.CursorStart()
	ta.InsertString(string(r[:caret]))
}
