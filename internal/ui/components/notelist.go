// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/jeranaias/marknote/internal/model"
	"github.com/jeranaias/marknote/internal/ui/styles"
	"github.com/jeranaias/marknote/internal/util"
)

// EmptyListText is shown when no note passes the filter.
const EmptyListText = "No notes match. Press n to write one."

// =============================================================================
// NOTE LIST COMPONENT
// =============================================================================

// NoteList renders the filtered notes with a cursor. It does not own the
// notes; the owner passes the filtered list on every change.
type NoteList struct {
	notes        model.NoteList
	cursor       int
	offset       int
	width        int
	height       int
	showPreviews bool
	theme        *styles.Theme
}

// NewNoteList creates an empty list.
func NewNoteList(theme *styles.Theme) *NoteList {
	return &NoteList{theme: theme, width: 80, height: 10, showPreviews: true}
}

// SetNotes replaces the visible notes. The cursor stays on the same note when
// it is still visible.
func (l *NoteList) SetNotes(notes model.NoteList) {
	var current string
	if n, ok := l.Selected(); ok {
		current = n.ID
	}
	l.notes = notes
	if i := notes.Index(current); i >= 0 {
		l.cursor = i
	}
	l.clamp()
}

// SetSize sets the area the list may use. Each row takes rowHeight lines.
func (l *NoteList) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.clamp()
}

// SetShowPreviews toggles the second line with the content preview.
func (l *NoteList) SetShowPreviews(show bool) {
	l.showPreviews = show
	l.clamp()
}

// Len returns the number of visible notes.
func (l *NoteList) Len() int { return len(l.notes) }

// Cursor returns the cursor index.
func (l *NoteList) Cursor() int { return l.cursor }

// Selected returns the note under the cursor.
func (l *NoteList) Selected() (model.Note, bool) {
	if l.cursor < 0 || l.cursor >= len(l.notes) {
		return model.Note{}, false
	}
	return l.notes[l.cursor], true
}

// Up moves the cursor up one row.
func (l *NoteList) Up() {
	if l.cursor > 0 {
		l.cursor--
	}
	l.clamp()
}

// Down moves the cursor down one row.
func (l *NoteList) Down() {
	if l.cursor < len(l.notes)-1 {
		l.cursor++
	}
	l.clamp()
}

// Top moves the cursor to the first note.
func (l *NoteList) Top() {
	l.cursor = 0
	l.clamp()
}

// Bottom moves the cursor to the last note.
func (l *NoteList) Bottom() {
	l.cursor = len(l.notes) - 1
	l.clamp()
}

func (l *NoteList) rowHeight() int {
	if l.showPreviews {
		return 2
	}
	return 1
}

func (l *NoteList) visibleRows() int {
	rows := l.height / l.rowHeight()
	if rows < 1 {
		return 1
	}
	return rows
}

// clamp keeps the cursor in range and scrolls it into view.
func (l *NoteList) clamp() {
	if l.cursor >= len(l.notes) {
		l.cursor = len(l.notes) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
	rows := l.visibleRows()
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+rows {
		l.offset = l.cursor - rows + 1
	}
	if l.offset < 0 {
		l.offset = 0
	}
}

// View renders the visible rows.
func (l *NoteList) View() string {
	if len(l.notes) == 0 {
		return l.theme.EmptyList.Render(EmptyListText)
	}

	end := l.offset + l.visibleRows()
	if end > len(l.notes) {
		end = len(l.notes)
	}

	rows := make([]string, 0, end-l.offset)
	for i := l.offset; i < end; i++ {
		rows = append(rows, l.renderRow(l.notes[i], i == l.cursor))
	}
	return strings.Join(rows, "\n")
}

// renderRow renders the title with its tags, and optionally a one-line preview.
func (l *NoteList) renderRow(n model.Note, selected bool) string {
	inner := l.width - 3
	if inner < 10 {
		inner = 10
	}

	tagText := FormatTags(n.Tags)
	titleWidth := inner
	if tagText != "" {
		titleWidth = inner - util.StringWidth(tagText) - 2
	}
	if titleWidth < 8 {
		titleWidth = 8
		tagText = ""
	}

	line := util.PadWidth(util.TruncateWidth(n.Title, titleWidth), titleWidth)
	line = l.theme.NoteTitle.Render(line)
	if tagText != "" {
		line += "  " + l.theme.TagPill.Render(util.TruncateWidth(tagText, inner-titleWidth-2))
	}

	if l.showPreviews {
		preview := util.TruncateWidth(util.SingleLine(n.Content), inner)
		line += "\n" + l.theme.NotePreview.Render(util.PadWidth(preview, inner))
	}

	if selected {
		return l.theme.NoteItemSelected.Render(line)
	}
	return l.theme.NoteItem.Render(line)
}

// FormatTags renders tags as "#a #b".
func FormatTags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = "#" + t
	}
	return strings.Join(parts, " ")
}

// CountLine is the status text under the list.
func CountLine(shown, total int) string {
	return fmt.Sprintf("%d notes shown (total %d)", shown, total)
}
