// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/marknote/internal/markdown"
	"github.com/jeranaias/marknote/internal/service"
	"github.com/jeranaias/marknote/internal/ui/components"
	"github.com/jeranaias/marknote/internal/util"
)

// NotFoundText is the body of the detail view for a missing note.
const NotFoundText = "This note does not exist. It may have been deleted."

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	var keys help.KeyMap
	switch m.route.Screen {
	case service.ScreenDetail:
		body, keys = m.viewDetail(), m.keys.DetailHelp()
	case service.ScreenCreate, service.ScreenEdit:
		body, keys = m.viewForm(), m.keys.FormHelp()
	default:
		body, keys = m.viewList(), m.keys.ListHelp()
	}

	if m.confirmID != "" {
		body = m.viewConfirm()
		keys = m.keys.ConfirmHelp()
	}

	body = lipgloss.NewStyle().Height(m.bodyHeight()).MaxHeight(m.bodyHeight()).Render(body)

	parts := []string{m.viewHeader(), body}
	if toasts := m.toasts.GetToasts(); len(toasts) > 0 {
		parts = append(parts, components.RenderToastStack(toasts, m.width))
	}
	parts = append(parts, m.theme.StatusBar.Width(m.width).Render(m.help.View(keys)))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// viewHeader renders the app name and the current screen.
func (m Model) viewHeader() string {
	var subtitle string
	switch m.route.Screen {
	case service.ScreenDetail:
		subtitle = "Note"
	case service.ScreenCreate:
		subtitle = "New note"
	case service.ScreenEdit:
		subtitle = "Edit note"
	default:
		subtitle = "Notes"
	}
	title := m.theme.HeaderTitle.Render("marknote") + "  " + m.theme.HeaderSubtitle.Render(subtitle)
	return m.theme.Header.Width(m.width - 2).Render(title)
}

// =============================================================================
// LIST
// =============================================================================

func (m Model) viewList() string {
	var b strings.Builder
	b.WriteString(m.search.View())
	b.WriteString("\n")
	if chips := m.chips.View(); chips != "" {
		b.WriteString(chips)
	} else {
		b.WriteString(m.theme.NotePreview.Render("No tags yet"))
	}
	b.WriteString("\n")
	b.WriteString(m.theme.NotePreview.Render(components.CountLine(m.list.Len(), m.total)))
	b.WriteString("\n")
	b.WriteString(m.list.View())
	return b.String()
}

// =============================================================================
// DETAIL
// =============================================================================

func (m Model) viewDetail() string {
	if !m.detailFound {
		box := m.theme.NotFoundBox.Render(
			m.theme.HeaderTitle.Render("Note not found") + "\n\n" +
				NotFoundText + "\n\n" +
				m.theme.ShortcutKey.Render("esc") + " " + m.theme.ShortcutDesc.Render("back to the list"),
		)
		return lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center, box)
	}

	n := m.detailNote
	head := m.theme.DetailTitle.Render(util.TruncateWidth(n.Title, m.width-2))
	if tags := components.FormatTags(n.Tags); tags != "" {
		head += "\n" + m.theme.TagPill.Render(tags)
	}
	return head + "\n" + m.detail.View()
}

// =============================================================================
// FORM
// =============================================================================

func (m Model) viewForm() string {
	f := m.form
	if f == nil {
		return ""
	}

	field := func(focused bool) lipgloss.Style {
		if focused {
			return m.theme.FieldFocused.Width(m.width - 2)
		}
		return m.theme.Field.Width(m.width - 2)
	}

	var sections []string
	sections = append(sections,
		m.theme.Label.Render("Title"),
		field(f.field == fieldTitle).Render(f.title.View()),
	)

	stats := markdown.ComputeStats(f.content.Value()).String()
	label := m.theme.Label.Render("Content") + "  " + m.theme.Stats.Render(stats)
	if f.mark != noMark {
		label += "  " + m.theme.DropdownCreate.Render("selection mark set")
	}
	sections = append(sections, label, m.viewToolbar())

	if f.preview {
		sections = append(sections, field(false).Render(f.previewText))
	} else {
		sections = append(sections, field(f.field == fieldContent).Render(f.content.View()))
	}

	sections = append(sections, m.theme.Label.Render("Tags"), f.tagInput.View())
	if s := f.suggested.View(); s != "" {
		sections = append(sections, s)
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewToolbar lists the formatting shortcuts.
func (m Model) viewToolbar() string {
	parts := make([]string, 0, len(markdown.Formats)+1)
	for _, format := range markdown.Formats {
		h := m.keys.Formatting[format].Help()
		parts = append(parts, m.theme.ToolbarKey.Render(h.Key)+" "+m.theme.Toolbar.Render(h.Desc))
	}
	mode := "preview"
	if m.form.preview {
		mode = "edit"
	}
	parts = append(parts, m.theme.ToolbarKey.Render("C-p")+" "+m.theme.Toolbar.Render(mode))
	return lipgloss.NewStyle().Width(m.width - 2).Render(strings.Join(parts, "  "))
}

// =============================================================================
// DELETE DIALOG
// =============================================================================

func (m Model) viewConfirm() string {
	title := m.confirmID
	if n, err := m.svc.Store().Get(m.confirmID); err == nil {
		title = n.Title
	}
	box := m.theme.ConfirmBox.Render(
		m.theme.ErrorStyle.Render("Delete note?") + "\n\n" +
			util.TruncateWidth(title, 40) + "\n\n" +
			m.theme.ShortcutKey.Render("y") + " " + m.theme.ShortcutDesc.Render("delete") + "   " +
			m.theme.ShortcutKey.Render("n") + " " + m.theme.ShortcutDesc.Render("cancel"),
	)
	return lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center, box)
}
