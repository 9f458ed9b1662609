// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jeranaias/marknote/internal/notify"
	"github.com/jeranaias/marknote/internal/service"
	"github.com/jeranaias/marknote/internal/ui/components"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()

	case components.ToastTickMsg:
		m.toasts.TickToasts()
		if m.toasts.HasToasts() {
			return m, components.ToastTickCmd()
		}
		m.ticking = false
		return m, nil

	case NotesChangedMsg:
		m.reload()

	case clipboardMsg:
		if msg.err != nil {
			m.log.Warn("clipboard write failed", zap.Error(msg.err))
			m.toasts.Notify(notify.Error, "Could not copy: "+msg.err.Error())
		} else {
			m.toasts.Notify(notify.Info, "Content copied")
		}

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		cmd = m.handleKey(msg)

	default:
		if m.form != nil {
			cmd = m.form.update(msg)
		}
	}

	tick := m.ensureTick()
	return m, tea.Batch(cmd, tick)
}

// ensureTick starts the toast sweep when toasts appeared.
func (m *Model) ensureTick() tea.Cmd {
	if m.ticking || !m.toasts.HasToasts() {
		return nil
	}
	m.ticking = true
	return components.ToastTickCmd()
}

// reload re-reads the snapshot after an external change.
func (m *Model) reload() {
	if err := m.svc.Store().Reload(); err != nil {
		m.log.Error("reload failed", zap.Error(err))
		m.toasts.Notify(notify.Error, "Could not reload notes: "+err.Error())
		return
	}
	switch m.route.Screen {
	case service.ScreenList:
		m.refreshList()
	case service.ScreenDetail:
		_, note, err := m.svc.OpenDetail(m.route.ID)
		m.detailNote, m.detailFound = note, err == nil
		m.renderDetail()
	}
	if m.form != nil {
		m.form.sel.SetAllTags(m.svc.AllTags())
	}
}

// handleKey routes a key to the open dialog or the current screen.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.confirmID != "" {
		return m.updateConfirm(msg)
	}
	switch m.route.Screen {
	case service.ScreenDetail:
		return m.updateDetail(msg)
	case service.ScreenCreate, service.ScreenEdit:
		return m.updateForm(msg)
	default:
		return m.updateList(msg)
	}
}

// =============================================================================
// DELETE DIALOG
// =============================================================================

func (m *Model) updateConfirm(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		id := m.confirmID
		m.confirmID = ""
		route, _ := m.svc.Delete(id)
		return m.navigate(route)
	case key.Matches(msg, m.keys.Cancel):
		m.confirmID = ""
	}
	return nil
}

// =============================================================================
// LIST SCREEN
// =============================================================================

func (m *Model) updateList(msg tea.KeyMsg) tea.Cmd {
	switch m.focus {
	case focusSearch:
		return m.updateSearch(msg)
	case focusChips:
		return m.updateChips(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Dismiss):
		m.toasts.DismissNewest()
	case key.Matches(msg, m.keys.Up):
		m.list.Up()
	case key.Matches(msg, m.keys.Down):
		m.list.Down()
	case key.Matches(msg, m.keys.Top):
		m.list.Top()
	case key.Matches(msg, m.keys.Bottom):
		m.list.Bottom()
	case key.Matches(msg, m.keys.Open):
		if n, ok := m.list.Selected(); ok {
			return m.navigate(service.DetailRoute(n.ID))
		}
	case key.Matches(msg, m.keys.New):
		return m.navigate(service.CreateRoute)
	case key.Matches(msg, m.keys.Edit):
		if n, ok := m.list.Selected(); ok {
			return m.navigate(service.EditRoute(n.ID))
		}
	case key.Matches(msg, m.keys.Delete):
		if n, ok := m.list.Selected(); ok {
			m.confirmID = n.ID
		}
	case key.Matches(msg, m.keys.Search):
		m.focus = focusSearch
		return m.search.Focus()
	case key.Matches(msg, m.keys.Filters):
		m.chips.Focus()
		if m.chips.Focused() {
			m.focus = focusChips
		}
	case key.Matches(msg, m.keys.Clear):
		m.search.SetValue("")
		m.chipSet.Clear()
		m.refreshList()
	}
	return nil
}

func (m *Model) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter, tea.KeyTab:
		m.search.Blur()
		m.focus = focusList
		return nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.refreshList()
	return cmd
}

func (m *Model) updateChips(msg tea.KeyMsg) tea.Cmd {
	switch {
	case msg.Type == tea.KeyEsc, key.Matches(msg, m.keys.Filters), msg.Type == tea.KeyTab:
		m.chips.Blur()
		m.focus = focusList
	case key.Matches(msg, m.keys.Left):
		m.chips.Left()
	case key.Matches(msg, m.keys.Right):
		m.chips.Right()
	case key.Matches(msg, m.keys.Toggle):
		m.chips.Toggle()
		m.refreshList()
	}
	return nil
}

// =============================================================================
// DETAIL SCREEN
// =============================================================================

func (m *Model) updateDetail(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keys.Back):
		return m.navigate(service.ListRoute)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	case key.Matches(msg, m.keys.Dismiss):
		m.toasts.DismissNewest()
		return nil
	}

	if !m.detailFound {
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Edit):
		return m.navigate(service.EditRoute(m.route.ID))
	case key.Matches(msg, m.keys.Delete):
		m.confirmID = m.route.ID
		return nil
	case key.Matches(msg, m.keys.Copy):
		return m.copyCmd(m.detailNote.Content)
	case key.Matches(msg, m.keys.Top):
		m.detail.GotoTop()
		return nil
	case key.Matches(msg, m.keys.Bottom):
		m.detail.GotoBottom()
		return nil
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return cmd
}

// renderDetail refreshes the viewport content for the current note.
func (m *Model) renderDetail() {
	if !m.detailFound {
		m.detail.SetContent("")
		return
	}
	m.detail.SetContent(m.renderMarkdown(m.detailNote.Content))
}

// renderMarkdown renders content, falling back to the raw text on error.
func (m *Model) renderMarkdown(content string) string {
	out, err := m.renderer.Render(content)
	if err != nil {
		m.log.Warn("markdown render failed", zap.Error(err))
		return content
	}
	return out
}

// =============================================================================
// FORM SCREENS
// =============================================================================

func (m *Model) updateForm(msg tea.KeyMsg) tea.Cmd {
	f := m.form

	switch {
	case key.Matches(msg, m.keys.Save):
		return m.submit()
	case key.Matches(msg, m.keys.Preview):
		f.preview = !f.preview
		if f.preview {
			f.previewText = m.renderMarkdown(f.content.Value())
		}
		return nil
	case key.Matches(msg, m.keys.NextField):
		return f.focusField(f.next())
	case key.Matches(msg, m.keys.PrevField):
		return f.focusField(f.prev())
	}

	if f.preview {
		if msg.Type == tea.KeyEsc {
			f.preview = false
		}
		return nil
	}

	if msg.Type == tea.KeyEsc {
		// an open suggestion panel takes the first Esc
		if f.field == fieldTags {
			if handled, _ := f.tagInput.Update(msg); handled {
				return nil
			}
		}
		return m.navigate(m.cancelRoute())
	}

	return f.handleKey(msg, m.keys)
}

// cancelRoute is where leaving the form without saving goes.
func (m *Model) cancelRoute() service.Route {
	if m.form.id != "" {
		return service.DetailRoute(m.form.id)
	}
	return service.ListRoute
}

// submit sends the form to the service. A validation error keeps the form
// open with focus on the offending field.
func (m *Model) submit() tea.Cmd {
	route, _, err := m.svc.Submit(m.form.id, m.form.draft())

	var ve *service.ValidationError
	if errors.As(err, &ve) {
		if ve.Field == service.FieldContent {
			return m.form.focusField(fieldContent)
		}
		return m.form.focusField(fieldTitle)
	}
	return m.navigate(route)
}
