// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/marknote/internal/model"
	"github.com/jeranaias/marknote/internal/notify"
	"github.com/jeranaias/marknote/internal/service"
	"github.com/jeranaias/marknote/internal/storage"
	"github.com/jeranaias/marknote/internal/store"
	"github.com/jeranaias/marknote/internal/ui/components"
	"github.com/jeranaias/marknote/internal/ui/styles"
)

type harness struct {
	svc    *service.Service
	toasts *components.ToastManager
	copied string
}

func newModel(t *testing.T, drafts ...model.Draft) (Model, *harness) {
	t.Helper()

	st, err := store.Open(storage.NewSnapshot(storage.NewMemoryKV(), ""))
	require.NoError(t, err)
	for _, d := range drafts {
		_, err := st.Create(d)
		require.NoError(t, err)
	}

	h := &harness{toasts: components.NewToastManager()}
	h.svc = service.New(st, h.toasts, nil)

	m := New(Options{
		Service:          h.svc,
		Toasts:           h.toasts,
		Theme:            styles.NewThemeFor(styles.ThemeDark),
		AllowTagCreation: true,
		SuggestedTags:    []string{"work", "ideas"},
		Clipboard: func(s string) error {
			h.copied = s
			return nil
		},
	})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(Model), h
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func keyType(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func typeText(m Model, s string) Model {
	for _, r := range s {
		m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func lastToast(t *testing.T, h *harness) components.Toast {
	t.Helper()
	toasts := h.toasts.GetToasts()
	require.NotEmpty(t, toasts)
	return toasts[0]
}

var (
	alpha = model.Draft{Title: "Alpha", Content: "# Alpha\n\nfirst", Tags: []string{"work"}}
	beta  = model.Draft{Title: "Beta", Content: "second", Tags: []string{"home"}}
)

// =============================================================================
// LIST
// =============================================================================

func TestList_OpenDetailAndBack(t *testing.T) {
	m, _ := newModel(t, alpha, beta)
	assert.Equal(t, service.ListRoute, m.Route())
	assert.Contains(t, m.View(), "2 notes shown (total 2)")

	m = send(m, keyType(tea.KeyDown), keyType(tea.KeyEnter))
	assert.Equal(t, service.ScreenDetail, m.Route().Screen)
	assert.Equal(t, "Beta", m.detailNote.Title)

	m = send(m, keyType(tea.KeyEsc))
	assert.Equal(t, service.ListRoute, m.Route())
}

func TestList_Search(t *testing.T) {
	m, _ := newModel(t, alpha, beta)

	m = typeText(m, "/")
	m = typeText(m, "bet")
	assert.Equal(t, 1, m.list.Len())

	m = send(m, keyType(tea.KeyEsc))
	assert.Equal(t, focusList, m.focus)
	assert.Equal(t, 1, m.list.Len(), "search text stays after leaving the box")

	m = send(m, keyType(tea.KeyCtrlL))
	assert.Equal(t, 2, m.list.Len())
}

func TestList_TagFilterChips(t *testing.T) {
	m, _ := newModel(t, alpha, beta)

	m = typeText(m, "t")
	require.Equal(t, focusChips, m.focus)

	// chips follow first appearance: work, home
	m = send(m, keyType(tea.KeyRight), keyType(tea.KeySpace))
	assert.Equal(t, []string{"home"}, m.chips.Required())
	require.Equal(t, 1, m.list.Len())
	n, _ := m.list.Selected()
	assert.Equal(t, "Beta", n.Title)
	assert.Contains(t, m.View(), "1 notes shown (total 2)")
}

func TestList_DeleteNeedsConfirmation(t *testing.T) {
	m, h := newModel(t, alpha, beta)

	m = typeText(m, "d")
	require.NotEmpty(t, m.confirmID)
	assert.Contains(t, m.View(), "Delete note?")

	m = typeText(m, "n")
	assert.Empty(t, m.confirmID)
	assert.Equal(t, 2, h.svc.Store().Len())

	m = typeText(m, "d")
	m = typeText(m, "y")
	assert.Equal(t, 1, h.svc.Store().Len())
	assert.Equal(t, service.ListRoute, m.Route())
	assert.Equal(t, notify.NoteDeleted, lastToast(t, h).Message)
	assert.Equal(t, 1, m.list.Len())
}

// =============================================================================
// DETAIL
// =============================================================================

func TestDetail_MissingNoteShowsNotFound(t *testing.T) {
	m, _ := newModel(t, alpha)
	m.navigate(service.DetailRoute("missing"))

	assert.Equal(t, service.DetailRoute("missing"), m.Route())
	assert.False(t, m.detailFound)
	assert.Contains(t, m.View(), NotFoundText)

	m = typeText(m, "e")
	assert.Equal(t, service.DetailRoute("missing"), m.Route(), "nothing to edit")

	m = send(m, keyType(tea.KeyEsc))
	assert.Equal(t, service.ListRoute, m.Route())
}

func TestDetail_CopyContent(t *testing.T) {
	m, h := newModel(t, alpha)
	m = send(m, keyType(tea.KeyEnter))
	require.True(t, m.detailFound)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	m = send(next.(Model), runCmd(cmd)...)

	assert.Equal(t, alpha.Content, h.copied)
	assert.Equal(t, "Content copied", lastToast(t, h).Message)
}

// runCmd executes cmd and any batch it returns, skipping timer ticks.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, runCmd(c)...)
		}
		return out
	case components.ToastTickMsg:
		return nil
	default:
		return []tea.Msg{msg}
	}
}

func TestDetail_DeleteReturnsToList(t *testing.T) {
	m, h := newModel(t, alpha)
	m = send(m, keyType(tea.KeyEnter))
	m = typeText(m, "d")
	m = typeText(m, "y")

	assert.Equal(t, service.ListRoute, m.Route())
	assert.Zero(t, h.svc.Store().Len())
}

// =============================================================================
// FORM
// =============================================================================

func TestForm_CreateNote(t *testing.T) {
	m, h := newModel(t, alpha)

	m = typeText(m, "n")
	require.Equal(t, service.CreateRoute, m.Route())

	m = typeText(m, "Groceries")
	m = send(m, keyType(tea.KeyTab))
	m = typeText(m, "milk")
	m = send(m, keyType(tea.KeyTab))
	require.Equal(t, fieldTags, m.form.field)

	// "wo" matches the existing "work" tag
	m = typeText(m, "wo")
	m = send(m, keyType(tea.KeyDown), keyType(tea.KeyEnter))
	// an unknown tag is created on Enter
	m = typeText(m, "shopping")
	m = send(m, keyType(tea.KeyEnter))
	assert.Equal(t, []string{"work", "shopping"}, m.form.sel.Selected())

	m = send(m, keyType(tea.KeyCtrlS))
	assert.Equal(t, service.ListRoute, m.Route())
	assert.Equal(t, notify.NoteCreated, lastToast(t, h).Message)

	notes := h.svc.Store().All()
	require.Len(t, notes, 2)
	assert.Equal(t, "Groceries", notes[1].Title)
	assert.Equal(t, "milk", notes[1].Content)
	assert.Equal(t, []string{"work", "shopping"}, notes[1].Tags)
}

func TestForm_ValidationKeepsForm(t *testing.T) {
	m, h := newModel(t)

	m = typeText(m, "n")
	m = send(m, keyType(tea.KeyCtrlS))
	assert.Equal(t, service.CreateRoute, m.Route())
	assert.Equal(t, notify.TitleMissing, lastToast(t, h).Message)
	assert.Equal(t, fieldTitle, m.form.field)

	m = typeText(m, "Title only")
	m = send(m, keyType(tea.KeyCtrlS))
	assert.Equal(t, notify.BodyMissing, lastToast(t, h).Message)
	assert.Equal(t, fieldContent, m.form.field)
	assert.Zero(t, h.svc.Store().Len())
}

func TestForm_EditNote(t *testing.T) {
	m, h := newModel(t, alpha)
	id := h.svc.Store().All()[0].ID

	m = typeText(m, "e")
	require.Equal(t, service.EditRoute(id), m.Route())
	assert.Equal(t, "Alpha", m.form.title.Value())
	assert.Equal(t, []string{"work"}, m.form.sel.Selected())

	m = typeText(m, " 2")
	m = send(m, keyType(tea.KeyCtrlS))
	assert.Equal(t, service.ListRoute, m.Route())

	n, err := h.svc.Store().Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Alpha 2", n.Title)
	assert.Equal(t, notify.NoteUpdated, lastToast(t, h).Message)
}

func TestForm_EditMissingRedirects(t *testing.T) {
	m, _ := newModel(t, alpha)
	m.navigate(service.EditRoute("missing"))

	assert.Equal(t, service.ListRoute, m.Route())
	assert.Nil(t, m.form)
}

func TestForm_CancelEditGoesToDetail(t *testing.T) {
	m, h := newModel(t, alpha)
	id := h.svc.Store().All()[0].ID

	m = typeText(m, "e")
	require.NotNil(t, m.form)
	m = send(m, keyType(tea.KeyEsc))
	assert.Equal(t, service.DetailRoute(id), m.Route())
	assert.Nil(t, m.form)

	// later non-key messages have no form to reach
	m = send(m, struct{}{})
	assert.Nil(t, m.form)
}

func TestForm_DuplicateTagWarns(t *testing.T) {
	m, h := newModel(t, alpha)

	m = typeText(m, "e")
	m = send(m, keyType(tea.KeyTab), keyType(tea.KeyTab))
	m = typeText(m, "work")
	m = send(m, keyType(tea.KeyEnter))

	// Enter on an already-selected typed tag is silent; picking it is a warning
	assert.Equal(t, []string{"work"}, m.form.sel.Selected())
	m.form.sel.AddTag("work")
	assert.Equal(t, notify.TagDuplicate("work"), lastToast(t, h).Message)
}

func TestForm_ToolbarKeepsCaret(t *testing.T) {
	m, _ := newModel(t)

	m = typeText(m, "n")
	m = send(m, keyType(tea.KeyTab))
	m = typeText(m, "a")
	m = send(m, keyType(tea.KeyEnter))
	m = typeText(m, "b")
	require.Equal(t, "a\nb", m.form.content.Value())
	require.Equal(t, 3, caretOffset(m.form.content))

	m = send(m, keyType(tea.KeyCtrlB))
	assert.Equal(t, "a\nb****", m.form.content.Value())
	assert.Equal(t, 5, caretOffset(m.form.content))

	m = typeText(m, "x")
	assert.Equal(t, "a\nb**x**", m.form.content.Value())
}

func TestForm_ToolbarWrapsMarkedSelection(t *testing.T) {
	m, _ := newModel(t)

	m = typeText(m, "n")
	m = send(m, keyType(tea.KeyTab))
	m = typeText(m, "see ")
	m = send(m, keyType(tea.KeyCtrlAt))
	m = typeText(m, "docs")
	m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}, Alt: true})

	assert.Equal(t, "see [docs](url)", m.form.content.Value())
	assert.Equal(t, noMark, m.form.mark)
}

func TestForm_SuggestedTags(t *testing.T) {
	m, _ := newModel(t)

	m = typeText(m, "n")
	m = send(m, keyType(tea.KeyShiftTab))
	require.Equal(t, fieldSuggested, m.form.field)

	m = send(m, keyType(tea.KeyRight), keyType(tea.KeyEnter))
	assert.Equal(t, []string{"ideas"}, m.form.sel.Selected())
}

func TestForm_PreviewToggle(t *testing.T) {
	m, _ := newModel(t)

	m = typeText(m, "n")
	m = send(m, keyType(tea.KeyTab))
	m = typeText(m, "hello")
	m = send(m, keyType(tea.KeyCtrlP))
	assert.True(t, m.form.preview)
	assert.Equal(t, "hello", m.form.previewText)

	m = typeText(m, "ignored")
	assert.Equal(t, "hello", m.form.content.Value())

	m = send(m, keyType(tea.KeyCtrlP))
	assert.False(t, m.form.preview)
}

// =============================================================================
// BACKGROUND MESSAGES
// =============================================================================

func TestNotesChanged_Reloads(t *testing.T) {
	kv := storage.NewMemoryKV()
	snap := storage.NewSnapshot(kv, "")
	st, err := store.Open(snap)
	require.NoError(t, err)
	svc := service.New(st, nil, nil)
	m := New(Options{Service: svc, Theme: styles.NewThemeFor(styles.ThemeDark)})
	assert.Equal(t, 0, m.list.Len())

	require.NoError(t, snap.Save(model.NoteList{model.NewNote(alpha)}))
	m = send(m, NotesChangedMsg{})
	assert.Equal(t, 1, m.list.Len())
}

func TestToastTick(t *testing.T) {
	m, h := newModel(t)
	h.toasts.Notify(notify.Info, "hello")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	m = next.(Model)
	assert.NotNil(t, cmd)
	assert.True(t, m.ticking)

	// the returned model carries the running sweep, so no second one starts
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	m = next.(Model)
	assert.True(t, m.ticking)

	h.toasts.Clear()
	m = send(m, components.ToastTickMsg{})
	assert.False(t, m.ticking)
}
