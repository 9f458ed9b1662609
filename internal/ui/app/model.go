// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jeranaias/marknote/internal/filter"
	"github.com/jeranaias/marknote/internal/markdown"
	"github.com/jeranaias/marknote/internal/model"
	"github.com/jeranaias/marknote/internal/service"
	"github.com/jeranaias/marknote/internal/ui/components"
	"github.com/jeranaias/marknote/internal/ui/styles"
)

// =============================================================================
// OPTIONS
// =============================================================================

// Options configures the root model.
type Options struct {
	// Service handles every intent. Required.
	Service *service.Service

	// Toasts displays notifications. The same manager should be part of the
	// service's notifier so the core's messages show up as toasts.
	Toasts *components.ToastManager

	// Renderer renders Markdown in the detail view and the form preview.
	Renderer markdown.Renderer

	Theme *styles.Theme
	Log   *zap.Logger

	// AllowTagCreation lets the tag input create unknown tags.
	AllowTagCreation bool

	// SuggestedTags are offered as quick picks in the form.
	SuggestedTags []string

	// Clipboard copies text. Defaults to the system clipboard.
	Clipboard func(string) error
}

// =============================================================================
// MODEL
// =============================================================================

// listFocus is the element of the list screen receiving keys.
type listFocus int

const (
	focusList listFocus = iota
	focusSearch
	focusChips
)

// Model is the Bubble Tea root model.
type Model struct {
	svc       *service.Service
	toasts    *components.ToastManager
	renderer  markdown.Renderer
	theme     *styles.Theme
	log       *zap.Logger
	keys      KeyMap
	help      help.Model
	clipboard func(string) error

	allowCreation bool
	suggested     []string

	route  service.Route
	width  int
	height int

	// List screen
	search  textinput.Model
	chipSet *filter.TagSet
	chips   *components.FilterChips
	list    *components.NoteList
	focus   listFocus
	total   int

	// Detail screen
	detail      viewport.Model
	detailNote  model.Note
	detailFound bool

	// Create and edit screens
	form *form

	// Delete dialog; empty when closed.
	confirmID string

	ticking  bool
	quitting bool
}

// New creates the root model on the list screen.
func New(opts Options) Model {
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	if opts.Theme == nil {
		opts.Theme = styles.NewTheme()
	}
	if opts.Toasts == nil {
		opts.Toasts = components.NewToastManager()
	}
	if opts.Renderer == nil {
		opts.Renderer = markdown.Plain{}
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search titles"
	search.PromptStyle = opts.Theme.SearchPrompt

	chipSet := filter.NewTagSet()

	m := Model{
		svc:           opts.Service,
		toasts:        opts.Toasts,
		renderer:      opts.Renderer,
		theme:         opts.Theme,
		log:           opts.Log,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		clipboard:     opts.Clipboard,
		allowCreation: opts.AllowTagCreation,
		suggested:     opts.SuggestedTags,
		search:        search,
		chipSet:       chipSet,
		chips:         components.NewFilterChips(chipSet, opts.Theme),
		list:          components.NewNoteList(opts.Theme),
		detail:        viewport.New(80, 20),
		width:         80,
		height:        24,
	}
	m.layout()
	m.navigate(service.ListRoute)
	return m
}

// Route returns the current navigation route.
func (m Model) Route() service.Route { return m.route }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// =============================================================================
// NAVIGATION
// =============================================================================

// navigate switches to route and prepares its screen.
func (m *Model) navigate(route service.Route) tea.Cmd {
	m.confirmID = ""
	m.help.ShowAll = false

	switch route.Screen {
	case service.ScreenDetail:
		_, note, err := m.svc.OpenDetail(route.ID)
		m.route = route
		m.form = nil
		m.detailNote = note
		m.detailFound = err == nil
		m.renderDetail()
		m.detail.GotoTop()
		return nil

	case service.ScreenCreate:
		m.route = route
		m.form = m.newForm("", model.Draft{})
		return m.form.focusField(fieldTitle)

	case service.ScreenEdit:
		next, draft, err := m.svc.OpenEdit(route.ID)
		if err != nil {
			m.log.Warn("edit of missing note", zap.String("id", route.ID))
			return m.navigate(next)
		}
		m.route = next
		m.form = m.newForm(route.ID, draft)
		return m.form.focusField(fieldTitle)

	default:
		m.route = service.ListRoute
		m.form = nil
		m.refreshList()
		return nil
	}
}

// refreshList re-reads the store and re-applies the search and tag filters.
func (m *Model) refreshList() {
	m.chips.SetTags(m.svc.AllTags())
	m.list.SetNotes(m.svc.List(m.search.Value(), m.chips.Required()))
	m.total = m.svc.Store().Len()
}

// =============================================================================
// LAYOUT
// =============================================================================

const (
	headerHeight = 3
	footerHeight = 2
)

// bodyHeight is the space left for the current screen.
func (m Model) bodyHeight() int {
	h := m.height - headerHeight - footerHeight
	if h < 3 {
		return 3
	}
	return h
}

// layout propagates the window size to every component.
func (m *Model) layout() {
	m.theme.SetSize(m.width, m.height)
	m.help.Width = m.width

	m.search.Width = m.width - 6
	m.list.SetShowPreviews(m.theme.ShowPreviews())
	// search and chips take two rows, the count line one more
	m.list.SetSize(m.width, m.bodyHeight()-3)

	m.detail.Width = m.width
	m.detail.Height = m.bodyHeight() - 2
	if r, ok := m.renderer.(interface{ SetWidth(int) }); ok {
		r.SetWidth(m.width - 2)
	}
	if m.route.Screen == service.ScreenDetail {
		m.renderDetail()
	}
	if m.form != nil {
		m.form.setSize(m.width, m.bodyHeight())
	}
}

// =============================================================================
// COMMANDS AND MESSAGES
// =============================================================================

// NotesChangedMsg reports that the snapshot changed on disk.
type NotesChangedMsg struct{}

// clipboardMsg carries the result of a copy.
type clipboardMsg struct {
	err error
}

// copyCmd copies text off the event loop.
func (m Model) copyCmd(text string) tea.Cmd {
	write := m.clipboard
	return func() tea.Msg {
		return clipboardMsg{err: write(text)}
	}
}
