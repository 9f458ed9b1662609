// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jeranaias/marknote/internal/markdown"
	"github.com/jeranaias/marknote/internal/storage"
	"github.com/jeranaias/marknote/internal/ui/app"
	"github.com/jeranaias/marknote/internal/ui/components"
	"github.com/jeranaias/marknote/internal/ui/styles"
)

// runTUI opens the interactive browser on the full screen.
func runTUI(e *env) error {
	if err := RequiresTTY("browse notes"); err != nil {
		return &UsageError{Err: err}
	}

	toasts := components.NewToastManager()
	svc := e.service(toasts)

	m := app.New(app.Options{
		Service:          svc,
		Toasts:           toasts,
		Renderer:         markdown.NewGlamour(e.cfg.UI.Theme, e.cfg.UI.WordWrap),
		Theme:            styles.NewThemeFor(e.cfg.UI.Theme),
		Log:              e.log,
		AllowTagCreation: e.cfg.UI.AllowTagCreation,
		SuggestedTags:    e.cfg.UI.SuggestedTags,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())

	if w := e.watch(func() { p.Send(app.NotesChangedMsg{}) }); w != nil {
		defer w.Close()
	}

	e.log.Info("tui started", zap.Int("notes", svc.Store().Len()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run interface: %w", err)
	}
	e.log.Info("tui stopped")
	return nil
}

// watch starts reporting external writes to the notes file when enabled.
// Only the file backend is watched; SQLite writes land in its journal.
func (e *env) watch(onChange func()) *storage.Watcher {
	if !e.cfg.Storage.Watch || e.cfg.Storage.Backend != storage.BackendFile {
		return nil
	}

	w, err := storage.NewWatcher(e.storePath, storage.DefaultDebounce, onChange, e.log)
	if err != nil {
		e.log.Warn("watch notes file", zap.String("path", e.storePath), zap.Error(err))
		return nil
	}
	if err := w.Watch(); err != nil {
		e.log.Warn("watch notes file", zap.String("path", e.storePath), zap.Error(err))
		w.Close()
		return nil
	}
	return w
}
