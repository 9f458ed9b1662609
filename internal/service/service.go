// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package service turns user intents into store mutations, notifications and
// navigation. Both the TUI and the CLI go through it, so validation and
// messages are the same everywhere.
package service

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jeranaias/marknote/internal/filter"
	"github.com/jeranaias/marknote/internal/model"
	"github.com/jeranaias/marknote/internal/notify"
	"github.com/jeranaias/marknote/internal/store"
)

// Form fields named by ValidationError.
const (
	FieldTitle   = "title"
	FieldContent = "content"
)

// ValidationError rejects a form submission.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Service handles note intents.
type Service struct {
	store    *store.Store
	notifier notify.Notifier
	log      *zap.Logger
}

// New returns a Service over st. Notifications go to n.
func New(st *store.Store, n notify.Notifier, log *zap.Logger) *Service {
	if n == nil {
		n = notify.Discard
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: st, notifier: n, log: log}
}

// Store returns the underlying note store.
func (s *Service) Store() *store.Store { return s.store }

// =============================================================================
// FORM
// =============================================================================

// Validate checks a draft the way the form does: the title first, then the
// content. Only the first failure is reported.
func Validate(d model.Draft) error {
	if strings.TrimSpace(d.Title) == "" {
		return &ValidationError{Field: FieldTitle, Message: notify.TitleMissing}
	}
	if strings.TrimSpace(d.Content) == "" {
		return &ValidationError{Field: FieldContent, Message: notify.BodyMissing}
	}
	return nil
}

// Clean returns the draft as it is stored: title trimmed, content as typed,
// blank and duplicate tags dropped. Tags are kept byte for byte; trimming
// what the user types happens where it is typed.
func Clean(d model.Draft) model.Draft {
	tags := make([]string, 0, len(d.Tags))
	seen := make(map[string]struct{}, len(d.Tags))
	for _, t := range d.Tags {
		if strings.TrimSpace(t) == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		tags = append(tags, t)
	}
	return model.Draft{
		Title:   strings.TrimSpace(d.Title),
		Content: d.Content,
		Tags:    tags,
	}
}

// Submit saves the form. An empty id creates a note, otherwise the note with
// id is replaced. On success it returns the list route.
//
// A validation failure returns the form's own route and no mutation happens.
// Editing a note that no longer exists returns the list route with
// store.ErrNoteNotFound.
func (s *Service) Submit(id string, d model.Draft) (Route, model.Note, error) {
	form := CreateRoute
	if id != "" {
		form = EditRoute(id)
	}

	if err := Validate(d); err != nil {
		var ve *ValidationError
		errors.As(err, &ve)
		s.notifier.Notify(notify.Error, ve.Message)
		return form, model.Note{}, err
	}
	d = Clean(d)

	if id == "" {
		n, err := s.store.Create(d)
		if err != nil {
			s.notifier.Notify(notify.Error, notify.SaveFailed(err))
			return ListRoute, n, err
		}
		s.log.Info("note created", zap.String("id", n.ID))
		s.notifier.Notify(notify.Success, notify.NoteCreated)
		return ListRoute, n, nil
	}

	err := s.store.Update(id, d)
	switch {
	case errors.Is(err, store.ErrNoteNotFound):
		s.notifier.Notify(notify.Error, notify.NoteMissing)
		return ListRoute, model.Note{}, err
	case err != nil:
		s.notifier.Notify(notify.Error, notify.SaveFailed(err))
		return ListRoute, d.WithID(id), err
	}
	s.log.Info("note updated", zap.String("id", id))
	s.notifier.Notify(notify.Success, notify.NoteUpdated)
	return ListRoute, d.WithID(id), nil
}

// =============================================================================
// OTHER INTENTS
// =============================================================================

// Delete removes the note with id and returns the list route.
func (s *Service) Delete(id string) (Route, error) {
	err := s.store.Delete(id)
	switch {
	case errors.Is(err, store.ErrNoteNotFound):
		s.notifier.Notify(notify.Error, notify.NoteMissing)
		return ListRoute, err
	case err != nil:
		s.notifier.Notify(notify.Error, notify.SaveFailed(err))
		return ListRoute, err
	}
	s.log.Info("note deleted", zap.String("id", id))
	s.notifier.Notify(notify.Success, notify.NoteDeleted)
	return ListRoute, nil
}

// OpenEdit loads the form for the note with id. A missing note redirects to
// the list.
func (s *Service) OpenEdit(id string) (Route, model.Draft, error) {
	n, err := s.store.Get(id)
	if err != nil {
		return ListRoute, model.Draft{}, err
	}
	return EditRoute(id), n.Draft(), nil
}

// OpenDetail loads the note with id for viewing. A missing note keeps the
// detail route so the not-found view can be shown.
func (s *Service) OpenDetail(id string) (Route, model.Note, error) {
	n, err := s.store.Get(id)
	return DetailRoute(id), n, err
}

// List returns the notes visible for search and the required tags.
func (s *Service) List(search string, required []string) model.NoteList {
	return filter.Apply(s.store.All(), search, required)
}

// AllTags returns every tag in use.
func (s *Service) AllTags() []string { return s.store.AllTags() }
