// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/jeranaias/marknote/internal/model"
)

// Persister loads and saves the complete note list.
type Persister interface {
	Load() (model.NoteList, error)
	Save(notes model.NoteList) error
}

// Store is the Note Store. It is safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	notes model.NoteList
	p     Persister
	log   *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// Open loads the persisted notes and returns a ready store.
func Open(p Persister, opts ...Option) (*Store, error) {
	s := &Store{p: p, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	notes, err := p.Load()
	if err != nil {
		return nil, fmt.Errorf("open note store: %w", err)
	}
	s.notes = notes.Normalize()
	s.log.Debug("note store opened", zap.Int("notes", len(s.notes)))
	return s, nil
}

// =============================================================================
// MUTATIONS
// =============================================================================

// Create appends a new note with a fresh id. The note is returned even when
// persisting fails; the error reports the failed write.
func (s *Store) Create(d model.Draft) (model.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := model.NewNote(d)
	s.notes = append(s.notes, n)
	s.log.Debug("note created", zap.String("id", n.ID))

	return n.Clone(), s.persist()
}

// Update replaces every field of the note with id. A missing id returns
// ErrNoteNotFound and leaves the store untouched.
func (s *Store) Update(id string, d model.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.notes.Index(id)
	if i < 0 {
		s.log.Warn("update of unknown note", zap.String("id", id))
		return &NotFoundError{ID: id}
	}

	s.notes[i] = d.WithID(id)
	s.log.Debug("note updated", zap.String("id", id))
	return s.persist()
}

// Delete removes the note with id. A missing id returns ErrNoteNotFound.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.notes.Index(id)
	if i < 0 {
		s.log.Warn("delete of unknown note", zap.String("id", id))
		return &NotFoundError{ID: id}
	}

	s.notes = append(s.notes[:i:i], s.notes[i+1:]...)
	s.log.Debug("note deleted", zap.String("id", id))
	return s.persist()
}

// Reload replaces the in-memory list with the persisted one. Used when
// another process rewrote the backing store.
func (s *Store) Reload() error {
	notes, err := s.p.Load()
	if err != nil {
		s.log.Error("reload failed", zap.Error(err))
		return fmt.Errorf("reload notes: %w", err)
	}

	s.mu.Lock()
	s.notes = notes.Normalize()
	s.mu.Unlock()

	s.log.Debug("note store reloaded", zap.Int("notes", len(notes)))
	return nil
}

// persist writes the full list. Callers hold the write lock.
func (s *Store) persist() error {
	if err := s.p.Save(s.notes); err != nil {
		s.log.Error("persist notes", zap.Error(err))
		return fmt.Errorf("persist notes: %w", err)
	}
	return nil
}

// =============================================================================
// QUERIES
// =============================================================================

// Get returns a copy of the note with id.
func (s *Store) Get(id string) (model.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.notes.Find(id)
	if !ok {
		return model.Note{}, &NotFoundError{ID: id}
	}
	return n.Clone(), nil
}

// All returns a copy of every note in store order.
func (s *Store) All() model.NoteList {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.notes.Clone()
}

// Len returns the number of notes.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notes)
}

// AllTags returns every tag in use, in first-seen order.
func (s *Store) AllTags() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.notes.AllTags()
}
