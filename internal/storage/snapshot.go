// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"encoding/json"
	"fmt"

	"github.com/jeranaias/marknote/internal/model"
)

// DefaultKey is the key the note snapshot lives under.
const DefaultKey = "persist:root"

// Snapshot persists the whole note list as one JSON value in a KV.
type Snapshot struct {
	kv  KV
	key string
}

// NewSnapshot returns a Snapshot stored under key (DefaultKey when empty).
func NewSnapshot(kv KV, key string) *Snapshot {
	if key == "" {
		key = DefaultKey
	}
	return &Snapshot{kv: kv, key: key}
}

// Key returns the storage key.
func (s *Snapshot) Key() string { return s.key }

// Load reads the note list. A missing key yields an empty list.
func (s *Snapshot) Load() (model.NoteList, error) {
	data, ok, err := s.kv.Get(s.key)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if !ok || len(data) == 0 {
		return model.NoteList{}, nil
	}

	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot %q: %w", s.key, err)
	}
	if snap.Notes == nil {
		return model.NoteList{}, nil
	}
	return snap.Notes.Normalize(), nil
}

// Save replaces the stored note list.
func (s *Snapshot) Save(notes model.NoteList) error {
	if notes == nil {
		notes = model.NoteList{}
	}
	data, err := json.Marshal(model.Snapshot{Notes: notes.Clone().Normalize()})
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := s.kv.Set(s.key, data); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}
