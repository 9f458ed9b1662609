// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jeranaias/marknote/internal/model"
	"github.com/jeranaias/marknote/internal/storage"
)

// fakePersister counts saves and can be told to fail.
type fakePersister struct {
	notes   model.NoteList
	saves   int
	saveErr error
	loadErr error
}

func (f *fakePersister) Load() (model.NoteList, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.notes.Clone(), nil
}

func (f *fakePersister) Save(notes model.NoteList) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	f.notes = notes.Clone()
	return nil
}

func openStore(t *testing.T, p Persister, opts ...Option) *Store {
	t.Helper()
	s, err := Open(p, opts...)
	require.NoError(t, err)
	return s
}

// =============================================================================
// MUTATION TESTS
// =============================================================================

func TestStore_CreateThenUpdate(t *testing.T) {
	p := &fakePersister{}
	s := openStore(t, p)

	n, err := s.Create(model.Draft{Title: "X", Content: "Y", Tags: []string{}})
	require.NoError(t, err)
	require.NotEmpty(t, n.ID)

	require.NoError(t, s.Update(n.ID, model.Draft{Title: "X2", Content: "Y", Tags: []string{"t"}}))

	got, err := s.Get(n.ID)
	require.NoError(t, err)
	assert.Equal(t, model.Note{ID: n.ID, Title: "X2", Content: "Y", Tags: []string{"t"}}, got)
	assert.Equal(t, 2, p.saves)
	assert.Equal(t, s.All(), p.notes, "persisted snapshot mirrors the store")
}

func TestStore_CreateAppendsInOrder(t *testing.T) {
	s := openStore(t, &fakePersister{})

	a, _ := s.Create(model.Draft{Title: "a", Content: "1"})
	b, _ := s.Create(model.Draft{Title: "b", Content: "2"})

	all := s.All()
	require.Len(t, all, 2)
	assert.Equal(t, a.ID, all[0].ID)
	assert.Equal(t, b.ID, all[1].ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestStore_DeleteMissing(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	p := &fakePersister{notes: model.NoteList{{ID: "1", Title: "a", Content: "b", Tags: []string{}}}}
	s := openStore(t, p, WithLogger(zap.New(core)))

	err := s.Delete("nope")
	assert.True(t, errors.Is(err, ErrNoteNotFound))
	assert.Equal(t, 1, s.Len())
	assert.Zero(t, p.saves, "nothing is written")
	assert.Equal(t, 1, logs.Len())

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "nope", nf.ID)
}

func TestStore_UpdateMissing(t *testing.T) {
	p := &fakePersister{notes: model.NoteList{{ID: "1", Title: "a", Content: "b", Tags: []string{}}}}
	s := openStore(t, p)
	before := s.All()

	err := s.Update("nope", model.Draft{Title: "z", Content: "z"})
	assert.ErrorIs(t, err, ErrNoteNotFound)
	assert.Equal(t, before, s.All())
	assert.Zero(t, p.saves)
}

func TestStore_Delete(t *testing.T) {
	p := &fakePersister{}
	s := openStore(t, p)
	a, _ := s.Create(model.Draft{Title: "a", Content: "1"})
	b, _ := s.Create(model.Draft{Title: "b", Content: "2"})
	c, _ := s.Create(model.Draft{Title: "c", Content: "3"})

	snapshot := s.All()
	require.NoError(t, s.Delete(b.ID))

	all := s.All()
	require.Len(t, all, 2)
	assert.Equal(t, a.ID, all[0].ID)
	assert.Equal(t, c.ID, all[1].ID)
	assert.Len(t, snapshot, 3, "earlier copies are unaffected")

	_, err := s.Get(b.ID)
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestStore_SaveFailureKeepsMutation(t *testing.T) {
	boom := errors.New("disk full")
	p := &fakePersister{saveErr: boom}
	s := openStore(t, p)

	n, err := s.Create(model.Draft{Title: "a", Content: "b"})
	assert.ErrorIs(t, err, boom)
	assert.NotEmpty(t, n.ID)
	assert.Equal(t, 1, s.Len())
}

func TestStore_OpenLoadError(t *testing.T) {
	_, err := Open(&fakePersister{loadErr: errors.New("corrupt")})
	assert.Error(t, err)
}

// =============================================================================
// QUERY TESTS
// =============================================================================

func TestStore_ReadsAreCopies(t *testing.T) {
	s := openStore(t, &fakePersister{})
	n, _ := s.Create(model.Draft{Title: "a", Content: "b", Tags: []string{"x"}})

	got, _ := s.Get(n.ID)
	got.Tags[0] = "mutated"
	all := s.All()
	all[0].Title = "mutated"

	again, _ := s.Get(n.ID)
	assert.Equal(t, "a", again.Title)
	assert.Equal(t, []string{"x"}, again.Tags)
}

func TestStore_AllTags(t *testing.T) {
	s := openStore(t, &fakePersister{})
	s.Create(model.Draft{Title: "a", Content: "1", Tags: []string{"work", "ideas"}})
	s.Create(model.Draft{Title: "b", Content: "2", Tags: []string{"home", "work"}})

	assert.Equal(t, []string{"work", "ideas", "home"}, s.AllTags())
}

// =============================================================================
// PERSISTENCE INTEGRATION
// =============================================================================

func TestStore_SnapshotAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	kv, err := storage.NewFileKV(path)
	require.NoError(t, err)

	s := openStore(t, storage.NewSnapshot(kv, ""))
	n, err := s.Create(model.Draft{Title: "persisted", Content: "body", Tags: []string{"b", "a"}})
	require.NoError(t, err)

	reopened := openStore(t, storage.NewSnapshot(kv, ""))
	got, err := reopened.Get(n.ID)
	require.NoError(t, err)
	assert.Equal(t, n, got)
}

func TestStore_Reload(t *testing.T) {
	kv := storage.NewMemoryKV()
	snap := storage.NewSnapshot(kv, "")
	s := openStore(t, snap)
	assert.Zero(t, s.Len())

	require.NoError(t, snap.Save(model.NoteList{{ID: "ext", Title: "from elsewhere", Content: "x"}}))
	require.NoError(t, s.Reload())

	got, err := s.Get("ext")
	require.NoError(t, err)
	assert.Equal(t, "from elsewhere", got.Title)
}
