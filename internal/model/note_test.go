// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNote_AssignsUUID(t *testing.T) {
	a := NewNote(Draft{Title: "a", Content: "x"})
	b := NewNote(Draft{Title: "b", Content: "y"})

	_, err := uuid.Parse(a.ID)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
	assert.NotNil(t, a.Tags, "tags should encode as an array")
}

func TestDraft_WithIDCopiesTags(t *testing.T) {
	tags := []string{"work"}
	n := Draft{Title: "t", Content: "c", Tags: tags}.WithID("id-1")
	tags[0] = "changed"

	assert.Equal(t, []string{"work"}, n.Tags)
}

func TestNote_HasAnyTag(t *testing.T) {
	n := Note{Tags: []string{"work", "Go"}}

	tests := []struct {
		name string
		tags []string
		want bool
	}{
		{"single match", []string{"work"}, true},
		{"one of many", []string{"home", "Go"}, true},
		{"case differs", []string{"go"}, false},
		{"none", nil, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, n.HasAnyTag(tc.tags))
		})
	}
}

func TestNoteList_AllTags(t *testing.T) {
	list := NoteList{
		{ID: "1", Tags: []string{"work", "ideas"}},
		{ID: "2", Tags: []string{"", "home", "work"}},
		{ID: "3", Tags: []string{"Work"}},
	}

	assert.Equal(t, []string{"work", "ideas", "home", "Work"}, list.AllTags())
	assert.Empty(t, NoteList{}.AllTags())
}

func TestNoteList_Find(t *testing.T) {
	list := NoteList{{ID: "1", Title: "one"}, {ID: "2", Title: "two"}}

	n, ok := list.Find("2")
	require.True(t, ok)
	assert.Equal(t, "two", n.Title)

	_, ok = list.Find("missing")
	assert.False(t, ok)
	assert.Equal(t, -1, list.Index("missing"))
}

func TestSnapshot_JSONShape(t *testing.T) {
	snap := Snapshot{Notes: NoteList{{ID: "1", Title: "A", Content: "# a", Tags: []string{}}}}

	data, err := json.Marshal(snap)
	require.NoError(t, err)
	assert.JSONEq(t, `{"notes":[{"id":"1","title":"A","content":"# a","tags":[]}]}`, string(data))
}
