// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"slices"

	"github.com/google/uuid"
)

// =============================================================================
// NOTE TYPE
// =============================================================================

// Note is a user-authored Markdown record. ID is assigned once at creation and
// never changes afterwards.
type Note struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// Draft carries the editable fields of a note. Create turns it into a Note,
// Update replaces every field of an existing Note with it.
type Draft struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// NewNote assigns a fresh identifier to the draft.
func NewNote(d Draft) Note {
	return d.WithID(NewID())
}

// NewID returns a random (version 4) UUID string.
func NewID() string {
	return uuid.NewString()
}

// WithID builds a Note from the draft using the given id. Tags are copied so
// the caller's slice can be reused.
func (d Draft) WithID(id string) Note {
	return Note{
		ID:      id,
		Title:   d.Title,
		Content: d.Content,
		Tags:    cloneTags(d.Tags),
	}
}

// Draft returns the editable fields of the note.
func (n Note) Draft() Draft {
	return Draft{
		Title:   n.Title,
		Content: n.Content,
		Tags:    cloneTags(n.Tags),
	}
}

// Clone returns a deep copy of the note.
func (n Note) Clone() Note {
	n.Tags = cloneTags(n.Tags)
	return n
}

// HasTag reports whether the note carries tag. Comparison is exact.
func (n Note) HasTag(tag string) bool {
	return slices.Contains(n.Tags, tag)
}

// HasAnyTag reports whether the note carries at least one of tags.
func (n Note) HasAnyTag(tags []string) bool {
	for _, t := range tags {
		if n.HasTag(t) {
			return true
		}
	}
	return false
}

// cloneTags copies tags, never returning nil so the snapshot always encodes
// an array.
func cloneTags(tags []string) []string {
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}

// =============================================================================
// NOTE LIST
// =============================================================================

// NoteList is the ordered collection held by the store.
type NoteList []Note

// Snapshot is the persisted shape of the store: {"notes": [...]}.
type Snapshot struct {
	Notes NoteList `json:"notes"`
}

// Clone returns a deep copy of the list.
func (l NoteList) Clone() NoteList {
	out := make(NoteList, len(l))
	for i, n := range l {
		out[i] = n.Clone()
	}
	return out
}

// Index returns the position of the note with id, or -1.
func (l NoteList) Index(id string) int {
	return slices.IndexFunc(l, func(n Note) bool { return n.ID == id })
}

// Find returns the note with id.
func (l NoteList) Find(id string) (Note, bool) {
	i := l.Index(id)
	if i < 0 {
		return Note{}, false
	}
	return l[i], true
}

// AllTags returns the union of every note's tags in first-seen order.
// Empty tags are dropped. The result is derived on every call.
func (l NoteList) AllTags() []string {
	seen := make(map[string]struct{})
	tags := make([]string, 0)
	for _, n := range l {
		for _, t := range n.Tags {
			if t == "" {
				continue
			}
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
	}
	return tags
}

// Normalize replaces nil tag slices with empty ones.
func (l NoteList) Normalize() NoteList {
	for i := range l {
		if l[i].Tags == nil {
			l[i].Tags = []string{}
		}
	}
	return l
}
