// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package filter selects the notes shown in the list view.
package filter

import (
	"slices"
	"strings"

	"github.com/jeranaias/marknote/internal/model"
)

// Apply returns the notes whose title contains search (case-insensitive,
// surrounding whitespace ignored) and that carry at least one of required.
// A blank search or empty required set does not constrain. Order is kept and
// the input is never modified.
func Apply(notes model.NoteList, search string, required []string) model.NoteList {
	needle := strings.ToLower(strings.TrimSpace(search))

	out := make(model.NoteList, 0, len(notes))
	for _, n := range notes {
		if needle != "" && !strings.Contains(strings.ToLower(n.Title), needle) {
			continue
		}
		if len(required) > 0 && !n.HasAnyTag(required) {
			continue
		}
		out = append(out, n)
	}
	return out
}

// =============================================================================
// TAG SET
// =============================================================================

// TagSet is the ordered set of required tags toggled from the filter chips.
type TagSet struct {
	tags []string
}

// NewTagSet returns a set holding tags, duplicates dropped.
func NewTagSet(tags ...string) *TagSet {
	s := &TagSet{}
	for _, t := range tags {
		if !s.Has(t) {
			s.tags = append(s.tags, t)
		}
	}
	return s
}

// Toggle adds tag when absent and removes it when present. It reports
// whether tag is now in the set.
func (s *TagSet) Toggle(tag string) bool {
	if i := slices.Index(s.tags, tag); i >= 0 {
		s.tags = slices.Delete(s.tags, i, i+1)
		return false
	}
	s.tags = append(s.tags, tag)
	return true
}

// Has reports whether tag is in the set.
func (s *TagSet) Has(tag string) bool {
	return slices.Contains(s.tags, tag)
}

// Prune drops tags that are no longer in known.
func (s *TagSet) Prune(known []string) {
	s.tags = slices.DeleteFunc(s.tags, func(t string) bool {
		return !slices.Contains(known, t)
	})
}

// Clear empties the set.
func (s *TagSet) Clear() { s.tags = nil }

// Len returns the number of tags.
func (s *TagSet) Len() int { return len(s.tags) }

// Tags returns a copy of the tags in toggle order.
func (s *TagSet) Tags() []string { return slices.Clone(s.tags) }
