// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package tags

import (
	"slices"
	"strings"

	"github.com/jeranaias/marknote/internal/notify"
)

// Key is a keyboard action understood by the selector.
type Key int

const (
	KeyEnter Key = iota
	KeyDown
	KeyUp
	KeyBackspace
	KeyEscape
)

// None is the value of Active when no suggestion is highlighted.
const None = -1

// =============================================================================
// SELECTOR
// =============================================================================

// Selector is the state behind one tag input.
type Selector struct {
	query         string
	selected      []string
	allTags       []string
	candidates    []string
	open          bool
	focused       bool
	active        int
	allowCreation bool

	notifier notify.Notifier
	onChange func([]string)
}

// Option configures a Selector.
type Option func(*Selector)

// WithNotifier sets where tag notifications go.
func WithNotifier(n notify.Notifier) Option {
	return func(s *Selector) {
		if n != nil {
			s.notifier = n
		}
	}
}

// WithOnChange registers the owner's callback for a new selected set.
func WithOnChange(fn func([]string)) Option {
	return func(s *Selector) { s.onChange = fn }
}

// WithCreation enables or disables creating tags that are not yet known.
func WithCreation(allow bool) Option {
	return func(s *Selector) { s.allowCreation = allow }
}

// NewSelector returns a closed selector over the known tags with selected
// already attached to the note.
func NewSelector(allTags, selected []string, opts ...Option) *Selector {
	s := &Selector{
		allTags:       slices.Clone(allTags),
		selected:      slices.Clone(selected),
		active:        None,
		allowCreation: true,
		notifier:      notify.Discard,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.recompute()
	return s
}

// recompute refreshes the candidate list and clears the highlight.
func (s *Selector) recompute() {
	s.candidates = Candidates(s.allTags, s.selected, s.query)
	s.active = None
}

// =============================================================================
// STATE ACCESSORS
// =============================================================================

// Query returns the text typed so far.
func (s *Selector) Query() string { return s.query }

// Selected returns a copy of the selected tags in order.
func (s *Selector) Selected() []string { return slices.Clone(s.selected) }

// Candidates returns a copy of the current suggestions.
func (s *Selector) Candidates() []string { return slices.Clone(s.candidates) }

// Active returns the highlighted suggestion index, or None.
func (s *Selector) Active() int { return s.active }

// IsOpen reports whether the suggestion panel is shown.
func (s *Selector) IsOpen() bool { return s.open }

// Focused reports whether the input has focus.
func (s *Selector) Focused() bool { return s.focused }

// AllowCreation reports whether unknown tags may be created.
func (s *Selector) AllowCreation() bool { return s.allowCreation }

// CreateOption returns the tag the panel offers to create. It is only
// offered when nothing matches, the query is not blank and creation is
// allowed.
func (s *Selector) CreateOption() (string, bool) {
	tag := strings.TrimSpace(s.query)
	if len(s.candidates) > 0 || tag == "" || !s.allowCreation {
		return "", false
	}
	return tag, true
}

// =============================================================================
// INPUTS FROM THE OWNER
// =============================================================================

// SetQuery replaces the typed text. A changed query while focused reopens
// the panel so suggestions follow typing after a tag was added.
func (s *Selector) SetQuery(q string) {
	if q == s.query {
		return
	}
	s.query = q
	if s.focused {
		s.open = true
	}
	s.recompute()
}

// SetAllTags replaces the known tags.
func (s *Selector) SetAllTags(tags []string) {
	s.allTags = slices.Clone(tags)
	s.recompute()
}

// SetSelected replaces the selected tags without notifying anyone.
func (s *Selector) SetSelected(tags []string) {
	s.selected = slices.Clone(tags)
	s.recompute()
}

// Focus gives the input focus and opens the panel.
func (s *Selector) Focus() {
	s.focused = true
	s.open = true
}

// Blur removes focus and closes the panel.
func (s *Selector) Blur() {
	s.focused = false
	s.open = false
}

// Dismiss closes the panel after an interaction outside the control. Focus
// is kept.
func (s *Selector) Dismiss() {
	s.open = false
}

// =============================================================================
// ACTIONS
// =============================================================================

// AddTag attaches tag. A tag that is already selected only produces a
// warning. Returns true when the set changed.
func (s *Selector) AddTag(tag string) bool {
	if slices.Contains(s.selected, tag) {
		s.notifier.Notify(notify.Warning, notify.TagDuplicate(tag))
		return false
	}

	s.selected = append(slices.Clone(s.selected), tag)
	s.query = ""
	s.open = false
	s.recompute()
	s.emit()
	s.notifier.Notify(notify.Info, notify.TagAdded(tag))
	return true
}

// RemoveTag detaches tag. The owner is notified even when tag was absent.
func (s *Selector) RemoveTag(tag string) {
	s.selected = slices.DeleteFunc(slices.Clone(s.selected), func(t string) bool { return t == tag })
	s.recompute()
	s.emit()
	s.notifier.Notify(notify.Info, notify.TagRemoved(tag))
}

// Pick adds the suggestion at index i. Out-of-range indexes are ignored.
func (s *Selector) Pick(i int) bool {
	if i < 0 || i >= len(s.candidates) {
		return false
	}
	return s.AddTag(s.candidates[i])
}

// PickCreate adds the tag offered by CreateOption.
func (s *Selector) PickCreate() bool {
	tag, ok := s.CreateOption()
	if !ok {
		return false
	}
	return s.AddTag(tag)
}

// HandleKey applies a keyboard action. It returns false when the key had no
// effect, so the owner may use it for something else.
func (s *Selector) HandleKey(k Key) bool {
	switch k {
	case KeyEnter:
		if s.active >= 0 && s.active < len(s.candidates) {
			s.AddTag(s.candidates[s.active])
			return true
		}
		tag := strings.TrimSpace(s.query)
		if tag == "" || !s.allowCreation {
			return false
		}
		if slices.Contains(s.selected, tag) {
			return true
		}
		s.AddTag(tag)
		return true

	case KeyDown:
		if !s.open || len(s.candidates) == 0 {
			return false
		}
		if s.active < len(s.candidates)-1 {
			s.active++
		} else {
			s.active = 0
		}
		return true

	case KeyUp:
		if !s.open || len(s.candidates) == 0 {
			return false
		}
		if s.active > 0 {
			s.active--
		} else {
			s.active = len(s.candidates) - 1
		}
		return true

	case KeyBackspace:
		if s.query != "" || len(s.selected) == 0 {
			return false
		}
		s.RemoveTag(s.selected[len(s.selected)-1])
		return true

	case KeyEscape:
		if !s.open {
			return false
		}
		s.open = false
		return true
	}
	return false
}

func (s *Selector) emit() {
	if s.onChange != nil {
		s.onChange(slices.Clone(s.selected))
	}
}
