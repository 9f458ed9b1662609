// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package notify carries user-facing notifications from the core to whatever
// displays them (toasts in the TUI, stderr in the CLI, the log file).
package notify

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Severity classifies a notification.
type Severity int

const (
	// Info confirms a small change (tag added or removed).
	Info Severity = iota
	// Success confirms a completed note operation.
	Success
	// Warning reports a rejected but harmless action.
	Warning
	// Error reports a failed action, such as a validation failure.
	Error
)

// String returns the lower-case name of the severity.
func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Success:
		return "success"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Notifier receives (severity, message) pairs.
type Notifier interface {
	Notify(sev Severity, msg string)
}

// Func adapts a plain function to Notifier.
type Func func(sev Severity, msg string)

// Notify implements Notifier.
func (f Func) Notify(sev Severity, msg string) { f(sev, msg) }

// Discard drops every notification.
var Discard Notifier = Func(func(Severity, string) {})

// =============================================================================
// MESSAGE CATALOGUE
// =============================================================================

// TagDuplicate is the warning shown when a tag is already selected.
func TagDuplicate(tag string) string { return fmt.Sprintf("%q is already selected", tag) }

// TagAdded confirms a tag was attached.
func TagAdded(tag string) string { return fmt.Sprintf("%q added", tag) }

// TagRemoved confirms a tag was detached.
func TagRemoved(tag string) string { return fmt.Sprintf("%q removed", tag) }

const (
	NoteCreated  = "Note created"
	NoteUpdated  = "Note updated"
	NoteDeleted  = "Note deleted"
	TitleMissing = "Title cannot be empty"
	BodyMissing  = "Content cannot be empty"
	NoteMissing  = "Note not found"
)

// SaveFailed reports a persistence error.
func SaveFailed(err error) string { return fmt.Sprintf("Could not save notes: %v", err) }

// =============================================================================
// NOTIFIERS
// =============================================================================

// Multi fans a notification out to several notifiers in order.
type Multi []Notifier

// Notify implements Notifier.
func (m Multi) Notify(sev Severity, msg string) {
	for _, n := range m {
		if n != nil {
			n.Notify(sev, msg)
		}
	}
}

// Logger writes notifications to a zap logger. Errors and warnings keep their
// level, everything else is logged at info.
type Logger struct {
	Log *zap.Logger
}

// NewLogger returns a Notifier backed by log.
func NewLogger(log *zap.Logger) *Logger {
	if log == nil {
		log = zap.NewNop()
	}
	return &Logger{Log: log}
}

// Notify implements Notifier.
func (l *Logger) Notify(sev Severity, msg string) {
	fields := []zap.Field{zap.Stringer("severity", sev)}
	switch sev {
	case Error:
		l.Log.Error(msg, fields...)
	case Warning:
		l.Log.Warn(msg, fields...)
	default:
		l.Log.Info(msg, fields...)
	}
}

// Entry is one recorded notification.
type Entry struct {
	Severity Severity
	Message  string
}

// Recorder keeps every notification it receives. Safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// Notify implements Notifier.
func (r *Recorder) Notify(sev Severity, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Severity: sev, Message: msg})
}

// Entries returns a copy of the recorded notifications.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Last returns the most recent notification.
func (r *Recorder) Last() (Entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.entries) == 0 {
		return Entry{}, false
	}
	return r.entries[len(r.entries)-1], true
}

// Reset forgets every recorded notification.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
}
