// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import "fmt"

// ErrNoteNotFound is returned when no note has the requested id.
// Use errors.Is(err, ErrNoteNotFound) to check for this error.
var ErrNoteNotFound = &NotFoundError{}

// NotFoundError reports the id that could not be found.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return "note not found"
	}
	return fmt.Sprintf("note not found: %s", e.ID)
}

// Is matches any NotFoundError, so errors.Is(err, ErrNoteNotFound) works
// regardless of the id.
func (e *NotFoundError) Is(target error) bool {
	_, ok := target.(*NotFoundError)
	return ok
}
