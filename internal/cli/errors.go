// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Error handling shared by the marknote commands.
//
// Commands always return errors and never print them. Execute prints the
// error once and maps it to an exit code.

package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/jeranaias/marknote/internal/config"
	"github.com/jeranaias/marknote/internal/service"
	"github.com/jeranaias/marknote/internal/store"
)

// =============================================================================
// EXIT CODES
// =============================================================================

const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitGeneralError indicates a general/unknown error
	ExitGeneralError = 1
	// ExitUsageError indicates invalid command usage or arguments
	ExitUsageError = 2
	// ExitConfigError indicates configuration file or settings error
	ExitConfigError = 3
	// ExitStorageError indicates the notes could not be read or written
	ExitStorageError = 4
	// ExitNotFoundError indicates a note was not found
	ExitNotFoundError = 7
	// ExitCancelled indicates the user declined a confirmation
	ExitCancelled = 10
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// CommandError represents a CLI command error with context.
type CommandError struct {
	Command string // Command that failed (e.g., "export", "delete")
	Action  string // Action being performed (e.g., "write", "load")
	Reason  string // Human-readable reason
	Err     error  // Underlying error (if any)
}

func (e *CommandError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s failed: %s: %v", e.Command, e.Action, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s %s failed: %s", e.Command, e.Action, e.Reason)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ConfigError marks a failure to load or save the configuration.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string { return "config: " + e.Err.Error() }

func (e *ConfigError) Unwrap() error { return e.Err }

// StorageError marks a failure of the notes backend.
type StorageError struct {
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("notes at %s: %v", e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// ErrCancelled is returned when the user declines a confirmation prompt.
var ErrCancelled = errors.New("cancelled")

// UsageError wraps a bad flag or argument value.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// =============================================================================
// HELPERS
// =============================================================================

// NewCommandError builds a CommandError.
func NewCommandError(command, action, reason string, err error) *CommandError {
	return &CommandError{Command: command, Action: action, Reason: reason, Err: err}
}

// ExitCodeFor maps err to a process exit code.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var (
		usage   *UsageError
		valid   *service.ValidationError
		cfgErr  *ConfigError
		cfgVal  config.ValidateErrors
		storErr *StorageError
	)
	switch {
	case errors.Is(err, ErrCancelled):
		return ExitCancelled
	case errors.Is(err, store.ErrNoteNotFound):
		return ExitNotFoundError
	case errors.As(err, &usage), errors.As(err, &valid):
		return ExitUsageError
	case errors.As(err, &cfgErr), errors.As(err, &cfgVal):
		return ExitConfigError
	case errors.As(err, &storErr):
		return ExitStorageError
	default:
		return ExitGeneralError
	}
}

// PrintError writes err to w in the error style.
func PrintError(w io.Writer, err error) {
	if errors.Is(err, ErrCancelled) {
		fmt.Fprintln(w, DimStyle.Render("Cancelled."))
		return
	}
	fmt.Fprintf(w, "%s %v\n", ErrorStyle.Render("Error:"), err)
}
