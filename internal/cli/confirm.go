// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// confirm.go - Confirmation for destructive commands.
//
//  1. With --yes, proceed without prompting.
//  2. Without a terminal on stdin, require --yes.
//  3. Otherwise ask "[y/N]" and proceed only on y or yes.

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Confirmer asks the user to approve an action.
type Confirmer struct {
	In  io.Reader
	Out io.Writer
	// Interactive reports whether In is a terminal.
	Interactive bool
}

// Confirm returns nil when the action may proceed and ErrCancelled when the
// user said no. yes skips the prompt.
func (c Confirmer) Confirm(yes bool, action string) error {
	if yes {
		return nil
	}
	if !c.Interactive {
		return &UsageError{Err: errors.New("confirmation required but stdin is not a terminal; use --yes")}
	}

	fmt.Fprintf(c.Out, "Are you sure you want to %s? [y/N]: ", action)

	reader := bufio.NewReader(c.In)
	input, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}

	response := strings.ToLower(strings.TrimSpace(input))
	if response == "y" || response == "yes" {
		return nil
	}
	return ErrCancelled
}
