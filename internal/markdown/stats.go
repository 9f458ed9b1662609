// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package markdown

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Stats summarises editor content.
type Stats struct {
	Lines int
	Words int
	Chars int
}

// ComputeStats counts lines (line breaks plus one, so empty content is one
// line), whitespace-separated words and characters.
func ComputeStats(content string) Stats {
	return Stats{
		Lines: strings.Count(content, "\n") + 1,
		Words: len(strings.Fields(content)),
		Chars: utf8.RuneCountInString(content),
	}
}

// String renders the status line shown under the editor.
func (s Stats) String() string {
	return fmt.Sprintf("%d lines · %d words", s.Lines, s.Words)
}
