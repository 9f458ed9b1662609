// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package tags

import (
	"slices"
	"strings"
)

// Candidates returns the suggestions for query: every tag in allTags that is
// not already selected and, when query is not blank, whose lower-cased text
// contains the lower-cased query. Order follows allTags.
//
// Blankness is judged on the trimmed query, matching uses it as typed, so
// "go " does not match "golang".
func Candidates(allTags, selected []string, query string) []string {
	out := make([]string, 0, len(allTags))
	blank := strings.TrimSpace(query) == ""
	needle := strings.ToLower(query)

	for _, tag := range allTags {
		if slices.Contains(selected, tag) {
			continue
		}
		if !blank && !strings.Contains(strings.ToLower(tag), needle) {
			continue
		}
		out = append(out, tag)
	}
	return out
}
