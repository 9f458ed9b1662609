// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jeranaias/marknote/internal/model"
)

// TagCount is one row of the tags command.
type TagCount struct {
	Tag   string `json:"tag"`
	Notes int    `json:"notes"`
}

// CountTags counts the notes carrying each tag, in first-seen order.
func CountTags(notes model.NoteList) []TagCount {
	all := notes.AllTags()
	out := make([]TagCount, 0, len(all))
	for _, t := range all {
		c := 0
		for _, n := range notes {
			if n.HasTag(t) {
				c++
			}
		}
		out = append(out, TagCount{Tag: t, Notes: c})
	}
	return out
}

// Orders accepted by SortTagCounts.
const (
	SortUsage = "usage" // first use, as the tag input offers them
	SortName  = "name"
	SortCount = "count"
)

// SortTagCounts orders counts in place. Names compare with the root locale's
// collation, so "Éte" sorts next to "ete" and case differences come last.
func SortTagCounts(counts []TagCount, order string) error {
	switch order {
	case SortUsage, "":
	case SortName:
		c := collate.New(language.Und)
		sort.SliceStable(counts, func(i, j int) bool {
			return c.CompareString(counts[i].Tag, counts[j].Tag) < 0
		})
	case SortCount:
		sort.SliceStable(counts, func(i, j int) bool {
			return counts[i].Notes > counts[j].Notes
		})
	default:
		return &UsageError{Err: fmt.Errorf("unknown sort order %q; use usage, name or count", order)}
	}
	return nil
}

func newTagsCommand(e *env) *cobra.Command {
	var (
		asJSON bool
		order  string
	)

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List every tag in use",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			counts := CountTags(e.store.All())
			if err := SortTagCounts(counts, order); err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(w, counts)
			}
			if len(counts) == 0 {
				fmt.Fprintln(w, DimStyle.Render("No tags yet."))
				return nil
			}
			for _, c := range counts {
				fmt.Fprintf(w, "%s %s\n", RenderLabel(TagStyle.Render("#"+c.Tag)), DimStyle.Render(fmt.Sprintf("%d", c.Notes)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	cmd.Flags().StringVar(&order, "sort", SortUsage, "order: usage, name or count")
	return cmd
}
