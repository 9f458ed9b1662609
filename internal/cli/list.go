// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jeranaias/marknote/internal/model"
	"github.com/jeranaias/marknote/internal/util"
)

// shortIDLen is how much of an id the listing shows.
const shortIDLen = 8

func newListCommand(e *env) *cobra.Command {
	var (
		search  string
		tagList []string
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List notes",
		Long: `List notes in creation order.

--search keeps notes whose title contains the text, ignoring case.
--tag keeps notes carrying at least one of the given tags.`,
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := e.service(stderrNotifier(cmd.ErrOrStderr()))
			notes := svc.List(search, tagList)

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), notes)
			}
			printNotes(cmd.OutOrStdout(), notes, svc.Store().Len())
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "filter by title text")
	cmd.Flags().StringArrayVarP(&tagList, "tag", "t", nil, "filter by tag (repeatable)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}

func printNotes(w io.Writer, notes model.NoteList, total int) {
	if len(notes) == 0 {
		fmt.Fprintln(w, DimStyle.Render("No notes match."))
	}
	width := GetTerminalWidth()
	for _, n := range notes {
		id := n.ID
		if len(id) > shortIDLen {
			id = id[:shortIDLen]
		}
		title := util.TruncateWidth(n.Title, width/2)
		fmt.Fprintf(w, "%s  %s", IDStyle.Render(id), TitleStyle.Render(title))
		if len(n.Tags) > 0 {
			fmt.Fprintf(w, "  %s", RenderTags(n.Tags))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, DimStyle.Render(fmt.Sprintf("%d notes shown (total %d)", len(notes), total)))
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
