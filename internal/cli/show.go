// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/spf13/cobra"

	"github.com/jeranaias/marknote/internal/markdown"
)

func newShowCommand(e *env) *cobra.Command {
	var (
		raw    bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a note",
		Long: `Show a note with its Markdown rendered for the terminal.

Output that is not a terminal, or --raw, prints the Markdown as stored,
highlighted when colors are enabled.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := e.resolveID(args[0])
			if err != nil {
				return err
			}
			svc := e.service(stderrNotifier(cmd.ErrOrStderr()))
			_, n, err := svc.OpenDetail(id)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(w, n)
			}
			if raw || !IsStdoutTTY() {
				printSource(w, n.Content, ColorsEnabled(), e.cfg.UI.Theme)
				return nil
			}

			width := e.cfg.UI.WordWrap
			if width <= 0 {
				width = GetTerminalWidth() - 4
			}
			r := markdown.NewGlamour(e.cfg.UI.Theme, width)

			fmt.Fprintln(w, TitleStyle.Render(n.Title))
			fmt.Fprintln(w, RenderTags(n.Tags))
			fmt.Fprintln(w, RenderSeparator(width))
			fmt.Fprint(w, markdown.RenderOrRaw(r, n.Content))
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print the Markdown source")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}

// printSource writes Markdown source, syntax highlighted when color is set.
// Highlighting falls back to the plain text on error.
func printSource(w io.Writer, content string, color bool, theme string) {
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	if color {
		style := "monokai"
		if markdown.ResolveStyle(theme) == markdown.StyleLight {
			style = "github"
		}
		var b strings.Builder
		if err := quick.Highlight(&b, content, "markdown", "terminal256", style); err == nil {
			fmt.Fprint(w, b.String())
			return
		}
	}
	fmt.Fprint(w, content)
}
