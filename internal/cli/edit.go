// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jeranaias/marknote/internal/tags"
)

func newEditCommand(e *env) *cobra.Command {
	var (
		flags   noteFlags
		addTags []string
		rmTags  []string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a note",
		Long: `Change a note. Only the fields named by flags change; --tag replaces
every tag while --add-tag and --remove-tag adjust them.

Without any flag and with a terminal on stdin, the title and tags are
edited interactively.`,
		Example: `  marknote edit 3f2a --add-tag urgent
  marknote edit 3f2a --file notes/plan.md`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := e.resolveID(args[0])
			if err != nil {
				return err
			}
			n := stderrNotifier(cmd.ErrOrStderr())
			svc := e.service(n)

			_, d, err := svc.OpenEdit(id)
			if err != nil {
				return err
			}

			changed := flags.any(cmd) || len(addTags) > 0 || len(rmTags) > 0
			switch {
			case changed:
				if d, err = flags.apply(cmd, e.in, d); err != nil {
					return err
				}
			case e.interactive:
				p := NewPrompter(cmd.OutOrStdout(), svc.AllTags())
				d, err = p.Draft(d, false)
				p.Close()
				if err != nil {
					return err
				}
			default:
				return &UsageError{Err: fmt.Errorf("nothing to change; pass --title, --content, --file or a tag flag")}
			}

			sel := tags.NewSelector(svc.AllTags(), d.Tags, tags.WithNotifier(n))
			for _, t := range TrimTags(rmTags) {
				sel.RemoveTag(t)
			}
			for _, t := range TrimTags(addTags) {
				sel.AddTag(t)
			}
			d.Tags = sel.Selected()

			if _, _, err := svc.Submit(id, d); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", SuccessStyle.Render("Updated"), IDStyle.Render(id))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringArrayVar(&addTags, "add-tag", nil, "add a tag (repeatable)")
	cmd.Flags().StringArrayVar(&rmTags, "remove-tag", nil, "remove a tag (repeatable)")
	return cmd
}
