// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDeleteCommand(e *env) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a note",
		Args:    exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := e.resolveID(args[0])
			if err != nil {
				return err
			}
			n, err := e.store.Get(id)
			if err != nil {
				return err
			}

			c := Confirmer{In: e.in, Out: cmd.OutOrStdout(), Interactive: e.interactive}
			if err := c.Confirm(yes, fmt.Sprintf("delete %q", n.Title)); err != nil {
				return err
			}

			svc := e.service(stderrNotifier(cmd.ErrOrStderr()))
			if _, err := svc.Delete(id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", SuccessStyle.Render("Deleted"), IDStyle.Render(id))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "delete without asking")
	return cmd
}
