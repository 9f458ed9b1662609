// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

func newVersionCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print version information",
		Annotations: map[string]string{skipStore: "true"},
		Args:        exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "marknote %s\n", e.build.Version)
			fmt.Fprintf(w, "%s %s\n", RenderLabel("commit"), e.build.GitCommit)
			fmt.Fprintf(w, "%s %s\n", RenderLabel("built"), e.build.BuildDate)
			fmt.Fprintf(w, "%s %s %s/%s\n", RenderLabel("go"), runtime.Version(), runtime.GOOS, runtime.GOARCH)
			return nil
		},
	}
}
