// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeranaias/marknote/internal/export"
	"github.com/jeranaias/marknote/internal/model"
)

func newExportCommand(e *env) *cobra.Command {
	var (
		format    string
		snapshot  bool
		overwrite bool
		tagList   []string
	)

	cmd := &cobra.Command{
		Use:   "export <dir>",
		Short: "Write notes to files",
		Long: `Write one file per note into dir as Markdown with front matter, HTML or
JSON. --snapshot writes every note into a single notes.json instead.`,
		Example: `  marknote export backup/
  marknote export site/ --format html --tag public`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := &export.Options{OutputDir: args[0], Overwrite: overwrite}
			notes := e.service(stderrNotifier(cmd.ErrOrStderr())).List("", tagList)

			paths, err := exportNotes(notes, format, snapshot, opts)
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			if err != nil {
				if errors.Is(err, export.ErrExists) {
					err = &UsageError{Err: fmt.Errorf("%w (use --overwrite)", err)}
				}
				return NewCommandError("export", "write", "not every note was written", err)
			}

			e.log.Info("exported notes", zap.Int("files", len(paths)), zap.String("dir", args[0]))
			fmt.Fprintln(cmd.ErrOrStderr(), SuccessStyle.Render(fmt.Sprintf("Exported %d notes", len(notes))))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "markdown", "markdown, html or json")
	cmd.Flags().BoolVar(&snapshot, "snapshot", false, "write a single notes.json")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "replace existing files")
	cmd.Flags().StringArrayVarP(&tagList, "tag", "t", nil, "only notes with this tag (repeatable)")
	return cmd
}

func exportNotes(notes model.NoteList, format string, snapshot bool, opts *export.Options) ([]string, error) {
	if snapshot {
		path, err := export.ExportSnapshot(notes, opts)
		if err != nil {
			return nil, err
		}
		return []string{path}, nil
	}

	exporter, err := export.NewExporter(format)
	if err != nil {
		return nil, &UsageError{Err: err}
	}
	return export.ExportAll(notes, exporter, opts)
}
