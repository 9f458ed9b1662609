// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeranaias/marknote/internal/export"
	"github.com/jeranaias/marknote/internal/service"
)

// ImportSummary counts the outcome of an import.
type ImportSummary struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

// importNotes saves items through svc. An item whose id names an existing
// note replaces it; anything else becomes a new note. Items failing
// validation are skipped and reported to warn.
func importNotes(svc *service.Service, items []export.Imported, warn func(path string, err error)) (ImportSummary, error) {
	var sum ImportSummary
	for _, it := range items {
		id := ""
		if it.ID != "" {
			if _, err := svc.Store().Get(it.ID); err == nil {
				id = it.ID
			}
		}

		_, _, err := svc.Submit(id, it.Draft)
		var ve *service.ValidationError
		switch {
		case errors.As(err, &ve):
			warn(it.Path, err)
			sum.Skipped++
		case err != nil:
			return sum, NewCommandError("import", "save", it.Path, err)
		case id != "":
			sum.Updated++
		default:
			sum.Created++
		}
	}
	return sum, nil
}

func newImportCommand(e *env) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "import <pattern>",
		Short: "Read notes from files",
		Long: `Read notes from files matching a glob pattern. "**" matches any number
of directories. Markdown files may carry front matter with a title, tags and
an id; JSON files may hold one note or a snapshot.

A note whose id already exists is replaced; every other note is created.
Files that cannot be parsed and notes without a title or content are
skipped with a warning.`,
		Example: `  marknote import 'backup/*.md'
  marknote import 'notes/**/*.md'`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, unreadable, err := export.ImportGlob(args[0])
			if err != nil {
				return &UsageError{Err: err}
			}
			if len(items) == 0 && len(unreadable) == 0 {
				return &UsageError{Err: fmt.Errorf("no files match %q", args[0])}
			}

			errOut := cmd.ErrOrStderr()
			warn := func(path string, err error) {
				fmt.Fprintf(errOut, "%s %s: %v\n", WarningStyle.Render("Skipped"), path, err)
				e.log.Warn("import skipped", zap.String("path", path), zap.Error(err))
			}
			for _, sk := range unreadable {
				warn(sk.Path, sk.Err)
			}

			svc := e.service(stderrNotifier(errOut))
			sum, err := importNotes(svc, items, warn)
			if err != nil {
				return err
			}
			sum.Skipped += len(unreadable)

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), sum)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d created, %d updated, %d skipped\n",
				SuccessStyle.Render("Imported"), sum.Created, sum.Updated, sum.Skipped)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output the summary as JSON")
	return cmd
}
