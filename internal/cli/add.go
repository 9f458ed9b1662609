// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jeranaias/marknote/internal/model"
)

// noteFlags are the field flags shared by add and edit.
type noteFlags struct {
	title   string
	content string
	file    string
	tags    []string
}

func (f *noteFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "note title")
	cmd.Flags().StringVar(&f.content, "content", "", "note content (Markdown)")
	cmd.Flags().StringVarP(&f.file, "file", "f", "", `read content from a file, "-" for stdin`)
	cmd.Flags().StringArrayVarP(&f.tags, "tag", "t", nil, "tag (repeatable)")
	cmd.MarkFlagsMutuallyExclusive("content", "file")
}

// any reports whether a field flag was given.
func (f *noteFlags) any(cmd *cobra.Command) bool {
	for _, name := range []string{"title", "content", "file", "tag"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// apply overwrites the fields of d named by the flags that were given.
func (f *noteFlags) apply(cmd *cobra.Command, in io.Reader, d model.Draft) (model.Draft, error) {
	if cmd.Flags().Changed("title") {
		d.Title = f.title
	}
	if cmd.Flags().Changed("content") {
		d.Content = f.content
	}
	if cmd.Flags().Changed("file") {
		content, err := readContent(f.file, in)
		if err != nil {
			return d, err
		}
		d.Content = content
	}
	if cmd.Flags().Changed("tag") {
		d.Tags = TrimTags(f.tags)
	}
	return d, nil
}

// readContent reads a file, or in when path is "-".
func readContent(path string, in io.Reader) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(in)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read content: %w", err)
	}
	return string(data), nil
}

func newAddCommand(e *env) *cobra.Command {
	var flags noteFlags

	cmd := &cobra.Command{
		Use:     "add",
		Aliases: []string{"new"},
		Short:   "Create a note",
		Long: `Create a note from flags, or interactively when no field flag is
given and stdin is a terminal. Tab completes tags in the interactive prompt.`,
		Example: `  marknote add --title "Groceries" --content "- milk" --tag shopping
  cat draft.md | marknote add --title Draft --file -`,
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := e.service(stderrNotifier(cmd.ErrOrStderr()))

			var d model.Draft
			var err error
			if flags.any(cmd) || !e.interactive {
				d, err = flags.apply(cmd, e.in, d)
			} else {
				p := NewPrompter(cmd.OutOrStdout(), svc.AllTags())
				d, err = p.Draft(d, true)
				p.Close()
			}
			if err != nil {
				return err
			}

			_, n, err := svc.Submit("", d)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				SuccessStyle.Render("Created"), IDStyle.Render(n.ID), TitleStyle.Render(n.Title))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
