// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeranaias/marknote/internal/config"
)

func newConfigCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "config",
		Short:       "Show or change settings",
		Annotations: map[string]string{skipStore: "true"},
		Args:        exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), e.cfg.String())
			return nil
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:         "path",
			Short:       "Print the config file path",
			Annotations: map[string]string{skipStore: "true"},
			Args:        exactArgs(0),
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := config.ConfigPathTOML()
				if err != nil {
					return &ConfigError{Err: err}
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			},
		},
		&cobra.Command{
			Use:         "keys",
			Short:       "List the settings that can be changed",
			Annotations: map[string]string{skipStore: "true"},
			Args:        exactArgs(0),
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(config.GetAllKeys(), "\n"))
				return nil
			},
		},
		&cobra.Command{
			Use:         "get <key>",
			Short:       "Print one setting",
			Annotations: map[string]string{skipStore: "true"},
			Args:        exactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := e.cfg.Get(args[0])
				if err != nil {
					return &UsageError{Err: err}
				}
				if list, ok := v.([]string); ok {
					v = strings.Join(list, ",")
				}
				fmt.Fprintln(cmd.OutOrStdout(), v)
				return nil
			},
		},
		&cobra.Command{
			Use:         "set <key> <value>",
			Short:       "Change one setting",
			Long:        "Change one setting in the config file. Lists are comma separated.",
			Example:     "  marknote config set ui.theme light\n  marknote config set ui.suggested_tags work,home",
			Annotations: map[string]string{skipStore: "true"},
			Args:        exactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				// Start from the file, not from e.cfg, so flag and
				// environment overrides are not persisted.
				cfg, err := loadFileConfig()
				if err != nil {
					return &ConfigError{Err: err}
				}
				if err := cfg.Set(args[0], args[1]); err != nil {
					return &UsageError{Err: err}
				}
				if err := cfg.Validate(); err != nil {
					return &ConfigError{Err: err}
				}
				if err := config.Save(cfg); err != nil {
					return &ConfigError{Err: err}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s\n", SuccessStyle.Render("Set"), args[0], args[1])
				return nil
			},
		},
	)
	return cmd
}

// loadFileConfig reads the TOML config file without environment overrides,
// or the defaults when there is none.
func loadFileConfig() (*config.Config, error) {
	path, err := config.ConfigPathTOML()
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		return config.Default(), nil
	}
	return config.LoadFromPath(path)
}
