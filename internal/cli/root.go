// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeranaias/marknote/internal/config"
	"github.com/jeranaias/marknote/internal/logging"
	"github.com/jeranaias/marknote/internal/notify"
	"github.com/jeranaias/marknote/internal/service"
	"github.com/jeranaias/marknote/internal/storage"
	"github.com/jeranaias/marknote/internal/store"
)

// BuildInfo is set by main from linker flags.
type BuildInfo struct {
	Version   string
	GitCommit string
	BuildDate string
}

// annotation keys on commands
const skipStore = "marknote/skip-store"

// =============================================================================
// ENVIRONMENT
// =============================================================================

// env is what PersistentPreRunE prepares for every command.
type env struct {
	build BuildInfo

	verbose bool
	backend string
	path    string

	cfg       *config.Config
	log       *zap.Logger
	kv        storage.KV
	storePath string
	store     *store.Store

	// interactive reports whether stdin is a terminal. Tests override it.
	interactive bool
	in          io.Reader
}

// setup loads the configuration, builds the logger and, unless the command
// opted out, opens the notes.
func (e *env) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return &ConfigError{Err: err}
	}
	if e.backend != "" {
		cfg.Storage.Backend = e.backend
	}
	if e.path != "" {
		cfg.Storage.Path = e.path
	}
	if e.verbose {
		cfg.Log.Level = "debug"
	}
	e.cfg = cfg

	logPath := ""
	if cfg.Log.Path != "" {
		if logPath, err = config.ExpandPath(cfg.Log.Path); err != nil {
			return &ConfigError{Err: err}
		}
	}
	e.log, err = logging.New(logging.Options{Path: logPath, Level: cfg.Log.Level})
	if err != nil {
		return &ConfigError{Err: err}
	}
	e.log = e.log.With(zap.String("command", cmd.CommandPath()))

	if cmd.Annotations[skipStore] != "" {
		return nil
	}
	return e.openStore()
}

// openStore opens the configured backend and loads the snapshot.
func (e *env) openStore() error {
	path, err := config.ExpandPath(e.cfg.Storage.Path)
	if err != nil {
		return &ConfigError{Err: err}
	}
	e.storePath = path

	kv, err := storage.Open(e.cfg.Storage.Backend, path)
	if err != nil {
		return &StorageError{Path: path, Err: err}
	}
	st, err := store.Open(storage.NewSnapshot(kv, e.cfg.Storage.Key), store.WithLogger(e.log))
	if err != nil {
		kv.Close()
		return &StorageError{Path: path, Err: err}
	}

	e.kv = kv
	e.store = st
	e.log.Debug("notes loaded",
		zap.String("backend", e.cfg.Storage.Backend),
		zap.String("path", path),
		zap.Int("notes", st.Len()))
	return nil
}

// service returns a Service reporting to n and the log.
func (e *env) service(n notify.Notifier) *service.Service {
	return service.New(e.store, notify.Multi{n, notify.NewLogger(e.log)}, e.log)
}

// teardown releases what setup acquired. Safe to call more than once.
func (e *env) teardown() {
	if e.kv != nil {
		if err := e.kv.Close(); err != nil && e.log != nil {
			e.log.Warn("close storage", zap.Error(err))
		}
		e.kv = nil
	}
	if e.log != nil {
		_ = e.log.Sync()
	}
}

// stderrNotifier prints warnings for the one-shot commands. Errors are
// returned to Execute and successes are reported by each command.
func stderrNotifier(w io.Writer) notify.Notifier {
	return notify.Func(func(sev notify.Severity, msg string) {
		if sev == notify.Warning {
			fmt.Fprintln(w, WarningStyle.Render("Warning: "+msg))
		}
	})
}

// =============================================================================
// ROOT COMMAND
// =============================================================================

// exactArgs is cobra.ExactArgs reporting a usage error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return &UsageError{Err: err}
		}
		return nil
	}
}

// newEnv returns an env reading from the process's stdin.
func newEnv(build BuildInfo) *env {
	return &env{build: build, interactive: IsTTY(), in: os.Stdin}
}

func newRootCommand(e *env) *cobra.Command {
	root := &cobra.Command{
		Use:   "marknote",
		Short: "Markdown notes with tags, in your terminal",
		Long: `marknote keeps Markdown notes with tags.

Run without a command to open the interactive notes browser, or use the
commands below from scripts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(e)
		},
	}

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})
	root.PersistentFlags().BoolVarP(&e.verbose, "verbose", "v", false, "log at debug level")
	root.PersistentFlags().StringVar(&e.backend, "backend", "", "storage backend: file, sqlite or memory")
	root.PersistentFlags().StringVar(&e.path, "store", "", "path of the notes file or database")

	root.AddCommand(
		newListCommand(e),
		newShowCommand(e),
		newAddCommand(e),
		newEditCommand(e),
		newDeleteCommand(e),
		newTagsCommand(e),
		newExportCommand(e),
		newImportCommand(e),
		newConfigCommand(e),
		newVersionCommand(e),
	)
	return root
}

// Execute runs the command line and returns the process exit code.
func Execute(build BuildInfo) int {
	e := newEnv(build)
	defer e.teardown()

	root := newRootCommand(e)
	if err := root.Execute(); err != nil {
		PrintError(root.ErrOrStderr(), err)
		return ExitCodeFor(err)
	}
	return ExitSuccess
}

// resolveID expands a unique id prefix, as printed by list, to the full id.
// An exact match always wins.
func (e *env) resolveID(arg string) (string, error) {
	if _, err := e.store.Get(arg); err == nil {
		return arg, nil
	}

	var match string
	for _, n := range e.store.All() {
		if !strings.HasPrefix(n.ID, arg) {
			continue
		}
		if match != "" {
			return "", &UsageError{Err: fmt.Errorf("id prefix %q matches more than one note", arg)}
		}
		match = n.ID
	}
	if match == "" || arg == "" {
		return "", &store.NotFoundError{ID: arg}
	}
	return match, nil
}
