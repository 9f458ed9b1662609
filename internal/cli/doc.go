// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the marknote command line.
//
// Running marknote without a command opens the interactive browser. The
// commands list, show, add, edit, delete, tags, export and import work on the
// same notes from scripts; config and version need no notes at all.
//
// Every command shares one setup: the configuration is loaded, flags and
// MARKNOTE_* variables override it, the zap logger is built and the notes are
// opened from the configured storage backend.
package cli
