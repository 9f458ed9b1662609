// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes notes out of marknote and reads them back in.
//
// # Key Types
//
//   - Exporter: converts one note to a file format
//   - Options: output directory and overwrite behaviour
//   - Imported: a note parsed from a file, ready to be submitted
//
// # Supported Formats
//
//   - Markdown: the note body with YAML front matter (id, title, tags)
//   - HTML: a standalone page rendered with goldmark
//   - JSON: the whole snapshot, {"notes": [...]}
//
// Markdown and JSON exports can be imported again; front matter ids let an
// import update the notes they came from.
//
// # Usage
//
//	paths, err := export.ExportAll(notes, export.NewMarkdownExporter(), export.DefaultOptions())
//	items, skipped, err := export.ImportGlob("backup/**/*.md")
package export
