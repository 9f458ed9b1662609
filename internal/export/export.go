// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jeranaias/marknote/internal/model"
	"github.com/jeranaias/marknote/internal/util"
)

// =============================================================================
// EXPORT INTERFACE
// =============================================================================

// Exporter converts a note to a file format.
type Exporter interface {
	// Export returns the file content for n.
	Export(n model.Note) ([]byte, error)

	// FileExtension returns the file extension, including the dot.
	FileExtension() string

	// MimeType returns the MIME type of the format.
	MimeType() string
}

// Options configures export behaviour.
type Options struct {
	// OutputDir is the directory files are written to.
	OutputDir string

	// Overwrite replaces existing files instead of failing.
	Overwrite bool
}

// DefaultOptions writes to the current directory without overwriting.
func DefaultOptions() *Options {
	return &Options{OutputDir: "."}
}

// ErrExists is returned when a target file exists and Overwrite is off.
var ErrExists = errors.New("file already exists")

// NewExporter returns the exporter for a format name: markdown (md), html
// (htm) or json.
func NewExporter(format string) (Exporter, error) {
	switch format {
	case "markdown", "md", "":
		return NewMarkdownExporter(), nil
	case "html", "htm":
		return NewHTMLExporter(), nil
	case "json":
		return NewJSONExporter(), nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

// =============================================================================
// EXPORT FUNCTIONS
// =============================================================================

// ExportAll writes one file per note and returns the paths written.
func ExportAll(notes model.NoteList, exporter Exporter, opts *Options) ([]string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	paths := make([]string, 0, len(notes))
	for _, n := range notes {
		content, err := exporter.Export(n)
		if err != nil {
			return paths, fmt.Errorf("export %s: %w", n.ID, err)
		}
		path := filepath.Join(opts.OutputDir, FileName(n, exporter.FileExtension()))
		if err := writeFile(path, content, opts.Overwrite); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// ExportSnapshot writes every note into a single JSON file named
// notes.json and returns its path.
func ExportSnapshot(notes model.NoteList, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if notes == nil {
		notes = model.NoteList{}
	}
	data, err := json.MarshalIndent(model.Snapshot{Notes: notes.Clone().Normalize()}, "", "  ")
	if err != nil {
		return "", err
	}
	path := filepath.Join(opts.OutputDir, "notes.json")
	if err := writeFile(path, data, opts.Overwrite); err != nil {
		return "", err
	}
	return path, nil
}

func writeFile(path string, data []byte, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrExists, path)
		}
	}
	if err := util.AtomicWriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// FileName builds a stable file name: the sanitized title followed by the
// first eight characters of the id.
func FileName(n model.Note, ext string) string {
	short := n.ID
	if r := []rune(short); len(r) > 8 {
		short = string(r[:8])
	}
	name := sanitizeFilename(n.Title)
	if short != "" {
		name += "-" + short
	}
	return name + ext
}

// sanitizeFilename removes or replaces characters that are invalid in filenames.
func sanitizeFilename(s string) string {
	s = util.TruncateRunes(s, 50)

	replacer := map[rune]rune{
		'/':  '-',
		'\\': '-',
		':':  '-',
		'*':  '-',
		'?':  '-',
		'"':  '-',
		'<':  '-',
		'>':  '-',
		'|':  '-',
		' ':  '_',
		'\t': '_',
		'\n': '_',
		'\r': '_',
	}

	result := []rune{}
	for _, r := range s {
		if replacement, found := replacer[r]; found {
			result = append(result, replacement)
		} else if r < 32 || r == 127 {
			result = append(result, '-')
		} else {
			result = append(result, r)
		}
	}

	if len(result) == 0 {
		return "note"
	}
	return string(result)
}
