// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/jeranaias/marknote/internal/model"
)

// =============================================================================
// IMPORT
// =============================================================================

// Imported is a note read from a file. ID is empty when the file did not
// carry one.
type Imported struct {
	Path  string
	ID    string
	Draft model.Draft
}

// Skipped is a matched file that could not be read as notes.
type Skipped struct {
	Path string
	Err  error
}

// ImportGlob reads every file matching pattern. Patterns use doublestar
// syntax, so "notes/**/*.md" descends into subdirectories. Results are
// ordered by path. Files that fail to parse are returned in skipped and the
// rest are still read; err is only set for a malformed pattern.
func ImportGlob(pattern string) (items []Imported, skipped []Skipped, err error) {
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
	}
	sort.Strings(matches)

	for _, path := range matches {
		got, err := ImportFile(path)
		if err != nil {
			skipped = append(skipped, Skipped{Path: path, Err: err})
			continue
		}
		items = append(items, got...)
	}
	return items, skipped, nil
}

// ImportFile reads one file. JSON files may hold a snapshot or a single
// note; anything else is read as Markdown with optional front matter.
func ImportFile(path string) ([]Imported, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return importJSON(path, data)
	}

	fm, body, err := ParseMarkdown(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	title := fm.Title
	if strings.TrimSpace(title) == "" {
		title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return []Imported{{
		Path:  path,
		ID:    fm.ID,
		Draft: model.Draft{Title: title, Content: body, Tags: fm.Tags},
	}}, nil
}

func importJSON(path string, data []byte) ([]Imported, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	var notes model.NoteList
	if _, ok := probe["notes"]; ok {
		var snap model.Snapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		notes = snap.Notes
	} else {
		var n model.Note
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		notes = model.NoteList{n}
	}

	out := make([]Imported, 0, len(notes))
	for _, n := range notes {
		out = append(out, Imported{Path: path, ID: n.ID, Draft: n.Draft()})
	}
	return out, nil
}
