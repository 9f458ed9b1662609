// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jeranaias/marknote/internal/model"
)

// =============================================================================
// FRONT MATTER
// =============================================================================

// FrontMatter is the YAML header of an exported note.
type FrontMatter struct {
	ID    string   `yaml:"id,omitempty"`
	Title string   `yaml:"title"`
	Tags  []string `yaml:"tags,flow"`
}

const fence = "---"

// ErrUnclosedFrontMatter is returned when a file opens a front matter block
// but never closes it.
var ErrUnclosedFrontMatter = errors.New("front matter started but no closing delimiter found")

// =============================================================================
// MARKDOWN EXPORTER
// =============================================================================

// MarkdownExporter writes a note as Markdown with YAML front matter. The
// body is written exactly as stored.
type MarkdownExporter struct{}

// NewMarkdownExporter creates a new Markdown exporter.
func NewMarkdownExporter() *MarkdownExporter { return &MarkdownExporter{} }

// Export implements Exporter.
func (e *MarkdownExporter) Export(n model.Note) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(fence + "\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	tags := n.Tags
	if tags == nil {
		tags = []string{}
	}
	if err := enc.Encode(FrontMatter{ID: n.ID, Title: n.Title, Tags: tags}); err != nil {
		return nil, fmt.Errorf("encode front matter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	buf.WriteString(fence + "\n\n")
	buf.WriteString(n.Content)
	return buf.Bytes(), nil
}

// FileExtension implements Exporter.
func (e *MarkdownExporter) FileExtension() string { return ".md" }

// MimeType implements Exporter.
func (e *MarkdownExporter) MimeType() string { return "text/markdown" }

// ParseMarkdown splits a Markdown file into front matter and body. A file
// without front matter yields an empty FrontMatter and the whole text as
// body.
func ParseMarkdown(data []byte) (FrontMatter, string, error) {
	var fm FrontMatter

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	if !strings.HasPrefix(text, fence+"\n") {
		return fm, text, nil
	}

	rest := text[len(fence)+1:]
	var header, body string
	switch {
	case strings.HasPrefix(rest, fence+"\n"):
		body = rest[len(fence)+1:]
	case rest == fence:
	default:
		end := strings.Index(rest, "\n"+fence+"\n")
		if end < 0 {
			if !strings.HasSuffix(rest, "\n"+fence) {
				return fm, "", ErrUnclosedFrontMatter
			}
			end = len(rest) - len(fence) - 1
			header = rest[:end]
		} else {
			header = rest[:end]
			body = rest[end+len(fence)+2:]
		}
	}

	if err := yaml.Unmarshal([]byte(header), &fm); err != nil {
		return fm, "", fmt.Errorf("failed to parse front matter: %w", err)
	}
	body = strings.TrimPrefix(body, "\n")
	return fm, body, nil
}
