// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/jeranaias/marknote/internal/model"
)

// =============================================================================
// HTML EXPORTER
// =============================================================================

// HTMLExporter writes a note as a standalone HTML page. The body is
// rendered with goldmark (GitHub-flavoured tables and strikethrough). Raw
// HTML in notes is not copied to the page; goldmark replaces it with a
// "raw HTML omitted" comment.
type HTMLExporter struct {
	md goldmark.Markdown
}

// NewHTMLExporter creates a new HTML exporter.
func NewHTMLExporter() *HTMLExporter {
	return &HTMLExporter{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Export implements Exporter.
func (e *HTMLExporter) Export(n model.Note) ([]byte, error) {
	var body bytes.Buffer
	if err := e.md.Convert([]byte(n.Content), &body); err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n")
	sb.WriteString("<html lang=\"en\">\n")
	sb.WriteString("<head>\n")
	sb.WriteString("    <meta charset=\"UTF-8\">\n")
	sb.WriteString("    <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	sb.WriteString(fmt.Sprintf("    <title>%s</title>\n", html.EscapeString(n.Title)))
	sb.WriteString("    <meta name=\"generator\" content=\"marknote\">\n")
	sb.WriteString(css)
	sb.WriteString("</head>\n")
	sb.WriteString("<body>\n")
	sb.WriteString("    <article>\n")
	sb.WriteString(fmt.Sprintf("        <h1 class=\"title\">%s</h1>\n", html.EscapeString(n.Title)))

	if len(n.Tags) > 0 {
		sb.WriteString("        <ul class=\"tags\">\n")
		for _, t := range n.Tags {
			sb.WriteString(fmt.Sprintf("            <li>%s</li>\n", html.EscapeString(t)))
		}
		sb.WriteString("        </ul>\n")
	}

	sb.WriteString("        <div class=\"content\">\n")
	sb.Write(body.Bytes())
	sb.WriteString("        </div>\n")
	sb.WriteString("    </article>\n")
	sb.WriteString("</body>\n")
	sb.WriteString("</html>\n")

	return []byte(sb.String()), nil
}

// FileExtension implements Exporter.
func (e *HTMLExporter) FileExtension() string { return ".html" }

// MimeType implements Exporter.
func (e *HTMLExporter) MimeType() string { return "text/html" }

const css = `    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif; background: #f8fafc; color: #1e293b; margin: 0; }
        article { max-width: 760px; margin: 2rem auto; background: #fff; padding: 2rem; border-radius: 8px; box-shadow: 0 1px 3px rgba(0,0,0,.1); }
        .title { margin-top: 0; }
        .tags { list-style: none; padding: 0; display: flex; gap: .5rem; flex-wrap: wrap; }
        .tags li { background: #dbeafe; color: #1e40af; padding: .15rem .5rem; border-radius: 4px; font-size: .875rem; }
        pre { background: #0f172a; color: #e2e8f0; padding: 1rem; border-radius: 6px; overflow-x: auto; }
        code { font-family: "JetBrains Mono", Consolas, monospace; }
        blockquote { border-left: 4px solid #cbd5e1; margin-left: 0; padding-left: 1rem; color: #475569; }
        table { border-collapse: collapse; }
        th, td { border: 1px solid #cbd5e1; padding: .35rem .75rem; }
    </style>
`
