// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/marknote/internal/model"
)

var note = model.Note{
	ID:      "0f8fad5b-d9cb-469f-a165-70867728950e",
	Title:   "Weekly plan",
	Content: "# Monday\n\n- call Ana\n\n---\n\n| a | b |\n| - | - |\n| 1 | 2 |\n",
	Tags:    []string{"work", "planning"},
}

// =============================================================================
// MARKDOWN
// =============================================================================

func TestMarkdown_RoundTrip(t *testing.T) {
	data, err := NewMarkdownExporter().Export(note)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "---\nid: 0f8fad5b"))
	assert.Contains(t, string(data), "tags: [work, planning]")

	fm, body, err := ParseMarkdown(data)
	require.NoError(t, err)
	assert.Equal(t, note.ID, fm.ID)
	assert.Equal(t, note.Title, fm.Title)
	assert.Equal(t, note.Tags, fm.Tags)
	assert.Equal(t, note.Content, body, "body survives a horizontal rule")
}

func TestMarkdown_LeadingNewlineKept(t *testing.T) {
	n := model.Note{ID: "1", Title: "t", Content: "\nindented start"}
	data, err := NewMarkdownExporter().Export(n)
	require.NoError(t, err)

	_, body, err := ParseMarkdown(data)
	require.NoError(t, err)
	assert.Equal(t, n.Content, body)
}

func TestParseMarkdown(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		title   string
		body    string
		wantErr bool
	}{
		{"no front matter", "just text\n", "", "just text\n", false},
		{"crlf", "---\r\ntitle: Hi\r\n---\r\n\r\nbody", "Hi", "body", false},
		{"empty header", "---\n---\nbody", "", "body", false},
		{"header only", "---\ntitle: Only\n---", "Only", "", false},
		{"unclosed", "---\ntitle: x\nbody", "", "", true},
		{"bad yaml", "---\ntitle: [\n---\n", "", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fm, body, err := ParseMarkdown([]byte(tc.input))
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.title, fm.Title)
			assert.Equal(t, tc.body, body)
		})
	}
}

// =============================================================================
// OTHER FORMATS
// =============================================================================

func TestHTMLExporter(t *testing.T) {
	n := note
	n.Title = "Plan <draft>"
	data, err := NewHTMLExporter().Export(n)
	require.NoError(t, err)

	page := string(data)
	assert.Contains(t, page, "<title>Plan &lt;draft&gt;</title>")
	assert.Contains(t, page, "<h1>Monday</h1>")
	assert.Contains(t, page, "<table>")
	assert.Contains(t, page, "<li>planning</li>")
}

func TestHTMLExporter_RawHTMLOmitted(t *testing.T) {
	n := note
	n.Content = "before\n\n<script>alert(1)</script>\n\nafter\n"
	data, err := NewHTMLExporter().Export(n)
	require.NoError(t, err)

	page := string(data)
	assert.NotContains(t, page, "<script>")
	assert.Contains(t, page, "raw HTML omitted")
	assert.Contains(t, page, "<p>after</p>")
}

func TestFileName(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want string
	}{
		{"long id cut to eight", "abcdef12-3456", "Plan-abcdef12.md"},
		{"short id kept", "abc", "Plan-abc.md"},
		{"no id", "", "Plan.md"},
		{"multi-byte id cut by rune", "äöüßéèêëï", "Plan-äöüßéèêë.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FileName(model.Note{ID: tt.id, Title: "Plan"}, ".md")
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestNewExporter(t *testing.T) {
	for format, ext := range map[string]string{"md": ".md", "markdown": ".md", "html": ".html", "json": ".json"} {
		e, err := NewExporter(format)
		require.NoError(t, err)
		assert.Equal(t, ext, e.FileExtension())
		assert.NotEmpty(t, e.MimeType())
	}
	_, err := NewExporter("pdf")
	assert.Error(t, err)
}

// =============================================================================
// FILES
// =============================================================================

func TestExportAll_AndImportGlob(t *testing.T) {
	dir := t.TempDir()
	notes := model.NoteList{
		note,
		{ID: "abcdef12-3456", Title: "a/b: c?", Content: "x", Tags: []string{}},
	}

	paths, err := ExportAll(notes, NewMarkdownExporter(), &Options{OutputDir: filepath.Join(dir, "out")})
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, "a-b-_c--abcdef12.md", filepath.Base(paths[1]))

	_, err = ExportAll(notes, NewMarkdownExporter(), &Options{OutputDir: filepath.Join(dir, "out")})
	assert.ErrorIs(t, err, ErrExists)

	items, skipped, err := ImportGlob(filepath.Join(dir, "**", "*.md"))
	require.NoError(t, err)
	assert.Empty(t, skipped)
	require.Len(t, items, 2)

	byID := map[string]Imported{}
	for _, it := range items {
		byID[it.ID] = it
	}
	assert.Equal(t, note.Draft(), byID[note.ID].Draft)
	assert.Equal(t, "a/b: c?", byID["abcdef12-3456"].Draft.Title)
}

func TestImportGlob_SkipsUnreadableFiles(t *testing.T) {
	dir := t.TempDir()
	write := func(name, data string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(data), 0600))
	}
	write("a.md", "---\ntitle: Good\ntags: [x]\n---\nbody\n")
	write("b.md", "---\ntitle: [unclosed\n---\nbody\n")
	write("c.json", "{not json")

	items, skipped, err := ImportGlob(filepath.Join(dir, "*"))
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "Good", items[0].Draft.Title)
	assert.Equal(t, []string{"x"}, items[0].Draft.Tags)

	require.Len(t, skipped, 2)
	assert.Equal(t, filepath.Join(dir, "b.md"), skipped[0].Path)
	assert.Error(t, skipped[0].Err)
	assert.Equal(t, filepath.Join(dir, "c.json"), skipped[1].Path)
	assert.Error(t, skipped[1].Err)
}

func TestImportGlob_BadPattern(t *testing.T) {
	_, _, err := ImportGlob("[")
	assert.Error(t, err)
}

func TestImportFile_TitleFromFileName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Shopping list.md")
	require.NoError(t, os.WriteFile(path, []byte("- milk\n"), 0644))

	items, err := ImportFile(path)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Shopping list", items[0].Draft.Title)
	assert.Equal(t, "- milk\n", items[0].Draft.Content)
	assert.Empty(t, items[0].ID)
}

func TestSnapshot_ExportImport(t *testing.T) {
	dir := t.TempDir()
	notes := model.NoteList{note, {ID: "2", Title: "b", Content: "c"}}

	path, err := ExportSnapshot(notes, &Options{OutputDir: dir})
	require.NoError(t, err)

	items, err := ImportFile(path)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, note.ID, items[0].ID)
	assert.Equal(t, []string{}, items[1].Draft.Tags)
}

func TestImportFile_SingleJSONNote(t *testing.T) {
	dir := t.TempDir()
	paths, err := ExportAll(model.NoteList{note}, NewJSONExporter(), &Options{OutputDir: dir})
	require.NoError(t, err)

	items, err := ImportFile(paths[0])
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, note.ID, items[0].ID)
	assert.Equal(t, note.Draft(), items[0].Draft)
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "note", sanitizeFilename(""))
	assert.Equal(t, "x_y", sanitizeFilename("x y"))
	assert.Equal(t, "a-b", sanitizeFilename("a\x01b"))
}
