// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/marknote/internal/config"
	"github.com/jeranaias/marknote/internal/model"
	"github.com/jeranaias/marknote/internal/service"
	"github.com/jeranaias/marknote/internal/store"
)

// =============================================================================
// HARNESS
// =============================================================================

type result struct {
	out    string
	errOut string
	err    error
}

// home points the config directory, and with it the default notes file, at
// a fresh temporary directory.
func home(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("MARKNOTE_HOME", dir)
	t.Setenv("MARKNOTE_BACKEND", "")
	t.Setenv("MARKNOTE_STORE", "")
	return dir
}

func runWith(t *testing.T, interactive bool, stdin string, args ...string) result {
	t.Helper()
	e := &env{
		build:       BuildInfo{Version: "1.2.3", GitCommit: "abc1234", BuildDate: "2025-01-01"},
		interactive: interactive,
		in:          strings.NewReader(stdin),
	}
	defer e.teardown()

	root := newRootCommand(e)
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return result{out: out.String(), errOut: errOut.String(), err: err}
}

func run(t *testing.T, args ...string) result {
	t.Helper()
	return runWith(t, false, "", args...)
}

func listNotes(t *testing.T, args ...string) model.NoteList {
	t.Helper()
	r := run(t, append([]string{"list", "--json"}, args...)...)
	require.NoError(t, r.err)
	var notes model.NoteList
	require.NoError(t, json.Unmarshal([]byte(r.out), &notes))
	return notes
}

func addNote(t *testing.T, title, content string, tags ...string) model.Note {
	t.Helper()
	args := []string{"add", "--title", title, "--content", content}
	for _, tag := range tags {
		args = append(args, "--tag", tag)
	}
	r := run(t, args...)
	require.NoError(t, r.err, r.errOut)

	for _, n := range listNotes(t) {
		if strings.Contains(r.out, n.ID) {
			return n
		}
	}
	t.Fatalf("created note not listed: %s", r.out)
	return model.Note{}
}

// =============================================================================
// NOTE COMMANDS
// =============================================================================

func TestAdd_ListShow(t *testing.T) {
	home(t)

	n := addNote(t, "Groceries", "- milk\n- eggs", "shopping", "home")
	assert.Equal(t, "Groceries", n.Title)
	assert.Equal(t, []string{"shopping", "home"}, n.Tags)

	r := run(t, "show", n.ID, "--raw")
	require.NoError(t, r.err)
	assert.Equal(t, "- milk\n- eggs\n", r.out)

	r = run(t, "list")
	require.NoError(t, r.err)
	assert.Contains(t, r.out, n.ID[:shortIDLen])
	assert.Contains(t, r.out, "Groceries")
	assert.Contains(t, r.out, "#shopping #home")
	assert.Contains(t, r.out, "1 notes shown (total 1)")
}

func TestAdd_ContentFromStdin(t *testing.T) {
	home(t)

	r := runWith(t, false, "# Draft\n\nbody\n", "add", "--title", "Draft", "--file", "-")
	require.NoError(t, r.err)

	notes := listNotes(t)
	require.Len(t, notes, 1)
	assert.Equal(t, "# Draft\n\nbody\n", notes[0].Content)
}

func TestAdd_ValidationFailure(t *testing.T) {
	home(t)

	r := run(t, "add", "--title", "   ", "--content", "body")
	require.Error(t, r.err)

	var ve *service.ValidationError
	require.True(t, errors.As(r.err, &ve))
	assert.Equal(t, service.FieldTitle, ve.Field)
	assert.Equal(t, ExitUsageError, ExitCodeFor(r.err))
	assert.Empty(t, listNotes(t))
}

func TestAdd_CleansTags(t *testing.T) {
	home(t)

	n := addNote(t, "T", "c", " a ", "a", "", "b")
	assert.Equal(t, []string{"a", "b"}, n.Tags)
}

func TestList_Filters(t *testing.T) {
	home(t)

	addNote(t, "Alpha plan", "a", "work")
	addNote(t, "Beta", "b", "home")
	addNote(t, "Gamma", "c")

	titles := func(notes model.NoteList) []string {
		out := []string{}
		for _, n := range notes {
			out = append(out, n.Title)
		}
		return out
	}

	assert.Equal(t, []string{"Alpha plan", "Beta", "Gamma"}, titles(listNotes(t)))
	assert.Equal(t, []string{"Alpha plan"}, titles(listNotes(t, "--search", "PLAN")))
	assert.Equal(t, []string{"Alpha plan", "Beta"}, titles(listNotes(t, "--tag", "work", "--tag", "home")))
	assert.Empty(t, listNotes(t, "--search", "alpha", "--tag", "home"))
}

func TestShow_Missing(t *testing.T) {
	home(t)

	r := run(t, "show", "does-not-exist")
	require.Error(t, r.err)
	assert.True(t, errors.Is(r.err, store.ErrNoteNotFound))
	assert.Equal(t, ExitNotFoundError, ExitCodeFor(r.err))
}

func TestShow_IDPrefix(t *testing.T) {
	home(t)

	n := addNote(t, "Prefix", "body")
	r := run(t, "show", n.ID[:shortIDLen], "--json")
	require.NoError(t, r.err)

	var got model.Note
	require.NoError(t, json.Unmarshal([]byte(r.out), &got))
	assert.Equal(t, n.ID, got.ID)
}

func TestEdit_Flags(t *testing.T) {
	home(t)

	n := addNote(t, "Old", "body", "a", "b")

	r := run(t, "edit", n.ID, "--title", "New", "--remove-tag", "a", "--add-tag", "c")
	require.NoError(t, r.err, r.errOut)
	assert.Contains(t, r.out, "Updated")

	notes := listNotes(t)
	require.Len(t, notes, 1)
	assert.Equal(t, n.ID, notes[0].ID)
	assert.Equal(t, "New", notes[0].Title)
	assert.Equal(t, "body", notes[0].Content)
	assert.Equal(t, []string{"b", "c"}, notes[0].Tags)
}

func TestEdit_DuplicateTagWarns(t *testing.T) {
	home(t)

	n := addNote(t, "T", "c", "a")
	r := run(t, "edit", n.ID, "--add-tag", "a")
	require.NoError(t, r.err)
	assert.Contains(t, r.errOut, `"a" is already selected`)
	assert.Equal(t, []string{"a"}, listNotes(t)[0].Tags)
}

func TestEdit_ReplaceTags(t *testing.T) {
	home(t)

	n := addNote(t, "T", "c", "a", "b")
	r := run(t, "edit", n.ID, "--tag", "z")
	require.NoError(t, r.err)
	assert.Equal(t, []string{"z"}, listNotes(t)[0].Tags)
}

func TestEdit_NothingToChange(t *testing.T) {
	home(t)

	n := addNote(t, "T", "c")
	r := run(t, "edit", n.ID)
	require.Error(t, r.err)
	assert.Equal(t, ExitUsageError, ExitCodeFor(r.err))
}

func TestEdit_Missing(t *testing.T) {
	home(t)

	r := run(t, "edit", "nope", "--title", "x")
	assert.True(t, errors.Is(r.err, store.ErrNoteNotFound))
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name        string
		interactive bool
		stdin       string
		args        []string
		wantCode    int
		wantLeft    int
	}{
		{name: "yes flag", args: []string{"--yes"}, wantCode: ExitSuccess, wantLeft: 0},
		{name: "no terminal", wantCode: ExitUsageError, wantLeft: 1},
		{name: "answer yes", interactive: true, stdin: "y\n", wantCode: ExitSuccess, wantLeft: 0},
		{name: "answer no", interactive: true, stdin: "n\n", wantCode: ExitCancelled, wantLeft: 1},
		{name: "empty answer", interactive: true, stdin: "\n", wantCode: ExitCancelled, wantLeft: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			home(t)
			n := addNote(t, "Doomed", "body")

			args := append([]string{"delete", n.ID}, tc.args...)
			r := runWith(t, tc.interactive, tc.stdin, args...)
			assert.Equal(t, tc.wantCode, ExitCodeFor(r.err))
			assert.Len(t, listNotes(t), tc.wantLeft)
		})
	}
}

func TestDelete_Missing(t *testing.T) {
	home(t)

	r := run(t, "delete", "nope", "--yes")
	assert.Equal(t, ExitNotFoundError, ExitCodeFor(r.err))
}

func TestTags(t *testing.T) {
	home(t)

	addNote(t, "A", "a", "work", "ideas")
	addNote(t, "B", "b", "work")

	r := run(t, "tags", "--json")
	require.NoError(t, r.err)

	var counts []TagCount
	require.NoError(t, json.Unmarshal([]byte(r.out), &counts))
	assert.Equal(t, []TagCount{{Tag: "work", Notes: 2}, {Tag: "ideas", Notes: 1}}, counts)
}

// =============================================================================
// EXPORT AND IMPORT
// =============================================================================

func TestExportImport(t *testing.T) {
	home(t)
	out := filepath.Join(t.TempDir(), "backup")

	kept := addNote(t, "Kept", "kept body", "a")
	gone := addNote(t, "Gone", "gone body", "b")

	r := run(t, "export", out)
	require.NoError(t, r.err, r.errOut)
	assert.Len(t, strings.Split(strings.TrimSpace(r.out), "\n"), 2)

	// second export without --overwrite refuses
	r = run(t, "export", out)
	require.Error(t, r.err)
	assert.Equal(t, ExitUsageError, ExitCodeFor(r.err))

	require.NoError(t, run(t, "delete", gone.ID, "--yes").err)
	require.NoError(t, run(t, "edit", kept.ID, "--title", "Changed").err)

	r = run(t, "import", filepath.Join(out, "*.md"), "--json")
	require.NoError(t, r.err, r.errOut)

	var sum ImportSummary
	require.NoError(t, json.Unmarshal([]byte(r.out), &sum))
	assert.Equal(t, ImportSummary{Created: 1, Updated: 1}, sum)

	notes := listNotes(t)
	require.Len(t, notes, 2)
	assert.Equal(t, kept.ID, notes[0].ID)
	assert.Equal(t, "Kept", notes[0].Title)
	assert.Equal(t, "kept body", notes[0].Content)
	assert.NotEqual(t, gone.ID, notes[1].ID)
	assert.Equal(t, "Gone", notes[1].Title)
}

func TestExport_Snapshot(t *testing.T) {
	home(t)
	out := t.TempDir()

	addNote(t, "One", "1")
	r := run(t, "export", out, "--snapshot")
	require.NoError(t, r.err)
	assert.Equal(t, filepath.Join(out, "notes.json"), strings.TrimSpace(r.out))
}

func TestExport_BadFormat(t *testing.T) {
	home(t)

	r := run(t, "export", t.TempDir(), "--format", "pdf")
	assert.Equal(t, ExitUsageError, ExitCodeFor(r.err))
}

func TestImport_SkipsUnreadableFiles(t *testing.T) {
	home(t)
	dir := t.TempDir()
	write := func(name, data string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(data), 0600))
	}
	write("a.md", "---\ntitle: Good\n---\nbody\n")
	write("b.md", "---\ntitle: [unclosed\n---\nbody\n")
	write("c.json", "{not json")
	write("d.md", "---\ntitle: Empty\n---\n")

	r := run(t, "import", filepath.Join(dir, "*"), "--json")
	require.NoError(t, r.err, r.errOut)

	var sum ImportSummary
	require.NoError(t, json.Unmarshal([]byte(r.out), &sum))
	assert.Equal(t, ImportSummary{Created: 1, Skipped: 3}, sum)
	assert.Contains(t, r.errOut, "b.md")
	assert.Contains(t, r.errOut, "c.json")
	assert.Contains(t, r.errOut, "d.md")

	notes := listNotes(t)
	require.Len(t, notes, 1)
	assert.Equal(t, "Good", notes[0].Title)
}

func TestImport_NoMatches(t *testing.T) {
	home(t)

	r := run(t, "import", filepath.Join(t.TempDir(), "*.md"))
	assert.Equal(t, ExitUsageError, ExitCodeFor(r.err))
}

// =============================================================================
// CONFIG AND VERSION
// =============================================================================

func TestConfig_SetGet(t *testing.T) {
	home(t)

	r := run(t, "config", "set", "ui.theme", "light")
	require.NoError(t, r.err)

	r = run(t, "config", "get", "ui.theme")
	require.NoError(t, r.err)
	assert.Equal(t, "light\n", r.out)

	r = run(t, "config", "set", "ui.suggested_tags", "work, home")
	require.NoError(t, r.err)
	r = run(t, "config", "get", "ui.suggested_tags")
	assert.Equal(t, "work,home\n", r.out)

	path, err := config.ConfigPathTOML()
	require.NoError(t, err)
	r = run(t, "config", "path")
	assert.Equal(t, path+"\n", r.out)
}

func TestConfig_Invalid(t *testing.T) {
	home(t)

	r := run(t, "config", "set", "ui.theme", "sepia")
	assert.Equal(t, ExitConfigError, ExitCodeFor(r.err))

	r = run(t, "config", "get", "no.such.key")
	assert.Equal(t, ExitUsageError, ExitCodeFor(r.err))
}

func TestStoreFlag_SQLite(t *testing.T) {
	home(t)
	db := filepath.Join(t.TempDir(), "notes.db")

	r := run(t, "--backend", "sqlite", "--store", db, "add", "--title", "In db", "--content", "x")
	require.NoError(t, r.err, r.errOut)

	r = run(t, "--backend", "sqlite", "--store", db, "list", "--json")
	require.NoError(t, r.err)
	assert.Contains(t, r.out, "In db")

	// the default file store is untouched
	assert.Empty(t, listNotes(t))
}

func TestVersion(t *testing.T) {
	home(t)

	r := run(t, "version")
	require.NoError(t, r.err)
	assert.Contains(t, r.out, "marknote 1.2.3")
	assert.Contains(t, r.out, "abc1234")
}

func TestUnknownFlag(t *testing.T) {
	home(t)

	r := run(t, "list", "--bogus")
	assert.Equal(t, ExitUsageError, ExitCodeFor(r.err))
}

// =============================================================================
// HELPERS
// =============================================================================

func TestParseTagList(t *testing.T) {
	assert.Equal(t, []string{"a", "b c", "d"}, ParseTagList(" a, b c ,,d,"))
	assert.Nil(t, ParseTagList("  "))
}

func TestTagCompleter(t *testing.T) {
	complete := TagCompleter([]string{"work", "personal", "workout"})

	tests := []struct {
		line string
		want []string
	}{
		{line: "per", want: []string{"personal"}},
		{line: "WO", want: []string{"work", "workout"}},
		{line: "work, wo", want: []string{"work, workout"}},
		{line: "work,", want: []string{"work, personal", "work, workout"}},
		{line: "zzz", want: []string{}},
	}
	for _, tc := range tests {
		t.Run(tc.line, func(t *testing.T) {
			assert.Equal(t, tc.want, complete(tc.line))
		})
	}
}

func TestCountTags(t *testing.T) {
	notes := model.NoteList{
		{ID: "1", Tags: []string{"x", "y"}},
		{ID: "2", Tags: []string{"y"}},
		{ID: "3"},
	}
	assert.Equal(t, []TagCount{{"x", 1}, {"y", 2}}, CountTags(notes))
	assert.Empty(t, CountTags(nil))
}

func TestSortTagCounts(t *testing.T) {
	base := func() []TagCount {
		return []TagCount{{"beta", 1}, {"alpha", 3}, {"Alpha", 2}, {"gamma", 3}}
	}

	tests := []struct {
		order string
		want  []string
	}{
		{SortUsage, []string{"beta", "alpha", "Alpha", "gamma"}},
		{SortName, []string{"alpha", "Alpha", "beta", "gamma"}},
		{SortCount, []string{"alpha", "gamma", "Alpha", "beta"}},
	}
	for _, tc := range tests {
		t.Run(tc.order, func(t *testing.T) {
			counts := base()
			require.NoError(t, SortTagCounts(counts, tc.order))
			got := make([]string, len(counts))
			for i, c := range counts {
				got[i] = c.Tag
			}
			assert.Equal(t, tc.want, got)
		})
	}

	assert.Equal(t, ExitUsageError, ExitCodeFor(SortTagCounts(base(), "random")))
}

func TestPrintSource(t *testing.T) {
	var buf bytes.Buffer
	printSource(&buf, "# Title", false, "dark")
	assert.Equal(t, "# Title\n", buf.String())

	buf.Reset()
	printSource(&buf, "# Title\n", true, "dark")
	assert.Contains(t, buf.String(), "Title")
}

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, ExitSuccess},
		{errors.New("boom"), ExitGeneralError},
		{ErrCancelled, ExitCancelled},
		{&store.NotFoundError{ID: "x"}, ExitNotFoundError},
		{fmt.Errorf("wrapped: %w", &store.NotFoundError{ID: "x"}), ExitNotFoundError},
		{&service.ValidationError{Field: service.FieldTitle, Message: "m"}, ExitUsageError},
		{&UsageError{Err: errors.New("bad")}, ExitUsageError},
		{&ConfigError{Err: errors.New("bad")}, ExitConfigError},
		{&StorageError{Path: "p", Err: errors.New("bad")}, ExitStorageError},
		{NewCommandError("export", "write", "r", &store.NotFoundError{}), ExitNotFoundError},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ExitCodeFor(tc.err), "%v", tc.err)
	}
}

func TestConfirmer(t *testing.T) {
	var out bytes.Buffer
	c := Confirmer{In: strings.NewReader("yes\n"), Out: &out, Interactive: true}
	require.NoError(t, c.Confirm(false, "delete everything"))
	assert.Contains(t, out.String(), "delete everything? [y/N]")

	c = Confirmer{In: strings.NewReader(""), Out: &out, Interactive: true}
	assert.ErrorIs(t, c.Confirm(false, "x"), ErrCancelled)

	c = Confirmer{Interactive: false}
	assert.NoError(t, c.Confirm(true, "x"))
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	PrintError(&buf, errors.New("boom"))
	assert.Contains(t, buf.String(), "Error: boom")

	buf.Reset()
	PrintError(&buf, ErrCancelled)
	assert.Equal(t, "Cancelled.\n", buf.String())
}
