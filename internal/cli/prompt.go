// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// prompt.go - Interactive note entry with line editing and tag completion.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/marknote/internal/config"
	"github.com/jeranaias/marknote/internal/model"
	"github.com/jeranaias/marknote/internal/tags"
)

// ContentTerminator ends multi-line content entry.
const ContentTerminator = "."

// =============================================================================
// PROMPTER
// =============================================================================

// Prompter provides line editing, history and tag completion for the add
// and edit commands.
type Prompter struct {
	line        *liner.State
	out         io.Writer
	historyFile string
}

// NewPrompter creates a Prompter completing tags from allTags.
func NewPrompter(out io.Writer, allTags []string) *Prompter {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	line.SetTabCompletionStyle(liner.TabPrints)
	line.SetCompleter(TagCompleter(allTags))

	configDir, err := config.ConfigDir()
	if err != nil {
		configDir = os.TempDir()
	}

	p := &Prompter{
		line:        line,
		out:         out,
		historyFile: filepath.Join(configDir, "prompt_history"),
	}
	p.loadHistory()
	return p
}

func (p *Prompter) loadHistory() {
	if f, err := os.Open(p.historyFile); err == nil {
		p.line.ReadHistory(f)
		f.Close()
	}
}

func (p *Prompter) saveHistory() {
	if err := os.MkdirAll(filepath.Dir(p.historyFile), 0700); err != nil {
		return
	}
	f, err := os.OpenFile(p.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	p.line.WriteHistory(f)
}

// Close saves history and restores the terminal.
func (p *Prompter) Close() {
	p.saveHistory()
	p.line.Close()
}

// read prompts with text pre-filled.
func (p *Prompter) read(prompt, text string) (string, error) {
	input, err := p.line.PromptWithSuggestion(prompt, text, -1)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", ErrCancelled
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		p.line.AppendHistory(input)
	}
	return input, nil
}

// Draft asks for a title, tags and, when withContent is set, content.
// Fields start from d.
func (p *Prompter) Draft(d model.Draft, withContent bool) (model.Draft, error) {
	title, err := p.read("Title: ", d.Title)
	if err != nil {
		return d, err
	}
	tagLine, err := p.read("Tags (comma separated, tab completes): ", strings.Join(d.Tags, ", "))
	if err != nil {
		return d, err
	}
	d.Title = title
	d.Tags = ParseTagList(tagLine)

	if !withContent {
		return d, nil
	}

	fmt.Fprintf(p.out, "Content (Markdown, finish with a line containing only %q):\n", ContentTerminator)
	var lines []string
	for {
		l, err := p.line.Prompt("")
		if errors.Is(err, liner.ErrPromptAborted) {
			return d, ErrCancelled
		}
		if errors.Is(err, io.EOF) || l == ContentTerminator {
			break
		}
		if err != nil {
			return d, err
		}
		lines = append(lines, l)
	}
	d.Content = strings.Join(lines, "\n")
	return d, nil
}

// =============================================================================
// TAG LISTS
// =============================================================================

// ParseTagList splits a comma separated tag list. Blank entries are dropped.
func ParseTagList(s string) []string {
	return TrimTags(strings.Split(s, ","))
}

// TrimTags trims tags typed on the command line and drops blank ones.
func TrimTags(in []string) []string {
	var out []string
	for _, t := range in {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// TagCompleter completes the last entry of a comma separated tag list
// against allTags. Tags already in the list are not offered.
func TagCompleter(allTags []string) liner.Completer {
	return func(line string) []string {
		head, query := "", line
		if i := strings.LastIndex(line, ","); i >= 0 {
			head, query = line[:i+1]+" ", line[i+1:]
		}
		query = strings.TrimSpace(query)

		out := []string{}
		for _, tag := range tags.Candidates(allTags, ParseTagList(head), query) {
			out = append(out, head+tag)
		}
		return out
	}
}
