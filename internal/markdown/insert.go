// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package markdown

import "fmt"

// Format is a toolbar action.
type Format string

const (
	Bold          Format = "bold"
	Italic        Format = "italic"
	Heading       Format = "heading"
	Quote         Format = "quote"
	UnorderedList Format = "unordered-list"
	OrderedList   Format = "ordered-list"
	Link          Format = "link"
	Image         Format = "image"
	Table         Format = "table"
	Code          Format = "code"
)

// Placeholder text used when nothing is selected.
const (
	LinkPlaceholder  = "link"
	ImagePlaceholder = "image description"
	TableTemplate    = "| Header 1 | Header 2 |\n| --- | --- |\n| Cell 1 | Cell 2 |"
)

// Formats lists the toolbar actions in display order.
var Formats = []Format{Bold, Italic, Heading, Quote, UnorderedList, OrderedList, Link, Image, Table, Code}

// ParseFormat converts a toolbar action name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown markdown format %q", s)
}

// Insert applies format to the selection [start, end) of content and
// returns the new content with the caret position.
//
// Wrapping formats put the caret after the closing marker when text was
// selected and between the markers otherwise. Prefix formats put it after the
// selection. Link and image put it after the reference, or after the
// placeholder label when nothing was selected. A table leaves it at the end
// of the template. Unknown formats return content
// unchanged with the caret at end.
func Insert(content string, start, end int, format Format) (string, int) {
	runes := []rune(content)
	start = clamp(start, 0, len(runes))
	end = clamp(end, 0, len(runes))
	if start > end {
		start, end = end, start
	}

	before := string(runes[:start])
	sel := string(runes[start:end])
	after := string(runes[end:])
	hasSel := start != end

	// wrap surrounds the selection; caret goes past the closing marker when
	// text was selected, otherwise between the markers.
	wrap := func(open, close string) (string, int) {
		text := before + open + sel + close + after
		if hasSel {
			return text, end + runeLen(open) + runeLen(close)
		}
		return text, start + runeLen(open)
	}

	// prefix puts a line marker in front of the selection.
	prefix := func(marker string) (string, int) {
		return before + marker + sel + after, end + runeLen(marker)
	}

	// reference builds a link or image. With a selection the caret lands
	// after "(url)", otherwise after the placeholder's closing bracket so it
	// can be replaced next.
	reference := func(open, placeholder string) (string, int) {
		if hasSel {
			return before + open + sel + "](url)" + after, end + runeLen(open) + runeLen("](url)")
		}
		return before + open + placeholder + "](url)" + after, start + runeLen(open) + runeLen(placeholder) + 1
	}

	switch format {
	case Bold:
		return wrap("**", "**")
	case Italic:
		return wrap("*", "*")
	case Code:
		return wrap("`", "`")
	case Heading:
		return prefix("# ")
	case Quote:
		return prefix("> ")
	case UnorderedList:
		return prefix("* ")
	case OrderedList:
		return prefix("1. ")
	case Link:
		return reference("[", LinkPlaceholder)
	case Image:
		return reference("![", ImagePlaceholder)
	case Table:
		return before + TableTemplate + after, start + runeLen(TableTemplate)
	default:
		return content, end
	}
}

func runeLen(s string) int { return len([]rune(s)) }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
