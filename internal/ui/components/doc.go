// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the reusable widgets of the marknote TUI.

Each component is styled through a *styles.Theme and exposes View for
rendering. Components hold no note data of their own: they render what the
app model hands them and report user actions back to it.

# Components

## Notes

NoteList (notelist.go) - Scrollable note rows with title, tags and an
optional one-line preview. The cursor follows the selected id across
refreshes.

FilterChips (chips.go) - One toggle chip per known tag, backed by a
filter.TagSet.

## Tags

TagInput (taginput.go) - Text input wired to a tags.Selector. Arrow keys,
Enter, Escape and Backspace go to the selector first; everything else edits
the query.

SuggestionPopup (suggestions.go) - The candidate panel under the tag input,
with the highlighted row and the optional create row.

SuggestedTags (suggested.go) - Quick picks from the configured list.
Already selected tags are rendered disabled.

## Feedback

ToastManager (toast.go) - Timed notifications, newest first. It implements
notify.Notifier so the core's messages show up as toasts.

# Usage

	sel := tags.NewSelector(all, draft.Tags, tags.WithNotifier(toasts))
	input := components.NewTagInput(sel, theme)
	input.Focus()
	handled, cmd := input.Update(msg)
*/
package components
