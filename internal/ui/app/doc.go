// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app is the Bubble Tea root model of the marknote TUI.
//
// Four screens share one model, selected by service.Route:
//
//	list       search box, tag filter chips, the filtered notes
//	detail/id  rendered Markdown in a viewport; not-found view for a missing id
//	create     form: title, content with formatting toolbar, tag input
//	edit/id    the same form filled from the note
//
// Intents (save, delete, open for edit) go through service.Service, which
// reports outcomes through the toast manager passed in Options.
package app
