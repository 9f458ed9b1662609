// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package tags implements tag suggestion and selection for the note form.
//
// Candidates is a pure function over the known tags, the tags already on the
// note and the text typed so far. Selector wraps it in the small state
// machine behind the tag input: query, suggestion panel, keyboard
// highlight and the selected set.
//
// # Keyboard
//
//   - Enter adds the highlighted suggestion, or creates the typed tag
//   - Down/Up move the highlight while the panel is open, wrapping around
//   - Backspace on an empty query removes the last selected tag
//   - Escape closes the panel
//
// Selector never renders anything. The UI maps its own key events to Key
// values and draws Selector's state.
package tags
