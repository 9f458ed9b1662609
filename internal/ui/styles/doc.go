// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the marknote TUI.

# Color System (colors.go)

Every color is a Lip Gloss AdaptiveColor, so the light or dark variant is picked
from the terminal background:

	Purple  - selections, headings, selected tag chips
	Cyan    - focused fields, info toasts
	Emerald - success
	Amber   - warnings, the "create tag" suggestion row
	Rose    - errors, delete confirmation

# Theme System (theme.go)

Theme holds the composed lipgloss styles for each screen. The config value
ui.theme ("auto", "dark", "light") selects the background detection:

	theme := styles.NewThemeFor(cfg.UI.Theme)
	row := theme.NoteItemSelected.Render(title)
*/
package styles
