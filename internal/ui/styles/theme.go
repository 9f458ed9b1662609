// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme names accepted by NewThemeFor.
const (
	ThemeAuto  = "auto"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Theme holds all the styled components for the application.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style

	// ==========================================================================
	// NOTE LIST STYLES
	// ==========================================================================

	NoteItem         lipgloss.Style
	NoteItemSelected lipgloss.Style
	NoteTitle        lipgloss.Style
	NotePreview      lipgloss.Style
	EmptyList        lipgloss.Style
	SearchPrompt     lipgloss.Style

	// ==========================================================================
	// TAG STYLES
	// ==========================================================================

	TagChip         lipgloss.Style
	TagChipActive   lipgloss.Style
	TagChipDisabled lipgloss.Style
	TagPill         lipgloss.Style

	// ==========================================================================
	// FORM STYLES
	// ==========================================================================

	Label        lipgloss.Style
	Field        lipgloss.Style
	FieldFocused lipgloss.Style
	Toolbar      lipgloss.Style
	ToolbarKey   lipgloss.Style
	Stats        lipgloss.Style

	// ==========================================================================
	// SUGGESTION DROPDOWN STYLES
	// ==========================================================================

	Dropdown       lipgloss.Style
	DropdownItem   lipgloss.Style
	DropdownActive lipgloss.Style
	DropdownCreate lipgloss.Style
	DropdownEmpty  lipgloss.Style

	// ==========================================================================
	// DETAIL AND DIALOG STYLES
	// ==========================================================================

	DetailTitle lipgloss.Style
	ConfirmBox  lipgloss.Style
	NotFoundBox lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	ErrorStyle   lipgloss.Style
	SuccessStyle lipgloss.Style
}

// NewTheme creates a theme from the detected terminal background.
func NewTheme() *Theme {
	return NewThemeFor(ThemeAuto)
}

// NewThemeFor creates a theme for the named background. "dark" and "light"
// override detection; anything else detects.
func NewThemeFor(name string) *Theme {
	colorProfile := termenv.ColorProfile()

	var isDark bool
	switch name {
	case ThemeDark:
		isDark = true
		lipgloss.SetHasDarkBackground(true)
	case ThemeLight:
		isDark = false
		lipgloss.SetHasDarkBackground(false)
	default:
		isDark = termenv.HasDarkBackground()
	}

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}
	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// Header
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Purple).
		Padding(0, 2)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)

	t.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	// Note list
	t.NoteItem = lipgloss.NewStyle().
		Foreground(TextPrimary).
		PaddingLeft(2)

	t.NoteItemSelected = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(SelectionBg).
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(Purple).
		PaddingLeft(1)

	t.NoteTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	t.NotePreview = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.EmptyList = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true).
		Padding(1, 2)

	t.SearchPrompt = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	// Tags
	t.TagChip = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(Overlay).
		Padding(0, 1)

	t.TagChipActive = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Purple).
		Bold(true).
		Padding(0, 1)

	t.TagChipDisabled = lipgloss.NewStyle().
		Foreground(OverlayDim).
		Strikethrough(true).
		Padding(0, 1)

	t.TagPill = lipgloss.NewStyle().
		Foreground(Purple)

	// Form
	t.Label = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Bold(true)

	t.Field = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.FieldFocused = t.Field.
		BorderForeground(FocusRing)

	t.Toolbar = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.ToolbarKey = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.Stats = lipgloss.NewStyle().
		Foreground(TextMuted).
		Align(lipgloss.Right)

	// Suggestion dropdown
	t.Dropdown = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Cyan).
		Padding(0, 1)

	t.DropdownItem = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.DropdownActive = lipgloss.NewStyle().
		Background(Cyan).
		Foreground(Surface).
		Bold(true)

	t.DropdownCreate = lipgloss.NewStyle().
		Foreground(Amber).
		Italic(true)

	t.DropdownEmpty = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// Detail and dialogs
	t.DetailTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple).
		MarginBottom(1)

	t.ConfirmBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(Rose).
		Padding(1, 3)

	t.NotFoundBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Amber).
		Padding(1, 3)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(ErrorHighContrast).
		Bold(true)

	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(SuccessHighContrast).
		Bold(true)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // > 100 columns
)

// ShowPreviews reports whether list rows have room for a content preview.
func (t *Theme) ShowPreviews() bool {
	return t.GetLayoutMode() != LayoutNarrow
}
