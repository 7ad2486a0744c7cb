package ui

import (
	"github.com/charmbracelet/lipgloss"

	"vincode/internal/workspace"
)

// designTheme centralizes the TUI color palette and common styles.
//
// The dark palette is based on Vitesse Dark Soft:
// https://github.com/antfu/vscode-theme-vitesse/blob/main/themes/vitesse-dark-soft.json
type designTheme struct {
	// Core brand/semantic colors
	Primary lipgloss.Color
	Blue    lipgloss.Color
	Yellow  lipgloss.Color
	Magenta lipgloss.Color
	Cyan    lipgloss.Color
	Red     lipgloss.Color

	// Text colors
	Text      lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color

	// Surfaces
	Bg     lipgloss.Color
	BgSoft lipgloss.Color
	Border lipgloss.Color

	// Text on accent backgrounds (buttons, chips)
	OnAccent lipgloss.Color

	BarFG lipgloss.Color
	BarBG lipgloss.Color
}

// Vitesse is the dark theme and the default.
var Vitesse = designTheme{
	Primary: lipgloss.Color("#4d9375"),
	Blue:    lipgloss.Color("#6394bf"),
	Yellow:  lipgloss.Color("#e6cc77"),
	Magenta: lipgloss.Color("#d9739f"),
	Cyan:    lipgloss.Color("#5eaab5"),
	Red:     lipgloss.Color("#cb7676"),

	Text:      lipgloss.Color("#dbd7caee"),
	Secondary: lipgloss.Color("#bfbaaa"),
	Muted:     lipgloss.Color("#dedcd590"),

	Bg:     lipgloss.Color("#181818"),
	BgSoft: lipgloss.Color("#292929"),
	Border: lipgloss.Color("#3a3a3a"),

	OnAccent: lipgloss.Color("#222"),

	BarFG: lipgloss.Color("#bfbaaa"),
	BarBG: lipgloss.Color("#222"),
}

// VitesseLight mirrors Vitesse Light.
var VitesseLight = designTheme{
	Primary: lipgloss.Color("#1c6b48"),
	Blue:    lipgloss.Color("#296aa3"),
	Yellow:  lipgloss.Color("#bda437"),
	Magenta: lipgloss.Color("#a13865"),
	Cyan:    lipgloss.Color("#2993a3"),
	Red:     lipgloss.Color("#ab5959"),

	Text:      lipgloss.Color("#393a34"),
	Secondary: lipgloss.Color("#4e4f47"),
	Muted:     lipgloss.Color("#999999"),

	Bg:     lipgloss.Color("#ffffff"),
	BgSoft: lipgloss.Color("#f7f7f7"),
	Border: lipgloss.Color("#e0e0e0"),

	OnAccent: lipgloss.Color("#ffffff"),

	BarFG: lipgloss.Color("#343433"),
	BarBG: lipgloss.Color("#D9DCCF"),
}

// Neon is the high contrast playground theme.
var Neon = designTheme{
	Primary: lipgloss.Color("#39ff14"),
	Blue:    lipgloss.Color("#00e5ff"),
	Yellow:  lipgloss.Color("#fff01f"),
	Magenta: lipgloss.Color("#ff2bd6"),
	Cyan:    lipgloss.Color("#00fff0"),
	Red:     lipgloss.Color("#ff3131"),

	Text:      lipgloss.Color("#e6e6ff"),
	Secondary: lipgloss.Color("#b4a9ff"),
	Muted:     lipgloss.Color("#6c63a6"),

	Bg:     lipgloss.Color("#0d0221"),
	BgSoft: lipgloss.Color("#1a0b3d"),
	Border: lipgloss.Color("#ff2bd6"),

	OnAccent: lipgloss.Color("#0d0221"),

	BarFG: lipgloss.Color("#e6e6ff"),
	BarBG: lipgloss.Color("#1a0b3d"),
}

// themeFor maps the workspace theme setting to a palette.
func themeFor(t workspace.Theme) designTheme {
	switch t {
	case workspace.ThemeLight:
		return VitesseLight
	case workspace.ThemeNeon:
		return Neon
	default:
		return Vitesse
	}
}

// Convenience style helpers

// BorderStyle returns a style with the standard border color.
func (t designTheme) BorderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Border)
}

// FocusBorderStyle is used for the border of the focused pane.
func (t designTheme) FocusBorderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Primary)
}

// AccentBold returns a bold style using the primary accent color.
func (t designTheme) AccentBold() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Primary)
}

// ChipKeyStyle returns a style for the left-most highlighted chip in the status bar.
func (t designTheme) ChipKeyStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.OnAccent).
		Background(t.Primary).
		Padding(0, 1)
}

// ChipStyle returns a style for colored nuggets.
func (t designTheme) ChipStyle(bg lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.OnAccent).Background(bg).Padding(0, 1)
}

// StatusBarBase returns the base style for the status bar background/foreground.
func (t designTheme) StatusBarBase() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.BarFG).Background(t.BarBG)
}

// Button renders a small accent button label.
func (t designTheme) Button(s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(t.OnAccent).Background(t.Primary).Padding(0, 1).Render(s)
}

// Dim renders s in the muted color.
func (t designTheme) Dim(s string) string {
	return lipgloss.NewStyle().Foreground(t.Muted).Render(s)
}
