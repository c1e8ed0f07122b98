// Package ui holds the lipgloss styles derived from the document's theme and
// accent attributes.
package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/kyleking/lazytheme/internal/ui/theme"
)

// Colors used throughout the UI. Apply replaces them.
var (
	PrimaryColor    lipgloss.Color
	SecondaryColor  lipgloss.Color
	AccentColor     lipgloss.Color
	MutedColor      lipgloss.Color
	TextColor       lipgloss.Color
	BackgroundColor lipgloss.Color
	SurfaceColor    lipgloss.Color
	ErrorColor      lipgloss.Color
)

// Styles for the application. Apply rebuilds them.
var (
	TitleStyle         lipgloss.Style
	SubtitleStyle      lipgloss.Style
	SelectedStyle      lipgloss.Style
	NormalStyle        lipgloss.Style
	HelpStyle          lipgloss.Style
	BorderStyle        lipgloss.Style
	FocusedBorderStyle lipgloss.Style
	PageStyle          lipgloss.Style
	BannerStyle        lipgloss.Style
	ActiveMarkerStyle  lipgloss.Style
	ErrorStyle         lipgloss.Style
)

func init() {
	Apply(theme.Palette(theme.LightDefault, theme.DefaultAccent))
}

// ApplyAttributes rebuilds the styles from the root attribute values.
func ApplyAttributes(themeID, accent string) {
	Apply(theme.Palette(themeID, accent))
}

// Apply rebuilds every style from t.
func Apply(t theme.Theme) {
	PrimaryColor = t.Primary
	SecondaryColor = t.Secondary
	AccentColor = t.Accent
	MutedColor = t.Muted
	TextColor = t.Text
	BackgroundColor = t.Background
	SurfaceColor = t.Surface
	ErrorColor = t.Error

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor)

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(MutedColor)

	SelectedStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(AccentColor)

	NormalStyle = lipgloss.NewStyle().
		Foreground(TextColor)

	HelpStyle = lipgloss.NewStyle().
		Foreground(MutedColor)

	BorderStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(SecondaryColor)

	FocusedBorderStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(AccentColor)

	PageStyle = lipgloss.NewStyle().
		Foreground(TextColor).
		Background(BackgroundColor)

	BannerStyle = lipgloss.NewStyle().
		Foreground(TextColor).
		Background(SurfaceColor).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(AccentColor).
		Padding(0, 1)

	ActiveMarkerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(AccentColor)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(ErrorColor)
}

// PaneStyle returns a style for a pane with optional focus.
func PaneStyle(width, height int, focused bool) lipgloss.Style {
	style := BorderStyle
	if focused {
		style = FocusedBorderStyle
	}
	return style.Width(width - 2).Height(height - 2)
}
