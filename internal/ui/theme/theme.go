package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines semantic color roles for the UI.
type Theme struct {
	Primary    lipgloss.Color // titles, focused borders
	Secondary  lipgloss.Color // unfocused borders
	Accent     lipgloss.Color // selected items, active markers
	Muted      lipgloss.Color // subtitles, help text
	SoftMuted  lipgloss.Color // less critical info
	Text       lipgloss.Color // normal text
	Background lipgloss.Color // page background
	Surface    lipgloss.Color // panel and banner background
	Error      lipgloss.Color
}

// DefaultAccent is used when no accent has been chosen.
const DefaultAccent = "blue"

type accentShades struct {
	light lipgloss.Color
	dark  lipgloss.Color
}

var accents = map[string]accentShades{
	"blue":   {light: "#1e66f5", dark: "#8aadf4"},
	"green":  {light: "#40a02b", dark: "#a6da95"},
	"purple": {light: "#8839ef", dark: "#c6a0f6"},
	"orange": {light: "#fe640b", dark: "#f5a97f"},
	"red":    {light: "#d20f39", dark: "#ed8796"},
	"teal":   {light: "#179299", dark: "#8bd5ca"},
	"pink":   {light: "#ea76cb", dark: "#f5bde6"},
}

// Accents returns the recognised accent names in display order.
func Accents() []string {
	return []string{"blue", "green", "purple", "orange", "red", "teal", "pink"}
}

// ValidAccent reports whether name is a recognised accent.
func ValidAccent(name string) bool {
	_, ok := accents[name]
	return ok
}

var palettes = map[string]Theme{
	// Catppuccin Latte
	"light-default": {
		Primary:    "#8839ef",
		Secondary:  "#acb0be",
		Muted:      "#7c7f93",
		SoftMuted:  "#8c8fa1",
		Text:       "#4c4f69",
		Background: "#eff1f5",
		Surface:    "#e6e9ef",
		Error:      "#d20f39",
	},
	"light-sepia": {
		Primary:    "#8b5e34",
		Secondary:  "#c8b89a",
		Muted:      "#8a7a63",
		SoftMuted:  "#9c8b72",
		Text:       "#5b4636",
		Background: "#f4ecd8",
		Surface:    "#eadfc4",
		Error:      "#b3261e",
	},
	"light-cool": {
		Primary:    "#2a6f97",
		Secondary:  "#a9c6d8",
		Muted:      "#6b8294",
		SoftMuted:  "#7f95a6",
		Text:       "#263b4a",
		Background: "#eef5f9",
		Surface:    "#dfeaf2",
		Error:      "#c0392b",
	},
	"light-oled": {
		Primary:    "#000000",
		Secondary:  "#bbbbbb",
		Muted:      "#666666",
		SoftMuted:  "#777777",
		Text:       "#111111",
		Background: "#ffffff",
		Surface:    "#f2f2f2",
		Error:      "#cc0000",
	},
	"light-blue": {
		Primary:    "#1e66f5",
		Secondary:  "#a7c0f0",
		Muted:      "#5c6f94",
		SoftMuted:  "#7084a8",
		Text:       "#1f2d4d",
		Background: "#edf2fd",
		Surface:    "#dce6fb",
		Error:      "#d20f39",
	},
	// Catppuccin Macchiato
	"dark-default": {
		Primary:    "#c6a0f6",
		Secondary:  "#5b6078",
		Muted:      "#939ab7",
		SoftMuted:  "#a5adcb",
		Text:       "#cad3f5",
		Background: "#24273a",
		Surface:    "#1e2030",
		Error:      "#ed8796",
	},
	"dark-oled": {
		Primary:    "#e0e0e0",
		Secondary:  "#333333",
		Muted:      "#8a8a8a",
		SoftMuted:  "#9a9a9a",
		Text:       "#f0f0f0",
		Background: "#000000",
		Surface:    "#0d0d0d",
		Error:      "#ff6b6b",
	},
	"dark-blue": {
		Primary:    "#8aadf4",
		Secondary:  "#3b4a6b",
		Muted:      "#8492b3",
		SoftMuted:  "#97a4c2",
		Text:       "#d6e2ff",
		Background: "#141b2d",
		Surface:    "#1b2540",
		Error:      "#ff8a8a",
	},
	"dark-sepia": {
		Primary:    "#d8b483",
		Secondary:  "#5a4a36",
		Muted:      "#a08e74",
		SoftMuted:  "#b09e84",
		Text:       "#e8d9bf",
		Background: "#2b2118",
		Surface:    "#231a12",
		Error:      "#f28b82",
	},
	"dark-cool": {
		Primary:    "#7fc8d8",
		Secondary:  "#3d5560",
		Muted:      "#88a3ad",
		SoftMuted:  "#9ab3bc",
		Text:       "#d3e8ee",
		Background: "#162228",
		Surface:    "#101a1f",
		Error:      "#ff8a80",
	},
}

// Palette returns the color roles for a theme identifier and accent.
// Unknown identifiers fall back to the default palette of their mode and
// unknown accents to DefaultAccent.
func Palette(id, accent string) Theme {
	t, ok := palettes[id]
	if !ok {
		t = palettes[DefaultFor(IsDark(id))]
	}

	shades, ok := accents[accent]
	if !ok {
		shades = accents[DefaultAccent]
	}

	if IsDark(id) {
		t.Accent = shades.dark
	} else {
		t.Accent = shades.light
	}

	return t
}
