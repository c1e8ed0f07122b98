package theme

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Modes.
const (
	ModeLight = "light"
	ModeDark  = "dark"
)

// Variants.
const (
	VariantDefault = "default"
	VariantSepia   = "sepia"
	VariantOLED    = "oled"
	VariantCool    = "cool"
	VariantBlue    = "blue"
)

// Default theme identifiers applied when following the system preference.
const (
	LightDefault = ModeLight + "-" + VariantDefault
	DarkDefault  = ModeDark + "-" + VariantDefault
)

var (
	modes    = []string{ModeLight, ModeDark}
	variants = []string{VariantDefault, VariantSepia, VariantOLED, VariantCool, VariantBlue}
)

// ID joins a mode and variant into a theme identifier.
func ID(mode, variant string) string {
	return mode + "-" + variant
}

// All returns every valid theme identifier, light themes first.
func All() []string {
	ids := make([]string, 0, len(modes)*len(variants))
	for _, mode := range modes {
		for _, variant := range variants {
			ids = append(ids, ID(mode, variant))
		}
	}

	return ids
}

// Valid reports whether id is one of the known mode/variant combinations.
func Valid(id string) bool {
	mode, variant, ok := strings.Cut(id, "-")
	if !ok {
		return false
	}

	return contains(modes, mode) && contains(variants, variant)
}

// IsDark reports whether the identifier names a dark theme.
func IsDark(id string) bool {
	return strings.Contains(id, ModeDark)
}

// Mode returns the mode part of the identifier.
func Mode(id string) string {
	if IsDark(id) {
		return ModeDark
	}
	return ModeLight
}

// Variant returns the variant part of the identifier, or "" if there is none.
func Variant(id string) string {
	_, variant, _ := strings.Cut(id, "-")
	return variant
}

// DefaultFor returns the default theme for a system dark-mode preference.
func DefaultFor(prefersDark bool) string {
	if prefersDark {
		return DarkDefault
	}
	return LightDefault
}

// Toggle flips the mode of id and remaps its variant onto the target mode.
//
// Sepia and OLED are the light and dark members of one family, cool and blue
// of the other. The family is recognised by substring so that an identifier
// from either mode lands on the counterpart of the target mode; identifiers
// outside the pairs (dark-sepia, light-oled, ...) therefore do not survive a
// round trip.
func Toggle(id string) string {
	dark := IsDark(id)

	mode := ModeDark
	if dark {
		mode = ModeLight
	}

	variant := VariantDefault

	switch {
	case strings.Contains(id, VariantSepia) || strings.Contains(id, VariantOLED):
		if dark {
			variant = VariantSepia
		} else {
			variant = VariantOLED
		}
	case strings.Contains(id, VariantCool) || strings.Contains(id, VariantBlue):
		if dark {
			variant = VariantCool
		} else {
			variant = VariantBlue
		}
	}

	return ID(mode, variant)
}

// FormatName converts an identifier to a label: "dark-oled" becomes "Dark Oled".
// Only the first letter of each hyphen-separated part is changed.
func FormatName(id string) string {
	parts := strings.Split(id, "-")
	for i, part := range parts {
		r, size := utf8.DecodeRuneInString(part)
		if size == 0 {
			continue
		}
		parts[i] = string(unicode.ToUpper(r)) + part[size:]
	}

	return strings.Join(parts, " ")
}

// ModeLabel returns "Dark" or "Light" for the identifier.
func ModeLabel(id string) string {
	if IsDark(id) {
		return "Dark"
	}
	return "Light"
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
