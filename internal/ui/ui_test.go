package ui

import (
	"testing"

	"github.com/kyleking/lazytheme/internal/ui/theme"
)

func TestApplyAttributes(t *testing.T) {
	defer ApplyAttributes(theme.LightDefault, theme.DefaultAccent)

	ApplyAttributes("dark-oled", "green")

	want := theme.Palette("dark-oled", "green")
	if AccentColor != want.Accent {
		t.Errorf("AccentColor = %v, want %v", AccentColor, want.Accent)
	}

	if BackgroundColor != want.Background {
		t.Errorf("BackgroundColor = %v, want %v", BackgroundColor, want.Background)
	}

	ApplyAttributes("light-sepia", "green")

	if AccentColor == want.Accent {
		t.Error("accent shade should change with mode")
	}
}

func TestApplyFuzzyFilter(t *testing.T) {
	items := []string{"light-default", "light-sepia", "dark-oled", "dark-default"}

	if got := ApplyFuzzyFilter("", items); len(got) != len(items) {
		t.Errorf("empty query: got %v", got)
	}

	got := ApplyFuzzyFilter("oled", items)
	if len(got) != 1 || got[0] != "dark-oled" {
		t.Errorf("query oled: got %v", got)
	}

	if got := ApplyFuzzyFilter("zzz", items); len(got) != 0 {
		t.Errorf("query zzz: got %v", got)
	}
}
