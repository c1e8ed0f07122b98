package controller

import (
	"github.com/kyleking/lazytheme/internal/document"
	"github.com/kyleking/lazytheme/internal/prefs"
	"github.com/kyleking/lazytheme/internal/ui/theme"
)

// ToggleMode flips between light and dark, remapping the variant.
func (c *Controller) ToggleMode() {
	next := theme.Toggle(c.currentTheme)

	c.previousTheme = c.currentTheme
	c.SetTheme(next)
	c.HighlightActiveTheme(next)
	c.view.SetToggleChecked(theme.IsDark(next))
	c.ShowNotification(theme.ModeLabel(next) + " mode enabled")
}

// SelectTheme applies id verbatim.
func (c *Controller) SelectTheme(id string) {
	c.previousTheme = c.currentTheme
	c.SetTheme(id)
	c.HighlightActiveTheme(id)
	c.view.SetToggleChecked(theme.IsDark(id))
	c.ShowNotification("Theme changed to " + theme.FormatName(id))
}

// SelectAccent applies accent. The theme is not touched.
func (c *Controller) SelectAccent(accent string) {
	c.SetAccentColor(accent)
	c.HighlightActiveAccent(accent)
	c.ShowNotification("Accent color changed to " + accent)
}

// Undo restores the previous theme and swaps current and previous, so a
// second Undo returns to the theme that was undone. It reports whether
// anything was restored.
func (c *Controller) Undo() bool {
	if c.previousTheme == "" {
		return false
	}

	undone := c.currentTheme
	restore := c.previousTheme

	c.SetTheme(restore)
	c.HighlightActiveTheme(restore)
	c.view.SetToggleChecked(theme.IsDark(restore))
	c.HideNotification()

	c.previousTheme = undone

	return true
}

// SetTheme applies t to the document and persists it as an explicit choice.
func (c *Controller) SetTheme(t string) {
	c.setTheme(t, prefs.SourceUser)
}

func (c *Controller) setTheme(t, source string) {
	c.doc.RemoveAttribute(document.AttrTheme)
	c.doc.SetAttribute(document.AttrTheme, t)
	c.currentTheme = t

	c.persist(prefs.KeyTheme, t)
	c.persist(prefs.KeyThemeSource, source)

	c.logger.Debug().Str("theme", t).Str("source", source).Msg("theme set")
}

// SetAccentColor applies accent to the document and persists it.
func (c *Controller) SetAccentColor(accent string) {
	c.applyAccent(accent)
	c.persist(prefs.KeyAccent, accent)

	c.logger.Debug().Str("accent", accent).Msg("accent set")
}

func (c *Controller) applyAccent(accent string) {
	c.doc.RemoveAttribute(document.AttrAccent)
	c.doc.SetAttribute(document.AttrAccent, accent)
	c.currentAccent = accent
}

// HighlightActiveTheme marks the theme option matching t active and all others inactive.
func (c *Controller) HighlightActiveTheme(t string) {
	highlight(c.view.ThemeOptions(), t)
}

// HighlightActiveAccent marks the accent option matching accent active and all others inactive.
func (c *Controller) HighlightActiveAccent(accent string) {
	highlight(c.view.AccentOptions(), accent)
}

func highlight(options []Option, value string) {
	for _, o := range options {
		o.SetActive(o.Value() == value)
	}
}

// ShowNotification displays message and hides it after the notification
// duration. A pending hide from an earlier call is cancelled first.
func (c *Controller) ShowNotification(message string) {
	if c.notifyTimer != nil {
		c.notifyTimer.Stop()
	}

	c.view.ShowBanner(message)
	c.notifyTimer = c.scheduler.AfterFunc(c.notificationDuration, c.HideNotification)
}

// HideNotification hides the banner immediately.
func (c *Controller) HideNotification() {
	c.view.HideBanner()
}
