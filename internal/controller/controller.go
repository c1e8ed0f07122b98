// Package controller implements the theme preference controller: it owns the
// current theme, previous theme and accent, mirrors them to storage and to the
// document root, and drives the toggle, options panel and notification banner
// through the View it is given.
package controller

import (
	"time"

	"github.com/kyleking/lazytheme/internal/document"
	"github.com/kyleking/lazytheme/internal/prefs"
	"github.com/kyleking/lazytheme/internal/ui/theme"
	"github.com/rs/zerolog"
)

// Default timings.
const (
	DefaultNotificationDuration = 3 * time.Second
	DefaultOutsideClickDelay    = 100 * time.Millisecond
)

// Storage is durable key-value storage for the persisted entries.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// Document is the root element whose attributes carry theme and accent.
type Document interface {
	SetAttribute(name, value string)
	RemoveAttribute(name string)
}

// SystemPreference is the read-only "prefers dark" signal of the host.
type SystemPreference interface {
	PrefersDark() bool
	// Subscribe registers fn for changes and returns a function that removes it.
	Subscribe(fn func(prefersDark bool)) (unsubscribe func())
}

// Option is a selectable theme or accent element.
type Option interface {
	Value() string
	SetActive(active bool)
}

// View is the UI binding the controller drives.
type View interface {
	ThemeOptions() []Option
	AccentOptions() []Option
	SetToggleChecked(checked bool)
	SetPanelOpen(open bool)
	ShowBanner(message string)
	HideBanner()
}

// Timer is a pending scheduled call.
type Timer interface {
	// Stop prevents the call from running. It reports whether the call was stopped
	// before it ran.
	Stop() bool
}

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Options configures a Controller.
type Options struct {
	Storage   Storage
	Document  Document
	System    SystemPreference
	View      View
	Scheduler Scheduler
	Logger    *zerolog.Logger

	NotificationDuration time.Duration
	OutsideClickDelay    time.Duration
}

// Controller is the theme preference controller. It is not safe for
// concurrent use; every method must be called from the UI goroutine.
type Controller struct {
	storage   Storage
	doc       Document
	system    SystemPreference
	view      View
	scheduler Scheduler
	logger    zerolog.Logger

	notificationDuration time.Duration
	outsideClickDelay    time.Duration

	currentTheme  string
	previousTheme string
	currentAccent string

	notifyTimer Timer

	panelOpen    bool
	outsideArmed bool
	armTimer     Timer

	unsubscribe func()
}

// New creates a controller. Missing collaborators are replaced with inert
// defaults so the controller can run headless.
func New(opts Options) *Controller {
	c := &Controller{
		storage:              opts.Storage,
		doc:                  opts.Document,
		system:               opts.System,
		view:                 opts.View,
		scheduler:            opts.Scheduler,
		notificationDuration: opts.NotificationDuration,
		outsideClickDelay:    opts.OutsideClickDelay,
		currentTheme:         theme.LightDefault,
		currentAccent:        theme.DefaultAccent,
	}

	if c.storage == nil {
		c.storage = prefs.NewMemoryStore()
	}
	if c.doc == nil {
		c.doc = document.NewRoot()
	}
	if c.system == nil {
		c.system = StaticPreference(false)
	}
	if c.view == nil {
		c.view = NopView{}
	}
	if c.scheduler == nil {
		c.scheduler = TimeScheduler{}
	}
	if opts.Logger != nil {
		c.logger = *opts.Logger
	} else {
		c.logger = zerolog.Nop()
	}
	if c.notificationDuration <= 0 {
		c.notificationDuration = DefaultNotificationDuration
	}
	if c.outsideClickDelay <= 0 {
		c.outsideClickDelay = DefaultOutsideClickDelay
	}

	return c
}

// Init applies the persisted or system-derived theme, the persisted accent,
// and subscribes to system preference changes until Close.
func (c *Controller) Init() {
	if c.explicitTheme() {
		saved, _ := c.storage.Get(prefs.KeyTheme)
		c.setTheme(saved, prefs.SourceUser)
		c.HighlightActiveTheme(saved)
		c.logger.Debug().Str("theme", saved).Msg("applied saved theme")
	} else {
		// A theme persisted from the system is re-derived so it tracks the
		// current preference.
		prefersDark := c.system.PrefersDark()
		t := theme.DefaultFor(prefersDark)
		c.setTheme(t, prefs.SourceSystem)
		c.HighlightActiveTheme(t)
		c.logger.Debug().Str("theme", t).Bool("prefers_dark", prefersDark).Msg("applied system theme")
	}

	c.view.SetToggleChecked(theme.IsDark(c.currentTheme))

	if saved, ok := c.storage.Get(prefs.KeyAccent); ok && saved != "" {
		c.SetAccentColor(saved)
		c.HighlightActiveAccent(saved)
	} else {
		// Mirror the in-memory default without recording a preference.
		c.applyAccent(c.currentAccent)
		c.HighlightActiveAccent(c.currentAccent)
	}

	if c.unsubscribe == nil {
		c.unsubscribe = c.system.Subscribe(c.handleSystemChange)
	}
}

// Close stops listening for system preference changes and cancels pending timers.
func (c *Controller) Close() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}

	if c.notifyTimer != nil {
		c.notifyTimer.Stop()
		c.notifyTimer = nil
	}

	if c.armTimer != nil {
		c.armTimer.Stop()
		c.armTimer = nil
	}
}

// CurrentTheme returns the applied theme identifier.
func (c *Controller) CurrentTheme() string { return c.currentTheme }

// PreviousTheme returns the theme undo would restore, or "".
func (c *Controller) PreviousTheme() string { return c.previousTheme }

// CurrentAccent returns the applied accent.
func (c *Controller) CurrentAccent() string { return c.currentAccent }

// PanelOpen reports whether the options panel is visible.
func (c *Controller) PanelOpen() bool { return c.panelOpen }

// FollowsSystem reports whether system preference changes will be applied.
func (c *Controller) FollowsSystem() bool { return !c.explicitTheme() }

func (c *Controller) handleSystemChange(prefersDark bool) {
	if c.explicitTheme() {
		c.logger.Debug().Bool("prefers_dark", prefersDark).Msg("ignoring system change, explicit theme set")
		return
	}

	t := theme.DefaultFor(prefersDark)
	c.setTheme(t, prefs.SourceSystem)
	c.HighlightActiveTheme(t)
	c.view.SetToggleChecked(prefersDark)
	c.ShowNotification(theme.ModeLabel(t) + " mode applied based on system settings")
}

// explicitTheme reports whether the persisted theme was chosen by the user.
func (c *Controller) explicitTheme() bool {
	saved, ok := c.storage.Get(prefs.KeyTheme)
	if !ok || saved == "" {
		return false
	}

	source, _ := c.storage.Get(prefs.KeyThemeSource)

	return source != prefs.SourceSystem
}

func (c *Controller) persist(key, value string) {
	if err := c.storage.Set(key, value); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Str("value", value).Msg("failed to persist preference")
	}
}
