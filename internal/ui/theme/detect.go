// Package theme provides theme identifiers, palettes and system dark-mode
// detection for lazytheme.
package theme

import (
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/kyleking/lazytheme/internal/exec"
)

// AppearanceEnv overrides system detection when set to "dark" or "light".
const AppearanceEnv = "LAZYTHEME_APPEARANCE"

// Detector answers "does the system prefer a dark appearance?".
type Detector struct {
	executor exec.CommandExecutor
	goos     string
	getenv   func(string) string

	fallbackOnce sync.Once
	fallbackFn   func() bool
	fallback     bool
}

// DetectorOption configures a Detector.
type DetectorOption func(*Detector)

// WithGOOS overrides the operating system used to pick the query command.
func WithGOOS(goos string) DetectorOption {
	return func(d *Detector) { d.goos = goos }
}

// WithGetenv overrides environment lookup.
func WithGetenv(getenv func(string) string) DetectorOption {
	return func(d *Detector) { d.getenv = getenv }
}

// WithFallback overrides the check used when the OS query is inconclusive.
// It is evaluated at most once per Detector.
func WithFallback(fn func() bool) DetectorOption {
	return func(d *Detector) { d.fallbackFn = fn }
}

// NewDetector creates a Detector that queries the OS through executor.
func NewDetector(executor exec.CommandExecutor, opts ...DetectorOption) *Detector {
	d := &Detector{
		executor:   executor,
		goos:       runtime.GOOS,
		getenv:     os.Getenv,
		fallbackFn: lipgloss.HasDarkBackground,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// PrefersDark returns the current system preference.
func (d *Detector) PrefersDark() bool {
	if env := d.getenv(AppearanceEnv); env != "" {
		switch strings.ToLower(env) {
		case "dark":
			return true
		case "light":
			return false
		}
	}

	if dark, ok := d.queryOS(); ok {
		return dark
	}

	// Terminal background queries write to the tty, so only ask once.
	d.fallbackOnce.Do(func() {
		if d.fallbackFn != nil {
			d.fallback = d.fallbackFn()
		}
	})

	return d.fallback
}

func (d *Detector) queryOS() (dark bool, ok bool) {
	if d.executor == nil {
		return false, false
	}

	switch d.goos {
	case "darwin":
		stdout, _, err := d.executor.Execute("defaults", "read", "-g", "AppleInterfaceStyle")
		if err != nil {
			// The key is absent in light mode.
			return false, true
		}
		return strings.EqualFold(strings.TrimSpace(stdout), "dark"), true

	case "linux", "freebsd", "openbsd":
		stdout, _, err := d.executor.Execute("gsettings", "get", "org.gnome.desktop.interface", "color-scheme")
		if err != nil {
			return false, false
		}

		value := strings.Trim(strings.TrimSpace(stdout), "'")
		switch value {
		case "prefer-dark":
			return true, true
		case "prefer-light", "default":
			return false, true
		}
	}

	return false, false
}
