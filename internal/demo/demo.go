// Package demo provides a demo mode that simulates the host appearance, so
// the system-following behavior can be seen without changing OS settings.
package demo

import (
	"github.com/kyleking/lazytheme/internal/exec"
	"github.com/kyleking/lazytheme/internal/ui/theme"
)

// DefaultFlipEvery is the number of polls between simulated appearance changes.
const DefaultFlipEvery = 5

// MockConfig holds configuration for demo mode.
type MockConfig struct {
	GOOS     string
	Dark     bool
	Executor *exec.MockExecutor
}

// NewMockConfig creates a demo configuration for goos starting in the given appearance.
func NewMockConfig(goos string, dark bool) *MockConfig {
	return &MockConfig{
		GOOS:     goos,
		Dark:     dark,
		Executor: exec.NewMockExecutor(),
	}
}

// SetupMockExecutor registers the appearance query for the configured OS.
func (c *MockConfig) SetupMockExecutor() {
	switch c.GOOS {
	case "darwin":
		c.Executor.AddMacAppearance(c.Dark)
	default:
		scheme := "'prefer-light'"
		if c.Dark {
			scheme = "'prefer-dark'"
		}
		c.Executor.AddGnomeColorScheme(scheme)
	}
}

// Flip switches the simulated appearance.
func (c *MockConfig) Flip() {
	c.Dark = !c.Dark
	c.Executor.Reset()
	c.SetupMockExecutor()
}

// Detector returns a detector backed by the mock executor. The environment
// override and the terminal fallback are disabled.
func (c *MockConfig) Detector() *theme.Detector {
	c.SetupMockExecutor()

	return theme.NewDetector(c.Executor,
		theme.WithGOOS(c.GOOS),
		theme.WithGetenv(func(string) string { return "" }),
		theme.WithFallback(func() bool { return false }),
	)
}

// FlippingDetector reports the simulated appearance and flips it after
// every n samples.
type FlippingDetector struct {
	config   *MockConfig
	detector *theme.Detector
	every    int
	samples  int
}

// NewFlippingDetector creates a FlippingDetector. n <= 0 uses DefaultFlipEvery.
func (c *MockConfig) NewFlippingDetector(n int) *FlippingDetector {
	if n <= 0 {
		n = DefaultFlipEvery
	}

	return &FlippingDetector{config: c, detector: c.Detector(), every: n}
}

// PrefersDark samples the simulated appearance.
func (d *FlippingDetector) PrefersDark() bool {
	dark := d.detector.PrefersDark()

	d.samples++
	if d.samples%d.every == 0 {
		d.config.Flip()
	}

	return dark
}
