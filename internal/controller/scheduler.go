package controller

import "time"

// TimeScheduler schedules with time.AfterFunc. Callbacks run on their own
// goroutine, so it is only suitable when nothing else touches the controller
// concurrently, such as one-shot CLI commands.
type TimeScheduler struct{}

// AfterFunc implements Scheduler.
func (TimeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// StaticPreference is a SystemPreference that never changes.
type StaticPreference bool

// PrefersDark implements SystemPreference.
func (p StaticPreference) PrefersDark() bool { return bool(p) }

// Subscribe implements SystemPreference; no change is ever delivered.
func (StaticPreference) Subscribe(func(bool)) func() { return func() {} }

// NopView discards all UI updates.
type NopView struct{}

func (NopView) ThemeOptions() []Option  { return nil }
func (NopView) AccentOptions() []Option { return nil }
func (NopView) SetToggleChecked(bool)   {}
func (NopView) SetPanelOpen(bool)       {}
func (NopView) ShowBanner(string)       {}
func (NopView) HideBanner()             {}
