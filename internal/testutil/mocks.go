package testutil

import (
	"sort"
	"time"

	"github.com/kyleking/lazytheme/internal/controller"
)

// FakeScheduler is a controller.Scheduler driven by a virtual clock.
type FakeScheduler struct {
	now    time.Duration
	nextID int
	timers []*FakeTimer
}

// FakeTimer is a timer created by FakeScheduler.
type FakeTimer struct {
	id      int
	at      time.Duration
	fn      func()
	stopped bool
	fired   bool
}

// NewFakeScheduler creates a scheduler at virtual time zero.
func NewFakeScheduler() *FakeScheduler {
	return &FakeScheduler{}
}

// AfterFunc implements controller.Scheduler.
func (s *FakeScheduler) AfterFunc(d time.Duration, f func()) controller.Timer {
	s.nextID++
	t := &FakeTimer{id: s.nextID, at: s.now + d, fn: f}
	s.timers = append(s.timers, t)

	return t
}

// Stop implements controller.Timer.
func (t *FakeTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}

	t.stopped = true

	return true
}

// Now returns the virtual time.
func (s *FakeScheduler) Now() time.Duration {
	return s.now
}

// Advance moves the clock forward by d, running due timers in order.
// It returns the number of callbacks that ran.
func (s *FakeScheduler) Advance(d time.Duration) int {
	target := s.now + d
	ran := 0

	for {
		due := s.due(target)
		if due == nil {
			break
		}

		s.now = due.at
		due.fired = true
		due.fn()
		ran++
	}

	s.now = target

	return ran
}

// Pending returns the number of timers that have neither fired nor been stopped.
func (s *FakeScheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}

	return n
}

func (s *FakeScheduler) due(target time.Duration) *FakeTimer {
	var candidates []*FakeTimer
	for _, t := range s.timers {
		if !t.stopped && !t.fired && t.at <= target {
			candidates = append(candidates, t)
		}
	}

	if len(candidates) == 0 {
		return nil
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].at == candidates[j].at {
			return candidates[i].id < candidates[j].id
		}
		return candidates[i].at < candidates[j].at
	})

	return candidates[0]
}

// FakeSystem is a controller.SystemPreference that tests can flip.
type FakeSystem struct {
	Dark        bool
	subscribers map[int]func(bool)
	nextID      int
}

// NewFakeSystem creates a system preference reporting dark.
func NewFakeSystem(dark bool) *FakeSystem {
	return &FakeSystem{Dark: dark, subscribers: make(map[int]func(bool))}
}

// PrefersDark implements controller.SystemPreference.
func (s *FakeSystem) PrefersDark() bool {
	return s.Dark
}

// Subscribe implements controller.SystemPreference.
func (s *FakeSystem) Subscribe(fn func(bool)) func() {
	s.nextID++
	id := s.nextID
	s.subscribers[id] = fn

	return func() { delete(s.subscribers, id) }
}

// Set changes the preference and notifies subscribers.
func (s *FakeSystem) Set(dark bool) {
	s.Dark = dark
	for _, fn := range s.subscribers {
		fn(dark)
	}
}

// Subscribers returns the number of live subscriptions.
func (s *FakeSystem) Subscribers() int {
	return len(s.subscribers)
}

// FakeOption is a selectable option.
type FakeOption struct {
	value  string
	Active bool
}

// Value implements controller.Option.
func (o *FakeOption) Value() string { return o.value }

// SetActive implements controller.Option.
func (o *FakeOption) SetActive(active bool) { o.Active = active }

// RecordingView is a controller.View that records what it was told.
type RecordingView struct {
	Themes  []*FakeOption
	Accents []*FakeOption

	ToggleChecked bool
	PanelOpen     bool
	BannerVisible bool
	BannerText    string

	Banners []string
	Hides   int
}

// NewRecordingView creates a view offering the given theme and accent options.
func NewRecordingView(themes, accents []string) *RecordingView {
	v := &RecordingView{}
	for _, t := range themes {
		v.Themes = append(v.Themes, &FakeOption{value: t})
	}
	for _, a := range accents {
		v.Accents = append(v.Accents, &FakeOption{value: a})
	}

	return v
}

// ThemeOptions implements controller.View.
func (v *RecordingView) ThemeOptions() []controller.Option {
	opts := make([]controller.Option, len(v.Themes))
	for i, o := range v.Themes {
		opts[i] = o
	}

	return opts
}

// AccentOptions implements controller.View.
func (v *RecordingView) AccentOptions() []controller.Option {
	opts := make([]controller.Option, len(v.Accents))
	for i, o := range v.Accents {
		opts[i] = o
	}

	return opts
}

// SetToggleChecked implements controller.View.
func (v *RecordingView) SetToggleChecked(checked bool) { v.ToggleChecked = checked }

// SetPanelOpen implements controller.View.
func (v *RecordingView) SetPanelOpen(open bool) { v.PanelOpen = open }

// ShowBanner implements controller.View.
func (v *RecordingView) ShowBanner(message string) {
	v.BannerVisible = true
	v.BannerText = message
	v.Banners = append(v.Banners, message)
}

// HideBanner implements controller.View.
func (v *RecordingView) HideBanner() {
	v.BannerVisible = false
	v.Hides++
}

// ActiveThemes returns the values of active theme options.
func (v *RecordingView) ActiveThemes() []string {
	return active(v.Themes)
}

// ActiveAccents returns the values of active accent options.
func (v *RecordingView) ActiveAccents() []string {
	return active(v.Accents)
}

func active(opts []*FakeOption) []string {
	var out []string
	for _, o := range opts {
		if o.Active {
			out = append(out, o.value)
		}
	}

	return out
}
