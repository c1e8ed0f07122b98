package watcher

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// PollInterval is the default interval between detector polls.
const PollInterval = 2 * time.Second

// PreferenceWatcher polls a Detector and implements controller.SystemPreference.
type PreferenceWatcher struct {
	detector Detector
	interval time.Duration
	dispatch Dispatcher
	logger   zerolog.Logger

	mu          sync.RWMutex
	current     bool
	subscribers map[int]func(bool)
	nextID      int

	ctx       context.Context
	cancel    context.CancelFunc
	ticker    *time.Ticker
	isPolling bool
	pollingMu sync.Mutex
	stopOnce  sync.Once
	wg        sync.WaitGroup
}

// Option configures a PreferenceWatcher.
type Option func(*PreferenceWatcher)

// WithInterval sets the poll interval.
func WithInterval(d time.Duration) Option {
	return func(w *PreferenceWatcher) {
		if d > 0 {
			w.interval = d
		}
	}
}

// WithDispatcher routes subscriber callbacks through dispatch.
func WithDispatcher(dispatch Dispatcher) Option {
	return func(w *PreferenceWatcher) { w.dispatch = dispatch }
}

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(w *PreferenceWatcher) { w.logger = logger }
}

// New creates a watcher and samples the detector once.
func New(detector Detector, opts ...Option) *PreferenceWatcher {
	ctx, cancel := context.WithCancel(context.Background())

	w := &PreferenceWatcher{
		detector:    detector,
		interval:    PollInterval,
		dispatch:    func(fn func()) { fn() },
		logger:      zerolog.Nop(),
		subscribers: make(map[int]func(bool)),
		ctx:         ctx,
		cancel:      cancel,
	}

	for _, opt := range opts {
		opt(w)
	}

	w.current = detector.PrefersDark()

	return w
}

// PrefersDark returns the last sampled preference.
func (w *PreferenceWatcher) PrefersDark() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.current
}

// Subscribe registers fn for changes and starts polling.
func (w *PreferenceWatcher) Subscribe(fn func(prefersDark bool)) func() {
	w.mu.Lock()
	w.nextID++
	id := w.nextID
	w.subscribers[id] = fn
	w.mu.Unlock()

	w.ensurePolling()

	return func() {
		w.mu.Lock()
		delete(w.subscribers, id)
		w.mu.Unlock()
	}
}

// Poll samples the detector and notifies subscribers if the preference
// changed. It reports whether a change was seen.
func (w *PreferenceWatcher) Poll() bool {
	dark := w.detector.PrefersDark()

	w.mu.Lock()
	if dark == w.current {
		w.mu.Unlock()
		return false
	}

	w.current = dark
	subscribers := make([]func(bool), 0, len(w.subscribers))
	for _, fn := range w.subscribers {
		subscribers = append(subscribers, fn)
	}
	w.mu.Unlock()

	w.logger.Info().Bool("prefers_dark", dark).Int("subscribers", len(subscribers)).Msg("system appearance changed")

	for _, fn := range subscribers {
		fn := fn
		w.dispatch(func() { fn(dark) })
	}

	return true
}

// Stop stops polling. Safe to call multiple times.
func (w *PreferenceWatcher) Stop() {
	w.stopOnce.Do(func() {
		w.cancel()

		w.pollingMu.Lock()
		if w.ticker != nil {
			w.ticker.Stop()
		}
		w.pollingMu.Unlock()

		w.wg.Wait()
	})
}

func (w *PreferenceWatcher) ensurePolling() {
	w.pollingMu.Lock()
	defer w.pollingMu.Unlock()

	if w.isPolling || w.ctx.Err() != nil {
		return
	}

	w.isPolling = true

	w.ticker = time.NewTicker(w.interval)
	w.wg.Add(1)

	go w.pollLoop(w.ticker)
}

func (w *PreferenceWatcher) pollLoop(ticker *time.Ticker) {
	defer w.wg.Done()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			w.Poll()
		}
	}
}
