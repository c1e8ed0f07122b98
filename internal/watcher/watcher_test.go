package watcher_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/kyleking/lazytheme/internal/watcher"
)

type fakeDetector struct {
	dark  atomic.Bool
	calls atomic.Int32
}

func (d *fakeDetector) PrefersDark() bool {
	d.calls.Add(1)
	return d.dark.Load()
}

func TestNew_SamplesOnce(t *testing.T) {
	det := &fakeDetector{}
	det.dark.Store(true)

	w := watcher.New(det)
	defer w.Stop()

	if !w.PrefersDark() {
		t.Error("expected initial sample to be dark")
	}

	if det.calls.Load() != 1 {
		t.Errorf("detector calls: got %d, want 1", det.calls.Load())
	}
}

func TestPoll_NotifiesOnChange(t *testing.T) {
	det := &fakeDetector{}

	w := watcher.New(det, watcher.WithInterval(time.Hour))
	defer w.Stop()

	var got []bool
	w.Subscribe(func(dark bool) { got = append(got, dark) })

	if w.Poll() {
		t.Error("Poll reported change without one")
	}

	det.dark.Store(true)

	if !w.Poll() {
		t.Error("Poll missed change to dark")
	}

	if w.Poll() {
		t.Error("Poll reported the same change twice")
	}

	if len(got) != 1 || !got[0] {
		t.Errorf("notifications: got %v, want [true]", got)
	}

	if !w.PrefersDark() {
		t.Error("PrefersDark should reflect the last sample")
	}
}

func TestSubscribe_Unsubscribe(t *testing.T) {
	det := &fakeDetector{}

	w := watcher.New(det, watcher.WithInterval(time.Hour))
	defer w.Stop()

	calls := 0
	unsubscribe := w.Subscribe(func(bool) { calls++ })
	unsubscribe()

	det.dark.Store(true)
	w.Poll()

	if calls != 0 {
		t.Errorf("unsubscribed callback called %d times", calls)
	}
}

func TestDispatcher(t *testing.T) {
	det := &fakeDetector{}

	var queued []func()
	w := watcher.New(det,
		watcher.WithInterval(time.Hour),
		watcher.WithDispatcher(func(fn func()) { queued = append(queued, fn) }),
	)
	defer w.Stop()

	var got []bool
	w.Subscribe(func(dark bool) { got = append(got, dark) })

	det.dark.Store(true)
	w.Poll()

	if len(got) != 0 {
		t.Fatal("callback ran before dispatch")
	}

	if len(queued) != 1 {
		t.Fatalf("queued: got %d, want 1", len(queued))
	}

	queued[0]()

	if len(got) != 1 || !got[0] {
		t.Errorf("notifications: got %v", got)
	}
}

func TestPolling_Ticker(t *testing.T) {
	det := &fakeDetector{}

	w := watcher.New(det, watcher.WithInterval(5*time.Millisecond))
	defer w.Stop()

	var mu sync.Mutex
	changes := make(chan bool, 1)

	w.Subscribe(func(dark bool) {
		mu.Lock()
		defer mu.Unlock()
		select {
		case changes <- dark:
		default:
		}
	})

	det.dark.Store(true)

	select {
	case dark := <-changes:
		if !dark {
			t.Error("expected dark notification")
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for poll")
	}
}

func TestStop_Idempotent(t *testing.T) {
	w := watcher.New(&fakeDetector{}, watcher.WithInterval(time.Millisecond))
	w.Subscribe(func(bool) {})

	w.Stop()
	w.Stop()

	// Subscribing after Stop must not restart polling.
	w.Subscribe(func(bool) {})
}
