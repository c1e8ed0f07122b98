package app

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kyleking/lazytheme/internal/controller"
)

// bridgeBuffer bounds the number of undelivered callbacks.
const bridgeBuffer = 16

// callbackMsg carries a deferred call back onto the bubbletea goroutine.
type callbackMsg struct {
	timer *bridgeTimer
	fn    func()
}

// Bridge delivers timer expirations and watcher notifications to the
// program as messages, so the controller is only ever touched from Update.
type Bridge struct {
	msgs      chan tea.Msg
	done      chan struct{}
	closeOnce sync.Once
}

// NewBridge creates a bridge. Messages queue until the program listens.
func NewBridge() *Bridge {
	return &Bridge{
		msgs: make(chan tea.Msg, bridgeBuffer),
		done: make(chan struct{}),
	}
}

// Send queues msg for the program. It is dropped once the bridge is closed.
func (b *Bridge) Send(msg tea.Msg) {
	select {
	case b.msgs <- msg:
	case <-b.done:
	}
}

// Wait returns a command that delivers the next queued message.
func (b *Bridge) Wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-b.msgs:
			return msg
		case <-b.done:
			return nil
		}
	}
}

// Close releases goroutines blocked in Send or Wait.
func (b *Bridge) Close() {
	b.closeOnce.Do(func() { close(b.done) })
}

// Dispatch runs fn on the bubbletea goroutine. It satisfies watcher.Dispatcher.
func (b *Bridge) Dispatch(fn func()) {
	b.Send(callbackMsg{fn: fn})
}

// AfterFunc implements controller.Scheduler.
func (b *Bridge) AfterFunc(d time.Duration, f func()) controller.Timer {
	t := &bridgeTimer{}
	t.timer = time.AfterFunc(d, func() {
		b.Send(callbackMsg{timer: t, fn: f})
	})
	return t
}

// bridgeTimer state is only read and written on the bubbletea goroutine.
type bridgeTimer struct {
	timer   *time.Timer
	stopped bool
	ran     bool
}

// Stop implements controller.Timer. A delivery already in flight is
// discarded when it reaches Update.
func (t *bridgeTimer) Stop() bool {
	if t.stopped || t.ran {
		return false
	}
	t.stopped = true
	t.timer.Stop()
	return true
}

func (msg callbackMsg) run() {
	if msg.timer != nil {
		if msg.timer.stopped || msg.timer.ran {
			return
		}
		msg.timer.ran = true
	}
	msg.fn()
}
