package app

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kyleking/lazytheme/internal/prefs"
)

func receive(t *testing.T, b *Bridge) callbackMsg {
	t.Helper()

	got := make(chan tea.Msg, 1)
	go func() { got <- b.Wait()() }()

	select {
	case msg := <-got:
		cb, ok := msg.(callbackMsg)
		if !ok {
			t.Fatalf("expected callbackMsg, got %T", msg)
		}
		return cb
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for callback")
	}

	return callbackMsg{}
}

func TestBridge_AfterFuncDeliversMessage(t *testing.T) {
	b := NewBridge()
	defer b.Close()

	ran := false
	b.AfterFunc(time.Millisecond, func() { ran = true })

	cb := receive(t, b)
	if ran {
		t.Fatal("callback must not run before Update")
	}

	cb.run()
	if !ran {
		t.Error("expected callback to run")
	}

	// A delivered timer cannot be stopped or run again.
	if cb.timer.Stop() {
		t.Error("expected Stop to report false after run")
	}
}

func TestBridge_StoppedTimerDiscarded(t *testing.T) {
	b := NewBridge()
	defer b.Close()

	ran := false
	timer := b.AfterFunc(time.Millisecond, func() { ran = true })

	cb := receive(t, b)

	// Stopped after the message was sent but before Update handled it.
	if !timer.Stop() {
		t.Error("expected Stop to report true for an unhandled delivery")
	}

	cb.run()
	if ran {
		t.Error("expected stopped callback to be discarded")
	}
}

func TestBridge_DispatchQueues(t *testing.T) {
	b := NewBridge()
	defer b.Close()

	count := 0
	b.Dispatch(func() { count++ })
	b.Dispatch(func() { count++ })

	receive(t, b).run()
	receive(t, b).run()

	if count != 2 {
		t.Errorf("expected 2 runs, got %d", count)
	}
}

func TestBridge_CloseUnblocksWait(t *testing.T) {
	b := NewBridge()
	b.Close()

	if msg := b.Wait()(); msg != nil {
		t.Errorf("expected nil after close, got %T", msg)
	}

	// Send after close must not block.
	b.Send(callbackMsg{fn: func() {}})
}

func TestModel_BridgeLoop(t *testing.T) {
	b := NewBridge()
	defer b.Close()

	m := New(Options{Storage: prefs.NewMemoryStore(), Bridge: b})

	if m.Init() == nil {
		t.Fatal("expected Init to listen on the bridge")
	}

	ran := false
	b.Dispatch(func() { ran = true })

	msg := m.Init()()
	_, cmd := m.Update(msg)

	if !ran {
		t.Error("expected dispatched callback to run in Update")
	}
	if cmd == nil {
		t.Error("expected Update to keep listening on the bridge")
	}
}
