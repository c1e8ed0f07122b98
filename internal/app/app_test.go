package app

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kyleking/lazytheme/internal/controller"
	"github.com/kyleking/lazytheme/internal/document"
	"github.com/kyleking/lazytheme/internal/prefs"
	"github.com/kyleking/lazytheme/internal/testutil"
	"github.com/kyleking/lazytheme/internal/ui/modal"
)

type testEnv struct {
	store     *prefs.MemoryStore
	system    *testutil.FakeSystem
	scheduler *testutil.FakeScheduler
	copied    []string
}

func newTestModel(t *testing.T, entries map[string]string, dark bool) (Model, *testEnv) {
	t.Helper()

	env := &testEnv{
		store:     testutil.StoreWith(entries),
		system:    testutil.NewFakeSystem(dark),
		scheduler: testutil.NewFakeScheduler(),
	}

	m := New(Options{
		Storage:   env.store,
		System:    env.system,
		Scheduler: env.scheduler,
		Clipboard: func(s string) error {
			env.copied = append(env.copied, s)
			return nil
		},
	})

	result, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	return result.(Model), env
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()

	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "shift+tab":
			msg = tea.KeyMsg{Type: tea.KeyShiftTab}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "space":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEscape}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}

		result, _ := m.Update(msg)
		m = result.(Model)
	}

	return m
}

func click(t *testing.T, m Model, x, y int) Model {
	t.Helper()

	result, _ := m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	return result.(Model)
}

func TestNew_FollowsSystem(t *testing.T) {
	m, env := newTestModel(t, nil, true)

	testutil.AssertEqual(t, m.Controller().CurrentTheme(), "dark-default")
	testutil.AssertEqual(t, m.Page().ActiveTheme(), "dark-default")
	testutil.AssertEqual(t, m.Page().ActiveAccent(), "blue")
	testutil.AssertTrue(t, m.Page().ToggleChecked(), "toggle checked in dark mode")

	got, _ := m.Document().Attribute(document.AttrTheme)
	testutil.AssertEqual(t, got, "dark-default")

	source, _ := env.store.Get(prefs.KeyThemeSource)
	testutil.AssertEqual(t, source, prefs.SourceSystem)

	if m.Focus() != controller.ControlModeToggle {
		t.Errorf("expected initial focus on mode toggle, got %d", m.Focus())
	}
}

func TestNew_SavedPreferences(t *testing.T) {
	m, _ := newTestModel(t, map[string]string{
		prefs.KeyTheme:  "light-sepia",
		prefs.KeyAccent: "teal",
	}, true)

	testutil.AssertEqual(t, m.Page().ActiveTheme(), "light-sepia")
	testutil.AssertEqual(t, m.Page().ActiveAccent(), "teal")
	testutil.AssertFalse(t, m.Page().ToggleChecked(), "toggle unchecked in light mode")
}

func TestUpdate_ToggleKey(t *testing.T) {
	m, env := newTestModel(t, nil, false)

	m = press(t, m, "t")

	testutil.AssertEqual(t, m.Controller().CurrentTheme(), "dark-default")
	testutil.AssertTrue(t, m.Page().ToggleChecked(), "toggle checked")

	text, visible := m.Page().Banner()
	testutil.AssertTrue(t, visible, "banner visible")
	testutil.AssertEqual(t, text, "Dark mode enabled")

	stored, _ := env.store.Get(prefs.KeyTheme)
	testutil.AssertEqual(t, stored, "dark-default")
}

func TestUpdate_BannerAutoHides(t *testing.T) {
	m, env := newTestModel(t, nil, false)

	m = press(t, m, "t")
	env.scheduler.Advance(2999 * time.Millisecond)

	_, visible := m.Page().Banner()
	testutil.AssertTrue(t, visible, "banner still visible before timeout")

	env.scheduler.Advance(time.Millisecond)

	_, visible = m.Page().Banner()
	testutil.AssertFalse(t, visible, "banner hidden after timeout")
}

func TestUpdate_FocusCycle(t *testing.T) {
	m, _ := newTestModel(t, nil, false)

	m = press(t, m, "tab")
	if m.Focus() != controller.ControlOptionsTrigger {
		t.Fatalf("expected focus on trigger, got %d", m.Focus())
	}

	// Panel closed: focus wraps back to the toggle.
	m = press(t, m, "tab")
	if m.Focus() != controller.ControlModeToggle {
		t.Fatalf("expected focus on toggle, got %d", m.Focus())
	}

	m = press(t, m, "shift+tab")
	if m.Focus() != controller.ControlOptionsTrigger {
		t.Errorf("expected focus on trigger after shift+tab, got %d", m.Focus())
	}
}

func TestUpdate_ActivateFocusedControl(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"enter", "enter"},
		{"space", "space"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t, nil, false)

			m = press(t, m, tt.key)
			testutil.AssertEqual(t, m.Controller().CurrentTheme(), "dark-default")

			m = press(t, m, "tab", tt.key)
			testutil.AssertTrue(t, m.Page().PanelOpen(), "panel opened from trigger")
		})
	}
}

func TestUpdate_SelectThemeFromPanel(t *testing.T) {
	m, env := newTestModel(t, nil, false)

	m = press(t, m, "o")
	testutil.AssertTrue(t, m.Page().PanelOpen(), "panel open")

	if m.Focus() != controller.ControlPanel {
		t.Fatalf("expected focus on panel, got %d", m.Focus())
	}

	// Cursor starts on the active light-default; two down is light-cool.
	m = press(t, m, "down", "down", "enter")

	testutil.AssertEqual(t, m.Controller().CurrentTheme(), "light-cool")
	testutil.AssertEqual(t, m.Controller().PreviousTheme(), "light-default")
	testutil.AssertEqual(t, m.Page().ActiveTheme(), "light-cool")

	text, _ := m.Page().Banner()
	testutil.AssertEqual(t, text, "Theme changed to Light Cool")

	stored, _ := env.store.Get(prefs.KeyTheme)
	testutil.AssertEqual(t, stored, "light-cool")
}

func TestUpdate_SelectAccentFromPanel(t *testing.T) {
	m, env := newTestModel(t, nil, false)

	m = press(t, m, "o", "right", "down", "enter")

	testutil.AssertEqual(t, m.Controller().CurrentAccent(), "green")
	testutil.AssertEqual(t, m.Controller().CurrentTheme(), "light-default")

	accent, _ := m.Document().Attribute(document.AttrAccent)
	testutil.AssertEqual(t, accent, "green")

	stored, _ := env.store.Get(prefs.KeyAccent)
	testutil.AssertEqual(t, stored, "green")

	text, _ := m.Page().Banner()
	testutil.AssertEqual(t, text, "Accent color changed to green")
}

func TestUpdate_EscapeClosesPanel(t *testing.T) {
	m, _ := newTestModel(t, nil, false)

	m = press(t, m, "o", "esc")

	testutil.AssertFalse(t, m.Page().PanelOpen(), "panel closed")

	if m.Focus() != controller.ControlOptionsTrigger {
		t.Errorf("expected focus back on trigger, got %d", m.Focus())
	}
}

func TestUpdate_Undo(t *testing.T) {
	m, _ := newTestModel(t, nil, false)

	m = press(t, m, "t", "u")

	testutil.AssertEqual(t, m.Controller().CurrentTheme(), "light-default")
	testutil.AssertEqual(t, m.Controller().PreviousTheme(), "dark-default")

	_, visible := m.Page().Banner()
	testutil.AssertFalse(t, visible, "banner hidden after undo")
}

func TestUpdate_Copy(t *testing.T) {
	m, env := newTestModel(t, nil, true)

	m = press(t, m, "y")

	if len(env.copied) != 1 {
		t.Fatalf("expected one copy, got %d", len(env.copied))
	}
	testutil.AssertEqual(t, env.copied[0], `data-theme="dark-default" data-accent="blue"`)
	testutil.AssertContains(t, m.status, "Copied")
}

func TestUpdate_CopyFailure(t *testing.T) {
	m, _ := newTestModel(t, nil, false)
	m.copy = func(string) error { return errors.New("no clipboard") }

	m = press(t, m, "y")

	testutil.AssertEqual(t, m.status, "Copy failed")
}

func TestUpdate_FilterResult(t *testing.T) {
	m, _ := newTestModel(t, nil, false)

	m = press(t, m, "/")
	if !m.modalStack.HasActive() {
		t.Fatal("expected filter modal")
	}

	m = press(t, m, "o", "l", "e", "d")
	result, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = result.(Model)

	if cmd == nil {
		t.Fatal("expected command from filter")
	}

	result, _ = m.Update(cmd())
	m = result.(Model)

	testutil.AssertEqual(t, m.Controller().CurrentTheme(), "dark-oled")
	testutil.AssertFalse(t, m.modalStack.HasActive(), "filter modal closed")
}

func TestUpdate_FilterCancelled(t *testing.T) {
	m, _ := newTestModel(t, nil, false)

	result, _ := m.Update(modal.FilterResultMsg{Cancelled: true})
	m = result.(Model)

	testutil.AssertEqual(t, m.Controller().CurrentTheme(), "light-default")
}

func TestUpdate_SystemChange(t *testing.T) {
	m, env := newTestModel(t, nil, false)

	env.system.Set(true)

	testutil.AssertEqual(t, m.Controller().CurrentTheme(), "dark-default")
	testutil.AssertTrue(t, m.Page().ToggleChecked(), "toggle follows system")

	text, _ := m.Page().Banner()
	testutil.AssertEqual(t, text, "Dark mode applied based on system settings")

	// An explicit choice stops the system from overriding it.
	m = press(t, m, "t")
	env.system.Set(false)

	testutil.AssertEqual(t, m.Controller().CurrentTheme(), "light-default")
	env.system.Set(true)
	testutil.AssertEqual(t, m.Controller().CurrentTheme(), "light-default")
}

func TestMouse_ClickModeToggle(t *testing.T) {
	m, _ := newTestModel(t, nil, false)

	_, r := m.render()
	m = click(t, m, r.toggle.X, r.toggle.Y)

	testutil.AssertEqual(t, m.Controller().CurrentTheme(), "dark-default")
}

func TestMouse_OutsideClickClosesArmedPanel(t *testing.T) {
	m, env := newTestModel(t, nil, false)

	_, r := m.render()
	m = click(t, m, r.trigger.X, r.trigger.Y)
	testutil.AssertTrue(t, m.Page().PanelOpen(), "panel open after trigger click")

	// Listener is not armed yet.
	m = click(t, m, 0, 0)
	testutil.AssertTrue(t, m.Page().PanelOpen(), "panel stays open before delay")

	env.scheduler.Advance(100 * time.Millisecond)

	m = click(t, m, 0, 0)
	testutil.AssertFalse(t, m.Page().PanelOpen(), "panel closed by outside click")
}

func TestMouse_ClickPanelOption(t *testing.T) {
	m, env := newTestModel(t, nil, false)

	m = press(t, m, "o")
	env.scheduler.Advance(100 * time.Millisecond)

	_, r := m.render()
	testutil.AssertTrue(t, r.panelOpen, "panel region recorded")

	// Row of the second theme option.
	m = click(t, m, r.themes.X+2, r.themes.Y+listHeaderRows+1)

	testutil.AssertEqual(t, m.Controller().CurrentTheme(), "light-sepia")
	testutil.AssertTrue(t, m.Page().PanelOpen(), "click inside panel keeps it open")
}

func TestMouse_IgnoresNonLeftPress(t *testing.T) {
	m, _ := newTestModel(t, nil, false)

	_, r := m.render()
	result, _ := m.Update(tea.MouseMsg{X: r.toggle.X, Y: r.toggle.Y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m = result.(Model)

	testutil.AssertEqual(t, m.Controller().CurrentTheme(), "light-default")
}

func TestView(t *testing.T) {
	m := New(Options{Storage: prefs.NewMemoryStore(), Scheduler: testutil.NewFakeScheduler()})
	testutil.AssertEqual(t, m.View(), "Loading...")

	result, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = result.(Model)

	view := m.View()
	testutil.AssertContains(t, view, "lazytheme")
	testutil.AssertContains(t, view, "[☀ Light]")
	testutil.AssertContains(t, view, `data-theme="light-default"`)

	m = press(t, m, "t", "o")
	view = m.View()
	testutil.AssertContains(t, view, "[☾ Dark]")
	testutil.AssertContains(t, view, "Dark mode enabled")
	testutil.AssertContains(t, view, "Dark Oled")
	testutil.AssertContains(t, view, "Accents")
}

func TestView_HelpModal(t *testing.T) {
	m, _ := newTestModel(t, nil, false)

	m = press(t, m, "?")
	testutil.AssertTrue(t, m.modalStack.HasActive(), "help modal open")
	testutil.AssertTrue(t, strings.Contains(m.View(), "Keyboard Shortcuts"), "help rendered")

	m = press(t, m, "esc")
	testutil.AssertFalse(t, m.modalStack.HasActive(), "help modal closed")
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, nil, false)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}

	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}
