package internal_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/kyleking/lazytheme/internal/controller"
	"github.com/kyleking/lazytheme/internal/demo"
	"github.com/kyleking/lazytheme/internal/document"
	"github.com/kyleking/lazytheme/internal/prefs"
	"github.com/kyleking/lazytheme/internal/testutil"
	"github.com/kyleking/lazytheme/internal/watcher"
)

type session struct {
	store     *prefs.FileStore
	watcher   *watcher.PreferenceWatcher
	doc       *document.Root
	view      *testutil.RecordingView
	scheduler *testutil.FakeScheduler
	ctrl      *controller.Controller
}

// startSession loads the preference file and initializes a controller the
// way the TUI does, with a watcher polled by hand.
func startSession(t *testing.T, path string, appearance *demo.MockConfig) *session {
	t.Helper()

	store, err := prefs.LoadFrom(path)
	if err != nil {
		t.Fatalf("load preferences: %v", err)
	}

	s := &session{
		store:     store,
		watcher:   watcher.New(appearance.Detector(), watcher.WithInterval(time.Hour)),
		doc:       document.NewRoot(),
		view:      testutil.DefaultView(),
		scheduler: testutil.NewFakeScheduler(),
	}

	s.ctrl = controller.New(controller.Options{
		Storage:   s.store,
		Document:  s.doc,
		System:    s.watcher,
		View:      s.view,
		Scheduler: s.scheduler,
	})
	s.ctrl.Init()

	t.Cleanup(func() {
		s.ctrl.Close()
		s.watcher.Stop()
	})

	return s
}

func (s *session) assertTheme(t *testing.T, want string) {
	t.Helper()

	testutil.AssertEqual(t, s.ctrl.CurrentTheme(), want)

	attr, _ := s.doc.Attribute(document.AttrTheme)
	testutil.AssertEqual(t, attr, want, "data-theme attribute")

	stored, _ := s.store.Get(prefs.KeyTheme)
	testutil.AssertEqual(t, stored, want, "persisted theme")
}

func TestEndToEnd_SystemFollowThenExplicitChoice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")
	appearance := demo.NewMockConfig("linux", false)

	s := startSession(t, path, appearance)
	s.assertTheme(t, "light-default")
	testutil.AssertTrue(t, s.ctrl.FollowsSystem(), "no explicit choice yet")

	appearance.Flip()
	testutil.AssertTrue(t, s.watcher.Poll(), "watcher sees the change")

	s.assertTheme(t, "dark-default")
	testutil.AssertTrue(t, s.view.ToggleChecked, "toggle follows system")
	testutil.AssertEqual(t, s.view.BannerText, "Dark mode applied based on system settings")

	s.scheduler.Advance(3 * time.Second)
	testutil.AssertFalse(t, s.view.BannerVisible, "banner hides after duration")

	s.ctrl.SelectTheme("dark-oled")
	s.ctrl.SelectAccent("teal")

	// A new session restores the explicit choice and ignores the system.
	restarted := startSession(t, path, appearance)
	restarted.assertTheme(t, "dark-oled")
	testutil.AssertEqual(t, restarted.ctrl.CurrentAccent(), "teal")
	testutil.AssertFalse(t, restarted.ctrl.FollowsSystem(), "explicit choice persisted")

	appearance.Flip()
	restarted.watcher.Poll()
	restarted.assertTheme(t, "dark-oled")
}

func TestEndToEnd_SystemThemeSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")
	appearance := demo.NewMockConfig("darwin", true)

	first := startSession(t, path, appearance)
	first.assertTheme(t, "dark-default")

	// The persisted theme came from the system, so a restart re-derives it.
	appearance.Flip()
	second := startSession(t, path, appearance)
	second.assertTheme(t, "light-default")
	testutil.AssertTrue(t, second.ctrl.FollowsSystem(), "system-derived theme keeps following")

	appearance.Flip()
	second.watcher.Poll()
	second.assertTheme(t, "dark-default")
}

func TestEndToEnd_ToggleAndUndoPersist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")
	appearance := demo.NewMockConfig("linux", false)

	s := startSession(t, path, appearance)
	s.ctrl.SelectTheme("light-cool")
	s.ctrl.ToggleMode()
	s.assertTheme(t, "dark-blue")

	testutil.AssertTrue(t, s.ctrl.Undo(), "undo applied")
	s.assertTheme(t, "light-cool")
	testutil.AssertEqual(t, s.ctrl.PreviousTheme(), "dark-blue")

	reloaded, err := prefs.LoadFrom(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}

	stored, _ := reloaded.Get(prefs.KeyTheme)
	testutil.AssertEqual(t, stored, "light-cool")
}
