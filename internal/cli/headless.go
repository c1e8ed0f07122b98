package cli

import (
	"fmt"
	"io"

	"github.com/kyleking/lazytheme/internal/controller"
	"github.com/kyleking/lazytheme/internal/prefs"
	"github.com/kyleking/lazytheme/internal/ui/theme"
)

// headlessView records what the controller would have shown.
type headlessView struct {
	controller.NopView
	banner string
}

func (v *headlessView) ShowBanner(message string) { v.banner = message }

func (v *headlessView) HideBanner() {}

func (e *env) newController(system controller.SystemPreference) (*controller.Controller, *headlessView) {
	view := &headlessView{}

	ctrl := controller.New(controller.Options{
		Storage:              e.store,
		System:               system,
		View:                 view,
		Logger:               &e.logger,
		NotificationDuration: e.cfg.NotificationDuration,
		OutsideClickDelay:    e.cfg.OutsideClickDelay,
	})
	ctrl.Init()

	return ctrl, view
}

func printState(w io.Writer, ctrl *controller.Controller, store controller.Storage) error {
	current := ctrl.CurrentTheme()

	source := prefs.SourceUser
	if ctrl.FollowsSystem() {
		source = prefs.SourceSystem
	}

	_, err := fmt.Fprintf(w, "theme:  %s (%s)\nmode:   %s\naccent: %s\nsource: %s\n",
		current, theme.FormatName(current), theme.Mode(current), ctrl.CurrentAccent(), source)
	if err != nil {
		return err
	}

	if fs, ok := store.(*prefs.FileStore); ok {
		_, err = fmt.Fprintf(w, "file:   %s\n", fs.Path())
	}

	return err
}
