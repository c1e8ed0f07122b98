package cli

import (
	"fmt"
	"strings"

	"github.com/kyleking/lazytheme/internal/controller"
	prefserr "github.com/kyleking/lazytheme/internal/errors"
	"github.com/kyleking/lazytheme/internal/prefs"
	"github.com/kyleking/lazytheme/internal/ui/theme"
	"github.com/spf13/cobra"
)

func newGetCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Print the effective theme and accent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, _ := e.newController(controller.StaticPreference(e.detector.PrefersDark()))
			defer ctrl.Close()

			return printState(cmd.OutOrStdout(), ctrl, e.store)
		},
	}
}

func newSetCmd(e *env) *cobra.Command {
	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Choose a theme or accent color",
	}

	setCmd.AddCommand(&cobra.Command{
		Use:       "theme <id>",
		Short:     "Select a theme such as dark-oled",
		Args:      cobra.ExactArgs(1),
		ValidArgs: theme.All(),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.TrimSpace(args[0])
			if !theme.Valid(id) {
				return &prefserr.InvalidIdentifierError{Kind: "theme", Value: id, Allowed: theme.All()}
			}

			ctrl, view := e.newController(controller.StaticPreference(e.detector.PrefersDark()))
			defer ctrl.Close()

			ctrl.SelectTheme(id)
			fmt.Fprintln(cmd.OutOrStdout(), view.banner)

			return nil
		},
	})

	setCmd.AddCommand(&cobra.Command{
		Use:   "accent <name>",
		Short: "Select an accent color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])
			if !e.cfg.HasAccent(name) {
				return &prefserr.InvalidIdentifierError{Kind: "accent", Value: name, Allowed: e.cfg.Accents}
			}

			ctrl, view := e.newController(controller.StaticPreference(e.detector.PrefersDark()))
			defer ctrl.Close()

			ctrl.SelectAccent(name)
			fmt.Fprintln(cmd.OutOrStdout(), view.banner)

			return nil
		},
	})

	return setCmd
}

func newToggleCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Switch between light and dark mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, view := e.newController(controller.StaticPreference(e.detector.PrefersDark()))
			defer ctrl.Close()

			ctrl.ToggleMode()
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", view.banner, ctrl.CurrentTheme())

			return nil
		},
	}
}

func newResetCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Forget saved preferences and follow the system appearance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, key := range []string{prefs.KeyTheme, prefs.KeyThemeSource, prefs.KeyAccent} {
				if err := e.store.Delete(key); err != nil {
					return fmt.Errorf("resetting %s: %w", key, err)
				}
			}

			dark := e.detector.PrefersDark()
			e.logger.Info().Bool("prefers_dark", dark).Msg("preferences reset")
			fmt.Fprintf(cmd.OutOrStdout(), "Preferences reset; following system (%s)\n", theme.Mode(theme.DefaultFor(dark)))

			return nil
		},
	}
}

func newListCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List theme and accent options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, _ := e.newController(controller.StaticPreference(e.detector.PrefersDark()))
			defer ctrl.Close()

			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "Themes:")
			for _, id := range e.cfg.Themes {
				fmt.Fprintf(out, "  %s %-14s %s\n", marker(id == ctrl.CurrentTheme()), id, theme.FormatName(id))
			}

			fmt.Fprintln(out, "Accents:")
			for _, name := range e.cfg.Accents {
				fmt.Fprintf(out, "  %s %s\n", marker(name == ctrl.CurrentAccent()), name)
			}

			return nil
		},
	}
}

func marker(active bool) string {
	if active {
		return "*"
	}
	return " "
}
