// Package cli provides the lazytheme commands: the interactive TUI and
// one-shot subcommands that read and change the persisted preferences.
package cli

import (
	"fmt"
	"os"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cli/go-gh/v2/pkg/term"
	"github.com/kyleking/lazytheme/internal/app"
	"github.com/kyleking/lazytheme/internal/config"
	"github.com/kyleking/lazytheme/internal/controller"
	"github.com/kyleking/lazytheme/internal/demo"
	"github.com/kyleking/lazytheme/internal/exec"
	"github.com/kyleking/lazytheme/internal/logging"
	"github.com/kyleking/lazytheme/internal/prefs"
	"github.com/kyleking/lazytheme/internal/ui/theme"
	"github.com/kyleking/lazytheme/internal/watcher"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Version is set via ldflags at build time.
var Version = "dev"

// env holds flag values and the collaborators built from them.
type env struct {
	configPath string
	debug      bool
	ephemeral  bool
	demo       bool

	cfg      *config.Config
	logger   zerolog.Logger
	closeLog func() error
	store    controller.Storage
	detector watcher.Detector

	// Overridable for tests.
	newDetector func() watcher.Detector
	isTerminal  func() bool
}

func newEnv() *env {
	return &env{
		newDetector: func() watcher.Detector {
			return theme.NewDetector(exec.NewRealExecutor())
		},
		isTerminal: func() bool {
			return term.FromEnv().IsTerminalOutput()
		},
	}
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(newEnv())
}

func newRootCmd(e *env) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lazytheme",
		Short: "Light/dark theme preferences with variants, accents and undo",
		Long: `lazytheme manages a theme preference: light or dark mode, a theme variant
and an accent color. Choices persist between runs; without an explicit choice
the system appearance is followed.

Run without a subcommand to open the interactive picker.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return e.teardown()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, e)
		},
	}

	rootCmd.PersistentFlags().StringVar(&e.configPath, "config", "", "config file path (default "+config.Path()+")")
	rootCmd.PersistentFlags().BoolVar(&e.debug, "debug", false, "log at debug level")
	rootCmd.PersistentFlags().BoolVar(&e.ephemeral, "ephemeral", false, "keep preferences in memory only")
	rootCmd.PersistentFlags().BoolVar(&e.demo, "demo", false, "simulate a system appearance that keeps changing (implies --ephemeral)")

	rootCmd.AddCommand(
		newGetCmd(e),
		newSetCmd(e),
		newToggleCmd(e),
		newResetCmd(e),
		newListCmd(e),
	)

	return rootCmd
}

func (e *env) setup() error {
	var err error
	if e.configPath != "" {
		e.cfg, err = config.LoadFrom(e.configPath)
	} else {
		e.cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, closeLog, err := logging.New(logging.Options{Path: e.cfg.LogFile, Debug: e.debug})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		logger = zerolog.Nop()
		closeLog = func() error { return nil }
	}
	e.logger = logger
	e.closeLog = closeLog

	if e.demo {
		e.ephemeral = true
	}

	if e.ephemeral {
		e.store = prefs.NewMemoryStore()
	} else {
		store, err := prefs.Load()
		if err != nil {
			return fmt.Errorf("loading preferences: %w", err)
		}
		e.store = store
	}

	if e.demo {
		e.detector = demo.NewMockConfig(runtime.GOOS, false).NewFlippingDetector(0)
	} else {
		e.detector = e.newDetector()
	}
	e.logger.Debug().Bool("ephemeral", e.ephemeral).Bool("demo", e.demo).Msg("starting")

	return nil
}

func (e *env) teardown() error {
	if e.closeLog == nil {
		return nil
	}
	return e.closeLog()
}

func runTUI(cmd *cobra.Command, e *env) error {
	if !e.isTerminal() {
		ctrl, _ := e.newController(controller.StaticPreference(e.detector.PrefersDark()))
		defer ctrl.Close()
		return printState(cmd.OutOrStdout(), ctrl, e.store)
	}

	bridge := app.NewBridge()
	defer bridge.Close()

	w := watcher.New(e.detector,
		watcher.WithInterval(e.cfg.PollInterval),
		watcher.WithDispatcher(bridge.Dispatch),
		watcher.WithLogger(e.logger),
	)
	defer w.Stop()

	model := app.New(app.Options{
		Config:  e.cfg,
		Storage: e.store,
		System:  w,
		Bridge:  bridge,
		Logger:  &e.logger,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if m, ok := final.(app.Model); ok {
		m.Close()
	} else {
		model.Close()
	}
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}

	return nil
}
