package exec

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
	"testing"
)

// CommandExecutor defines an interface for executing external commands.
// This allows us to mock command execution in tests.
type CommandExecutor interface {
	// Execute runs a command with the given name and arguments.
	// Returns stdout, stderr, and any error.
	Execute(name string, args ...string) (stdout string, stderr string, err error)
}

// RealExecutor executes actual system commands.
type RealExecutor struct{}

// NewRealExecutor creates an executor that runs real commands.
func NewRealExecutor() *RealExecutor {
	return &RealExecutor{}
}

// Execute runs the actual command using os/exec.
// It refuses to change the desktop appearance settings while tests are running.
func (e *RealExecutor) Execute(name string, args ...string) (string, string, error) {
	if testing.Testing() && isAppearanceMutation(name, args) {
		panic(fmt.Sprintf(
			"SAFETY VIOLATION: Attempted to change system appearance during test: %s %s\n"+
				"Use exec.MockExecutor in your test instead.",
			name, strings.Join(args, " "),
		))
	}

	cmd := exec.Command(name, args...)

	var stdout bytes.Buffer

	var stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	return stdout.String(), stderr.String(), err
}

// isAppearanceMutation checks if a command writes the settings the detector reads.
func isAppearanceMutation(name string, args []string) bool {
	if len(args) == 0 {
		return false
	}

	switch name {
	case "defaults":
		// defaults write/delete -g AppleInterfaceStyle
		return args[0] == "write" || args[0] == "delete"
	case "gsettings":
		// gsettings set/reset org.gnome.desktop.interface color-scheme
		return args[0] == "set" || args[0] == "reset" || args[0] == "reset-recursively"
	case "osascript":
		return true
	}

	return false
}
