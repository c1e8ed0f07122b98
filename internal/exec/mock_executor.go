package exec

import (
	"errors"
	"fmt"
	"strings"
)

// MockExecutor simulates command execution for testing.
type MockExecutor struct {
	// Commands maps command patterns to responses.
	// Key format: "command arg1 arg2"
	Commands map[string]*CommandResult

	// DefaultResult is returned when no specific command matches.
	DefaultResult *CommandResult

	// ExecutedCommands tracks all commands that were executed.
	ExecutedCommands []ExecutedCommand
}

// CommandResult represents the result of a command execution.
type CommandResult struct {
	Stdout string
	Stderr string
	Error  error
}

// ExecutedCommand tracks a command that was executed.
type ExecutedCommand struct {
	Name string
	Args []string
}

// NewMockExecutor creates a new mock executor.
func NewMockExecutor() *MockExecutor {
	return &MockExecutor{
		Commands:         make(map[string]*CommandResult),
		ExecutedCommands: make([]ExecutedCommand, 0),
	}
}

// Execute simulates command execution by looking up the command in the Commands map.
func (m *MockExecutor) Execute(name string, args ...string) (string, string, error) {
	m.ExecutedCommands = append(m.ExecutedCommands, ExecutedCommand{
		Name: name,
		Args: args,
	})

	cmdKey := m.buildCommandKey(name, args)

	if result, ok := m.Commands[cmdKey]; ok {
		return result.Stdout, result.Stderr, result.Error
	}

	// Look for pattern match (allows wildcards)
	for pattern, result := range m.Commands {
		if m.matchesPattern(cmdKey, pattern) {
			return result.Stdout, result.Stderr, result.Error
		}
	}

	if m.DefaultResult != nil {
		return m.DefaultResult.Stdout, m.DefaultResult.Stderr, m.DefaultResult.Error
	}

	return "", "", fmt.Errorf("mock executor: no result configured for command: %s", cmdKey)
}

// AddCommand registers a command response.
func (m *MockExecutor) AddCommand(name string, args []string, stdout, stderr string, err error) {
	cmdKey := m.buildCommandKey(name, args)
	m.Commands[cmdKey] = &CommandResult{
		Stdout: stdout,
		Stderr: stderr,
		Error:  err,
	}
}

// AddMacAppearance mocks `defaults read -g AppleInterfaceStyle`.
// macOS only has the key while dark mode is on; in light mode the read fails.
func (m *MockExecutor) AddMacAppearance(dark bool) {
	args := []string{"read", "-g", "AppleInterfaceStyle"}
	if dark {
		m.AddCommand("defaults", args, "Dark\n", "", nil)
		return
	}

	m.AddCommand("defaults", args, "",
		"The domain/default pair of (kCFPreferencesAnyApplication, AppleInterfaceStyle) does not exist",
		errors.New("exit status 1"))
}

// AddGnomeColorScheme mocks `gsettings get org.gnome.desktop.interface color-scheme`.
// Typical values are "'prefer-dark'", "'prefer-light'" and "'default'".
func (m *MockExecutor) AddGnomeColorScheme(value string) {
	m.AddCommand("gsettings", []string{"get", "org.gnome.desktop.interface", "color-scheme"}, value+"\n", "", nil)
}

// AddGnomeColorSchemeError mocks a failing gsettings lookup (no GNOME schema installed).
func (m *MockExecutor) AddGnomeColorSchemeError(stderr string) {
	m.AddCommand("gsettings", []string{"get", "org.gnome.desktop.interface", "color-scheme"}, "", stderr, errors.New("exit status 1"))
}

// Reset clears all command history and configurations.
func (m *MockExecutor) Reset() {
	m.Commands = make(map[string]*CommandResult)
	m.ExecutedCommands = make([]ExecutedCommand, 0)
	m.DefaultResult = nil
}

// buildCommandKey creates a string key from command name and args.
func (m *MockExecutor) buildCommandKey(name string, args []string) string {
	parts := append([]string{name}, args...)
	return strings.Join(parts, " ")
}

// matchesPattern checks if a command matches a pattern (simple wildcard support).
func (m *MockExecutor) matchesPattern(cmd, pattern string) bool {
	// Simple wildcard matching: * matches any segment
	if !strings.Contains(pattern, "*") {
		return cmd == pattern
	}

	patternParts := strings.Split(pattern, " ")
	cmdParts := strings.Split(cmd, " ")

	if len(patternParts) != len(cmdParts) {
		return false
	}

	for i, pp := range patternParts {
		if pp == "*" {
			continue
		}

		if pp != cmdParts[i] {
			return false
		}
	}

	return true
}
