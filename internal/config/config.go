// Package config provides configuration file parsing for lazytheme.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	prefserr "github.com/kyleking/lazytheme/internal/errors"
	"github.com/kyleking/lazytheme/internal/ui/theme"
	"gopkg.in/yaml.v3"
)

// ConfigFilename is the name of the configuration file inside the config directory.
const ConfigFilename = "config.yml"

// Defaults.
const (
	DefaultNotificationDuration = 3 * time.Second
	DefaultOutsideClickDelay    = 100 * time.Millisecond
	DefaultPollInterval         = 2 * time.Second
)

// DefaultThemes are the theme options offered when none are configured.
var DefaultThemes = []string{
	"light-default", "light-sepia", "light-cool",
	"dark-default", "dark-oled", "dark-blue",
}

// Config represents the lazytheme configuration file.
type Config struct {
	Version              int           `yaml:"version"`
	Themes               []string      `yaml:"themes"`
	Accents              []string      `yaml:"accents"`
	NotificationDuration time.Duration `yaml:"notification_duration"`
	OutsideClickDelay    time.Duration `yaml:"outside_click_delay"`
	PollInterval         time.Duration `yaml:"poll_interval"`
	LogFile              string        `yaml:"log_file"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{Version: 1}
	cfg.applyDefaults()

	return cfg
}

// Path returns the default configuration file path.
func Path() string {
	return filepath.Join(dir("XDG_CONFIG_HOME", ".config"), ConfigFilename)
}

// DefaultLogFile returns the default log file path.
func DefaultLogFile() string {
	return filepath.Join(dir("XDG_STATE_HOME", filepath.Join(".local", "state")), "lazytheme.log")
}

func dir(env, homeRel string) string {
	if xdg := os.Getenv(env); xdg != "" {
		return filepath.Join(xdg, "lazytheme")
	}

	home, _ := os.UserHomeDir()

	return filepath.Join(home, homeRel, "lazytheme")
}

// Load loads the configuration from the default location.
func Load() (*Config, error) {
	return LoadFrom(Path())
}

// LoadFrom loads the configuration from a specific path. A missing file
// yields the defaults.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}

		return nil, &prefserr.ConfigError{Path: path, Err: fmt.Errorf("failed to read config file: %w", err)}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &prefserr.ConfigError{Path: path, Err: fmt.Errorf("failed to parse config file: %w", err)}
	}

	if cfg.Version == 0 {
		cfg.Version = 1
	}

	if cfg.Version != 1 {
		return nil, &prefserr.ConfigError{Path: path, Field: "version", Err: fmt.Errorf("unsupported config version: %d (expected 1)", cfg.Version)}
	}

	if err := cfg.validate(path); err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	return &cfg, nil
}

func (c *Config) validate(path string) error {
	for _, id := range c.Themes {
		if !theme.Valid(id) {
			return &prefserr.ConfigError{Path: path, Field: "themes", Err: &prefserr.InvalidIdentifierError{
				Kind: "theme", Value: id, Allowed: theme.All(),
			}}
		}
	}

	for _, name := range []struct {
		field string
		value time.Duration
	}{
		{"notification_duration", c.NotificationDuration},
		{"outside_click_delay", c.OutsideClickDelay},
		{"poll_interval", c.PollInterval},
	} {
		if name.value < 0 {
			return &prefserr.ConfigError{Path: path, Field: name.field, Err: fmt.Errorf("must not be negative, got %s", name.value)}
		}
	}

	return nil
}

func (c *Config) applyDefaults() {
	if len(c.Themes) == 0 {
		c.Themes = append([]string(nil), DefaultThemes...)
	}

	if len(c.Accents) == 0 {
		c.Accents = theme.Accents()
	}

	if c.NotificationDuration == 0 {
		c.NotificationDuration = DefaultNotificationDuration
	}

	if c.OutsideClickDelay == 0 {
		c.OutsideClickDelay = DefaultOutsideClickDelay
	}

	if c.PollInterval == 0 {
		c.PollInterval = DefaultPollInterval
	}

	if c.LogFile == "" {
		c.LogFile = DefaultLogFile()
	}
}

// HasTheme returns true if id is one of the configured theme options.
func (c *Config) HasTheme(id string) bool {
	for _, t := range c.Themes {
		if t == id {
			return true
		}
	}

	return false
}

// HasAccent returns true if name is one of the configured accent options.
func (c *Config) HasAccent(name string) bool {
	for _, a := range c.Accents {
		if a == name {
			return true
		}
	}

	return false
}
