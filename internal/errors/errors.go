// Package errors defines the typed errors returned at the edges of lazytheme:
// preference storage, configuration loading and identifier validation.
package errors

import (
	"errors"
	"fmt"
)

// StorageError represents a failure to read or write a persisted preference.
type StorageError struct {
	Op   string // "load", "save", "delete"
	Key  string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s preference %q (%s): %v", e.Op, e.Key, e.Path, e.Err)
	}
	return fmt.Sprintf("%s preferences (%s): %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// ConfigError represents an invalid or unreadable configuration file.
type ConfigError struct {
	Path  string
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config %s: field %s: %v", e.Path, e.Field, e.Err)
	}
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// InvalidIdentifierError indicates a theme or accent identifier outside the known set.
type InvalidIdentifierError struct {
	Kind    string // "theme" or "accent"
	Value   string
	Allowed []string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("unknown %s %q (expected one of %v)", e.Kind, e.Value, e.Allowed)
}

// IsInvalidIdentifier reports whether err is or wraps an InvalidIdentifierError.
func IsInvalidIdentifier(err error) bool {
	var target *InvalidIdentifierError
	return errors.As(err, &target)
}

// IsStorage reports whether err is or wraps a StorageError.
func IsStorage(err error) bool {
	var target *StorageError
	return errors.As(err, &target)
}
