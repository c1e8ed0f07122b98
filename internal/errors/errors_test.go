package errors_test

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	prefserr "github.com/kyleking/lazytheme/internal/errors"
)

func TestStorageError(t *testing.T) {
	cause := os.ErrPermission
	err := &prefserr.StorageError{
		Op:   "save",
		Key:  "theme",
		Path: "/tmp/preferences.json",
		Err:  cause,
	}

	msg := err.Error()
	if !strings.Contains(msg, `"theme"`) {
		t.Errorf("expected key in message, got %q", msg)
	}

	if !errors.Is(err, cause) {
		t.Error("expected error to unwrap to cause")
	}

	if !prefserr.IsStorage(fmt.Errorf("wrapped: %w", err)) {
		t.Error("IsStorage should see through wrapping")
	}
}

func TestStorageError_NoKey(t *testing.T) {
	err := &prefserr.StorageError{Op: "load", Path: "/x", Err: errors.New("bad json")}

	if strings.Contains(err.Error(), `""`) {
		t.Errorf("unexpected empty key in message: %q", err.Error())
	}
}

func TestConfigError(t *testing.T) {
	cause := errors.New("must be positive")
	err := &prefserr.ConfigError{Path: "config.yml", Field: "poll_interval", Err: cause}

	if !strings.Contains(err.Error(), "poll_interval") {
		t.Errorf("expected field in message, got %q", err.Error())
	}

	if !errors.Is(err, cause) {
		t.Error("expected error to unwrap to cause")
	}
}

func TestInvalidIdentifierError(t *testing.T) {
	err := &prefserr.InvalidIdentifierError{
		Kind:    "theme",
		Value:   "dusk-default",
		Allowed: []string{"light-default", "dark-default"},
	}

	if !strings.Contains(err.Error(), "dusk-default") {
		t.Errorf("expected value in message, got %q", err.Error())
	}

	if !prefserr.IsInvalidIdentifier(fmt.Errorf("set: %w", err)) {
		t.Error("IsInvalidIdentifier should see through wrapping")
	}

	if prefserr.IsInvalidIdentifier(errors.New("other")) {
		t.Error("IsInvalidIdentifier should be false for unrelated errors")
	}
}
