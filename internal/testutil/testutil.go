// Package testutil provides fakes and assertions shared by lazytheme tests.
package testutil

import (
	"strings"
	"testing"
)

// AssertEqual fails the test if got != want.
func AssertEqual[T comparable](t *testing.T, got, want T, msgAndArgs ...interface{}) {
	t.Helper()

	if got != want {
		if len(msgAndArgs) > 0 {
			format := msgAndArgs[0].(string)
			args := msgAndArgs[1:]
			t.Errorf(format+": got %v, want %v", append(args, got, want)...)
		} else {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

// AssertTrue fails the test if condition is false.
func AssertTrue(t *testing.T, condition bool, msgAndArgs ...interface{}) {
	t.Helper()

	if !condition {
		if len(msgAndArgs) > 0 {
			format := msgAndArgs[0].(string)
			args := msgAndArgs[1:]
			t.Errorf(format, args...)
		} else {
			t.Error("expected true, got false")
		}
	}
}

// AssertFalse fails the test if condition is true.
func AssertFalse(t *testing.T, condition bool, msgAndArgs ...interface{}) {
	t.Helper()

	if condition {
		if len(msgAndArgs) > 0 {
			format := msgAndArgs[0].(string)
			args := msgAndArgs[1:]
			t.Errorf(format, args...)
		} else {
			t.Error("expected false, got true")
		}
	}
}

// AssertContains fails the test if haystack doesn't contain needle.
func AssertContains(t *testing.T, haystack, needle string, msgAndArgs ...interface{}) {
	t.Helper()

	if !strings.Contains(haystack, needle) {
		if len(msgAndArgs) > 0 {
			format := msgAndArgs[0].(string)
			args := msgAndArgs[1:]
			t.Errorf(format+": %q not found in %q", append(args, needle, haystack)...)
		} else {
			t.Errorf("%q not found in %q", needle, haystack)
		}
	}
}
