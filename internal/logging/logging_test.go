package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWithWriter_Level(t *testing.T) {
	var buf bytes.Buffer

	logger := NewWithWriter(&buf, false)
	logger.Debug().Msg("hidden")
	logger.Info().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message logged at info level: %s", out)
	}

	if !strings.Contains(out, "shown") {
		t.Errorf("info message missing: %s", out)
	}

	buf.Reset()

	logger = NewWithWriter(&buf, true)
	logger.Debug().Msg("visible")

	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("debug message missing in debug mode: %s", buf.String())
	}
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "lazytheme.log")

	logger, closeFn, err := New(Options{Path: path})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Info().Str("theme", "dark-oled").Msg("theme set")

	if err := closeFn(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}

	if !strings.Contains(string(data), `"theme":"dark-oled"`) {
		t.Errorf("unexpected log contents: %s", data)
	}
}

func TestNew_NoPath(t *testing.T) {
	logger, closeFn, err := New(Options{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Info().Msg("discarded")

	if err := closeFn(); err != nil {
		t.Errorf("close failed: %v", err)
	}
}
