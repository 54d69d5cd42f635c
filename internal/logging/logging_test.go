package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestParseLevel verifies known names and rejection of unknown ones.
func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for input, want := range cases {
		got, err := ParseLevel(input)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", input, err)
		}
		if got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", input, got, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

// TestNewFiltersByLevel verifies records below the level are dropped.
func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := New(Options{Level: "warn", Fallback: &buf})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer closer.Close()
	logger.Info("hidden")
	logger.Warn("shown", "component", "test")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info record leaked: %q", out)
	}
	if !strings.Contains(out, "msg=shown") || !strings.Contains(out, "component=test") {
		t.Fatalf("unexpected output %q", out)
	}
}

// TestNewJSONFile verifies file output in JSON format.
func TestNewJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "learnstyle.log")
	logger, closer, err := New(Options{Level: "debug", Format: FormatJSON, File: path})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	logger.Debug("written", "page", 2)
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"written"`) || !strings.Contains(string(data), `"page":2`) {
		t.Fatalf("unexpected log %q", data)
	}
}

// TestNewRejectsUnknownFormat verifies format validation.
func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatalf("expected error")
	}
}
