package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in       string
		expected string
	}{
		{"~/.snakepix/x.log", filepath.Join(home, ".snakepix/x.log")},
		{"~", home},
		{"/tmp/x.log", "/tmp/x.log"},
		{"rel/x.log", "rel/x.log"},
		{"~user/x.log", "~user/x.log"},
	}

	for _, tc := range tests {
		got, err := expandHome(tc.in)
		if err != nil {
			t.Fatalf("expandHome(%q) error: %v", tc.in, err)
		}
		if got != tc.expected {
			t.Errorf("expandHome(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "snakepix.log")

	logger, closer, err := newLogger(path, "info")
	if err != nil {
		t.Fatalf("newLogger() error: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("window resized", "width", 80)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if !strings.Contains(out, "window resized") || !strings.Contains(out, "width=80") {
		t.Errorf("log output = %q, expected the info line", out)
	}
	if strings.Contains(out, "hidden") {
		t.Error("debug line should be filtered at info level")
	}
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	if _, _, err := newLogger("", "loud"); err == nil {
		t.Error("newLogger() should reject an unknown level")
	}
}
