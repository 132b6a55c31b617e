package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "tetris", "info")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	logger.Info("game over", "score", 1200)
	logger.Debug("hidden")

	out := buf.String()
	if !strings.Contains(out, "game over") || !strings.Contains(out, "score=1200") {
		t.Errorf("unexpected output %q", out)
	}
	if !strings.Contains(out, "tetris") {
		t.Errorf("prefix missing from %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Error("debug line written at info level")
	}
}

func TestNewLevels(t *testing.T) {
	for _, lvl := range []string{"", "debug", "INFO", "warn", "error"} {
		if _, err := New(&bytes.Buffer{}, "", lvl); err != nil {
			t.Errorf("New(%q) failed: %v", lvl, err)
		}
	}
	if _, err := New(&bytes.Buffer{}, "", "chatty"); err == nil {
		t.Error("unknown level should fail")
	}
}

func TestOpenFileCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "tetris.log")

	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() failed: %v", err)
	}
	logger, _ := New(f, "", "info")
	logger.Info("hello")
	f.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file content %q", data)
	}
}

func TestDiscard(t *testing.T) {
	Discard().Error("nothing happens")
}
