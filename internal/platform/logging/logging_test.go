package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantErr   bool
	}{
		{"", false, false},
		{"debug", true, false},
		{"info", false, false},
		{"warn", false, false},
		{"loud", false, true},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		logger, err := New(&buf, tt.level)
		if (err != nil) != tt.wantErr {
			t.Errorf("New(%q) error = %v, wantErr %v", tt.level, err, tt.wantErr)
		}
		logger.Debug("probe")
		if got := strings.Contains(buf.String(), "probe"); got != tt.wantDebug {
			t.Errorf("level %q: debug written = %v, want %v", tt.level, got, tt.wantDebug)
		}
	}
}

func TestOpenFileWritesRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "mathsprint.log")
	logger, closeFn, err := OpenFile(path, "info")
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	logger.Info("session started", "tier", "easy")
	if err := closeFn(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	if !strings.Contains(text, "session started") || !strings.Contains(text, "tier=easy") || !strings.Contains(text, Prefix) {
		t.Errorf("unexpected log contents: %q", text)
	}
}

func TestOpenFileFailureDiscards(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	logger, closeFn, err := OpenFile(filepath.Join(blocker, "sub", "x.log"), "info")
	if err == nil {
		t.Fatal("expected error when parent is a file")
	}
	if logger == nil || closeFn == nil {
		t.Fatal("logger and close func must be usable on failure")
	}
	logger.Info("dropped")
	_ = closeFn()
}

func TestOpenFileEmptyPath(t *testing.T) {
	logger, closeFn, err := OpenFile("", "debug")
	if err != nil || logger == nil || closeFn == nil {
		t.Fatalf("OpenFile(\"\") = %v, %v", logger, err)
	}
}
