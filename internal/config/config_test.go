package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := decode("mathsprint.yaml", defaultYAML)
	if err != nil {
		t.Fatalf("embedded defaults failed to parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded defaults differ from Default():\n got %+v\nwant %+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadWithoutFilesUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Tiers.Easy.SessionSeconds != 90 || cfg.Tiers.Easy.PointsPerCorrect != 10 {
		t.Errorf("easy tier = %+v, expected 90s/10pts", cfg.Tiers.Easy)
	}
	if cfg.Tiers.Hard.SessionDuration() != 45*time.Second {
		t.Errorf("hard session = %v, expected 45s", cfg.Tiers.Hard.SessionDuration())
	}
}

func TestLoadPartialYAMLKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "tiers:\n  easy:\n    session_seconds: 30\nledger:\n  backend: sqlite\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	if cfg.Tiers.Easy.SessionSeconds != 30 {
		t.Errorf("easy session = %d, expected 30", cfg.Tiers.Easy.SessionSeconds)
	}
	if cfg.Tiers.Easy.PointsPerCorrect != 10 {
		t.Errorf("easy points = %d, expected default 10", cfg.Tiers.Easy.PointsPerCorrect)
	}
	if cfg.Ledger.Backend != BackendSQLite {
		t.Errorf("backend = %q, expected sqlite", cfg.Ledger.Backend)
	}
	if cfg.Ledger.Capacity != 5 {
		t.Errorf("capacity = %d, expected default 5", cfg.Ledger.Capacity)
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	data := "[tiers.medium]\npoints_per_correct = 25\n\n[feedback]\ncorrect_text = \"Benar!\"\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	if cfg.Tiers.Medium.PointsPerCorrect != 25 {
		t.Errorf("medium points = %d, expected 25", cfg.Tiers.Medium.PointsPerCorrect)
	}
	if cfg.Tiers.Medium.SessionSeconds != 60 {
		t.Errorf("medium session = %d, expected default 60", cfg.Tiers.Medium.SessionSeconds)
	}
	if cfg.Feedback.CorrectText != "Benar!" {
		t.Errorf("correct text = %q, expected Benar!", cfg.Feedback.CorrectText)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("tiers: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed custom config")
	}
}

func TestLoadUserConfigDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".mathsprint")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	data := "timer:\n  warning_seconds: 5\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Timer.WarningSeconds != 5 {
		t.Errorf("warning seconds = %d, expected 5 from user config", cfg.Timer.WarningSeconds)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero session", func(c *Config) { c.Tiers.Hard.SessionSeconds = 0 }, "tiers.hard.session_seconds"},
		{"negative points", func(c *Config) { c.Tiers.Easy.PointsPerCorrect = -1 }, "tiers.easy.points_per_correct"},
		{"zero capacity", func(c *Config) { c.Ledger.Capacity = 0 }, "ledger.capacity"},
		{"unknown backend", func(c *Config) { c.Ledger.Backend = "redis" }, "ledger.backend"},
		{"tiny input", func(c *Config) { c.Input.MaxAnswerLength = 1 }, "input.max_answer_length"},
		{"no attempts", func(c *Config) { c.Generator.MaxAttempts = 0 }, "generator.max_attempts"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("MATHSPRINT_SCORES_PATH", "/tmp/scores.db")
	t.Setenv("MATHSPRINT_STORE", "sqlite")
	t.Setenv("MATHSPRINT_LOG_LEVEL", "debug")
	t.Setenv("MATHSPRINT_MUTE", "true")

	cfg := Default()
	if err := ApplyEnv(&cfg); err != nil {
		t.Fatalf("ApplyEnv() failed: %v", err)
	}
	if cfg.Ledger.Path != "/tmp/scores.db" || cfg.Ledger.Backend != BackendSQLite {
		t.Errorf("ledger = %+v, expected env overrides", cfg.Ledger)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q, expected debug", cfg.Log.Level)
	}
	if cfg.Log.File != Default().Log.File {
		t.Errorf("unset env should keep log file, got %q", cfg.Log.File)
	}
	if cfg.Audio.Enabled {
		t.Error("MATHSPRINT_MUTE should disable audio")
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/.mathsprint/scores.json")
	if err != nil {
		t.Fatalf("ExpandPath failed: %v", err)
	}
	if got != filepath.Join(home, ".mathsprint", "scores.json") {
		t.Errorf("ExpandPath = %q", got)
	}

	got, _ = ExpandPath("relative/scores.json")
	if got != "relative/scores.json" {
		t.Errorf("relative path changed: %q", got)
	}
}

func TestFeedbackDurations(t *testing.T) {
	f := Default().Feedback
	if f.CorrectDuration() != 800*time.Millisecond {
		t.Errorf("correct duration = %v, expected 800ms", f.CorrectDuration())
	}
	if f.IncorrectDuration() != time.Second {
		t.Errorf("incorrect duration = %v, expected 1s", f.IncorrectDuration())
	}
}
