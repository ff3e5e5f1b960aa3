// Package config provides YAML/TOML configuration loading for MathSprint:
// difficulty tiers, feedback timing, ledger storage, audio assets and logging.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Ledger storage backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config contains all configuration for the game.
type Config struct {
	Tiers     TiersConfig     `yaml:"tiers" toml:"tiers"`
	Feedback  FeedbackConfig  `yaml:"feedback" toml:"feedback"`
	Input     InputConfig     `yaml:"input" toml:"input"`
	Animation AnimationConfig `yaml:"animation" toml:"animation"`
	Timer     TimerConfig     `yaml:"timer" toml:"timer"`
	Generator GeneratorConfig `yaml:"generator" toml:"generator"`
	Ledger    LedgerConfig    `yaml:"ledger" toml:"ledger"`
	Audio     AudioConfig     `yaml:"audio" toml:"audio"`
	Log       LogConfig       `yaml:"log" toml:"log"`
}

// TierConfig is the session budget and point value of one difficulty tier.
type TierConfig struct {
	SessionSeconds   int `yaml:"session_seconds" toml:"session_seconds"`
	PointsPerCorrect int `yaml:"points_per_correct" toml:"points_per_correct"`
}

// SessionDuration returns the session budget as a duration.
func (t TierConfig) SessionDuration() time.Duration {
	return time.Duration(t.SessionSeconds) * time.Second
}

// TiersConfig holds the three built-in tiers.
type TiersConfig struct {
	Easy   TierConfig `yaml:"easy" toml:"easy"`
	Medium TierConfig `yaml:"medium" toml:"medium"`
	Hard   TierConfig `yaml:"hard" toml:"hard"`
}

// FeedbackConfig defines the flash shown after each answer.
type FeedbackConfig struct {
	CorrectText      string  `yaml:"correct_text" toml:"correct_text"`
	IncorrectText    string  `yaml:"incorrect_text" toml:"incorrect_text"`
	CorrectSeconds   float64 `yaml:"correct_seconds" toml:"correct_seconds"`
	IncorrectSeconds float64 `yaml:"incorrect_seconds" toml:"incorrect_seconds"`
}

// CorrectDuration returns the feedback interval after a correct answer.
func (f FeedbackConfig) CorrectDuration() time.Duration {
	return seconds(f.CorrectSeconds)
}

// IncorrectDuration returns the feedback interval after a wrong answer.
func (f FeedbackConfig) IncorrectDuration() time.Duration {
	return seconds(f.IncorrectSeconds)
}

// InputConfig bounds the typed answer.
type InputConfig struct {
	MaxAnswerLength int `yaml:"max_answer_length" toml:"max_answer_length"`
}

// AnimationConfig defines the character cue durations and amplitudes.
type AnimationConfig struct {
	BounceSeconds   float64 `yaml:"bounce_seconds" toml:"bounce_seconds"`
	ShakeSeconds    float64 `yaml:"shake_seconds" toml:"shake_seconds"`
	BounceAmplitude float64 `yaml:"bounce_amplitude" toml:"bounce_amplitude"`
	ShakeAmplitude  float64 `yaml:"shake_amplitude" toml:"shake_amplitude"`
}

// BounceDuration returns the bounce cue length.
func (a AnimationConfig) BounceDuration() time.Duration {
	return seconds(a.BounceSeconds)
}

// ShakeDuration returns the shake cue length.
func (a AnimationConfig) ShakeDuration() time.Duration {
	return seconds(a.ShakeSeconds)
}

// TimerConfig controls the countdown display.
type TimerConfig struct {
	WarningSeconds int `yaml:"warning_seconds" toml:"warning_seconds"`
}

// GeneratorConfig bounds defensive problem regeneration.
type GeneratorConfig struct {
	MaxAttempts int `yaml:"max_attempts" toml:"max_attempts"`
}

// LedgerConfig defines high score persistence.
type LedgerConfig struct {
	Backend       string `yaml:"backend" toml:"backend"`
	Path          string `yaml:"path" toml:"path"`
	Capacity      int    `yaml:"capacity" toml:"capacity"`
	NameMaxLength int    `yaml:"name_max_length" toml:"name_max_length"`
	DefaultName   string `yaml:"default_name" toml:"default_name"`
}

// AudioConfig lists the cue and music assets. Missing files are not fatal.
type AudioConfig struct {
	Enabled      bool   `yaml:"enabled" toml:"enabled"`
	CorrectCue   string `yaml:"correct_cue" toml:"correct_cue"`
	IncorrectCue string `yaml:"incorrect_cue" toml:"incorrect_cue"`
	Music        string `yaml:"music" toml:"music"`
}

// LogConfig defines where logs go.
type LogConfig struct {
	File  string `yaml:"file" toml:"file"`
	Level string `yaml:"level" toml:"level"`
}

// Validate reports configuration values the game cannot run with.
func (c Config) Validate() error {
	var errs []error
	for name, tier := range map[string]TierConfig{
		"easy":   c.Tiers.Easy,
		"medium": c.Tiers.Medium,
		"hard":   c.Tiers.Hard,
	} {
		if tier.SessionSeconds <= 0 {
			errs = append(errs, fmt.Errorf("tiers.%s.session_seconds must be positive, got %d", name, tier.SessionSeconds))
		}
		if tier.PointsPerCorrect <= 0 {
			errs = append(errs, fmt.Errorf("tiers.%s.points_per_correct must be positive, got %d", name, tier.PointsPerCorrect))
		}
	}
	if c.Feedback.CorrectSeconds <= 0 || c.Feedback.IncorrectSeconds <= 0 {
		errs = append(errs, errors.New("feedback durations must be positive"))
	}
	if c.Input.MaxAnswerLength < 2 {
		errs = append(errs, fmt.Errorf("input.max_answer_length must be at least 2, got %d", c.Input.MaxAnswerLength))
	}
	if c.Generator.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("generator.max_attempts must be at least 1, got %d", c.Generator.MaxAttempts))
	}
	if c.Ledger.Capacity < 1 {
		errs = append(errs, fmt.Errorf("ledger.capacity must be at least 1, got %d", c.Ledger.Capacity))
	}
	if c.Ledger.NameMaxLength < 1 {
		errs = append(errs, fmt.Errorf("ledger.name_max_length must be at least 1, got %d", c.Ledger.NameMaxLength))
	}
	switch c.Ledger.Backend {
	case BackendJSON, BackendSQLite:
	default:
		errs = append(errs, fmt.Errorf("ledger.backend must be %q or %q, got %q", BackendJSON, BackendSQLite, c.Ledger.Backend))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
