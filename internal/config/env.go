package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envOverrides are the settings that can be changed from the environment.
// Empty values leave the loaded configuration untouched.
type envOverrides struct {
	ScoresPath string `env:"MATHSPRINT_SCORES_PATH"`
	Store      string `env:"MATHSPRINT_STORE"`
	LogFile    string `env:"MATHSPRINT_LOG_FILE"`
	LogLevel   string `env:"MATHSPRINT_LOG_LEVEL"`
	Mute       bool   `env:"MATHSPRINT_MUTE"`
}

// ApplyEnv overlays MATHSPRINT_* environment variables onto cfg.
func ApplyEnv(cfg *Config) error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}
	if o.ScoresPath != "" {
		cfg.Ledger.Path = o.ScoresPath
	}
	if o.Store != "" {
		cfg.Ledger.Backend = o.Store
	}
	if o.LogFile != "" {
		cfg.Log.File = o.LogFile
	}
	if o.LogLevel != "" {
		cfg.Log.Level = o.LogLevel
	}
	if o.Mute {
		cfg.Audio.Enabled = false
	}
	return nil
}
