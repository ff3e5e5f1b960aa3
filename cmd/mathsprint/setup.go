package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mathsprint/internal/config"
	"github.com/vovakirdan/mathsprint/internal/ledger"
	"github.com/vovakirdan/mathsprint/internal/storage"
)

// loadConfig resolves configuration: file, then environment, then flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("scores") {
		cfg.Ledger.Path = flagScores
	}
	if flags.Changed("store") {
		cfg.Ledger.Backend = strings.ToLower(flagStore)
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// openStore opens the configured leaderboard backend. The returned close
// function is never nil.
func openStore(cfg config.Config) (ledger.Store, func() error, error) {
	path, err := config.ExpandPath(cfg.Ledger.Path)
	if err != nil {
		return nil, nil, err
	}

	switch cfg.Ledger.Backend {
	case config.BackendSQLite:
		// The default path names a JSON file; keep SQLite data beside it.
		if strings.EqualFold(filepath.Ext(path), ".json") {
			path = strings.TrimSuffix(path, filepath.Ext(path)) + ".db"
		}
		store, err := storage.Open(path)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	case config.BackendJSON:
		return ledger.NewFileStore(path), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown ledger backend %q", cfg.Ledger.Backend)
	}
}
