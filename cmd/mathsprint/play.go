package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mathsprint/internal/audio"
	"github.com/vovakirdan/mathsprint/internal/core"
	"github.com/vovakirdan/mathsprint/internal/game"
	"github.com/vovakirdan/mathsprint/internal/ledger"
	"github.com/vovakirdan/mathsprint/internal/platform/logging"
	"github.com/vovakirdan/mathsprint/internal/platform/tui"
	"github.com/vovakirdan/mathsprint/internal/quiz"
)

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, logErr := logging.OpenFile(cfg.Log.File, cfg.Log.Level)
	if logErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (logging disabled)\n", logErr)
	}
	//nolint:errcheck // Best-effort close on exit
	defer closeLog()

	store, closeStore, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("cannot open leaderboard: %w", err)
	}
	//nolint:errcheck // Best-effort close on exit
	defer closeStore()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}.Normalize()

	machine := game.New(game.Deps{
		Config: cfg,
		Source: quiz.NewGenerator(rc.Seed, cfg.Generator.MaxAttempts),
		Ledger: ledger.New(store, cfg.Ledger, core.SystemClock{}, logger),
		Audio:  audio.Load(cfg.Audio, os.Stderr, logger),
		Clock:  core.SystemClock{},
		Logger: logger,
	})
	defer machine.Close()

	logger.Info("mathsprint started", "store", cfg.Ledger.Backend, "fps", rc.TickRate, "seed", rc.Seed)
	if err := tui.Run(machine, rc); err != nil {
		logger.Error("mathsprint stopped", "err", err)
		return fmt.Errorf("mathsprint: %w", err)
	}
	logger.Info("mathsprint exited")
	return nil
}
