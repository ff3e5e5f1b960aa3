package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mathsprint/internal/ledger"
	"github.com/vovakirdan/mathsprint/internal/platform/logging"
	"github.com/vovakirdan/mathsprint/internal/platform/tui"
)

var (
	flagClear       bool
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top scores kept by the configured leaderboard backend.

Examples:
  mathsprint scores
  mathsprint scores --interactive
  mathsprint scores --store sqlite
  mathsprint scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Remove every leaderboard entry")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse the leaderboard in a scrollable table")
}

func runScores(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, closeStore, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening leaderboard: %v\n", err)
		os.Exit(1)
	}
	//nolint:errcheck // Best-effort close on exit
	defer closeStore()

	logger, _ := logging.New(os.Stderr, "error")
	board := ledger.New(store, cfg.Ledger, nil, logger)

	if flagClear {
		if err := board.Clear(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing leaderboard: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Leaderboard cleared.")
		return
	}

	entries := board.Load()

	if flagInteractive && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(entries, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Printf("High Scores (top %d)\n", board.Capacity())
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'mathsprint' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-5s  %-15s  %-6s  %s\n", "Rank", "Name", "Score", "Date")
	fmt.Printf("  %-5s  %-15s  %-6s  %s\n", "----", "----", "-----", "----")

	for i, e := range entries {
		fmt.Printf("  %-5s  %-15s  %-6d  %s\n", humanize.Ordinal(i+1), e.Name, e.Score, e.Date)
	}
}
