package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mathsprint/internal/quiz"
)

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "List difficulty tiers",
	Long:  `Shows each difficulty tier with its time limit, points per correct answer and problem mix.`,
	Args:  cobra.NoArgs,
	Run:   runTiers,
}

func runTiers(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Difficulty tiers:")
	fmt.Println()

	// Print header
	fmt.Printf("  %-7s  %-5s  %-6s  %s\n", "Tier", "Time", "Points", "Problems")
	fmt.Printf("  %-7s  %-5s  %-6s  %s\n", "----", "----", "------", "--------")

	for _, t := range quiz.Tiers {
		s := t.Settings(cfg.Tiers)
		fmt.Printf("  %-7s  %-5s  %-6d  %s\n", t.Title(), fmt.Sprintf("%ds", s.SessionSeconds), s.PointsPerCorrect, t.Describe())
	}
}
