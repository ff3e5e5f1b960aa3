// mathsprint is a timed arithmetic quiz for the terminal.
//
// Usage:
//
//	mathsprint               - Play (menu, difficulty pick, timed session)
//	mathsprint scores        - Show the leaderboard
//	mathsprint tiers         - Show difficulty tiers
//
// Global flags:
//
//	--fps <rate>        - Set frame rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible problems
//	--config <path>     - Use a YAML or TOML config file
//	--scores <path>     - Set leaderboard path (default: ~/.mathsprint/scores.json)
//	--store <backend>   - Leaderboard backend: json or sqlite
//	--log-file <path>   - Set log file (default: ~/.mathsprint/mathsprint.log)
//	--log-level <level> - Set log level: debug, info, warn, error
//	--mute              - Disable sound cues
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagScores   string
	flagStore    string
	flagLogFile  string
	flagLogLevel string
	flagMute     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mathsprint",
	Short: "MathSprint - a timed arithmetic quiz in your terminal",
	Long: `MathSprint asks arithmetic problems against the clock. Pick a
difficulty, answer as many as you can before time runs out, and put
your name on the leaderboard.

Controls:
  0-9, -      - Type answer
  Enter       - Submit / select
  Backspace   - Delete
  P           - Pause / resume
  Esc         - Give up / back
  Up/Down     - Move in menus (mouse clicks work too)
  Ctrl+C      - Quit

Examples:
  mathsprint
  mathsprint --seed 42 --mute
  mathsprint --store sqlite --scores ~/.mathsprint/scores.db
  mathsprint scores
  mathsprint tiers`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagConfig, "config", "", "Path to a YAML or TOML config file")
	pf.StringVar(&flagScores, "scores", "", "Path to the leaderboard file or database")
	pf.StringVar(&flagStore, "store", "", "Leaderboard backend: json or sqlite")
	pf.StringVar(&flagLogFile, "log-file", "", "Path to the log file")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.BoolVar(&flagMute, "mute", false, "Disable sound cues")

	// Add subcommands
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(tiersCmd)
}
