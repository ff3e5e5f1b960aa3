package config

import (
	_ "embed"
)

//go:embed defaults/mathsprint.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration. It matches the embedded
// defaults/mathsprint.yaml and is used when that fails to parse.
func Default() Config {
	return Config{
		Tiers: TiersConfig{
			Easy:   TierConfig{SessionSeconds: 90, PointsPerCorrect: 10},
			Medium: TierConfig{SessionSeconds: 60, PointsPerCorrect: 15},
			Hard:   TierConfig{SessionSeconds: 45, PointsPerCorrect: 20},
		},
		Feedback: FeedbackConfig{
			CorrectText:      "Correct!",
			IncorrectText:    "Wrong!",
			CorrectSeconds:   0.8,
			IncorrectSeconds: 1.0,
		},
		Input: InputConfig{
			MaxAnswerLength: 9,
		},
		Animation: AnimationConfig{
			BounceSeconds:   0.5,
			ShakeSeconds:    0.6,
			BounceAmplitude: 2,
			ShakeAmplitude:  3,
		},
		Timer: TimerConfig{
			WarningSeconds: 10,
		},
		Generator: GeneratorConfig{
			MaxAttempts: 16,
		},
		Ledger: LedgerConfig{
			Backend:       BackendJSON,
			Path:          "~/.mathsprint/scores.json",
			Capacity:      5,
			NameMaxLength: 15,
			DefaultName:   "Player",
		},
		Audio: AudioConfig{
			Enabled:      true,
			CorrectCue:   "assets/correct.mp3",
			IncorrectCue: "assets/wrong.mp3",
			Music:        "assets/game.mp3",
		},
		Log: LogConfig{
			File:  "~/.mathsprint/mathsprint.log",
			Level: "info",
		},
	}
}
