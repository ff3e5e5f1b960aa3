// Package quiz implements the timed arithmetic session: difficulty tiers,
// the problem generator, the pause-aware session clock, feedback gating and
// the character animation cues. It has no terminal dependency.
package quiz

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/mathsprint/internal/config"
)

// Tier is a difficulty tier. It fixes the operator set and operand ranges
// of generated problems; its session budget and point value come from
// config.
type Tier int

const (
	TierEasy Tier = iota
	TierMedium
	TierHard
)

// Tiers lists every tier in menu order.
var Tiers = []Tier{TierEasy, TierMedium, TierHard}

// String returns the tier identifier used in config and flags.
func (t Tier) String() string {
	switch t {
	case TierEasy:
		return "easy"
	case TierMedium:
		return "medium"
	case TierHard:
		return "hard"
	default:
		return "unknown"
	}
}

// Title returns the display name.
func (t Tier) Title() string {
	switch t {
	case TierEasy:
		return "Easy"
	case TierMedium:
		return "Medium"
	case TierHard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// Describe summarizes the operators and operand ranges drawn at this tier.
func (t Tier) Describe() string {
	switch t {
	case TierEasy:
		return "+ - with operands 0-20"
	case TierMedium:
		return "+ - with operands 0-50, × with 0-12"
	case TierHard:
		return "+ - with operands 10-99, × with 2-20, ÷ exact with 2-10"
	default:
		return ""
	}
}

// Settings returns the tier's session budget and point value.
func (t Tier) Settings(tiers config.TiersConfig) config.TierConfig {
	switch t {
	case TierMedium:
		return tiers.Medium
	case TierHard:
		return tiers.Hard
	default:
		return tiers.Easy
	}
}

// ParseTier parses a tier identifier (case-insensitive).
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return TierEasy, nil
	case "medium":
		return TierMedium, nil
	case "hard":
		return TierHard, nil
	}
	return TierEasy, fmt.Errorf("quiz: unknown tier %q", s)
}
