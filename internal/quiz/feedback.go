package quiz

import (
	"time"

	"github.com/vovakirdan/mathsprint/internal/core"
)

// Outcome is the verdict on a submitted answer.
type Outcome int

const (
	OutcomeCorrect Outcome = iota
	OutcomeIncorrect
)

// String returns the outcome name.
func (o Outcome) String() string {
	if o == OutcomeCorrect {
		return "correct"
	}
	return "incorrect"
}

// Feedback is the flash shown after an answer. Revealed holds the correct
// answer after a wrong submission and is nil otherwise.
type Feedback struct {
	Outcome  Outcome
	Message  string
	Color    core.Color
	Duration time.Duration
	Revealed *int
}
