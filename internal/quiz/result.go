package quiz

import "time"

// Result is the end-of-session summary.
type Result struct {
	SessionID    string
	Tier         Tier
	Score        int
	Correct      int
	Incorrect    int
	TotalElapsed time.Duration // active time, pauses excluded
}

// Answered returns the number of submitted answers.
func (r Result) Answered() int {
	return r.Correct + r.Incorrect
}

// Accuracy returns the share of correct answers in [0, 1].
func (r Result) Accuracy() float64 {
	n := r.Answered()
	if n == 0 {
		return 0
	}
	return float64(r.Correct) / float64(n)
}
