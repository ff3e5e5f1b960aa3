package quiz

import "time"

// Snapshot captures the session state needed to draw a frame.
type Snapshot struct {
	Tier         Tier
	Index        int
	Score        int
	Correct      int
	Incorrect    int
	ProblemText  string
	Input        string
	Remaining    time.Duration
	Feedback     Feedback
	ShowFeedback bool
	Animation    AnimationKind
	OffsetX      float64
	OffsetY      float64
}

// Snapshot returns the session state at now.
func (s *Session) Snapshot(now time.Time) Snapshot {
	dx, dy := s.animation.Offset(now)
	remaining := s.Remaining(now)
	if remaining < 0 {
		remaining = 0
	}
	return Snapshot{
		Tier:         s.tier,
		Index:        s.index,
		Score:        s.score,
		Correct:      s.correct,
		Incorrect:    s.incorrect,
		ProblemText:  s.problem.Text,
		Input:        s.input,
		Remaining:    remaining,
		Feedback:     s.feedback,
		ShowFeedback: s.feedbackActive,
		Animation:    s.animation.Kind(now),
		OffsetX:      dx,
		OffsetY:      dy,
	}
}
