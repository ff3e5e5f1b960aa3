package quiz

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/mathsprint/internal/audio"
	"github.com/vovakirdan/mathsprint/internal/config"
	"github.com/vovakirdan/mathsprint/internal/core"
)

// fixedSource always returns the same problem.
type fixedSource struct {
	problem Problem
	err     error
	calls   int
}

func (f *fixedSource) Generate(Tier) (Problem, error) {
	f.calls++
	return f.problem, f.err
}

// recorder counts requested cues.
type recorder struct {
	cues []audio.Cue
}

func (r *recorder) PlayCue(c audio.Cue) { r.cues = append(r.cues, c) }
func (r *recorder) PauseMusic()         {}
func (r *recorder) ResumeMusic()        {}
func (r *recorder) Stop()               {}

func fivePlusThree(t *testing.T) *fixedSource {
	t.Helper()
	p, err := NewProblem(5, OpAdd, 3)
	if err != nil {
		t.Fatal(err)
	}
	return &fixedSource{problem: p}
}

func startedSession(t *testing.T, tier Tier) (*Session, *fixedSource, *recorder) {
	t.Helper()
	src := fivePlusThree(t)
	rec := &recorder{}
	s := NewSession(config.Default(), src, rec)
	if err := s.Start(tier, at(0)); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return s, src, rec
}

func TestSessionStart(t *testing.T) {
	s, src, _ := startedSession(t, TierEasy)

	if s.Index() != 1 || s.Score() != 0 || s.Input() != "" {
		t.Errorf("index=%d score=%d input=%q after Start", s.Index(), s.Score(), s.Input())
	}
	if s.Problem().Text != "5 + 3" || src.calls != 1 {
		t.Errorf("problem = %q after %d generations", s.Problem().Text, src.calls)
	}
	if _, showing := s.Feedback(); showing {
		t.Error("feedback should be inactive after Start")
	}
	if s.ID() == "" {
		t.Error("session id should be set")
	}
	if got := s.Remaining(at(0)); got != 90*time.Second {
		t.Errorf("Remaining = %v, want 90s", got)
	}

	first := s.ID()
	_ = s.Start(TierHard, at(1))
	if s.ID() == first {
		t.Error("restart should assign a new id")
	}
}

func TestSessionCorrectAnswer(t *testing.T) {
	s, _, rec := startedSession(t, TierEasy)

	s.SubmitAnswer("8", at(1))

	fb, showing := s.Feedback()
	if !showing {
		t.Fatal("feedback should be active")
	}
	if fb.Outcome != OutcomeCorrect || fb.Message != "Correct!" || fb.Color != core.ColorPositive {
		t.Errorf("feedback = %+v", fb)
	}
	if fb.Duration != 800*time.Millisecond || fb.Revealed != nil {
		t.Errorf("duration = %v revealed = %v, want 0.8s and nil", fb.Duration, fb.Revealed)
	}
	if s.Score() != 10 || s.Correct() != 1 {
		t.Errorf("score=%d correct=%d, want 10 and 1", s.Score(), s.Correct())
	}
	if len(rec.cues) != 1 || rec.cues[0] != audio.CueCorrect {
		t.Errorf("cues = %v, want [correct]", rec.cues)
	}
	if s.Animation().Kind(at(1.1)) != AnimBounce {
		t.Error("correct answer should bounce")
	}
}

func TestSessionIncorrectAnswers(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"sign only", "-"},
		{"wrong value", "9"},
		{"negative", "-8"},
		{"garbage", "8a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, rec := startedSession(t, TierEasy)
			s.SubmitAnswer(tt.raw, at(1))

			fb, showing := s.Feedback()
			if !showing || fb.Outcome != OutcomeIncorrect {
				t.Fatalf("feedback = %+v showing=%v", fb, showing)
			}
			if fb.Message != "Wrong!" || fb.Color != core.ColorNegative || fb.Duration != time.Second {
				t.Errorf("feedback = %+v", fb)
			}
			if fb.Revealed == nil || *fb.Revealed != 8 {
				t.Errorf("revealed = %v, want 8", fb.Revealed)
			}
			if s.Score() != 0 || s.Incorrect() != 1 {
				t.Errorf("score=%d incorrect=%d", s.Score(), s.Incorrect())
			}
			if len(rec.cues) != 1 || rec.cues[0] != audio.CueIncorrect {
				t.Errorf("cues = %v, want [incorrect]", rec.cues)
			}
			if s.Animation().Kind(at(1.1)) != AnimShake {
				t.Error("wrong answer should shake")
			}
		})
	}
}

func TestSessionSubmitDuringFeedbackIsIgnored(t *testing.T) {
	s, _, rec := startedSession(t, TierEasy)
	s.SubmitAnswer("8", at(1))
	s.SubmitAnswer("8", at(1.2))
	s.SubmitAnswer("1", at(1.3))

	if s.Score() != 10 || s.Correct() != 1 || s.Incorrect() != 0 || len(rec.cues) != 1 {
		t.Errorf("score=%d correct=%d incorrect=%d cues=%d", s.Score(), s.Correct(), s.Incorrect(), len(rec.cues))
	}
}

func TestSessionTickAdvancesAfterFeedback(t *testing.T) {
	s, src, _ := startedSession(t, TierEasy)
	s.TypeDigit('8')
	s.Submit(at(1))

	if _, err := s.Tick(at(1.79)); err != nil {
		t.Fatal(err)
	}
	if _, showing := s.Feedback(); !showing {
		t.Fatal("feedback should still be showing before 0.8s")
	}

	expired, err := s.Tick(at(1.8))
	if err != nil || expired {
		t.Fatalf("Tick = %v, %v", expired, err)
	}
	if _, showing := s.Feedback(); showing {
		t.Error("feedback should clear at 0.8s")
	}
	if s.Index() != 2 || s.Input() != "" || src.calls != 2 {
		t.Errorf("index=%d input=%q generations=%d", s.Index(), s.Input(), src.calls)
	}
}

func TestSessionPauseHoldsFeedbackAndAnimation(t *testing.T) {
	s, _, _ := startedSession(t, TierEasy)
	s.TypeDigit('8')
	s.Submit(at(1))

	if err := s.BeginPause(at(1.25)); err != nil {
		t.Fatal(err)
	}
	if err := s.EndPause(at(11.25)); err != nil {
		t.Fatal(err)
	}

	if !s.Animation().Active(at(11.4)) {
		t.Error("bounce should resume after the pause")
	}
	if _, err := s.Tick(at(11.5)); err != nil {
		t.Fatal(err)
	}
	if _, showing := s.Feedback(); !showing {
		t.Fatal("feedback should still be showing after resuming")
	}

	if _, err := s.Tick(at(12)); err != nil {
		t.Fatal(err)
	}
	if _, showing := s.Feedback(); showing {
		t.Error("feedback should clear once 0.8s of active time passed")
	}
	if s.Index() != 2 {
		t.Errorf("index = %d, want 2", s.Index())
	}
}

func TestSessionTickReportsExpiry(t *testing.T) {
	s, _, _ := startedSession(t, TierHard)

	if expired, _ := s.Tick(at(44.9)); expired {
		t.Error("should not expire before 45s")
	}
	if expired, _ := s.Tick(at(45)); !expired {
		t.Error("should expire at 45s")
	}
}

func TestSessionTickPropagatesGeneratorFailure(t *testing.T) {
	s, src, _ := startedSession(t, TierEasy)
	s.SubmitAnswer("8", at(1))
	src.err = ErrGenerationExhausted

	if _, err := s.Tick(at(2)); !errors.Is(err, ErrGenerationExhausted) {
		t.Errorf("Tick error = %v, want ErrGenerationExhausted", err)
	}
}

func TestSessionFinalizeExcludesPauses(t *testing.T) {
	s, _, _ := startedSession(t, TierMedium)
	s.SubmitAnswer("8", at(2))
	_, _ = s.Tick(at(3))
	s.SubmitAnswer("1", at(4))

	_ = s.BeginPause(at(10))
	_ = s.EndPause(at(15))

	r := s.Finalize(at(20))
	if r.Score != 15 || r.Correct != 1 || r.Incorrect != 1 {
		t.Errorf("result = %+v", r)
	}
	if r.TotalElapsed != 15*time.Second {
		t.Errorf("TotalElapsed = %v, want 15s", r.TotalElapsed)
	}
	if r.Tier != TierMedium || r.SessionID != s.ID() {
		t.Errorf("tier=%v id=%q", r.Tier, r.SessionID)
	}
	if r.Answered() != 2 || r.Accuracy() != 0.5 {
		t.Errorf("answered=%d accuracy=%v", r.Answered(), r.Accuracy())
	}
}

func TestSessionInputEditing(t *testing.T) {
	s, _, _ := startedSession(t, TierEasy)

	if !s.TypeMinus() {
		t.Error("minus should be accepted on empty input")
	}
	if s.TypeMinus() {
		t.Error("minus should be rejected after the first character")
	}
	if s.TypeDigit('x') {
		t.Error("non-digit accepted")
	}
	for i := 0; i < 20; i++ {
		s.TypeDigit('7')
	}
	if got := s.Input(); got != "-77777777" {
		t.Errorf("input = %q, want 9 characters with sign", got)
	}

	s.Backspace()
	if got := s.Input(); got != "-7777777" {
		t.Errorf("after backspace input = %q", got)
	}

	s.Submit(at(1))
	before := s.Input()
	s.TypeDigit('1')
	s.Backspace()
	if s.Input() != before {
		t.Error("edits during feedback should be ignored")
	}
}

func TestSessionNilSoundIsSilent(t *testing.T) {
	s := NewSession(config.Default(), fivePlusThree(t), nil)
	if err := s.Start(TierEasy, at(0)); err != nil {
		t.Fatal(err)
	}
	s.SubmitAnswer("8", at(1))
	if s.Score() != 10 {
		t.Errorf("score = %d", s.Score())
	}
}

func TestSessionSnapshot(t *testing.T) {
	s, _, _ := startedSession(t, TierEasy)
	s.TypeDigit('8')
	s.Submit(at(1))

	snap := s.Snapshot(at(1.25))
	if snap.ProblemText != "5 + 3" || snap.Input != "8" || !snap.ShowFeedback {
		t.Errorf("snapshot = %+v", snap)
	}
	if snap.Animation != AnimBounce {
		t.Errorf("animation = %v", snap.Animation)
	}
	if snap := s.Snapshot(at(200)); snap.Remaining != 0 {
		t.Errorf("remaining should clamp to zero, got %v", snap.Remaining)
	}
}
