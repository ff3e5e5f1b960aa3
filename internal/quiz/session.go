package quiz

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/mathsprint/internal/audio"
	"github.com/vovakirdan/mathsprint/internal/config"
	"github.com/vovakirdan/mathsprint/internal/core"
)

// Session is one timed run at a single tier.
type Session struct {
	id       string
	tier     Tier
	settings config.TierConfig

	tiers     config.TiersConfig
	feedCfg   config.FeedbackConfig
	maxInput  int
	source    Source
	sound     audio.Player
	animation Animation

	score     int
	correct   int
	incorrect int
	index     int    // 1-based question number
	input     string // typed answer, at most maxInput bytes
	problem   Problem

	feedback          Feedback
	feedbackActive    bool
	feedbackStartedAt time.Time

	clock SessionClock
}

// NewSession creates an idle session. A nil sound player is silent.
func NewSession(cfg config.Config, source Source, sound audio.Player) *Session {
	if sound == nil {
		sound = audio.Silent{}
	}
	maxInput := cfg.Input.MaxAnswerLength
	if maxInput < 1 {
		maxInput = 9
	}
	return &Session{
		tiers:     cfg.Tiers,
		feedCfg:   cfg.Feedback,
		maxInput:  maxInput,
		source:    source,
		sound:     sound,
		animation: NewAnimation(cfg.Animation),
	}
}

// Start resets the session for a new run at tier, beginning at now.
func (s *Session) Start(tier Tier, now time.Time) error {
	s.id = uuid.NewString()
	s.tier = tier
	s.settings = tier.Settings(s.tiers)
	s.score = 0
	s.correct = 0
	s.incorrect = 0
	s.index = 1
	s.input = ""
	s.feedback = Feedback{}
	s.feedbackActive = false
	s.feedbackStartedAt = time.Time{}
	s.clock = NewSessionClock(now)
	s.animation.Reset()
	return s.nextProblem()
}

func (s *Session) nextProblem() error {
	p, err := s.source.Generate(s.tier)
	if err != nil {
		return fmt.Errorf("quiz: next problem: %w", err)
	}
	s.problem = p
	return nil
}

// SubmitAnswer grades raw against the current problem. It does nothing
// while feedback is showing. Empty or sign-only input never matches.
func (s *Session) SubmitAnswer(raw string, now time.Time) {
	if s.feedbackActive {
		return
	}
	value, ok := parseAnswer(raw)
	if ok && value == s.problem.Answer {
		s.score += s.settings.PointsPerCorrect
		s.correct++
		s.feedback = Feedback{
			Outcome:  OutcomeCorrect,
			Message:  s.feedCfg.CorrectText,
			Color:    core.ColorPositive,
			Duration: s.feedCfg.CorrectDuration(),
		}
		s.animation.Trigger(AnimBounce, now)
		s.sound.PlayCue(audio.CueCorrect)
	} else {
		s.incorrect++
		revealed := s.problem.Answer
		s.feedback = Feedback{
			Outcome:  OutcomeIncorrect,
			Message:  s.feedCfg.IncorrectText,
			Color:    core.ColorNegative,
			Duration: s.feedCfg.IncorrectDuration(),
			Revealed: &revealed,
		}
		s.animation.Trigger(AnimShake, now)
		s.sound.PlayCue(audio.CueIncorrect)
	}
	s.feedbackActive = true
	s.feedbackStartedAt = now
}

// Submit grades the typed input.
func (s *Session) Submit(now time.Time) {
	s.SubmitAnswer(s.input, now)
}

// Tick advances feedback. Once the feedback interval has elapsed the next
// problem is shown. Outside feedback it reports whether the budget is spent.
func (s *Session) Tick(now time.Time) (expired bool, err error) {
	if s.feedbackActive {
		if now.Sub(s.feedbackStartedAt) >= s.feedback.Duration {
			s.feedbackActive = false
			s.feedback = Feedback{}
			s.index++
			s.input = ""
			return false, s.nextProblem()
		}
		return false, nil
	}
	return s.Remaining(now) <= 0, nil
}

// Finalize returns the session summary at now.
func (s *Session) Finalize(now time.Time) Result {
	return Result{
		SessionID:    s.id,
		Tier:         s.tier,
		Score:        s.score,
		Correct:      s.correct,
		Incorrect:    s.incorrect,
		TotalElapsed: s.clock.ElapsedActive(now),
	}
}

// TypeDigit appends a decimal digit to the input.
func (s *Session) TypeDigit(r rune) bool {
	if s.feedbackActive || r < '0' || r > '9' || len(s.input) >= s.maxInput {
		return false
	}
	s.input += string(r)
	return true
}

// TypeMinus starts a negative answer; only valid on empty input.
func (s *Session) TypeMinus() bool {
	if s.feedbackActive || s.input != "" {
		return false
	}
	s.input = "-"
	return true
}

// Backspace removes the last input character.
func (s *Session) Backspace() {
	if s.feedbackActive || s.input == "" {
		return
	}
	s.input = s.input[:len(s.input)-1]
}

// BeginPause freezes the session clock.
func (s *Session) BeginPause(now time.Time) error {
	return s.clock.BeginPause(now)
}

// EndPause resumes the session clock. A feedback interval or animation that
// was running when the pause began resumes where it left off.
func (s *Session) EndPause(now time.Time) error {
	before := s.clock.PausedTotal()
	if err := s.clock.EndPause(now); err != nil {
		return err
	}
	d := s.clock.PausedTotal() - before
	if s.feedbackActive {
		s.feedbackStartedAt = s.feedbackStartedAt.Add(d)
	}
	s.animation.Delay(d)
	return nil
}

// Remaining returns the time left in the tier budget.
func (s *Session) Remaining(now time.Time) time.Duration {
	return s.clock.Remaining(s.settings.SessionDuration(), now)
}

func (s *Session) ID() string                  { return s.id }
func (s *Session) Tier() Tier                  { return s.tier }
func (s *Session) Settings() config.TierConfig { return s.settings }
func (s *Session) Score() int                  { return s.score }
func (s *Session) Correct() int                { return s.correct }
func (s *Session) Incorrect() int              { return s.incorrect }
func (s *Session) Index() int                  { return s.index }
func (s *Session) Input() string               { return s.input }
func (s *Session) Problem() Problem            { return s.problem }
func (s *Session) Clock() *SessionClock        { return &s.clock }
func (s *Session) Animation() *Animation       { return &s.animation }

// Feedback returns the current feedback and whether it is showing.
func (s *Session) Feedback() (Feedback, bool) {
	return s.feedback, s.feedbackActive
}

// parseAnswer reads a signed decimal integer. "" and "-" are rejected.
func parseAnswer(raw string) (int, bool) {
	if raw == "" || raw == "-" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
