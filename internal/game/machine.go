package game

import (
	"fmt"
	"io"
	"time"
	"unicode"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mathsprint/internal/audio"
	"github.com/vovakirdan/mathsprint/internal/config"
	"github.com/vovakirdan/mathsprint/internal/core"
	"github.com/vovakirdan/mathsprint/internal/ledger"
	"github.com/vovakirdan/mathsprint/internal/quiz"
)

// Deps are the collaborators a Machine is built from.
type Deps struct {
	Config config.Config
	Source quiz.Source
	Ledger *ledger.Ledger
	Audio  audio.Player
	Clock  core.Clock
	Logger *log.Logger
}

// resultsFocus is the focused widget on the results screen.
type resultsFocus int

const (
	focusName resultsFocus = iota
	focusButtons
)

// Machine owns the whole game flow. It is not safe for concurrent use;
// the UI loop calls it from a single goroutine.
type Machine struct {
	cfg     config.Config
	session *quiz.Session
	ledger  *ledger.Ledger
	sound   audio.Player
	clock   core.Clock
	logger  *log.Logger

	state  State
	cursor int
	quit   bool

	result    quiz.Result
	finalized bool
	name      []rune
	focus     resultsFocus
	board     []ledger.Entry
	qualifies bool
	status    string
}

// New creates a machine at the main menu.
func New(d Deps) *Machine {
	if d.Audio == nil {
		d.Audio = audio.Silent{}
	}
	if d.Clock == nil {
		d.Clock = core.SystemClock{}
	}
	if d.Logger == nil {
		d.Logger = log.New(io.Discard)
	}
	if d.Source == nil {
		d.Source = quiz.NewGenerator(0, d.Config.Generator.MaxAttempts)
	}
	return &Machine{
		cfg:     d.Config,
		session: quiz.NewSession(d.Config, d.Source, d.Audio),
		ledger:  d.Ledger,
		sound:   d.Audio,
		clock:   d.Clock,
		logger:  d.Logger,
		state:   StateMainMenu,
	}
}

// Close releases audio resources.
func (m *Machine) Close() {
	m.sound.Stop()
}

// HandleEvent applies one input event. A non-nil error is fatal.
func (m *Machine) HandleEvent(ev core.Event) error {
	switch ev.Kind {
	case core.EventQuit:
		m.quit = true
		return nil
	case core.EventSelect:
		opts := m.Options()
		if ev.Option < 0 || ev.Option >= len(opts) {
			return nil
		}
		if m.state == StateResults {
			m.focus = focusButtons
		}
		m.cursor = ev.Option
		return m.activate(opts[ev.Option])
	case core.EventKey:
		return m.handleKey(ev)
	}
	return nil
}

func (m *Machine) handleKey(ev core.Event) error {
	switch m.state {
	case StatePlaying:
		m.handlePlayingKey(ev)
		return nil
	case StatePaused:
		if ev.Key == core.KeyRune && (ev.Rune == 'p' || ev.Rune == 'P') {
			m.resume()
			return nil
		}
		if ev.Key == core.KeyEscape {
			m.abandon()
			return nil
		}
	case StateResults:
		if ev.Key == core.KeyEscape {
			m.enter(StateMainMenu)
			return nil
		}
		if m.focus == focusName {
			m.handleNameKey(ev)
			return nil
		}
		if ev.Key == core.KeyTab {
			m.focus = focusName
			return nil
		}
	case StateDifficultySelect, StateHowToPlay:
		if ev.Key == core.KeyEscape {
			m.enter(StateMainMenu)
			return nil
		}
	}
	return m.handleMenuKey(ev)
}

// handleMenuKey moves the option cursor and activates the current option.
func (m *Machine) handleMenuKey(ev core.Event) error {
	opts := m.Options()
	if len(opts) == 0 {
		return nil
	}
	key := ev.Key
	if key == core.KeyRune {
		switch ev.Rune {
		case 'k':
			key = core.KeyUp
		case 'j':
			key = core.KeyDown
		}
	}
	switch key {
	case core.KeyUp:
		m.cursor = core.Clamp(m.cursor-1, 0, len(opts)-1)
	case core.KeyDown:
		m.cursor = core.Clamp(m.cursor+1, 0, len(opts)-1)
	case core.KeyEnter:
		return m.activate(opts[m.cursor])
	}
	return nil
}

func (m *Machine) handlePlayingKey(ev core.Event) {
	now := m.clock.Now()
	switch ev.Key {
	case core.KeyRune:
		switch {
		case ev.Rune == 'p' || ev.Rune == 'P':
			m.pause()
		case ev.Rune == '-':
			m.session.TypeMinus()
		case ev.Rune >= '0' && ev.Rune <= '9':
			m.session.TypeDigit(ev.Rune)
		}
	case core.KeyBackspace:
		m.session.Backspace()
	case core.KeyEnter:
		m.session.Submit(now)
	case core.KeyEscape:
		m.logger.Info("session forfeited", "session", m.session.ID(), "score", m.session.Score())
		m.enter(StateMainMenu)
	}
}

func (m *Machine) handleNameKey(ev core.Event) {
	switch ev.Key {
	case core.KeyRune:
		if unicode.IsPrint(ev.Rune) && len(m.name) < m.nameMax() {
			m.name = append(m.name, ev.Rune)
		}
	case core.KeyBackspace:
		if len(m.name) > 0 {
			m.name = m.name[:len(m.name)-1]
		}
	case core.KeyEnter:
		m.focus = focusButtons
		m.cursor = 0
	}
}

func (m *Machine) activate(opt Option) error {
	switch opt.action {
	case actStart:
		m.enter(StateDifficultySelect)
	case actHelp:
		m.enter(StateHowToPlay)
	case actQuit:
		m.quit = true
	case actTier:
		return m.startSession(quiz.Tier(opt.tier))
	case actBack, actMenu:
		m.enter(StateMainMenu)
	case actResume:
		m.resume()
	case actAbandon:
		m.abandon()
	case actSave:
		m.save()
	}
	return nil
}

func (m *Machine) enter(s State) {
	m.state = s
	m.cursor = 0
}

func (m *Machine) startSession(tier quiz.Tier) error {
	if err := m.session.Start(tier, m.clock.Now()); err != nil {
		m.logger.Error("cannot start session", "tier", tier, "err", err)
		return fmt.Errorf("game: start %s session: %w", tier, err)
	}
	m.finalized = false
	m.status = ""
	m.enter(StatePlaying)
	m.logger.Info("session started", "session", m.session.ID(), "tier", tier)
	return nil
}

func (m *Machine) pause() {
	if err := m.session.BeginPause(m.clock.Now()); err != nil {
		m.logger.Warn("pause ignored", "err", err)
		return
	}
	m.sound.PauseMusic()
	m.enter(StatePaused)
	m.logger.Debug("session paused", "session", m.session.ID())
}

func (m *Machine) resume() {
	if err := m.session.EndPause(m.clock.Now()); err != nil {
		m.logger.Warn("resume ignored", "err", err)
		return
	}
	m.sound.ResumeMusic()
	m.enter(StatePlaying)
	m.logger.Debug("session resumed", "session", m.session.ID(), "paused", m.session.Clock().PausedTotal())
}

// abandon discards a paused session.
func (m *Machine) abandon() {
	m.sound.ResumeMusic()
	m.logger.Info("session abandoned", "session", m.session.ID(), "score", m.session.Score())
	m.enter(StateMainMenu)
}

// finish finalizes the session exactly once and opens the results screen.
func (m *Machine) finish(now time.Time) {
	if m.finalized {
		return
	}
	m.finalized = true
	m.result = m.session.Finalize(now)
	m.name = []rune(m.cfg.Ledger.DefaultName)
	if len(m.name) == 0 {
		m.name = []rune("Player")
	}
	m.focus = focusName
	m.status = ""
	m.board = m.loadBoard()
	m.qualifies = m.ledger != nil && m.ledger.Qualifies(m.result.Score)
	m.enter(StateResults)
	m.logger.Info("session finished",
		"session", m.result.SessionID,
		"tier", m.result.Tier,
		"score", m.result.Score,
		"correct", m.result.Correct,
		"incorrect", m.result.Incorrect,
		"elapsed", m.result.TotalElapsed.Round(time.Millisecond),
	)
}

func (m *Machine) save() {
	if m.ledger == nil {
		m.enter(StateMainMenu)
		return
	}
	if !m.qualifies {
		m.status = fmt.Sprintf("Score %d does not make the top %d", m.result.Score, m.ledger.Capacity())
		return
	}
	entries, err := m.ledger.RecordIfEligible(string(m.name), m.result.Score)
	if err != nil {
		m.status = fmt.Sprintf("Could not save score: %v", err)
		return
	}
	m.board = entries
	m.enter(StateMainMenu)
}

func (m *Machine) loadBoard() []ledger.Entry {
	if m.ledger == nil {
		return nil
	}
	return m.ledger.Load()
}

// Update advances time-driven state. It is called once per frame.
func (m *Machine) Update() error {
	if m.state != StatePlaying {
		return nil
	}
	now := m.clock.Now()
	expired, err := m.session.Tick(now)
	if err != nil {
		m.logger.Error("problem generation failed", "session", m.session.ID(), "err", err)
		return fmt.Errorf("game: %w", err)
	}
	if expired {
		m.finish(now)
	}
	return nil
}

// Options returns the selectable entries of the current screen.
func (m *Machine) Options() []Option {
	switch m.state {
	case StateMainMenu:
		return []Option{
			{Label: "Start", action: actStart},
			{Label: "How to Play", action: actHelp},
			{Label: "Quit", action: actQuit},
		}
	case StateDifficultySelect:
		opts := make([]Option, 0, len(quiz.Tiers)+1)
		for _, t := range quiz.Tiers {
			s := t.Settings(m.cfg.Tiers)
			opts = append(opts, Option{
				Label:  fmt.Sprintf("%s  %ds · %d pts", t.Title(), s.SessionSeconds, s.PointsPerCorrect),
				action: actTier,
				tier:   int(t),
			})
		}
		return append(opts, Option{Label: "Back", action: actBack})
	case StateHowToPlay:
		return []Option{{Label: "Back to Menu", action: actBack}}
	case StatePaused:
		return []Option{
			{Label: "Resume (P)", action: actResume},
			{Label: "Main Menu", action: actAbandon},
		}
	case StateResults:
		return []Option{
			{Label: "Save Score", action: actSave},
			{Label: "Main Menu", action: actMenu},
		}
	}
	return nil
}

func (m *Machine) nameMax() int {
	if n := m.cfg.Ledger.NameMaxLength; n > 0 {
		return n
	}
	return 15
}

// State returns the active screen.
func (m *Machine) State() State { return m.state }

// Cursor returns the highlighted option index.
func (m *Machine) Cursor() int { return m.cursor }

// Quit reports whether the player asked to leave.
func (m *Machine) Quit() bool { return m.quit }

// Now reads the machine clock.
func (m *Machine) Now() time.Time { return m.clock.Now() }

// Config returns the game configuration.
func (m *Machine) Config() config.Config { return m.cfg }

// Session returns the current or last session.
func (m *Machine) Session() *quiz.Session { return m.session }

// Result returns the finished session summary and whether one exists.
func (m *Machine) Result() (quiz.Result, bool) { return m.result, m.finalized }

// Name returns the name typed on the results screen.
func (m *Machine) Name() string { return string(m.name) }

// NameFocused reports whether typing edits the name.
func (m *Machine) NameFocused() bool { return m.state == StateResults && m.focus == focusName }

// Leaderboard returns the entries shown on the results screen.
func (m *Machine) Leaderboard() []ledger.Entry { return m.board }

// NewHighScore reports whether the last result would enter the ledger.
func (m *Machine) NewHighScore() bool { return m.qualifies }

// Status returns the results screen status line, empty when all is well.
func (m *Machine) Status() string { return m.status }
