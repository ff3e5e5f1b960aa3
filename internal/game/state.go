// Package game wires the quiz session, the score ledger and the audio cues
// into the screen-to-screen state machine the terminal UI drives.
package game

// State is the active screen.
type State int

const (
	StateMainMenu State = iota
	StateDifficultySelect
	StateHowToPlay
	StatePlaying
	StatePaused
	StateResults
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateMainMenu:
		return "MainMenu"
	case StateDifficultySelect:
		return "DifficultySelect"
	case StateHowToPlay:
		return "HowToPlay"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateResults:
		return "Results"
	default:
		return "Unknown"
	}
}

// action is what choosing a menu option does.
type action int

const (
	actStart action = iota
	actHelp
	actQuit
	actTier
	actBack
	actResume
	actAbandon
	actSave
	actMenu
)

// Option is one selectable menu entry.
type Option struct {
	Label  string
	action action
	tier   int // quiz.Tier for actTier
}

// Instructions is the how-to-play text.
var Instructions = []string{
	"Answer as many problems as you can before time runs out.",
	"Type your answer with the number keys, '-' for negatives.",
	"Press Enter to submit and Backspace to delete.",
	"Each correct answer scores the tier's points.",
	"Wrong answers score nothing and show the right one.",
	"Press P while playing to pause, Esc to give up.",
}
