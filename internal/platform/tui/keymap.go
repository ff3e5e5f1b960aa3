package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mathsprint/internal/core"
	"github.com/vovakirdan/mathsprint/internal/game"
)

// KeyMapper translates Bubble Tea key messages to game events.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an event. ok is false for keys the
// game ignores.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (ev core.Event, ok bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return core.QuitEvent(), true
	case tea.KeyEnter:
		return core.KeyEvent(core.KeyEnter), true
	case tea.KeyEsc:
		return core.KeyEvent(core.KeyEscape), true
	case tea.KeyBackspace, tea.KeyDelete:
		return core.KeyEvent(core.KeyBackspace), true
	case tea.KeyUp:
		return core.KeyEvent(core.KeyUp), true
	case tea.KeyDown:
		return core.KeyEvent(core.KeyDown), true
	case tea.KeyTab:
		return core.KeyEvent(core.KeyTab), true
	case tea.KeySpace:
		return core.RuneEvent(' '), true
	case tea.KeyRunes:
		if len(msg.Runes) == 1 && !msg.Paste {
			return core.RuneEvent(msg.Runes[0]), true
		}
	}
	return core.Event{}, false
}

// KeyMap holds the bindings shown in the help bar.
type KeyMap struct {
	Navigate key.Binding
	Select   key.Binding
	Back     key.Binding
	Answer   key.Binding
	Submit   key.Binding
	Delete   key.Binding
	Pause    key.Binding
	Forfeit  key.Binding
	Name     key.Binding
	Quit     key.Binding

	state game.State
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Navigate: key.NewBinding(
			key.WithKeys("up", "down", "k", "j"),
			key.WithHelp("↑/↓", "navigate"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Answer: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "-"),
			key.WithHelp("0-9/-", "type answer"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "delete"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "P"),
			key.WithHelp("p", "pause"),
		),
		Forfeit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "give up"),
		),
		Name: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "edit name"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ForState returns the key map with its help narrowed to state.
func (k KeyMap) ForState(s game.State) KeyMap {
	k.state = s
	return k
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	switch k.state {
	case game.StatePlaying:
		return []key.Binding{k.Answer, k.Submit, k.Delete, k.Pause, k.Forfeit}
	case game.StatePaused:
		return []key.Binding{k.Pause, k.Navigate, k.Select, k.Back}
	case game.StateResults:
		return []key.Binding{k.Name, k.Navigate, k.Select, k.Back}
	case game.StateMainMenu:
		return []key.Binding{k.Navigate, k.Select, k.Quit}
	default:
		return []key.Binding{k.Navigate, k.Select, k.Back}
	}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Navigate, k.Select, k.Back},
		{k.Answer, k.Submit, k.Delete},
		{k.Pause, k.Forfeit, k.Name, k.Quit},
	}
}
