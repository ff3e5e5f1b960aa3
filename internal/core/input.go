package core

// Key identifies a key the quiz engine reacts to, independent of the
// terminal library that produced it.
type Key int

const (
	KeyNone      Key = iota
	KeyRune          // Printable character, see Event.Rune
	KeyBackspace     // Delete last character
	KeyEnter         // Submit answer / confirm name / select option
	KeyEscape        // Forfeit / back to menu
	KeyUp            // Menu cursor up
	KeyDown          // Menu cursor down
	KeyTab           // Refocus the name field on the results screen
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyRune:
		return "Rune"
	case KeyBackspace:
		return "Backspace"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Escape"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyTab:
		return "Tab"
	default:
		return "Unknown"
	}
}

// EventKind distinguishes the input events polled each frame.
type EventKind int

const (
	EventNone   EventKind = iota
	EventKey              // Key press, see Event.Key and Event.Rune
	EventSelect           // Pointer click resolved to a menu option index
	EventQuit             // Window/terminal quit signal
)

// Event is a single input event handed to the state machine.
type Event struct {
	Kind   EventKind
	Key    Key
	Rune   rune // Typed character for KeyRune
	Option int  // Option index for EventSelect
}

// KeyEvent builds a non-character key event.
func KeyEvent(k Key) Event {
	return Event{Kind: EventKey, Key: k}
}

// RuneEvent builds a typed-character event.
func RuneEvent(r rune) Event {
	return Event{Kind: EventKey, Key: KeyRune, Rune: r}
}

// SelectEvent builds a pointer selection of option i.
func SelectEvent(i int) Event {
	return Event{Kind: EventSelect, Option: i}
}

// QuitEvent builds a quit signal.
func QuitEvent() Event {
	return Event{Kind: EventQuit}
}
