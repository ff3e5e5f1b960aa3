package tui

import (
	"github.com/vovakirdan/mathsprint/internal/core"
	"github.com/vovakirdan/mathsprint/internal/game"
)

// Layout constants
const (
	optionWidth  = 34 // Button width in columns
	titleRow     = 1
	headerRow    = 4
	resultsRow   = 11 // First results button row
	ledgerRow    = 14 // Leaderboard heading row on the results screen
	minScreenW   = 40
	minScreenH   = 20
	helpBarLines = 1
)

// optionRects lays out the current options. Drawing and mouse hit-testing
// both use it so a click lands on what was drawn.
func optionRects(m *game.Machine, w, h int) []core.Rect {
	opts := m.Options()
	if len(opts) == 0 {
		return nil
	}
	top, gap := optionsOrigin(m.State(), h)
	rects := make([]core.Rect, len(opts))
	for i := range opts {
		rects[i] = core.CenteredRect(w, top+i*gap, optionWidth, 1)
	}
	return rects
}

func optionsOrigin(s game.State, h int) (top, gap int) {
	switch s {
	case game.StateDifficultySelect:
		return 7, 2
	case game.StateHowToPlay:
		return headerRow + 2 + len(game.Instructions) + 1, 2
	case game.StatePaused:
		return h/2 - 1, 2
	case game.StateResults:
		return resultsRow, 1
	default:
		return 8, 2
	}
}

// hitOption returns the option index under (x, y), or -1.
func hitOption(rects []core.Rect, x, y int) int {
	for i, r := range rects {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}
