package tui

import (
	"fmt"
	"math"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/mathsprint/internal/core"
	"github.com/vovakirdan/mathsprint/internal/game"
	"github.com/vovakirdan/mathsprint/internal/quiz"
)

// Title shown at the top of every menu.
const gameTitle = "M A T H S P R I N T"

// Character faces per animation.
var faces = map[quiz.AnimationKind]string{
	quiz.AnimIdle:   "(o_o)",
	quiz.AnimBounce: `\(^o^)/`,
	quiz.AnimShake:  "(>_<)",
}

// drawFrame renders the machine's current screen into dst.
func drawFrame(m *game.Machine, dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	if w < minScreenW || h < minScreenH {
		dst.DrawTextMid(h/2, "Terminal too small", core.ColorNegative)
		dst.DrawTextMid(h/2+1, fmt.Sprintf("need %dx%d", minScreenW, minScreenH+helpBarLines), core.ColorMuted)
		return
	}

	switch m.State() {
	case game.StateMainMenu:
		drawTitle(dst)
		dst.DrawTextMid(headerRow, "A timed arithmetic quiz", core.ColorMuted)
	case game.StateDifficultySelect:
		drawTitle(dst)
		dst.DrawTextMid(headerRow, "Choose a difficulty", core.ColorWhite)
	case game.StateHowToPlay:
		drawTitle(dst)
		dst.DrawTextMid(headerRow, "How to Play", core.ColorWhite)
		for i, line := range game.Instructions {
			dst.DrawTextMid(headerRow+2+i, line, core.ColorDefault)
		}
	case game.StatePlaying:
		drawPlaying(m, dst)
	case game.StatePaused:
		drawPlaying(m, dst)
		drawPauseOverlay(dst)
	case game.StateResults:
		drawResults(m, dst)
	}

	drawOptions(m, dst)
}

func drawTitle(dst *core.Screen) {
	dst.DrawTextMid(titleRow+1, gameTitle, core.ColorTitle)
}

func drawPlaying(m *game.Machine, dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	now := m.Now()
	snap := m.Session().Snapshot(now)

	// HUD
	dst.DrawText(2, titleRow, fmt.Sprintf("Score: %d", snap.Score), core.ColorWhite)
	dst.DrawTextMid(titleRow, fmt.Sprintf("Question %d", snap.Index), core.ColorWhite)
	timer := "Time " + formatClock(snap.Remaining)
	timerColor := core.ColorWhite
	if snap.Remaining <= time.Duration(m.Config().Timer.WarningSeconds)*time.Second {
		timerColor = core.ColorNegative
	}
	dst.DrawText(w-2-runewidth.StringWidth(timer), titleRow, timer, timerColor)
	dst.DrawTextMid(titleRow+1, fmt.Sprintf("%s · +%d per answer",
		snap.Tier.Title(), m.Session().Settings().PointsPerCorrect), core.ColorMuted)

	// Problem
	question := snap.ProblemText + " = ?"
	boxW := runewidth.StringWidth(question) + 8
	dst.DrawBox(core.CenteredRect(w, 5, boxW, 3), core.ColorHighlight)
	dst.DrawTextMid(6, question, core.ColorTitle)

	// Answer input
	cursor := "_"
	if snap.ShowFeedback {
		cursor = ""
	}
	dst.DrawTextMid(9, "> "+snap.Input+cursor, core.ColorHighlight)

	// Feedback
	if snap.ShowFeedback {
		dst.DrawTextMid(11, snap.Feedback.Message, snap.Feedback.Color)
		if snap.Feedback.Revealed != nil {
			dst.DrawTextMid(12, fmt.Sprintf("The answer was %d", *snap.Feedback.Revealed), core.ColorMuted)
		}
	}

	// Character
	face := faces[snap.Animation]
	cx := w/2 + int(math.Round(snap.OffsetX))
	cy := h - 5 + int(math.Round(snap.OffsetY))
	dst.DrawTextCentered(cx, cy, face, core.ColorYellow)
	dst.DrawTextMid(h-3, fmt.Sprintf("✓ %d   ✗ %d", snap.Correct, snap.Incorrect), core.ColorMuted)
}

func drawPauseOverlay(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	box := core.CenteredRect(w, h/2-4, optionWidth+6, 8)
	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ', core.ColorDefault)
		}
	}
	dst.DrawBox(box, core.ColorTitle)
	dst.DrawTextMid(box.Y+1, "PAUSED", core.ColorTitle)
}

func drawResults(m *game.Machine, dst *core.Screen) {
	res, _ := m.Result()

	dst.DrawTextMid(titleRow, "Session Over!", core.ColorTitle)
	dst.DrawTextMid(3, fmt.Sprintf("Total Score: %d", res.Score), core.ColorWhite)
	dst.DrawTextMid(4, fmt.Sprintf("Correct: %d   Wrong: %d", res.Correct, res.Incorrect), core.ColorDefault)
	dst.DrawTextMid(5, fmt.Sprintf("Accuracy: %.0f%%   Time: %s   Tier: %s",
		res.Accuracy()*100, formatClock(res.TotalElapsed), res.Tier.Title()), core.ColorMuted)

	nameColor := core.ColorMuted
	cursor := ""
	if m.NameFocused() {
		nameColor = core.ColorHighlight
		cursor = "_"
	}
	dst.DrawTextMid(7, "Name: "+m.Name()+cursor, nameColor)
	if m.NewHighScore() {
		dst.DrawTextMid(8, "New high score!", core.ColorPositive)
	}
	if status := m.Status(); status != "" {
		dst.DrawTextMid(9, status, core.ColorNegative)
	}

	dst.DrawTextMid(ledgerRow, "Top Scores", core.ColorTitle)
	board := m.Leaderboard()
	if len(board) == 0 {
		dst.DrawTextMid(ledgerRow+1, "No scores yet", core.ColorMuted)
		return
	}
	for i, e := range board {
		line := fmt.Sprintf("%-4s %-15s %6d  %s", humanize.Ordinal(i+1), e.Name, e.Score, e.Date)
		dst.DrawTextMid(ledgerRow+1+i, line, core.ColorDefault)
	}
}

func drawOptions(m *game.Machine, dst *core.Screen) {
	opts := m.Options()
	rects := optionRects(m, dst.Width(), dst.Height())
	for i, opt := range opts {
		r := rects[i]
		cx, _ := r.Center()
		label := opt.Label
		color := core.ColorDefault
		if i == m.Cursor() && !m.NameFocused() {
			label = "> " + label + " <"
			color = core.ColorHighlight
		}
		dst.DrawTextCentered(cx, r.Y, label, color)
	}
}

// formatClock renders a duration as mm:ss, rounding seconds up so the
// countdown reads 00:00 only when time is spent.
func formatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(math.Ceil(d.Seconds()))
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
