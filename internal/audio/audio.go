// Package audio provides the sound collaborator used by the quiz: short cues
// for correct and wrong answers plus background music control. Providers
// never fail at play time; missing assets degrade to silence.
package audio

import (
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mathsprint/internal/config"
)

// Cue identifies a short sound effect.
type Cue int

const (
	CueCorrect Cue = iota
	CueIncorrect
)

// String returns the cue name used in logs.
func (c Cue) String() string {
	switch c {
	case CueCorrect:
		return "correct"
	case CueIncorrect:
		return "incorrect"
	default:
		return "unknown"
	}
}

// Player is the audio capability consumed by the game.
type Player interface {
	PlayCue(c Cue)
	PauseMusic()
	ResumeMusic()
	Stop()
}

// Silent is a Player that does nothing.
type Silent struct{}

func (Silent) PlayCue(Cue)  {}
func (Silent) PauseMusic()  {}
func (Silent) ResumeMusic() {}
func (Silent) Stop()        {}

// Load builds a Player from the audio config. Cue assets that cannot be
// found are logged and stay silent; a disabled config yields Silent.
func Load(cfg config.AudioConfig, out io.Writer, logger *log.Logger) Player {
	if !cfg.Enabled {
		logger.Debug("audio disabled")
		return Silent{}
	}

	b := &Bell{out: out, cues: make(map[Cue]bool)}
	for cue, path := range map[Cue]string{
		CueCorrect:   cfg.CorrectCue,
		CueIncorrect: cfg.IncorrectCue,
	} {
		if probe(path, logger) {
			b.cues[cue] = true
			logger.Info("loaded sound", "cue", cue, "path", path)
		}
	}

	if probe(cfg.Music, logger) {
		b.hasMusic = true
		b.playing = true
		logger.Info("loaded music", "path", cfg.Music)
	}
	return b
}

// probe reports whether an asset file exists and is readable.
func probe(path string, logger *log.Logger) bool {
	if path == "" {
		return false
	}
	f, err := os.Open(path)
	if err != nil {
		logger.Warn("audio asset unavailable, using silence", "path", path, "error", err)
		return false
	}
	//nolint:errcheck // Read-only probe
	f.Close()
	return true
}
