package audio

import "io"

// bellSequence is the ASCII BEL control character.
const bellSequence = "\a"

// Bell rings the terminal bell for each available cue and tracks the
// background music state requested by the game.
type Bell struct {
	out      io.Writer
	cues     map[Cue]bool
	hasMusic bool
	playing  bool
	rung     int
}

// PlayCue rings the bell if the cue's asset was found.
func (b *Bell) PlayCue(c Cue) {
	if !b.cues[c] || b.out == nil {
		return
	}
	//nolint:errcheck // Best-effort cue, silence on failure
	io.WriteString(b.out, bellSequence)
	b.rung++
}

// PauseMusic pauses background music.
func (b *Bell) PauseMusic() {
	if b.hasMusic {
		b.playing = false
	}
}

// ResumeMusic resumes background music.
func (b *Bell) ResumeMusic() {
	if b.hasMusic {
		b.playing = true
	}
}

// Stop stops music for good.
func (b *Bell) Stop() {
	b.playing = false
	b.hasMusic = false
}

// MusicPlaying reports whether background music is currently playing.
func (b *Bell) MusicPlaying() bool {
	return b.playing
}

// Rung returns how many cues have been played.
func (b *Bell) Rung() int {
	return b.rung
}
