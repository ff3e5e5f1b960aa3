package quiz

import (
	"math"
	"time"

	"github.com/vovakirdan/mathsprint/internal/config"
)

// AnimationKind is the character's current motion.
type AnimationKind int

const (
	AnimIdle AnimationKind = iota
	AnimBounce
	AnimShake
)

// String returns the animation name.
func (k AnimationKind) String() string {
	switch k {
	case AnimBounce:
		return "bounce"
	case AnimShake:
		return "shake"
	default:
		return "idle"
	}
}

// shakeFrequency is the angular speed of the shake, in radians per second.
const shakeFrequency = 50.0

// Animation tracks the character cue triggered by each answer.
type Animation struct {
	cfg       config.AnimationConfig
	kind      AnimationKind
	startedAt time.Time
	duration  time.Duration
}

// NewAnimation creates an idle animation with the configured timings.
func NewAnimation(cfg config.AnimationConfig) Animation {
	return Animation{cfg: cfg}
}

// Trigger starts a bounce or shake at now, replacing any running cue.
func (a *Animation) Trigger(kind AnimationKind, now time.Time) {
	a.kind = kind
	a.startedAt = now
	switch kind {
	case AnimBounce:
		a.duration = a.cfg.BounceDuration()
	case AnimShake:
		a.duration = a.cfg.ShakeDuration()
	default:
		a.duration = 0
	}
}

// Reset returns to idle.
func (a *Animation) Reset() {
	a.kind = AnimIdle
	a.duration = 0
}

// Delay pushes a running cue back by d.
func (a *Animation) Delay(d time.Duration) {
	if a.kind != AnimIdle {
		a.startedAt = a.startedAt.Add(d)
	}
}

// Kind returns the motion at now; cues fall back to idle once elapsed.
func (a *Animation) Kind(now time.Time) AnimationKind {
	if a.kind == AnimIdle || now.Sub(a.startedAt) >= a.duration {
		return AnimIdle
	}
	return a.kind
}

// Active reports whether a cue is running at now.
func (a *Animation) Active(now time.Time) bool {
	return a.Kind(now) != AnimIdle
}

// Offset returns the character displacement at now. dy is negative upward.
func (a *Animation) Offset(now time.Time) (dx, dy float64) {
	kind := a.Kind(now)
	if kind == AnimIdle {
		return 0, 0
	}
	remaining := (a.duration - now.Sub(a.startedAt)).Seconds()
	switch kind {
	case AnimBounce:
		p := remaining / a.duration.Seconds()
		return 0, -(-4*p*p + 4*p) * a.cfg.BounceAmplitude
	case AnimShake:
		return math.Sin(remaining*shakeFrequency) * a.cfg.ShakeAmplitude, 0
	}
	return 0, 0
}
