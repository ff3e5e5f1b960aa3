package quiz

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/mathsprint/internal/config"
)

func TestAnimationLifecycle(t *testing.T) {
	a := NewAnimation(config.Default().Animation)
	if a.Active(at(0)) {
		t.Fatal("new animation should be idle")
	}

	a.Trigger(AnimBounce, at(0))
	if got := a.Kind(at(0.25)); got != AnimBounce {
		t.Errorf("Kind mid-bounce = %v, want bounce", got)
	}
	if got := a.Kind(at(0.5)); got != AnimIdle {
		t.Errorf("Kind after 0.5s = %v, want idle", got)
	}

	a.Trigger(AnimShake, at(1))
	if got := a.Kind(at(1.59)); got != AnimShake {
		t.Errorf("Kind mid-shake = %v, want shake", got)
	}
	if a.Active(at(1.6)) {
		t.Error("shake should end after 0.6s")
	}

	a.Trigger(AnimShake, at(2))
	a.Reset()
	if a.Active(at(2.1)) {
		t.Error("Reset should return to idle")
	}
}

func TestAnimationOffset(t *testing.T) {
	cfg := config.Default().Animation
	a := NewAnimation(cfg)

	a.Trigger(AnimBounce, at(0))
	// Peak height at the midpoint: -4(0.5)^2 + 4(0.5) = 1.
	dx, dy := a.Offset(at(0.25))
	if dx != 0 || math.Abs(dy+cfg.BounceAmplitude) > 1e-9 {
		t.Errorf("bounce midpoint offset = (%v, %v), want (0, %v)", dx, dy, -cfg.BounceAmplitude)
	}

	a.Trigger(AnimShake, at(0))
	now := at(0.1)
	remaining := (cfg.ShakeDuration() - 100*time.Millisecond).Seconds()
	dx, dy = a.Offset(now)
	want := math.Sin(remaining*50) * cfg.ShakeAmplitude
	if dy != 0 || math.Abs(dx-want) > 1e-9 {
		t.Errorf("shake offset = (%v, %v), want (%v, 0)", dx, dy, want)
	}

	if dx, dy := a.Offset(at(5)); dx != 0 || dy != 0 {
		t.Errorf("idle offset = (%v, %v), want zero", dx, dy)
	}
}
