package quiz

import (
	"errors"
	"time"
)

var (
	// ErrNotPaused is returned by EndPause without a matching BeginPause.
	ErrNotPaused = errors.New("quiz: clock is not paused")
	// ErrAlreadyPaused is returned by BeginPause while already paused.
	ErrAlreadyPaused = errors.New("quiz: clock is already paused")
)

// SessionClock measures active session time net of paused intervals.
// While paused the active time is frozen at the pause instant.
type SessionClock struct {
	startedAt time.Time
	pausedAt  time.Time
	pausing   bool
	paused    time.Duration
}

// NewSessionClock starts a clock at now.
func NewSessionClock(now time.Time) SessionClock {
	return SessionClock{startedAt: now}
}

// ElapsedActive returns (now - start) minus all paused time.
func (c *SessionClock) ElapsedActive(now time.Time) time.Duration {
	ref := now
	if c.pausing {
		ref = c.pausedAt
	}
	return ref.Sub(c.startedAt) - c.paused
}

// Remaining returns budget minus active elapsed time. It may be negative;
// callers treat <= 0 as expired.
func (c *SessionClock) Remaining(budget time.Duration, now time.Time) time.Duration {
	return budget - c.ElapsedActive(now)
}

// BeginPause marks the start of a paused interval.
func (c *SessionClock) BeginPause(now time.Time) error {
	if c.pausing {
		return ErrAlreadyPaused
	}
	c.pausing = true
	c.pausedAt = now
	return nil
}

// EndPause closes the paused interval and adds it to the paused total.
func (c *SessionClock) EndPause(now time.Time) error {
	if !c.pausing {
		return ErrNotPaused
	}
	if d := now.Sub(c.pausedAt); d > 0 {
		c.paused += d
	}
	c.pausing = false
	return nil
}

// PausedTotal returns the cumulative length of completed pauses.
func (c *SessionClock) PausedTotal() time.Duration {
	return c.paused
}
