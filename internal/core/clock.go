package core

import "time"

// Clock is a pausable monotonic clock. Now reports active time since the
// clock was created, excluding every span spent paused.
type Clock struct {
	source  func() time.Time
	origin  time.Time
	paused  bool
	pauseAt time.Time
	idle    time.Duration // accumulated paused time
	last    time.Duration
}

// NewClock creates a running clock. A nil source uses time.Now.
func NewClock(source func() time.Time) *Clock {
	if source == nil {
		source = time.Now
	}
	return &Clock{source: source, origin: source()}
}

// Now returns the active elapsed time. Readings never decrease, even if the
// source goes backwards.
func (c *Clock) Now() time.Duration {
	at := c.source()
	if c.paused {
		at = c.pauseAt
	}
	now := at.Sub(c.origin) - c.idle
	if now < c.last {
		return c.last
	}
	c.last = now
	return now
}

// Pause freezes the clock. Pausing a paused clock is a no-op.
func (c *Clock) Pause() {
	if c.paused {
		return
	}
	c.paused = true
	c.pauseAt = c.source()
}

// Resume restarts a paused clock. Resuming a running clock is a no-op.
func (c *Clock) Resume() {
	if !c.paused {
		return
	}
	if d := c.source().Sub(c.pauseAt); d > 0 {
		c.idle += d
	}
	c.paused = false
}

// Paused reports whether the clock is frozen.
func (c *Clock) Paused() bool {
	return c.paused
}
