package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Loop ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// Frame is what the loop driver hands to a game once per tick:
// the clock reading for this tick plus input gathered since the last one.
type Frame struct {
	Now   time.Duration
	Input InputFrame
}

// EventType identifies a gameplay transition worth recording.
type EventType int

const (
	EventRoundStarted EventType = iota
	EventCaught
	EventEvolved
	EventMissed
	EventExploded
	EventRoundFinished
)

// String returns the journal name of the event type.
func (t EventType) String() string {
	switch t {
	case EventRoundStarted:
		return "round_started"
	case EventCaught:
		return "caught"
	case EventEvolved:
		return "evolved"
	case EventMissed:
		return "missed"
	case EventExploded:
		return "exploded"
	case EventRoundFinished:
		return "round_finished"
	default:
		return "unknown"
	}
}

// Event is emitted by a game when a transition happens.
// Level, Stage and Explosions are the values after the transition.
type Event struct {
	Type       EventType
	At         time.Duration
	Level      int
	Stage      int
	Explosions int
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	Events []Event
}
