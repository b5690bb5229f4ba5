package alien

import "time"

// Intent is what a tap means in the current state.
type Intent int

const (
	IntentNone  Intent = iota // Tap discarded
	IntentStart               // Start a round
	IntentCatch               // Try to catch the meteorite
)

// String returns the intent name.
func (i Intent) String() string {
	switch i {
	case IntentStart:
		return "start"
	case IntentCatch:
		return "catch"
	default:
		return "none"
	}
}

// Gate turns raw taps into machine calls. Taps are evaluated against the
// state current at call time and never queued.
type Gate struct {
	machine *Machine
}

// NewGate creates a gate in front of a machine.
func NewGate(m *Machine) *Gate {
	return &Gate{machine: m}
}

// Interpret returns what a tap would mean right now, without acting on it.
func (g *Gate) Interpret() Intent {
	switch g.machine.State() {
	case StateFalling:
		return IntentCatch
	case StateWaiting:
		return IntentStart
	default:
		return IntentNone
	}
}

// Handle applies a tap and returns the intent it was treated as.
func (g *Gate) Handle(now time.Duration) Intent {
	intent := g.Interpret()
	switch intent {
	case IntentCatch:
		g.machine.AttemptCatch(now)
	case IntentStart:
		g.machine.StartRound(now)
	}
	return intent
}
