package alien

// State is the phase the game is in. Exactly one is active at a time.
type State int

const (
	StateWaiting   State = iota // Idle until the player taps to start a round
	StateFalling                // Meteorite falling, taps are catch attempts
	StateSuccess                // Caught; level and evolution already applied
	StateMiss                   // Mistimed tap; the meteorite respawns afterwards
	StateExplosion              // Meteorite reached the alien; progress reset
	StateResult                 // Pause before the next round
)

// String returns the lowercase state name used in logs and snapshots.
func (s State) String() string {
	switch s {
	case StateWaiting:
		return "waiting"
	case StateFalling:
		return "falling"
	case StateSuccess:
		return "success"
	case StateMiss:
		return "miss"
	case StateExplosion:
		return "explosion"
	case StateResult:
		return "result"
	default:
		return "unknown"
	}
}

// Instruction keys the hint text shown under the playfield.
type Instruction string

const (
	InstructionStart          Instruction = "start"
	InstructionCatch          Instruction = "catch"
	InstructionContinue       Instruction = "continue"
	InstructionWaitingForNext Instruction = "waitingForNext"
)

// InstructionFor returns the hint key for a state.
func InstructionFor(s State) Instruction {
	switch s {
	case StateWaiting:
		return InstructionStart
	case StateMiss:
		return InstructionContinue
	case StateResult:
		return InstructionWaitingForNext
	default:
		return InstructionCatch
	}
}

// instructionTexts are the English hint strings.
var instructionTexts = map[Instruction]string{
	InstructionStart:          "Tap (Space / Enter / click) to start!",
	InstructionCatch:          "Tap to catch!",
	InstructionContinue:       "Keep going!",
	InstructionWaitingForNext: "Waiting for the next round...",
}

// Text returns the hint string for the key.
func (i Instruction) Text() string {
	return instructionTexts[i]
}
