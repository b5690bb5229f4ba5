package alien

// Snapshot is a read-only copy of everything the renderer and HUD need.
type Snapshot struct {
	State            State
	Meteorite        Meteorite
	MeteoriteVisible bool
	Alien            Alien

	Level           int
	Stage           int
	Explosions      int
	SpeedMultiplier float64
	JustEvolved     bool

	SuccessT         float64 // Milliseconds of success animation
	MissT            float64
	ExplosionT       float64
	ExplosionScale   float64 // Grows from 1 to 2
	ExplosionOpacity float64 // Fades from 1 to 0.3

	Instruction     Instruction
	ResultText      string // Empty when no result text is showing
	EvolutionBanner bool
}

// Snapshot captures the machine as of the latest time it has seen.
func (m *Machine) Snapshot() Snapshot {
	s := Snapshot{
		State:            m.state,
		Meteorite:        m.meteorite,
		MeteoriteVisible: m.meteorite.Visible,
		Alien:            m.alien,
		Level:            m.level,
		Stage:            m.stage,
		Explosions:       m.explosions,
		SpeedMultiplier:  m.SpeedMultiplier(),
		JustEvolved:      m.justEvolved,
		SuccessT:         m.successT,
		MissT:            m.missT,
		ExplosionT:       m.explosionT,
		ExplosionScale:   m.explosionScale,
		ExplosionOpacity: m.explosionOpacity,
		Instruction:      InstructionFor(m.state),
		EvolutionBanner:  m.now < m.bannerUntil,
	}
	if m.now < m.resultTextUntil {
		s.ResultText = m.resultText
	}
	return s
}
