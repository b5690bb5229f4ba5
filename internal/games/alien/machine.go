package alien

import (
	"math"
	"time"

	"github.com/vovakirdan/alien-evolution/internal/config"
	"github.com/vovakirdan/alien-evolution/internal/core"
	"github.com/vovakirdan/alien-evolution/internal/evolution"
)

// Explosion animation rates, per millisecond of animation time.
const (
	explosionGrowth  = 0.002
	explosionFade    = 0.0005
	explosionMaxSize = 2.0
	explosionMinFade = 0.3
)

// Machine owns the game state and every transition between states.
//
// Time only enters through the now arguments: the machine never reads a
// clock itself. State changes happen on entry to a state; timed exits are
// deadline checks inside Tick, so a deadline belonging to a state that has
// already been left can never fire.
type Machine struct {
	cfg config.EvolutionConfig

	state     State
	meteorite Meteorite
	alien     Alien

	level       int
	stage       int
	explosions  int
	justEvolved bool

	now        time.Duration // Latest time seen by Tick or an input
	lastTick   time.Duration
	ticked     bool
	stateStart time.Duration

	// Animation accumulators in milliseconds, reset on entering their state
	successT   float64
	missT      float64
	explosionT float64

	explosionScale   float64
	explosionOpacity float64

	resultText      string
	resultTextUntil time.Duration
	bannerUntil     time.Duration

	events []core.Event
}

// NewMachine creates a machine in Waiting with fresh progress.
// Call Resize before the first round so the alien has a position.
func NewMachine(cfg config.EvolutionConfig) *Machine {
	m := &Machine{cfg: cfg}
	m.alien = Alien{
		AnchorX: cfg.Layout.AlienX,
		AnchorY: cfg.Layout.AlienY,
		Size:    cfg.Layout.AlienSize,
	}
	m.meteorite = Meteorite{Size: cfg.Layout.MeteoriteSize}
	m.resetProgress()
	m.explosionScale = 1
	m.explosionOpacity = 1
	return m
}

// Resize recomputes the alien position for a canvas of w*h pixels.
// A meteorite already in flight keeps its position.
func (m *Machine) Resize(w, h float64) {
	m.alien.X = w * m.alien.AnchorX
	m.alien.Y = h * m.alien.AnchorY
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Level returns the consecutive catches since the last explosion.
func (m *Machine) Level() int {
	return m.level
}

// Stage returns the latched evolution stage.
func (m *Machine) Stage() int {
	return m.stage
}

// Explosions returns the session's explosion count.
func (m *Machine) Explosions() int {
	return m.explosions
}

// JustEvolved reports whether the last catch raised the stage.
func (m *Machine) JustEvolved() bool {
	return m.justEvolved
}

// Meteorite returns the falling object.
func (m *Machine) Meteorite() Meteorite {
	return m.meteorite
}

// Alien returns the target.
func (m *Machine) Alien() Alien {
	return m.alien
}

// SpeedMultiplier returns the multiplier for the current level.
func (m *Machine) SpeedMultiplier() float64 {
	return evolution.SpeedMultiplier(m.level, m.cfg.Physics.SpeedIncrement)
}

// CanCatch evaluates the catch test against the current positions without
// changing anything.
func (m *Machine) CanCatch() bool {
	return CatchTest(m.meteorite, m.alien, m.cfg.Catch)
}

// StartRound moves Waiting to Falling. It reports false in any other state.
func (m *Machine) StartRound(now time.Duration) bool {
	if m.state != StateWaiting {
		return false
	}
	m.observe(now)
	m.enter(StateFalling, now)
	m.successT, m.missT, m.explosionT = 0, 0, 0
	m.explosionScale, m.explosionOpacity = 1, 1
	m.spawn()
	m.emit(core.EventRoundStarted, now)
	return true
}

// AttemptCatch resolves a tap during Falling into Success or Miss.
// It reports false in any other state.
func (m *Machine) AttemptCatch(now time.Duration) bool {
	if m.state != StateFalling {
		return false
	}
	m.observe(now)
	if m.CanCatch() {
		m.succeed(now)
	} else {
		m.miss(now)
	}
	return true
}

// Reset abandons the current round and starts over from Waiting with level 0
// and stage 1. The explosion count belongs to the session and is kept.
func (m *Machine) Reset(now time.Duration) {
	m.observe(now)
	m.enter(StateWaiting, now)
	m.resetProgress()
	m.meteorite.Visible = false
	m.successT, m.missT, m.explosionT = 0, 0, 0
	m.explosionScale, m.explosionOpacity = 1, 1
	m.resultText = ""
	m.resultTextUntil = 0
	m.bannerUntil = 0
}

// Tick advances the simulation to now: it moves the meteorite, accumulates
// animation time and performs at most one timed transition.
func (m *Machine) Tick(now time.Duration) {
	var dt time.Duration
	if m.ticked && now > m.lastTick {
		dt = now - m.lastTick
	}
	if !m.ticked || now > m.lastTick {
		m.lastTick = now
	}
	m.ticked = true
	m.observe(now)

	elapsed := now - m.stateStart
	if elapsed < 0 {
		elapsed = 0
	}
	// Animation time never runs ahead of the time actually spent in the state
	step := msec(min(dt, elapsed))

	switch m.state {
	case StateFalling:
		m.meteorite.Y += m.meteorite.Speed
		if m.meteorite.Y >= impactY(m.alien, m.cfg.Catch) {
			m.explode(now)
		}

	case StateSuccess:
		m.successT += step
		if elapsed >= m.cfg.Timing.SuccessDisplay() {
			m.enterResult(now)
		}

	case StateMiss:
		m.missT += step
		if elapsed >= m.cfg.Timing.MissDuration() {
			m.continueFalling(now)
		}

	case StateExplosion:
		m.explosionT += step
		m.explosionScale = math.Min(m.explosionScale+step*explosionGrowth, explosionMaxSize)
		m.explosionOpacity = core.ClampF(1-m.explosionT*explosionFade, explosionMinFade, 1)
		if elapsed >= m.cfg.Timing.ExplosionDisplay() {
			m.enterResult(now)
		}

	case StateResult:
		if elapsed >= m.resultDuration() {
			m.justEvolved = false
			m.enter(StateWaiting, now)
		}
	}
}

// Events returns the transitions recorded since the last call and clears them.
func (m *Machine) Events() []core.Event {
	events := m.events
	m.events = nil
	return events
}

func (m *Machine) resultDuration() time.Duration {
	if m.justEvolved {
		return m.cfg.Timing.EvolutionPause()
	}
	return m.cfg.Timing.SuccessDisplay()
}

func (m *Machine) succeed(now time.Duration) {
	m.enter(StateSuccess, now)
	m.successT = 0
	m.meteorite.Visible = false
	m.level++

	next := evolution.Stage(m.level, m.cfg.Evolution.LevelInterval, m.cfg.Evolution.MaxStage)
	if next > m.stage {
		m.stage = next
		m.justEvolved = true
		m.bannerUntil = now + m.cfg.Timing.EvolutionBanner()
	} else {
		m.justEvolved = false
	}

	m.showResult("SUCCESS!", now, m.cfg.Timing.SuccessDisplay())
	m.emit(core.EventCaught, now)
	if m.justEvolved {
		m.emit(core.EventEvolved, now)
	}
}

func (m *Machine) miss(now time.Duration) {
	m.enter(StateMiss, now)
	m.missT = 0
	m.showResult("MISS!", now, m.cfg.Timing.MissDuration())
	m.emit(core.EventMissed, now)
}

func (m *Machine) explode(now time.Duration) {
	m.enter(StateExplosion, now)
	m.explosionT = 0
	m.explosionScale, m.explosionOpacity = 1, 1
	m.meteorite.Visible = false
	m.resetProgress()
	m.explosions++
	m.showResult("BOOM!", now, m.cfg.Timing.ExplosionDisplay())
	m.emit(core.EventExploded, now)
}

func (m *Machine) continueFalling(now time.Duration) {
	m.enter(StateFalling, now)
	m.spawn()
}

func (m *Machine) enterResult(now time.Duration) {
	m.enter(StateResult, now)
	m.emit(core.EventRoundFinished, now)
}

// spawn puts the meteorite above the canvas on the alien's column, at the
// speed for the current level.
func (m *Machine) spawn() {
	m.meteorite.X = m.alien.X
	m.meteorite.Y = -m.meteorite.Size
	m.meteorite.Speed = m.cfg.Physics.BaseSpeed * m.SpeedMultiplier()
	m.meteorite.Visible = true
}

func (m *Machine) resetProgress() {
	m.level = 0
	m.stage = evolution.MinStage
	m.justEvolved = false
}

func (m *Machine) enter(s State, now time.Duration) {
	m.state = s
	m.stateStart = now
}

// showResult flashes text that hides a little before the state's end.
func (m *Machine) showResult(text string, now, stateDuration time.Duration) {
	m.resultText = text
	m.resultTextUntil = now + stateDuration - m.cfg.Timing.ResultTextLead()
}

func (m *Machine) observe(now time.Duration) {
	if now > m.now {
		m.now = now
	}
}

func (m *Machine) emit(t core.EventType, now time.Duration) {
	m.events = append(m.events, core.Event{
		Type:       t,
		At:         now,
		Level:      m.level,
		Stage:      m.stage,
		Explosions: m.explosions,
	})
}

func msec(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
