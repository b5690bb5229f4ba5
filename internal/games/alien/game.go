// Package alien implements Alien Evolution: tap to catch meteorites before
// they hit the alien, evolve it every few catches, and start over when one
// gets through.
package alien

import (
	"github.com/vovakirdan/alien-evolution/internal/config"
	"github.com/vovakirdan/alien-evolution/internal/core"
	"github.com/vovakirdan/alien-evolution/internal/registry"
	"github.com/vovakirdan/alien-evolution/internal/sprites"
)

// GameID is the registry identifier.
const GameID = "evolution"

// Minimum terminal size for a playable field.
const (
	minScreenW = 30
	minScreenH = 16
)

// Options configures games created through the registry.
type Options struct {
	Config  config.EvolutionConfig
	Sprites *sprites.Set
}

var options = Options{Config: config.DefaultEvolutionConfig()}

// Configure sets the options used by the registry factory.
// Call it before registry.Create.
func Configure(o Options) {
	options = o
}

// Game adapts the state machine to the platform: it maps the terminal grid
// onto canvas pixels, routes taps through the gate and draws snapshots.
type Game struct {
	cfg     config.EvolutionConfig
	sprites *sprites.Set
	machine *Machine
	gate    *Gate
	runtime core.RuntimeConfig

	tooSmall bool
}

// New creates a game. A nil sprite set draws placeholders everywhere.
func New(cfg config.EvolutionConfig, set *sprites.Set) *Game {
	if set == nil {
		set = sprites.NewSet()
	}
	g := &Game{cfg: cfg, sprites: set}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Alien Evolution"
}

// Reset starts a fresh session for the given screen.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.machine = NewMachine(g.cfg)
	g.gate = NewGate(g.machine)
	g.Resize(rt)
}

// Resize adapts to a new screen size, keeping the session.
func (g *Game) Resize(rt core.RuntimeConfig) {
	g.runtime = rt
	g.tooSmall = rt.ScreenW < minScreenW || rt.ScreenH < minScreenH
	w, h := g.canvasSize()
	g.machine.Resize(w, h)
}

// Step applies the frame's input, then advances the machine to frame.Now.
func (g *Game) Step(f core.Frame) core.StepResult {
	if f.Input.Has(core.ActionReset) {
		g.machine.Reset(f.Now)
	}
	if f.Input.Has(core.ActionTap) {
		g.gate.Handle(f.Now)
	}
	g.machine.Tick(f.Now)
	return core.StepResult{Events: g.machine.Events()}
}

// Snapshot returns the renderer view of the machine.
func (g *Game) Snapshot() Snapshot {
	return g.machine.Snapshot()
}

// Machine exposes the state machine, mainly for tests and tooling.
func (g *Game) Machine() *Machine {
	return g.machine
}

// canvasSize returns the canvas dimensions in pixels.
func (g *Game) canvasSize() (float64, float64) {
	return float64(g.runtime.ScreenW * g.cfg.Layout.CellWidthPx),
		float64(g.runtime.ScreenH * g.cfg.Layout.CellHeightPx)
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New(options.Config, options.Sprites)
	})
}
