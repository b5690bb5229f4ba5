package alien

import (
	"fmt"
	"math"

	"github.com/vovakirdan/alien-evolution/internal/core"
	"github.com/vovakirdan/alien-evolution/internal/evolution"
	"github.com/vovakirdan/alien-evolution/internal/sprites"
)

const (
	hudHeight       = 2 // Status line and rule
	fireSegments    = 5
	caughtLift      = 30 // Pixels between the caught meteorite and the alien's head
	bounceAmplitude = 0.1
	bobAmplitude    = 5.0
	wobbleRate      = 0.01 // Radians per millisecond of success time
)

// Render draws the current snapshot onto the screen.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorRed)
		dst.DrawTextCentered(dst.Height()/2+1,
			fmt.Sprintf("need %dx%d", minScreenW, minScreenH), core.ColorGray)
		return
	}

	s := g.machine.Snapshot()
	field := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight-1)

	g.renderHUD(dst, s)

	if s.MeteoriteVisible && (s.State == StateFalling || s.State == StateMiss) {
		g.renderMeteorite(dst, field, s.Meteorite)
	}
	if s.State == StateExplosion {
		g.renderExplosion(dst, field, s)
	}
	g.renderAlien(dst, s)
	if s.State == StateSuccess {
		g.renderCaught(dst, s)
	}

	if s.ResultText != "" {
		dst.DrawTextCentered(dst.Height()/3, s.ResultText, resultColor(s.State))
	}
	if s.EvolutionBanner {
		renderBanner(dst, dst.Height()/3+3, fmt.Sprintf("EVOLVED! Stage %d", s.Stage), sprites.StageColor(s.Stage))
	}

	dst.DrawTextCentered(dst.Height()-1, s.Instruction.Text(), core.ColorGray)
}

func (g *Game) renderHUD(dst *core.Screen, s Snapshot) {
	left := fmt.Sprintf("Level: %d  Stage: %d", s.Level, s.Stage)
	right := fmt.Sprintf("Speed: %.1fx  Explosions: %d", s.SpeedMultiplier, s.Explosions)
	dst.DrawTextColored(1, 0, left, sprites.StageColor(s.Stage))
	dst.DrawTextColored(dst.Width()-len(right)-1, 0, right, core.ColorWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

func (g *Game) renderMeteorite(dst *core.Screen, field core.Rect, m Meteorite) {
	cx, cy := g.toCell(m.X, m.Y)
	rock := g.sprites.Prop(sprites.PropMeteorite)
	fire := g.sprites.Prop(sprites.PropFire)

	// Trail segments above the rock, each one cell higher
	top := cy - rock.Height()/2
	for i := 1; i <= fireSegments; i++ {
		y := top - i
		if !field.Contains(cx, y) {
			break
		}
		r := '▒'
		if i > fireSegments/2 {
			r = '░'
		}
		if i == 1 && fire.Height() > 0 && !fire.Placeholder {
			fire.Draw(dst, cx, y, fire.Color)
			continue
		}
		dst.SetColored(cx, y, r, fire.Color)
	}

	rock.Draw(dst, cx, cy, rock.Color)
}

func (g *Game) renderExplosion(dst *core.Screen, field core.Rect, s Snapshot) {
	cx, cy := g.toCell(s.Alien.X, s.Alien.Y)
	boom := g.sprites.Prop(sprites.PropExplosion)
	c := fadeColor(boom.Color, s.ExplosionOpacity)

	// Ring grows with the explosion scale
	rx := int(math.Round(s.Alien.Size * s.ExplosionScale / 2 / float64(g.cfg.Layout.CellWidthPx)))
	ry := int(math.Round(s.Alien.Size * s.ExplosionScale / 2 / float64(g.cfg.Layout.CellHeightPx)))
	for a := 0; a < 360; a += 15 {
		rad := float64(a) * math.Pi / 180
		x := cx + int(math.Round(float64(rx)*math.Cos(rad)))
		y := cy + int(math.Round(float64(ry)*math.Sin(rad)))
		if field.Contains(x, y) {
			dst.SetColored(x, y, '*', c)
		}
	}
	boom.Draw(dst, cx, cy, c)
}

func (g *Game) renderAlien(dst *core.Screen, s Snapshot) {
	action := evolution.ActionIdle
	switch s.State {
	case StateSuccess:
		action = evolution.ActionCatch
	case StateExplosion:
		action = evolution.ActionExplode
	}
	sp := g.sprites.Lookup(s.Stage, action)

	cx, cy := g.toCell(s.Alien.X, s.Alien.Y)
	if s.State == StateSuccess {
		// Bounce: scale oscillates around 1, rendered as a vertical hop
		scale := 1 + math.Sin(s.SuccessT*wobbleRate)*bounceAmplitude
		hop := (scale - 1) * s.Alien.Size / float64(g.cfg.Layout.CellHeightPx)
		cy -= int(math.Round(hop))
	}
	if s.State == StateExplosion {
		sp.Draw(dst, cx, cy, fadeColor(sp.Color, s.ExplosionOpacity))
		return
	}
	sp.Draw(dst, cx, cy, sp.Color)
}

// renderCaught draws the caught meteorite bobbing above the alien.
func (g *Game) renderCaught(dst *core.Screen, s Snapshot) {
	rock := g.sprites.Prop(sprites.PropMeteorite)
	y := s.Alien.Y - s.Meteorite.Size - caughtLift + math.Sin(s.SuccessT*wobbleRate)*bobAmplitude
	cx, cy := g.toCell(s.Alien.X, y)
	rock.Draw(dst, cx, cy, rock.Color)
}

// renderBanner draws boxed text centered on row y.
func renderBanner(dst *core.Screen, y int, text string, c core.Color) {
	box := core.CenteredRect(dst.Width()/2, y, len([]rune(text))+4, 3)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	dst.DrawTextCentered(y, text, c)
}

// toCell maps canvas pixels to a screen cell.
func (g *Game) toCell(x, y float64) (int, int) {
	return int(math.Floor(x / float64(g.cfg.Layout.CellWidthPx))),
		int(math.Floor(y / float64(g.cfg.Layout.CellHeightPx)))
}

func resultColor(s State) core.Color {
	switch s {
	case StateSuccess:
		return core.ColorBrightGreen
	case StateMiss:
		return core.ColorYellow
	case StateExplosion:
		return core.ColorBrightRed
	default:
		return core.ColorWhite
	}
}

// fadeColor approximates opacity on a terminal by dimming toward gray.
func fadeColor(c core.Color, opacity float64) core.Color {
	switch {
	case opacity > 0.7:
		return c
	case opacity > 0.45:
		return core.ColorBrown
	default:
		return core.ColorGray
	}
}
