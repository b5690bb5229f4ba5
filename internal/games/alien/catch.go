package alien

import (
	"math"

	"github.com/vovakirdan/alien-evolution/internal/config"
)

// Meteorite is the falling object, in canvas pixels.
type Meteorite struct {
	X, Y    float64
	Size    float64
	Speed   float64 // Pixels per tick
	Visible bool
}

// Alien is the stationary target. X and Y are resolved from the anchor
// fractions whenever the canvas is resized.
type Alien struct {
	AnchorX, AnchorY float64
	X, Y             float64
	Size             float64
}

// CatchTest reports whether a tap catches the meteorite. The window is the
// rectangle |dx| <= window/2 and alien.Y-verticalTolerance < y < alien.Y+lowerBound.
func CatchTest(m Meteorite, a Alien, c config.Catch) bool {
	dx := math.Abs(m.X - a.X)
	return dx <= c.Window/2 &&
		m.Y > a.Y-c.VerticalTolerance &&
		m.Y < a.Y+c.LowerBound
}

// impactY is the height at which an uncaught meteorite hits the alien.
func impactY(a Alien, c config.Catch) float64 {
	return a.Y + a.Size/2 - c.ImpactMargin
}
