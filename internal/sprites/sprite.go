// Package sprites loads the terminal art for the alien and its props and
// resolves sprite requests, substituting lower-stage art or deterministic
// placeholders when a sheet entry is missing.
package sprites

import (
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/alien-evolution/internal/core"
	"github.com/vovakirdan/alien-evolution/internal/evolution"
)

// Sprite is a block of terminal art. Spaces are transparent.
type Sprite struct {
	Name        string
	Lines       []string
	Color       core.Color
	Placeholder bool
}

// Width returns the widest row in runes.
func (s Sprite) Width() int {
	w := 0
	for _, l := range s.Lines {
		w = core.Max(w, utf8.RuneCountInString(l))
	}
	return w
}

// Height returns the number of rows.
func (s Sprite) Height() int {
	return len(s.Lines)
}

// Draw paints the sprite centered on (cx, cy), skipping spaces.
func (s Sprite) Draw(dst *core.Screen, cx, cy int, c core.Color) {
	x0 := cx - s.Width()/2
	y0 := cy - s.Height()/2
	for dy, line := range s.Lines {
		dx := 0
		for _, r := range line {
			if r != ' ' {
				dst.SetColored(x0+dx, y0+dy, r, c)
			}
			dx++
		}
	}
}

// Prop identifies a non-alien sprite.
type Prop int

const (
	PropMeteorite Prop = iota
	PropFire
	PropExplosion
)

// Props lists every prop in sheet order.
var Props = []Prop{PropMeteorite, PropFire, PropExplosion}

// String returns the sprite sheet name of the prop.
func (p Prop) String() string {
	switch p {
	case PropMeteorite:
		return "meteorite"
	case PropFire:
		return "fire"
	case PropExplosion:
		return "explosion"
	default:
		return "unknown"
	}
}

// stageColors are the placeholder colors per evolution stage.
var stageColors = map[int]core.Color{
	1: core.ColorGreen,
	2: core.ColorCyan,
	3: core.ColorPurple,
	4: core.ColorOrangeRed,
	5: core.ColorGold,
}

var propColors = map[Prop]core.Color{
	PropMeteorite: core.ColorBrown,
	PropFire:      core.ColorOrangeRed,
	PropExplosion: core.ColorOrange,
}

// StageColor returns the color associated with an evolution stage.
func StageColor(stage int) core.Color {
	if c, ok := stageColors[stage]; ok {
		return c
	}
	return core.ColorWhite
}

// placeholder draws a filled disc with the sprite name inside, e.g. "S3_idle".
// The result depends only on the name and color.
func placeholder(name string, c core.Color) Sprite {
	label := strings.Replace(name, "stage", "S", 1)
	w := utf8.RuneCountInString(label) + 4
	edge := " " + strings.Repeat("▄", w-2) + " "
	bottom := " " + strings.Repeat("▀", w-2) + " "
	middle := "██" + label + "██"
	return Sprite{
		Name:        name,
		Lines:       []string{edge, middle, bottom},
		Color:       c,
		Placeholder: true,
	}
}

// AlienPlaceholder returns the stand-in art for an alien sprite.
func AlienPlaceholder(key evolution.SpriteKey) Sprite {
	return placeholder(key.String(), StageColor(key.Stage))
}

// PropPlaceholder returns the stand-in art for a prop.
func PropPlaceholder(p Prop) Sprite {
	c, ok := propColors[p]
	if !ok {
		c = core.ColorWhite
	}
	return placeholder(p.String(), c)
}
