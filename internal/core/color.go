package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorOrangeRed
	ColorPurple
	ColorGold
	ColorBrown
	ColorGray
)

// String returns the lowercase name used in sprite sheets.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "default"
}

var colorNames = map[Color]string{
	ColorDefault:      "default",
	ColorRed:          "red",
	ColorGreen:        "green",
	ColorYellow:       "yellow",
	ColorBlue:         "blue",
	ColorMagenta:      "magenta",
	ColorCyan:         "cyan",
	ColorWhite:        "white",
	ColorBrightRed:    "bright_red",
	ColorBrightGreen:  "bright_green",
	ColorBrightYellow: "bright_yellow",
	ColorBrightCyan:   "bright_cyan",
	ColorBrightWhite:  "bright_white",
	ColorOrange:       "orange",
	ColorOrangeRed:    "orange_red",
	ColorPurple:       "purple",
	ColorGold:         "gold",
	ColorBrown:        "brown",
	ColorGray:         "gray",
}

// ParseColor resolves a sprite sheet color name.
// Unknown names report ok=false and map to ColorDefault.
func ParseColor(name string) (Color, bool) {
	for c, n := range colorNames {
		if n == name {
			return c, true
		}
	}
	return ColorDefault, false
}
