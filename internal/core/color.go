package core

// Color is a foreground color for a screen cell.
// The platform layer maps each value to an ANSI 256-color code.
type Color uint8

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
	ColorBrightBlue
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Palette used by the race screens.
const (
	ColorPlayer   = ColorBrightRed
	ColorAIBlue   = ColorBrightBlue
	ColorAIGreen  = ColorBrightGreen
	ColorAIYellow = ColorBrightYellow
	ColorObstacle = ColorOrange
	ColorRoad     = ColorGray
)
