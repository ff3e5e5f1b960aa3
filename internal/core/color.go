package core

// Color represents a foreground color for a screen cell.
// The platform layer maps it to an ANSI 256-color code.
type Color uint8

// Palette colors.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorGray
	ColorNavy
)

// Semantic colors used by the quiz screens.
const (
	ColorTitle     = ColorBrightYellow
	ColorPositive  = ColorBrightGreen
	ColorNegative  = ColorBrightRed
	ColorHighlight = ColorBrightBlue
	ColorMuted     = ColorGray
)
