package core

// Color is a foreground colour for a screen cell, mapped to ANSI codes by
// the terminal frontend.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorBrightRed
	ColorBrightYellow
	ColorBrightCyan
	ColorGray
)
