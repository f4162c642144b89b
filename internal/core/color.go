package core

// Color is a terminal palette entry for a screen cell. Front ends map it to
// their own color model.
type Color uint8

// Palette entries.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightWhite
	ColorGray
	ColorDarkGray
)

// Level item colors, shared by both dimensions.
const (
	ColorDoor  = ColorYellow
	ColorKey   = ColorGray
	ColorGoal  = ColorGreen
	ColorGhost = ColorDarkGray
)

// WallColor returns the wall color of dimension d.
func WallColor(d Dimension) Color {
	if d == Dark {
		return ColorBlue
	}
	return ColorWhite
}

// PlayerColor returns the player color while in dimension d.
func PlayerColor(d Dimension) Color {
	if d == Dark {
		return ColorMagenta
	}
	return ColorCyan
}
