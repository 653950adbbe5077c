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
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBrown
	ColorDarkGray
	ColorSlate
	ColorIce
	ColorGold
)

// ColorFromHex picks the palette entry closest to a #RRGGBB string.
// Unknown or malformed input maps to ColorDefault.
func ColorFromHex(hex string) Color {
	switch hex {
	case "#808080":
		return ColorGray
	case "#606060":
		return ColorDarkGray
	case "#404040":
		return ColorDarkGray
	case "#483D8B":
		return ColorSlate
	case "#B9F2FF":
		return ColorIce
	case "#FFD700":
		return ColorGold
	case "#654321":
		return ColorBrown
	case "#FF0000":
		return ColorRed
	}
	return ColorDefault
}
