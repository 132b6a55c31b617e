package core

// Color is the foreground colour of a screen cell. Renderers translate it to
// an ANSI 256-colour code with ANSI.
type Color uint8

// Cell colours. Each piece kind owns one normal and one bright colour.
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

	// ColorCount is the number of defined colours.
	ColorCount
)

var ansiCodes = [ColorCount]string{
	ColorRed:           "1",
	ColorGreen:         "2",
	ColorYellow:        "3",
	ColorBlue:          "4",
	ColorMagenta:       "5",
	ColorCyan:          "6",
	ColorWhite:         "7",
	ColorBrightRed:     "9",
	ColorBrightGreen:   "10",
	ColorBrightYellow:  "11",
	ColorBrightBlue:    "12",
	ColorBrightMagenta: "13",
	ColorBrightCyan:    "14",
	ColorBrightWhite:   "15",
	ColorOrange:        "208",
	ColorGray:          "245",
}

// ANSI returns the 256-colour code of c, or "" for the terminal default
// and unknown values.
func (c Color) ANSI() string {
	if c >= ColorCount {
		return ""
	}
	return ansiCodes[c]
}

// Shade picks the variant that stays readable on the background: the
// bright colour on dark terminals, the normal one on light terminals.
func Shade(bright, normal Color, darkBackground bool) Color {
	if darkBackground {
		return bright
	}
	return normal
}
