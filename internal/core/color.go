package core

// Color is a palette index for a cell's foreground.
type Color uint8

// Palette. The first fifteen follow the terminal's own ANSI slots; the rest
// are 256-color picks for the sorcerer's abilities and the domain backdrop.
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
	ColorOrange   // red ability
	ColorGray
	ColorDarkGray // arena grid
	ColorViolet   // purple and the domain
	ColorDeepBlue // domain starfield

	// ColorCount is the palette size, not a color.
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
	ColorDarkGray:      "238",
	ColorViolet:        "135",
	ColorDeepBlue:      "19",
}

// ANSI returns the terminal 256-color code for c. It is empty for
// ColorDefault and for anything outside the palette.
func (c Color) ANSI() string {
	if c >= ColorCount {
		return ""
	}
	return ansiCodes[c]
}
