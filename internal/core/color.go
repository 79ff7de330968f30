package core

// Color is the foreground color of a screen cell. Every color maps to a
// value of the neon palette; the terminal frontend downsamples it to what
// the terminal supports.
type Color uint8

const (
	ColorDefault Color = iota // Terminal default foreground
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

	colorCount
)

var neonHex = [colorCount]string{
	ColorRed:           "#ff3355",
	ColorGreen:         "#00cc44",
	ColorYellow:        "#ffcc00",
	ColorBlue:          "#3366ff",
	ColorMagenta:       "#cc00cc",
	ColorCyan:          "#00cccc",
	ColorWhite:         "#dddddd",
	ColorBrightRed:     "#ff0044",
	ColorBrightGreen:   "#00ff00",
	ColorBrightYellow:  "#ffff00",
	ColorBrightBlue:    "#4488ff",
	ColorBrightMagenta: "#ff00ff",
	ColorBrightCyan:    "#00ffff",
	ColorBrightWhite:   "#ffffff",
	ColorOrange:        "#ff8800",
	ColorGray:          "#333333",
}

// Colors returns every color in declaration order.
func Colors() []Color {
	out := make([]Color, colorCount)
	for i := range out {
		out[i] = Color(i)
	}
	return out
}

// Hex returns the palette value as "#rrggbb". ColorDefault and unknown
// colors return "".
func (c Color) Hex() string {
	if c >= colorCount {
		return ""
	}
	return neonHex[c]
}
