package core

import "math"

// cellStyle is the glyph and color used for a visual on a character grid.
type cellStyle struct {
	fill  rune
	color Color
}

var cellStyles = map[Visual]cellStyle{
	VisualPlayer:    {'█', ColorBrightCyan},
	VisualPlatform:  {'▀', ColorGreen},
	VisualEnemy:     {'▓', ColorBrightRed},
	VisualCoin:      {'●', ColorBrightYellow},
	VisualObstacle:  {'▓', ColorMagenta},
	VisualSnakeHead: {'█', ColorBrightGreen},
	VisualSnakeBody: {'▒', ColorGreen},
	VisualFood:      {'●', ColorRed},
	VisualGrid:      {'·', ColorGray},
	VisualHUD:       {' ', ColorBrightWhite},
	VisualTitle:     {' ', ColorBrightYellow},
	VisualButton:    {'░', ColorBlue},
	VisualBanner:    {' ', ColorBrightMagenta},
}

// ScreenSurface adapts a character Screen to the Surface interface by
// scaling world coordinates down to cells.
type ScreenSurface struct {
	screen *Screen
	worldW float64
	worldH float64
}

// NewScreenSurface wraps screen; the whole world (worldW×worldH) maps onto it.
func NewScreenSurface(screen *Screen, worldW, worldH float64) *ScreenSurface {
	return &ScreenSurface{screen: screen, worldW: worldW, worldH: worldH}
}

// Screen returns the underlying character buffer.
func (s *ScreenSurface) Screen() *Screen {
	return s.screen
}

// Size returns the world size.
func (s *ScreenSurface) Size() (float64, float64) {
	return s.worldW, s.worldH
}

func (s *ScreenSurface) toCellX(x float64) int {
	return int(math.Floor(x * float64(s.screen.Width()) / s.worldW))
}

func (s *ScreenSurface) toCellY(y float64) int {
	return int(math.Floor(y * float64(s.screen.Height()) / s.worldH))
}

// Fill paints every cell the rectangle touches. Non-empty rectangles cover at
// least one cell. Grid lines only paint empty cells.
func (s *ScreenSurface) Fill(r Rect, v Visual) {
	st, ok := cellStyles[v]
	if !ok || st.fill == ' ' || r.W <= 0 || r.H <= 0 {
		return
	}

	x0, y0 := s.toCellX(r.X), s.toCellY(r.Y)
	x1 := int(math.Ceil(r.Right() * float64(s.screen.Width()) / s.worldW))
	y1 := int(math.Ceil(r.Bottom() * float64(s.screen.Height()) / s.worldH))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if v == VisualGrid && s.screen.Get(x, y) != ' ' {
				continue
			}
			s.screen.SetColored(x, y, st.fill, st.color)
		}
	}
}

// Text draws text starting at the cell containing (x, y).
func (s *ScreenSurface) Text(x, y float64, text string, v Visual) {
	s.screen.DrawTextColored(s.toCellX(x), s.toCellY(y), text, cellStyles[v].color)
}

// TextCentered draws text centered on the row containing y.
func (s *ScreenSurface) TextCentered(y float64, text string, v Visual) {
	n := len([]rune(text))
	x := (s.screen.Width() - n) / 2
	s.screen.DrawTextColored(x, s.toCellY(y), text, cellStyles[v].color)
}

// Shade greys out what has been drawn so far once alpha is strong enough to
// matter on a terminal.
func (s *ScreenSurface) Shade(alpha float64) {
	if alpha < 0.3 {
		return
	}
	for y := 0; y < s.screen.Height(); y++ {
		for x := 0; x < s.screen.Width(); x++ {
			c := s.screen.GetCell(x, y)
			if c.Rune != ' ' {
				s.screen.SetColored(x, y, c.Rune, ColorGray)
			}
		}
	}
}
