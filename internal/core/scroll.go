package core

// Scroller tracks the offset of the decorative background grid.
// It has no effect on gameplay.
type Scroller struct {
	Vertical bool    // Scroll along y (racer, snake) instead of x (platformer)
	GridSize float64 // Distance between grid lines
	Offset   float64
}

// NewScroller creates a scroller for a grid of the given cell size.
func NewScroller(gridSize float64, vertical bool) *Scroller {
	return &Scroller{GridSize: gridSize, Vertical: vertical}
}

// Advance moves the grid by speed and wraps once a full cell has passed.
func (s *Scroller) Advance(speed float64) {
	s.Offset += speed
	if s.GridSize > 0 && AbsF(s.Offset) >= s.GridSize {
		s.Offset = 0
	}
}

// Draw renders the grid lines onto dst.
func (s *Scroller) Draw(dst Surface) {
	if s.GridSize <= 0 {
		return
	}
	w, h := dst.Size()
	if s.Vertical {
		for x := 0.0; x <= w; x += s.GridSize {
			dst.Fill(NewRect(x, 0, 1, h), VisualGrid)
		}
		for y := -s.GridSize + s.Offset; y <= h+s.GridSize; y += s.GridSize {
			dst.Fill(NewRect(0, y, w, 1), VisualGrid)
		}
		return
	}
	for x := s.Offset; x <= w; x += s.GridSize {
		dst.Fill(NewRect(x, 0, 1, h), VisualGrid)
	}
	for y := 0.0; y <= h; y += s.GridSize {
		dst.Fill(NewRect(0, y, w, 1), VisualGrid)
	}
}
