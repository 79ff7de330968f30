package core

import (
	"math"
	"strings"
	"testing"
)

type fillCall struct {
	r Rect
	v Visual
}

type recordSurface struct {
	w, h  float64
	fills []fillCall
	texts []string
	shade float64
}

func (s *recordSurface) Size() (float64, float64) { return s.w, s.h }
func (s *recordSurface) Fill(r Rect, v Visual)    { s.fills = append(s.fills, fillCall{r, v}) }
func (s *recordSurface) Text(_, _ float64, text string, _ Visual) {
	s.texts = append(s.texts, text)
}
func (s *recordSurface) TextCentered(_ float64, text string, _ Visual) {
	s.texts = append(s.texts, text)
}
func (s *recordSurface) Shade(alpha float64) { s.shade = alpha }

func TestGameOverButtons(t *testing.T) {
	restart, menu := GameOverButtons(1280, 720)

	if restart != NewRect(320, 504, 300, 80) {
		t.Errorf("restart button = %+v", restart)
	}
	if menu != NewRect(660, 504, 300, 80) {
		t.Errorf("menu button = %+v", menu)
	}
	if restart.Intersects(menu) {
		t.Error("buttons should not overlap")
	}

	// Odd heights are not exact in binary; the row must still be 70% down.
	restart, _ = GameOverButtons(1280, 1001)
	if math.Abs(restart.Y-700.7) > 1e-9 {
		t.Errorf("restart.Y = %v, expected 700.7", restart.Y)
	}
	if !restart.Contains(400, 540) || restart.Contains(700, 540) {
		t.Error("restart hit-test mismatch")
	}
}

func TestDrawGameOver(t *testing.T) {
	tests := []struct {
		name  string
		won   bool
		scale float64
		title string
	}{
		{"lost", false, 1, "Game Over!"},
		{"won", true, 1, "You Win!"},
		{"half scale", false, 0.5, "Game "},
		{"hidden title", false, 0, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := &recordSurface{w: 1280, h: 720}
			DrawGameOver(s, 120, tc.won, 0.8, tc.scale)

			if s.shade != 0.8 {
				t.Errorf("shade = %v, expected 0.8", s.shade)
			}
			joined := strings.Join(s.texts, "|")
			if !strings.Contains(joined, "Final Score: 120") {
				t.Errorf("missing score text in %q", joined)
			}
			if tc.title != "" && !strings.Contains(joined, tc.title) {
				t.Errorf("missing title %q in %q", tc.title, joined)
			}
			if tc.title == "" && strings.Contains(joined, "Game Over") {
				t.Errorf("title should be hidden at scale 0: %q", joined)
			}

			buttons := 0
			for _, f := range s.fills {
				if f.v == VisualButton {
					buttons++
				}
			}
			if buttons != 2 {
				t.Errorf("drew %d buttons, expected 2", buttons)
			}
		})
	}
}

func TestFadeSaturates(t *testing.T) {
	var f Fade
	for i := 0; i < 100; i++ {
		f.Step()
	}
	if f.Opacity != 0.8 {
		t.Errorf("Opacity = %v, expected 0.8", f.Opacity)
	}
	if f.Scale != 1 {
		t.Errorf("Scale = %v, expected 1", f.Scale)
	}
}

func TestScrollerWraps(t *testing.T) {
	s := NewScroller(40, true)
	for i := 0; i < 79; i++ {
		s.Advance(0.5)
	}
	if s.Offset != 39.5 {
		t.Fatalf("Offset = %v, expected 39.5", s.Offset)
	}
	s.Advance(0.5)
	if s.Offset != 0 {
		t.Errorf("Offset = %v, expected wrap to 0", s.Offset)
	}

	// Negative speeds wrap on magnitude.
	h := NewScroller(40, false)
	h.Advance(-45)
	if h.Offset != 0 {
		t.Errorf("Offset = %v, expected wrap to 0", h.Offset)
	}
}

func TestScrollerDraw(t *testing.T) {
	s := &recordSurface{w: 80, h: 40}
	NewScroller(40, false).Draw(s)
	for _, f := range s.fills {
		if f.v != VisualGrid {
			t.Fatalf("unexpected visual %v", f.v)
		}
	}
	if len(s.fills) == 0 {
		t.Error("expected grid lines")
	}
}
