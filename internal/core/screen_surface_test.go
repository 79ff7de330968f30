package core

import (
	"strings"
	"testing"
)

func TestScreenSurfaceScaling(t *testing.T) {
	scr := NewScreen(80, 24)
	s := NewScreenSurface(scr, WorldW, WorldH)

	if w, h := s.Size(); w != WorldW || h != WorldH {
		t.Fatalf("Size() = %v×%v", w, h)
	}

	// 1280/80 = 16 world px per column, 720/24 = 30 per row.
	s.Fill(NewRect(160, 300, 32, 30), VisualPlayer)
	if scr.Get(10, 10) != '█' || scr.Get(11, 10) != '█' {
		t.Errorf("player cells not filled: %q", scr.Row(10))
	}
	if scr.GetCell(10, 10).Color != ColorBrightCyan {
		t.Errorf("player color = %v", scr.GetCell(10, 10).Color)
	}
	if scr.Get(12, 10) != ' ' || scr.Get(10, 11) != ' ' {
		t.Error("fill spilled past rect")
	}
}

func TestScreenSurfaceSmallRectCoversCell(t *testing.T) {
	scr := NewScreen(80, 24)
	s := NewScreenSurface(scr, WorldW, WorldH)

	s.Fill(NewRect(0, 0, 1, 1), VisualCoin)
	if scr.Get(0, 0) != '●' {
		t.Errorf("tiny rect should cover one cell, got %q", scr.Get(0, 0))
	}

	s.Fill(NewRect(100, 100, 0, 10), VisualCoin)
	if strings.Count(scr.String(), "●") != 1 {
		t.Error("zero-width rect should draw nothing")
	}
}

func TestScreenSurfaceGridUnderlay(t *testing.T) {
	scr := NewScreen(80, 24)
	s := NewScreenSurface(scr, WorldW, WorldH)

	s.Fill(NewRect(0, 0, 16, 30), VisualEnemy)
	s.Fill(NewRect(0, 0, WorldW, 1), VisualGrid)
	if scr.Get(0, 0) != '▓' {
		t.Error("grid should not overwrite entities")
	}
	if scr.Get(1, 0) != '·' {
		t.Errorf("grid should fill empty cells, got %q", scr.Get(1, 0))
	}
}

func TestScreenSurfaceTextAndShade(t *testing.T) {
	scr := NewScreen(80, 24)
	s := NewScreenSurface(scr, WorldW, WorldH)

	DrawScore(s, 40)
	if !strings.Contains(scr.String(), "Score: 40") {
		t.Fatalf("score text missing:\n%s", scr.String())
	}

	s.Shade(0.8)
	if scr.GetCell(1, 0).Color != ColorGray {
		t.Error("shade should grey out existing text")
	}

	s.TextCentered(360, "Game Over!", VisualTitle)
	if !strings.Contains(scr.Row(12), "Game Over!") {
		t.Errorf("centered text on wrong row: %q", scr.Row(12))
	}
}
