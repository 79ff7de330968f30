package gui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/scores"
)

// scoresColumn is one game's column on the scoreboard.
type scoresColumn struct {
	title   string
	entries []scores.Entry
}

type scoresScene struct {
	app     *App
	columns []scoresColumn
	back    core.Rect
}

func newScoresScene(app *App) *scoresScene {
	return &scoresScene{
		app:  app,
		back: core.NewRect(menuButtonX, 560, menuButtonW, menuButtonH),
	}
}

// OnEnter loads the current top scores.
func (s *scoresScene) OnEnter() {
	s.columns = s.columns[:0]
	for _, g := range registry.List() {
		s.columns = append(s.columns, scoresColumn{
			title:   g.Title,
			entries: s.app.opts.Board.TopScores(g.ID),
		})
	}
}

func (s *scoresScene) OnExit() {}

func (s *scoresScene) Update() (Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.app.click()
		return newMenuScene(s.app), nil
	}
	for _, ev := range pointerEvents() {
		if ev.pressed && s.back.Contains(ev.x, ev.y) {
			s.app.click()
			return newMenuScene(s.app), nil
		}
	}
	return nil, nil
}

func (s *scoresScene) Draw(screen *ebiten.Image) {
	surf := NewImageSurface(screen)
	surf.TextCentered(100, "HIGH SCORES", core.VisualTitle)

	if len(s.columns) > 0 {
		colW := float64(core.WorldW) / float64(len(s.columns))
		for i, col := range s.columns {
			x := float64(i)*colW + colW/2 - 60
			surf.Text(x, 200, col.title, core.VisualTitle)
			if len(col.entries) == 0 {
				surf.Text(x, 240, "No scores yet", core.VisualHUD)
				continue
			}
			for rank, e := range col.entries {
				surf.Text(x, 240+float64(rank)*30, fmt.Sprintf("%d. %d", rank+1, e.Score), core.VisualHUD)
			}
		}
	}

	surf.Fill(s.back, core.VisualButton)
	surf.TextCentered(s.back.Y+(s.back.H-glyphH)/2, "Back to Main Menu", core.VisualHUD)
}
