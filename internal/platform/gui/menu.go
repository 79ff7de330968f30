package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/input"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

// Menu button layout in world units.
const (
	menuButtonX       = 490
	menuButtonW       = 300
	menuButtonH       = 60
	menuButtonTop     = 250
	menuButtonSpacing = 80
)

// Menu button ids that are not game ids.
const (
	buttonScores = "scores"
	buttonSound  = "sound"
)

// menuButtons lays out one button per label, stacked from the top.
func menuButtons(ids, labels []string) []input.Button {
	out := make([]input.Button, len(ids))
	for i := range ids {
		out[i] = input.Button{
			ID:    ids[i],
			Label: labels[i],
			Rect:  core.NewRect(menuButtonX, float64(menuButtonTop+i*menuButtonSpacing), menuButtonW, menuButtonH),
		}
	}
	return out
}

type menuScene struct {
	app     *App
	buttons []input.Button
	cursor  int
}

func newMenuScene(app *App) *menuScene {
	return &menuScene{app: app}
}

// OnEnter rebuilds the buttons so the sound label is current.
func (m *menuScene) OnEnter() {
	m.layout()
}

func (m *menuScene) OnExit() {}

func (m *menuScene) layout() {
	var ids, labels []string
	for _, g := range registry.List() {
		ids = append(ids, g.ID)
		labels = append(labels, g.Title)
	}
	ids = append(ids, buttonScores)
	labels = append(labels, "High Scores")
	if m.app.opts.Sounds != nil {
		ids = append(ids, buttonSound)
		if m.app.soundOn() {
			labels = append(labels, "Sound: On")
		} else {
			labels = append(labels, "Sound: Off")
		}
	}
	m.buttons = menuButtons(ids, labels)
	m.cursor = core.Clamp(m.cursor, 0, len(m.buttons)-1)
}

func (m *menuScene) Update() (Scene, error) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp), inpututil.IsKeyJustPressed(ebiten.KeyW):
		m.cursor = max(m.cursor-1, 0)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown), inpututil.IsKeyJustPressed(ebiten.KeyS):
		m.cursor = min(m.cursor+1, len(m.buttons)-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		return m.activate(m.buttons[m.cursor].ID)
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		m.app.toggleSound()
		m.layout()
	case inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return nil, ErrQuit
	}

	for _, ev := range pointerEvents() {
		if !ev.pressed {
			continue
		}
		for i, b := range m.buttons {
			if b.Rect.Contains(ev.x, ev.y) {
				m.cursor = i
				return m.activate(b.ID)
			}
		}
	}
	return nil, nil
}

// activate runs the button with id.
func (m *menuScene) activate(id string) (Scene, error) {
	switch id {
	case buttonScores:
		m.app.click()
		return newScoresScene(m.app), nil
	case buttonSound:
		m.app.toggleSound()
		m.layout()
		return nil, nil
	}

	game, err := registry.Create(id)
	if err != nil {
		return nil, err
	}
	m.app.click()
	return newPlayScene(m.app, game), nil
}

func (m *menuScene) Draw(screen *ebiten.Image) {
	s := NewImageSurface(screen)
	s.TextCentered(150, "N E O N   A R C A D E", core.VisualTitle)

	for i, b := range m.buttons {
		s.Fill(b.Rect, core.VisualButton)
		if i == m.cursor {
			s.Fill(core.NewRect(b.Rect.X-12, b.Rect.Y, 6, b.Rect.H), core.VisualPlayer)
		}
		s.TextCentered(b.Rect.Y+(b.Rect.H-glyphH)/2, b.Label, core.VisualHUD)
	}

	s.TextCentered(core.WorldH-40, "Arrows/WASD: Navigate  Enter: Select  M: Sound  Q: Quit", core.VisualHUD)
}
