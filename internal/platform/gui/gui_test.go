package gui

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/neon-arcade/internal/core"
	_ "github.com/vovakirdan/neon-arcade/internal/games/snake"
	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/scores"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	return NewApp(Options{
		Board:  scores.NewMemoryBoard(),
		Logger: log.New(io.Discard),
	})
}

func TestMenuButtonsLayout(t *testing.T) {
	buttons := menuButtons([]string{"a", "b", "c"}, []string{"A", "B", "C"})
	require.Len(t, buttons, 3)
	for i, b := range buttons {
		assert.Equal(t, float64(menuButtonX), b.Rect.X)
		assert.Equal(t, float64(250+i*80), b.Rect.Y)
		assert.Equal(t, float64(menuButtonW), b.Rect.W)
		assert.Equal(t, float64(menuButtonH), b.Rect.H)
	}
	assert.Equal(t, "B", buttons[1].Label)
}

func TestNewAppStartsOnMenu(t *testing.T) {
	app := newTestApp(t)

	m, ok := app.current.(*menuScene)
	require.True(t, ok)
	assert.Equal(t, 60, app.opts.Config.TickRate)

	var ids []string
	for _, b := range m.buttons {
		ids = append(ids, b.ID)
	}
	// No sound manager, so no sound button.
	assert.Equal(t, []string{"snake", buttonScores}, ids)

	w, h := app.Layout(1920, 1080)
	assert.Equal(t, core.WorldW, w)
	assert.Equal(t, core.WorldH, h)
}

func TestMenuActivate(t *testing.T) {
	app := newTestApp(t)
	m := app.current.(*menuScene)

	next, err := m.activate(buttonScores)
	require.NoError(t, err)
	assert.IsType(t, &scoresScene{}, next)

	next, err = m.activate("snake")
	require.NoError(t, err)
	assert.IsType(t, &playScene{}, next)

	_, err = m.activate("missing")
	assert.Error(t, err)
}

func TestSceneSwitchCallsHooks(t *testing.T) {
	app := newTestApp(t)
	play, err := app.current.(*menuScene).activate("snake")
	require.NoError(t, err)

	app.switchTo(play)
	p := play.(*playScene)
	assert.True(t, p.runner.Running())

	app.switchTo(newMenuScene(app))
	assert.False(t, p.runner.Running())
	assert.Equal(t, "menu", sceneName(app.current))
}

func TestScoresSceneLoadsBoard(t *testing.T) {
	app := newTestApp(t)
	app.opts.Board.RecordScore("snake", 40)
	app.opts.Board.RecordScore("snake", 70)

	s := newScoresScene(app)
	s.OnEnter()

	require.Len(t, s.columns, 1)
	assert.Equal(t, "Snake", s.columns[0].title)
	assert.Equal(t, []scores.Entry{{Score: 70}, {Score: 40}}, s.columns[0].entries)
}

func TestPlaySceneTouchPads(t *testing.T) {
	app := newTestApp(t)
	p := newPlayScene(app, mustCreate(t, "snake"))
	p.OnEnter()
	defer p.OnExit()

	// Left pad.
	p.handlePointer(pointerEvent{source: 3, x: 60, y: 640, pressed: true})
	assert.Equal(t, "left", p.pointers[3])

	// Released elsewhere still releases the pad it went down on.
	p.handlePointer(pointerEvent{source: 3, x: 640, y: 100})
	assert.Empty(t, p.pointers)

	// Misses are ignored.
	p.handlePointer(pointerEvent{source: mouseSource, x: 640, y: 100, pressed: true})
	assert.Empty(t, p.pointers)
}

func TestPlaySceneMenuButtonAfterGameOver(t *testing.T) {
	app := newTestApp(t)
	p := newPlayScene(app, mustCreate(t, "snake"))
	p.OnEnter()
	defer p.OnExit()

	p.touch.SetGameOver(true)
	_, menu := core.GameOverButtons(core.WorldW, core.WorldH)
	cx, cy := menu.Center()
	p.handlePointer(pointerEvent{source: mouseSource, x: cx, y: cy, pressed: true})

	assert.True(t, p.runner.Ended())
}

func TestPlaySceneEscapeEndsRun(t *testing.T) {
	app := newTestApp(t)
	p := newPlayScene(app, mustCreate(t, "snake"))
	p.OnEnter()

	p.bus.Publish(core.Pressed(core.ActionBack))
	assert.True(t, p.runner.Ended())
	assert.False(t, p.runner.Running())
}

func TestPointerTracker(t *testing.T) {
	p := make(pointerTracker)
	p.press(mouseSource, "jump")
	p.press(1, "left")

	id, ok := p.release(mouseSource)
	assert.True(t, ok)
	assert.Equal(t, "jump", id)

	_, ok = p.release(mouseSource)
	assert.False(t, ok)

	id, ok = p.release(1)
	assert.True(t, ok)
	assert.Equal(t, "left", id)
}

func TestKeyBindingsCoverGameActions(t *testing.T) {
	bound := map[core.Action]bool{}
	seen := map[int]bool{}
	for _, b := range keyBindings {
		assert.False(t, seen[int(b.key)], "key %v bound twice", b.key)
		seen[int(b.key)] = true
		bound[b.action] = true
	}
	for a := core.ActionLeft; a <= core.ActionRestart; a++ {
		assert.True(t, bound[a], "%s has no key", a)
	}
}

func TestPaletteCoversVisuals(t *testing.T) {
	for v := core.VisualPlayer; v <= core.VisualBanner; v++ {
		_, ok := palette[v]
		assert.True(t, ok, "%s has no color", v)
	}
	assert.Equal(t, uint8(255), colorOf(core.VisualNone).A)
}

func TestCenteredX(t *testing.T) {
	assert.Equal(t, float64(core.WorldW)/2-3, centeredX("x"))
	assert.Equal(t, float64(core.WorldW)/2, centeredX(""))
}

func mustCreate(t *testing.T, id string) registry.Game {
	t.Helper()
	g, err := registry.Create(id)
	require.NoError(t, err)
	return g
}
