package gui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/neon-arcade/internal/arcade"
	"github.com/vovakirdan/neon-arcade/internal/input"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

// playScene hosts one running game with keyboard and touch controls.
type playScene struct {
	app      *App
	runner   *arcade.Runner
	bus      *input.Bus
	touch    *input.TouchControls
	pointers pointerTracker
	started  time.Time
}

func newPlayScene(app *App, game registry.Game) *playScene {
	bus := input.NewBus()

	cfg := app.opts.Config
	cfg.Seed = time.Now().UnixNano()

	opts := []arcade.Option{
		arcade.WithBus(bus),
		arcade.WithRecorder(app.opts.Board),
		arcade.WithLogger(app.opts.Logger),
	}
	if app.opts.Sounds != nil {
		opts = append(opts, arcade.WithSounds(app.opts.Sounds))
	}

	return &playScene{
		app:      app,
		runner:   arcade.NewRunner(game, cfg, opts...),
		bus:      bus,
		touch:    input.NewTouchControls(),
		pointers: make(pointerTracker),
	}
}

func (p *playScene) OnEnter() {
	p.started = time.Now()
	p.runner.Start()
}

func (p *playScene) OnExit() {
	p.runner.Stop()
}

func (p *playScene) Update() (Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		p.app.toggleSound()
	}

	for _, ev := range keyEvents() {
		p.bus.Publish(ev)
	}
	for _, ev := range pointerEvents() {
		p.handlePointer(ev)
	}

	p.runner.Tick(time.Since(p.started))
	p.touch.SetGameOver(p.runner.State().GameOver)

	if p.runner.Ended() {
		return newMenuScene(p.app), nil
	}
	return nil, nil
}

// handlePointer turns a pointer transition into a button press or
// release on the bus.
func (p *playScene) handlePointer(ev pointerEvent) {
	if !ev.pressed {
		if id, ok := p.pointers.release(ev.source); ok {
			p.bus.Pointer(id, false)
		}
		return
	}

	id, ok := p.touch.HitTest(ev.x, ev.y)
	if !ok {
		return
	}
	p.pointers.press(ev.source, id)
	p.bus.Pointer(id, true)
}

func (p *playScene) Draw(screen *ebiten.Image) {
	s := NewImageSurface(screen)
	p.runner.Render(s)
	p.touch.Draw(s)
}
