package gui

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/neon-arcade/internal/audio"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/scores"
)

// ErrQuit is returned by a scene to close the app.
var ErrQuit = errors.New("gui: quit")

// Options carries the services shared by every scene.
type Options struct {
	Board  scores.Board   // Required
	Sounds *audio.Manager // Nil disables sound
	Logger *log.Logger
	Config core.RuntimeConfig
}

// App implements ebiten.Game and switches between scenes.
type App struct {
	opts    Options
	current Scene
}

// NewApp creates the app showing the main menu.
func NewApp(opts Options) *App {
	if opts.Board == nil {
		opts.Board = scores.NewMemoryBoard()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Config.TickRate <= 0 {
		opts.Config.TickRate = 60
	}

	a := &App{opts: opts}
	a.current = newMenuScene(a)
	a.current.OnEnter()
	return a
}

// Update advances the current scene and applies scene transitions.
func (a *App) Update() error {
	next, err := a.current.Update()
	if errors.Is(err, ErrQuit) {
		return ebiten.Termination
	}
	if err != nil {
		return err
	}

	if next != nil {
		a.switchTo(next)
	}
	return nil
}

func (a *App) switchTo(next Scene) {
	a.current.OnExit()
	a.current = next
	a.current.OnEnter()
	a.opts.Logger.Debug("scene changed", "scene", sceneName(next))
}

// Draw clears the screen and renders the current scene.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	a.current.Draw(screen)
}

// Layout fixes the logical screen to the world; ebiten scales it to the
// window.
func (a *App) Layout(_, _ int) (int, int) {
	return core.WorldW, core.WorldH
}

// click plays the UI click.
func (a *App) click() {
	if a.opts.Sounds != nil {
		a.opts.Sounds.Play(core.EventClick)
	}
}

// toggleSound flips the mute state and reports whether sound is now on.
func (a *App) toggleSound() bool {
	if a.opts.Sounds == nil {
		return false
	}
	on := a.opts.Sounds.Toggle()
	a.click()
	return on
}

// soundOn reports whether sound is currently playing.
func (a *App) soundOn() bool {
	return a.opts.Sounds != nil && !a.opts.Sounds.Muted()
}

func sceneName(s Scene) string {
	switch s.(type) {
	case *menuScene:
		return "menu"
	case *playScene:
		return "play"
	case *scoresScene:
		return "scores"
	default:
		return "unknown"
	}
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	app := NewApp(opts)

	ebiten.SetWindowSize(core.WorldW, core.WorldH)
	ebiten.SetWindowTitle("Neon Arcade")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(app.opts.Config.TickRate)

	start := time.Now()
	err := ebiten.RunGame(app)
	app.opts.Logger.Info("window closed", "uptime", time.Since(start).Round(time.Second))
	return err
}
