package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-arcade/internal/arcade"
	"github.com/vovakirdan/neon-arcade/internal/audio"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/input"
	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/scores"
)

// Options carries the services shared by every scene of a terminal session.
type Options struct {
	Board  scores.Board   // Where finished runs go; nil keeps no scores
	Sounds *audio.Manager // Nil disables sound (e.g. over SSH)
	Logger *log.Logger
	Player string // Shown in the menu; empty for local play
}

// GameModel is the Bubble Tea model for one running game.
type GameModel struct {
	runner     *arcade.Runner
	bus        *input.Bus
	screen     *core.Screen
	surface    *core.ScreenSurface
	sounds     *audio.Manager
	config     core.RuntimeConfig
	held       heldKeys
	keyMapper  *KeyMapper
	started    time.Time
	standalone bool // Back quits the program instead of returning to a menu
	quitting   bool
}

// NewGameModel creates a model hosting game.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts Options) GameModel {
	bus := input.NewBus()

	runnerOpts := []arcade.Option{arcade.WithBus(bus)}
	if opts.Logger != nil {
		runnerOpts = append(runnerOpts, arcade.WithLogger(opts.Logger))
	}
	if opts.Board != nil {
		runnerOpts = append(runnerOpts, arcade.WithRecorder(opts.Board))
	}
	if opts.Sounds != nil {
		runnerOpts = append(runnerOpts, arcade.WithSounds(opts.Sounds))
	}

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	return GameModel{
		runner:    arcade.NewRunner(game, cfg, runnerOpts...),
		bus:       bus,
		screen:    screen,
		surface:   core.NewScreenSurface(screen, core.WorldW, core.WorldH),
		sounds:    opts.Sounds,
		config:    cfg,
		held:      make(heldKeys),
		keyMapper: NewKeyMapper(),
		started:   time.Now(),
	}
}

// Init starts the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.runner.Start()
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// Games simulate in world units, so a resize only changes the output.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if m.keyMapper.IsSoundToggle(msg) {
		if m.sounds != nil {
			m.sounds.Toggle()
		}
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.runner.Stop()
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionNone {
		return m, nil
	}

	m.held.press(action, time.Now())
	m.bus.KeyDown(action)

	if m.runner.Ended() && m.standalone {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick releases expired keys and steps the game. A tick that arrives
// after the runner stopped is dropped and ends the loop.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	for _, a := range m.held.expired(now) {
		m.bus.KeyUp(a)
	}

	if !m.runner.Tick(now.Sub(m.started)) {
		return m, nil
	}
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.screen.Clear()
	m.runner.Render(m.surface)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.runner.Game().ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.runner.Render(m.surface)
	m.drawHints()
	return RenderScreen(m.screen)
}

// drawHints writes the control line on the bottom row.
func (m GameModel) drawHints() {
	if m.screen.Height() < 10 {
		return
	}
	sound := "n/a"
	if m.sounds != nil {
		sound = "on"
		if m.sounds.Muted() {
			sound = "off"
		}
	}
	hint := fmt.Sprintf(" arrows: move  space: jump  esc: menu  m: sound %s  q: quit ", sound)
	m.screen.DrawTextColored(0, m.screen.Height()-1, hint, core.ColorGray)
}

// State returns the game state after the last tick.
func (m GameModel) State() core.GameState {
	return m.runner.State()
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.runner.Ended()
}

// Run plays a single game until the player quits or backs out.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewGameModel(game, cfg, opts)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
