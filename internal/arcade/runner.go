// Package arcade drives a single game session: it owns the game's lifecycle,
// routes input to it, forwards step events to sound, and records scores.
// Frontends call Tick once per frame and Render afterwards.
package arcade

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/input"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

// Recorder persists finished runs. Implementations must not block for long
// and handle their own errors.
type Recorder interface {
	RecordScore(gameID string, score int)
}

// SoundPlayer plays the sound for a game event.
type SoundPlayer interface {
	Play(ev core.Event)
}

// Option configures a Runner.
type Option func(*Runner)

// WithRecorder sets where finished runs are recorded.
func WithRecorder(rec Recorder) Option {
	return func(r *Runner) { r.recorder = rec }
}

// WithSounds sets the sound player for step events.
func WithSounds(s SoundPlayer) Option {
	return func(r *Runner) { r.sounds = s }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// WithBus makes the runner take input from bus while it is running.
func WithBus(b *input.Bus) Option {
	return func(r *Runner) { r.bus = b }
}

// OnGameEnd sets the callback invoked when the player returns to the menu.
func OnGameEnd(fn func()) Option {
	return func(r *Runner) { r.onGameEnd = fn }
}

// Runner owns one game from Start until Stop.
// It is not safe for concurrent use; frontends call it from their frame loop.
type Runner struct {
	game      registry.Game
	config    core.RuntimeConfig
	recorder  Recorder
	sounds    SoundPlayer
	logger    *log.Logger
	bus       *input.Bus
	onGameEnd func()

	unsubscribe func()
	started     bool
	running     bool
	ended       bool // onGameEnd already delivered
	scoreSaved  bool // Whether score has been saved for current game over

	seq   uint64
	state core.GameState
}

// NewRunner creates a runner for game. A zero seed is replaced with the
// current time.
func NewRunner(game registry.Game, cfg core.RuntimeConfig, opts ...Option) *Runner {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	r := &Runner{
		game:   game,
		config: cfg,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = log.Default()
	}
	return r
}

// Game returns the hosted game.
func (r *Runner) Game() registry.Game {
	return r.game
}

// State returns the game state after the last tick.
func (r *Runner) State() core.GameState {
	return r.state
}

// Running reports whether the runner accepts ticks and input.
func (r *Runner) Running() bool {
	return r.running
}

// Start resets the game and begins accepting input. Only the first call
// has any effect; a stopped runner cannot be restarted.
func (r *Runner) Start() {
	if r.started {
		return
	}
	r.started = true
	r.running = true

	r.game.Reset(r.config)
	r.state = r.game.State()
	if r.bus != nil {
		r.unsubscribe = r.bus.Subscribe(r.HandleInput)
	}
	r.logger.Debug("game started", "game", r.game.ID(), "seed", r.config.Seed)
}

// Stop ends the session. It releases the input subscription and makes
// every later Tick a no-op. Safe to call multiple times.
func (r *Runner) Stop() {
	r.started = true
	if !r.running {
		return
	}
	r.running = false

	if r.unsubscribe != nil {
		r.unsubscribe()
		r.unsubscribe = nil
	}
	r.logger.Debug("game stopped", "game", r.game.ID(), "score", r.state.Score)
}

// ReturnToMenu stops the runner and notifies the scene host.
// The host is notified at most once per runner.
func (r *Runner) ReturnToMenu() {
	r.Stop()
	if r.ended {
		return
	}
	r.ended = true
	if r.onGameEnd != nil {
		r.onGameEnd()
	}
}

// Ended reports whether the player has returned to the menu.
func (r *Runner) Ended() bool {
	return r.ended
}

// HandleInput routes one input event. Back returns to the menu; everything
// else goes to the game. Input is ignored while stopped.
func (r *Runner) HandleInput(ev core.InputEvent) {
	if !r.running || !ev.Action.Valid() {
		return
	}
	if ev.Action == core.ActionBack {
		if ev.Kind == core.KeyDown {
			r.ReturnToMenu()
		}
		return
	}
	r.game.HandleInput(ev)
}

// Tick advances the game by one step. It returns false, without stepping,
// once the runner has stopped.
func (r *Runner) Tick(now time.Duration) bool {
	if !r.running {
		return false
	}

	r.seq++
	result := r.game.Step(core.Tick{Seq: r.seq, Now: now})
	r.state = result.State

	if r.sounds != nil {
		for _, ev := range result.Events {
			r.sounds.Play(ev)
		}
	}

	if !r.state.GameOver {
		r.scoreSaved = false
		return true
	}

	// Save score on game over (once)
	if !r.scoreSaved {
		r.scoreSaved = true
		r.logger.Info("game over", "game", r.game.ID(), "score", r.state.Score, "won", r.state.Won)
		if r.recorder != nil && r.state.Score > 0 {
			r.recorder.RecordScore(r.game.ID(), r.state.Score)
		}
	}
	return true
}

// Render draws the game onto dst.
func (r *Runner) Render(dst core.Surface) {
	r.game.Render(dst)
}
