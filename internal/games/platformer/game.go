// Package platformer implements a side-view platform game: run and jump
// between platforms, collect every coin to clear a level, and avoid the
// patrolling enemies and the bottom of the screen.
package platformer

import (
	"fmt"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

// Background grid cell size; the grid scrolls against player movement.
const gridSize = 60

// Game implements the platformer.
type Game struct {
	cfg    config.PlatformerConfig
	loaded bool
	tick   uint64

	level int
	world world
	score int
	phase core.Phase
	won   bool

	transitionTicks int // Ticks spent in the current level transition

	scroller *core.Scroller
	events   []core.Event // Produced by HandleInput, reported by the next Step
}

// Package-level config/difficulty, set by the CLI before games are created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = "" // Use config default
	}
	difficultyPreset = p
}

// New creates a platformer that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a platformer with an explicit configuration,
// including its level set.
func NewWithConfig(cfg config.PlatformerConfig) *Game {
	return &Game{cfg: cfg, loaded: true}
}

func init() {
	registry.Register("platformer", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "platformer"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Neon Platformer"
}

// Reset initializes or restarts the game at level 1.
func (g *Game) Reset(_ core.RuntimeConfig) {
	if !g.loaded {
		cfg, err := config.LoadPlatformer(configPath)
		if err != nil {
			cfg = config.DefaultPlatformerConfig()
		}
		if difficultyPreset != "" {
			config.ApplyPlatformerPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
		g.loaded = true
	}

	g.tick = 0
	g.score = 0
	g.phase = core.PhasePlaying
	g.won = false
	g.transitionTicks = 0
	g.events = nil
	g.scroller = core.NewScroller(gridSize, false)

	if !g.loadLevel(1) {
		// An empty level set has nothing to play.
		g.phase = core.PhaseGameOver
		g.won = true
	}
}

// restart begins a new run after game over.
func (g *Game) restart() {
	g.Reset(core.RuntimeConfig{})
	g.events = append(g.events, core.EventRestart)
}

// HandleInput applies a key event to the player, or restarts a finished game.
func (g *Game) HandleInput(ev core.InputEvent) {
	if g.phase == core.PhaseGameOver {
		if ev.Kind == core.KeyDown && ev.Action.RestartsGame() {
			g.restart()
		}
		return
	}

	p := g.world.player
	switch ev.Kind {
	case core.KeyDown:
		if p.Press(ev.Action) {
			g.events = append(g.events, core.EventJump)
		}
	case core.KeyUp:
		p.Release(ev.Action)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(_ core.Tick) core.StepResult {
	g.tick++
	events := g.events
	g.events = nil

	switch g.phase {
	case core.PhaseGameOver:
		return core.StepResult{State: g.State(), Events: events}
	case core.PhaseLevelTransition:
		g.transitionTicks++
		if g.transitionTicks >= g.cfg.TransitionTicks {
			g.transitionTicks = 0
			if g.loadLevel(g.level + 1) {
				g.phase = core.PhasePlaying
				events = append(events, core.EventLevelStart)
			} else {
				g.phase = core.PhaseGameOver
				g.won = true
				events = append(events, core.EventWin, core.EventGameOver)
			}
		}
		return core.StepResult{State: g.State(), Events: events}
	}

	events = append(events, g.play()...)
	return core.StepResult{State: g.State(), Events: events}
}

// play runs one Playing tick: movement, coins, then the lose checks.
func (g *Game) play() []core.Event {
	var events []core.Event
	w := &g.world
	p := w.player

	p.Update(w.platforms)
	for _, e := range w.enemies {
		e.Update()
	}
	g.scroller.Advance(-p.Vel.X * 0.5)

	remaining := w.coins[:0]
	for _, c := range w.coins {
		if p.Rect.Intersects(c.Rect) {
			g.score += g.cfg.Coin.Value
			events = append(events, core.EventCoin)
			continue
		}
		remaining = append(remaining, c)
	}
	w.coins = remaining

	if g.lost() {
		g.phase = core.PhaseGameOver
		return append(events, core.EventCrash, core.EventGameOver)
	}

	if len(w.coins) == 0 {
		g.phase = core.PhaseLevelTransition
		g.transitionTicks = 0
		events = append(events, core.EventLevelClear)
	}
	return events
}

// lost reports whether the player touched an enemy or fell off the world.
func (g *Game) lost() bool {
	p := g.world.player
	for _, e := range g.world.enemies {
		if p.Rect.Intersects(e.Rect) {
			return true
		}
	}
	return p.Rect.Y > core.WorldH
}

// Render draws the game onto dst.
func (g *Game) Render(dst core.Surface) {
	g.scroller.Draw(dst)
	core.DrawSprites(dst, g.Sprites())
	core.DrawScore(dst, g.score)

	switch g.phase {
	case core.PhaseGameOver:
		core.DrawGameOver(dst, g.score, g.won, 0.8, 1)
	case core.PhaseLevelTransition:
		dst.Shade(0.5)
		_, h := dst.Size()
		dst.TextCentered(h/2, fmt.Sprintf("Level %d", g.level+1), core.VisualBanner)
	}
}

// Sprites returns every entity in draw order.
func (g *Game) Sprites() []core.Sprite {
	w := g.world
	sprites := make([]core.Sprite, 0, len(w.platforms)+len(w.enemies)+len(w.coins)+1)
	for _, pl := range w.platforms {
		sprites = append(sprites, core.Sprite{Rect: pl.Rect, Visual: core.VisualPlatform})
	}
	for _, e := range w.enemies {
		sprites = append(sprites, core.Sprite{Rect: e.Rect, Visual: core.VisualEnemy, Facing: e.Direction})
	}
	for _, c := range w.coins {
		sprites = append(sprites, core.Sprite{Rect: c.Rect, Visual: core.VisualCoin})
	}
	if w.player != nil {
		sprites = append(sprites, core.Sprite{Rect: w.player.Rect, Visual: core.VisualPlayer, Facing: w.player.Facing})
	}
	return sprites
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Phase:    g.phase,
		GameOver: g.phase == core.PhaseGameOver,
		Won:      g.won,
	}
}
