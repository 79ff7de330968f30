// Package racer implements a top-down dodging game: steer the car left and
// right to avoid falling obstacles. Each obstacle that makes it past scores,
// and the road speeds up as the score grows.
package racer

import (
	"fmt"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

// Background grid cell size.
const gridSize = 80

// Game implements the racer.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.RacerConfig
	loaded     bool
	difficulty *config.DifficultyManager
	obstacles  *ObstacleManager
	tick       uint64

	player    core.Rect
	leftHeld  bool
	rightHeld bool

	score    int
	speed    float64 // Speed given to newly spawned obstacles
	gameOver bool
	fade     core.Fade

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

// New creates a racer that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a racer with an explicit configuration.
func NewWithConfig(cfg config.RacerConfig) *Game {
	return &Game{cfg: cfg, loaded: true}
}

func init() {
	registry.Register("racer", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "racer"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Neon Racer"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.loaded {
		cfg, err := config.LoadRacer(configPath)
		if err != nil {
			cfg = config.DefaultRacerConfig()
		}
		if difficultyPreset != "" {
			config.ApplyRacerPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
		g.loaded = true
	}
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	if g.obstacles == nil {
		g.obstacles = NewObstacleManager(runtime.Seed, &g.cfg)
	} else {
		g.obstacles.Reset(runtime.Seed)
	}

	p := g.cfg.Player
	g.player = core.NewRect((core.WorldW-p.Width)/2, core.WorldH-p.Height-p.BottomMargin, p.Width, p.Height)
	g.leftHeld = false
	g.rightHeld = false

	g.tick = 0
	g.score = 0
	g.speed = g.difficulty.Base()
	g.gameOver = false
	g.fade = core.Fade{}
	g.events = nil
	g.scroller = core.NewScroller(gridSize, true)
}

// restart begins a new run after game over.
func (g *Game) restart() {
	runtime := g.runtime
	runtime.Seed = g.obstacles.rng.Int63()
	g.Reset(runtime)
	g.events = append(g.events, core.EventRestart)
}

// HandleInput tracks held steering keys and handles restart.
func (g *Game) HandleInput(ev core.InputEvent) {
	down := ev.Kind == core.KeyDown

	if g.gameOver {
		if down && ev.Action.RestartsGame() {
			g.restart()
		}
		return
	}

	switch ev.Action {
	case core.ActionLeft:
		g.leftHeld = down
	case core.ActionRight:
		g.rightHeld = down
	}
}

// Step advances the game by one tick.
func (g *Game) Step(_ core.Tick) core.StepResult {
	g.tick++
	events := g.events
	g.events = nil

	if g.gameOver {
		g.fade.Step()
		return core.StepResult{State: g.State(), Events: events}
	}

	g.scroller.Advance(g.speed)
	g.steer()
	g.obstacles.MaybeSpawn(g.speed)

	passed, crashed := g.obstacles.Update(g.player)
	if passed > 0 {
		g.score += passed * g.cfg.Obstacles.PassPoints
		g.speed = g.difficulty.Value(g.score)
		for range passed {
			events = append(events, core.EventPass)
		}
	}
	if crashed {
		g.gameOver = true
		events = append(events, core.EventCrash, core.EventGameOver)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// steer moves the car while a direction is held, keeping it on the road.
func (g *Game) steer() {
	maxX := core.WorldW - g.player.W
	if g.leftHeld {
		g.player.X = core.ClampF(g.player.X-g.cfg.Player.Speed, 0, maxX)
	}
	if g.rightHeld {
		g.player.X = core.ClampF(g.player.X+g.cfg.Player.Speed, 0, maxX)
	}
}

// Speed returns the speed the next obstacle will spawn with.
func (g *Game) Speed() float64 {
	return g.speed
}

// Render draws the game onto dst.
func (g *Game) Render(dst core.Surface) {
	g.scroller.Draw(dst)
	core.DrawSprites(dst, g.Sprites())
	core.DrawScore(dst, g.score)
	w, _ := dst.Size()
	dst.Text(w-220, 20, fmt.Sprintf("Speed: %.1f", g.speed), core.VisualHUD)

	if g.gameOver {
		core.DrawGameOver(dst, g.score, false, g.fade.Opacity, g.fade.Scale)
	}
}

// Sprites returns the obstacles and the player car.
func (g *Game) Sprites() []core.Sprite {
	obs := g.obstacles.Obstacles()
	sprites := make([]core.Sprite, 0, len(obs)+1)
	for _, ob := range obs {
		sprites = append(sprites, core.Sprite{Rect: ob.Rect, Visual: core.VisualObstacle})
	}
	return append(sprites, core.Sprite{Rect: g.player, Visual: core.VisualPlayer})
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	phase := core.PhasePlaying
	if g.gameOver {
		phase = core.PhaseGameOver
	}
	return core.GameState{
		Score:    g.score,
		Phase:    phase,
		GameOver: g.gameOver,
	}
}
