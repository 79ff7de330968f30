// Package snake implements classic grid snake: eat food to grow, don't hit
// the walls or yourself. The snake moves on its own clock, slower than the
// frame rate, and speeds up with every food eaten.
package snake

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Delta returns the grid step for one move in direction d.
func (d Direction) Delta() Point {
	switch d {
	case DirUp:
		return Point{X: 0, Y: -1}
	case DirDown:
		return Point{X: 0, Y: 1}
	case DirLeft:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 1, Y: 0}
	}
}

// Point represents a grid cell.
type Point struct {
	X, Y int
}

// Add returns p moved by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// noFood marks a board with no empty cell left.
var noFood = Point{X: -1, Y: -1}

// Game implements the Snake game.
type Game struct {
	rng        *rand.Rand
	runtime    core.RuntimeConfig
	cfg        config.SnakeConfig
	difficulty *config.DifficultyManager
	tick       uint64
	score      int
	foodEaten  int

	// Snake state
	snake     []Point // Head at index 0
	direction Direction
	nextDir   Direction // Buffered direction, applied on the next move

	// Board
	cols int
	rows int
	food Point

	// Move clock
	interval time.Duration
	lastMove time.Duration

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

// New creates a new Snake game that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a Snake game with an explicit configuration.
func NewWithConfig(cfg config.SnakeConfig) *Game {
	return &Game{cfg: cfg}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	if g.cfg.Grid.CellSize <= 0 {
		cfg, err := config.LoadSnake(configPath)
		if err != nil {
			cfg = config.DefaultSnakeConfig()
		}
		if difficultyPreset != "" {
			config.ApplySnakePreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	g.cols = core.WorldW / g.cfg.Grid.CellSize
	g.rows = core.WorldH / g.cfg.Grid.CellSize
	g.tick = 0
	g.score = 0
	g.foodEaten = 0
	g.gameOver = false
	g.fade = core.Fade{}
	g.events = nil
	g.interval = g.currentInterval()
	g.lastMove = 0
	g.scroller = core.NewScroller(float64(g.cfg.Grid.CellSize), true)

	g.snake = []Point{{X: g.cols / 2, Y: g.rows / 2}}
	g.direction = DirRight
	g.nextDir = DirRight
	g.spawnFood()
}

// restart begins a new run after game over. The move clock carries over.
func (g *Game) restart() {
	last := g.lastMove
	runtime := g.runtime
	runtime.Seed = g.rng.Int63()
	g.Reset(runtime)
	g.lastMove = last
	g.events = append(g.events, core.EventRestart)
}

func (g *Game) currentInterval() time.Duration {
	return time.Duration(g.difficulty.Value(g.score) * float64(time.Millisecond))
}

// spawnFood places food at a uniformly random empty cell.
func (g *Game) spawnFood() {
	if len(g.snake) >= g.cols*g.rows {
		g.food = noFood
		return
	}
	for {
		p := Point{X: g.rng.Intn(g.cols), Y: g.rng.Intn(g.rows)}
		if !g.isSnakeAt(p) {
			g.food = p
			return
		}
	}
}

// isSnakeAt checks if the snake occupies the given point.
func (g *Game) isSnakeAt(p Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// HandleInput buffers direction changes and handles restart.
func (g *Game) HandleInput(ev core.InputEvent) {
	if ev.Kind != core.KeyDown {
		return
	}

	if g.gameOver {
		if ev.Action.RestartsGame() {
			g.restart()
		}
		return
	}

	switch ev.Action {
	case core.ActionUp:
		g.setDirection(DirUp)
	case core.ActionDown:
		g.setDirection(DirDown)
	case core.ActionLeft:
		g.setDirection(DirLeft)
	case core.ActionRight:
		g.setDirection(DirRight)
	}
}

// setDirection buffers d unless it would reverse the snake onto itself.
func (g *Game) setDirection(d Direction) {
	if !isOpposite(d, g.direction) {
		g.nextDir = d
	}
}

// isOpposite checks if two directions are opposite.
func isOpposite(d1, d2 Direction) bool {
	return (d1 == DirUp && d2 == DirDown) ||
		(d1 == DirDown && d2 == DirUp) ||
		(d1 == DirLeft && d2 == DirRight) ||
		(d1 == DirRight && d2 == DirLeft)
}

// Step advances the game by one frame. The snake only moves once the
// current interval has elapsed since its last move.
func (g *Game) Step(t core.Tick) core.StepResult {
	g.tick++
	events := g.events
	g.events = nil

	if g.gameOver {
		g.fade.Step()
		return core.StepResult{State: g.State(), Events: events}
	}

	if t.Now-g.lastMove < g.interval {
		return core.StepResult{State: g.State(), Events: events}
	}
	g.lastMove = t.Now

	events = append(events, g.moveSnake()...)
	if !g.gameOver {
		g.scroller.Advance(0.5)
	}
	return core.StepResult{State: g.State(), Events: events}
}

// moveSnake moves the snake one cell in the buffered direction.
func (g *Game) moveSnake() []core.Event {
	g.direction = g.nextDir
	head := g.snake[0].Add(g.direction.Delta())

	if head.X < 0 || head.X >= g.cols || head.Y < 0 || head.Y >= g.rows {
		g.gameOver = true
		return []core.Event{core.EventCrash, core.EventGameOver}
	}

	// The whole pre-move body counts, tail included.
	if g.isSnakeAt(head) {
		g.gameOver = true
		return []core.Event{core.EventCrash, core.EventGameOver}
	}

	g.snake = append([]Point{head}, g.snake...)

	if head == g.food {
		g.score += g.cfg.FoodPoints
		g.foodEaten++
		g.interval = g.currentInterval()
		g.spawnFood()
		return []core.Event{core.EventEat}
	}

	g.snake = g.snake[:len(g.snake)-1]
	return nil
}

// Render draws the game onto dst.
func (g *Game) Render(dst core.Surface) {
	g.scroller.Draw(dst)
	core.DrawSprites(dst, g.Sprites())
	core.DrawScore(dst, g.score)

	if g.gameOver {
		core.DrawGameOver(dst, g.score, false, g.fade.Opacity, g.fade.Scale)
	}
}

// Sprites returns the food and snake in draw order, head last.
func (g *Game) Sprites() []core.Sprite {
	cell := float64(g.cfg.Grid.CellSize)
	sprites := make([]core.Sprite, 0, len(g.snake)+1)

	if g.food != noFood {
		sprites = append(sprites, core.Sprite{
			Rect:   core.NewRect(float64(g.food.X)*cell, float64(g.food.Y)*cell, cell-2, cell-2),
			Visual: core.VisualFood,
		})
	}
	for i := len(g.snake) - 1; i >= 0; i-- {
		seg := g.snake[i]
		v := core.VisualSnakeBody
		if i == 0 {
			v = core.VisualSnakeHead
		}
		sprites = append(sprites, core.Sprite{
			Rect:   core.NewRect(float64(seg.X)*cell, float64(seg.Y)*cell, cell-2, cell-2),
			Visual: v,
		})
	}
	return sprites
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

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Tick: %d, Score: %d, Interval: %s\n", g.tick, g.score, g.interval))
	b.WriteString(fmt.Sprintf("Snake len: %d, Direction: %s\n", len(g.snake), g.direction))
	if len(g.snake) > 0 {
		b.WriteString(fmt.Sprintf("Head: (%d, %d), Food: (%d, %d)\n", g.snake[0].X, g.snake[0].Y, g.food.X, g.food.Y))
	}
	b.WriteString(fmt.Sprintf("GameOver: %v\n", g.gameOver))
	return b.String()
}
