package snake

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
)

func newTestGame(seed int64) *Game {
	g := NewWithConfig(config.DefaultSnakeConfig())
	g.Reset(core.RuntimeConfig{Seed: seed, TickRate: 60})
	return g
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	g1 := newTestGame(12345)
	g2 := newTestGame(12345)

	for i := 0; i < 600; i++ {
		if i == 100 {
			g1.HandleInput(core.Pressed(core.ActionDown))
			g2.HandleInput(core.Pressed(core.ActionDown))
		}
		if i == 200 {
			g1.HandleInput(core.Pressed(core.ActionLeft))
			g2.HandleInput(core.Pressed(core.ActionLeft))
		}
		tick := core.Tick{Seq: uint64(i), Now: time.Duration(i) * time.Second / 60}
		g1.Step(tick)
		g2.Step(tick)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("snapshots differ:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestInitialState(t *testing.T) {
	g := newTestGame(1)

	if g.cols != 32 || g.rows != 18 {
		t.Fatalf("grid = %dx%d, expected 32x18", g.cols, g.rows)
	}
	snap := g.Snapshot()
	if snap.HeadX != 16 || snap.HeadY != 9 || snap.SnakeLen != 1 {
		t.Errorf("start = (%d,%d) len %d", snap.HeadX, snap.HeadY, snap.SnakeLen)
	}
	if snap.Dir != DirRight || snap.Interval != 150*time.Millisecond {
		t.Errorf("dir=%v interval=%v", snap.Dir, snap.Interval)
	}
	if g.isSnakeAt(g.food) {
		t.Error("food spawned on snake")
	}
}

func TestNoImmediateReversal(t *testing.T) {
	g := newTestGame(42)

	if g.direction != DirRight {
		t.Fatalf("Expected initial direction Right, got %v", g.direction)
	}

	// Opposite of the current direction is ignored
	g.HandleInput(core.Pressed(core.ActionLeft))
	if g.nextDir != DirRight {
		t.Errorf("nextDir = %v, reversal should be ignored", g.nextDir)
	}

	// A perpendicular turn is buffered
	g.HandleInput(core.Pressed(core.ActionDown))
	if g.nextDir != DirDown {
		t.Errorf("Expected nextDir to be Down, got %v", g.nextDir)
	}

	// Reversal is judged against the applied direction, not the buffered one
	g.HandleInput(core.Pressed(core.ActionLeft))
	if g.nextDir != DirDown {
		t.Errorf("nextDir = %v, Left reverses the current Right and should be ignored", g.nextDir)
	}
	if g.direction != DirRight {
		t.Error("direction must not change before the next move")
	}
}

func TestTurnAfterAppliedMove(t *testing.T) {
	g := newTestGame(42)
	g.food = Point{X: 0, Y: 0}

	g.HandleInput(core.Pressed(core.ActionUp))
	g.Step(core.Tick{Now: 150 * time.Millisecond})
	if g.direction != DirUp {
		t.Fatalf("direction = %v, expected Up after the move", g.direction)
	}
	if g.snake[0] != (Point{X: 16, Y: 8}) {
		t.Fatalf("head = %+v, expected (16,8)", g.snake[0])
	}

	// Left is a legal turn once Up has been applied
	g.HandleInput(core.Pressed(core.ActionLeft))
	if g.nextDir != DirLeft {
		t.Fatalf("nextDir = %v, expected Left", g.nextDir)
	}
	g.Step(core.Tick{Now: 300 * time.Millisecond})
	if g.snake[0] != (Point{X: 15, Y: 8}) {
		t.Errorf("head = %+v, expected (15,8)", g.snake[0])
	}
}

func TestKeyUpIgnored(t *testing.T) {
	g := newTestGame(42)
	g.HandleInput(core.Released(core.ActionDown))
	if g.nextDir != DirRight {
		t.Errorf("key-up changed direction to %v", g.nextDir)
	}
}

func TestMoveInterval(t *testing.T) {
	g := newTestGame(7)
	g.food = Point{X: 0, Y: 0}

	g.Step(core.Tick{Now: 149 * time.Millisecond})
	if g.snake[0] != (Point{X: 16, Y: 9}) {
		t.Fatal("snake moved before the interval elapsed")
	}

	g.Step(core.Tick{Now: 150 * time.Millisecond})
	if g.snake[0] != (Point{X: 17, Y: 9}) {
		t.Fatalf("head = %+v, expected (17,9)", g.snake[0])
	}

	g.Step(core.Tick{Now: 200 * time.Millisecond})
	if g.snake[0] != (Point{X: 17, Y: 9}) {
		t.Fatal("snake moved twice within one interval")
	}

	g.Step(core.Tick{Now: 300 * time.Millisecond})
	if g.snake[0] != (Point{X: 18, Y: 9}) {
		t.Fatalf("head = %+v, expected (18,9)", g.snake[0])
	}
}

func TestWallCollision(t *testing.T) {
	tests := []struct {
		name string
		head Point
		dir  Direction
	}{
		{"left wall", Point{X: 0, Y: 5}, DirLeft},
		{"right wall", Point{X: 31, Y: 5}, DirRight},
		{"top wall", Point{X: 5, Y: 0}, DirUp},
		{"bottom wall", Point{X: 5, Y: 17}, DirDown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(789)
			g.snake = []Point{tc.head}
			g.direction = tc.dir
			g.nextDir = tc.dir

			events := g.moveSnake()

			if !g.gameOver {
				t.Error("Game should be over after hitting wall")
			}
			if len(events) == 0 || events[len(events)-1] != core.EventGameOver {
				t.Errorf("events = %v", events)
			}
		})
	}
}

func TestSelfCollision(t *testing.T) {
	g := newTestGame(111)

	g.snake = []Point{
		{X: 5, Y: 5}, // Head
		{X: 5, Y: 6},
		{X: 6, Y: 6},
		{X: 6, Y: 5},
		{X: 6, Y: 4},
	}
	g.direction = DirRight
	g.nextDir = DirRight
	g.food = Point{X: 0, Y: 0}

	// Move right would put head at (6, 5) which is occupied
	g.moveSnake()

	if !g.gameOver {
		t.Error("Game should be over after self collision")
	}
}

func TestTailCountsAsBody(t *testing.T) {
	g := newTestGame(111)

	// A 4-segment loop: moving up lands exactly on the current tail.
	g.snake = []Point{
		{X: 5, Y: 6}, // Head
		{X: 6, Y: 6},
		{X: 6, Y: 5},
		{X: 5, Y: 5}, // Tail
	}
	g.direction = DirLeft
	g.nextDir = DirUp
	g.food = Point{X: 0, Y: 0}

	g.moveSnake()

	if !g.gameOver {
		t.Error("moving onto the pre-move tail should end the game")
	}
}

func TestSnakeGrowth(t *testing.T) {
	g := newTestGame(222)

	g.snake = []Point{{X: 5, Y: 5}}
	g.direction = DirRight
	g.nextDir = DirRight
	g.food = Point{X: 6, Y: 5}

	events := g.moveSnake()

	if len(g.snake) != 2 {
		t.Fatalf("len = %d, expected 2", len(g.snake))
	}
	if g.snake[0] != (Point{X: 6, Y: 5}) {
		t.Errorf("head = %+v, expected (6,5)", g.snake[0])
	}
	if g.score != 10 {
		t.Errorf("score = %d, expected 10", g.score)
	}
	if g.isSnakeAt(g.food) {
		t.Errorf("new food %+v is on the snake", g.food)
	}
	if len(events) != 1 || events[0] != core.EventEat {
		t.Errorf("events = %v", events)
	}
	if g.interval != 148*time.Millisecond {
		t.Errorf("interval = %v, expected 148ms", g.interval)
	}
}

func TestIntervalFloor(t *testing.T) {
	g := newTestGame(5)
	for i := 0; i < 80; i++ {
		g.snake = []Point{{X: 5, Y: 5}}
		g.direction = DirRight
		g.nextDir = DirRight
		g.food = Point{X: 6, Y: 5}
		g.moveSnake()
	}
	if g.interval != 50*time.Millisecond {
		t.Errorf("interval = %v, expected floor of 50ms", g.interval)
	}
}

func TestFixedPresetKeepsInterval(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	config.ApplySnakePreset(&cfg, config.DifficultyFixed)
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{Seed: 3})

	g.snake = []Point{{X: 5, Y: 5}}
	g.food = Point{X: 6, Y: 5}
	g.moveSnake()

	if g.interval != 150*time.Millisecond {
		t.Errorf("interval = %v, fixed preset should not speed up", g.interval)
	}
}

func TestFoodSpawnValidity(t *testing.T) {
	g := newTestGame(999)
	g.snake = []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}

	for i := 0; i < 200; i++ {
		g.spawnFood()

		if g.isSnakeAt(g.food) {
			t.Fatalf("Food spawned on snake at (%d, %d)", g.food.X, g.food.Y)
		}
		if g.food.X < 0 || g.food.X >= g.cols || g.food.Y < 0 || g.food.Y >= g.rows {
			t.Fatalf("Food spawned out of bounds at (%d, %d)", g.food.X, g.food.Y)
		}
	}
}

func TestFoodOnFullBoard(t *testing.T) {
	g := newTestGame(1)
	g.snake = g.snake[:0]
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			g.snake = append(g.snake, Point{X: x, Y: y})
		}
	}

	g.spawnFood()
	if g.food != noFood {
		t.Errorf("food = %+v, expected none on a full board", g.food)
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := newTestGame(9)
	g.snake = []Point{{X: 31, Y: 0}}

	res := g.Step(core.Tick{Now: time.Second})
	if !res.State.GameOver || res.State.Phase != core.PhaseGameOver {
		t.Fatalf("expected game over, got %+v", res.State)
	}

	// Only the fade advances while over
	head := g.snake[0]
	for i := 0; i < 30; i++ {
		g.Step(core.Tick{Now: time.Second + time.Duration(i)*time.Second})
	}
	if g.snake[0] != head {
		t.Error("snake moved after game over")
	}
	if g.fade.Opacity != 0.8 || g.fade.Scale != 1 {
		t.Errorf("fade = %+v", g.fade)
	}

	// Direction keys do not restart
	g.HandleInput(core.Pressed(core.ActionUp))
	if !g.State().GameOver {
		t.Fatal("direction key restarted the game")
	}

	g.HandleInput(core.Pressed(core.ActionJump))
	if g.State().GameOver || g.score != 0 || len(g.snake) != 1 {
		t.Fatalf("restart failed: %s", g.DebugState())
	}
	res = g.Step(core.Tick{Now: 100 * time.Second})
	if len(res.Events) == 0 || res.Events[0] != core.EventRestart {
		t.Errorf("events after restart = %v", res.Events)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(444)

	screen := core.NewScreen(80, 24)
	g.Render(core.NewScreenSurface(screen, core.WorldW, core.WorldH))

	content := screen.String()
	if !strings.Contains(content, "Score: 0") {
		t.Error("HUD should contain the score")
	}
	if !strings.Contains(content, "█") {
		t.Error("snake head should be drawn")
	}

	g.gameOver = true
	g.fade = core.Fade{Opacity: 0.8, Scale: 1}
	screen.Clear()
	g.Render(core.NewScreenSurface(screen, core.WorldW, core.WorldH))
	if !strings.Contains(screen.String(), "Game Over!") {
		t.Error("game over overlay missing")
	}
}

func TestSprites(t *testing.T) {
	g := newTestGame(1)
	sprites := g.Sprites()

	if len(sprites) != 2 {
		t.Fatalf("sprites = %d, expected food + head", len(sprites))
	}
	if sprites[0].Visual != core.VisualFood || sprites[1].Visual != core.VisualSnakeHead {
		t.Errorf("visuals = %v, %v", sprites[0].Visual, sprites[1].Visual)
	}
	if sprites[1].Rect.X != 16*40 || sprites[1].Rect.Y != 9*40 {
		t.Errorf("head rect = %+v", sprites[1].Rect)
	}
}

func TestGameID(t *testing.T) {
	g := New()
	if g.ID() != "snake" || g.Title() != "Snake" {
		t.Errorf("ID/Title = %s/%s", g.ID(), g.Title())
	}
}
