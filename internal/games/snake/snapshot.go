package snake

import "time"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Score     int
	FoodEaten int
	SnakeLen  int
	HeadX     int
	HeadY     int
	Dir       Direction
	NextDir   Direction
	FoodX     int
	FoodY     int
	Interval  time.Duration
	State     string
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	headX, headY := 0, 0
	if len(g.snake) > 0 {
		headX = g.snake[0].X
		headY = g.snake[0].Y
	}

	return Snapshot{
		Tick:      g.tick,
		Score:     g.score,
		FoodEaten: g.foodEaten,
		SnakeLen:  len(g.snake),
		HeadX:     headX,
		HeadY:     headY,
		Dir:       g.direction,
		NextDir:   g.nextDir,
		FoodX:     g.food.X,
		FoodY:     g.food.Y,
		Interval:  g.interval,
		State:     g.State().Phase.String(),
	}
}
