package racer

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Score     int
	Speed     float64
	PlayerX   float64
	Obstacles int
	GameOver  bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Score:     g.score,
		Speed:     g.speed,
		PlayerX:   g.player.X,
		Obstacles: len(g.obstacles.Obstacles()),
		GameOver:  g.gameOver,
	}
}
