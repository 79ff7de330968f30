package platformer

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick            uint64
	Level           int
	Score           int
	Phase           string
	Won             bool
	PlayerX         float64
	PlayerY         float64
	VelX            float64
	VelY            float64
	Jumping         bool
	Facing          int
	Coins           int
	Enemies         int
	TransitionTicks int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:            g.tick,
		Level:           g.level,
		Score:           g.score,
		Phase:           g.phase.String(),
		Won:             g.won,
		Coins:           len(g.world.coins),
		Enemies:         len(g.world.enemies),
		TransitionTicks: g.transitionTicks,
	}
	if p := g.world.player; p != nil {
		s.PlayerX, s.PlayerY = p.Rect.X, p.Rect.Y
		s.VelX, s.VelY = p.Vel.X, p.Vel.Y
		s.Jumping = p.Jumping
		s.Facing = p.Facing
	}
	return s
}
