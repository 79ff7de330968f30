package racer

import (
	"math/rand"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
)

// Obstacle is a block falling toward the player.
type Obstacle struct {
	Rect  core.Rect
	Speed float64 // Captured at spawn; later speed-ups do not apply
}

// ObstacleManager handles spawning, movement, and removal of obstacles.
type ObstacleManager struct {
	obstacles []Obstacle
	rng       *rand.Rand
	cfg       *config.RacerConfig
}

// NewObstacleManager creates a new obstacle manager with the given RNG seed.
func NewObstacleManager(seed int64, cfg *config.RacerConfig) *ObstacleManager {
	om := &ObstacleManager{
		obstacles: make([]Obstacle, 0, 8),
		cfg:       cfg,
	}
	om.Reset(seed)
	return om
}

// Reset clears all obstacles and resets the RNG.
func (om *ObstacleManager) Reset(seed int64) {
	om.obstacles = om.obstacles[:0]
	om.rng = rand.New(rand.NewSource(seed))
}

// Obstacles returns the obstacles currently on the road.
func (om *ObstacleManager) Obstacles() []Obstacle {
	return om.obstacles
}

// MaybeSpawn runs the per-tick spawn trial. A spawned obstacle starts just
// above the visible area and falls at speed for its whole life.
func (om *ObstacleManager) MaybeSpawn(speed float64) bool {
	if om.rng.Float64() >= om.cfg.Obstacles.SpawnChance {
		return false
	}
	om.Spawn(speed)
	return true
}

// Spawn adds one obstacle with a random size and column.
func (om *ObstacleManager) Spawn(speed float64) {
	o := om.cfg.Obstacles
	w := o.MinWidth + om.rng.Float64()*(o.MaxWidth-o.MinWidth)
	h := o.MinHeight + om.rng.Float64()*(o.MaxHeight-o.MinHeight)
	x := om.rng.Float64() * (core.WorldW - w)

	om.obstacles = append(om.obstacles, Obstacle{
		Rect:  core.NewRect(x, -h, w, h),
		Speed: speed,
	})
}

// Update moves every obstacle and removes those that hit the player or left
// the road. Collision is checked first, so an obstacle that does both in the
// same tick counts as a crash.
func (om *ObstacleManager) Update(player core.Rect) (passed int, crashed bool) {
	kept := om.obstacles[:0]
	for _, ob := range om.obstacles {
		ob.Rect.Y += ob.Speed

		if ob.Rect.Intersects(player) {
			crashed = true
			continue
		}
		if ob.Rect.Y > core.WorldH {
			passed++
			continue
		}
		kept = append(kept, ob)
	}
	om.obstacles = kept
	return passed, crashed
}
