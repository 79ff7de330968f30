package platformer

import (
	"math"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
)

// Player is the controllable character.
type Player struct {
	Rect    core.Rect
	Vel     core.Vec
	Jumping bool // False only while resting on a platform
	Facing  int  // -1 left, 1 right

	speed     float64
	jumpForce float64
	gravity   float64
}

func newPlayer(start config.Point, cfg config.PlatformerConfig) *Player {
	return &Player{
		Rect:      core.NewRect(start.X, start.Y, cfg.Player.Width, cfg.Player.Height),
		Facing:    1,
		Jumping:   true, // Spawns in the air until it lands
		speed:     cfg.Player.Speed,
		jumpForce: cfg.Physics.JumpForce,
		gravity:   cfg.Physics.Gravity,
	}
}

// Press applies a key-down. It reports whether a jump started.
func (p *Player) Press(a core.Action) bool {
	switch a {
	case core.ActionLeft:
		p.Vel.X = -p.speed
		p.Facing = -1
	case core.ActionRight:
		p.Vel.X = p.speed
		p.Facing = 1
	case core.ActionUp, core.ActionJump:
		if !p.Jumping {
			p.Vel.Y = p.jumpForce
			p.Jumping = true
			return true
		}
	}
	return false
}

// Release applies a key-up. Horizontal velocity is only cleared if it still
// points the released way.
func (p *Player) Release(a core.Action) {
	switch a {
	case core.ActionLeft:
		if p.Vel.X < 0 {
			p.Vel.X = 0
		}
	case core.ActionRight:
		if p.Vel.X > 0 {
			p.Vel.X = 0
		}
	}
}

// Update integrates one tick of movement and lands on platforms.
// Landing zeroes Vel.Y, so with several overlaps the first platform in
// order wins.
func (p *Player) Update(platforms []Platform) {
	p.Rect.X += p.Vel.X
	p.Vel.Y += p.gravity
	p.Rect.Y += p.Vel.Y

	p.Jumping = true
	for _, pl := range platforms {
		if p.Rect.Intersects(pl.Rect) && p.Vel.Y > 0 {
			p.Rect.Y = pl.Rect.Y - p.Rect.H
			p.Vel.Y = 0
			p.Jumping = false
		}
	}
}

// Platform is static level geometry.
type Platform struct {
	Rect core.Rect
}

// Enemy walks back and forth around its spawn point.
type Enemy struct {
	Rect      core.Rect
	StartX    float64
	Patrol    float64
	Speed     float64
	Direction int
}

func newEnemy(s config.EnemySpawn, cfg config.PlatformerConfig) *Enemy {
	return &Enemy{
		Rect:      core.NewRect(s.X, s.Y, cfg.Enemy.Width, cfg.Enemy.Height),
		StartX:    s.X,
		Patrol:    s.Patrol,
		Speed:     cfg.Enemy.Speed,
		Direction: 1,
	}
}

// Update moves the enemy one step and turns it around once it has gone
// Patrol or further from its start.
func (e *Enemy) Update() {
	e.Rect.X += e.Speed * float64(e.Direction)
	if math.Abs(e.Rect.X-e.StartX) >= e.Patrol {
		e.Direction = -e.Direction
	}
}

// Coin is a collectible worth a fixed number of points.
type Coin struct {
	Rect core.Rect
}
