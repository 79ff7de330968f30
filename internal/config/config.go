// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// PlatformerConfig contains all configuration for the platformer.
type PlatformerConfig struct {
	Physics         PlatformerPhysics `yaml:"physics"`
	Player          PlatformerPlayer  `yaml:"player"`
	Enemy           PlatformerEnemy   `yaml:"enemy"`
	Coin            PlatformerCoin    `yaml:"coin"`
	TransitionTicks int               `yaml:"transition_ticks"` // Hold between levels
	Levels          LevelSet          `yaml:"levels"`
}

// PlatformerPhysics defines physics parameters for the platformer.
type PlatformerPhysics struct {
	Gravity   float64 `yaml:"gravity"`
	JumpForce float64 `yaml:"jump_force"` // Negative: up is -y
}

// PlatformerPlayer defines player parameters for the platformer.
type PlatformerPlayer struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// PlatformerEnemy defines enemy parameters for the platformer.
type PlatformerEnemy struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// PlatformerCoin defines coin parameters for the platformer.
type PlatformerCoin struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Value  int     `yaml:"value"`
}

// Point is a position in world units.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Box is a rectangle in world units.
type Box struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// EnemySpawn places a patrolling enemy.
type EnemySpawn struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Patrol float64 `yaml:"patrol"` // Max distance from X before reversing
}

// Level is the static data of one platformer level.
type Level struct {
	Number      int          `yaml:"number"`
	PlayerStart Point        `yaml:"player_start"`
	Platforms   []Box        `yaml:"platforms"`
	Enemies     []EnemySpawn `yaml:"enemies"`
	Coins       []Point      `yaml:"coins"`
}

// LevelSet is an ordered list of levels numbered 1..n.
type LevelSet []Level

// ErrNoLevels is returned when a level set is empty.
var ErrNoLevels = errors.New("level set is empty")

// Validate checks that levels are numbered contiguously from 1 and that each
// level can be completed.
func (ls LevelSet) Validate() error {
	if len(ls) == 0 {
		return ErrNoLevels
	}
	for i, lvl := range ls {
		if lvl.Number != i+1 {
			return fmt.Errorf("level %d: expected number %d", lvl.Number, i+1)
		}
		if len(lvl.Coins) == 0 {
			return fmt.Errorf("level %d: no coins", lvl.Number)
		}
		for j, p := range lvl.Platforms {
			if p.W <= 0 || p.H <= 0 {
				return fmt.Errorf("level %d: platform %d has non-positive size", lvl.Number, j)
			}
		}
	}
	return nil
}

// Get returns level n. A miss means the previous level was the last one.
func (ls LevelSet) Get(n int) (Level, bool) {
	if n < 1 || n > len(ls) {
		return Level{}, false
	}
	return ls[n-1], true
}

// RacerConfig contains all configuration for the racer.
type RacerConfig struct {
	Player     RacerPlayer      `yaml:"player"`
	Obstacles  RacerObstacles   `yaml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty"` // Obstacle speed
}

// RacerPlayer defines the player car.
type RacerPlayer struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	BottomMargin float64 `yaml:"bottom_margin"`
}

// RacerObstacles defines obstacle spawning.
type RacerObstacles struct {
	SpawnChance float64 `yaml:"spawn_chance"` // Per-tick probability
	MinWidth    float64 `yaml:"min_width"`
	MaxWidth    float64 `yaml:"max_width"`
	MinHeight   float64 `yaml:"min_height"`
	MaxHeight   float64 `yaml:"max_height"`
	PassPoints  int     `yaml:"pass_points"`
}

// SnakeConfig contains all configuration for snake.
type SnakeConfig struct {
	Grid       SnakeGrid        `yaml:"grid"`
	FoodPoints int              `yaml:"food_points"`
	Difficulty DifficultyConfig `yaml:"difficulty"` // Move interval in milliseconds
}

// SnakeGrid defines the board.
type SnakeGrid struct {
	CellSize int `yaml:"cell_size"`
}

// DifficultyConfig defines a value that changes in steps as the score grows.
type DifficultyConfig struct {
	Enabled bool    `yaml:"enabled"`
	Base    float64 `yaml:"base"`  // Value at score 0
	Step    float64 `yaml:"step"`  // Added per Every points
	Every   int     `yaml:"every"` // Score interval between steps
	Limit   float64 `yaml:"limit"` // Bound the value never passes; 0 means unbounded
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
