package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

//go:embed defaults/racer.yaml
var defaultRacerYAML []byte

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultPlatformerConfig returns the default platformer configuration.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PlatformerPhysics{
			Gravity:   0.8,
			JumpForce: -15,
		},
		Player:          PlatformerPlayer{Width: 32, Height: 48, Speed: 5},
		Enemy:           PlatformerEnemy{Width: 32, Height: 32, Speed: 2},
		Coin:            PlatformerCoin{Width: 24, Height: 24, Value: 10},
		TransitionTicks: 60,
		Levels:          DefaultLevels(),
	}
}

// DefaultLevels returns the two built-in platformer levels.
func DefaultLevels() LevelSet {
	return LevelSet{
		{
			Number:      1,
			PlayerStart: Point{X: 100, Y: 300},
			Platforms: []Box{
				{X: 0, Y: 500, W: 300, H: 20},
				{X: 400, Y: 400, W: 200, H: 20},
				{X: 700, Y: 300, W: 200, H: 20},
				{X: 300, Y: 200, W: 200, H: 20},
			},
			Enemies: []EnemySpawn{
				{X: 450, Y: 370, Patrol: 100},
				{X: 750, Y: 270, Patrol: 100},
			},
			Coins: []Point{
				{X: 500, Y: 350},
				{X: 800, Y: 250},
				{X: 350, Y: 150},
			},
		},
		{
			Number:      2,
			PlayerStart: Point{X: 50, Y: 500},
			Platforms: []Box{
				{X: 0, Y: 600, W: 200, H: 20},
				{X: 300, Y: 500, W: 200, H: 20},
				{X: 600, Y: 400, W: 200, H: 20},
				{X: 900, Y: 300, W: 200, H: 20},
				{X: 600, Y: 200, W: 200, H: 20},
				{X: 300, Y: 100, W: 200, H: 20},
			},
			Enemies: []EnemySpawn{
				{X: 350, Y: 470, Patrol: 100},
				{X: 650, Y: 370, Patrol: 100},
				{X: 650, Y: 170, Patrol: 100},
			},
			Coins: []Point{
				{X: 400, Y: 450},
				{X: 700, Y: 350},
				{X: 950, Y: 250},
				{X: 700, Y: 150},
				{X: 400, Y: 50},
			},
		},
	}
}

// DefaultRacerConfig returns the default racer configuration.
func DefaultRacerConfig() RacerConfig {
	return RacerConfig{
		Player: RacerPlayer{
			Width:        80,
			Height:       120,
			Speed:        8,
			BottomMargin: 20,
		},
		Obstacles: RacerObstacles{
			SpawnChance: 0.02,
			MinWidth:    60,
			MaxWidth:    160,
			MinHeight:   80,
			MaxHeight:   180,
			PassPoints:  10,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Base:    7,
			Step:    0.5,
			Every:   100,
		},
	}
}

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid:       SnakeGrid{CellSize: 40},
		FoodPoints: 10,
		Difficulty: DifficultyConfig{
			Enabled: true,
			Base:    150,
			Step:    -2,
			Every:   10, // One step per food eaten
			Limit:   50,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "platformer":
		return defaultPlatformerYAML
	case "racer":
		return defaultRacerYAML
	case "snake":
		return defaultSnakeYAML
	default:
		return nil
	}
}
