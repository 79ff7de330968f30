package core

import "time"

// World dimensions shared by every game. Frontends scale this to their output.
const (
	WorldW = 1280
	WorldH = 720
)

// RuntimeConfig contains configuration passed to games at initialization.
// Games simulate in their own world units; the screen size is only used by
// frontends that need it.
type RuntimeConfig struct {
	ScreenW  int   // Output width (characters or pixels, frontend-defined)
	ScreenH  int   // Output height
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the coarse state of a game's state machine.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseLevelTransition
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseLevelTransition:
		return "level_transition"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int   // Current score
	Phase    Phase // Current state machine phase
	GameOver bool  // Whether the game has ended (lost or won)
	Won      bool  // Set together with GameOver when the final level was completed
}

// Tick identifies one simulation step.
type Tick struct {
	Seq uint64        // Monotonic step counter since the runner started
	Now time.Duration // Elapsed time since the runner started
}

// Event is a notable occurrence within a single step.
// Frontends use events for sound effects; games never depend on them.
type Event int

const (
	EventNone Event = iota
	EventJump
	EventCoin
	EventLevelClear
	EventLevelStart
	EventPass
	EventEat
	EventCrash
	EventGameOver
	EventWin
	EventRestart
	EventClick
)

func (e Event) String() string {
	switch e {
	case EventJump:
		return "jump"
	case EventCoin:
		return "coin"
	case EventLevelClear:
		return "level_clear"
	case EventLevelStart:
		return "level_start"
	case EventPass:
		return "pass"
	case EventEat:
		return "eat"
	case EventCrash:
		return "crash"
	case EventGameOver:
		return "game_over"
	case EventWin:
		return "win"
	case EventRestart:
		return "restart"
	case EventClick:
		return "click"
	default:
		return "none"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
