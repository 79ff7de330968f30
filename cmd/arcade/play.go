package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-arcade/internal/platform/tui"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Left/Right, A/D  - Move or steer
  Up/Down, W/S     - Turn (snake)
  Space            - Jump
  R                - Restart (after game over)
  M                - Toggle sound
  Esc              - Leave the game
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at the lowest level, progresses to max
  normal - Start part way up, progresses to max
  hard   - Start near the top, progresses to max
  fixed  - No progression, stays at the config's initial level

Examples:
  arcade play platformer
  arcade play racer --difficulty hard
  arcade play snake --difficulty fixed
  arcade play racer --config ./my-racer.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'arcade list' to see available games)", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	logger := newLogger()
	opts, cleanup := sessionOptions(logger)
	defer cleanup()

	if err := tui.Run(game, runtimeConfig(), opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
