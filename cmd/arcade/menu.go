package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

After a game ends, Esc returns to the menu to play again.

Controls:
  Up/Down  - Navigate menu
  Enter    - Select game
  Tab      - Top scores
  M        - Toggle sound
  Q        - Quit

Examples:
  arcade menu
  arcade menu --fps 30 --sound
  arcade menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger := newLogger()
	opts, cleanup := sessionOptions(logger)
	defer cleanup()

	return tui.RunSession(runtimeConfig(), opts)
}
