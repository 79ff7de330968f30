// arcade-web runs the Neon Arcade in a window (or a browser tab when built
// for js/wasm) with mouse, touch and keyboard controls and synthesized
// sound. Scores last for the session only.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-arcade/internal/audio"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/games/platformer"
	"github.com/vovakirdan/neon-arcade/internal/games/racer"
	"github.com/vovakirdan/neon-arcade/internal/games/snake"
	"github.com/vovakirdan/neon-arcade/internal/platform/gui"
	"github.com/vovakirdan/neon-arcade/internal/scores"
)

var (
	flagFPS        int
	flagConfig     string
	flagDifficulty string
	flagSound      bool
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade-web",
	Short: "Neon Arcade in a window",
	Long: `Opens the Neon Arcade in a window.

Controls:
  Arrows/WASD  - Move, steer or turn
  Space        - Jump
  R            - Restart (after game over)
  Esc          - Back to the main menu
  M            - Toggle sound
  Mouse/touch  - On-screen pads and buttons`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.Flags().BoolVar(&flagSound, "sound", false, "Start with sound enabled")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func run(_ *cobra.Command, _ []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "arcade-web",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLevel(level)

	for _, set := range []struct {
		config     func(string)
		difficulty func(string)
	}{
		{platformer.SetConfigPath, platformer.SetDifficultyPreset},
		{racer.SetConfigPath, racer.SetDifficultyPreset},
		{snake.SetConfigPath, snake.SetDifficultyPreset},
	} {
		set.config(flagConfig)
		set.difficulty(flagDifficulty)
	}

	sounds := audio.NewManager(logger)
	defer sounds.Close()
	if flagSound {
		sounds.Toggle()
	}

	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = core.WorldW, core.WorldH
	cfg.TickRate = flagFPS

	return gui.Run(gui.Options{
		Board:  scores.NewMemoryBoard(),
		Sounds: sounds,
		Logger: logger,
		Config: cfg,
	})
}
