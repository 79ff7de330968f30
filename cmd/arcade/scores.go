package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/scores"
	"github.com/vovakirdan/neon-arcade/internal/storage"
)

var (
	flagScoresAll   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show the top scores for a game",
	Long: `Display the top scores for the specified game, or a summary of
every game when none is given.

Examples:
  arcade scores
  arcade scores racer
  arcade scores snake --all
  arcade scores snake --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "List every recorded run instead of the top scores")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded score for the game")
}

func runScores(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && flagScoresClear {
		return fmt.Errorf("--clear needs a game")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		return printSummary(out, store)
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'arcade list' to see available games)", gameID)
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	if flagScoresClear {
		return clearScores(out, store, gameID, game.Title())
	}
	return printScores(out, store, gameID, game.Title(), flagScoresAll)
}

func printScores(out io.Writer, store *storage.Store, gameID, title string, all bool) error {
	var (
		entries []storage.ScoreEntry
		err     error
	)
	if all {
		entries, err = store.AllScores(gameID)
		fmt.Fprintf(out, "All Runs - %s\n\n", title)
	} else {
		entries, err = store.TopScores(gameID, scores.TopN)
		fmt.Fprintf(out, "Top Scores - %s\n\n", title)
	}
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %-12s  %s\n", "Rank", "Score", "Player", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %-12s  %s\n", "----", "-----", "------", "----")
	for i, entry := range entries {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		fmt.Fprintf(out, "  %-4d  %-10d  %-12s  %s\n", i+1, entry.Score, player, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Fprintf(out, "\nRuns: %d  Average: %.0f\n", stats.GamesCount, stats.AvgScore)
	}
	return nil
}

// printSummary lists every registered game with its best score and run
// count. Games without runs are shown with dashes.
func printSummary(out io.Writer, store *storage.Store) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "  %-12s  %-10s  %-6s  %s\n", "Game", "Best", "Runs", "Last played")
	fmt.Fprintf(out, "  %-12s  %-10s  %-6s  %s\n", "----", "----", "----", "-----------")
	for _, g := range registry.List() {
		s, ok := stats[g.ID]
		if !ok {
			fmt.Fprintf(out, "  %-12s  %-10s  %-6s  %s\n", g.ID, "-", "0", "-")
			continue
		}
		fmt.Fprintf(out, "  %-12s  %-10d  %-6d  %s\n", g.ID, s.HighScore, s.GamesCount, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func clearScores(out io.Writer, store *storage.Store, gameID, title string) error {
	best, err := store.HighScore(gameID)
	if err != nil {
		return err
	}
	if err := store.ClearScores(gameID); err != nil {
		return err
	}
	fmt.Fprintf(out, "Cleared %s scores (best was %d).\n", title, best)
	return nil
}
