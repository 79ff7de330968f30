package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func mustSave(t *testing.T, store *Store, gameID, player string, score int) {
	t.Helper()
	if _, err := store.SaveScore(gameID, player, score); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("snake", "", 40); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("snake")
	if err != nil || high != 40 {
		t.Errorf("HighScore() = %d, %v; expected 40", high, err)
	}
}

func TestStoreTopScores(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, "racer", "", 100)
	mustSave(t, store, "racer", "alice", 50)
	mustSave(t, store, "racer", "", 200)
	mustSave(t, store, "snake", "", 500)

	scores, err := store.TopScores("racer", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	want := []int{200, 100, 50}
	if len(scores) != len(want) {
		t.Fatalf("Expected %d scores, got %d", len(want), len(scores))
	}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
		if scores[i].GameID != "racer" {
			t.Errorf("scores[%d] belongs to %q", i, scores[i].GameID)
		}
	}
	if scores[2].Player != "alice" {
		t.Errorf("player = %q, expected alice", scores[2].Player)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  []int
	}{
		{"top five", 5, []int{700, 600, 500, 400, 300}},
		{"top three", 3, []int{700, 600, 500}},
		{"zero uses default", 0, []int{700, 600, 500, 400, 300, 200, 100}},
	}

	store := openTestStore(t)
	for i := 1; i <= 7; i++ {
		mustSave(t, store, "platformer", "", i*100)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores, err := store.TopScores("platformer", tt.limit)
			if err != nil {
				t.Fatalf("TopScores() failed: %v", err)
			}
			if len(scores) != len(tt.want) {
				t.Fatalf("got %d scores, expected %d", len(scores), len(tt.want))
			}
			for i, w := range tt.want {
				if scores[i].Score != w {
					t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
				}
			}
		})
	}
}

func TestStoreTiesKeepInsertionOrder(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, "snake", "first", 30)
	mustSave(t, store, "snake", "second", 30)

	scores, err := store.TopScores("snake", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].Player != "first" || scores[1].Player != "second" {
		t.Errorf("tie order = %q, %q", scores[0].Player, scores[1].Player)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("racer")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	mustSave(t, store, "racer", "", 100)
	mustSave(t, store, "racer", "", 300)
	mustSave(t, store, "racer", "", 200)

	high, err = store.HighScore("racer")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, "racer", "", 100)
	mustSave(t, store, "racer", "", 200)
	mustSave(t, store, "snake", "", 300)

	if err := store.ClearScores("racer"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	racer, _ := store.AllScores("racer")
	if len(racer) != 0 {
		t.Errorf("Expected 0 racer scores after clear, got %d", len(racer))
	}

	snake, _ := store.AllScores("snake")
	if len(snake) != 1 {
		t.Error("Snake scores should not be affected by clearing racer")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		mustSave(t, store, "snake", "", i*10)
	}

	scores, err := store.AllScores("snake")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
	if scores[0].Score != 190 {
		t.Errorf("AllScores should be sorted descending, first = %d", scores[0].Score)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("platformer")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	mustSave(t, store, "platformer", "", 10)
	mustSave(t, store, "platformer", "", 30)
	mustSave(t, store, "racer", "", 70)

	stats, err := store.GetGameStats("platformer")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 30 || stats.TotalScore != 40 || stats.AvgScore != 20 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected stats for 2 games, got %d", len(all))
	}
	if all["racer"].HighScore != 70 || all["racer"].GamesCount != 1 {
		t.Errorf("racer stats = %+v", all["racer"])
	}
}

func TestStoreClosedErrors(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.Close()

	_, err = store.SaveScore("snake", "", 10)
	if err == nil {
		t.Fatal("expected error after close")
	}
	if errors.Unwrap(err) == nil {
		t.Errorf("error should wrap the driver error: %v", err)
	}
}
