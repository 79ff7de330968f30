package scores

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/neon-arcade/internal/storage"
)

func scoresOf(entries []Entry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Score
	}
	return out
}

func TestMemoryBoardKeepsBestFive(t *testing.T) {
	b := NewMemoryBoard()

	for _, s := range []int{30, 10, 70, 50, 20, 60, 40} {
		b.RecordScore("racer", s)
	}

	assert.Equal(t, []int{70, 60, 50, 40, 30}, scoresOf(b.TopScores("racer")))
}

func TestMemoryBoardPerGame(t *testing.T) {
	b := NewMemoryBoard()

	b.RecordScore("snake", 40)
	b.RecordScore("platformer", 90)

	assert.Equal(t, []int{40}, scoresOf(b.TopScores("snake")))
	assert.Equal(t, []int{90}, scoresOf(b.TopScores("platformer")))
	assert.Empty(t, b.TopScores("racer"))
}

func TestMemoryBoardReturnsCopy(t *testing.T) {
	b := NewMemoryBoard()
	b.RecordScore("snake", 10)

	top := b.TopScores("snake")
	top[0].Score = 999

	assert.Equal(t, 10, b.TopScores("snake")[0].Score)
}

func TestMemoryBoardLowScoreDropped(t *testing.T) {
	b := NewMemoryBoard()
	for i := 1; i <= TopN; i++ {
		b.RecordScore("racer", i*100)
	}

	b.RecordScore("racer", 50)

	top := scoresOf(b.TopScores("racer"))
	assert.Len(t, top, TopN)
	assert.NotContains(t, top, 50)
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreBoard(t *testing.T) {
	store := openStore(t)
	b := NewStoreBoard(store, log.New(&bytes.Buffer{}))

	for _, s := range []int{30, 10, 70, 50, 20, 60} {
		b.RecordScore("snake", s)
	}
	b.ForPlayer("alice").RecordScore("snake", 80)

	top := b.TopScores("snake")
	require.Len(t, top, TopN)
	assert.Equal(t, []int{80, 70, 60, 50, 30}, scoresOf(top))
	assert.Equal(t, "alice", top[0].Player)
	assert.Empty(t, top[1].Player)

	all, err := store.AllScores("snake")
	require.NoError(t, err)
	assert.Len(t, all, 7, "the store keeps every run")
}

func TestStoreBoardLogsErrors(t *testing.T) {
	store := openStore(t)
	var buf bytes.Buffer
	b := NewStoreBoard(store, log.New(&buf))
	store.Close()

	assert.NotPanics(t, func() { b.RecordScore("racer", 10) })
	assert.Nil(t, b.TopScores("racer"))
	assert.Contains(t, buf.String(), "could not save score")
	assert.Contains(t, buf.String(), "could not load scores")
}
