// Package scores keeps the per-game leaderboards shown in the menu.
package scores

import (
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-arcade/internal/storage"
)

// TopN is the number of scores a leaderboard shows per game.
const TopN = 5

// Entry is one leaderboard line.
type Entry struct {
	Player string
	Score  int
}

// Board records finished runs and reports the best ones.
// RecordScore never fails the caller; implementations log their errors.
type Board interface {
	RecordScore(gameID string, score int)
	TopScores(gameID string) []Entry
}

// MemoryBoard is an in-process leaderboard that keeps only the best TopN
// scores per game. Used where no database is available.
type MemoryBoard struct {
	mu     sync.RWMutex
	scores map[string][]Entry
}

// NewMemoryBoard creates an empty leaderboard.
func NewMemoryBoard() *MemoryBoard {
	return &MemoryBoard{
		scores: make(map[string][]Entry),
	}
}

// RecordScore inserts score and trims the game's list to TopN.
func (b *MemoryBoard) RecordScore(gameID string, score int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	list := append(b.scores[gameID], Entry{Score: score})
	// Stable keeps earlier runs ahead of later ties.
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Score > list[j].Score
	})
	if len(list) > TopN {
		list = list[:TopN]
	}
	b.scores[gameID] = list
}

// TopScores returns a copy of the game's leaderboard, best first.
func (b *MemoryBoard) TopScores(gameID string) []Entry {
	b.mu.RLock()
	defer b.mu.RUnlock()

	list := b.scores[gameID]
	out := make([]Entry, len(list))
	copy(out, list)
	return out
}

// StoreBoard is a leaderboard backed by the SQLite score store.
type StoreBoard struct {
	store  *storage.Store
	player string
	logger *log.Logger
}

// NewStoreBoard wraps store. A nil logger uses log.Default().
func NewStoreBoard(store *storage.Store, logger *log.Logger) *StoreBoard {
	if logger == nil {
		logger = log.Default()
	}
	return &StoreBoard{store: store, logger: logger}
}

// ForPlayer returns a board that tags new scores with player.
func (b *StoreBoard) ForPlayer(player string) *StoreBoard {
	cp := *b
	cp.player = player
	return &cp
}

// RecordScore saves score. Errors are logged and dropped.
func (b *StoreBoard) RecordScore(gameID string, score int) {
	if _, err := b.store.SaveScore(gameID, b.player, score); err != nil {
		b.logger.Error("could not save score", "game", gameID, "score", score, "error", err)
		return
	}
	b.logger.Debug("score saved", "game", gameID, "score", score, "player", b.player)
}

// TopScores loads the best TopN scores. On error the board is empty.
func (b *StoreBoard) TopScores(gameID string) []Entry {
	rows, err := b.store.TopScores(gameID, TopN)
	if err != nil {
		b.logger.Error("could not load scores", "game", gameID, "error", err)
		return nil
	}

	out := make([]Entry, len(rows))
	for i, r := range rows {
		out[i] = Entry{Player: r.Player, Score: r.Score}
	}
	return out
}
