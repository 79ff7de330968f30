package platformer

import (
	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
)

// world holds every entity of the level being played.
// It is rebuilt from scratch on each level load.
type world struct {
	player    *Player
	platforms []Platform
	enemies   []*Enemy
	coins     []Coin
}

// buildWorld instantiates a level's static data.
func buildWorld(lvl config.Level, cfg config.PlatformerConfig) world {
	w := world{
		player:    newPlayer(lvl.PlayerStart, cfg),
		platforms: make([]Platform, 0, len(lvl.Platforms)),
		enemies:   make([]*Enemy, 0, len(lvl.Enemies)),
		coins:     make([]Coin, 0, len(lvl.Coins)),
	}
	for _, b := range lvl.Platforms {
		w.platforms = append(w.platforms, Platform{Rect: core.NewRect(b.X, b.Y, b.W, b.H)})
	}
	for _, s := range lvl.Enemies {
		w.enemies = append(w.enemies, newEnemy(s, cfg))
	}
	for _, c := range lvl.Coins {
		w.coins = append(w.coins, Coin{Rect: core.NewRect(c.X, c.Y, cfg.Coin.Width, cfg.Coin.Height)})
	}
	return w
}

// loadLevel replaces the world with level n. It reports false when there is
// no such level, which means the previous one was the last.
func (g *Game) loadLevel(n int) bool {
	lvl, ok := g.cfg.Levels.Get(n)
	if !ok {
		return false
	}
	g.level = n
	g.world = buildWorld(lvl, g.cfg)
	return true
}

// LevelCount returns the number of levels in the loaded level set.
func (g *Game) LevelCount() int {
	return len(g.cfg.Levels)
}
