// Package tui provides the Bubble Tea frontend for the arcade: the menu,
// the scoreboard, the in-game view and SSH hosting.
package tui

import (
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// keyHold is how long a key counts as held after its last press.
// Terminals report presses and auto-repeat but never releases.
const keyHold = 250 * time.Millisecond

// heldKeys synthesizes key releases for terminal input.
type heldKeys map[core.Action]time.Time

// press records a press (or auto-repeat) of a at now.
func (h heldKeys) press(a core.Action, now time.Time) {
	h[a] = now
}

// expired removes and returns the keys not pressed within keyHold of now.
func (h heldKeys) expired(now time.Time) []core.Action {
	var out []core.Action
	for a, at := range h {
		if now.Sub(at) >= keyHold {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	for _, a := range out {
		delete(h, a)
	}
	return out
}
