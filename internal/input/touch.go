package input

import "github.com/vovakirdan/neon-arcade/internal/core"

// Touch pad layout in world units.
const (
	padSize     = 80
	padGap      = 10
	padMargin   = 20
	padBaseline = core.WorldH - 2*padMargin // Bottom edge of the pad row
)

// Button is an on-screen pointer target.
type Button struct {
	ID    string
	Label string
	Rect  core.Rect
}

// TouchControls lays out the on-screen buttons and resolves pointer
// positions to button ids. While playing, the left/right/jump pads are
// active; after game over, the restart and menu buttons replace them.
type TouchControls struct {
	pads     []Button
	overlay  []Button
	gameOver bool
}

// NewTouchControls creates the default layout for the world canvas.
func NewTouchControls() *TouchControls {
	top := float64(padBaseline - padSize)
	restart, menu := core.GameOverButtons(core.WorldW, core.WorldH)

	return &TouchControls{
		pads: []Button{
			{ID: PointerLeft, Label: "<", Rect: core.NewRect(padMargin, top, padSize, padSize)},
			{ID: PointerRight, Label: ">", Rect: core.NewRect(padMargin+padSize+padGap, top, padSize, padSize)},
			{ID: PointerJump, Label: "^", Rect: core.NewRect(core.WorldW-padMargin-padSize, top, padSize, padSize)},
		},
		overlay: []Button{
			{ID: PointerRestart, Label: "Restart Game", Rect: restart},
			{ID: PointerMenu, Label: "Back to Main Menu", Rect: menu},
		},
	}
}

// SetGameOver switches between the play pads and the game-over buttons.
func (tc *TouchControls) SetGameOver(over bool) {
	tc.gameOver = over
}

// Buttons returns the currently active buttons.
func (tc *TouchControls) Buttons() []Button {
	if tc.gameOver {
		return tc.overlay
	}
	return tc.pads
}

// HitTest returns the id of the active button under (x, y).
func (tc *TouchControls) HitTest(x, y float64) (string, bool) {
	for _, b := range tc.Buttons() {
		if b.Rect.Contains(x, y) {
			return b.ID, true
		}
	}
	return "", false
}

// Draw renders the play pads. The game-over buttons are part of the
// shared overlay and are drawn by the game itself.
func (tc *TouchControls) Draw(dst core.Surface) {
	if tc.gameOver {
		return
	}
	for _, b := range tc.pads {
		dst.Fill(b.Rect, core.VisualButton)
		cx, cy := b.Rect.Center()
		dst.Text(cx-4, cy-8, b.Label, core.VisualHUD)
	}
}
