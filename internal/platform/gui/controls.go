package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// keyBinding maps a physical key to an action.
type keyBinding struct {
	key    ebiten.Key
	action core.Action
}

// keyBindings is the keyboard layout. Order is the delivery order when
// several keys change on the same frame.
var keyBindings = []keyBinding{
	{ebiten.KeyA, core.ActionLeft},
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyD, core.ActionRight},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeyW, core.ActionUp},
	{ebiten.KeyArrowUp, core.ActionUp},
	{ebiten.KeyS, core.ActionDown},
	{ebiten.KeyArrowDown, core.ActionDown},
	{ebiten.KeySpace, core.ActionJump},
	{ebiten.KeyEnter, core.ActionConfirm},
	{ebiten.KeyEscape, core.ActionBack},
	{ebiten.KeyR, core.ActionRestart},
}

// keyEvents returns the presses and releases of bound keys this frame.
func keyEvents() []core.InputEvent {
	var out []core.InputEvent
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			out = append(out, core.Pressed(b.action))
		}
		if inpututil.IsKeyJustReleased(b.key) {
			out = append(out, core.Released(b.action))
		}
	}
	return out
}

// pointerSource identifies the mouse or one touch.
type pointerSource int

const mouseSource pointerSource = -1

// pointerEvent is a pointer going down or up at a world position.
type pointerEvent struct {
	source  pointerSource
	x, y    float64
	pressed bool
}

// pointerEvents collects mouse and touch transitions this frame. Cursor
// and touch positions are already in world units because the layout is
// the world size.
func pointerEvents() []pointerEvent {
	var out []pointerEvent

	mx, my := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		out = append(out, pointerEvent{source: mouseSource, x: float64(mx), y: float64(my), pressed: true})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		out = append(out, pointerEvent{source: mouseSource, x: float64(mx), y: float64(my)})
	}

	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		out = append(out, pointerEvent{source: pointerSource(id), x: float64(x), y: float64(y), pressed: true})
	}
	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		out = append(out, pointerEvent{source: pointerSource(id), x: float64(x), y: float64(y)})
	}
	return out
}

// pointerTracker remembers which button each pointer went down on, so the
// release goes to the same button wherever the pointer ends up.
type pointerTracker map[pointerSource]string

// press records that src went down on button id.
func (p pointerTracker) press(src pointerSource, id string) {
	p[src] = id
}

// release forgets src and returns the button it was holding.
func (p pointerTracker) release(src pointerSource) (string, bool) {
	id, ok := p[src]
	delete(p, src)
	return id, ok
}
