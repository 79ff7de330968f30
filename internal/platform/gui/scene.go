package gui

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the app: the menu, a game or the scoreboard.
// Exactly one scene is active; it owns the input and the drawing surface.
type Scene interface {
	// Update advances the scene by one frame. A non-nil next replaces the
	// current scene.
	Update() (next Scene, err error)

	// Draw renders the scene.
	Draw(screen *ebiten.Image)

	// OnEnter is called when the scene becomes active.
	OnEnter()

	// OnExit is called when the scene is replaced.
	OnExit()
}
