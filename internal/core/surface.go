package core

import (
	"fmt"
	"math"
)

// Visual identifies how a frontend should draw a sprite or a piece of text.
type Visual int

const (
	VisualNone Visual = iota
	VisualPlayer
	VisualPlatform
	VisualEnemy
	VisualCoin
	VisualObstacle
	VisualSnakeHead
	VisualSnakeBody
	VisualFood
	VisualGrid
	VisualHUD
	VisualTitle
	VisualButton
	VisualBanner
)

func (v Visual) String() string {
	switch v {
	case VisualPlayer:
		return "player"
	case VisualPlatform:
		return "platform"
	case VisualEnemy:
		return "enemy"
	case VisualCoin:
		return "coin"
	case VisualObstacle:
		return "obstacle"
	case VisualSnakeHead:
		return "snake_head"
	case VisualSnakeBody:
		return "snake_body"
	case VisualFood:
		return "food"
	case VisualGrid:
		return "grid"
	case VisualHUD:
		return "hud"
	case VisualTitle:
		return "title"
	case VisualButton:
		return "button"
	case VisualBanner:
		return "banner"
	default:
		return "none"
	}
}

// Sprite is a render snapshot of one entity.
type Sprite struct {
	Rect   Rect
	Visual Visual
	Facing int // -1 left, 1 right, 0 when not applicable
}

// Surface is the single rendering target owned by the active scene.
// Coordinates are world units; implementations scale to their output.
type Surface interface {
	// Size returns the world size the surface maps onto its output.
	Size() (w, h float64)
	// Fill draws a filled rectangle.
	Fill(r Rect, v Visual)
	// Text draws a line of text with its top-left corner at (x, y).
	Text(x, y float64, text string, v Visual)
	// TextCentered draws a line of text horizontally centered at y.
	TextCentered(y float64, text string, v Visual)
	// Shade dims everything drawn so far by alpha in [0, 1].
	Shade(alpha float64)
}

// DrawSprites fills every sprite in order.
func DrawSprites(dst Surface, sprites []Sprite) {
	for _, s := range sprites {
		dst.Fill(s.Rect, s.Visual)
	}
}

// DrawScore draws the shared score HUD in the top-left corner.
func DrawScore(dst Surface, score int) {
	dst.Fill(NewRect(10, 10, 200, 50), VisualHUD)
	dst.Text(20, 20, fmt.Sprintf("Score: %d", score), VisualHUD)
}

// Game-over overlay button layout.
const (
	gameOverButtonW       = 300
	gameOverButtonH       = 80
	gameOverButtonSpacing = 40
)

// GameOverButtons returns the restart and back-to-menu button rectangles
// of the game-over overlay for a w×h world.
func GameOverButtons(w, h float64) (restart, menu Rect) {
	y := h * 7 / 10
	restart = NewRect(w/2-gameOverButtonW-gameOverButtonSpacing/2, y, gameOverButtonW, gameOverButtonH)
	menu = NewRect(w/2+gameOverButtonSpacing/2, y, gameOverButtonW, gameOverButtonH)
	return restart, menu
}

// DrawGameOver draws the shared game-over overlay: shade, title, final score
// and the two buttons. opacity and scale drive the fade-in; callers that do
// not animate pass 0.8 and 1.
func DrawGameOver(dst Surface, score int, won bool, opacity, scale float64) {
	w, h := dst.Size()
	dst.Shade(ClampF(opacity, 0, 1))

	if scale > 0 {
		title := "Game Over!"
		if won {
			title = "You Win!"
		}
		// Shrunk text is approximated by revealing the title progressively.
		n := int(math.Ceil(float64(len(title)) * ClampF(scale, 0, 1)))
		dst.TextCentered(h/3, title[:n], VisualTitle)
	}
	dst.TextCentered(h/2, fmt.Sprintf("Final Score: %d", score), VisualTitle)

	restart, menu := GameOverButtons(w, h)
	dst.Fill(restart, VisualButton)
	dst.Fill(menu, VisualButton)
	dst.Text(restart.X+20, restart.Y+restart.H/2-10, "Restart Game", VisualButton)
	dst.Text(menu.X+20, menu.Y+menu.H/2-10, "Back to Main Menu", VisualButton)
}

// Fade advances the cosmetic game-over fade-in shared by the racer and snake.
type Fade struct {
	Opacity float64
	Scale   float64
}

// Step advances the fade by one tick.
func (f *Fade) Step() {
	f.Opacity = math.Min(f.Opacity+0.03, 0.8)
	f.Scale = math.Min(f.Scale+0.1, 1)
}
