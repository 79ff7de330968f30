// Package gui provides the ebiten frontend for the arcade: a windowed (or
// browser) build with mouse and touch controls and sound.
package gui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// Debug font glyph size in pixels.
const (
	glyphW = 6
	glyphH = 16
)

var colorBackground = color.RGBA{10, 10, 20, 255}

// palette maps visuals to the neon colors.
var palette = map[core.Visual]color.RGBA{
	core.VisualPlayer:    {0, 255, 255, 255},
	core.VisualPlatform:  {255, 0, 255, 255},
	core.VisualEnemy:     {255, 0, 68, 255},
	core.VisualCoin:      {255, 255, 0, 255},
	core.VisualObstacle:  {255, 0, 128, 255},
	core.VisualSnakeHead: {0, 255, 0, 255},
	core.VisualSnakeBody: {0, 170, 0, 255},
	core.VisualFood:      {255, 51, 51, 255},
	core.VisualGrid:      {30, 30, 50, 255},
	core.VisualHUD:       {0, 0, 0, 160},
	core.VisualTitle:     {255, 255, 0, 255},
	core.VisualButton:    {255, 0, 255, 200},
	core.VisualBanner:    {255, 0, 255, 255},
}

// colorOf returns the fill color for v; unknown visuals draw white.
func colorOf(v core.Visual) color.RGBA {
	if c, ok := palette[v]; ok {
		return c
	}
	return color.RGBA{255, 255, 255, 255}
}

// ImageSurface draws world coordinates straight onto an ebiten image.
// The app's layout is the world size, so no scaling is needed.
type ImageSurface struct {
	img *ebiten.Image
}

// NewImageSurface wraps img.
func NewImageSurface(img *ebiten.Image) *ImageSurface {
	return &ImageSurface{img: img}
}

// Size returns the world size.
func (s *ImageSurface) Size() (float64, float64) {
	return core.WorldW, core.WorldH
}

// Fill draws a filled rectangle.
func (s *ImageSurface) Fill(r core.Rect, v core.Visual) {
	ebitenutil.DrawRect(s.img, r.X, r.Y, r.W, r.H, colorOf(v))
}

// Text draws text with the debug font. It is always white.
func (s *ImageSurface) Text(x, y float64, text string, _ core.Visual) {
	ebitenutil.DebugPrintAt(s.img, text, int(x), int(y))
}

// TextCentered draws text horizontally centered at y.
func (s *ImageSurface) TextCentered(y float64, text string, v core.Visual) {
	s.Text(centeredX(text), y, text, v)
}

// Shade dims the image with translucent black.
func (s *ImageSurface) Shade(alpha float64) {
	a := uint8(core.ClampF(alpha, 0, 1) * 255)
	ebitenutil.DrawRect(s.img, 0, 0, core.WorldW, core.WorldH, color.RGBA{0, 0, 0, a})
}

// centeredX returns the left edge that centers text on the world.
func centeredX(text string) float64 {
	return (core.WorldW - float64(len(text)*glyphW)) / 2
}
