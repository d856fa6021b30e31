//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"life-canvas/internal/engine"
)

// Height is the pixel height of the status strip.
const Height = 18

var (
	panelColor = color.RGBA{R: 28, G: 28, B: 30, A: 255}
	textColor  = color.RGBA{R: 242, G: 242, B: 247, A: 255}
)

// HUD renders a one-line status strip below the grid.
type HUD struct {
	width int
	panel *ebiten.Image
}

// NewHUD constructs a HUD spanning width pixels.
func NewHUD(width int) *HUD {
	if width <= 0 {
		width = 1
	}
	h := &HUD{width: width, panel: ebiten.NewImage(width, Height)}
	return h
}

// Draw paints the strip with its top edge at offsetY.
func (h *HUD) Draw(screen *ebiten.Image, offsetY int, s engine.Snapshot) {
	if h == nil {
		return
	}
	h.panel.Fill(panelColor)
	text.Draw(h.panel, Status(s), basicfont.Face7x13, 4, Height-5, textColor)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(offsetY))
	screen.DrawImage(h.panel, op)
}
