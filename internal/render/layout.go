package render

import (
	"image"
	"image/color"
)

const (
	// CellSize is the edge length of a painted cell in pixels.
	CellSize = 16
	// Margin is the gap between cells and around the grid in pixels.
	Margin = 2
)

var (
	// Background fills the canvas and the gaps between cells.
	Background = color.RGBA{R: 174, G: 174, B: 178, A: 255}
	// CellColor paints alive cells.
	CellColor = color.RGBA{R: 255, G: 0, B: 128, A: 255}
)

// Layout maps grid indices to pixel offsets.
type Layout struct {
	CellSize int
	Margin   int
}

// DefaultLayout returns the standard 16px cell, 2px margin layout.
func DefaultLayout() Layout {
	return Layout{CellSize: CellSize, Margin: Margin}
}

// Pitch is the distance between the origins of neighbouring cells.
func (l Layout) Pitch() int { return l.CellSize + l.Margin }

// Offset returns the pixel offset of column or row i.
func (l Layout) Offset(i int) int { return l.Margin + i*l.Pitch() }

// CanvasSize returns the pixel size of a canvas holding w*h cells with a
// margin on every side.
func (l Layout) CanvasSize(w, h int) (int, int) {
	return l.Offset(w), l.Offset(h)
}

// CellRect returns the pixel rectangle covered by cell (x, y).
func (l Layout) CellRect(x, y int) image.Rectangle {
	px, py := l.Offset(x), l.Offset(y)
	return image.Rect(px, py, px+l.CellSize, py+l.CellSize)
}
