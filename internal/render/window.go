//go:build ebiten

package render

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// WindowSurface records painted cells from the engine goroutine and replays
// them onto the ebiten screen from Draw.
type WindowSurface struct {
	w, h   int
	layout Layout
	shader *ebiten.Shader

	mu    sync.Mutex
	cells [][2]int
	frame [][2]int
}

// NewWindowSurface compiles the cell shader and prepares a surface for w*h cells.
func NewWindowSurface(w, h int, layout Layout) (*WindowSurface, error) {
	shader, err := NewCellShader()
	if err != nil {
		return nil, err
	}
	return &WindowSurface{w: w, h: h, layout: layout, shader: shader}, nil
}

// Clear starts a new frame.
func (s *WindowSurface) Clear() {
	s.mu.Lock()
	s.cells = s.cells[:0]
	s.mu.Unlock()
}

// DrawCell queues a cell for the current frame.
func (s *WindowSurface) DrawCell(x, y int) {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return
	}
	s.mu.Lock()
	s.cells = append(s.cells, [2]int{x, y})
	s.mu.Unlock()
}

// Present publishes the queued cells as the frame shown by Draw.
func (s *WindowSurface) Present() error {
	s.mu.Lock()
	s.frame = append(s.frame[:0], s.cells...)
	s.mu.Unlock()
	return nil
}

// Size returns the canvas size in pixels.
func (s *WindowSurface) Size() (int, int) { return s.layout.CanvasSize(s.w, s.h) }

// Draw paints the last presented frame onto screen.
func (s *WindowSurface) Draw(screen *ebiten.Image) {
	screen.Fill(Background)

	s.mu.Lock()
	defer s.mu.Unlock()
	uniforms := map[string]any{"CellColor": cellColorUniform()}
	for _, c := range s.frame {
		op := &ebiten.DrawRectShaderOptions{Uniforms: uniforms}
		op.GeoM.Translate(float64(s.layout.Offset(c[0])), float64(s.layout.Offset(c[1])))
		screen.DrawRectShader(s.layout.CellSize, s.layout.CellSize, s.shader, op)
	}
}

func init() {
	Register("window", func(w, h int, opts map[string]string) (Surface, error) {
		return NewWindowSurface(w, h, DefaultLayout())
	})
}
