package render

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"
	"github.com/pkg/errors"
)

// ImageSurface rasterises frames off-screen. When a directory is set, every
// presented frame is written there as frame-NNNNN.png.
type ImageSurface struct {
	dc     *gg.Context
	layout Layout
	dir    string
	frames int
}

// NewImageSurface allocates a canvas sized for w*h cells.
func NewImageSurface(w, h int, layout Layout, dir string) (*ImageSurface, error) {
	pw, ph := layout.CanvasSize(w, h)
	if pw <= 0 || ph <= 0 {
		return nil, errors.Wrapf(ErrContextUnavailable, "canvas %dx%d", pw, ph)
	}
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrapf(ErrContextUnavailable, "create frame dir %s: %v", dir, err)
		}
	}
	s := &ImageSurface{dc: gg.NewContext(pw, ph), layout: layout, dir: dir}
	s.Clear()
	return s, nil
}

// Clear fills the canvas with the background colour.
func (s *ImageSurface) Clear() {
	s.dc.ClearWithColor(gg.FromColor(Background))
}

// DrawCell fills the rectangle of cell (x, y).
func (s *ImageSurface) DrawCell(x, y int) {
	r := s.layout.CellRect(x, y)
	s.dc.SetColor(CellColor)
	s.dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	_ = s.dc.Fill()
}

// Present saves the frame when a directory is configured.
func (s *ImageSurface) Present() error {
	s.frames++
	if s.dir == "" {
		return nil
	}
	path := filepath.Join(s.dir, fmt.Sprintf("frame-%05d.png", s.frames))
	return errors.Wrapf(s.dc.SavePNG(path), "save frame %s", path)
}

// Frames returns how many frames have been presented.
func (s *ImageSurface) Frames() int { return s.frames }

// Image returns the current canvas.
func (s *ImageSurface) Image() image.Image { return s.dc.Image() }

// EncodePNG writes the current canvas to w.
func (s *ImageSurface) EncodePNG(w io.Writer) error {
	return errors.Wrap(s.dc.EncodePNG(w), "encode png")
}

// Close releases the drawing context.
func (s *ImageSurface) Close() error { return s.dc.Close() }

func init() {
	Register("png", func(w, h int, opts map[string]string) (Surface, error) {
		return NewImageSurface(w, h, DefaultLayout(), opts["dir"])
	})
}
