package render

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
)

const (
	termBlock = "██"
	termEmpty = "  "

	// Cursor home followed by erase display.
	termClear = "\x1b[H\x1b[2J"
)

// TermSurface paints cells as double-width blocks on a terminal.
type TermSurface struct {
	w, h  int
	cells []bool
	out   io.Writer
	// Erase the screen before each frame.
	ansi bool
}

// NewTermSurface returns a surface writing frames to out. When ansi is set
// each frame starts by clearing the screen.
func NewTermSurface(w, h int, out io.Writer, ansi bool) *TermSurface {
	return &TermSurface{w: w, h: h, cells: make([]bool, w*h), out: out, ansi: ansi}
}

// Clear marks every cell dead.
func (s *TermSurface) Clear() {
	for i := range s.cells {
		s.cells[i] = false
	}
}

// DrawCell marks a cell alive; out of range cells are ignored.
func (s *TermSurface) DrawCell(x, y int) {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return
	}
	s.cells[y*s.w+x] = true
}

// Present writes the buffered frame.
func (s *TermSurface) Present() error {
	bw := bufio.NewWriter(s.out)
	if s.ansi {
		bw.WriteString(termClear)
	}
	for y := 0; y < s.h; y++ {
		for x := 0; x < s.w; x++ {
			if s.cells[y*s.w+x] {
				bw.WriteString(termBlock)
			} else {
				bw.WriteString(termEmpty)
			}
		}
		bw.WriteByte('\n')
	}
	return errors.Wrap(bw.Flush(), "write terminal frame")
}

func init() {
	Register("term", func(w, h int, opts map[string]string) (Surface, error) {
		return NewTermSurface(w, h, os.Stdout, opts["plain"] == ""), nil
	})
}
