package core

import "github.com/pkg/errors"

var (
	// ErrEmptyGrid is returned when a grid is built from zero rows or columns.
	ErrEmptyGrid = errors.New("core: grid has no cells")
	// ErrRaggedRows is returned when rows of a grid differ in length.
	ErrRaggedRows = errors.New("core: rows differ in length")
)

// Grid stores a fixed-size 2D grid of binary cells in row-major order.
// Cells outside [0, W) × [0, H) do not exist; nothing wraps.
type Grid struct {
	W, H int
	data []uint8
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]uint8, w*h)}
}

// FromRows builds a grid from rows of 0/1 values. Any non-zero value is
// treated as alive.
func FromRows(rows [][]uint8) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	g := NewGrid(w, len(rows))
	for y, row := range rows {
		if len(row) != w {
			return nil, errors.Wrapf(ErrRaggedRows, "row %d has %d cells, want %d", y, len(row), w)
		}
		for x, v := range row {
			if v != 0 {
				g.data[y*w+x] = 1
			}
		}
	}
	return g, nil
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) names a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Alive returns the state of a cell. Out of bounds cells are dead.
func (g *Grid) Alive(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.data[y*g.W+x] != 0
}

// Set updates a cell; out of bounds writes are ignored.
func (g *Grid) Set(x, y int, alive bool) {
	if !g.InBounds(x, y) {
		return
	}
	var v uint8
	if alive {
		v = 1
	}
	g.data[y*g.W+x] = v
}

// Rows returns a copy of the grid as a slice of rows.
func (g *Grid) Rows() [][]uint8 {
	rows := make([][]uint8, g.H)
	for y := range rows {
		rows[y] = append([]uint8(nil), g.data[y*g.W:(y+1)*g.W]...)
	}
	return rows
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{W: g.W, H: g.H, data: append([]uint8(nil), g.data...)}
}

// Population counts alive cells.
func (g *Grid) Population() (count int) {
	for _, c := range g.data {
		if c != 0 {
			count++
		}
	}
	return
}

// Equal reports whether both grids have the same size and cells.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.W != o.W || g.H != o.H {
		return false
	}
	for i, c := range g.data {
		if c != o.data[i] {
			return false
		}
	}
	return true
}

// Clear fills the grid with dead cells.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Each calls fn for every alive cell in row-major order.
func (g *Grid) Each(fn func(x, y int)) {
	for i, c := range g.data {
		if c != 0 {
			fn(i%g.W, i/g.W)
		}
	}
}
