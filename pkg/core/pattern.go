package core

import (
	"strings"

	"github.com/pkg/errors"
)

// ParsePattern reads a plaintext pattern. '.' is dead; 'O', '*' and '1' are
// alive; lines starting with '!' are comments. Shorter lines are padded with
// dead cells to the width of the longest line.
func ParsePattern(text string) (*Grid, error) {
	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if strings.HasPrefix(line, "!") {
			continue
		}
		lines = append(lines, strings.TrimRight(line, " \t"))
	}
	// Drop trailing blank lines, keep interior ones as dead rows.
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}

	w := 0
	for _, line := range lines {
		w = max(w, len(line))
	}
	if w == 0 {
		return nil, ErrEmptyGrid
	}

	g := NewGrid(w, len(lines))
	for y, line := range lines {
		for x, r := range line {
			switch r {
			case '.', '0', ' ':
			case 'O', 'o', '*', '1':
				g.Set(x, y, true)
			default:
				return nil, errors.Errorf("core: bad pattern character %q at line %d col %d", r, y+1, x+1)
			}
		}
	}
	return g, nil
}

// String renders the grid in the plaintext pattern format.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.W + 1) * g.H)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.data[y*g.W+x] != 0 {
				b.WriteByte('O')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Stamp copies the alive cells of pat onto g with its top-left corner at
// (ox, oy). Cells falling outside g are dropped.
func (g *Grid) Stamp(pat *Grid, ox, oy int) {
	pat.Each(func(x, y int) {
		g.Set(ox+x, oy+y, true)
	})
}

// StampCentered stamps pat in the middle of g.
func (g *Grid) StampCentered(pat *Grid) {
	g.Stamp(pat, (g.W-pat.W)/2, (g.H-pat.H)/2)
}
