// Package life implements Conway's Game of Life on a bounded grid.
//
// The neighbourhood is the Moore neighbourhood clipped at the grid edges:
// cells beyond the border do not exist and contribute nothing.
package life

import "life-canvas/pkg/core"

// Rule applies B3/S23: an alive cell survives with 2 or 3 neighbours, a dead
// cell is born with exactly 3.
func Rule(alive bool, neighbors int) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// Neighbors counts alive Moore neighbours of (x, y) without wrapping.
func Neighbors(g *core.Grid, x, y int) int {
	minX, maxX := max(0, x-1), min(g.W-1, x+1)
	minY, maxY := max(0, y-1), min(g.H-1, y+1)
	cells := g.Cells()

	n := 0
	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			if cells[ny*g.W+nx] != 0 {
				n++
			}
		}
	}
	return n
}

// NextCell returns the state of (x, y) in the generation after g.
func NextCell(g *core.Grid, x, y int, alive bool) bool {
	return Rule(alive, Neighbors(g, x, y))
}

// Next computes the following generation into a new grid. Every cell is
// evaluated against g, which is left untouched.
func Next(g *core.Grid) *core.Grid {
	next := core.NewGrid(g.W, g.H)
	cur, out := g.Cells(), next.Cells()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			idx := y*g.W + x
			if NextCell(g, x, y, cur[idx] != 0) {
				out[idx] = 1
			}
		}
	}
	return next
}

// Advance applies Next n times.
func Advance(g *core.Grid, n int) *core.Grid {
	for i := 0; i < n; i++ {
		g = Next(g)
	}
	return g
}
