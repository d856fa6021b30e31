package life

import (
	"testing"

	"life-canvas/pkg/core"
)

func mustParse(t *testing.T, text string) *core.Grid {
	t.Helper()
	g, err := core.ParsePattern(text)
	if err != nil {
		t.Fatalf("ParsePattern: %v", err)
	}
	return g
}

func TestRule(t *testing.T) {
	for n := 0; n <= 8; n++ {
		if got, want := Rule(true, n), n == 2 || n == 3; got != want {
			t.Errorf("alive with %d neighbours: got %v, want %v", n, got, want)
		}
		if got, want := Rule(false, n), n == 3; got != want {
			t.Errorf("dead with %d neighbours: got %v, want %v", n, got, want)
		}
	}
}

func TestNeighborsClipAtEdges(t *testing.T) {
	full := core.NewGrid(3, 3)
	for i := range full.Cells() {
		full.Cells()[i] = 1
	}
	tests := []struct {
		x, y int
		want int
	}{
		{0, 0, 3}, {2, 0, 3}, {0, 2, 3}, {2, 2, 3},
		{1, 0, 5}, {0, 1, 5}, {2, 1, 5}, {1, 2, 5},
		{1, 1, 8},
	}
	for _, tt := range tests {
		if got := Neighbors(full, tt.x, tt.y); got != tt.want {
			t.Errorf("Neighbors(%d,%d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}

	next := Next(full)
	want := "O.O\n...\nO.O\n"
	if got := next.String(); got != want {
		t.Fatalf("full 3x3 next generation:\n%s\nwant\n%s", got, want)
	}
}

func TestLoneCellDies(t *testing.T) {
	g := mustParse(t, "...\n.O.\n...")
	if got := Next(g).Population(); got != 0 {
		t.Fatalf("population after one step = %d, want 0", got)
	}
}

func TestBlinkerOscillation(t *testing.T) {
	horizontal := mustParse(t, "...\nOOO\n...")
	vertical := mustParse(t, ".O.\n.O.\n.O.")

	step1 := Next(horizontal)
	if !step1.Equal(vertical) {
		t.Fatalf("after first step got\n%s\nwant\n%s", step1, vertical)
	}
	step2 := Next(step1)
	if !step2.Equal(horizontal) {
		t.Fatalf("after second step got\n%s\nwant\n%s", step2, horizontal)
	}
}

func TestBlinkerOscillationLargerBoard(t *testing.T) {
	g := core.NewGrid(5, 5)
	g.Set(2, 1, true)
	g.Set(2, 2, true)
	g.Set(2, 3, true)

	g = Next(g)
	expects := map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if want := expects[[2]int{x, y}]; g.Alive(x, y) != want {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, g.Alive(x, y), want)
			}
		}
	}
}

func TestGliderTranslatesDiagonally(t *testing.T) {
	glider := mustParse(t, ".O.\n..O\nOOO")
	start := core.NewGrid(12, 12)
	start.Stamp(glider, 1, 1)
	want := core.NewGrid(12, 12)
	want.Stamp(glider, 2, 2)

	got := Advance(start, 4)
	if !got.Equal(want) {
		t.Fatalf("after 4 generations got\n%s\nwant\n%s", got, want)
	}

	far := core.NewGrid(12, 12)
	far.Stamp(glider, 5, 5)
	if got := Advance(start, 16); !got.Equal(far) {
		t.Fatalf("after 16 generations got\n%s\nwant\n%s", got, far)
	}
}

func TestBlockAtCornerIsStable(t *testing.T) {
	g := mustParse(t, "OO.\nOO.\n...")
	if got := Next(g); !got.Equal(g) {
		t.Fatalf("block changed:\n%s", got)
	}
}

func TestNextIsPure(t *testing.T) {
	g := core.NewGrid(16, 16)
	core.Randomize(g, 7, 0.4)
	before := g.Clone()

	a := Next(g)
	b := Next(g)
	if !g.Equal(before) {
		t.Fatal("Next mutated its input")
	}
	if !a.Equal(b) {
		t.Fatal("Next returned different grids for the same input")
	}
	if a == g {
		t.Fatal("Next returned its input")
	}
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			alive := g.Alive(x, y)
			if NextCell(g, x, y, alive) != NextCell(g, x, y, alive) {
				t.Fatalf("NextCell(%d,%d) not deterministic", x, y)
			}
			if NextCell(g, x, y, alive) != a.Alive(x, y) {
				t.Fatalf("Next and NextCell disagree at (%d,%d)", x, y)
			}
		}
	}
}
