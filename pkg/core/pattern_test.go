package core

import "testing"

func TestParsePattern(t *testing.T) {
	g, err := ParsePattern("!Name: Glider\n.O\n..O\nOOO\n")
	if err != nil {
		t.Fatalf("ParsePattern: %v", err)
	}
	if g.W != 3 || g.H != 3 {
		t.Fatalf("size = %dx%d, want 3x3", g.W, g.H)
	}
	want := ".O.\n..O\nOOO\n"
	if got := g.String(); got != want {
		t.Fatalf("got\n%s\nwant\n%s", got, want)
	}
}

func TestParsePatternErrors(t *testing.T) {
	if _, err := ParsePattern("!only a comment\n\n"); err == nil {
		t.Fatal("expected error for empty pattern")
	}
	if _, err := ParsePattern(".O\n.X\n"); err == nil {
		t.Fatal("expected error for unknown character")
	}
}

func TestStampCentered(t *testing.T) {
	pat, err := ParsePattern("OOO")
	if err != nil {
		t.Fatal(err)
	}
	g := NewGrid(5, 5)
	g.StampCentered(pat)
	want := ".....\n.....\n.OOO.\n.....\n.....\n"
	if got := g.String(); got != want {
		t.Fatalf("got\n%s\nwant\n%s", got, want)
	}
}

func TestStampClipsAtEdges(t *testing.T) {
	pat, _ := ParsePattern("OO\nOO")
	g := NewGrid(3, 3)
	g.Stamp(pat, 2, 2)
	if g.Population() != 1 || !g.Alive(2, 2) {
		t.Fatalf("stamp past the edge produced\n%s", g)
	}
}
