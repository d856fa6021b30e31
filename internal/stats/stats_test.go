package stats

import (
	"testing"

	"life-canvas/pkg/core"
	"life-canvas/pkg/life"
)

func TestPeriodDetection(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		period  int
	}{
		{name: "block", pattern: "....\n.OO.\n.OO.\n....", period: 1},
		{name: "blinker", pattern: ".....\n.....\n.OOO.\n.....\n.....", period: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := core.ParsePattern(tt.pattern)
			if err != nil {
				t.Fatal(err)
			}
			tr := NewTracker(5)
			var s Sample
			for i := 0; i < 4; i++ {
				s = tr.Observe(g)
				g = life.Next(g)
			}
			if s.Period != tt.period || !s.Stagnant() {
				t.Fatalf("period %d, want %d", s.Period, tt.period)
			}
		})
	}
}

func TestFirstSampleNeverStagnant(t *testing.T) {
	tr := NewTracker(3)
	s := tr.Observe(core.NewGrid(4, 4))
	if s.Stagnant() {
		t.Fatal("first observation reported a cycle")
	}
	if !s.Extinct() || s.Generation != 0 {
		t.Fatalf("sample = %+v", s)
	}
}

func TestGliderNotStagnantOnOpenBoard(t *testing.T) {
	g := core.NewGrid(20, 20)
	glider, _ := core.ParsePattern(".O.\n..O\nOOO")
	g.Stamp(glider, 0, 0)
	tr := NewTracker(5)
	for i := 0; i < 12; i++ {
		if s := tr.Observe(g); s.Stagnant() {
			t.Fatalf("glider reported stagnant at generation %d", s.Generation)
		}
		g = life.Next(g)
	}
	if avg := tr.AveragePopulation; tr.PeakPopulation != 5 || avg < 4.999 || avg > 5.001 {
		t.Fatalf("peak=%d avg=%v, want 5 and 5", tr.PeakPopulation, tr.AveragePopulation)
	}
}

func TestReset(t *testing.T) {
	tr := NewTracker(2)
	g := core.NewGrid(2, 2)
	tr.Observe(g)
	tr.Reset()
	if s := tr.Observe(g); s.Stagnant() || s.Generation != 0 {
		t.Fatalf("after Reset sample = %+v", s)
	}
}

func TestHashDistinguishesGrids(t *testing.T) {
	a, b := core.NewGrid(3, 3), core.NewGrid(3, 3)
	if Hash(a) != Hash(b) {
		t.Fatal("equal grids hash differently")
	}
	b.Set(1, 1, true)
	if Hash(a) == Hash(b) {
		t.Fatal("different grids share a hash")
	}
}
