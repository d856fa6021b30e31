package stats

import (
	"context"
	"testing"

	"life-canvas/pkg/core"
)

func parse(t *testing.T, s string) *core.Grid {
	t.Helper()
	g, err := core.ParsePattern(s)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestSettle(t *testing.T) {
	tests := []struct {
		name    string
		grid    string
		outcome string
		gen     int
	}{
		{name: "lone cell", grid: "...\n.O.\n...", outcome: "extinct", gen: 1},
		{name: "block", grid: "OO\nOO", outcome: "still life", gen: 1},
		{name: "blinker", grid: ".....\n.....\n.OOO.\n.....\n.....", outcome: "oscillating p2", gen: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Settle(context.Background(), parse(t, tt.grid), 100, 4)
			if err != nil {
				t.Fatal(err)
			}
			if r.Outcome() != tt.outcome || r.Generation != tt.gen {
				t.Fatalf("result %+v (%s), want %s at %d", r, r.Outcome(), tt.outcome, tt.gen)
			}
		})
	}
}

func TestSettleGenerationLimit(t *testing.T) {
	g := core.NewGrid(40, 40)
	g.Stamp(parse(t, ".O.\n..O\nOOO"), 0, 0)
	r, err := Settle(context.Background(), g, 10, 4)
	if err != nil {
		t.Fatal(err)
	}
	if r.Settled || r.Outcome() != "running" || r.Generation != 10 || r.Population != 5 {
		t.Fatalf("result %+v, want unsettled glider at generation 10", r)
	}
}

func TestSettleCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Settle(ctx, core.NewGrid(4, 4), 10, 4); err == nil {
		t.Fatal("cancelled context ignored")
	}
}
