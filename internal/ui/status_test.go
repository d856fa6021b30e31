package ui

import (
	"testing"

	"life-canvas/internal/engine"
)

func TestStatus(t *testing.T) {
	got := Status(engine.Snapshot{Generation: 12, Population: 5, State: engine.Running})
	if want := "gen 12  pop 5  running  [space]"; got != want {
		t.Fatalf("Status = %q, want %q", got, want)
	}
	if got := Status(engine.Snapshot{}); got != "gen 0  pop 0  stopped  [space]" {
		t.Fatalf("zero Status = %q", got)
	}
}
