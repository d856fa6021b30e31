package stats

import (
	"context"
	"fmt"

	"life-canvas/pkg/core"
	"life-canvas/pkg/life"
)

// Result summarises how a grid evolved until it settled or ran out of
// generations.
type Result struct {
	// Generation is the first generation found extinct or repeating, or the
	// generation limit when neither happened.
	Generation int
	Period     int
	Population int
	Peak       int
	Settled    bool
}

// Outcome describes the end state in a few words.
func (r Result) Outcome() string {
	switch {
	case !r.Settled:
		return "running"
	case r.Population == 0:
		return "extinct"
	case r.Period == 1:
		return "still life"
	default:
		return fmt.Sprintf("oscillating p%d", r.Period)
	}
}

// Settle steps g until it dies out, repeats a generation within window, or
// maxGens generations have been observed. It stops early with ctx's error.
func Settle(ctx context.Context, g *core.Grid, maxGens, window int) (Result, error) {
	tr := NewTracker(window)
	var s Sample
	for i := 0; i <= maxGens; i++ {
		if i%64 == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		s = tr.Observe(g)
		if s.Extinct() || s.Stagnant() {
			return Result{
				Generation: s.Generation,
				Period:     s.Period,
				Population: s.Population,
				Peak:       tr.PeakPopulation,
				Settled:    true,
			}, nil
		}
		if i < maxGens {
			g = life.Next(g)
		}
	}
	return Result{Generation: s.Generation, Population: s.Population, Peak: tr.PeakPopulation}, nil
}
