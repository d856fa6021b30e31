// Package stats tracks population and repetition over a run of generations.
package stats

import (
	"crypto/md5"
	"fmt"

	"life-canvas/pkg/core"
)

// Hash returns an MD5 digest of the grid cells.
func Hash(g *core.Grid) string {
	return fmt.Sprintf("%x", md5.Sum(g.Cells()))
}

// Sample describes one observed generation.
type Sample struct {
	Generation int
	Population int
	// Period is the length of the cycle the grid has entered: 1 for a still
	// life, 2 for a blinker, and so on. Zero when no repeat was found within
	// the tracked window.
	Period int
}

// Stagnant reports whether the generation repeats an earlier one.
func (s Sample) Stagnant() bool { return s.Period > 0 }

// Extinct reports whether no cell is alive.
func (s Sample) Extinct() bool { return s.Population == 0 }

// Tracker keeps the hashes of recent generations to detect cycles, plus a
// moving average of the population.
type Tracker struct {
	window  int
	history []string

	Generations       int
	PeakPopulation    int
	AveragePopulation float64
}

// NewTracker keeps the last window generations; cycles longer than window
// go undetected.
func NewTracker(window int) *Tracker {
	if window <= 0 {
		window = 5
	}
	return &Tracker{window: window}
}

// Observe records g as the next generation.
func (t *Tracker) Observe(g *core.Grid) Sample {
	pop := g.Population()
	h := Hash(g)

	period := 0
	for i := len(t.history) - 1; i >= 0; i-- {
		if t.history[i] == h {
			period = len(t.history) - i
			break
		}
	}

	t.history = append(t.history, h)
	if len(t.history) > t.window {
		t.history = t.history[1:]
	}

	if t.Generations == 0 {
		t.AveragePopulation = float64(pop)
	} else {
		t.AveragePopulation = t.AveragePopulation*0.9 + float64(pop)*0.1
	}
	t.PeakPopulation = max(t.PeakPopulation, pop)
	s := Sample{Generation: t.Generations, Population: pop, Period: period}
	t.Generations++
	return s
}

// Reset forgets all observed generations.
func (t *Tracker) Reset() {
	t.history = t.history[:0]
	t.Generations = 0
	t.PeakPopulation = 0
	t.AveragePopulation = 0
}
