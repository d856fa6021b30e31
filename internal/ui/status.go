// Package ui draws the status strip shown under the grid in the window build.
package ui

import (
	"fmt"

	"life-canvas/internal/engine"
)

// Status formats the strip text for a snapshot.
func Status(s engine.Snapshot) string {
	return fmt.Sprintf("gen %d  pop %d  %s  [space]", s.Generation, s.Population, s.State)
}
