//go:build !ebiten

package ui

import "life-canvas/internal/engine"

// Height is zero in headless builds.
const Height = 0

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(int) *HUD { return nil }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, engine.Snapshot) {}
