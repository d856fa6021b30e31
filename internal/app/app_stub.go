//go:build !ebiten

package app

import (
	"github.com/pkg/errors"

	"life-canvas/internal/engine"
	"life-canvas/internal/render"
)

// Run always reports that the GUI build tag is missing.
func Run(*engine.Engine, render.Surface, string) error {
	return errors.Wrap(render.ErrContextUnavailable, "app.Run requires building with the 'ebiten' tag")
}
