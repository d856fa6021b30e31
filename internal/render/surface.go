// Package render holds the drawing collaborators of the engine: surfaces,
// the cell layout and the cell shader.
package render

import (
	"sort"

	"github.com/pkg/errors"
)

var (
	// ErrContextUnavailable reports that a drawing context could not be acquired.
	ErrContextUnavailable = errors.New("render: drawing context unavailable")
	// ErrShaderSetup reports that the cell shader failed to compile.
	ErrShaderSetup = errors.New("render: shader setup failed")
)

// Surface is a drawable target addressed in grid coordinates.
type Surface interface {
	// Clear paints the whole surface with the background colour.
	Clear()
	// DrawCell paints the alive cell at grid column x, row y.
	DrawCell(x, y int)
}

// Presenter is implemented by surfaces that need an explicit flush once a
// frame has been painted.
type Presenter interface {
	Present() error
}

// Provider acquires a surface for a grid of w*h cells. The options map
// carries provider-specific settings such as an output directory.
type Provider func(w, h int, opts map[string]string) (Surface, error)

var providers = map[string]Provider{}

// Register adds a surface provider under the provided name.
func Register(name string, p Provider) {
	if name == "" || p == nil {
		return
	}
	providers[name] = p
}

// Names lists the registered providers in sorted order.
func Names() []string {
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Open acquires a surface from the named provider.
func Open(name string, w, h int, opts map[string]string) (Surface, error) {
	p, ok := providers[name]
	if !ok {
		return nil, errors.Errorf("render: unknown surface %q (have %v)", name, Names())
	}
	s, err := p(w, h, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s surface", name)
	}
	return s, nil
}
