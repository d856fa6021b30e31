package app

import (
	"os"

	"github.com/pkg/errors"

	"life-canvas/pkg/core"
)

// InitialGrid builds the first generation: the pattern file centred on an
// empty grid, or a seeded random fill when no pattern is configured.
func InitialGrid(c *Config) (*core.Grid, error) {
	g := core.NewGrid(c.Width, c.Height)
	if c.Pattern == "" {
		core.Randomize(g, c.Seed, c.Density)
		return g, nil
	}

	data, err := os.ReadFile(c.Pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "read pattern %s", c.Pattern)
	}
	pat, err := core.ParsePattern(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "parse pattern %s", c.Pattern)
	}
	if pat.W > g.W || pat.H > g.H {
		return nil, errors.Errorf("pattern %s is %dx%d, larger than the %dx%d grid",
			c.Pattern, pat.W, pat.H, g.W, g.H)
	}
	g.StampCentered(pat)
	return g, nil
}
