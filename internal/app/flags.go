package app

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/pkg/errors"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	Surface string  `json:"surface"`
	Pattern string  `json:"pattern"`
	Seed    int64   `json:"seed"`
	Density float64 `json:"density"`
	Frames  int     `json:"frames"`
	Out     string  `json:"out"`

	// File is the JSON file the other fields were loaded from, if any.
	File string `json:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 40, Height: 30, Surface: "window", Seed: 42, Density: 0.25}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.StringVar(&c.Surface, "surface", c.Surface, "surface to draw on: window, png or term")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "plaintext pattern file, centred on the grid (default random fill)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random fill")
	fs.Float64Var(&c.Density, "density", c.Density, "alive probability for the random fill")
	fs.IntVar(&c.Frames, "frames", c.Frames, "stop after this many ticks on headless surfaces (0 runs until interrupted)")
	fs.StringVar(&c.Out, "out", c.Out, "directory for png frames")
	fs.StringVar(&c.File, "config", c.File, "JSON config file; flags given on the command line take precedence")
}

// LoadFile overlays the JSON file at path onto c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to read file: %s", path)
	}
	if err = json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to unmarshal data from file: %s", path)
	}
	return nil
}

// Validate rejects configurations the engine cannot run.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("grid size %dx%d must be positive", c.Width, c.Height)
	case c.Density < 0 || c.Density > 1:
		return errors.Errorf("density %v must be within [0, 1]", c.Density)
	case c.Frames < 0:
		return errors.Errorf("frames %d must not be negative", c.Frames)
	case c.Surface == "":
		return errors.New("no surface selected")
	}
	return nil
}

// SurfaceOptions returns the provider options derived from c.
func (c *Config) SurfaceOptions() map[string]string {
	return map[string]string{"dir": c.Out}
}

// ParseArgs binds a fresh Config to fs and parses args. When -config names a
// file, it is loaded and args are parsed again so explicit flags win.
func ParseArgs(fs *flag.FlagSet, args []string) (*Config, error) {
	c := NewConfig()
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if c.File != "" {
		if err := c.LoadFile(c.File); err != nil {
			return nil, err
		}
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return c, nil
}
