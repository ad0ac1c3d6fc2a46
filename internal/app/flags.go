package app

import (
	"flag"
	"fmt"

	"sandfall/internal/sims/sand"
)

// Config represents the command-line parameters for the front ends.
type Config struct {
	World sand.Config

	Scale    int
	TPS      int
	Radius   int
	Material string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		World:    sand.DefaultConfig(),
		Scale:    4,
		TPS:      60,
		Radius:   3,
		Material: "sand",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	c.World.Bind(fs)
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Radius, "radius", c.Radius, "initial brush radius")
	fs.StringVar(&c.Material, "material", c.Material, "initially selected material")
}

// Tools builds the initial tool state from the flags.
func (c *Config) Tools() (*Tools, error) {
	id, ok := sand.ByName(c.Material)
	if !ok {
		return nil, fmt.Errorf("unknown material %q", c.Material)
	}
	t := NewTools()
	t.Material = id
	t.Radius = 0
	t.Grow(c.Radius)
	return t, nil
}
