package sand

import (
	"flag"
	"strconv"
)

// Config controls the sand world dimensions and scheduling knobs.
type Config struct {
	Width  int
	Height int

	// Seed 0 leaves the world unseeded.
	Seed int64

	// Scene names a preset applied on construction and reset.
	Scene string

	// InteractionStride thins the interaction pass to one cell in N along
	// each anti-diagonal.
	InteractionStride int

	// Random overrides the source built from Seed.
	Random Random
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:             200,
		Height:            150,
		Scene:             "empty",
		InteractionStride: 3,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["scene"]; ok {
		if _, known := scenes[v]; known {
			c.Scene = v
		}
	}
	if v, ok := cfg["interaction_stride"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.InteractionStride = parsed
		}
	}
	return c
}

// ToMap is the inverse of FromMap for the string-keyed options.
func (c Config) ToMap() map[string]string {
	return map[string]string{
		"w":                  strconv.Itoa(c.Width),
		"h":                  strconv.Itoa(c.Height),
		"seed":               strconv.FormatInt(c.Seed, 10),
		"scene":              c.Scene,
		"interaction_stride": strconv.Itoa(c.InteractionStride),
	}
}

// Bind attaches the world options to fs.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 = unseeded)")
	fs.StringVar(&c.Scene, "scene", c.Scene, "preset scene to load")
	fs.IntVar(&c.InteractionStride, "interaction-stride", c.InteractionStride, "evaluate reactions on one cell in N")
}
