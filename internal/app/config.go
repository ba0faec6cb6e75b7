package app

import (
	"errors"
	"fmt"
	"os"
	"time"

	"lifeview/internal/render"
	"lifeview/pkg/sims/life"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every error returned from Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the settings shared by the windowed and headless runners.
type Config struct {
	Rows         int           `yaml:"rows"`
	Cols         int           `yaml:"cols"`
	TickInterval time.Duration `yaml:"tickInterval"`
	TPS          int           `yaml:"tps"`
	Seed         int64         `yaml:"seed"`
	Density      float64       `yaml:"density"`
	Pattern      string        `yaml:"pattern"`
	Edit         bool          `yaml:"edit"`
	Width        int           `yaml:"width"`
	Height       int           `yaml:"height"`
	HUDWidth     int           `yaml:"hudWidth"`
	Style        render.Style  `yaml:"style"`

	// Headless only.
	Generations int    `yaml:"generations"`
	Output      string `yaml:"output"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Rows:         250,
		Cols:         250,
		TickInterval: 50 * time.Millisecond,
		TPS:          60,
		Seed:         42,
		Density:      0.2,
		Width:        1280,
		Height:       800,
		HUDWidth:     220,
		Style:        render.DefaultStyle(),
		Generations:  100,
		Output:       "life.png",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "board rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "board columns")
	fs.DurationVar(&c.TickInterval, "interval", c.TickInterval, "minimum time between generations")
	fs.IntVar(&c.TPS, "tps", c.TPS, "update rate of the input and timer loop")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random board")
	fs.Float64Var(&c.Density, "density", c.Density, "fraction of live cells on a random board")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "named pattern placed at the center instead of a random board")
	fs.BoolVar(&c.Edit, "edit", c.Edit, "tapping a cell makes it alive")
	fs.IntVar(&c.Width, "width", c.Width, "window or image width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window or image height in pixels")
	fs.IntVar(&c.HUDWidth, "hud-width", c.HUDWidth, "status panel width, 0 hides it")
	fs.StringVar(&c.Style.Color, "grid-color", c.Style.Color, "grid line color")
	fs.StringVar(&c.Style.Background, "background", c.Style.Background, "dead cell color")
	fs.StringVar(&c.Style.Fill, "fill", c.Style.Fill, "live cell color")
	fs.Float64Var(&c.Style.LineWidth, "line-width", c.Style.LineWidth, "grid line width")
	fs.Float64Var(&c.Style.CellLength, "cell-length", c.Style.CellLength, "cell side length in pixels")
	fs.IntVar(&c.Generations, "generations", c.Generations, "generations to run headless")
	fs.StringVar(&c.Output, "output", c.Output, "PNG written by the headless runner")
}

// LoadFile overlays the YAML document at path onto c. Keys absent from the
// file keep their current values.
func (c *Config) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	return nil
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	switch {
	case c.Rows <= 0 || c.Cols <= 0:
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidConfig, c.Rows, c.Cols)
	case c.Density < 0 || c.Density > 1:
		return fmt.Errorf("%w: density %v outside [0, 1]", ErrInvalidConfig, c.Density)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps must be positive", ErrInvalidConfig)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: size must be positive, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.Generations < 0:
		return fmt.Errorf("%w: generations must not be negative", ErrInvalidConfig)
	}
	if c.Pattern != "" {
		if _, err := life.PatternByName(c.Pattern); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	if err := c.Style.Validate(); err != nil {
		return fmt.Errorf("%w: style: %w", ErrInvalidConfig, err)
	}
	return nil
}

// SeedBoard fills game with the configured starting board: the named pattern at
// the center, or a random board otherwise.
func (c *Config) SeedBoard(game *life.Life) error {
	if c.Pattern == "" {
		game.Randomize(c.Seed, c.Density)
		return nil
	}
	p, err := life.PatternByName(c.Pattern)
	if err != nil {
		return err
	}
	game.PlaceCentered(p)
	return nil
}
