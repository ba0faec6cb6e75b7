package render

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

var (
	// ErrInvalidColor is returned for colors that are not #RGB or #RRGGBB.
	ErrInvalidColor = errors.New("invalid color")
	// ErrInvalidStyle is returned when grid lines would cover the whole cell.
	ErrInvalidStyle = errors.New("invalid style")
)

// Style configures how the board is painted. Zero fields take the defaults
// returned by DefaultStyle.
type Style struct {
	Color      string  `yaml:"color"`
	Background string  `yaml:"background"`
	Fill       string  `yaml:"fill"`
	LineWidth  float64 `yaml:"lineWidth"`
	CellLength float64 `yaml:"cellLength"`
}

// DefaultStyle returns the stock grid look: light grey lines on white with
// black live cells.
func DefaultStyle() Style {
	return Style{
		Color:      "#BFBFBF",
		Background: "#FFFFFF",
		Fill:       "#000000",
		LineWidth:  1,
		CellLength: 10,
	}
}

// WithDefaults returns s with every unset field replaced by its default.
func (s Style) WithDefaults() Style {
	def := DefaultStyle()
	if s.Color == "" {
		s.Color = def.Color
	}
	if s.Background == "" {
		s.Background = def.Background
	}
	if s.Fill == "" {
		s.Fill = def.Fill
	}
	if s.LineWidth <= 0 {
		s.LineWidth = def.LineWidth
	}
	if s.CellLength <= 0 {
		s.CellLength = def.CellLength
	}
	return s
}

type palette struct {
	line       color.RGBA
	background color.RGBA
	fill       color.RGBA
}

// palette resolves the colors of s and checks that a cell keeps a visible
// interior inside its grid lines.
func (s Style) palette() (palette, error) {
	if 2*s.LineWidth >= s.CellLength {
		return palette{}, fmt.Errorf("%w: lineWidth %v leaves no room inside cellLength %v",
			ErrInvalidStyle, s.LineWidth, s.CellLength)
	}
	var p palette
	var err error
	if p.line, err = ParseHexColor(s.Color); err != nil {
		return palette{}, fmt.Errorf("style color: %w", err)
	}
	if p.background, err = ParseHexColor(s.Background); err != nil {
		return palette{}, fmt.Errorf("style background: %w", err)
	}
	if p.fill, err = ParseHexColor(s.Fill); err != nil {
		return palette{}, fmt.Errorf("style fill: %w", err)
	}
	return p, nil
}

// Validate reports whether every color of s parses and cells stay visible.
func (s Style) Validate() error {
	_, err := s.WithDefaults().palette()
	return err
}

// ParseHexColor parses "#RGB" or "#RRGGBB" into an opaque color.
func ParseHexColor(s string) (color.RGBA, error) {
	hex, ok := strings.CutPrefix(strings.TrimSpace(s), "#")
	if !ok {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
