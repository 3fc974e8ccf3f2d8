// Package config provides the YAML game constants for snake-pixels.
// The constants are embedded into the binary and validated at startup.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/snake-pixels/internal/core"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid snake config")

// SnakeConfig contains all constants for the snake game.
type SnakeConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Timing  TimingConfig  `yaml:"timing"`
	Start   StartConfig   `yaml:"start"`
	Palette PaletteConfig `yaml:"palette"`
}

// GridConfig is the board size in cells. One cell is one logical pixel.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig holds the fixed simulation intervals.
type TimingConfig struct {
	TickMs int `yaml:"tick_ms"` // Snake moves once per tick
	FoodMs int `yaml:"food_ms"` // Food spawn attempt interval
}

// Tick returns the movement interval.
func (t TimingConfig) Tick() time.Duration {
	return time.Duration(t.TickMs) * time.Millisecond
}

// Food returns the food spawn interval.
func (t TimingConfig) Food() time.Duration {
	return time.Duration(t.FoodMs) * time.Millisecond
}

// Point is a YAML-friendly grid position.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Vec2 converts the point to a core vector.
func (p Point) Vec2() core.Vec2 {
	return core.Vec2{X: p.X, Y: p.Y}
}

// StartConfig is the initial snake layout.
type StartConfig struct {
	Head      Point   `yaml:"head"`
	Tail      []Point `yaml:"tail"`
	Direction string  `yaml:"direction"` // right, left, up or down
}

// PaletteConfig holds the four fixed colours as "#rrggbb".
type PaletteConfig struct {
	Background string `yaml:"background"`
	Head       string `yaml:"head"`
	Tail       string `yaml:"tail"`
	Food       string `yaml:"food"`
}

// Palette is the parsed form of PaletteConfig.
type Palette struct {
	Background core.Color
	Head       core.Color
	Tail       core.Color
	Food       core.Color
}

// Parse converts the hex strings into colours.
func (p PaletteConfig) Parse() (Palette, error) {
	var out Palette
	entries := []struct {
		name string
		hex  string
		dst  *core.Color
	}{
		{"background", p.Background, &out.Background},
		{"head", p.Head, &out.Head},
		{"tail", p.Tail, &out.Tail},
		{"food", p.Food, &out.Food},
	}
	for _, e := range entries {
		c, err := core.ParseHexColor(e.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("%w: palette %s: %w", ErrInvalidConfig, e.name, err)
		}
		*e.dst = c
	}
	return out, nil
}

// Validate checks that the config describes a playable board.
func (c SnakeConfig) Validate() error {
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("%w: grid %dx%d must be positive", ErrInvalidConfig, c.Grid.Width, c.Grid.Height)
	}
	if c.Timing.TickMs <= 0 || c.Timing.FoodMs <= 0 {
		return fmt.Errorf("%w: tick_ms and food_ms must be positive", ErrInvalidConfig)
	}
	if _, ok := core.ParseDirection(c.Start.Direction); !ok {
		return fmt.Errorf("%w: unknown start direction %q", ErrInvalidConfig, c.Start.Direction)
	}

	head := c.Start.Head.Vec2()
	if !core.InBounds(head, c.Grid.Width, c.Grid.Height) {
		return fmt.Errorf("%w: head %v outside grid", ErrInvalidConfig, head)
	}
	seen := map[core.Vec2]bool{head: true}
	for i, p := range c.Start.Tail {
		v := p.Vec2()
		if !core.InBounds(v, c.Grid.Width, c.Grid.Height) {
			return fmt.Errorf("%w: tail[%d] %v outside grid", ErrInvalidConfig, i, v)
		}
		if seen[v] {
			return fmt.Errorf("%w: tail[%d] %v overlaps the snake", ErrInvalidConfig, i, v)
		}
		seen[v] = true
	}
	if len(c.Start.Tail)+1 > c.Grid.Width*c.Grid.Height {
		return fmt.Errorf("%w: snake does not fit on the grid", ErrInvalidConfig)
	}

	if _, err := c.Palette.Parse(); err != nil {
		return err
	}
	return nil
}
