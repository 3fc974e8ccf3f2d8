package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in snake configuration.
// It mirrors defaults/snake.yaml and backs it up if the embed fails to parse.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:  15,
			Height: 15,
		},
		Timing: TimingConfig{
			TickMs: 400,
			FoodMs: 1500,
		},
		Start: StartConfig{
			Head: Point{X: 8, Y: 7},
			Tail: []Point{
				{X: 7, Y: 7},
				{X: 6, Y: 7},
			},
			Direction: "right",
		},
		Palette: PaletteConfig{
			Background: "#48B2E8",
			Head:       "#4E38E8",
			Tail:       "#5E48E8",
			Food:       "#9E28E8",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSnakeYAML
}
