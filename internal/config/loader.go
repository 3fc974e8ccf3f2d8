package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Load returns the embedded snake configuration, validated.
// If the embedded YAML cannot be decoded the hardcoded defaults are used.
func Load() (SnakeConfig, error) {
	cfg, err := Parse(defaultSnakeYAML)
	if err != nil {
		cfg = DefaultSnakeConfig() // Fallback to hardcoded if embed fails
	}
	if err := cfg.Validate(); err != nil {
		return SnakeConfig{}, err
	}
	return cfg, nil
}

// Parse decodes a snake configuration from YAML without validating it.
func Parse(data []byte) (SnakeConfig, error) {
	var cfg SnakeConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse snake config: %w", err)
	}
	return cfg, nil
}
