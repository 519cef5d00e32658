package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/flowlens/flowlens/pkg/validation"
)

// Config holds the engine's tunable settings. Detection thresholds and
// savings weights are deliberately not configurable; they are policy
// constants shared with downstream report consumers.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`

	// MaxCycles caps how many cycles redundancy detection reports per run.
	// 0 means unbounded.
	MaxCycles int `yaml:"max_cycles" validate:"gte=0"`

	// MaxCycleLength drops cycles longer than this many nodes. 0 means
	// unbounded.
	MaxCycleLength int `yaml:"max_cycle_length" validate:"gte=0"`
}

// Default returns the configuration used when no file is provided.
func Default() Config {
	return Config{
		LogLevel:       "info",
		MaxCycles:      1000,
		MaxCycleLength: 0,
	}
}

// Load reads a YAML config file over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := validation.ValidateStruct(&cfg); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}
