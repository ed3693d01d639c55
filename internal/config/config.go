package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"size-explorer/internal/entry"
)

type Config struct {
	Marker        string    `yaml:"marker"`
	FilterPresets []float64 `yaml:"filter_presets"`
	Uncheck       []string  `yaml:"uncheck"`
	ExpandDepth   int       `yaml:"expand_depth"`
	OutputFile    string    `yaml:"output_file"`
	LogLevel      string    `yaml:"log_level"`
	LogFormat     string    `yaml:"log_format"`
}

func DefaultConfig() *Config {
	return &Config{
		Marker:        entry.DefaultMarker,
		FilterPresets: []float64{1, 0.5, 0.1},
		Uncheck:       []string{},
		LogLevel:      "info",
		LogFormat:     "console",
	}
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	cfg.FilterPresets = nil
	cfg.Uncheck = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	// Initialize slices if nil (for empty configs)
	if cfg.FilterPresets == nil {
		cfg.FilterPresets = []float64{}
	}
	if cfg.Uncheck == nil {
		cfg.Uncheck = []string{}
	}
	if cfg.ExpandDepth < 0 {
		return nil, fmt.Errorf("invalid expand_depth %d: must not be negative", cfg.ExpandDepth)
	}

	return cfg, nil
}
