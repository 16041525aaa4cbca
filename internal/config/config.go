// Package config provides configuration loading for mdi.
//
// Configuration is read from .mdi/config.yml in the working directory.
// Both config.yml and config.yaml extensions are supported.
//
// Configuration hierarchy (highest to lowest priority):
//  1. Command-line flags
//  2. Environment variables (MDI_*)
//  3. Config file (.mdi/config.yml)
//  4. Built-in defaults
//
// Environment variable convention:
//   - Prefix: MDI_
//   - Nested fields use underscores (MDI_OUTLINE_DEPTH, MDI_READ_MODE)
//   - Automatic mapping via Viper's SetEnvKeyReplacer
package config

// Config represents the complete mdi configuration.
// It can be loaded from .mdi/config.yml with environment variable overrides.
type Config struct {
	Outline OutlineConfig `yaml:"outline" mapstructure:"outline"`
	Read    ReadConfig    `yaml:"read" mapstructure:"read"`
}

// OutlineConfig controls how document outlines are rendered.
type OutlineConfig struct {
	Depth int `yaml:"depth" mapstructure:"depth"` // deepest heading level shown, 1-6
}

// ReadConfig controls how sections are extracted.
type ReadConfig struct {
	Mode string `yaml:"mode" mapstructure:"mode"` // extraction mode used when no flag is given
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Outline: OutlineConfig{
			Depth: 6, // show every heading level
		},
		Read: ReadConfig{
			Mode: "full",
		},
	}
}
