// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Profile ProfileConfig `toml:"profile"`
	Output  OutputConfig  `toml:"output"`
}

// ProfileConfig maps athlete defaults used for short sensor packets.
type ProfileConfig struct {
	WeightKG *float64 `toml:"weight"`
	HeightCM *float64 `toml:"height"`
}

// OutputConfig maps output rendering settings.
type OutputConfig struct {
	Format *string `toml:"format"`
	Color  *bool   `toml:"color"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
