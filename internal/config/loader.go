package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// configNames lists the file names probed in config directories, in order.
var configNames = []string{"hopsquare.yaml", "hopsquare.yml", "hopsquare.toml"}

// Load loads Hop Square configuration.
// Search order: customPath -> ~/.hopsquare/configs/hopsquare.{yaml,yml,toml}
// -> ./configs/hopsquare.{yaml,yml,toml} -> embedded default.
// Files may be partial: unspecified fields keep their default values.
// The result is validated before it is returned.
func Load(customPath string) (HopSquareConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return HopSquareConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Decode(customPath, data)
		if err != nil {
			return HopSquareConfig{}, err
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory, then local configs directory
	dirs := []string{"configs"}
	if userDir := userConfigDir(); userDir != "" {
		dirs = append([]string{userDir}, dirs...)
	}
	for _, dir := range dirs {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			if cfg, err := Decode(path, data); err == nil {
				return cfg, cfg.Validate()
			}
		}
	}

	// Use embedded default YAML
	cfg, err := Decode("hopsquare.yaml", defaultHopSquareYAML)
	if err != nil {
		return DefaultHopSquareConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// Decode parses config data, picking the format from the file extension.
// Values are layered over DefaultHopSquareConfig.
func Decode(path string, data []byte) (HopSquareConfig, error) {
	cfg := DefaultHopSquareConfig()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
	case ".yaml", ".yml", "":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("config: unsupported format %q", filepath.Ext(path))
	}
	return cfg, nil
}

// userConfigDir returns ~/.hopsquare/configs, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hopsquare", "configs")
}
