package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "falldown.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.falldown/configs/falldown.yaml ->
// ./configs/falldown.yaml -> embedded default.
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names. An explicit customPath must exist, parse and validate;
// the implicit locations are skipped when unreadable or invalid.
func Load(customPath string) (FalldownConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FalldownConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return FalldownConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath(configFile), filepath.Join("configs", configFile)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultFalldownYAML)
	if err != nil {
		return DefaultFalldownConfig(), nil // Fallback to hardcoded if embed is broken
	}
	return cfg, nil
}

// Parse decodes YAML over the built-in defaults and validates the result.
func Parse(data []byte) (FalldownConfig, error) {
	cfg := DefaultFalldownConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FalldownConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return FalldownConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".falldown", "configs", filename)
}
