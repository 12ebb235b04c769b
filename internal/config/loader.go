package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "tusk.yaml"

// Load loads the tusk configuration.
// Search order: customPath -> ~/.tusk/configs/tusk.yaml -> ./configs/tusk.yaml -> embedded default.
// Sections missing from a file keep their default values.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(fileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", fileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes a YAML document over DefaultConfig and validates the result.
// A keys section replaces the bindings of the actions it names only.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	keys := cfg.Keys
	colors := cfg.Colors
	cfg.Keys, cfg.Colors = nil, nil

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}

	for action, k := range cfg.Keys {
		keys[action] = k
	}
	for kind, c := range cfg.Colors {
		colors[kind] = c
	}
	cfg.Keys, cfg.Colors = keys, colors

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tusk", "configs", filename)
}
