package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadHunter loads the game configuration and validates it.
// Search order: customPath -> ~/.hunter/configs/hunter.yaml -> ./configs/hunter.yaml -> embedded default
func LoadHunter(customPath string) (HunterConfig, error) {
	// Try custom path first; failures here are reported, not skipped
	if customPath != "" {
		cfg, err := readFile(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("hunter.yaml"); userCfgPath != "" {
		if cfg, err := readFile(userCfgPath); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := readFile(filepath.Join("configs", "hunter.yaml")); err == nil && cfg.Validate() == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	var cfg HunterConfig
	if err := yaml.Unmarshal(defaultHunterYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultHunterConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// readFile parses a YAML file on top of the built-in defaults, so partial
// files only override what they mention.
func readFile(path string) (HunterConfig, error) {
	cfg := DefaultHunterConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg HunterConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hunter", "configs", filename)
}
