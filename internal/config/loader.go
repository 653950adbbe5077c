package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name searched for in the config directories.
const ConfigFile = "rockboy.yaml"

// LoadRock loads Super Rock Boy configuration.
// Search order: customPath -> ~/.rockboy/configs/rockboy.yaml -> ./configs/rockboy.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a file only needs to list the
// keys it changes.
func LoadRock(customPath string) (RockConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RockConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseRock(data)
		if err != nil {
			return RockConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseRock(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := ParseRock(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseRock(defaultRockYAML)
	if err != nil {
		return DefaultRockConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseRock decodes YAML over the default configuration and validates the result.
func ParseRock(data []byte) (RockConfig, error) {
	cfg := DefaultRockConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rockboy", "configs", filename)
}

// ApplyRockPreset modifies the config based on a difficulty preset.
func ApplyRockPreset(cfg *RockConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust survivability based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Health.Base = 150
		cfg.Spikes.Damage = 15
	case DifficultyHard:
		cfg.Health.Base = 80
		cfg.Health.ImmunityFrames = 20
	}
}
