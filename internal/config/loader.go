package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// load resolves a game's configuration.
// Search order: customPath -> ~/.arcade/configs/<game>.yaml -> ./configs/<game>.yaml -> embedded default -> hardcoded.
// Only an explicit customPath can fail; the implicit locations fall through silently.
func load[T any](gameID, customPath string, embedded []byte, fallback func() T) (T, error) {
	filename := gameID + ".yaml"

	// Try custom path first
	if customPath != "" {
		cfg := fallback()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if cfg, ok := readYAML(userCfgPath, fallback); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := readYAML(filepath.Join("configs", filename), fallback); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := fallback()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func readYAML[T any](path string, fallback func() T) (T, bool) {
	cfg := fallback()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// LoadPlatformer loads platformer configuration and validates its levels.
func LoadPlatformer(customPath string) (PlatformerConfig, error) {
	cfg, err := load("platformer", customPath, defaultPlatformerYAML, DefaultPlatformerConfig)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Levels.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid platformer levels: %w", err)
	}
	return cfg, nil
}

// LoadRacer loads racer configuration.
func LoadRacer(customPath string) (RacerConfig, error) {
	return load("racer", customPath, defaultRacerYAML, DefaultRacerConfig)
}

// LoadSnake loads snake configuration.
func LoadSnake(customPath string) (SnakeConfig, error) {
	return load("snake", customPath, defaultSnakeYAML, DefaultSnakeConfig)
}

// ApplyPlatformerPreset modifies the config based on a difficulty preset.
// The platformer has no progression, so fixed behaves like normal.
func ApplyPlatformerPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Enemy.Speed = 1.5
	case DifficultyHard:
		cfg.Enemy.Speed = 3
	case DifficultyNormal, DifficultyFixed:
		cfg.Enemy.Speed = 2
	}
}

// ApplyRacerPreset modifies the config based on a difficulty preset.
func ApplyRacerPreset(cfg *RacerConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Base *= 0.8
	case DifficultyHard:
		cfg.Difficulty.Base *= 1.3
	}
}

// ApplySnakePreset modifies the config based on a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Base = 180
	case DifficultyNormal:
		cfg.Difficulty.Base = 150
	case DifficultyHard:
		cfg.Difficulty.Base = 120
	}
}
