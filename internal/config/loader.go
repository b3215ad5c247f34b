package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration and validates it.
// Search order: customPath -> ~/.tui-flappy/configs/flappy.yaml ->
// ./configs/flappy.yaml -> embedded default.
//
// Files are decoded on top of the defaults, so a file only needs the keys
// it changes.
func Load(customPath string) (FlappyConfig, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func load(customPath string) (FlappyConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FlappyConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return FlappyConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("flappy.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "flappy.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultFlappyYAML)
	if err != nil {
		return DefaultFlappyConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of DefaultFlappyConfig.
func Parse(data []byte) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FlappyConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tui-flappy", "configs", filename)
}

// DifficultyPreset represents a named difficulty ramp behaviour.
type DifficultyPreset string

const (
	DifficultyClassic DifficultyPreset = "classic" // Ramp re-checked every tick
	DifficultyEdge    DifficultyPreset = "edge"    // Ramp fires once per score multiple
	DifficultyFixed   DifficultyPreset = "fixed"   // No ramp
)

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *FlappyConfig, preset DifficultyPreset) error {
	switch preset {
	case "":
	case DifficultyClassic:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.Trigger = TriggerEveryTick
	case DifficultyEdge:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.Trigger = TriggerOnCross
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		return fmt.Errorf("config: unknown difficulty preset %q (want classic, edge or fixed)", preset)
	}
	return nil
}
