package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = "pinball.yaml"

// LoadPinball loads the pinball configuration.
// Search order: customPath -> ~/.pinball/configs/pinball.yaml -> ./configs/pinball.yaml -> embedded default
func LoadPinball(customPath string) (PinballConfig, error) {
	// Start from defaults so partial files only override what they name
	cfg := DefaultPinballConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if loaded, ok := parseValid(data); ok {
				return loaded, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFileName)); err == nil {
		if loaded, ok := parseValid(data); ok {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	if loaded, ok := parseValid(defaultPinballYAML); ok {
		return loaded, nil
	}
	return DefaultPinballConfig(), nil // Fallback to hardcoded if embed fails
}

// parseValid decodes data over the defaults and reports whether the result is usable.
func parseValid(data []byte) (PinballConfig, bool) {
	cfg := DefaultPinballConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
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
	return filepath.Join(home, ".pinball", "configs", filename)
}

// ApplyPinballPreset modifies the config based on a difficulty preset.
func ApplyPinballPreset(cfg *PinballConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust table feel based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Physics.Gravity *= 0.8
		cfg.Physics.BumperRestitution = 1.0
	case DifficultyHard:
		cfg.Physics.Gravity *= 1.25
		cfg.Physics.BumperRestitution = 1.3
	}
}

// Marshal encodes a config as YAML.
func Marshal(cfg PinballConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// ParseTable decodes and validates a table layout.
func ParseTable(data []byte) (TableLayout, error) {
	var layout TableLayout
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return layout, fmt.Errorf("failed to parse table: %w", err)
	}
	if err := layout.Validate(); err != nil {
		return layout, err
	}
	return layout, nil
}

// LoadTableFile reads a table layout from disk.
func LoadTableFile(path string) (TableLayout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TableLayout{}, fmt.Errorf("failed to read table %s: %w", path, err)
	}
	layout, err := ParseTable(data)
	if err != nil {
		return layout, fmt.Errorf("table %s: %w", path, err)
	}
	return layout, nil
}
