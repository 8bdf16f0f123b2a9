package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const configFile = "astrobreak.yaml"

// LoadAstrobreak loads the game configuration.
// Search order: customPath -> ~/.astrobreak/configs/astrobreak.yaml -> ./configs/astrobreak.yaml -> embedded default
// An invalid custom file is an error; invalid searched files are skipped.
func LoadAstrobreak(customPath string) (AstrobreakConfig, error) {
	// Files are merged over the defaults so a partial file only overrides what it names
	cfg := DefaultAstrobreakConfig()

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
			return cfg, fmt.Errorf("failed to load config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
			cfg = DefaultAstrobreakConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
		cfg = DefaultAstrobreakConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultAstrobreakYAML, &cfg); err != nil {
		return DefaultAstrobreakConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".astrobreak", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *AstrobreakConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Ship.Width = 140
		cfg.Drone.Speed = 4
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Ship.Width = 70
		cfg.Drone.Speed = 7
	}
}

// EnvOverrides holds values read from ASTROBREAK_* environment variables.
// Nil fields were not set.
type EnvOverrides struct {
	Lives      *int     `env:"ASTROBREAK_LIVES"`
	DroneSpeed *float64 `env:"ASTROBREAK_DRONE_SPEED"`
	ShipWidth  *float64 `env:"ASTROBREAK_SHIP_WIDTH"`
	EffectRate *float64 `env:"ASTROBREAK_EFFECT_RATE"`
	DBPath     *string  `env:"ASTROBREAK_DB"`
	SSHAddr    *string  `env:"ASTROBREAK_SSH_ADDR"`
}

// LoadEnvOverrides reads overrides from the process environment.
func LoadEnvOverrides() (EnvOverrides, error) {
	var o EnvOverrides
	if err := env.Parse(&o); err != nil {
		return EnvOverrides{}, fmt.Errorf("config: parse env: %w", err)
	}
	return o, nil
}

// Apply writes every set override into cfg.
func (o EnvOverrides) Apply(cfg *AstrobreakConfig) {
	if o.Lives != nil && *o.Lives > 0 {
		cfg.Gameplay.Lives = *o.Lives
	}
	if o.DroneSpeed != nil && *o.DroneSpeed > 0 {
		cfg.Drone.Speed = *o.DroneSpeed
	}
	if o.ShipWidth != nil && *o.ShipWidth > 0 {
		cfg.Ship.Width = *o.ShipWidth
	}
	if o.EffectRate != nil {
		cfg.Effects.Rate = *o.EffectRate
	}
	if o.DBPath != nil && *o.DBPath != "" {
		cfg.Storage.Path = *o.DBPath
	}
	if o.SSHAddr != nil && *o.SSHAddr != "" {
		cfg.Server.Addr = *o.SSHAddr
	}
}

// Load is the full pipeline used by the CLI: file search, preset, then
// environment overrides.
func Load(customPath string, preset DifficultyPreset) (AstrobreakConfig, error) {
	cfg, err := LoadAstrobreak(customPath)
	if err != nil {
		return cfg, err
	}
	ApplyPreset(&cfg, preset)

	o, err := LoadEnvOverrides()
	if err != nil {
		return cfg, err
	}
	o.Apply(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
