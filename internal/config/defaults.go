package config

import (
	_ "embed"
)

//go:embed defaults/astrobreak.yaml
var defaultAstrobreakYAML []byte

// DefaultAstrobreakConfig returns the hardcoded configuration, used when
// the embedded YAML cannot be parsed.
func DefaultAstrobreakConfig() AstrobreakConfig {
	return AstrobreakConfig{
		Canvas: CanvasConfig{
			Width:  800,
			Height: 600,
		},
		Gameplay: GameplayConfig{
			Lives: 3,
		},
		Drone: DroneConfig{
			Radius: 6,
			Speed:  5,
		},
		Ship: ShipConfig{
			Width:        100,
			Height:       12,
			Speed:        8,
			BottomOffset: 40,
		},
		Field: FieldConfig{
			Rows:      5,
			Cols:      8,
			Top:       60,
			RowHeight: 24,
			Gap:       8,
			Palette:   []string{"#ff5e7e", "#ffb347", "#ffe066", "#7bed9f", "#70a1ff"},
		},
		Effects: EffectsConfig{
			Rate: 0.06,
		},
		Storage: StorageConfig{
			Path: "~/.astrobreak/scores.db",
		},
		Server: ServerConfig{
			Addr: ":2323",
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.4,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultAstrobreakYAML
}
