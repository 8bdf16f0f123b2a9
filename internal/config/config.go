// Package config provides YAML-based game configuration loading,
// environment overrides and difficulty management for astrobreak.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// AstrobreakConfig contains all configuration for the game.
type AstrobreakConfig struct {
	Canvas     CanvasConfig     `yaml:"canvas"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Drone      DroneConfig      `yaml:"drone"`
	Ship       ShipConfig       `yaml:"ship"`
	Field      FieldConfig      `yaml:"field"`
	Effects    EffectsConfig    `yaml:"effects"`
	Storage    StorageConfig    `yaml:"storage"`
	Server     ServerConfig     `yaml:"server"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Validate rejects values the simulation cannot run with.
func (c AstrobreakConfig) Validate() error {
	switch {
	case c.Canvas.Width <= 0 || c.Canvas.Height <= 0:
		return fmt.Errorf("%w: canvas must be positive, got %vx%v", ErrInvalidConfig, c.Canvas.Width, c.Canvas.Height)
	case c.Gameplay.Lives <= 0:
		return fmt.Errorf("%w: gameplay.lives must be positive, got %d", ErrInvalidConfig, c.Gameplay.Lives)
	case c.Drone.Radius <= 0:
		return fmt.Errorf("%w: drone.radius must be positive, got %v", ErrInvalidConfig, c.Drone.Radius)
	case c.Drone.Speed <= 0:
		return fmt.Errorf("%w: drone.speed must be positive, got %v", ErrInvalidConfig, c.Drone.Speed)
	case c.Ship.Width <= 0:
		return fmt.Errorf("%w: ship.width must be positive, got %v", ErrInvalidConfig, c.Ship.Width)
	}
	return nil
}

// CanvasConfig defines the logical playfield in canvas units.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// GameplayConfig defines match rules.
type GameplayConfig struct {
	Lives int `yaml:"lives"`
}

// DroneConfig defines the ball.
type DroneConfig struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"` // Canvas units per tick
}

// ShipConfig defines the paddle.
type ShipConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	BottomOffset float64 `yaml:"bottom_offset"` // Distance from the canvas bottom
}

// FieldConfig defines the initial asteroid grid.
type FieldConfig struct {
	Rows      int      `yaml:"rows"`
	Cols      int      `yaml:"cols"`
	Top       float64  `yaml:"top"`
	RowHeight float64  `yaml:"row_height"`
	Gap       float64  `yaml:"gap"`
	Palette   []string `yaml:"palette"` // Hex color per row, cycled
}

// EffectsConfig tunes the visual intensity director.
type EffectsConfig struct {
	Rate float64 `yaml:"rate"` // Smoothing factor per tick, (0, 1]
}

// StorageConfig locates the high-score database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// ServerConfig configures the SSH server.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
