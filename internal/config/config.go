// Package config provides YAML/TOML-based game configuration loading and
// the level scaling formulas for Hop Square.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is returned when configured geometry cannot
// produce a playable level.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// HopSquareConfig contains all configuration for Hop Square.
type HopSquareConfig struct {
	World     WorldConfig    `yaml:"world" toml:"world"`
	Physics   PhysicsConfig  `yaml:"physics" toml:"physics"`
	Player    PlayerConfig   `yaml:"player" toml:"player"`
	Platforms PlatformConfig `yaml:"platforms" toml:"platforms"`
	Enemies   EnemyConfig    `yaml:"enemies" toml:"enemies"`
	PowerUp   PowerUpConfig  `yaml:"powerup" toml:"powerup"`
	Session   SessionConfig  `yaml:"session" toml:"session"`
}

// WorldConfig defines the playfield in world units.
type WorldConfig struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// PhysicsConfig defines shared physics parameters.
type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity" toml:"gravity"` // Added to DY every tick
}

// PlayerConfig defines player parameters.
type PlayerConfig struct {
	Size        int     `yaml:"size" toml:"size"`
	Speed       float64 `yaml:"speed" toml:"speed"`
	JumpImpulse float64 `yaml:"jump_impulse" toml:"jump_impulse"` // Negative = up
	SpawnOffset int     `yaml:"spawn_offset" toml:"spawn_offset"` // Gap between spawn and floor
}

// PlatformConfig defines platform geometry and generation bounds.
type PlatformConfig struct {
	Width    int `yaml:"width" toml:"width"`
	Height   int `yaml:"height" toml:"height"`
	JumpUnit int `yaml:"jump_unit" toml:"jump_unit"`

	// Horizontal displacement bounds. Zero means derived:
	// min = world width / 3, max = max(speed * sqrt(2*|jump|/gravity), min).
	MinHorizontalDistance int `yaml:"min_horizontal_distance" toml:"min_horizontal_distance"`
	MaxHorizontalDistance int `yaml:"max_horizontal_distance" toml:"max_horizontal_distance"`

	// Reachable limits every gap to what one jump arc can cover.
	Reachable bool `yaml:"reachable" toml:"reachable"`
}

// EnemyConfig defines enemy parameters.
type EnemyConfig struct {
	Size             int     `yaml:"size" toml:"size"`
	Speed            float64 `yaml:"speed" toml:"speed"`
	IncrementSpeed   float64 `yaml:"increment_speed" toml:"increment_speed"` // Added per level at spawn
	PursuitRange     float64 `yaml:"pursuit_range" toml:"pursuit_range"`
	SafeZone         float64 `yaml:"safe_zone" toml:"safe_zone"`
	BaseCount        int     `yaml:"base_count" toml:"base_count"`
	LevelsPerEnemy   int     `yaml:"levels_per_enemy" toml:"levels_per_enemy"`
	MaxSpawnAttempts int     `yaml:"max_spawn_attempts" toml:"max_spawn_attempts"`
}

// PowerUpConfig defines the power-up pickup.
type PowerUpConfig struct {
	Size       int `yaml:"size" toml:"size"`
	DurationMs int `yaml:"duration_ms" toml:"duration_ms"`
}

// SessionConfig defines session rules.
type SessionConfig struct {
	MaxHits    int     `yaml:"max_hits" toml:"max_hits"`
	ExitReach  float64 `yaml:"exit_reach" toml:"exit_reach"` // Hitbox inflation for the exit check
	StartLevel int     `yaml:"start_level" toml:"start_level"`
}

// Validate checks that the geometry can produce a level without degenerate
// loops. Errors wrap ErrInvalidConfiguration.
func (c HopSquareConfig) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("config: %w: %s", ErrInvalidConfiguration, fmt.Sprintf(format, args...))
	}

	if c.World.Width <= 0 || c.World.Height <= 0 {
		return invalid("world size %dx%d", c.World.Width, c.World.Height)
	}
	if c.Platforms.Width <= 0 || c.Platforms.Height <= 0 {
		return invalid("platform size %dx%d", c.Platforms.Width, c.Platforms.Height)
	}
	if c.World.Width < c.Platforms.Width || c.World.Height < c.Platforms.Height {
		return invalid("world %dx%d smaller than one platform", c.World.Width, c.World.Height)
	}
	if c.Player.Size <= 0 || c.Player.Size+c.Player.SpawnOffset > c.World.Height || c.Player.Size > c.World.Width {
		return invalid("player size %d does not fit the world", c.Player.Size)
	}
	if c.Enemies.Size <= 0 || c.Enemies.Size > c.World.Width || c.Enemies.Size > c.World.Height {
		return invalid("enemy size %d does not fit the world", c.Enemies.Size)
	}
	if c.Physics.Gravity <= 0 {
		return invalid("gravity must be positive, got %g", c.Physics.Gravity)
	}
	if c.Player.JumpImpulse >= 0 {
		return invalid("jump impulse must be negative (upward), got %g", c.Player.JumpImpulse)
	}
	if c.Platforms.JumpUnit <= 0 {
		return invalid("jump unit must be positive, got %d", c.Platforms.JumpUnit)
	}
	if c.PowerUp.Size <= 0 || c.PowerUp.Size > c.Platforms.Width {
		return invalid("power-up size %d must fit on a platform", c.PowerUp.Size)
	}
	if c.PowerUp.DurationMs <= 0 {
		return invalid("power-up duration must be positive")
	}
	if c.Session.MaxHits <= 0 {
		return invalid("max hits must be positive")
	}
	if c.Session.StartLevel < 1 {
		return invalid("start level must be >= 1, got %d", c.Session.StartLevel)
	}
	if c.Enemies.LevelsPerEnemy <= 0 || c.Enemies.BaseCount < 0 || c.Enemies.MaxSpawnAttempts <= 0 {
		return invalid("enemy count parameters")
	}

	minH, maxH := c.HorizontalBounds()
	if minH < 0 || maxH < minH {
		return invalid("max horizontal distance %d < min horizontal distance %d", maxH, minH)
	}
	return nil
}
