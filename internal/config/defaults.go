package config

import (
	_ "embed"
)

//go:embed defaults/hopsquare.yaml
var defaultHopSquareYAML []byte

// DefaultHopSquareConfig returns the built-in Hop Square configuration.
// Units are world pixels of an 800x800 playfield; speeds are per tick.
func DefaultHopSquareConfig() HopSquareConfig {
	return HopSquareConfig{
		World: WorldConfig{
			Width:  800,
			Height: 800,
		},
		Physics: PhysicsConfig{
			Gravity: 1,
		},
		Player: PlayerConfig{
			Size:        50,
			Speed:       5,
			JumpImpulse: -15,
			SpawnOffset: 10,
		},
		Platforms: PlatformConfig{
			Width:    150,
			Height:   20,
			JumpUnit: 100,
		},
		Enemies: EnemyConfig{
			Size:             40,
			Speed:            2,
			IncrementSpeed:   0.1,
			PursuitRange:     100,
			SafeZone:         150,
			BaseCount:        1,
			LevelsPerEnemy:   5,
			MaxSpawnAttempts: 1000,
		},
		PowerUp: PowerUpConfig{
			Size:       30,
			DurationMs: 2000,
		},
		Session: SessionConfig{
			MaxHits:    3,
			ExitReach:  5,
			StartLevel: 1,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "hopsquare", "hopsquare_fair":
		return defaultHopSquareYAML
	default:
		return nil
	}
}
