package config

import (
	"math"
	"time"
)

// Level scaling is fixed: enemies get faster by a constant increment per
// level and one more enemy joins every LevelsPerEnemy levels.

// EnemyCount returns how many enemies spawn at the given level.
func (c HopSquareConfig) EnemyCount(level int) int {
	step := c.Enemies.LevelsPerEnemy
	if step <= 0 {
		step = 1 // Prevent division by zero
	}
	return c.Enemies.BaseCount + level/step
}

// EnemySpeed returns the per-tick enemy speed at the given level.
func (c HopSquareConfig) EnemySpeed(level int) float64 {
	return c.Enemies.Speed + c.Enemies.IncrementSpeed*float64(level)
}

// HorizontalBounds returns the min and max horizontal displacement between
// consecutive platforms.
func (c HopSquareConfig) HorizontalBounds() (minH, maxH int) {
	minH = c.Platforms.MinHorizontalDistance
	if minH == 0 {
		minH = c.World.Width / 3
	}

	maxH = c.Platforms.MaxHorizontalDistance
	if maxH == 0 {
		maxH = minH
		if c.Physics.Gravity > 0 {
			arc := int(c.Player.Speed * math.Sqrt(2*math.Abs(c.Player.JumpImpulse)/c.Physics.Gravity))
			maxH = max(arc, minH)
		}
	}
	return minH, maxH
}

// PowerUpDuration returns how long a collected power-up lasts.
func (c HopSquareConfig) PowerUpDuration() time.Duration {
	return time.Duration(c.PowerUp.DurationMs) * time.Millisecond
}

// TickDuration converts a tick rate to the simulated time per tick.
func TickDuration(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}
