package hopsquare

import (
	"math/rand"

	"github.com/vovakirdan/hopsquare/internal/config"
	"github.com/vovakirdan/hopsquare/internal/core"
)

// PowerUp is the one-shot pickup that lets the player destroy enemies.
type PowerUp struct {
	X, Y   float64
	Size   float64
	Active bool
}

// Rect returns the pickup's collision rectangle.
func (p PowerUp) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.Size, p.Size)
}

// placePowerUp puts the pickup on top of a random platform, avoiding the
// first and the exit when the level has enough of them.
func placePowerUp(cfg config.HopSquareConfig, platforms []Platform, rng *rand.Rand) *PowerUp {
	if len(platforms) == 0 {
		return nil
	}

	candidates := platforms
	switch {
	case len(platforms) >= 3:
		candidates = platforms[1 : len(platforms)-1]
	case len(platforms) == 2:
		candidates = platforms[:1]
	}

	p := candidates[rng.Intn(len(candidates))]
	size := cfg.PowerUp.Size
	x := p.X + float64(rng.Intn(cfg.Platforms.Width-size+1))

	return &PowerUp{
		X:      x,
		Y:      p.Y - float64(size),
		Size:   float64(size),
		Active: true,
	}
}
