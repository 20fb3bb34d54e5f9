package hopsquare

import (
	"time"

	"github.com/vovakirdan/hopsquare/internal/config"
)

// Input is the logical per-tick input snapshot.
type Input struct {
	Left     bool
	Right    bool
	Jump     bool
	Interact bool
}

// Player is the controllable square.
type Player struct {
	Body
	Jumping          bool
	OnGround         bool
	TimesHit         int
	PoweredUp        bool
	PowerUpStartedAt time.Duration
	CollectedPowerUp bool

	speed    float64
	jump     float64
	gravity  float64
	duration time.Duration
	worldW   float64
	worldH   float64
}

// NewPlayer creates a player at the spawn point: horizontally centered,
// SpawnOffset units above the floor, standing.
func NewPlayer(cfg config.HopSquareConfig) *Player {
	x, y := SpawnPoint(cfg)
	return &Player{
		Body: Body{
			X:    x,
			Y:    y,
			Size: float64(cfg.Player.Size),
		},
		OnGround: true,
		speed:    cfg.Player.Speed,
		jump:     cfg.Player.JumpImpulse,
		gravity:  cfg.Physics.Gravity,
		duration: cfg.PowerUpDuration(),
		worldW:   float64(cfg.World.Width),
		worldH:   float64(cfg.World.Height),
	}
}

// SpawnPoint returns the player's top-left spawn position.
func SpawnPoint(cfg config.HopSquareConfig) (x, y float64) {
	x = float64(cfg.World.Width-cfg.Player.Size) / 2
	y = float64(cfg.World.Height - cfg.Player.Size - cfg.Player.SpawnOffset)
	return x, y
}

// ApplyInput sets horizontal velocity and starts a jump when standing.
// Left wins over right.
func (p *Player) ApplyInput(in Input) {
	switch {
	case in.Left:
		p.DX = -p.speed
	case in.Right:
		p.DX = p.speed
	default:
		p.DX = 0
	}

	if in.Jump && p.OnGround {
		p.DY = p.jump
		p.Jumping = true
		p.OnGround = false
	}
}

// Integrate advances the player one tick: gravity, landing on the first
// platform hit by the next vertical position, movement, then the window
// clamps. Platforms are one-way: only a falling body lands.
func (p *Player) Integrate(field *PlatformField) {
	p.DY += p.gravity

	if p.DY > 0 && field != nil {
		next := p.Rect().Offset(0, p.DY)
		if i, ok := field.FirstOverlap(next); ok {
			p.Y = field.Rect(i).Y - p.Size
			p.land()
		}
	}

	p.X += p.DX
	p.Y += p.DY

	p.clampX(p.worldW)
	if floor := p.worldH - p.Size; p.Y > floor {
		p.Y = floor
		p.land()
	}
}

func (p *Player) land() {
	p.DY = 0
	p.OnGround = true
	p.Jumping = false
}

// ActivatePowerUp starts the power-up effect at now.
func (p *Player) ActivatePowerUp(now time.Duration) {
	p.PoweredUp = true
	p.PowerUpStartedAt = now
	p.CollectedPowerUp = true
}

// TickPowerUpExpiry ends the effect once strictly more than the configured
// duration has passed since activation.
func (p *Player) TickPowerUpExpiry(now time.Duration) {
	if p.PoweredUp && now-p.PowerUpStartedAt > p.duration {
		p.PoweredUp = false
	}
}

// PowerUpRemaining returns how long the active effect still lasts.
func (p *Player) PowerUpRemaining(now time.Duration) time.Duration {
	if !p.PoweredUp {
		return 0
	}
	return max(p.duration-(now-p.PowerUpStartedAt), 0)
}
