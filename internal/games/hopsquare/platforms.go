package hopsquare

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/solarlune/resolv"

	"github.com/vovakirdan/hopsquare/internal/config"
	"github.com/vovakirdan/hopsquare/internal/core"
)

// Platform is a fixed-size ledge identified by its top-left corner.
// Width and height come from the configuration.
type Platform struct {
	X, Y float64
}

// Generator lays out the platforms of one level, bottom to top.
type Generator struct {
	cfg config.HopSquareConfig
}

// NewGenerator creates a generator for the given configuration.
// cfg.Platforms.Reachable selects fair generation.
func NewGenerator(cfg config.HopSquareConfig) *Generator {
	return &Generator{cfg: cfg}
}

// Count returns how many platforms one level has, the exit included.
func (g *Generator) Count() int {
	return int(float64(g.cfg.World.Height)/(1.5*float64(g.cfg.Platforms.JumpUnit))) + 1
}

// Generate builds a platform sequence. The first platform sits one jump unit
// above the floor; each following one is higher by [jumpUnit, 1.5*jumpUnit]
// and shifted sideways by a random distance in a random direction.
func (g *Generator) Generate(rng *rand.Rand) ([]Platform, error) {
	cfg := g.cfg
	jump := cfg.Platforms.JumpUnit
	if jump <= 0 {
		return nil, fmt.Errorf("hopsquare: %w: jump unit %d", config.ErrInvalidConfiguration, jump)
	}

	xMax := cfg.World.Width - cfg.Platforms.Width
	if xMax < 0 {
		return nil, fmt.Errorf("hopsquare: %w: world width %d < platform width %d",
			config.ErrInvalidConfiguration, cfg.World.Width, cfg.Platforms.Width)
	}

	minH, maxH := cfg.HorizontalBounds()
	if maxH < minH {
		return nil, fmt.Errorf("hopsquare: %w: max horizontal distance %d < min %d",
			config.ErrInvalidConfiguration, maxH, minH)
	}

	minGap := jump
	maxGap := int(1.5 * float64(jump))
	if cfg.Platforms.Reachable {
		rise := int(jumpApex(cfg))
		if rise < minGap {
			return nil, fmt.Errorf("hopsquare: %w: jump apex %d below jump unit %d",
				config.ErrInvalidConfiguration, rise, jump)
		}
		maxGap = min(maxGap, rise)
	}

	count := g.Count()
	platforms := make([]Platform, 0, count)

	y := cfg.World.Height - jump
	x := rng.Intn(xMax + 1)
	platforms = append(platforms, Platform{X: float64(x), Y: float64(y)})

	for i := 1; i < count; i++ {
		gap := minGap + rng.Intn(maxGap-minGap+1)
		y -= gap

		direction := 1
		if rng.Intn(2) == 0 {
			direction = -1
		}

		lo, hi := minH, maxH
		if cfg.Platforms.Reachable {
			hi = min(hi, horizontalReach(cfg, float64(gap)))
			lo = min(lo, hi)
		}
		x += direction * (lo + rng.Intn(hi-lo+1))
		x = core.Clamp(x, 0, xMax)

		platforms = append(platforms, Platform{X: float64(x), Y: float64(y)})
	}

	return platforms, nil
}

// maxArcTicks bounds the jump simulations below.
const maxArcTicks = 10000

// jumpApex returns how far a jump from rest rises, stepping the same
// gravity-then-move rule the player uses.
func jumpApex(cfg config.HopSquareConfig) float64 {
	rise := 0.0
	dy := cfg.Player.JumpImpulse
	for i := 0; i < maxArcTicks; i++ {
		dy += cfg.Physics.Gravity
		if dy >= 0 {
			break
		}
		rise -= dy
	}
	return rise
}

// horizontalReach returns the widest platform-to-platform shift a running
// jump can still land on when the next platform is gap units higher.
func horizontalReach(cfg config.HopSquareConfig, gap float64) int {
	y, dy := 0.0, cfg.Player.JumpImpulse
	ticks := maxArcTicks
	for t := 1; t <= maxArcTicks; t++ {
		dy += cfg.Physics.Gravity
		y += dy
		if dy > 0 && y >= -gap {
			ticks = t
			break
		}
	}
	return int(cfg.Player.Speed*float64(ticks)) + cfg.Platforms.Width
}

// Tags for objects in the platform space.
const (
	tagPlatform = "platform"
	tagProbe    = "probe"
)

const fieldCellSize = 25

// PlatformField indexes a level's platforms in a resolv space so landing
// checks only test platforms near the body.
type PlatformField struct {
	platforms []Platform
	width     float64
	height    float64
	offsetY   float64 // Shifts platforms above the window into the space
	space     *resolv.Space
	probe     *resolv.Object
}

// NewPlatformField builds the broadphase space for platforms of the given size.
func NewPlatformField(platforms []Platform, width, height float64, worldW, worldH int) *PlatformField {
	top := 0.0
	for _, p := range platforms {
		top = min(top, p.Y)
	}
	offsetY := -top + fieldCellSize
	spaceH := int(float64(worldH)+offsetY) + fieldCellSize

	f := &PlatformField{
		platforms: platforms,
		width:     width,
		height:    height,
		offsetY:   offsetY,
		space:     resolv.NewSpace(worldW+fieldCellSize, spaceH, fieldCellSize, fieldCellSize),
	}

	for i, p := range platforms {
		obj := resolv.NewObject(p.X, p.Y+offsetY, width, height, tagPlatform)
		obj.Data = i
		f.space.Add(obj)
	}

	f.probe = resolv.NewObject(0, 0, 1, 1, tagProbe)
	f.space.Add(f.probe)
	return f
}

// Platforms returns the platforms in generation order.
func (f *PlatformField) Platforms() []Platform {
	return f.platforms
}

// Len returns the number of platforms.
func (f *PlatformField) Len() int {
	return len(f.platforms)
}

// Rect returns the world rectangle of platform i.
func (f *PlatformField) Rect(i int) core.RectF {
	p := f.platforms[i]
	return core.NewRectF(p.X, p.Y, f.width, f.height)
}

// Exit returns the rectangle of the last platform, the level exit.
func (f *PlatformField) Exit() (core.RectF, bool) {
	if len(f.platforms) == 0 {
		return core.RectF{}, false
	}
	return f.Rect(len(f.platforms) - 1), true
}

// Overlapping returns the indices of every platform overlapping r,
// in generation order.
func (f *PlatformField) Overlapping(r core.RectF) []int {
	// resolv rounds the far edge of a box down by one unit when picking
	// cells, so the probe is one unit larger on every side.
	probe := r.Inflate(1)
	f.probe.X = probe.X
	f.probe.Y = probe.Y + f.offsetY
	f.probe.W = probe.W
	f.probe.H = probe.H
	f.probe.Update()

	check := f.probe.Check(0, 0, tagPlatform)
	if check == nil {
		return nil
	}

	var hits []int
	for _, obj := range check.ObjectsByTags(tagPlatform) {
		i, ok := obj.Data.(int)
		if !ok {
			continue
		}
		if f.Rect(i).Intersects(r) {
			hits = append(hits, i)
		}
	}
	sort.Ints(hits)
	return hits
}

// FirstOverlap returns the lowest-index platform overlapping r.
func (f *PlatformField) FirstOverlap(r core.RectF) (int, bool) {
	hits := f.Overlapping(r)
	if len(hits) == 0 {
		return 0, false
	}
	return hits[0], true
}
