package hopsquare

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/hopsquare/internal/config"
	"github.com/vovakirdan/hopsquare/internal/core"
)

// EnemyState is the enemy's current behavior.
type EnemyState int

const (
	Patrolling EnemyState = iota
	Pursuing
)

// String returns a human-readable name for the state.
func (s EnemyState) String() string {
	switch s {
	case Patrolling:
		return "patrolling"
	case Pursuing:
		return "pursuing"
	default:
		return "unknown"
	}
}

// Enemy sweeps side to side until the player comes within range, then
// steps straight at it.
type Enemy struct {
	Body
	State EnemyState
	Speed float64 // Fixed at spawn from the level

	patrolDir float64 // -1 or +1
	rangeSq   float64
	worldW    float64
	worldH    float64
}

// NewEnemy creates an enemy at (x, y) for the given level.
func NewEnemy(cfg config.HopSquareConfig, level int, x, y float64, dir float64) *Enemy {
	if dir >= 0 {
		dir = 1
	} else {
		dir = -1
	}
	return &Enemy{
		Body:      Body{X: x, Y: y, Size: float64(cfg.Enemies.Size)},
		Speed:     cfg.EnemySpeed(level),
		patrolDir: dir,
		rangeSq:   cfg.Enemies.PursuitRange * cfg.Enemies.PursuitRange,
		worldW:    float64(cfg.World.Width),
		worldH:    float64(cfg.World.Height),
	}
}

// Update runs one tick of behavior against the player's position.
func (e *Enemy) Update(target Body) {
	dx := target.X - e.X
	dy := target.Y - e.Y

	if dx*dx+dy*dy < e.rangeSq {
		e.State = Pursuing
		e.pursue(dx, dy)
		return
	}
	e.State = Patrolling
	e.patrol()
}

// patrol moves horizontally, turning around when the next step would
// cross either window edge. A step that overshoots after turning is
// clamped so the enemy never parks against a wall.
func (e *Enemy) patrol() {
	maxX := e.worldW - e.Size
	if nx := e.X + e.patrolDir*e.Speed; nx < 0 || nx > maxX {
		e.patrolDir = -e.patrolDir
	}

	nx := core.ClampF(e.X+e.patrolDir*e.Speed, 0, maxX)
	e.DX = nx - e.X
	e.DY = 0
	e.X = nx
}

// pursue steps along the Manhattan-normalised direction to the player.
// Each axis moves only if it stays inside the window.
func (e *Enemy) pursue(dx, dy float64) {
	sum := math.Abs(dx) + math.Abs(dy)
	if sum == 0 {
		e.DX, e.DY = 0, 0
		return
	}

	e.DX = dx / sum * e.Speed
	e.DY = dy / sum * e.Speed

	if nx := e.X + e.DX; nx >= 0 && nx <= e.worldW-e.Size {
		e.X = nx
	} else {
		e.DX = 0
	}
	if ny := e.Y + e.DY; ny >= 0 && ny <= e.worldH-e.Size {
		e.Y = ny
	} else {
		e.DY = 0
	}
}

// spawnEnemies places the level's enemies uniformly at random, rejecting
// positions closer than the safe zone to the player spawn.
func spawnEnemies(cfg config.HopSquareConfig, level int, rng *rand.Rand) ([]*Enemy, error) {
	count := cfg.EnemyCount(level)
	sx, sy := SpawnPoint(cfg)
	maxX := cfg.World.Width - cfg.Enemies.Size
	maxY := cfg.World.Height - cfg.Enemies.Size
	safe := cfg.Enemies.SafeZone

	enemies := make([]*Enemy, 0, count)
	for len(enemies) < count {
		placed := false
		for attempt := 0; attempt < cfg.Enemies.MaxSpawnAttempts; attempt++ {
			x := float64(rng.Intn(maxX + 1))
			y := float64(rng.Intn(maxY + 1))
			if math.Hypot(x-sx, y-sy) < safe {
				continue
			}

			dir := 1.0
			if rng.Intn(2) == 0 {
				dir = -1
			}
			enemies = append(enemies, NewEnemy(cfg, level, x, y, dir))
			placed = true
			break
		}
		if !placed {
			return nil, errSpawn(len(enemies), cfg.Enemies.MaxSpawnAttempts)
		}
	}
	return enemies, nil
}
