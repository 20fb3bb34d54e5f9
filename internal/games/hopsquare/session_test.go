package hopsquare

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/hopsquare/internal/config"
)

const tick = time.Second / 60

func newTestSession(t *testing.T, level int) *Session {
	t.Helper()
	s, err := NewSession(config.DefaultHopSquareConfig(), level, 7)
	require.NoError(t, err)
	return s
}

// isolate removes enemies and the power-up so a test controls every
// collision itself.
func isolate(s *Session) {
	s.enemies = nil
	s.powerUp = nil
}

func TestNewSessionBuildsLevel(t *testing.T) {
	s := newTestSession(t, 1)

	assert.Equal(t, PhaseRunning, s.Phase())
	assert.Equal(t, 1, s.Level())
	assert.Len(t, s.Platforms(), 6)
	assert.Len(t, s.Enemies(), 1)

	pu, ok := s.PowerUp()
	require.True(t, ok, "every level starts with a power-up")
	assert.True(t, pu.Active)

	platforms := s.Platforms()
	onPlatform := false
	for _, p := range platforms[1 : len(platforms)-1] {
		if pu.Y == p.Y-pu.Size && pu.X >= p.X && pu.X+pu.Size <= p.X+150 {
			onPlatform = true
		}
	}
	assert.True(t, onPlatform, "power-up rests on a middle platform")
}

func TestNewSessionRejectsBadInput(t *testing.T) {
	cfg := config.DefaultHopSquareConfig()
	cfg.World.Width = 100
	_, err := NewSession(cfg, 1, 1)
	assert.ErrorIs(t, err, config.ErrInvalidConfiguration)

	_, err = NewSession(config.DefaultHopSquareConfig(), 0, 1)
	assert.ErrorIs(t, err, config.ErrInvalidConfiguration)

	cfg = config.DefaultHopSquareConfig()
	cfg.Enemies.SafeZone = 5000
	cfg.Enemies.MaxSpawnAttempts = 5
	_, err = NewSession(cfg, 1, 1)
	assert.ErrorIs(t, err, config.ErrInvalidConfiguration)
}

func TestSessionDeterministic(t *testing.T) {
	a := newTestSession(t, 3)
	b := newTestSession(t, 3)

	assert.Equal(t, a.Platforms(), b.Platforms())
	assert.Equal(t, a.Enemies(), b.Enemies())

	in := []Input{{Right: true}, {Jump: true}, {Left: true}, {}}
	for i := 0; i < 300; i++ {
		now := time.Duration(i+1) * tick
		sa := a.Tick(in[i%len(in)], now)
		sb := b.Tick(in[i%len(in)], now)
		require.Equal(t, sa, sb, "tick %d", i)
	}
	assert.Equal(t, a.Player(), b.Player())
}

func TestPowerUpOneShot(t *testing.T) {
	s := newTestSession(t, 1)
	isolate(s)

	p := s.player
	s.powerUp = &PowerUp{X: p.X, Y: p.Y, Size: 30, Active: true}

	st := s.Tick(Input{}, tick)
	assert.True(t, st.Events.PowerUpCollected)
	assert.True(t, st.PoweredUp)
	_, ok := s.PowerUp()
	assert.False(t, ok, "power-up consumed")

	// Even with the effect gone, there is nothing left to collect.
	p.PoweredUp = false
	st = s.Tick(Input{}, 2*tick)
	assert.False(t, st.Events.PowerUpCollected)
	assert.False(t, st.PoweredUp)
}

func TestPowerUpNotCollectedWhilePowered(t *testing.T) {
	s := newTestSession(t, 1)
	isolate(s)

	p := s.player
	p.ActivatePowerUp(0)
	s.powerUp = &PowerUp{X: p.X, Y: p.Y, Size: 30, Active: true}

	st := s.Tick(Input{}, tick)
	assert.False(t, st.Events.PowerUpCollected)
	_, ok := s.PowerUp()
	assert.True(t, ok)
}

func TestPowerUpExpiresThroughTicks(t *testing.T) {
	s := newTestSession(t, 1)
	isolate(s)

	s.player.ActivatePowerUp(0)
	st := s.Tick(Input{}, 2*time.Second)
	assert.True(t, st.PoweredUp)

	st = s.Tick(Input{}, 2*time.Second+tick)
	assert.False(t, st.PoweredUp)
}

func TestGameOverAtExactlyThreeHits(t *testing.T) {
	s := newTestSession(t, 4)
	isolate(s)

	p := s.player
	s.enemies = []*Enemy{NewEnemy(s.cfg, 4, p.X+5, p.Y+5, 1)}

	st := s.Tick(Input{}, tick)
	assert.True(t, st.Events.PlayerHit)
	assert.Equal(t, 1, st.TimesHit)

	st = s.Tick(Input{}, 2*tick)
	assert.Equal(t, 2, st.TimesHit)
	assert.Equal(t, PhaseRunning, st.Phase, "two hits are survivable")
	assert.Equal(t, 4, st.Level)

	st = s.Tick(Input{}, 3*tick)
	assert.Equal(t, 3, st.TimesHit)
	assert.Equal(t, PhaseGameOver, st.Phase)
	assert.Equal(t, 1, st.Level, "level resets on game over")
	assert.Equal(t, 4, st.LevelReached)

	// Terminal: further ticks change nothing.
	st = s.Tick(Input{Right: true}, 4*tick)
	assert.Equal(t, 3, st.TimesHit)
	assert.Equal(t, PhaseGameOver, st.Phase)
}

func TestPoweredUpPlayerDestroysEnemies(t *testing.T) {
	s := newTestSession(t, 1)
	isolate(s)

	p := s.player
	p.ActivatePowerUp(0)
	far := NewEnemy(s.cfg, 1, 50, 50, 1)
	s.enemies = []*Enemy{
		NewEnemy(s.cfg, 1, p.X+5, p.Y+5, 1),
		far,
		NewEnemy(s.cfg, 1, p.X+10, p.Y+10, 1),
	}

	st := s.Tick(Input{}, tick)
	assert.Equal(t, 2, st.Events.EnemiesDestroyed)
	assert.False(t, st.Events.PlayerHit)
	assert.Zero(t, st.TimesHit)

	left := s.Enemies()
	require.Len(t, left, 1)
	assert.Equal(t, far.X, left[0].X)
}

func TestExitRequiresInteract(t *testing.T) {
	s := newTestSession(t, 1)
	isolate(s)

	platforms := s.Platforms()
	exit := platforms[len(platforms)-1]
	p := s.player
	p.X = exit.X
	p.Y = exit.Y - p.Size
	p.OnGround = true

	st := s.Tick(Input{}, tick)
	assert.False(t, st.Events.LevelCompleted, "standing on the exit is not enough")
	assert.Equal(t, 1, st.Level)

	st = s.Tick(Input{Interact: true}, 2*tick)
	assert.True(t, st.Events.LevelCompleted)
	assert.Equal(t, PhaseLevelComplete, st.Phase)
	assert.Equal(t, 2, st.Level)
	assert.Equal(t, 2, st.LevelReached)

	// The next level is already running with a fresh layout and player.
	assert.Equal(t, PhaseRunning, s.Phase())
	assert.NotEqual(t, platforms, s.Platforms())
	sx, sy := SpawnPoint(s.cfg)
	assert.Equal(t, sx, s.Player().X)
	assert.Equal(t, sy, s.Player().Y)
	assert.Zero(t, s.Player().TimesHit)
	_, ok := s.PowerUp()
	assert.True(t, ok)
}

func TestExitOutOfReach(t *testing.T) {
	s := newTestSession(t, 1)
	isolate(s)

	st := s.Tick(Input{Interact: true}, tick)
	assert.False(t, st.Events.LevelCompleted, "spawn is nowhere near the exit")
	assert.Equal(t, PhaseRunning, st.Phase)
}

func TestOutOfBoundsIsLoggedAndClamped(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	s, err := NewSession(config.DefaultHopSquareConfig(), 1, 7, WithLogger(logger))
	require.NoError(t, err)
	isolate(s)

	e := NewEnemy(s.cfg, 1, 100, 900, 1)
	s.enemies = []*Enemy{e}
	s.Tick(Input{}, tick)

	assert.Contains(t, buf.String(), "enemy out of bounds")
	assert.LessOrEqual(t, s.Enemies()[0].Y, float64(s.cfg.World.Height-s.cfg.Enemies.Size))
}

func TestIdleSessionEndToEnd(t *testing.T) {
	cfg := config.DefaultHopSquareConfig()
	cfg.Enemies.BaseCount = 3

	for seed := int64(1); seed <= 20; seed++ {
		s, err := NewSession(cfg, 1, seed)
		require.NoError(t, err)

		p := s.Player()
		require.Equal(t, 375.0, p.X)
		require.Equal(t, 740.0, p.Y)

		enemies := s.Enemies()
		require.Len(t, enemies, 3)
		for _, e := range enemies {
			require.GreaterOrEqual(t, math.Hypot(e.X-p.X, e.Y-p.Y), 150.0)
		}

		var st State
		for i := 0; i < 200; i++ {
			st = s.Tick(Input{}, time.Duration(i+1)*tick)
			require.LessOrEqual(t, st.TimesHit, 3)
			if st.Phase == PhaseGameOver {
				break
			}
		}

		p = s.Player()
		assert.Equal(t, 375.0, p.X, "seed %d", seed)
		assert.Equal(t, 750.0, p.Y, "seed %d", seed)
		assert.True(t, p.OnGround, "seed %d", seed)
		if st.Phase == PhaseGameOver {
			assert.Equal(t, 3, st.TimesHit)
			assert.Equal(t, 1, st.Level)
		}
	}
}
