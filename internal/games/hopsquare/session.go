package hopsquare

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hopsquare/internal/config"
)

// Phase is the session's state machine position.
type Phase int

const (
	// PhaseRunning accepts input and advances the simulation.
	PhaseRunning Phase = iota
	// PhaseGameOver is terminal. Tick becomes a no-op.
	PhaseGameOver
	// PhaseLevelComplete is only ever reported for the tick on which the
	// exit was used; the session is already running the next level.
	PhaseLevelComplete
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game over"
	case PhaseLevelComplete:
		return "level complete"
	default:
		return "unknown"
	}
}

// Events records what happened during a single tick.
type Events struct {
	PowerUpCollected bool
	PlayerHit        bool
	EnemiesDestroyed int
	LevelCompleted   bool
}

// State is returned by Tick for the controller to react to.
type State struct {
	Phase        Phase
	Level        int
	LevelReached int // Highest level played this session
	TimesHit     int
	PoweredUp    bool
	Events       Events
}

// Option configures a Session.
type Option func(*Session)

// WithLogger routes session logs to l. Sessions are silent by default.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// Session owns one run: the current level's platforms, the player, its
// enemies and the optional power-up.
type Session struct {
	cfg          config.HopSquareConfig
	level        int
	levelReached int
	phase        Phase
	err          error

	rng     *rand.Rand
	gen     *Generator
	field   *PlatformField
	player  *Player
	enemies []*Enemy
	powerUp *PowerUp

	logger *log.Logger
}

// NewSession validates cfg and builds the given level.
// Configuration problems are reported as config.ErrInvalidConfiguration.
func NewSession(cfg config.HopSquareConfig, level int, seed int64, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if level < 1 {
		return nil, fmt.Errorf("hopsquare: %w: level %d", config.ErrInvalidConfiguration, level)
	}

	s := &Session{
		cfg:          cfg,
		level:        level,
		levelReached: level,
		rng:          rand.New(rand.NewSource(seed)),
		gen:          NewGenerator(cfg),
		logger:       log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.startLevel(); err != nil {
		return nil, err
	}
	return s, nil
}

// startLevel regenerates everything that belongs to the current level.
func (s *Session) startLevel() error {
	platforms, err := s.gen.Generate(s.rng)
	if err != nil {
		return err
	}
	s.field = NewPlatformField(platforms,
		float64(s.cfg.Platforms.Width), float64(s.cfg.Platforms.Height),
		s.cfg.World.Width, s.cfg.World.Height)

	s.powerUp = placePowerUp(s.cfg, platforms, s.rng)

	enemies, err := spawnEnemies(s.cfg, s.level, s.rng)
	if err != nil {
		return err
	}
	s.enemies = enemies
	s.player = NewPlayer(s.cfg)
	s.phase = PhaseRunning

	s.logger.Debug("level started", "level", s.level, "platforms", len(platforms), "enemies", len(enemies))
	return nil
}

// Tick advances the session by one fixed step. now is the monotonic time
// since the session started and drives power-up expiry.
//
// Order: input, player physics, power-up expiry, each enemy in order, then
// collisions with the power-up, the enemies and finally the exit.
func (s *Session) Tick(in Input, now time.Duration) State {
	if s.phase == PhaseGameOver {
		return s.state(Events{})
	}

	var ev Events
	p := s.player

	p.ApplyInput(in)
	p.Integrate(s.field)
	p.TickPowerUpExpiry(now)

	for _, e := range s.enemies {
		e.Update(p.Body)
	}
	s.checkBounds()

	// Power-up
	if s.powerUp != nil && !p.PoweredUp && p.Rect().Intersects(s.powerUp.Rect()) {
		p.ActivatePowerUp(now)
		s.powerUp = nil
		ev.PowerUpCollected = true
	}

	// Enemies
	playerRect := p.Rect()
	remaining := s.enemies[:0]
	for i, e := range s.enemies {
		if !playerRect.Intersects(e.Rect()) {
			remaining = append(remaining, e)
			continue
		}
		if p.PoweredUp {
			ev.EnemiesDestroyed++
			continue
		}

		remaining = append(remaining, e)
		p.TimesHit++
		ev.PlayerHit = true
		if p.TimesHit >= s.cfg.Session.MaxHits {
			remaining = append(remaining, s.enemies[i+1:]...)
			s.enemies = remaining
			s.gameOver()
			return s.state(ev)
		}
	}
	s.enemies = remaining

	// Exit
	if in.Interact {
		exit, ok := s.field.Exit()
		if ok && playerRect.Inflate(s.cfg.Session.ExitReach).Intersects(exit) {
			ev.LevelCompleted = true
			s.advance()
			st := s.state(ev)
			if s.phase == PhaseRunning {
				st.Phase = PhaseLevelComplete
			}
			return st
		}
	}

	return s.state(ev)
}

// advance moves to the next level in place.
func (s *Session) advance() {
	s.level++
	s.levelReached = max(s.levelReached, s.level)
	s.logger.Debug("level complete", "next", s.level)

	if err := s.startLevel(); err != nil {
		s.err = err
		s.logger.Error("cannot build level", "level", s.level, "err", err)
		s.gameOver()
	}
}

func (s *Session) gameOver() {
	s.logger.Info("game over", "reached", s.levelReached, "hits", s.player.TimesHit)
	s.phase = PhaseGameOver
	s.level = 1
}

// checkBounds catches entities that escaped the window after their own
// clamps. This indicates a logic bug; it is logged and corrected.
func (s *Session) checkBounds() {
	w := float64(s.cfg.World.Width)
	h := float64(s.cfg.World.Height)

	p := s.player
	if p.X < 0 || p.X > w-p.Size || p.Y > h-p.Size {
		s.logger.Warn("player out of bounds", "x", p.X, "y", p.Y)
		p.clampX(w)
		p.Y = min(p.Y, h-p.Size)
	}

	for i, e := range s.enemies {
		if e.InBounds(w, h) {
			continue
		}
		s.logger.Warn("enemy out of bounds", "index", i, "x", e.X, "y", e.Y)
		e.clampX(w)
		e.Y = max(0, min(e.Y, h-e.Size))
	}
}

func (s *Session) state(ev Events) State {
	return State{
		Phase:        s.phase,
		Level:        s.level,
		LevelReached: s.levelReached,
		TimesHit:     s.player.TimesHit,
		PoweredUp:    s.player.PoweredUp,
		Events:       ev,
	}
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Level returns the level being played (1 after a game over).
func (s *Session) Level() int {
	return s.level
}

// LevelReached returns the highest level played.
func (s *Session) LevelReached() int {
	return s.levelReached
}

// Err returns the error that ended the session, if any.
func (s *Session) Err() error {
	return s.err
}

// Config returns the session's configuration.
func (s *Session) Config() config.HopSquareConfig {
	return s.cfg
}

// Player returns a copy of the player.
func (s *Session) Player() Player {
	return *s.player
}

// Enemies returns copies of the live enemies in spawn order.
func (s *Session) Enemies() []Enemy {
	out := make([]Enemy, len(s.enemies))
	for i, e := range s.enemies {
		out[i] = *e
	}
	return out
}

// Platforms returns the level's platforms, the exit last.
func (s *Session) Platforms() []Platform {
	return s.field.Platforms()
}

// PowerUp returns the pickup while it is still on the level.
func (s *Session) PowerUp() (PowerUp, bool) {
	if s.powerUp == nil {
		return PowerUp{}, false
	}
	return *s.powerUp, true
}

func errSpawn(placed, attempts int) error {
	return fmt.Errorf("hopsquare: %w: enemy %d not placed outside the safe zone after %d attempts",
		config.ErrInvalidConfiguration, placed+1, attempts)
}
