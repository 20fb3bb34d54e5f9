// Package hopsquare implements Hop Square, a single-screen platformer.
// The player climbs procedurally generated platforms to the exit while
// enemies patrol and close in when the player gets near. A one-shot
// power-up lets the player destroy enemies for a short time.
//
// Session holds the pure simulation. Game adapts it to the game
// registry so the terminal and SSH frontends can run it.
package hopsquare

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hopsquare/internal/config"
	"github.com/vovakirdan/hopsquare/internal/core"
	"github.com/vovakirdan/hopsquare/internal/registry"
)

// Game IDs for the two generation modes.
const (
	IDClassic = "hopsquare"
	IDFair    = "hopsquare_fair"
)

// configPath stores the custom config path set via CLI
var configPath string

// startLevel overrides the configured start level when positive
var startLevel int

// logger receives session logs; silent unless the CLI sets one
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetStartLevel sets the level new games start at. Zero uses the config.
func SetStartLevel(level int) {
	startLevel = level
}

// SetLogger sets the logger passed to new sessions.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Game implements registry.Game on top of a Session.
type Game struct {
	id        string
	title     string
	reachable bool

	runtime   core.RuntimeConfig
	cfg       config.HopSquareConfig
	session   *Session
	err       error // Set when no session could be built
	last      State
	tickCount int
	paused    bool
}

// New creates a classic Hop Square game.
func New() *Game {
	return &Game{id: IDClassic, title: "Hop Square"}
}

// NewFair creates a game whose platforms are always reachable.
func NewFair() *Game {
	return &Game{id: IDFair, title: "Hop Square (fair)", reachable: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset loads the configuration and starts a new session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.tickCount = 0
	g.paused = false
	g.err = nil

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultHopSquareConfig()
	}
	if g.reachable {
		cfg.Platforms.Reachable = true
	}
	g.cfg = cfg

	level := cfg.Session.StartLevel
	if startLevel > 0 {
		level = startLevel
	}

	session, err := NewSession(cfg, level, runtime.Seed, WithLogger(logger))
	if err != nil {
		logger.Error("cannot start session", "game", g.id, "err", err)
		g.session = nil
		g.err = err
		return
	}
	g.session = session
	g.last = session.state(Events{})
}

// Step maps platform actions to session input and advances one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil || g.session.Phase() == PhaseGameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.last = g.session.Tick(Input{
		Left:     in.Has(core.ActionLeft),
		Right:    in.Has(core.ActionRight),
		Jump:     in.Has(core.ActionJump),
		Interact: in.Has(core.ActionInteract),
	}, g.now())

	return core.StepResult{
		State:        g.State(),
		LevelChanged: g.last.Events.LevelCompleted,
	}
}

// now derives session time from the tick count.
func (g *Game) now() time.Duration {
	return time.Duration(g.tickCount) * config.TickDuration(g.runtime.TickRate)
}

// Session exposes the running session, nil if it failed to start.
func (g *Game) Session() *Session {
	return g.session
}

// State returns the current game state. The score is the highest level
// reached.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{GameOver: true}
	}
	return core.GameState{
		Score:    g.session.LevelReached(),
		Level:    g.session.Level(),
		GameOver: g.session.Phase() == PhaseGameOver,
		Paused:   g.paused,
	}
}

// Register both modes with the registry
func init() {
	registry.Register(IDClassic, func() registry.Game {
		return New()
	})
	registry.Register(IDFair, func() registry.Game {
		return NewFair()
	})
}
