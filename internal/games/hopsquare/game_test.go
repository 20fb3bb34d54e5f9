package hopsquare

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/hopsquare/internal/core"
	"github.com/vovakirdan/hopsquare/internal/registry"
)

func newTestGame(t *testing.T, g *Game) *Game {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = 12345
	g.Reset(cfg)
	require.NotNil(t, g.Session(), "session should start with the default config")
	return g
}

func TestGameRegistered(t *testing.T) {
	for _, id := range []string{IDClassic, IDFair} {
		g, err := registry.Create(id)
		require.NoError(t, err)
		assert.Equal(t, id, g.ID())
	}
}

func TestGameModes(t *testing.T) {
	classic := newTestGame(t, New())
	fair := newTestGame(t, NewFair())

	assert.False(t, classic.Session().Config().Platforms.Reachable)
	assert.True(t, fair.Session().Config().Platforms.Reachable)
}

func TestGameStepAndPause(t *testing.T) {
	g := newTestGame(t, New())

	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	g.Step(right)
	assert.Greater(t, g.Session().Player().X, 375.0)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	res := g.Step(pause)
	assert.True(t, res.State.Paused)

	x := g.Session().Player().X
	g.Step(right)
	assert.Equal(t, x, g.Session().Player().X, "paused games do not move")

	g.Step(pause)
	assert.False(t, g.State().Paused)
}

func TestGameStateScoreIsLevelReached(t *testing.T) {
	g := newTestGame(t, New())

	st := g.State()
	assert.Equal(t, 1, st.Score)
	assert.Equal(t, 1, st.Level)
	assert.False(t, st.GameOver)

	s := g.Session()
	isolate(s)
	platforms := s.Platforms()
	exit := platforms[len(platforms)-1]
	s.player.X = exit.X
	s.player.Y = exit.Y - s.player.Size

	interact := core.NewInputFrame()
	interact.Set(core.ActionInteract)
	res := g.Step(interact)

	assert.True(t, res.LevelChanged)
	assert.Equal(t, 2, res.State.Score)
	assert.Equal(t, 2, res.State.Level)
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, New())
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()

	assert.Contains(t, out, "Level: 1")
	assert.Contains(t, out, string(ExitChar))
	assert.Contains(t, out, string(PlayerChar))
	assert.Contains(t, out, string(EnemyChar))
	assert.Contains(t, screen.Row(23), strings.Repeat(string(FloorChar), 10))

	found := false
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			if c := screen.GetCell(x, y); c.Rune == PlayerChar && c.Color == core.ColorGreen {
				found = true
			}
		}
	}
	assert.True(t, found, "player drawn in green")
}
