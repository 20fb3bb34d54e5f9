package hopsquare

import (
	"fmt"
	"math"

	"github.com/vovakirdan/hopsquare/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	EnemyChar    = '▓'
	PlatformChar = '▀'
	ExitChar     = '▄'
	PowerUpChar  = '●'
	FloorChar    = '─'
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// viewport maps world units onto screen cells. The playfield is stretched
// to fill the screen below the HUD; levels taller than the window extend
// the top of the view so the exit stays visible.
type viewport struct {
	top    float64
	scaleX float64
	scaleY float64
}

func newViewport(s *Session, screenW, screenH int) viewport {
	cfg := s.Config()
	top := 0.0
	for _, p := range s.Platforms() {
		top = min(top, p.Y-float64(cfg.Player.Size))
	}
	rows := max(screenH-hudRows, 1)
	return viewport{
		top:    top,
		scaleX: float64(screenW) / float64(cfg.World.Width),
		scaleY: float64(rows) / (float64(cfg.World.Height) - top),
	}
}

// cell converts a world rectangle to the screen cells it covers, at least
// one cell in each direction.
func (v viewport) cell(r core.RectF) core.Rect {
	x0 := int(math.Floor(r.X * v.scaleX))
	x1 := int(math.Ceil(r.Right() * v.scaleX))
	y0 := int(math.Floor((r.Y - v.top) * v.scaleY))
	y1 := int(math.Ceil((r.Bottom() - v.top) * v.scaleY))
	return core.NewRect(x0, y0+hudRows, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.session == nil {
		msg := "invalid configuration"
		if g.err != nil {
			msg = g.err.Error()
		}
		g.drawCenteredMessage(dst, "CANNOT START", msg)
		return
	}

	s := g.session
	cfg := s.Config()
	v := newViewport(s, dst.Width(), dst.Height())

	// Floor
	dst.DrawHLine(0, dst.Height()-1, dst.Width(), FloorChar)

	// Platforms, the exit highlighted
	platforms := s.Platforms()
	for i, p := range platforms {
		r := v.cell(core.NewRectF(p.X, p.Y, float64(cfg.Platforms.Width), float64(cfg.Platforms.Height)))
		if i == len(platforms)-1 {
			dst.DrawRectColored(r, ExitChar, core.ColorBrightGreen)
			dst.DrawTextColored(r.X, r.Y-1, "EXIT", core.ColorBrightGreen)
			continue
		}
		dst.DrawRectColored(r, PlatformChar, core.ColorGray)
	}

	if pu, ok := s.PowerUp(); ok {
		dst.DrawRectColored(v.cell(pu.Rect()), PowerUpChar, core.ColorYellow)
	}

	for _, e := range s.Enemies() {
		dst.DrawRectColored(v.cell(e.Rect()), EnemyChar, core.ColorRed)
	}

	player := s.Player()
	playerColor := core.ColorGreen
	if player.PoweredUp {
		playerColor = core.ColorBrightBlue
	}
	dst.DrawRectColored(v.cell(player.Rect()), PlayerChar, playerColor)

	g.drawHUD(dst, player)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if s.Phase() == PhaseGameOver {
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Reached level %d  |  R restart  B back", s.LevelReached()))
	}
}

// drawHUD draws the status line.
func (g *Game) drawHUD(dst *core.Screen, player Player) {
	s := g.session
	left := fmt.Sprintf(" Level: %d  Hits: %d/%d ", s.Level(), player.TimesHit, s.Config().Session.MaxHits)
	dst.DrawText(1, 0, left)

	right := fmt.Sprintf(" Best: %d ", s.LevelReached())
	color := core.ColorDefault
	if player.PoweredUp {
		right = fmt.Sprintf(" Power: %.1fs ", player.PowerUpRemaining(g.now()).Seconds())
		color = core.ColorYellow
	}
	dst.DrawTextColored(dst.Width()-len(right)-1, 0, right, color)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
