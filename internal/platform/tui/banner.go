package tui

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/hopsquare/internal/core"
)

// Banner timings in seconds.
const (
	bannerSlideIn  = 0.5
	bannerHold     = 0.8
	bannerSlideOut = 0.4
)

// banner is the "LEVEL N" strip that drops in from the top after a level
// is completed, rests for a moment and falls off the bottom.
type banner struct {
	text string
	seq  *gween.Sequence
	row  float32
	done bool
}

func newLevelBanner(level, screenH int) *banner {
	rest := float32(screenH) / 3
	return &banner{
		text: fmt.Sprintf(" LEVEL %d ", level),
		seq: gween.NewSequence(
			gween.New(-1, rest, bannerSlideIn, ease.OutCubic),
			gween.New(rest, rest, bannerHold, ease.Linear),
			gween.New(rest, float32(screenH), bannerSlideOut, ease.InCubic),
		),
		row: -1,
	}
}

// update advances the animation by dt seconds and reports whether it has
// finished.
func (b *banner) update(dt float32) bool {
	if b.done {
		return true
	}
	row, _, done := b.seq.Update(dt)
	b.row = row
	b.done = done
	return done
}

// draw overlays the banner on the screen. Rows outside the screen are
// skipped.
func (b *banner) draw(dst *core.Screen) {
	y := int(b.row)
	if b.done || y < 0 || y >= dst.Height() {
		return
	}
	x := (dst.Width() - len(b.text)) / 2
	dst.DrawTextColored(core.Max(x, 0), y, b.text, core.ColorBrightYellow)
}
