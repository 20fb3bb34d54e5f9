package hopsquare

import "github.com/vovakirdan/hopsquare/internal/core"

// Body is the square physics shape shared by the player and enemies.
// X and Y are the top-left corner, DX and DY the per-tick velocity.
type Body struct {
	X, Y   float64
	DX, DY float64
	Size   float64
}

// Rect returns the body's collision rectangle.
func (b Body) Rect() core.RectF {
	return core.NewRectF(b.X, b.Y, b.Size, b.Size)
}

// InBounds reports whether the body lies fully inside a w x h window.
func (b Body) InBounds(w, h float64) bool {
	return b.X >= 0 && b.X <= w-b.Size && b.Y >= 0 && b.Y <= h-b.Size
}

// clampX keeps the body inside the window horizontally.
func (b *Body) clampX(w float64) {
	b.X = core.ClampF(b.X, 0, w-b.Size)
}
