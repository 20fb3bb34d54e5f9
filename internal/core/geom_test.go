package core

import "testing"

func TestRectIntersects(t *testing.T) {
	// Cell-space boxes as the renderer sees them: a 5x3 player sprite
	// against platform strips one row high.
	player := NewRect(10, 5, 5, 3)

	tests := []struct {
		name     string
		other    Rect
		expected bool
	}{
		{"platform under feet", NewRect(8, 8, 15, 1), false},
		{"platform through body", NewRect(8, 7, 15, 1), true},
		{"platform ends at left side", NewRect(0, 6, 10, 1), false},
		{"platform starts at right side", NewRect(15, 6, 10, 1), false},
		{"one cell overlap", NewRect(14, 7, 10, 1), true},
		{"enemy inside sprite", NewRect(11, 6, 2, 1), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := player.Intersects(tc.other); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.other.Intersects(player); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(3, 12, 9, 4)

	if r.Right() != 12 {
		t.Errorf("Right() = %d, expected 12", r.Right())
	}
	if r.Bottom() != 16 {
		t.Errorf("Bottom() = %d, expected 16", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 7 || cy != 14 {
		t.Errorf("Center() = (%d, %d), expected (7, 14)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{40, 0, 79, 40},
		{-3, 0, 79, 0},
		{85, 0, 79, 79},
		{79, 0, 79, 79},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	// Enemy x range in the default 800 wide world.
	const maxX = 760.0

	tests := []struct {
		name          string
		val, expected float64
	}{
		{"inside", 402.1, 402.1},
		{"overshoot right", 759.4 + 2.1, maxX},
		{"overshoot left", 1.3 - 2.1, 0},
		{"exactly on edge", maxX, maxX},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampF(tc.val, 0, maxX); got != tc.expected {
				t.Errorf("ClampF(%v, 0, %v) = %v, expected %v", tc.val, maxX, got, tc.expected)
			}
		})
	}
}

func TestMinMax(t *testing.T) {
	if Min(-2, 7) != -2 || Min(7, -2) != -2 {
		t.Error("Min should pick -2")
	}
	if Max(-2, 7) != 7 || Max(7, -2) != 7 {
		t.Error("Max should pick 7")
	}
}

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{"overlapping", NewRectF(0, 0, 50, 50), NewRectF(40, 40, 20, 20), true},
		{"touching edge", NewRectF(0, 0, 50, 50), NewRectF(50, 0, 10, 10), false},
		{"touching top", NewRectF(0, 0, 50, 50), NewRectF(0, 50, 150, 20), false},
		{"sub-unit overlap", NewRectF(0, 0, 50, 50), NewRectF(49.5, 10, 10, 10), true},
		{"far apart", NewRectF(0, 0, 10, 10), NewRectF(400, 400, 10, 10), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectFInflate(t *testing.T) {
	// Player hovering just above the exit platform.
	exit := NewRectF(300, 150, 150, 20)
	player := NewRectF(340, 97, 50, 50)

	if player.Intersects(exit) {
		t.Fatal("player 3 units above the exit should not touch it")
	}

	tests := []struct {
		reach    float64
		expected bool
	}{
		{0, false},
		{3, false}, // edges meet exactly
		{3.5, true},
		{5, true},
	}

	for _, tc := range tests {
		if got := player.Inflate(tc.reach).Intersects(exit); got != tc.expected {
			t.Errorf("Inflate(%v).Intersects(exit) = %v, expected %v", tc.reach, got, tc.expected)
		}
	}

	r := NewRectF(10, 20, 50, 50).Inflate(5)
	if r.X != 5 || r.Y != 15 || r.W != 60 || r.H != 60 {
		t.Errorf("Inflate(5) = %+v", r)
	}
	if back := r.Inflate(-5); back != NewRectF(10, 20, 50, 50) {
		t.Errorf("Inflate(-5) = %+v, expected the original rect", back)
	}
}

func TestRectFOffset(t *testing.T) {
	tests := []struct {
		name          string
		dx, dy        float64
		right, bottom float64
		hitsObstacle  bool
	}{
		{"still", 0, 0, 60, 70, false},
		{"step right", 5, 0, 65, 70, false},
		{"fall onto obstacle", 0, 15, 60, 85, true},
		{"jump away", -2.5, -15, 57.5, 55, false},
	}

	base := NewRectF(10, 20, 50, 50)
	obstacle := NewRectF(0, 80, 150, 20)

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			moved := base.Offset(tc.dx, tc.dy)
			if moved.W != base.W || moved.H != base.H {
				t.Errorf("Offset() changed size to %vx%v", moved.W, moved.H)
			}
			if moved.Right() != tc.right || moved.Bottom() != tc.bottom {
				t.Errorf("Offset() edges = (%v, %v), expected (%v, %v)", moved.Right(), moved.Bottom(), tc.right, tc.bottom)
			}
			if got := moved.Intersects(obstacle); got != tc.hitsObstacle {
				t.Errorf("Intersects(obstacle) = %v, expected %v", got, tc.hitsObstacle)
			}
		})
	}
}
