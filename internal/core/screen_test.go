package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(40, 20)

	if s.Width() != 40 || s.Height() != 20 {
		t.Errorf("size = %dx%d, expected 40x20", s.Width(), s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("GetCell(%d, %d) = %+v, expected a blank cell", x, y, c)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 6)

	tests := []struct {
		name     string
		x, y     int
		expected rune
	}{
		{"inside", 4, 3, '@'},
		{"top-left", 0, 0, '@'},
		{"bottom-right", 9, 5, '@'},
		{"left of screen", -1, 3, ' '},
		{"right of screen", 10, 3, ' '},
		{"above screen", 4, -1, ' '},
		{"below screen", 4, 6, ' '},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s.Set(tc.x, tc.y, '@')
			if got := s.Get(tc.x, tc.y); got != tc.expected {
				t.Errorf("Get(%d, %d) = %q, expected %q", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestScreenClearDropsColor(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawRectColored(NewRect(0, 0, 6, 4), '▒', ColorMagenta)

	s.Clear()

	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Errorf("After Clear, GetCell(%d, %d) = %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	tests := []struct {
		name     string
		x        int
		text     string
		expected string
	}{
		{"fits", 1, "Lvl 3", " Lvl 3    "},
		{"clipped right", 7, "Hits 2", "       Hit"},
		{"clipped left", -3, "Level", "el        "},
		{"wide runes", 0, "♥♥♡", "♥♥♡       "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(10, 1)
			s.DrawText(tc.x, 0, tc.text)
			if got := s.Row(0); got != tc.expected {
				t.Errorf("Row(0) = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(21, 3)
	s.DrawTextCentered(1, "LEVEL 4")

	// (21 - 7) / 2
	if got := s.Row(1); got != "       LEVEL 4       " {
		t.Errorf("Row(1) = %q", got)
	}

	// Centering counts runes, not bytes.
	s.DrawTextCentered(2, "★★★")
	if s.Get(9, 2) != '★' || s.Get(11, 2) != '★' || s.Get(12, 2) != ' ' {
		t.Errorf("Row(2) = %q, expected stars in columns 9-11", s.Row(2))
	}
}

func TestScreenDrawRectClipsPlatform(t *testing.T) {
	s := NewScreen(10, 4)
	// A platform hanging off the right edge.
	s.DrawRectColored(NewRect(6, 2, 8, 1), '=', ColorGreen)

	if got := s.Row(2); got != "      ====" {
		t.Errorf("Row(2) = %q", got)
	}
	if c := s.GetCell(9, 2); c.Color != ColorGreen {
		t.Errorf("GetCell(9, 2).Color = %v, expected green", c.Color)
	}
	if s.Row(1) != strings.Repeat(" ", 10) || s.Row(3) != strings.Repeat(" ", 10) {
		t.Error("DrawRect should not touch neighbouring rows")
	}

	s.DrawRect(NewRect(0, 0, 2, 2), '#')
	if s.Get(1, 1) != '#' || s.Get(2, 1) != ' ' || s.GetCell(0, 0).Color != ColorDefault {
		t.Errorf("DrawRect filled %q %q", s.Row(0), s.Row(1))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4))

	expected := "┌────┐\n" +
		"│    │\n" +
		"│    │\n" +
		"└────┘"
	if got := s.String(); got != expected {
		t.Errorf("String() =\n%s\nexpected\n%s", got, expected)
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(8, 2)
	s.DrawHLine(-2, 0, 5, '-')
	s.DrawHLine(5, 1, 10, '_')

	if got := s.Row(0); got != "---     " {
		t.Errorf("Row(0) = %q", got)
	}
	if got := s.Row(1); got != "     ___" {
		t.Errorf("Row(1) = %q", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawText(0, 0, "L:1")
	s.Set(3, 2, '#')

	if got, expected := s.String(), "L:1 \n    \n   #"; got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawTextColored(0, 0, "HUD", ColorYellow)
	s.DrawText(0, 5, "floor")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 8x4", s.Width(), s.Height())
	}
	if c := s.GetCell(1, 0); c.Rune != 'U' || c.Color != ColorYellow {
		t.Errorf("GetCell(1, 0) = %+v, expected yellow 'U'", c)
	}

	// Rows cut off by the shrink do not come back.
	s.Resize(12, 8)
	if !strings.HasPrefix(s.Row(0), "HUD") {
		t.Errorf("Row(0) = %q, expected the HUD to survive", s.Row(0))
	}
	if got := s.Row(5); got != strings.Repeat(" ", 12) {
		t.Errorf("Row(5) = %q, expected blank", got)
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(6, 2)
	s.DrawTextColored(1, 1, "ab", ColorRed)

	if got := s.Row(1); got != " ab   " {
		t.Errorf("Row(1) = %q", got)
	}
	for _, y := range []int{-1, 2} {
		if got := s.Row(y); got != "      " {
			t.Errorf("Row(%d) = %q, expected spaces", y, got)
		}
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(10, 3)
	s.SetColored(1, 1, '#', ColorGreen)
	s.DrawTextColored(3, 2, "ab", ColorRed)

	if c := s.GetCell(1, 1); c.Rune != '#' || c.Color != ColorGreen {
		t.Errorf("GetCell(1, 1) = %+v, expected green '#'", c)
	}
	if c := s.GetCell(4, 2); c.Rune != 'b' || c.Color != ColorRed {
		t.Errorf("GetCell(4, 2) = %+v, expected red 'b'", c)
	}

	// Plain Set resets the color
	s.Set(1, 1, 'x')
	if c := s.GetCell(1, 1); c.Color != ColorDefault {
		t.Errorf("Set should reset color, got %v", c.Color)
	}

	if c := s.GetCell(-1, 0); c.Rune != ' ' {
		t.Errorf("Out of bounds GetCell should be blank, got %q", c.Rune)
	}
}
