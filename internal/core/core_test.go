package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != "" {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenStyledCells(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetColored(2, 1, '@', "#ff0000")
	if c := s.GetCell(2, 1); c.Rune != '@' || c.Color != "#ff0000" {
		t.Errorf("GetCell(2, 1) = %+v, expected '@' in red", c)
	}

	s.Tint(2, 1, "#00ff00")
	if c := s.GetCell(2, 1); c.Rune != '@' || c.Color != "#00ff00" {
		t.Errorf("Tint should keep the rune, got %+v", c)
	}

	// Out of bounds is silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Tint(0, 100, "#000000")
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenText(t *testing.T) {
	s := NewScreen(12, 3)
	s.DrawTextCentered(1, "SCORE")
	s.DrawTextColored(0, 0, "★x", "#ffffff")

	if got := s.Row(1); got != "   SCORE    " {
		t.Errorf("Row(1) = %q", got)
	}
	if s.Get(1, 0) != 'x' {
		t.Errorf("Multi-byte runes should occupy one cell, got %q", s.Get(1, 0))
	}

	lines := strings.Split(s.String(), "\n")
	if len(lines) != 3 {
		t.Errorf("String() should have 3 lines, got %d", len(lines))
	}
}

func TestScreenBoxAndResize(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4))

	if s.Get(0, 0) != '┌' || s.Get(5, 3) != '┘' || s.Get(2, 0) != '─' || s.Get(0, 2) != '│' {
		t.Errorf("Unexpected box:\n%s", s.String())
	}

	s.Resize(3, 2)
	if s.Width() != 3 || s.Height() != 2 || s.Get(0, 0) != ' ' {
		t.Error("Resize should reallocate and clear")
	}
}

func TestViewportMapping(t *testing.T) {
	v := NewViewport(800, 600, NewRect(0, 2, 80, 20))

	tests := []struct {
		name   string
		x, y   float64
		cx, cy int
	}{
		{"origin", 0, 0, 0, 2},
		{"center", 400, 300, 40, 12},
		{"last cell", 799, 599, 79, 21},
		{"below canvas", 400, 630, 40, 23},
		{"left of canvas", -5, 0, -1, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cx, cy := v.ToCell(tc.x, tc.y)
			if cx != tc.cx || cy != tc.cy {
				t.Errorf("ToCell(%v, %v) = (%d, %d), expected (%d, %d)", tc.x, tc.y, cx, cy, tc.cx, tc.cy)
			}
		})
	}

	if got := v.SpanX(100); got != 10 {
		t.Errorf("SpanX(100) = %d, expected 10", got)
	}
	if got := v.SpanY(1); got != 1 {
		t.Errorf("SpanY should be at least 1, got %d", got)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-5, 0, 10) != 0 || Clamp(15, 0, 10) != 10 || Clamp(5, 0, 10) != 5 {
		t.Error("Clamp out of range")
	}
	if ClampF(1.5, 0, 1) != 1 || ClampF(-0.5, 0, 1) != 0 || ClampF(0.25, 0, 1) != 0.25 {
		t.Error("ClampF out of range")
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)

	if !f.Has(ActionLeft) || f.Has(ActionRight) {
		t.Error("Has() should report only set actions")
	}

	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear() should remove all actions")
	}

	var zero InputFrame
	if zero.Has(ActionPause) {
		t.Error("Zero frame should have no actions")
	}
	zero.Set(ActionPause)
	if !zero.Has(ActionPause) {
		t.Error("Set() on zero frame should allocate")
	}

	if ActionConfirm.String() != "Confirm" || Action(99).String() != "Unknown" {
		t.Error("Unexpected action names")
	}
}
