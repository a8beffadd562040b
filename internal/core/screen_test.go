package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(10, 5)

	if s.Width() != 10 {
		t.Errorf("Width() = %d, expected 10", s.Width())
	}
	if s.Height() != 5 {
		t.Errorf("Height() = %d, expected 5", s.Height())
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("new screen not blank at (%d,%d)", x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '#')
	if s.Get(3, 2) != '#' {
		t.Errorf("Get(3,2) = %q, expected '#'", s.Get(3, 2))
	}

	// Out of bounds writes are silent, reads return a blank.
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')
	if s.Get(-1, 0) != ' ' || s.Get(10, 0) != ' ' || s.Get(0, 5) != ' ' {
		t.Error("out-of-bounds Get should return a blank rune")
	}
}

func TestScreenSetWithColor(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetWithColor(4, 1, 'o', ColorYellow)
	cell := s.GetCell(4, 1)
	if cell.Rune != 'o' {
		t.Errorf("GetCell rune = %q, expected 'o'", cell.Rune)
	}
	if cell.Color != ColorYellow {
		t.Errorf("GetCell color = %v, expected ColorYellow", cell.Color)
	}

	// Plain Set leaves the default color.
	s.Set(5, 1, '#')
	if s.GetCell(5, 1).Color != ColorDefault {
		t.Error("Set should leave the default color")
	}

	if s.GetCell(-1, -1).Rune != ' ' {
		t.Error("out-of-bounds GetCell should return a blank cell")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 5)
	s.SetWithColor(1, 1, '#', ColorRed)
	s.Clear()

	if s.Get(1, 1) != ' ' {
		t.Error("Clear should blank every cell")
	}
	if s.GetCell(1, 1).Color != ColorDefault {
		t.Error("Clear should reset the color")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, '#')

	s.Resize(20, 10)
	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("size = %dx%d, expected 20x10", s.Width(), s.Height())
	}
	if s.Get(2, 2) != '#' {
		t.Error("Resize should preserve existing content")
	}

	s.Resize(3, 3)
	if s.Get(2, 2) != '#' {
		t.Error("shrinking should keep cells still in range")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hi")

	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Error("DrawText should place runes left to right")
	}

	// Text running off the edge is clipped, not wrapped.
	s.DrawText(8, 0, "abcd")
	if s.Get(8, 0) != 'a' || s.Get(9, 0) != 'b' {
		t.Error("DrawText should draw the in-range prefix")
	}
	if s.Get(0, 1) == 'c' {
		t.Error("DrawText must not wrap to the next row")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)
	s.DrawTextCentered(1, "abc")

	if s.Get(4, 1) != 'a' || s.Get(5, 1) != 'b' || s.Get(6, 1) != 'c' {
		t.Errorf("centered text misplaced: row %q", s.Row(1))
	}
}

func TestScreenDrawVLine(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawVLine(5, 0, 5, '|')

	for y := 0; y < 5; y++ {
		if s.Get(5, y) != '|' {
			t.Errorf("DrawVLine missing rune at y=%d", y)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	out := s.String()
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("String() produced %d lines, expected 2", len(lines))
	}
	if lines[0] != "a  " || lines[1] != "  b" {
		t.Errorf("String() = %q", out)
	}
}
