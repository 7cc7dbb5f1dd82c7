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
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorSnakeBody)
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' || cell.Color != ColorSnakeBody {
		t.Errorf("GetCell(5, 5) = %+v, expected snake body 'X'", cell)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.FillRect(0, 0, 4, 4, 'X', ColorAlert)
	s.Clear()

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc", ColorDefault)

	if got := s.Row(0); got != "    abc    " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(0, 0, 4, 3, ColorDim)

	expected := "┌──┐\n│  │\n└──┘"
	if got := s.String(); got != expected {
		t.Errorf("DrawBox produced:\n%s\nexpected:\n%s", got, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.Set(1, 1, 'X')
	s.Resize(8, 3)

	if s.Width() != 8 || s.Height() != 3 {
		t.Fatalf("Resize gave %dx%d", s.Width(), s.Height())
	}
	if strings.ContainsRune(s.String(), 'X') {
		t.Error("Resize should discard content")
	}
}

func TestScreenSetBlock(t *testing.T) {
	s := NewScreen(3, 1)
	s.SetBlock(1, 0, '▀', ColorSnakeHead, ColorFoodNormal)

	c := s.GetCell(1, 0)
	if c.Rune != '▀' || c.Color != ColorSnakeHead || c.Bg != ColorFoodNormal {
		t.Errorf("GetCell(1, 0) = %+v, expected half block with head over food", c)
	}

	// Plain sets reset the background
	s.SetColored(1, 0, 'x', ColorText)
	if c := s.GetCell(1, 0); c.Bg != ColorDefault {
		t.Errorf("SetColored should clear background, got %v", c.Bg)
	}
}
