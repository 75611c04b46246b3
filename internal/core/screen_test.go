package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(40, 12)

	if s.Width() != 40 || s.Height() != 12 {
		t.Fatalf("dimensions = %dx%d, expected 40x12", s.Width(), s.Height())
	}
	for y := range s.Height() {
		for x := range s.Width() {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("new screen cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(3, 4, '~', ColorBlue)
	c := s.GetCell(3, 4)
	if c.Rune != '~' || c.Color != ColorBlue {
		t.Errorf("GetCell(3, 4) = %+v, expected blue '~'", c)
	}

	// Out of bounds writes are dropped, reads are blank
	s.SetColored(-1, 0, 'A', ColorRed)
	s.SetColored(0, 100, 'A', ColorRed)
	if s.GetCell(-1, 0) != blankCell {
		t.Error("out of bounds GetCell should return a blank cell")
	}
}

func TestScreenFillColoredAndClear(t *testing.T) {
	s := NewScreen(5, 3)
	s.FillColored('.', ColorDarkGreen)

	if c := s.GetCell(4, 2); c.Rune != '.' || c.Color != ColorDarkGreen {
		t.Errorf("after FillColored, cell = %+v", c)
	}

	s.Clear()
	if c := s.GetCell(4, 2); c != blankCell {
		t.Errorf("after Clear, cell = %+v, expected blank", c)
	}
}

func TestScreenDrawTextClipsAndCountsRunes(t *testing.T) {
	s := NewScreen(8, 2)
	s.DrawTextColored(5, 0, "◆gem", ColorMagenta)

	if s.GetCell(5, 0).Rune != '◆' || s.GetCell(6, 0).Rune != 'g' || s.GetCell(7, 0).Rune != 'e' {
		t.Errorf("row 0 = %q", s.Row(0))
	}
	if s.GetCell(6, 0).Color != ColorMagenta {
		t.Error("DrawTextColored should color every rune")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	x := (20 - 2) / 2
	if s.GetCell(x, 2).Rune != 'H' || s.GetCell(x+1, 2).Rune != 'i' {
		t.Errorf("centered text not at column %d: %q", x, s.Row(2))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.GetCell(pos[0], pos[1]).Rune; got != want {
			t.Errorf("corner %v = %q, expected %q", pos, got, want)
		}
	}
	for x := 2; x < 5; x++ {
		if s.GetCell(x, 1).Rune != '─' || s.GetCell(x, 4).Rune != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.GetCell(1, y).Rune != '│' || s.GetCell(5, y).Rune != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 3), '#')

	if s.GetCell(2, 2).Rune != '#' || s.GetCell(4, 4).Rune != '#' {
		t.Error("DrawRect should fill the rectangle")
	}
	if s.GetCell(5, 5).Rune != ' ' || s.GetCell(1, 1).Rune != ' ' {
		t.Error("DrawRect should not touch cells outside the rectangle")
	}
}

func TestScreenStringAndRow(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawTextColored(0, 1, "BBBBB", ColorCyan)
	s.DrawText(0, 2, "CCCCC")

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}
	if got := s.Row(1); got != "BBBBB" {
		t.Errorf("Row(1) = %q", got)
	}
	if got := s.Row(-1); got != "     " {
		t.Errorf("out of bounds Row = %q, expected spaces", got)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColored(0, 0, "Hello", ColorYellow)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("after resize, dimensions = %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content lost after shrink: %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content lost after grow: %q", s.Row(0))
	}
	if s.GetCell(0, 0).Color != ColorYellow {
		t.Error("colors should survive a resize")
	}
}
