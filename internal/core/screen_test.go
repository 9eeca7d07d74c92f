package core

import (
	"strings"
	"testing"
)

// rows renders the screen as one string per row for compact comparisons.
func rows(s *Screen) []string {
	return strings.Split(s.String(), "\n")
}

func equalRows(t *testing.T, s *Screen, want ...string) {
	t.Helper()
	got := rows(s)
	if len(got) != len(want) {
		t.Fatalf("screen has %d rows, expected %d", len(got), len(want))
	}
	for y := range want {
		if got[y] != want[y] {
			t.Errorf("row %d = %q, expected %q", y, got[y], want[y])
		}
	}
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	if b := s.Bounds(); b != (Rect{W: 6, H: 3}) {
		t.Errorf("Bounds() = %+v", b)
	}
	equalRows(t, s, "      ", "      ", "      ")
}

func TestScreenSetOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)
	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 2}} {
		s.Set(p[0], p[1], '!')
		if got := s.Get(p[0], p[1]); got != ' ' {
			t.Errorf("Get(%d, %d) = %q, expected blank", p[0], p[1], got)
		}
	}
	s.Set(3, 1, '#')
	equalRows(t, s, "    ", "   #")
}

func TestScreenFillAndClear(t *testing.T) {
	s := NewScreen(3, 2)
	s.Fill('.')
	equalRows(t, s, "...", "...")

	s.Clear()
	equalRows(t, s, "   ", "   ")
}

func TestScreenText(t *testing.T) {
	tests := []struct {
		name string
		draw func(s *Screen)
		want []string
	}{
		{"at origin", func(s *Screen) { s.DrawText(0, 0, "abc") }, []string{"abc     ", "        "}},
		{"clipped right", func(s *Screen) { s.DrawText(6, 1, "abc") }, []string{"        ", "      ab"}},
		{"clipped left", func(s *Screen) { s.DrawText(-2, 0, "abcd") }, []string{"cd      ", "        "}},
		{"centered", func(s *Screen) { s.DrawTextCentered(1, "ok") }, []string{"        ", "   ok   "}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(8, 2)
			tc.draw(s)
			equalRows(t, s, tc.want...)
		})
	}
}

func TestScreenRectAndBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawRect(NewRect(1, 1, 3, 2), '#')
	equalRows(t, s, "      ", " ###  ", " ###  ", "      ")

	s.Clear()
	s.DrawBox(NewRect(0, 0, 5, 3))
	equalRows(t, s, "┌───┐ ", "│   │ ", "└───┘ ", "      ")
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "abcd")
	s.DrawText(0, 1, "efgh")

	s.Resize(2, 3)
	equalRows(t, s, "ab", "ef", "  ")

	s.Resize(2, 3)
	equalRows(t, s, "ab", "ef", "  ")
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(3, 1)
	s.DrawText(0, 0, "xyz")
	if got := s.Row(0); got != "xyz" {
		t.Errorf("Row(0) = %q", got)
	}
	if got := s.Row(5); got != "   " {
		t.Errorf("Row(5) = %q, expected blanks", got)
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(10, 3)
	s.SetWithColor(1, 1, '#', ColorCyan)
	s.DrawTextWithColor(3, 2, "ok", ColorRed)

	if got := s.GetCell(1, 1); got != (Cell{Rune: '#', Color: ColorCyan}) {
		t.Errorf("GetCell(1, 1) = %+v, expected cyan '#'", got)
	}
	if got := s.GetCell(4, 2); got != (Cell{Rune: 'k', Color: ColorRed}) {
		t.Errorf("GetCell(4, 2) = %+v, expected red 'k'", got)
	}
	if got := s.GetCell(-1, 0); got != (Cell{Rune: ' '}) {
		t.Errorf("out of bounds GetCell = %+v, expected blank", got)
	}

	// Plain Set resets the color.
	s.Set(1, 1, 'x')
	if got := s.GetCell(1, 1).Color; got != ColorDefault {
		t.Errorf("color after Set = %d, expected default", got)
	}

	s.Clear()
	if got := s.GetCell(4, 2); got != (Cell{Rune: ' '}) {
		t.Errorf("after Clear GetCell(4, 2) = %+v, expected blank", got)
	}
}

func TestScreenMultibyteText(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawText(0, 0, "█▒x")

	if s.Get(0, 0) != '█' || s.Get(1, 0) != '▒' || s.Get(2, 0) != 'x' {
		t.Errorf("multibyte text misplaced: %q", s.Row(0))
	}
}

func TestScreenResizeKeepsColors(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetWithColor(0, 0, '@', ColorGreen)
	s.Resize(8, 2)

	if got := s.GetCell(0, 0); got != (Cell{Rune: '@', Color: ColorGreen}) {
		t.Errorf("after Resize GetCell(0, 0) = %+v", got)
	}
}
