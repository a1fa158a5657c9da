package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		wantW, wantH int
	}{
		{"arena", 60, 20, 60, 20},
		{"single cell", 1, 1, 1, 1},
		{"negative clamps to empty", -3, -1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(tt.w, tt.h)
			if s.Width() != tt.wantW || s.Height() != tt.wantH {
				t.Fatalf("size = %dx%d, expected %dx%d", s.Width(), s.Height(), tt.wantW, tt.wantH)
			}
			for y := 0; y < s.Height(); y++ {
				for x := 0; x < s.Width(); x++ {
					if c := s.GetCell(x, y); c != blankCell {
						t.Fatalf("cell (%d,%d) = %+v, expected blank", x, y, c)
					}
				}
			}
		})
	}
}

func TestSetColorClipsOutsideArena(t *testing.T) {
	tests := []struct {
		name  string
		x, y  int
		drawn bool
	}{
		{"inside", 3, 2, true},
		{"top left", 0, 0, true},
		{"bottom right", 7, 4, true},
		{"left of arena", -1, 2, false},
		{"right of arena", 8, 2, false},
		{"above arena", 3, -1, false},
		{"below arena", 3, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(8, 5)
			s.SetColor(tt.x, tt.y, '◆', ColorViolet)

			got := s.GetCell(tt.x, tt.y)
			if tt.drawn {
				if got != (Cell{Rune: '◆', Color: ColorViolet}) {
					t.Errorf("GetCell(%d,%d) = %+v, expected violet ◆", tt.x, tt.y, got)
				}
				if s.Get(tt.x, tt.y) != '◆' {
					t.Errorf("Get(%d,%d) = %q, expected ◆", tt.x, tt.y, s.Get(tt.x, tt.y))
				}
				return
			}
			if got != blankCell {
				t.Errorf("GetCell(%d,%d) = %+v, expected blank for off-screen", tt.x, tt.y, got)
			}
			if strings.ContainsRune(s.String(), '◆') {
				t.Error("off-screen write leaked into the buffer")
			}
		})
	}
}

func TestSetUsesDefaultColor(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetColor(1, 1, '*', ColorRed)
	s.Set(1, 1, '@')

	if c := s.GetCell(1, 1); c.Rune != '@' || c.Color != ColorDefault {
		t.Errorf("GetCell = %+v, expected uncolored @", c)
	}
}

func TestClearDropsGlyphsAndColors(t *testing.T) {
	s := NewScreen(6, 3)
	s.DrawTextColor(0, 1, "burst!", ColorBrightRed)
	s.Clear()

	for x := 0; x < 6; x++ {
		if c := s.GetCell(x, 1); c != blankCell {
			t.Fatalf("cell (%d,1) = %+v after Clear, expected blank", x, c)
		}
	}
}

func TestDrawTextColor(t *testing.T) {
	tests := []struct {
		name    string
		x       int
		text    string
		wantRow string
	}{
		{"fits", 1, "HP 10", " HP 10    "},
		{"clipped right", 7, "WAVE", "       WAV"},
		{"clipped left", -2, "SCORE", "ORE       "},
		{"multibyte runes", 0, "♥♥♥", "♥♥♥       "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(10, 2)
			s.DrawTextColor(tt.x, 0, tt.text, ColorYellow)
			if got := s.Row(0); got != tt.wantRow {
				t.Errorf("Row(0) = %q, expected %q", got, tt.wantRow)
			}
			if tt.x >= 0 {
				if c := s.GetCell(tt.x, 0); c.Color != ColorYellow {
					t.Errorf("first glyph color = %v, expected yellow", c.Color)
				}
			}
		})
	}

	s := NewScreen(5, 1)
	s.DrawText(0, 0, "ok")
	if c := s.GetCell(0, 0); c.Color != ColorDefault {
		t.Errorf("DrawText color = %v, expected default", c.Color)
	}
}

func TestDrawTextCenteredByRunes(t *testing.T) {
	tests := []struct {
		name  string
		width int
		text  string
		wantX int
	}{
		{"even", 10, "GO", 4},
		{"odd remainder", 11, "GO", 4},
		{"multibyte counted once", 9, "∞∞∞", 3},
		{"wider than screen", 4, "GAME OVER", -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(tt.width, 1)
			s.DrawTextCenteredColor(0, tt.text, ColorCyan)

			first := []rune(tt.text)[0]
			x := tt.wantX
			idx := 0
			if x < 0 {
				idx, x = -x, 0
			}
			want := []rune(tt.text)[idx]
			if got := s.Get(x, 0); got != want {
				t.Errorf("Get(%d,0) = %q, expected %q (text starts with %q)", x, got, want, first)
			}
		})
	}

	s := NewScreen(7, 1)
	s.DrawTextCentered(0, "abc")
	if got := s.Row(0); got != "  abc  " {
		t.Errorf("Row(0) = %q, expected %q", got, "  abc  ")
	}
}

func TestDrawRect(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawRect(NewRect(1, 1, 3, 2), '░')

	want := []string{
		"     ",
		" ░░░ ",
		" ░░░ ",
		"     ",
	}
	for y, row := range want {
		if got := s.Row(y); got != row {
			t.Errorf("Row(%d) = %q, expected %q", y, got, row)
		}
	}
}

func TestDrawBoxColorFrame(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBoxColor(NewRect(0, 0, 6, 4), ColorGray)

	want := "┌────┐\n" +
		"│    │\n" +
		"│    │\n" +
		"└────┘"
	if got := s.String(); got != want {
		t.Errorf("String() =\n%s\nexpected\n%s", got, want)
	}
	for _, p := range [][2]int{{0, 0}, {5, 0}, {0, 3}, {5, 3}, {2, 0}, {0, 2}} {
		if c := s.GetCell(p[0], p[1]); c.Color != ColorGray {
			t.Errorf("frame cell %v color = %v, expected gray", p, c.Color)
		}
	}
	if c := s.GetCell(2, 2); c != blankCell {
		t.Errorf("interior cell = %+v, expected blank", c)
	}
}

func TestRowOutOfRange(t *testing.T) {
	s := NewScreen(3, 2)
	for _, y := range []int{-1, 2, 9} {
		if got := s.Row(y); got != "   " {
			t.Errorf("Row(%d) = %q, expected a blank row", y, got)
		}
	}
}

func TestResizeKeepsOverlap(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		want string
	}{
		{"shrink", 2, 1, "ab"},
		{"grow", 4, 3, "abc \ndef \n    "},
		{"same size", 3, 2, "abc\ndef"},
		{"collapse", 0, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(3, 2)
			s.DrawText(0, 0, "abc")
			s.DrawText(0, 1, "def")
			s.Resize(tt.w, tt.h)

			if s.Width() != tt.w || s.Height() != tt.h {
				t.Fatalf("size = %dx%d, expected %dx%d", s.Width(), s.Height(), tt.w, tt.h)
			}
			if got := s.String(); got != tt.want {
				t.Errorf("String() = %q, expected %q", got, tt.want)
			}
		})
	}
}
