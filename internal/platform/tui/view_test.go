package tui

import "testing"

func TestDrawTextMultiByteRunes(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawText(0, 0, "a·b", ColorDefault)

	want := []rune{'a', '·', 'b', ' '}
	for x, r := range want {
		if got := s.cells[0][x].r; got != r {
			t.Errorf("cell %d = %q, want %q", x, got, r)
		}
	}
}

func TestCenteredMessageSizedByRunes(t *testing.T) {
	s := NewScreen(40, 11)
	drawCenteredMessage(s, "GAME OVER", "r restart  ·  m menu")

	// The widest line is 20 runes (22 bytes), so the box is 24 cells
	// wide and sits at x 8..31, y 3..7.
	for _, p := range []struct{ x, y int }{{8, 3}, {31, 3}, {8, 7}, {31, 7}} {
		if got := s.cells[p.y][p.x].r; got != '+' {
			t.Errorf("corner at (%d,%d) = %q, want '+'", p.x, p.y, got)
		}
	}
	if got := s.cells[5][31].r; got != '|' {
		t.Errorf("right border = %q, want '|'", got)
	}
	if got := s.cells[3][32].r; got != ' ' {
		t.Errorf("box spills past its width, cell (32,3) = %q", got)
	}

	// "GAME OVER" is 9 runes, centered at x 15.
	if got := s.cells[4][15].r; got != 'G' {
		t.Errorf("first title rune = %q, want 'G'", got)
	}
	// The separator dot lands in its rune position, not its byte one.
	if got := s.cells[6][21].r; got != '·' {
		t.Errorf("separator = %q, want '·'", got)
	}
}
