package game

import "testing"

func TestGridCursorInvariant(t *testing.T) {
	var g Grid

	// Empty grid: cursor at 0.
	if g.Cursor() != 0 {
		t.Fatalf("cursor = %d, want 0", g.Cursor())
	}

	g.InputLetter('A')
	g.InputLetter('B')
	if g.Cursor() != 1 {
		t.Errorf("cursor = %d after two letters, want 1", g.Cursor())
	}

	g.InputLetter('C')
	g.InputLetter('D')
	g.InputLetter('E')
	if g.Cursor() != Cols-1 {
		t.Errorf("cursor = %d on full row, want %d", g.Cursor(), Cols-1)
	}

	// Row is full: further input is ignored.
	g.InputLetter('F')
	if g.Cell(Cols - 1).Letter != 'E' {
		t.Errorf("last cell = %c, want E (overfill must be a no-op)", g.Cell(Cols-1).Letter)
	}
}

func TestGridBackspace(t *testing.T) {
	var g Grid
	g.InputLetter('A')
	g.InputLetter('B')
	g.InputLetter('C')

	// Cursor sits on the filled C cell: clear it in place.
	g.Backspace()
	if g.Cell(2).Letter != 0 {
		t.Error("backspace did not clear current cell")
	}
	// Now the cell under the cursor is empty: step back and clear B.
	g.Backspace()
	if g.Cell(1).Letter != 0 {
		t.Error("backspace did not clear previous cell")
	}
	g.Backspace()
	// At column 0 with an empty cell nothing happens.
	g.Backspace()
	if g.Cursor() != 0 {
		t.Errorf("cursor = %d, want 0", g.Cursor())
	}
	if g.Cell(0).Letter != 0 {
		t.Error("first cell not empty")
	}
}

func TestGridRowIsolation(t *testing.T) {
	var g Grid
	for _, ch := range "HELLO" {
		g.InputLetter(byte(ch))
	}
	g.markRow([Cols]LetterState{StateAbsent, StateAbsent, StateCorrect, StateCorrect, StateAbsent})
	g.advance()

	if g.CurrentRow() != 1 {
		t.Fatalf("row = %d after advance, want 1", g.CurrentRow())
	}
	// Backspace at the start of a fresh row must not reach into history.
	g.Backspace()
	if g.Cell(Cols-1).Letter != 'O' {
		t.Error("backspace crossed into the previous row")
	}
}

func TestLetterStateOrdering(t *testing.T) {
	order := []LetterState{StateUnknown, StateAbsent, StatePresent, StateCorrect}
	for i, lo := range order {
		for _, hi := range order[i:] {
			if got := lo.Max(hi); got != hi {
				t.Errorf("%v.Max(%v) = %v, want %v", lo, hi, got, hi)
			}
			if got := hi.Max(lo); got != hi {
				t.Errorf("%v.Max(%v) = %v, want %v", hi, lo, got, hi)
			}
		}
	}
}

func TestStateCodeRoundTrip(t *testing.T) {
	for _, s := range []LetterState{StateAbsent, StatePresent, StateCorrect} {
		got, err := ParseStateCode(s.Code())
		if err != nil {
			t.Fatalf("ParseStateCode(%q): %v", s.Code(), err)
		}
		if got != s {
			t.Errorf("round trip %v -> %q -> %v", s, s.Code(), got)
		}
	}
	if _, err := ParseStateCode('3'); err == nil {
		t.Error("ParseStateCode('3'): expected error")
	}
}
