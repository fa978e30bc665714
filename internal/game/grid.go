package game

// Board dimensions: six attempts of five letters each.
const (
	Rows = 6
	Cols = 5
)

// Cell is a single grid position: an uppercase letter (0 when empty) and the
// state assigned to it by scoring.
type Cell struct {
	Letter byte
	State  LetterState
}

// Grid is the fixed 6x5 board plus an absolute cursor in 0..29. The cursor
// always points at the first empty cell of the current row, or at the last
// cell of the row when the row is full. Rows before the current one are
// immutable history; rows after it are untouched.
type Grid struct {
	cells  [Rows * Cols]Cell
	cursor int
}

// Cursor returns the absolute cursor position.
func (g *Grid) Cursor() int {
	return g.cursor
}

// Cell returns the cell at absolute position i.
func (g *Grid) Cell(i int) Cell {
	return g.cells[i]
}

// Row returns a copy of row r.
func (g *Grid) Row(r int) [Cols]Cell {
	var row [Cols]Cell
	copy(row[:], g.cells[r*Cols:(r+1)*Cols])
	return row
}

// CurrentRow returns the row the cursor is in.
func (g *Grid) CurrentRow() int {
	return g.cursor / Cols
}

// InputLetter writes ch into the cursor cell. If the cell already holds a
// letter the cursor first advances within the row; once the last column is
// filled further input is ignored.
func (g *Grid) InputLetter(ch byte) {
	if g.cells[g.cursor].Letter != 0 {
		if g.cursor%Cols == Cols-1 {
			return
		}
		g.cursor++
	}
	g.cells[g.cursor].Letter = ch
}

// Backspace clears the cursor cell, or when it is already empty steps back one
// column within the row and clears that cell instead. It never crosses into
// the previous row.
func (g *Grid) Backspace() {
	if g.cells[g.cursor].Letter == 0 {
		if g.cursor%Cols == 0 {
			return
		}
		g.cursor--
	}
	g.cells[g.cursor].Letter = 0
}

// currentWord returns the letters of the cursor's row and whether the row is
// completely filled.
func (g *Grid) currentWord() ([Cols]byte, bool) {
	var word [Cols]byte
	full := true
	start := g.CurrentRow() * Cols
	for i := 0; i < Cols; i++ {
		word[i] = g.cells[start+i].Letter
		if word[i] == 0 {
			full = false
		}
	}
	return word, full
}

// markRow writes scoring results into the cursor's row.
func (g *Grid) markRow(marks [Cols]LetterState) {
	start := g.CurrentRow() * Cols
	for i := 0; i < Cols; i++ {
		g.cells[start+i].State = marks[i]
	}
}

// advance moves the cursor to the start of the next row. On the last row it
// stays on the final cell.
func (g *Grid) advance() {
	next := (g.CurrentRow() + 1) * Cols
	if next >= len(g.cells) {
		next = len(g.cells) - 1
	}
	g.cursor = next
}
