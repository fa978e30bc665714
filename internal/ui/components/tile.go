package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ankitha/wordrow/internal/game"
	"github.com/ankitha/wordrow/internal/ui/theme"
)

// Tile renders a single board cell. An empty letter renders as a
// placeholder slot.
func Tile(letter byte, state game.LetterState) string {
	if letter == 0 {
		return theme.TileEmpty.Render("[ ]")
	}
	text := "[" + string(letter) + "]"
	switch state {
	case game.StateCorrect:
		return theme.TileCorrect.Render(text)
	case game.StatePresent:
		return theme.TilePresent.Render(text)
	case game.StateAbsent:
		return theme.TileAbsent.Render(text)
	default:
		return theme.TileIdle.Render(text)
	}
}

// Board renders the full guess grid.
func Board(g *game.Grid) string {
	rows := make([]string, 0, game.Rows)
	for r := 0; r < game.Rows; r++ {
		cells := make([]string, 0, game.Cols)
		for c := 0; c < game.Cols; c++ {
			cell := g.Cell(r*game.Cols + c)
			cells = append(cells, Tile(cell.Letter, cell.State))
		}
		rows = append(rows, strings.Join(cells, " "))
	}
	return strings.Join(rows, "\n")
}

var keyboardRows = []string{
	"QWERTYUIOP",
	"ASDFGHJKL",
	"ZXCVBNM",
}

// Keycap renders a single keyboard letter colored by its best
// observed state.
func Keycap(letter byte, state game.LetterState) string {
	text := string(letter)
	switch state {
	case game.StateCorrect:
		return theme.TileCorrect.Render(text)
	case game.StatePresent:
		return theme.TilePresent.Render(text)
	case game.StateAbsent:
		return theme.KeyAbsent.Render(text)
	default:
		return theme.KeyUnknown.Render(text)
	}
}

// KeyboardView renders the three-row letter tracker beneath the board.
func KeyboardView(kb *game.Keyboard) string {
	lines := make([]string, 0, len(keyboardRows))
	for i, row := range keyboardRows {
		caps := make([]string, 0, len(row))
		for j := 0; j < len(row); j++ {
			caps = append(caps, Keycap(row[j], kb.State(row[j])))
		}
		line := strings.Join(caps, " ")
		// stagger the lower rows like a physical keyboard
		line = strings.Repeat(" ", i) + line
		lines = append(lines, line)
	}
	return lipgloss.NewStyle().Render(strings.Join(lines, "\n"))
}
