// Package share builds the spoiler-free result text players paste into
// chats: a title line with the day number and attempt count, then one emoji
// row per guess.
package share

import (
	"strconv"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/ankitha/wordrow/internal/game"
)

// Glyphs for the three evaluated letter states.
const (
	GlyphAbsent  = "⬛"
	GlyphPresent = "🟨"
	GlyphCorrect = "🟩"
)

// Glyph maps a letter state to its share glyph. Unknown never appears in a
// submitted row; it falls back to the absent block.
func Glyph(s game.LetterState) string {
	switch s {
	case game.StatePresent:
		return GlyphPresent
	case game.StateCorrect:
		return GlyphCorrect
	}
	return GlyphAbsent
}

// Text renders the share template: "<name> <index> <attempts>/6" ("x" when
// lost), a blank line, then the glyph rows in submission order.
func Text(name string, index int, won bool, rows [][game.Cols]game.LetterState) string {
	attempts := "x"
	if won {
		attempts = strconv.Itoa(len(rows))
	}

	var b strings.Builder
	b.WriteString(name)
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(index))
	b.WriteByte(' ')
	b.WriteString(attempts)
	b.WriteString("/6\n")

	for _, row := range rows {
		b.WriteByte('\n')
		for _, s := range row {
			b.WriteString(Glyph(s))
		}
	}
	return b.String()
}

// Copy puts text on the system clipboard.
func Copy(text string) error {
	return clipboard.WriteAll(text)
}
