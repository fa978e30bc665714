package game

import (
	"errors"
	"fmt"
	"strings"
)

// Submit-time validation failures. Both leave the grid untouched so the
// player can fix the row in place.
var (
	ErrIncompleteRow = errors.New("not enough letters")
	ErrUnknownWord   = errors.New("not in word list")
)

// Dictionary reports whether a word may be submitted as a guess. It is the
// union of the solution list and the extended valid-guess list.
type Dictionary interface {
	Allowed(word string) bool
}

// Status is the engine's coarse state. Won and Lost are absorbing: once
// reached, no input mutates the grid.
type Status int

const (
	StatusFilling Status = iota
	StatusWon
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	}
	return "filling"
}

// SubmitOutcome reports the result of a successfully scored guess.
type SubmitOutcome struct {
	Row   int               // 0-based row that was scored
	Marks [Cols]LetterState // per-position result
	Won   bool              // guess matched the solution
	Over  bool              // game reached a terminal state
}

// Engine drives one day's puzzle: the grid of attempts, the aggregated
// keyboard, and the win/loss state machine.
type Engine struct {
	grid     Grid
	keyboard Keyboard
	solution string
	dict     Dictionary
	status   Status
	attempts int
}

// NewEngine creates an engine for the given uppercase five-letter solution.
func NewEngine(solution string, dict Dictionary) (*Engine, error) {
	solution = strings.ToUpper(solution)
	if len(solution) != Cols || !isUpperAlpha(solution) {
		return nil, fmt.Errorf("invalid solution %q", solution)
	}
	return &Engine{solution: solution, dict: dict}, nil
}

// Grid exposes the board for rendering. Callers must not mutate through it.
func (e *Engine) Grid() *Grid { return &e.grid }

// Keyboard exposes the aggregated letter states for rendering.
func (e *Engine) Keyboard() *Keyboard { return &e.keyboard }

// Solution returns the uppercase solution word.
func (e *Engine) Solution() string { return e.solution }

// Status returns the current state machine status.
func (e *Engine) Status() Status { return e.status }

// Attempts returns the number of rows submitted so far.
func (e *Engine) Attempts() int { return e.attempts }

// InputLetter appends an ASCII letter to the current row. Input after a
// terminal state is a silent no-op.
func (e *Engine) InputLetter(ch rune) {
	if e.status != StatusFilling {
		return
	}
	if ch >= 'a' && ch <= 'z' {
		ch -= 'a' - 'A'
	}
	if ch < 'A' || ch > 'Z' {
		return
	}
	e.grid.InputLetter(byte(ch))
}

// Backspace deletes the last typed letter of the current row.
func (e *Engine) Backspace() {
	if e.status != StatusFilling {
		return
	}
	e.grid.Backspace()
}

// Submit validates and scores the current row. A partially filled row fails
// with ErrIncompleteRow and a word outside the dictionary fails with
// ErrUnknownWord; in both cases the grid and cursor are unchanged.
func (e *Engine) Submit() (SubmitOutcome, error) {
	if e.status != StatusFilling {
		return SubmitOutcome{Won: e.status == StatusWon, Over: true}, nil
	}

	word, full := e.grid.currentWord()
	if !full {
		return SubmitOutcome{}, ErrIncompleteRow
	}
	guess := string(word[:])
	if e.dict != nil && !e.dict.Allowed(guess) {
		return SubmitOutcome{}, ErrUnknownWord
	}

	marks := score(e.solution, guess)
	row := e.grid.CurrentRow()
	e.grid.markRow(marks)
	for i := 0; i < Cols; i++ {
		e.keyboard.Observe(word[i], marks[i])
	}
	e.attempts++

	out := SubmitOutcome{Row: row, Marks: marks}
	switch {
	case allCorrect(marks):
		e.status = StatusWon
		out.Won, out.Over = true, true
	case e.attempts >= Rows:
		e.status = StatusLost
		out.Over = true
	default:
		e.grid.advance()
	}
	return out, nil
}

// Replay reconstructs grid, keyboard, and terminal state from the persisted
// letters/statuses strings of an earlier session on the same day. result nil
// means the stored day was never finished. Replay never touches statistics.
func (e *Engine) Replay(letters, statuses string, result *bool) error {
	if len(letters) != len(statuses) {
		return fmt.Errorf("replay: letters/statuses length mismatch (%d vs %d)", len(letters), len(statuses))
	}
	if len(letters)%Cols != 0 || len(letters) > Rows*Cols {
		return fmt.Errorf("replay: invalid guess history length %d", len(letters))
	}

	for i := 0; i < len(letters); i++ {
		ch := letters[i]
		if ch < 'A' || ch > 'Z' {
			return fmt.Errorf("replay: invalid letter %q", ch)
		}
		state, err := ParseStateCode(statuses[i])
		if err != nil {
			return fmt.Errorf("replay: %w", err)
		}
		e.grid.cells[i] = Cell{Letter: ch, State: state}
		e.keyboard.Observe(ch, state)
	}

	e.attempts = len(letters) / Cols
	e.grid.cursor = e.attempts * Cols
	if e.grid.cursor >= len(e.grid.cells) {
		e.grid.cursor = len(e.grid.cells) - 1
	}

	switch {
	case result == nil:
		e.status = StatusFilling
	case *result:
		e.status = StatusWon
	default:
		e.status = StatusLost
	}
	return nil
}

// SubmittedMarks returns the per-row letter states of every submitted guess,
// in submission order, for share-text rendering.
func (e *Engine) SubmittedMarks() [][Cols]LetterState {
	out := make([][Cols]LetterState, 0, e.attempts)
	for r := 0; r < e.attempts; r++ {
		var marks [Cols]LetterState
		for i := 0; i < Cols; i++ {
			marks[i] = e.grid.cells[r*Cols+i].State
		}
		out = append(out, marks)
	}
	return out
}

// GuessHistory returns the concatenated letters and status codes of every
// submitted row, the format stored in the day record.
func (e *Engine) GuessHistory() (letters, statuses string) {
	var lb, sb strings.Builder
	for i := 0; i < e.attempts*Cols; i++ {
		c := e.grid.cells[i]
		lb.WriteByte(c.Letter)
		sb.WriteByte(c.State.Code())
	}
	return lb.String(), sb.String()
}

// score runs the two-pass algorithm: exact matches claim solution letters
// first, then remaining counts resolve present-elsewhere left to right. This
// keeps Correct+Present for any letter within its multiplicity in the
// solution.
func score(solution, guess string) [Cols]LetterState {
	var marks [Cols]LetterState
	var counts [26]int

	for i := 0; i < Cols; i++ {
		if guess[i] == solution[i] {
			marks[i] = StateCorrect
		} else {
			counts[solution[i]-'A']++
		}
	}
	for i := 0; i < Cols; i++ {
		if marks[i] == StateCorrect {
			continue
		}
		j := guess[i] - 'A'
		if counts[j] > 0 {
			marks[i] = StatePresent
			counts[j]--
		} else {
			marks[i] = StateAbsent
		}
	}
	return marks
}

func allCorrect(marks [Cols]LetterState) bool {
	for _, m := range marks {
		if m != StateCorrect {
			return false
		}
	}
	return true
}

func isUpperAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
