// Package puzzle maps calendar dates to daily puzzles. Every player sees the
// same solution on the same day: the day index is the count of whole days
// since a fixed epoch, and the solution is a pure lookup into the ordered
// solutions list.
package puzzle

import (
	"fmt"
	"time"

	"github.com/ankitha/wordrow/internal/record"
	"github.com/ankitha/wordrow/internal/words"
)

// DefaultEpoch is the date of puzzle #0.
var DefaultEpoch = time.Date(2021, time.June, 19, 0, 0, 0, 0, time.Local)

// OutOfRangeError means no valid puzzle exists: the date is before the epoch,
// past the end of the solutions list, or behind an already-played record
// (clock skew). Fatal at session start.
type OutOfRangeError struct {
	Index int
	Limit int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("day index %d outside puzzle range [0, %d)", e.Index, e.Limit)
}

// Puzzle is one day's assignment.
type Puzzle struct {
	Index    int
	Solution string // uppercase
}

// ResumeDecision tells the caller how to initialize today's game: from
// scratch, or by replaying a stored history from earlier in the same day.
type ResumeDecision struct {
	Fresh    bool
	Letters  string
	Statuses string
	Result   *bool
}

// Selector resolves dates to puzzles against an injected word list.
type Selector struct {
	list  *words.List
	epoch time.Time
}

// NewSelector creates a Selector. A zero epoch falls back to DefaultEpoch.
func NewSelector(list *words.List, epoch time.Time) *Selector {
	if epoch.IsZero() {
		epoch = DefaultEpoch
	}
	return &Selector{list: list, epoch: epoch}
}

// DayIndex returns the number of whole calendar days between the epoch and
// now, both stripped to date-only. Stable within a day, +1 per elapsed day.
func (s *Selector) DayIndex(now time.Time) (int, error) {
	idx := daysBetween(s.epoch, now)
	if idx < 0 || idx >= s.list.SolutionCount() {
		return 0, &OutOfRangeError{Index: idx, Limit: s.list.SolutionCount()}
	}
	return idx, nil
}

// SolutionFor returns the uppercased solution for a day index.
func (s *Selector) SolutionFor(index int) (string, error) {
	if index < 0 || index >= s.list.SolutionCount() {
		return "", &OutOfRangeError{Index: index, Limit: s.list.SolutionCount()}
	}
	word := s.list.Solution(index)
	up := make([]byte, len(word))
	for i := 0; i < len(word); i++ {
		up[i] = word[i] - 'a' + 'A'
	}
	return string(up), nil
}

// Today resolves the puzzle for the current wall-clock date.
func (s *Selector) Today(now time.Time) (Puzzle, error) {
	idx, err := s.DayIndex(now)
	if err != nil {
		return Puzzle{}, err
	}
	sol, err := s.SolutionFor(idx)
	if err != nil {
		return Puzzle{}, err
	}
	return Puzzle{Index: idx, Solution: sol}, nil
}

// Resume decides whether a stored record belongs to today's puzzle. A record
// from an earlier day is stale: its stats survive but the grid starts fresh.
// A record for today is replayed verbatim so a finished puzzle stays
// finished. A record from a later day means the clock went backward, which
// is fatal rather than a silent replay of an old puzzle.
func (s *Selector) Resume(index int, rec *record.Record) (ResumeDecision, error) {
	switch {
	case rec == nil || rec.LastPlayed < index:
		return ResumeDecision{Fresh: true}, nil
	case rec.LastPlayed > index:
		return ResumeDecision{}, &OutOfRangeError{Index: index, Limit: rec.LastPlayed}
	}
	return ResumeDecision{
		Letters:  rec.LastGuesses[0],
		Statuses: rec.LastGuesses[1],
		Result:   rec.LastResult,
	}, nil
}

// NextPuzzleTime returns the moment the next puzzle unlocks: local midnight
// after now. Consumed by the countdown display only.
func (s *Selector) NextPuzzleTime(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())
}

// daysBetween counts whole calendar days from a to b, ignoring time of day.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	au := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	bu := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au) / (24 * time.Hour))
}
