// Package stats folds finished puzzles into the persisted record and derives
// the display values for the statistics screen.
package stats

import "github.com/ankitha/wordrow/internal/record"

// Apply records a finished puzzle exactly once: played goes up, a win lands
// in the distribution bucket for its attempt count, and the day's full guess
// history is stored for replay and share text. Callers must not invoke Apply
// for games restored from a same-day record.
func Apply(rec *record.Record, index int, won bool, attempts int, letters, statuses string) {
	rec.Played++
	if won && attempts >= 1 && attempts <= record.Attempts {
		rec.Stats[attempts-1]++
	}
	rec.LastPlayed = index
	rec.LastGuesses = [2]string{letters, statuses}
	result := won
	rec.LastResult = &result
}

// Summary is what the statistics screen shows.
type Summary struct {
	Played       int
	Wins         int
	WinPct       float64
	Distribution [record.Attempts]int
	LastAttempts int // attempts of the most recent win, 0 otherwise
}

// Summarize derives display statistics from a record.
func Summarize(rec *record.Record) Summary {
	s := Summary{
		Played:       rec.Played,
		Distribution: rec.Stats,
	}
	for _, n := range rec.Stats {
		s.Wins += n
	}
	if s.Played > 0 {
		s.WinPct = float64(s.Wins) / float64(s.Played) * 100
	}
	if rec.LastResult != nil && *rec.LastResult {
		s.LastAttempts = len(rec.LastGuesses[0]) / 5
	}
	return s
}
