package game

import (
	"time"

	boardgame "github.com/ankitha/wordrow/internal/game"
	"github.com/ankitha/wordrow/internal/puzzle"
	"github.com/ankitha/wordrow/internal/record"
)

// boardReadyMsg is sent when the day record is loaded and the board is
// ready, either fresh or restored from earlier guesses.
type boardReadyMsg struct {
	Rec      *record.Record
	Puzzle   puzzle.Puzzle
	Engine   *boardgame.Engine
	Restored bool // a finished game was restored; already persisted
	Warn     error
	Err      error
}

// clockTickMsg is sent every second to refresh the next-puzzle countdown.
type clockTickMsg time.Time

// persistDoneMsg is sent after the finished game has been written to the
// record file and the history database.
type persistDoneMsg struct {
	Err error
}
