// Package game implements the play screen: the guess board, the letter
// tracker, and the end-of-day countdown and share flow.
package game

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	boardgame "github.com/ankitha/wordrow/internal/game"
	"github.com/ankitha/wordrow/internal/history"
	"github.com/ankitha/wordrow/internal/puzzle"
	"github.com/ankitha/wordrow/internal/record"
	"github.com/ankitha/wordrow/internal/router"
	"github.com/ankitha/wordrow/internal/screen"
	"github.com/ankitha/wordrow/internal/share"
	"github.com/ankitha/wordrow/internal/stats"
	"github.com/ankitha/wordrow/internal/ui/layout"
	"github.com/ankitha/wordrow/internal/words"
)

// One message per winning row.
var winMessages = [boardgame.Rows]string{
	"Genius!", "Magnificent!", "Impressive!", "Splendid!", "Great!", "Phew!",
}

// GameScreen implements screen.Screen for the day's puzzle.
type GameScreen struct {
	name       string
	sel        *puzzle.Selector
	list       *words.List
	recordPath string
	hist       *history.Store
	log        zerolog.Logger

	rec     *record.Record
	pz      puzzle.Puzzle
	eng     *boardgame.Engine
	saved   bool
	message string
	now     time.Time
	errMsg  string
}

var _ screen.Screen = (*GameScreen)(nil)
var _ screen.KeyHintProvider = (*GameScreen)(nil)

// New creates a new GameScreen with injected dependencies. hist may be
// nil; the game then skips the history archive.
func New(name string, sel *puzzle.Selector, list *words.List, recordPath string, hist *history.Store, log zerolog.Logger) *GameScreen {
	return &GameScreen{
		name:       name,
		sel:        sel,
		list:       list,
		recordPath: recordPath,
		hist:       hist,
		log:        log,
		now:        time.Now(),
	}
}

func (s *GameScreen) Init() tea.Cmd {
	return s.loadBoard()
}

func (s *GameScreen) Title() string {
	return "Daily Puzzle"
}

func (s *GameScreen) KeyHints() []layout.KeyHint {
	if s.over() {
		return []layout.KeyHint{
			{Key: "C", Description: "Copy results"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Backspace", Description: "Delete"},
		{Key: "Esc", Description: "Back"},
	}
}

// over reports whether the day's game reached a terminal state.
func (s *GameScreen) over() bool {
	return s.eng != nil && s.eng.Status() != boardgame.StatusFilling
}

func (s *GameScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case boardReadyMsg:
		return s.handleReady(msg)

	case clockTickMsg:
		s.now = time.Time(msg)
		if s.over() {
			return s, tickCmd()
		}
		return s, nil

	case persistDoneMsg:
		if msg.Err != nil {
			s.log.Error().Err(msg.Err).Msg("persist finished game")
			s.message = "Could not save results: " + msg.Err.Error()
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

// loadBoard loads the record, resolves today's puzzle, and restores any
// guesses already made today.
func (s *GameScreen) loadBoard() tea.Cmd {
	return func() tea.Msg {
		rec, warn := record.Load(s.recordPath)

		pz, err := s.sel.Today(time.Now())
		if err != nil {
			return boardReadyMsg{Err: err}
		}

		dec, err := s.sel.Resume(pz.Index, rec)
		if err != nil {
			return boardReadyMsg{Err: err}
		}

		eng, err := boardgame.NewEngine(pz.Solution, s.list)
		if err != nil {
			return boardReadyMsg{Err: err}
		}

		restored := false
		if !dec.Fresh {
			if err := eng.Replay(dec.Letters, dec.Statuses, dec.Result); err != nil {
				// Same-day history does not replay cleanly; start over.
				s.log.Warn().Err(err).Msg("discarding unreplayable day record")
				eng, _ = boardgame.NewEngine(pz.Solution, s.list)
			} else {
				restored = eng.Status() != boardgame.StatusFilling
			}
		}

		return boardReadyMsg{Rec: rec, Puzzle: pz, Engine: eng, Restored: restored, Warn: warn}
	}
}

func (s *GameScreen) handleReady(msg boardReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	if msg.Warn != nil {
		s.log.Warn().Err(msg.Warn).Msg("starting from a fresh record")
	}

	s.rec = msg.Rec
	s.pz = msg.Puzzle
	s.eng = msg.Engine

	if msg.Restored {
		// Finished earlier today; results are already persisted.
		s.saved = true
		if s.eng.Status() == boardgame.StatusWon {
			s.message = winMessages[s.eng.Attempts()-1]
		} else {
			s.message = "The word was " + s.eng.Solution()
		}
		return s, tickCmd()
	}

	return s, nil
}

func (s *GameScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.eng == nil {
		return s, nil
	}

	if s.over() {
		switch key {
		case "c", "C":
			return s.copyResults()
		}
		return s, nil
	}

	switch key {
	case "enter":
		return s.submitGuess()
	case "backspace":
		s.eng.Backspace()
		s.message = ""
		return s, nil
	}

	if len(key) == 1 {
		s.eng.InputLetter(rune(key[0]))
		s.message = ""
	}
	return s, nil
}

// submitGuess evaluates the current row and, on the final row, persists
// the result.
func (s *GameScreen) submitGuess() (screen.Screen, tea.Cmd) {
	out, err := s.eng.Submit()
	if err != nil {
		switch {
		case errors.Is(err, boardgame.ErrIncompleteRow):
			s.message = "Not enough letters"
		case errors.Is(err, boardgame.ErrUnknownWord):
			s.message = "Not in word list"
		default:
			s.message = err.Error()
		}
		return s, nil
	}

	s.message = ""
	if !out.Over {
		return s, nil
	}

	if out.Won {
		s.message = winMessages[out.Row]
	} else {
		s.message = "The word was " + s.eng.Solution()
	}

	letters, statuses := s.eng.GuessHistory()
	stats.Apply(s.rec, s.pz.Index, out.Won, s.eng.Attempts(), letters, statuses)
	s.saved = true

	return s, tea.Batch(
		s.persistResult(out.Won, letters, statuses),
		tickCmd(),
	)
}

// persistResult writes the finished game to the record file and the
// history database.
func (s *GameScreen) persistResult(won bool, letters, statuses string) tea.Cmd {
	rec := s.rec
	pz := s.pz
	attempts := s.eng.Attempts()
	hist := s.hist
	path := s.recordPath

	return func() tea.Msg {
		if err := record.Save(path, rec); err != nil {
			return persistDoneMsg{Err: err}
		}
		if hist != nil {
			err := hist.Insert(context.Background(), history.Result{
				DayIndex: pz.Index,
				Date:     time.Now().Format("2006-01-02"),
				Solution: pz.Solution,
				Won:      won,
				Attempts: attempts,
				Letters:  letters,
				Statuses: statuses,
			})
			if err != nil {
				return persistDoneMsg{Err: err}
			}
		}
		return persistDoneMsg{}
	}
}

// copyResults places the spoiler-free share text on the clipboard.
func (s *GameScreen) copyResults() (screen.Screen, tea.Cmd) {
	won := s.eng.Status() == boardgame.StatusWon
	text := share.Text(s.name, s.pz.Index, won, s.eng.SubmittedMarks())
	if err := share.Copy(text); err != nil {
		s.log.Error().Err(err).Msg("clipboard copy")
		s.message = "Could not copy to clipboard"
		return s, nil
	}
	s.message = "Copied results to clipboard"
	return s, nil
}

// tickCmd returns a 1-second tick command for the countdown clock.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}
