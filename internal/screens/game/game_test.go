package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	boardgame "github.com/ankitha/wordrow/internal/game"
	"github.com/ankitha/wordrow/internal/puzzle"
	"github.com/ankitha/wordrow/internal/record"
	"github.com/ankitha/wordrow/internal/screen"
	"github.com/ankitha/wordrow/internal/words"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testList(t *testing.T) *words.List {
	t.Helper()
	list, err := words.New(
		[]string{"crane", "robot"},
		[]string{"allow", "slate", "trace"},
	)
	if err != nil {
		t.Fatalf("words.New: %v", err)
	}
	return list
}

// testGameScreen builds a screen with a known solution already on the
// board, bypassing the async load.
func testGameScreen(t *testing.T, solution string) *GameScreen {
	t.Helper()
	list := testList(t)
	sel := puzzle.NewSelector(list, time.Time{})
	recordPath := filepath.Join(t.TempDir(), "stats.json")

	s := New("Wordrow", sel, list, recordPath, nil, zerolog.Nop())

	eng, err := boardgame.NewEngine(solution, list)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	s.handleReady(boardReadyMsg{
		Rec:    record.Fresh(),
		Puzzle: puzzle.Puzzle{Index: 42, Solution: strings.ToUpper(solution)},
		Engine: eng,
	})
	return s
}

func typeWord(s screen.Screen, word string) screen.Screen {
	for _, r := range word {
		s, _ = s.Update(keyPress(r))
	}
	return s
}

func TestGameScreen_Title(t *testing.T) {
	s := testGameScreen(t, "CRANE")
	if s.Title() != "Daily Puzzle" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestGameScreen_IncompleteRow(t *testing.T) {
	s := testGameScreen(t, "CRANE")

	var scr screen.Screen = typeWord(s, "cra")
	scr, _ = scr.Update(specialKey(tea.KeyEnter))

	gs := scr.(*GameScreen)
	if gs.message != "Not enough letters" {
		t.Errorf("message = %q", gs.message)
	}
	if gs.over() {
		t.Error("game should still be filling")
	}
}

func TestGameScreen_UnknownWord(t *testing.T) {
	s := testGameScreen(t, "CRANE")

	var scr screen.Screen = typeWord(s, "zzzzz")
	scr, _ = scr.Update(specialKey(tea.KeyEnter))

	gs := scr.(*GameScreen)
	if gs.message != "Not in word list" {
		t.Errorf("message = %q", gs.message)
	}
	if gs.eng.Attempts() != 0 {
		t.Errorf("attempts = %d, want 0", gs.eng.Attempts())
	}
}

func TestGameScreen_TypingClearsMessage(t *testing.T) {
	s := testGameScreen(t, "CRANE")

	var scr screen.Screen = typeWord(s, "zzzzz")
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(specialKey(tea.KeyBackspace))

	gs := scr.(*GameScreen)
	if gs.message != "" {
		t.Errorf("message = %q, want empty", gs.message)
	}
}

func TestGameScreen_WinOnFirstGuess(t *testing.T) {
	s := testGameScreen(t, "CRANE")

	var scr screen.Screen = typeWord(s, "crane")
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))

	gs := scr.(*GameScreen)
	if !gs.over() {
		t.Fatal("expected terminal state")
	}
	if gs.message != "Genius!" {
		t.Errorf("message = %q", gs.message)
	}
	if !gs.saved {
		t.Error("expected the result to be marked for persistence")
	}
	if cmd == nil {
		t.Error("expected a persistence command")
	}
	if gs.rec.Played != 1 || gs.rec.Stats[0] != 1 {
		t.Errorf("record not updated: played=%d stats=%v", gs.rec.Played, gs.rec.Stats)
	}
}

func TestGameScreen_LossShowsSolution(t *testing.T) {
	s := testGameScreen(t, "CRANE")

	var scr screen.Screen = s
	for i := 0; i < 6; i++ {
		scr = typeWord(scr.(*GameScreen), "robot")
		scr, _ = scr.Update(specialKey(tea.KeyEnter))
	}

	gs := scr.(*GameScreen)
	if !gs.over() {
		t.Fatal("expected terminal state after six guesses")
	}
	if gs.message != "The word was CRANE" {
		t.Errorf("message = %q", gs.message)
	}
	if gs.rec.Played != 1 {
		t.Errorf("played = %d", gs.rec.Played)
	}
	for _, n := range gs.rec.Stats {
		if n != 0 {
			t.Errorf("loss must not land in the distribution: %v", gs.rec.Stats)
		}
	}
}

func TestGameScreen_InputIgnoredAfterGameOver(t *testing.T) {
	s := testGameScreen(t, "CRANE")

	var scr screen.Screen = typeWord(s, "crane")
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(keyPress('a'))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))

	gs := scr.(*GameScreen)
	if gs.eng.Attempts() != 1 {
		t.Errorf("attempts = %d, want 1", gs.eng.Attempts())
	}
}

func TestGameScreen_PersistWritesRecord(t *testing.T) {
	s := testGameScreen(t, "CRANE")

	var scr screen.Screen = typeWord(s, "crane")
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	gs := scr.(*GameScreen)

	letters, statuses := gs.eng.GuessHistory()
	msg := gs.persistResult(true, letters, statuses)()
	if done, ok := msg.(persistDoneMsg); !ok || done.Err != nil {
		t.Fatalf("persistResult returned %v", msg)
	}

	if _, err := os.Stat(gs.recordPath); err != nil {
		t.Fatalf("record file missing: %v", err)
	}
	loaded, err := record.Load(gs.recordPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.LastPlayed != 42 {
		t.Errorf("LastPlayed = %d, want 42", loaded.LastPlayed)
	}
	if loaded.LastResult == nil || !*loaded.LastResult {
		t.Error("expected a stored win")
	}
}

func TestGameScreen_RestoreFinishedDay(t *testing.T) {
	list := testList(t)
	sel := puzzle.NewSelector(list, time.Time{})
	s := New("Wordrow", sel, list, filepath.Join(t.TempDir(), "stats.json"), nil, zerolog.Nop())

	eng, err := boardgame.NewEngine("CRANE", list)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	won := true
	if err := eng.Replay("SLATECRANE", "0020222222", &won); err != nil {
		t.Fatalf("Replay: %v", err)
	}

	var scr screen.Screen = s
	scr, cmd := scr.Update(boardReadyMsg{
		Rec:      record.Fresh(),
		Puzzle:   puzzle.Puzzle{Index: 42, Solution: "CRANE"},
		Engine:   eng,
		Restored: true,
	})

	gs := scr.(*GameScreen)
	if !gs.saved {
		t.Error("restored game must not be persisted again")
	}
	if gs.message != "Magnificent!" {
		t.Errorf("message = %q", gs.message)
	}
	if cmd == nil {
		t.Error("expected the countdown tick to start")
	}
}

func TestGameScreen_ViewStates(t *testing.T) {
	s := testGameScreen(t, "CRANE")
	if s.View(80, 24) == "" {
		t.Error("expected a rendered board")
	}

	s.errMsg = "boom"
	if !strings.Contains(s.View(80, 24), "boom") {
		t.Error("expected the error in the view")
	}
}

func TestGameScreen_CountdownShownWhenOver(t *testing.T) {
	s := testGameScreen(t, "CRANE")

	var scr screen.Screen = typeWord(s, "crane")
	scr, _ = scr.Update(specialKey(tea.KeyEnter))

	gs := scr.(*GameScreen)
	view := gs.View(80, 24)
	if !strings.Contains(view, "Next Wordrow in") {
		t.Errorf("expected countdown in view:\n%s", view)
	}
}
