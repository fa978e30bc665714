package stats

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/ankitha/wordrow/internal/record"
	statspkg "github.com/ankitha/wordrow/internal/stats"
)

func TestStatsScreen_LoadsRecord(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stats.json")

	rec := record.Fresh()
	statspkg.Apply(rec, 10, true, 3, "SLATECRANEROBOT", "002020100222222")
	if err := record.Save(path, rec); err != nil {
		t.Fatalf("Save: %v", err)
	}

	s := New(path)
	msg := s.Init()()
	loaded, ok := msg.(summaryLoadedMsg)
	if !ok {
		t.Fatalf("unexpected message %T", msg)
	}
	if loaded.Summary.Played != 1 || loaded.Summary.Wins != 1 {
		t.Errorf("summary = %+v", loaded.Summary)
	}

	s.Update(loaded)
	view := s.View(80, 24)
	if !strings.Contains(view, "Played 1") {
		t.Errorf("expected headline in view:\n%s", view)
	}
	if !strings.Contains(view, "Guess distribution") {
		t.Errorf("expected distribution in view:\n%s", view)
	}
}

func TestStatsScreen_EmptyRecord(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "stats.json"))
	msg := s.Init()()
	s.Update(msg)

	view := s.View(80, 24)
	if !strings.Contains(view, "No games played yet") {
		t.Errorf("expected empty-state view:\n%s", view)
	}
}
