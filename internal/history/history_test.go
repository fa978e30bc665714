package history

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestInsertAndRecent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	days := []Result{
		{DayIndex: 10, Date: "2021-06-29", Solution: "SERVE", Won: true, Attempts: 4, Letters: "CRANESTOLESEVENSERVE", Statuses: "01000020000200222222"},
		{DayIndex: 11, Date: "2021-06-30", Solution: "HEATH", Won: false, Attempts: 6},
		{DayIndex: 12, Date: "2021-07-01", Solution: "DWARF", Won: true, Attempts: 3},
	}
	for _, r := range days {
		if err := s.Insert(ctx, r); err != nil {
			t.Fatalf("Insert(%d): %v", r.DayIndex, err)
		}
	}

	got, err := s.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Recent returned %d rows, want 3", len(got))
	}
	// Newest day first.
	if got[0].DayIndex != 12 || got[2].DayIndex != 10 {
		t.Errorf("order = %d, %d, %d", got[0].DayIndex, got[1].DayIndex, got[2].DayIndex)
	}
	if got[0].Solution != "DWARF" || !got[0].Won {
		t.Errorf("row = %+v", got[0])
	}
	if got[0].ID == "" {
		t.Error("missing generated id")
	}
}

func TestInsertSameDayIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	r := Result{DayIndex: 5, Date: "2021-06-24", Solution: "AWAKE", Won: true, Attempts: 2}
	if err := s.Insert(ctx, r); err != nil {
		t.Fatal(err)
	}
	// A replayed session re-archives the same day; the first row wins.
	r.Attempts = 5
	if err := s.Insert(ctx, r); err != nil {
		t.Fatal(err)
	}

	got, err := s.Recent(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("rows = %d, want 1", len(got))
	}
	if got[0].Attempts != 2 {
		t.Errorf("Attempts = %d, want the original 2", got[0].Attempts)
	}
}

func TestTotals(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	played, won, err := s.Totals(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if played != 0 || won != 0 {
		t.Errorf("empty totals = %d played, %d won", played, won)
	}

	s.Insert(ctx, Result{DayIndex: 1, Date: "2021-06-20", Solution: "REBUT", Won: true, Attempts: 3})
	s.Insert(ctx, Result{DayIndex: 2, Date: "2021-06-21", Solution: "SISSY", Won: false, Attempts: 6})

	played, won, err = s.Totals(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if played != 2 || won != 1 {
		t.Errorf("totals = %d played, %d won, want 2/1", played, won)
	}
}
