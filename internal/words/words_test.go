package words

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNewNormalizesAndIndexes(t *testing.T) {
	l, err := New([]string{" Crane ", "ROBOT"}, []string{"llama"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if l.SolutionCount() != 2 {
		t.Fatalf("SolutionCount = %d, want 2", l.SolutionCount())
	}
	if l.Solution(0) != "crane" || l.Solution(1) != "robot" {
		t.Errorf("solutions = %q, %q", l.Solution(0), l.Solution(1))
	}
	// Solutions are always allowed; matching ignores case.
	for _, w := range []string{"crane", "CRANE", "llama", "LlAmA"} {
		if !l.Allowed(w) {
			t.Errorf("Allowed(%q) = false", w)
		}
	}
	if l.Allowed("zzzzz") {
		t.Error("Allowed(zzzzz) = true")
	}
}

func TestNewRejectsInvalidWords(t *testing.T) {
	for _, bad := range []string{"four", "sixsix", "ab1de", "ab de"} {
		if _, err := New([]string{bad}, nil); err == nil {
			t.Errorf("New([%q]): expected error", bad)
		}
	}

	_, err := New(nil, []string{"crane"})
	var wle *WordListError
	if !errors.As(err, &wle) {
		t.Fatalf("empty solutions: err = %v, want WordListError", err)
	}
	if wle.Source != "solutions" {
		t.Errorf("Source = %q, want solutions", wle.Source)
	}
}

func TestEmbeddedLists(t *testing.T) {
	l, err := Embedded()
	if err != nil {
		t.Fatalf("Embedded: %v", err)
	}
	if l.SolutionCount() < 300 {
		t.Errorf("SolutionCount = %d, want a year's worth at least", l.SolutionCount())
	}
	if !l.Allowed(l.Solution(0)) {
		t.Error("first solution not in allowed set")
	}
}

func TestLoadFileOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "solutions.txt")
	if err := os.WriteFile(path, []byte("crane\nrobot\n\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	l, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if l.SolutionCount() != 2 {
		t.Errorf("SolutionCount = %d, want 2", l.SolutionCount())
	}
	// Embedded allowed extras still apply.
	if !l.Allowed("llama") {
		t.Error("embedded allowed word rejected after solutions override")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"), "")
	var wle *WordListError
	if !errors.As(err, &wle) {
		t.Fatalf("err = %v, want WordListError", err)
	}
}
