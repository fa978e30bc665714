package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PuzzleName != "Wordrow" {
		t.Errorf("PuzzleName = %q", cfg.PuzzleName)
	}
	if cfg.EpochDate != "2021-06-19" {
		t.Errorf("EpochDate = %q", cfg.EpochDate)
	}
	if filepath.Base(cfg.DataDir) != "wordrow" {
		t.Errorf("DataDir = %q, want a wordrow directory", cfg.DataDir)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("WORDROW_DATA_DIR", "/tmp/custom")
	t.Setenv("WORDROW_NAME", "Wortspiel")
	t.Setenv("WORDROW_EPOCH", "2024-01-01")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataDir != "/tmp/custom" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if cfg.PuzzleName != "Wortspiel" {
		t.Errorf("PuzzleName = %q", cfg.PuzzleName)
	}

	epoch, err := cfg.Epoch()
	if err != nil {
		t.Fatalf("Epoch: %v", err)
	}
	want := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)
	if !epoch.Equal(want) {
		t.Errorf("Epoch = %v, want %v", epoch, want)
	}
}

func TestEpochRejectsGarbage(t *testing.T) {
	cfg := Config{EpochDate: "not-a-date"}
	if _, err := cfg.Epoch(); err == nil {
		t.Error("expected parse error")
	}
}

func TestPaths(t *testing.T) {
	cfg := Config{DataDir: "/data/wordrow"}
	if got := cfg.RecordPath(); got != filepath.Join("/data/wordrow", "stats.json") {
		t.Errorf("RecordPath = %q", got)
	}
	if got := cfg.HistoryPath(); got != filepath.Join("/data/wordrow", "history.db") {
		t.Errorf("HistoryPath = %q", got)
	}
}
