// Package config resolves process configuration from the environment. A
// .env file in the working directory is honored for development setups.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the full process configuration. Everything has a working
// default; the game runs with no environment at all.
type Config struct {
	// DataDir holds the day record and the history database. Empty means
	// the XDG data directory.
	DataDir string `env:"WORDROW_DATA_DIR"`

	// EpochDate is the date of puzzle #0, YYYY-MM-DD in local time.
	EpochDate string `env:"WORDROW_EPOCH" envDefault:"2021-06-19"`

	// SolutionsFile and AllowedFile override the embedded word lists.
	SolutionsFile string `env:"WORDROW_SOLUTIONS_FILE"`
	AllowedFile   string `env:"WORDROW_ALLOWED_FILE"`

	// PuzzleName is the title used in headers and share text.
	PuzzleName string `env:"WORDROW_NAME" envDefault:"Wordrow"`

	// LogFile enables debug logging to the given path. A TUI owns the
	// terminal, so logs never go to stdout.
	LogFile string `env:"WORDROW_LOG_FILE"`
}

// Load reads configuration from a .env file (if present) and the
// environment, and resolves the data directory.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.DataDir == "" {
		dir, err := defaultDataDir()
		if err != nil {
			return Config{}, err
		}
		cfg.DataDir = dir
	}
	return cfg, nil
}

// Epoch parses EpochDate as a local calendar date.
func (c Config) Epoch() (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", c.EpochDate, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse epoch %q: %w", c.EpochDate, err)
	}
	return t, nil
}

// RecordPath is the day record JSON file.
func (c Config) RecordPath() string {
	return filepath.Join(c.DataDir, "stats.json")
}

// HistoryPath is the SQLite archive of finished days.
func (c Config) HistoryPath() string {
	return filepath.Join(c.DataDir, "history.db")
}

// EnsureDataDir creates the data directory if needed.
func (c Config) EnsureDataDir() error {
	return os.MkdirAll(c.DataDir, 0o755)
}

// defaultDataDir resolves the platform data directory in priority order:
// $XDG_DATA_HOME/wordrow, then ~/.local/share/wordrow.
func defaultDataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "wordrow"), nil
}
