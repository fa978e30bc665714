// Package record models the single persisted day record: which puzzle was
// last played, its guess history, and the all-time statistics. One JSON file
// per installation, loaded once at startup and written back at most once per
// session.
package record

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Attempts is the number of rows in the win distribution.
const Attempts = 6

// PersistenceError wraps a record load or save failure. A load failure is
// recoverable (the caller falls back to a fresh record); a save failure is
// surfaced but never corrupts the previous file on disk.
type PersistenceError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s record %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Record is the persisted state. LastGuesses holds two equal-length strings:
// the concatenated letters of every submitted row and their status digits
// ('0' absent, '1' present, '2' correct), row-major. LastResult nil means the
// stored day was never finished. Stats[i] counts wins in i+1 attempts.
type Record struct {
	LastPlayed  int           `json:"last_played"`
	LastGuesses [2]string     `json:"last_guesses"`
	LastResult  *bool         `json:"last_result"`
	Played      int           `json:"played"`
	Stats       [Attempts]int `json:"stats"`
}

// Fresh returns an empty record. LastPlayed -1 makes day index 0 count as
// unplayed.
func Fresh() *Record {
	return &Record{LastPlayed: -1}
}

// Valid checks internal consistency of the guess history strings.
func (r *Record) Valid() bool {
	letters, statuses := r.LastGuesses[0], r.LastGuesses[1]
	return len(letters) == len(statuses) && len(letters)%5 == 0 && len(letters) <= 5*Attempts
}

// Load reads the record at path. A missing file yields a fresh record and no
// error; an unreadable or corrupt file yields a fresh record plus a
// PersistenceError so the caller can log it.
func Load(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Fresh(), nil
		}
		return Fresh(), &PersistenceError{Op: "load", Path: path, Err: err}
	}

	rec := Fresh()
	if err := json.Unmarshal(data, rec); err != nil {
		return Fresh(), &PersistenceError{Op: "load", Path: path, Err: err}
	}
	if !rec.Valid() {
		return Fresh(), &PersistenceError{Op: "load", Path: path, Err: fmt.Errorf("inconsistent guess history")}
	}
	return rec, nil
}

// Save writes the record atomically: to a temp file in the same directory,
// then rename. A crash mid-write leaves the previous record intact.
func Save(path string, rec *Record) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return &PersistenceError{Op: "save", Path: path, Err: err}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &PersistenceError{Op: "save", Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return &PersistenceError{Op: "save", Path: path, Err: err}
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return &PersistenceError{Op: "save", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &PersistenceError{Op: "save", Path: path, Err: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return &PersistenceError{Op: "save", Path: path, Err: err}
	}
	return nil
}
