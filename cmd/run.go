package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ankitha/wordrow/internal/app"
	"github.com/ankitha/wordrow/internal/config"
	"github.com/ankitha/wordrow/internal/history"
	"github.com/ankitha/wordrow/internal/logging"
	"github.com/ankitha/wordrow/internal/puzzle"
	"github.com/ankitha/wordrow/internal/words"
)

// runApp builds dependencies from the configuration and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.EnsureDataDir(); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	logger, closeLog, err := logging.Open(cfg.LogFile)
	if err != nil {
		return err
	}
	if closeLog != nil {
		defer func() { _ = closeLog() }()
	}

	sel, list, err := buildSelector(cfg)
	if err != nil {
		return err
	}

	// The archive is optional; the game still runs when the database
	// cannot be opened.
	hist, err := history.Open(cfg.HistoryPath())
	if err != nil {
		logger.Warn().Err(err).Msg("history database unavailable")
		fmt.Fprintln(os.Stderr, "History unavailable:", err)
		hist = nil
	}
	if hist != nil {
		defer func() { _ = hist.Close() }()
	}

	return app.Run(app.Options{
		Name:       cfg.PuzzleName,
		Selector:   sel,
		List:       list,
		RecordPath: cfg.RecordPath(),
		History:    hist,
		Logger:     logger,
	})
}

// buildSelector loads the word lists and the puzzle epoch.
func buildSelector(cfg config.Config) (*puzzle.Selector, *words.List, error) {
	list, err := words.Load(cfg.SolutionsFile, cfg.AllowedFile)
	if err != nil {
		return nil, nil, fmt.Errorf("load word lists: %w", err)
	}
	epoch, err := cfg.Epoch()
	if err != nil {
		return nil, nil, fmt.Errorf("parse epoch: %w", err)
	}
	return puzzle.NewSelector(list, epoch), list, nil
}
