package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ankitha/wordrow/internal/history"
	"github.com/ankitha/wordrow/internal/record"
	"github.com/ankitha/wordrow/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print your statistics without opening the TUI",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		rec, err := record.Load(cfg.RecordPath())
		if err != nil {
			fmt.Println("Warning:", err)
		}
		summary := stats.Summarize(rec)

		if summary.Played == 0 {
			fmt.Println("No games played yet.")
			return nil
		}

		fmt.Printf("Played: %d\n", summary.Played)
		fmt.Printf("Won:    %d (%.0f%%)\n", summary.Wins, summary.WinPct)
		fmt.Println("\nGuess distribution:")

		max := 0
		for _, n := range summary.Distribution {
			if n > max {
				max = n
			}
		}
		for i, n := range summary.Distribution {
			width := 0
			if max > 0 {
				width = 30 * n / max
			}
			if n > 0 && width < 1 {
				width = 1
			}
			fmt.Printf("  %d %s %d\n", i+1, strings.Repeat("█", width), n)
		}

		// The archive holds every finished day, not only the running
		// counters, so report it when available.
		if hist, err := history.Open(cfg.HistoryPath()); err == nil {
			defer func() { _ = hist.Close() }()
			if played, won, err := hist.Totals(context.Background()); err == nil && played > 0 {
				fmt.Printf("\nArchived results: %d (won %d)\n", played, won)
			}
		}

		return nil
	},
}
