package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ankitha/wordrow/internal/game"
	"github.com/ankitha/wordrow/internal/record"
	"github.com/ankitha/wordrow/internal/share"
)

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Print the share text for your last finished puzzle",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		rec, err := record.Load(cfg.RecordPath())
		if err != nil {
			return err
		}
		if rec.LastPlayed < 0 || rec.LastResult == nil {
			fmt.Println("No finished puzzle to share yet.")
			return nil
		}

		rows, err := marksFromHistory(rec.LastGuesses[1])
		if err != nil {
			return fmt.Errorf("stored guesses are unreadable: %w", err)
		}

		text := share.Text(cfg.PuzzleName, rec.LastPlayed, *rec.LastResult, rows)
		fmt.Println(text)

		if copyFlag, _ := cmd.Flags().GetBool("copy"); copyFlag {
			if err := share.Copy(text); err != nil {
				return fmt.Errorf("copy to clipboard: %w", err)
			}
			fmt.Println("Copied to clipboard.")
		}
		return nil
	},
}

func init() {
	shareCmd.Flags().Bool("copy", false, "Also copy the share text to the clipboard")
}

// marksFromHistory converts a stored status string back into per-row
// letter states.
func marksFromHistory(statuses string) ([][game.Cols]game.LetterState, error) {
	if len(statuses)%game.Cols != 0 {
		return nil, fmt.Errorf("status string length %d is not a multiple of %d", len(statuses), game.Cols)
	}
	rows := make([][game.Cols]game.LetterState, 0, len(statuses)/game.Cols)
	for r := 0; r < len(statuses)/game.Cols; r++ {
		var row [game.Cols]game.LetterState
		for c := 0; c < game.Cols; c++ {
			state, err := game.ParseStateCode(statuses[r*game.Cols+c])
			if err != nil {
				return nil, err
			}
			row[c] = state
		}
		rows = append(rows, row)
	}
	return rows, nil
}
