package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the statistics record and the history database",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			fmt.Printf("This deletes %s and %s.\nRe-run with --yes to confirm.\n",
				cfg.RecordPath(), cfg.HistoryPath())
			return nil
		}

		for _, path := range []string{cfg.RecordPath(), cfg.HistoryPath()} {
			if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("remove %s: %w", path, err)
			}
		}
		fmt.Println("All game data removed.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
}
