package cmd

import (
	"github.com/ankitha/wordrow/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wordrow",
	Short: "A daily word puzzle for your terminal",
	Long:  "Wordrow is a daily word puzzle: guess the five-letter word of the day in six tries, straight from your terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("data-dir", "", "Directory for the record file and history database (overrides WORDROW_DATA_DIR)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(shareCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// loadConfig reads the environment configuration and applies the
// --data-dir flag, which takes precedence.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if dir, _ := cmd.Flags().GetString("data-dir"); dir != "" {
		cfg.DataDir = dir
	}
	return cfg, nil
}
