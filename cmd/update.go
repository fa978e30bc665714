package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ankitha/wordrow/internal/selfupdate"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update wordrow to the latest version",
	RunE: func(cmd *cobra.Command, args []string) error {
		checker := selfupdate.NewChecker(selfupdate.WithTimeout(2 * time.Minute))

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		if checkOnly, _ := cmd.Flags().GetBool("check"); checkOnly {
			result, err := checker.Check(ctx, &selfupdate.CheckInput{Version: version})
			if err != nil {
				return err
			}
			if result.UpdateAvailable {
				fmt.Printf("Update available: %s (%s)\n", result.LatestVersion, result.ReleaseURL)
			} else {
				fmt.Println("Already running the latest version.")
			}
			return nil
		}

		err := checker.Update(ctx, version, "", func(_, detail string) {
			fmt.Println(detail)
		})

		if err == nil {
			return nil
		}

		if errors.Is(err, selfupdate.ErrDevBuild) {
			fmt.Println("Cannot update a development build. Install a release build first.")
			return nil
		}
		if errors.Is(err, selfupdate.ErrAlreadyLatest) {
			fmt.Println("Already running the latest version.")
			return nil
		}
		if os.IsPermission(err) {
			return fmt.Errorf("%w\n\nTry running: sudo wordrow update", err)
		}

		return err
	},
}

func init() {
	updateCmd.Flags().Bool("check", false, "Only check whether a newer version exists")
}
