package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/learnhub/learnhub/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe all learning progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Println("This deletes all XP, streaks, achievements, and generated lessons.")
			fmt.Println("Re-run with --yes to confirm.")
			return nil
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		if err := st.Progress().Reset(context.Background()); err != nil {
			return fmt.Errorf("reset progress: %w", err)
		}
		fmt.Println("Progress reset. Fresh start!")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}
