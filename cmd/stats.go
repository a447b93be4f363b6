package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/learnhub/learnhub/internal/achievements"
	"github.com/learnhub/learnhub/internal/progress"
	"github.com/learnhub/learnhub/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		svc, err := progress.Load(ctx, st.Progress(), achievements.NewChecker())
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}

		rec := svc.Record()
		earned, span := progress.LevelProgress(rec)

		fmt.Printf("Level:        %d (%d/%d XP to next)\n", rec.Level, earned, span)
		fmt.Printf("Total XP:     %d\n", rec.XP)
		fmt.Printf("Streak:       %d day(s)\n", rec.Streak)
		fmt.Printf("Last visit:   %s\n", orNever(rec.LastVisit))
		fmt.Printf("Modules done: %d\n", len(rec.CompletedModules))
		fmt.Printf("Sections:     %d\n", len(rec.CompletedSections))
		fmt.Printf("Quizzes:      %d\n", len(rec.QuizScores))
		fmt.Printf("Chat asked:   %d\n", rec.ChatMessages)

		fmt.Printf("\nAchievements (%d/%d):\n", len(rec.UnlockedAchievements), len(achievements.Catalog()))
		for _, ach := range achievements.Catalog() {
			mark := " "
			if rec.HasAchievement(ach.ID) {
				mark = "✓"
			}
			fmt.Printf("  [%s] %s %s — %s\n", mark, ach.Icon, ach.Name, ach.Description)
		}
		return nil
	},
}

func orNever(s string) string {
	if s == "" {
		return "never"
	}
	return s
}
