package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/learnhub/learnhub/internal/achievements"
	"github.com/learnhub/learnhub/internal/catalog"
	"github.com/learnhub/learnhub/internal/lessongen"
	"github.com/learnhub/learnhub/internal/progress"
	"github.com/learnhub/learnhub/internal/store"
)

var generateCmd = &cobra.Command{
	Use:   "generate [topic]",
	Short: "Generate a lesson without opening the app",
	Long: "Creates an AI-generated lesson from a topic or a text file and adds " +
		"it to your lesson list. Open learnhub afterwards to study it.",
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		topic := strings.TrimSpace(strings.Join(args, " "))

		if file == "" && topic == "" {
			return fmt.Errorf("provide a topic argument or --file")
		}
		if file != "" && topic != "" {
			return fmt.Errorf("provide either a topic or --file, not both")
		}

		ctx := cmd.Context()
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		provider, err := buildProvider(ctx, st)
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}
		gen := lessongen.NewGenerator(provider)

		var lesson catalog.Lesson
		if file != "" {
			fmt.Printf("✨ Creating a lesson from %s...\n", file)
			lesson, err = gen.FromFile(ctx, file)
		} else {
			fmt.Printf("✨ Creating a lesson about %q...\n", topic)
			lesson, err = gen.FromTopic(ctx, topic)
		}
		if err != nil {
			return fmt.Errorf("%s", lessongen.UserMessage(err))
		}

		svc, err := progress.Load(ctx, st.Progress(), achievements.NewChecker())
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}
		if err := svc.AddDynamicLesson(ctx, lesson); err != nil {
			return fmt.Errorf("save lesson: %w", err)
		}

		fmt.Printf("%s  %s — %d sections. Run learnhub to start learning.\n",
			lesson.Icon, lesson.Title, len(lesson.Sections))
		return nil
	},
}

func init() {
	generateCmd.Flags().String("file", "", "Build the lesson from a text file instead of a topic")
}
