package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/learnhub/learnhub/internal/achievements"
	"github.com/learnhub/learnhub/internal/app"
	"github.com/learnhub/learnhub/internal/catalog"
	"github.com/learnhub/learnhub/internal/chat"
	"github.com/learnhub/learnhub/internal/lessongen"
	"github.com/learnhub/learnhub/internal/llm"
	"github.com/learnhub/learnhub/internal/progress"
	"github.com/learnhub/learnhub/internal/store"
	"github.com/learnhub/learnhub/internal/ui/theme"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	svc, err := progress.Load(ctx, st.Progress(), achievements.NewChecker())
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}

	// Opening the app counts as today's visit and drives the streak.
	if _, err := svc.RecordVisit(ctx, time.Now()); err != nil {
		return fmt.Errorf("record visit: %w", err)
	}

	if v, ok, _ := st.Settings().Get(ctx, store.SettingDarkMode); ok {
		theme.SetDarkMode(v != "false")
	}

	deps := app.Deps{
		Progress: svc,
		Catalog:  catalog.New(svc.Record().DynamicTopics),
		Settings: st.Settings(),
	}

	provider, err := buildProvider(ctx, st)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI features will be unavailable.")
	} else {
		deps.Generator = lessongen.NewGenerator(provider)
		deps.Tutor = chat.NewTutor(provider, svc)
	}

	return app.Run(deps)
}

// buildProvider resolves LLM configuration in priority order: explicit
// env config, discovered bare API keys, then the api_key stored in
// settings (used with the default Anthropic provider).
func buildProvider(ctx context.Context, st *store.Store) (llm.Provider, error) {
	cfg := llm.ConfigFromEnv()
	if cfg.Validate() != nil {
		if discovered, ok := llm.DiscoverConfig(); ok {
			cfg = discovered
		} else if key, ok, _ := st.Settings().Get(ctx, store.SettingAPIKey); ok {
			cfg = llm.DefaultConfig()
			cfg.Anthropic.APIKey = key
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return llm.NewProvider(ctx, cfg, st.Events())
}
