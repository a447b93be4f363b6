package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"progress", "settings", "llm_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestProgressRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Progress()
	ctx := context.Background()

	// No document yet.
	data, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if data != nil {
		t.Fatalf("load (empty) = %q, want nil", data)
	}

	if err := repo.Save(ctx, []byte(`{"xp":150}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(data) != `{"xp":150}` {
		t.Errorf("load = %q, want %q", data, `{"xp":150}`)
	}

	// Save replaces the whole document.
	if err := repo.Save(ctx, []byte(`{"xp":200}`)); err != nil {
		t.Fatalf("second save: %v", err)
	}
	data, _ = repo.Load(ctx)
	if string(data) != `{"xp":200}` {
		t.Errorf("load after overwrite = %q, want %q", data, `{"xp":200}`)
	}
}

func TestProgressReset(t *testing.T) {
	s := openTestStore(t)
	repo := s.Progress()
	ctx := context.Background()

	if err := repo.Save(ctx, []byte(`{"xp":500}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	data, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load after reset: %v", err)
	}
	if data != nil {
		t.Errorf("load after reset = %q, want nil", data)
	}

	// Resetting again is a no-op.
	if err := repo.Reset(ctx); err != nil {
		t.Errorf("second reset: %v", err)
	}
}

func TestSettings(t *testing.T) {
	s := openTestStore(t)
	repo := s.Settings()
	ctx := context.Background()

	_, ok, err := repo.Get(ctx, SettingAPIKey)
	if err != nil {
		t.Fatalf("get (absent): %v", err)
	}
	if ok {
		t.Fatal("get (absent) ok = true, want false")
	}

	if err := repo.Set(ctx, SettingAPIKey, "sk-test"); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, err := repo.Get(ctx, SettingAPIKey)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || v != "sk-test" {
		t.Errorf("get = (%q, %v), want (%q, true)", v, ok, "sk-test")
	}

	// Set replaces.
	if err := repo.Set(ctx, SettingAPIKey, "sk-new"); err != nil {
		t.Fatalf("replace: %v", err)
	}
	v, _, _ = repo.Get(ctx, SettingAPIKey)
	if v != "sk-new" {
		t.Errorf("get after replace = %q, want %q", v, "sk-new")
	}

	if err := repo.Delete(ctx, SettingAPIKey); err != nil {
		t.Fatalf("delete: %v", err)
	}
	_, ok, _ = repo.Get(ctx, SettingAPIKey)
	if ok {
		t.Error("get after delete ok = true, want false")
	}
	if err := repo.Delete(ctx, "never_set"); err != nil {
		t.Errorf("delete absent key: %v", err)
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.Events()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "mock",
			Model:        "mock-model",
			Purpose:      "lesson_generation",
			InputTokens:  100 + i,
			OutputTokens: 200 + i,
			LatencyMs:    50,
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}

	// Newest first, sequences monotonic from 1.
	if events[0].Sequence != 3 || events[2].Sequence != 1 {
		t.Errorf("sequences = [%d %d %d], want [3 2 1]",
			events[0].Sequence, events[1].Sequence, events[2].Sequence)
	}
	if events[0].InputTokens != 102 {
		t.Errorf("newest InputTokens = %d, want 102", events[0].InputTokens)
	}
}

func TestQueryLLMEventsFiltered(t *testing.T) {
	s := openTestStore(t)
	repo := s.Events()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "anthropic",
			Model:    "m",
			Purpose:  "chat",
			Success:  i%2 == 0,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query limit: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("limit 2 returned %d events", len(events))
	}

	events, err = repo.QueryLLMEvents(ctx, QueryOpts{After: 3})
	if err != nil {
		t.Fatalf("query after: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("after 3 returned %d events, want 2", len(events))
	}
	for _, e := range events {
		if e.Sequence <= 3 {
			t.Errorf("event sequence %d <= 3", e.Sequence)
		}
	}
}
