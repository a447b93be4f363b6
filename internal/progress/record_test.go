package progress

import (
	"testing"

	"github.com/learnhub/learnhub/internal/catalog"
)

func TestDecodeDefaults(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"nil input", nil},
		{"empty input", []byte{}},
		{"malformed json", []byte(`{"xp": not-a-number`)},
	}
	for _, tt := range tests {
		rec := Decode(tt.data)
		if rec.XP != 0 || rec.Level != 1 || rec.Streak != 0 {
			t.Errorf("%s: got xp=%d level=%d streak=%d, want fresh defaults",
				tt.name, rec.XP, rec.Level, rec.Streak)
		}
		if rec.CompletedSections == nil || rec.QuizScores == nil {
			t.Errorf("%s: maps not initialized", tt.name)
		}
	}
}

func TestDecodeMergesOverDefaults(t *testing.T) {
	rec := Decode([]byte(`{"xp": 250, "level": 3, "completedModules": ["m1"]}`))

	if rec.XP != 250 {
		t.Errorf("xp = %d, want 250 (stored wins)", rec.XP)
	}
	if rec.Level != 3 {
		t.Errorf("level = %d, want 3", rec.Level)
	}
	// Fields absent from storage keep their defaults.
	if rec.Streak != 0 {
		t.Errorf("streak = %d, want default 0", rec.Streak)
	}
	if rec.CompletedSections == nil || len(rec.CompletedSections) != 0 {
		t.Errorf("completedSections = %v, want empty map", rec.CompletedSections)
	}
	if len(rec.CompletedModules) != 1 || rec.CompletedModules[0] != "m1" {
		t.Errorf("completedModules = %v, want [m1]", rec.CompletedModules)
	}
}

func TestDecodeRestoresNulledCollections(t *testing.T) {
	rec := Decode([]byte(`{"quizScores": null, "dynamicTopics": null}`))
	if rec.QuizScores == nil {
		t.Error("quizScores is nil after explicit null")
	}
	if rec.DynamicTopics == nil {
		t.Error("dynamicTopics is nil after explicit null")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	orig := Defaults()
	orig.XP = 380
	orig.Level = 3
	orig.Streak = 5
	orig.LastVisit = "2026-08-28"
	orig.CompletedModules = []string{"javascript_basics"}
	orig.CompletedSections = map[string]bool{"javascript_basics_variables": true}
	orig.UnlockedAchievements = []string{"first_steps", "on_fire"}
	orig.QuizScores = map[string]int{"javascript_basics_variables": 100}
	orig.DynamicTopics = []catalog.Lesson{{ID: "topic_1", Title: "Black Holes", Dynamic: true}}
	orig.BookmarkedTopics = []string{"black_holes"}
	orig.ChatMessages = 2

	data, err := orig.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got := Decode(data)

	if got.XP != orig.XP || got.Level != orig.Level || got.Streak != orig.Streak {
		t.Errorf("scalars = (%d,%d,%d), want (%d,%d,%d)",
			got.XP, got.Level, got.Streak, orig.XP, orig.Level, orig.Streak)
	}
	if got.LastVisit != orig.LastVisit {
		t.Errorf("lastVisit = %q, want %q", got.LastVisit, orig.LastVisit)
	}
	if !got.CompletedSections["javascript_basics_variables"] {
		t.Error("completedSections lost the stored key")
	}
	if got.QuizScores["javascript_basics_variables"] != 100 {
		t.Error("quizScores lost the stored score")
	}
	if len(got.DynamicTopics) != 1 || got.DynamicTopics[0].ID != "topic_1" {
		t.Errorf("dynamicTopics = %v, want one topic_1", got.DynamicTopics)
	}
	if !got.HasAchievement("on_fire") || !got.HasBookmark("black_holes") {
		t.Error("membership lookups failed after round trip")
	}
}
