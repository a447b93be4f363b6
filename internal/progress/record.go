package progress

import (
	"encoding/json"

	"github.com/learnhub/learnhub/internal/catalog"
)

// DateLayout is the day-granularity format used for the last-visit field.
const DateLayout = "2006-01-02"

// XP awards for the trackable actions.
const (
	XPSection     = 30
	XPModule      = 100
	XPQuiz        = 20
	XPAchievement = 50
)

// Record is the single durable progress document. Field tags match the
// stored JSON shape; unknown stored fields are ignored and absent fields
// keep their compile-time defaults on load.
type Record struct {
	XP                   int              `json:"xp"`
	Level                int              `json:"level"`
	Streak               int              `json:"streak"`
	LastVisit            string           `json:"lastVisit"`
	CompletedModules     []string         `json:"completedModules"`
	CompletedSections    map[string]bool  `json:"completedSections"`
	UnlockedAchievements []string         `json:"unlockedAchievements"`
	QuizScores           map[string]int   `json:"quizScores"`
	DynamicTopics        []catalog.Lesson `json:"dynamicTopics"`
	BookmarkedTopics     []string         `json:"bookmarkedTopics"`
	ChatMessages         int              `json:"chatMessages"`
}

// Defaults returns the first-run record.
func Defaults() Record {
	return Record{
		XP:                   0,
		Level:                1,
		Streak:               0,
		CompletedModules:     []string{},
		CompletedSections:    map[string]bool{},
		UnlockedAchievements: []string{},
		QuizScores:           map[string]int{},
		DynamicTopics:        []catalog.Lesson{},
		BookmarkedTopics:     []string{},
	}
}

// Decode builds a record from stored JSON by merging stored fields over
// defaults: stored values win, missing fields fall back. Absent or
// malformed input yields pure defaults.
func Decode(data []byte) Record {
	rec := Defaults()
	if len(data) == 0 {
		return rec
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return Defaults()
	}
	// Maps and slices nulled out by explicit JSON nulls are restored so
	// callers never index into nil.
	if rec.CompletedModules == nil {
		rec.CompletedModules = []string{}
	}
	if rec.CompletedSections == nil {
		rec.CompletedSections = map[string]bool{}
	}
	if rec.UnlockedAchievements == nil {
		rec.UnlockedAchievements = []string{}
	}
	if rec.QuizScores == nil {
		rec.QuizScores = map[string]int{}
	}
	if rec.DynamicTopics == nil {
		rec.DynamicTopics = []catalog.Lesson{}
	}
	if rec.BookmarkedTopics == nil {
		rec.BookmarkedTopics = []string{}
	}
	return rec
}

// Encode serializes the record for storage.
func (r Record) Encode() ([]byte, error) {
	return json.Marshal(r)
}

// HasAchievement reports whether id has been unlocked.
func (r Record) HasAchievement(id string) bool {
	for _, got := range r.UnlockedAchievements {
		if got == id {
			return true
		}
	}
	return false
}

// HasBookmark reports whether topicID is bookmarked.
func (r Record) HasBookmark(topicID string) bool {
	for _, got := range r.BookmarkedTopics {
		if got == topicID {
			return true
		}
	}
	return false
}

// HasCompletedModule reports whether moduleID has been completed.
func (r Record) HasCompletedModule(moduleID string) bool {
	for _, got := range r.CompletedModules {
		if got == moduleID {
			return true
		}
	}
	return false
}
