// Package achievements defines the fixed badge catalog and the evaluator
// that detects newly earned badges after a progress mutation.
package achievements

import "github.com/learnhub/learnhub/internal/progress"

// Achievement pairs a badge's display data with its unlock predicate.
// Predicates are pure functions of a record snapshot.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Unlocked    func(r progress.Record) bool
}

// Catalog returns the fixed achievement list, in display order.
func Catalog() []Achievement {
	return []Achievement{
		{
			ID:          "first_steps",
			Name:        "First Steps",
			Description: "Complete your first learning module",
			Icon:        "🎯",
			Unlocked: func(r progress.Record) bool {
				return len(r.CompletedModules) >= 1
			},
		},
		{
			ID:          "knowledge_seeker",
			Name:        "Knowledge Seeker",
			Description: "Complete 3 learning modules",
			Icon:        "📚",
			Unlocked: func(r progress.Record) bool {
				return len(r.CompletedModules) >= 3
			},
		},
		{
			ID:          "on_fire",
			Name:        "On Fire!",
			Description: "Maintain a 3-day streak",
			Icon:        "🔥",
			Unlocked: func(r progress.Record) bool {
				return r.Streak >= 3
			},
		},
		{
			ID:          "dedicated",
			Name:        "Dedicated Learner",
			Description: "Maintain a 7-day streak",
			Icon:        "⭐",
			Unlocked: func(r progress.Record) bool {
				return r.Streak >= 7
			},
		},
		{
			ID:          "level_5",
			Name:        "Rising Star",
			Description: "Reach level 5",
			Icon:        "🌟",
			Unlocked: func(r progress.Record) bool {
				return r.Level >= 5
			},
		},
		{
			ID:          "level_10",
			Name:        "Expert",
			Description: "Reach level 10",
			Icon:        "👑",
			Unlocked: func(r progress.Record) bool {
				return r.Level >= 10
			},
		},
		{
			ID:          "quiz_master",
			Name:        "Quiz Master",
			Description: "Get a perfect score on any quiz",
			Icon:        "🎓",
			Unlocked: func(r progress.Record) bool {
				for _, score := range r.QuizScores {
					if score == 100 {
						return true
					}
				}
				return false
			},
		},
		{
			ID:          "chat_curious",
			Name:        "Curious Mind",
			Description: "Ask your AI tutor a question",
			Icon:        "🤔",
			Unlocked: func(r progress.Record) bool {
				return r.ChatMessages > 0
			},
		},
	}
}

// ByID looks up an achievement in the catalog.
func ByID(id string) (Achievement, bool) {
	for _, a := range Catalog() {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}

// Checker implements progress.AchievementChecker over the fixed catalog.
type Checker struct {
	catalog []Achievement
}

// NewChecker builds a checker over the full catalog.
func NewChecker() *Checker {
	return &Checker{catalog: Catalog()}
}

// NewlyUnlocked returns the IDs of achievements whose predicates hold for
// the record but are not yet in its unlocked set, in catalog order.
func (c *Checker) NewlyUnlocked(r progress.Record) []string {
	var ids []string
	for _, a := range c.catalog {
		if r.HasAchievement(a.ID) {
			continue
		}
		if a.Unlocked(r) {
			ids = append(ids, a.ID)
		}
	}
	return ids
}
