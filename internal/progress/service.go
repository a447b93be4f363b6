package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/learnhub/learnhub/internal/catalog"
	"github.com/learnhub/learnhub/internal/store"
)

// AchievementChecker reports which achievement IDs a record has newly
// earned. Implementations must be pure: no side effects, no retained
// references to the record.
type AchievementChecker interface {
	NewlyUnlocked(r Record) []string
}

// VisitResult describes what a RecordVisit call did to the streak.
type VisitResult int

const (
	VisitSameDay VisitResult = iota
	VisitStreakContinued
	VisitStreakReset
)

// Service owns the in-memory progress record and funnels every mutation
// through the same sequence: mutate, evaluate achievements once, persist
// once. Unlock bonus XP may trigger at most one extra evaluation pass.
type Service struct {
	repo    store.ProgressRepo
	checker AchievementChecker
	rec     Record
}

// Load reads the stored record (merging over defaults) and returns a
// service bound to it.
func Load(ctx context.Context, repo store.ProgressRepo, checker AchievementChecker) (*Service, error) {
	data, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	return &Service{repo: repo, checker: checker, rec: Decode(data)}, nil
}

// Record returns a copy of the current record.
func (s *Service) Record() Record {
	return s.rec
}

// AddXP grants a positive XP amount and recomputes the level.
func (s *Service) AddXP(ctx context.Context, amount int) error {
	if amount <= 0 {
		return fmt.Errorf("xp amount must be positive, got %d", amount)
	}
	s.applyXP(amount)
	return s.commit(ctx)
}

// RecordVisit applies the daily streak rule: same day is a no-op, the
// day after the last visit extends the streak, anything else (first run,
// gap, clock moved backward) resets it to 1.
func (s *Service) RecordVisit(ctx context.Context, today time.Time) (VisitResult, error) {
	day := today.Format(DateLayout)
	if day == s.rec.LastVisit {
		return VisitSameDay, nil
	}

	result := VisitStreakReset
	if s.rec.LastVisit != "" {
		last, err := time.Parse(DateLayout, s.rec.LastVisit)
		if err == nil && last.AddDate(0, 0, 1).Format(DateLayout) == day {
			result = VisitStreakContinued
		}
	}
	if result == VisitStreakContinued {
		s.rec.Streak++
	} else {
		s.rec.Streak = 1
	}
	s.rec.LastVisit = day
	return result, s.commit(ctx)
}

// CompleteSection marks a section complete, awarding section XP only the
// first time a given composite key is seen.
func (s *Service) CompleteSection(ctx context.Context, moduleID, sectionID string) (bool, error) {
	first := s.completeSection(moduleID, sectionID)
	return first, s.commit(ctx)
}

// CompleteModule marks the given section and then the module complete.
// Both awards are first-time-only; repeating the call changes nothing.
func (s *Service) CompleteModule(ctx context.Context, moduleID, sectionID string) (bool, error) {
	s.completeSection(moduleID, sectionID)

	first := !s.rec.HasCompletedModule(moduleID)
	if first {
		s.rec.CompletedModules = append(s.rec.CompletedModules, moduleID)
		s.applyXP(XPModule)
	}
	return first, s.commit(ctx)
}

// RecordQuizResult stores a perfect score and awards quiz XP on a correct
// answer. An incorrect answer never overwrites a previously stored 100
// and grants no XP.
func (s *Service) RecordQuizResult(ctx context.Context, moduleID, sectionID string, correct bool) error {
	key := catalog.SectionKey(moduleID, sectionID)
	if correct {
		s.rec.QuizScores[key] = 100
		s.applyXP(XPQuiz)
	} else if s.rec.QuizScores[key] != 100 {
		s.rec.QuizScores[key] = 0
	}
	return s.commit(ctx)
}

// ToggleBookmark flips bookmark membership for a topic. No XP.
func (s *Service) ToggleBookmark(ctx context.Context, topicID string) (bool, error) {
	if s.rec.HasBookmark(topicID) {
		kept := s.rec.BookmarkedTopics[:0]
		for _, id := range s.rec.BookmarkedTopics {
			if id != topicID {
				kept = append(kept, id)
			}
		}
		s.rec.BookmarkedTopics = kept
		return false, s.commit(ctx)
	}
	s.rec.BookmarkedTopics = append(s.rec.BookmarkedTopics, topicID)
	return true, s.commit(ctx)
}

// IncrementChatMessages bumps the tutor message counter.
func (s *Service) IncrementChatMessages(ctx context.Context) error {
	s.rec.ChatMessages++
	return s.commit(ctx)
}

// AddDynamicLesson appends a generated lesson to the record. Lessons are
// append-only: never mutated or removed after creation.
func (s *Service) AddDynamicLesson(ctx context.Context, l catalog.Lesson) error {
	s.rec.DynamicTopics = append(s.rec.DynamicTopics, l)
	return s.commit(ctx)
}

// Reset wipes the record back to first-run defaults.
func (s *Service) Reset(ctx context.Context) error {
	if err := s.repo.Reset(ctx); err != nil {
		return err
	}
	s.rec = Defaults()
	return nil
}

// completeSection marks the composite key complete, awarding XP only on
// the first completion. Reports whether this was the first time.
func (s *Service) completeSection(moduleID, sectionID string) bool {
	key := catalog.SectionKey(moduleID, sectionID)
	if s.rec.CompletedSections[key] {
		return false
	}
	s.rec.CompletedSections[key] = true
	s.applyXP(XPSection)
	return true
}

// applyXP increments XP and recomputes the level, crossing as many
// thresholds as the amount covers.
func (s *Service) applyXP(amount int) {
	s.rec.XP += amount
	s.rec.Level = LevelForXP(s.rec.XP)
}

// commit runs the achievement evaluation and persists the record. The
// evaluation is a single finite pass; when it unlocks anything, the
// bonus XP schedules exactly one additional pass before the write.
func (s *Service) commit(ctx context.Context) error {
	if s.checker != nil {
		if unlocked := s.unlockPass(); len(unlocked) > 0 {
			s.unlockPass()
		}
	}
	data, err := s.rec.Encode()
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	if err := s.repo.Save(ctx, data); err != nil {
		return fmt.Errorf("persist progress: %w", err)
	}
	return nil
}

// unlockPass records every achievement that is newly earned and awards
// the per-unlock XP bonus. Unlocks are monotonic.
func (s *Service) unlockPass() []string {
	unlocked := s.checker.NewlyUnlocked(s.rec)
	for _, id := range unlocked {
		s.rec.UnlockedAchievements = append(s.rec.UnlockedAchievements, id)
		s.applyXP(XPAchievement)
	}
	return unlocked
}
