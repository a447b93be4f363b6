package session

import (
	"context"
	"errors"
	"testing"

	"github.com/learnhub/learnhub/internal/achievements"
	"github.com/learnhub/learnhub/internal/catalog"
	"github.com/learnhub/learnhub/internal/progress"
)

type memProgressRepo struct {
	data []byte
}

func (m *memProgressRepo) Load(ctx context.Context) ([]byte, error) { return m.data, nil }
func (m *memProgressRepo) Save(ctx context.Context, data []byte) error {
	m.data = data
	return nil
}
func (m *memProgressRepo) Reset(ctx context.Context) error {
	m.data = nil
	return nil
}

func newTestProgress(t *testing.T) *progress.Service {
	t.Helper()
	svc, err := progress.Load(context.Background(), &memProgressRepo{}, achievements.NewChecker())
	if err != nil {
		t.Fatalf("load progress: %v", err)
	}
	return svc
}

func threeSectionLesson() catalog.Lesson {
	quiz := func(correct int) *catalog.Quiz {
		return &catalog.Quiz{
			Question:     "Which one?",
			Options:      []string{"A", "B", "C"},
			CorrectIndex: correct,
			Explanation:  "Because.",
		}
	}
	return catalog.Lesson{
		ID:    "demo",
		Title: "Demo Lesson",
		Sections: []catalog.Section{
			{ID: "section_0", Title: "One", Content: catalog.Content{Quiz: quiz(0)}},
			{ID: "section_1", Title: "Two", Content: catalog.Content{Quiz: quiz(1)}},
			{ID: "section_2", Title: "Three"},
		},
	}
}

func TestOpenRequiresSections(t *testing.T) {
	if _, err := Open(catalog.Lesson{ID: "empty"}, newTestProgress(t)); err == nil {
		t.Fatal("expected error for lesson without sections")
	}
}

func TestNavigationBounds(t *testing.T) {
	ctx := context.Background()
	s, err := Open(threeSectionLesson(), newTestProgress(t))
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if err := s.Previous(); !errors.Is(err, ErrAtFirstSection) {
		t.Errorf("Previous at start = %v, want ErrAtFirstSection", err)
	}
	if _, err := s.Finish(ctx); !errors.Is(err, ErrNotAtEnd) {
		t.Errorf("Finish at start = %v, want ErrNotAtEnd", err)
	}

	if err := s.Next(ctx); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if err := s.Next(ctx); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if !s.AtEnd() {
		t.Fatal("should be at the last section")
	}
	if err := s.Next(ctx); !errors.Is(err, ErrAtLastSection) {
		t.Errorf("Next at end = %v, want ErrAtLastSection", err)
	}
}

func TestWalkThroughCompletesLesson(t *testing.T) {
	ctx := context.Background()
	svc := newTestProgress(t)
	s, err := Open(threeSectionLesson(), svc)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if err := s.Next(ctx); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if err := s.Next(ctx); err != nil {
		t.Fatalf("Next: %v", err)
	}
	firstTime, err := s.Finish(ctx)
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if !firstTime {
		t.Error("first completion should report firstTime")
	}
	if !s.Finished() {
		t.Error("session should be finished")
	}

	rec := svc.Record()
	if !rec.HasCompletedModule("demo") {
		t.Error("module should be completed")
	}
	for _, id := range []string{"section_0", "section_1", "section_2"} {
		if !rec.CompletedSections[catalog.SectionKey("demo", id)] {
			t.Errorf("section %s should be completed", id)
		}
	}
	// 3 sections + module completion + the first_steps achievement.
	want := 3*progress.XPSection + progress.XPModule + progress.XPAchievement
	if rec.XP != want {
		t.Errorf("XP = %d, want %d", rec.XP, want)
	}
	if !rec.HasAchievement("first_steps") {
		t.Error("first_steps should unlock on the first module")
	}
}

func TestRevisitEarnsNothing(t *testing.T) {
	ctx := context.Background()
	svc := newTestProgress(t)

	run := func() {
		s, err := Open(threeSectionLesson(), svc)
		if err != nil {
			t.Fatalf("open: %v", err)
		}
		for !s.AtEnd() {
			if err := s.Next(ctx); err != nil {
				t.Fatalf("Next: %v", err)
			}
		}
		if _, err := s.Finish(ctx); err != nil {
			t.Fatalf("Finish: %v", err)
		}
	}

	run()
	before := svc.Record().XP
	run()
	if after := svc.Record().XP; after != before {
		t.Errorf("revisit changed XP: %d -> %d", before, after)
	}
}

func TestPreviousDoesNotComplete(t *testing.T) {
	ctx := context.Background()
	svc := newTestProgress(t)
	s, _ := Open(threeSectionLesson(), svc)

	if err := s.Next(ctx); err != nil {
		t.Fatalf("Next: %v", err)
	}
	xp := svc.Record().XP
	if err := s.Previous(); err != nil {
		t.Fatalf("Previous: %v", err)
	}
	if got := svc.Record().XP; got != xp {
		t.Errorf("Previous changed XP: %d -> %d", xp, got)
	}
	if s.Index() != 0 {
		t.Errorf("index = %d, want 0", s.Index())
	}
}

func TestSubmitAnswer(t *testing.T) {
	ctx := context.Background()
	svc := newTestProgress(t)
	s, _ := Open(threeSectionLesson(), svc)

	correct, err := s.SubmitAnswer(ctx, 0)
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if !correct {
		t.Error("choice 0 should be correct for section_0")
	}
	key := catalog.SectionKey("demo", "section_0")
	if score := svc.Record().QuizScores[key]; score != 100 {
		t.Errorf("quiz score = %d, want 100", score)
	}

	// The last section has no quiz.
	lesson := s.Lesson()
	s.index = lesson.LastIndex()
	if _, err := s.SubmitAnswer(ctx, 0); !errors.Is(err, ErrNoQuiz) {
		t.Errorf("SubmitAnswer without quiz = %v, want ErrNoQuiz", err)
	}
}

func TestPercent(t *testing.T) {
	s, _ := Open(threeSectionLesson(), newTestProgress(t))
	steps := []float64{100.0 / 3, 200.0 / 3, 100}
	for i, want := range steps {
		s.index = i
		got := s.Percent()
		if got < want-0.01 || got > want+0.01 {
			t.Errorf("Percent at index %d = %.2f, want %.2f", i, got, want)
		}
	}
}
