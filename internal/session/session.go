// Package session tracks a learner's position inside one lesson and
// applies progress updates as they move through it.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/learnhub/learnhub/internal/catalog"
	"github.com/learnhub/learnhub/internal/progress"
)

var (
	// ErrAtFirstSection means Previous was called on the first section.
	ErrAtFirstSection = errors.New("already at the first section")

	// ErrAtLastSection means Next was called on the last section.
	// Finishing is the only way forward from there.
	ErrAtLastSection = errors.New("already at the last section")

	// ErrNotAtEnd means Finish was called before reaching the last
	// section.
	ErrNotAtEnd = errors.New("not at the last section yet")

	// ErrNoQuiz means an answer was submitted for a section without a
	// practice question.
	ErrNoQuiz = errors.New("section has no quiz")
)

// Session is the navigation state for one open lesson. Moving forward
// completes sections; finishing completes the module. Moving backward
// never changes progress.
type Session struct {
	lesson   catalog.Lesson
	index    int
	progress *progress.Service
	done     bool
}

// Open starts a session at the lesson's first section.
func Open(lesson catalog.Lesson, svc *progress.Service) (*Session, error) {
	if len(lesson.Sections) == 0 {
		return nil, fmt.Errorf("lesson %q has no sections", lesson.ID)
	}
	return &Session{lesson: lesson, progress: svc}, nil
}

// Lesson returns the lesson being studied.
func (s *Session) Lesson() catalog.Lesson { return s.lesson }

// Index returns the zero-based position of the current section.
func (s *Session) Index() int { return s.index }

// Current returns the section the learner is looking at.
func (s *Session) Current() catalog.Section { return s.lesson.Sections[s.index] }

// AtStart reports whether the learner is on the first section.
func (s *Session) AtStart() bool { return s.index == 0 }

// AtEnd reports whether the learner is on the last section.
func (s *Session) AtEnd() bool { return s.index == s.lesson.LastIndex() }

// Finished reports whether Finish has completed this session.
func (s *Session) Finished() bool { return s.done }

// Percent returns how far through the lesson the learner is, counting
// the current section as reached.
func (s *Session) Percent() float64 {
	return float64(s.index+1) / float64(len(s.lesson.Sections)) * 100
}

// Next marks the current section complete and advances to the next
// one. On the last section it returns ErrAtLastSection; use Finish.
func (s *Session) Next(ctx context.Context) error {
	if s.AtEnd() {
		return ErrAtLastSection
	}
	if _, err := s.progress.CompleteSection(ctx, s.lesson.ID, s.Current().ID); err != nil {
		return err
	}
	s.index++
	return nil
}

// Previous moves back one section without touching progress.
func (s *Session) Previous() error {
	if s.AtStart() {
		return ErrAtFirstSection
	}
	s.index--
	return nil
}

// Finish completes the current section and the whole module. Only
// valid on the last section. firstTime reports whether this run earned
// the module completion, as opposed to a revisit.
func (s *Session) Finish(ctx context.Context) (firstTime bool, err error) {
	if !s.AtEnd() {
		return false, ErrNotAtEnd
	}
	firstTime, err = s.progress.CompleteModule(ctx, s.lesson.ID, s.Current().ID)
	if err != nil {
		return false, err
	}
	s.done = true
	return firstTime, nil
}

// SubmitAnswer records a quiz answer for the current section and
// reports whether it was correct.
func (s *Session) SubmitAnswer(ctx context.Context, choice int) (bool, error) {
	quiz := s.Current().Content.Quiz
	if quiz == nil {
		return false, ErrNoQuiz
	}

	correct := choice == quiz.CorrectIndex
	if err := s.progress.RecordQuizResult(ctx, s.lesson.ID, s.Current().ID, correct); err != nil {
		return false, err
	}
	return correct, nil
}
