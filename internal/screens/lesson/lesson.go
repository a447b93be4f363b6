// Package lesson renders one lesson section at a time with its quiz,
// and drives the session state machine as the learner moves through.
package lesson

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/learnhub/learnhub/internal/catalog"
	"github.com/learnhub/learnhub/internal/chat"
	"github.com/learnhub/learnhub/internal/router"
	"github.com/learnhub/learnhub/internal/screen"
	chatscreen "github.com/learnhub/learnhub/internal/screens/chat"
	"github.com/learnhub/learnhub/internal/session"
	"github.com/learnhub/learnhub/internal/ui/components"
	"github.com/learnhub/learnhub/internal/ui/layout"
	"github.com/learnhub/learnhub/internal/ui/theme"
)

// LessonScreen walks through one lesson's sections.
type LessonScreen struct {
	sess    *session.Session
	tutor   *chat.Tutor
	quiz    *components.MultiChoice
	toast   string
	err     error
	quizzed map[string]bool // sections whose quiz was answered this visit
}

var _ screen.Screen = (*LessonScreen)(nil)

// New creates a lesson screen for an open session.
func New(sess *session.Session, tutor *chat.Tutor) *LessonScreen {
	return &LessonScreen{
		sess:    sess,
		tutor:   tutor,
		quizzed: make(map[string]bool),
	}
}

func (l *LessonScreen) Init() tea.Cmd {
	return nil
}

func (l *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// While the quiz is open, it owns up/down/enter.
		if l.quiz != nil && !l.quiz.Submitted {
			return l.updateQuiz(msg)
		}

		switch msg.String() {
		case "n", "right":
			l.advance()
			return l, nil
		case "p", "left":
			l.toast = ""
			l.quiz = nil
			if err := l.sess.Previous(); err != nil && err != session.ErrAtFirstSection {
				l.err = err
			}
			return l, nil
		case "q":
			l.openQuiz()
			return l, nil
		case "c":
			if l.tutor != nil {
				study := &chat.StudyContext{
					LessonTitle:  l.sess.Lesson().Title,
					SectionTitle: l.sess.Current().Title,
				}
				return l, func() tea.Msg {
					return router.PushScreenMsg{Screen: chatscreen.New(l.tutor, study)}
				}
			}
			return l, nil
		case "enter":
			// Dismiss a submitted quiz.
			if l.quiz != nil && l.quiz.Submitted {
				l.quiz = nil
			}
			return l, nil
		}
	}

	return l, nil
}

// advance moves forward, or finishes the module on the last section.
func (l *LessonScreen) advance() {
	ctx := context.Background()
	l.toast = ""
	l.quiz = nil

	if l.sess.AtEnd() {
		firstTime, err := l.sess.Finish(ctx)
		if err != nil {
			l.err = err
			return
		}
		if firstTime {
			l.toast = "🎉 Module completed! +100 XP"
		} else {
			l.toast = "Module reviewed. Nice refresher!"
		}
		return
	}

	if err := l.sess.Next(ctx); err != nil {
		l.err = err
	}
}

func (l *LessonScreen) openQuiz() {
	quiz := l.sess.Current().Content.Quiz
	if quiz == nil || l.quiz != nil {
		return
	}
	mc := components.NewMultiChoice(quiz.Question, quiz.Options, quiz.CorrectIndex, quiz.Explanation)
	l.quiz = &mc
}

func (l *LessonScreen) updateQuiz(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	updated, cmd := l.quiz.Update(msg)
	l.quiz = &updated

	if updated.Submitted {
		key := l.sess.Current().ID
		if !l.quizzed[key] {
			l.quizzed[key] = true
			correct, err := l.sess.SubmitAnswer(context.Background(), updated.ChosenIndex)
			if err != nil {
				l.err = err
			} else if correct {
				l.toast = "✓ Correct! +20 XP"
			}
		}
	}
	return l, cmd
}

func (l *LessonScreen) View(width, height int) string {
	cw := width - 8
	if cw > 76 {
		cw = 76
	}
	if cw < 40 {
		cw = 40
	}

	// A finished session shows only the completion banner until the
	// screen pops.
	if l.sess.Finished() {
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(
			"\n\n" + theme.Correct.Render(l.toast) + "\n\n" +
				theme.Hint.Render("Press Esc to go back home"))
	}

	lesson := l.sess.Lesson()
	section := l.sess.Current()

	var parts []string

	parts = append(parts,
		theme.Title.Width(cw).Render(fmt.Sprintf("%s  %s", lesson.Icon, lesson.Title)),
		components.NewProgressBar(
			fmt.Sprintf("Section %d/%d", l.sess.Index()+1, len(lesson.Sections)),
			l.sess.Percent()/100, false, cw).View(),
		"",
		theme.Selected.Render(fmt.Sprintf("%s  %s", section.Icon, section.Title)),
	)

	if l.quiz != nil {
		parts = append(parts, "", l.quiz.View())
	} else {
		parts = append(parts, l.renderContent(section.Content, cw)...)
	}

	if l.toast != "" {
		parts = append(parts, "", theme.Correct.Render(l.toast))
	}
	if l.err != nil {
		parts = append(parts, "", theme.Incorrect.Render(l.err.Error()))
	}

	body := lipgloss.NewStyle().Width(cw).Render(strings.Join(parts, "\n"))
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(body)
}

func (l *LessonScreen) renderContent(content catalog.Content, cw int) []string {
	wrap := lipgloss.NewStyle().Width(cw)
	var parts []string

	if content.WhyCare != "" {
		parts = append(parts, "",
			theme.Hint.Render("Why should you care?"),
			wrap.Foreground(theme.Text).Render(content.WhyCare))
	}

	for _, concept := range content.Concepts {
		parts = append(parts, "",
			theme.Selected.Render("• "+concept.Title),
			wrap.Foreground(theme.Text).Render("  "+concept.Details))
	}

	for _, example := range content.Examples {
		block := theme.Hint.Render(example.Title) + "\n"
		if example.Code != "" {
			block += lipgloss.NewStyle().Foreground(theme.Accent).Render(example.Code) + "\n"
		}
		block += wrap.Foreground(theme.Text).Render(example.Explanation)
		parts = append(parts, "", theme.Card.Width(cw).Render(block))
	}

	if content.Challenge != nil {
		parts = append(parts, "",
			theme.Hint.Render("🏆 Challenge: "+content.Challenge.Title),
			wrap.Foreground(theme.Text).Render(content.Challenge.Description))
	}

	if content.Quiz != nil {
		parts = append(parts, "", theme.Hint.Render("Press q to take the practice question"))
	}

	return parts
}

func (l *LessonScreen) Title() string {
	return l.sess.Lesson().Title
}

// KeyHints implements screen.KeyHintProvider.
func (l *LessonScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "n/→", Description: "Next"},
		{Key: "p/←", Description: "Back"},
	}
	if l.sess.Current().Content.Quiz != nil {
		hints = append(hints, layout.KeyHint{Key: "q", Description: "Quiz"})
	}
	if l.tutor != nil {
		hints = append(hints, layout.KeyHint{Key: "c", Description: "Ask tutor"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Home"})
	return hints
}
