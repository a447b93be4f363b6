// Package search is the "learn something new" screen: type a topic or
// pick a suggestion, and AI builds a lesson on the spot.
package search

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/learnhub/learnhub/internal/catalog"
	"github.com/learnhub/learnhub/internal/lessongen"
	"github.com/learnhub/learnhub/internal/progress"
	"github.com/learnhub/learnhub/internal/router"
	"github.com/learnhub/learnhub/internal/screen"
	"github.com/learnhub/learnhub/internal/screens/lesson"
	"github.com/learnhub/learnhub/internal/session"
	"github.com/learnhub/learnhub/internal/ui/components"
	"github.com/learnhub/learnhub/internal/ui/layout"
	"github.com/learnhub/learnhub/internal/ui/theme"
)

// suggestionCount is how many suggestion rows show under the input.
const suggestionCount = 5

// generatedMsg carries a finished generation back to the screen.
type generatedMsg struct {
	lesson catalog.Lesson
	err    error
}

// SearchScreen generates dynamic lessons from a typed topic.
type SearchScreen struct {
	svc         *progress.Service
	cat         *catalog.Catalog
	generator   *lessongen.Generator
	input       components.TextInput
	suggestions []catalog.Suggestion
	generating  bool
	topic       string
	errText     string
}

var _ screen.Screen = (*SearchScreen)(nil)

// New creates the topic search screen.
func New(svc *progress.Service, cat *catalog.Catalog, generator *lessongen.Generator) *SearchScreen {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	deck := make([]catalog.Suggestion, 0, suggestionCount)
	var seen []string
	for len(deck) < suggestionCount {
		sug := catalog.RandomSuggestion(rng, seen)
		seen = append(seen, sug.ID)
		deck = append(deck, sug)
	}

	return &SearchScreen{
		svc:         svc,
		cat:         cat,
		generator:   generator,
		input:       components.NewTextInput("What do you want to learn about?", 0),
		suggestions: deck,
	}
}

func (s *SearchScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *SearchScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case generatedMsg:
		s.generating = false
		if msg.err != nil {
			s.errText = lessongen.UserMessage(msg.err)
			return s, nil
		}
		return s, s.openGenerated(msg.lesson)

	case tea.KeyMsg:
		if s.generating {
			return s, nil
		}
		switch msg.String() {
		case "enter":
			topic := strings.TrimSpace(s.input.Value())
			if topic == "" {
				return s, nil
			}
			return s, s.generate(topic)
		case "tab":
			// Cycle a suggestion into the input.
			if len(s.suggestions) > 0 {
				next := s.suggestions[0]
				s.suggestions = append(s.suggestions[1:], next)
				s.input.Model.SetValue(next.Title)
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *SearchScreen) generate(topic string) tea.Cmd {
	s.generating = true
	s.topic = topic
	s.errText = ""
	return func() tea.Msg {
		l, err := s.generator.FromTopic(context.Background(), topic)
		return generatedMsg{lesson: l, err: err}
	}
}

// openGenerated persists the new lesson and swaps this screen for the
// lesson view. Nothing is saved when generation failed.
func (s *SearchScreen) openGenerated(l catalog.Lesson) tea.Cmd {
	ctx := context.Background()
	if err := s.svc.AddDynamicLesson(ctx, l); err != nil {
		s.errText = err.Error()
		return nil
	}
	s.cat.AddDynamic(l)

	sess, err := session.Open(l, s.svc)
	if err != nil {
		s.errText = err.Error()
		return nil
	}
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: lesson.New(sess, nil)}
	}
}

func (s *SearchScreen) View(width, height int) string {
	cw := width - 8
	if cw > 72 {
		cw = 72
	}
	if cw < 40 {
		cw = 40
	}

	var parts []string

	parts = append(parts,
		theme.Title.Width(cw).Render("🔍 Learn Something New"),
		theme.Subtitle.Width(cw).Render("Any topic. AI builds the lesson."),
		"",
		theme.Card.Width(cw).Render(s.input.View()),
	)

	if s.generating {
		parts = append(parts, "",
			theme.Hint.Render(fmt.Sprintf("✨ Creating your lesson about %q...", s.topic)))
	} else {
		parts = append(parts, "", theme.Hint.Render("Ideas (Tab to fill in):"))
		for _, sug := range s.suggestions {
			parts = append(parts, theme.Body.Render(
				fmt.Sprintf("  %s  %s — %s", sug.Icon, sug.Title, sug.Description)))
		}
	}

	if s.errText != "" {
		parts = append(parts, "", theme.Incorrect.Render(s.errText))
	}

	body := strings.Join(parts, "\n")
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(
		lipgloss.NewStyle().Width(cw).Render(body))
}

func (s *SearchScreen) Title() string {
	return "Topic Search"
}

// KeyHints implements screen.KeyHintProvider.
func (s *SearchScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Create lesson"},
		{Key: "Tab", Description: "Use suggestion"},
		{Key: "Esc", Description: "Back"},
	}
}
