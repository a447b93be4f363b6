// Package chat is the tutor conversation screen: a transcript plus an
// input line, with replies fetched asynchronously.
package chat

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/learnhub/learnhub/internal/chat"
	"github.com/learnhub/learnhub/internal/screen"
	"github.com/learnhub/learnhub/internal/ui/components"
	"github.com/learnhub/learnhub/internal/ui/layout"
	"github.com/learnhub/learnhub/internal/ui/theme"
)

// replyMsg carries the tutor's answer (or the failure) back to the
// screen.
type replyMsg struct {
	text string
	err  error
}

type chatLine struct {
	fromUser bool
	text     string
}

// ChatScreen holds the transcript for one tutor conversation.
type ChatScreen struct {
	tutor   *chat.Tutor
	study   *chat.StudyContext
	input   components.TextInput
	lines   []chatLine
	waiting bool
}

var _ screen.Screen = (*ChatScreen)(nil)

// New creates a chat screen. study is optional lesson context that the
// tutor's answers can reference.
func New(tutor *chat.Tutor, study *chat.StudyContext) *ChatScreen {
	return &ChatScreen{
		tutor: tutor,
		study: study,
		input: components.NewTextInput("Ask me anything...", 0),
	}
}

func (c *ChatScreen) Init() tea.Cmd {
	return c.input.Init()
}

func (c *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		c.waiting = false
		if msg.err != nil {
			c.lines = append(c.lines, chatLine{text: "❌ " + chat.UserMessage(msg.err)})
		} else {
			c.lines = append(c.lines, chatLine{text: msg.text})
		}
		return c, nil

	case tea.KeyMsg:
		if msg.String() == "enter" && !c.waiting {
			question := strings.TrimSpace(c.input.Value())
			if question == "" {
				return c, nil
			}
			c.lines = append(c.lines, chatLine{fromUser: true, text: question})
			c.input.Reset()
			c.waiting = true
			return c, c.ask(question)
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

func (c *ChatScreen) ask(question string) tea.Cmd {
	return func() tea.Msg {
		reply, err := c.tutor.Ask(context.Background(), question, c.study)
		return replyMsg{text: reply, err: err}
	}
}

func (c *ChatScreen) View(width, height int) string {
	cw := width - 8
	if cw > 76 {
		cw = 76
	}
	if cw < 40 {
		cw = 40
	}
	wrap := lipgloss.NewStyle().Width(cw)

	var parts []string

	if len(c.lines) == 0 {
		parts = append(parts,
			theme.Subtitle.Width(cw).Render("🤖 Hi! I'm your AI tutor. What are you curious about?"))
	}

	for _, line := range c.lines {
		if line.fromUser {
			parts = append(parts, theme.Selected.Render("👤 You"), wrap.Foreground(theme.Text).Render(line.text), "")
		} else {
			parts = append(parts, theme.Correct.Render("🤖 Tutor"), wrap.Foreground(theme.Text).Render(line.text), "")
		}
	}

	if c.waiting {
		parts = append(parts, theme.Hint.Render("🤖 typing..."), "")
	}

	parts = append(parts, theme.Card.Width(cw).Render(c.input.View()))

	body := strings.Join(parts, "\n")
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(
		lipgloss.NewStyle().Width(cw).Render(body))
}

func (c *ChatScreen) Title() string {
	return "AI Tutor"
}

// KeyHints implements screen.KeyHintProvider.
func (c *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Esc", Description: "Back"},
	}
}
