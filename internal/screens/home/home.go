package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/learnhub/learnhub/internal/catalog"
	"github.com/learnhub/learnhub/internal/chat"
	"github.com/learnhub/learnhub/internal/lessongen"
	"github.com/learnhub/learnhub/internal/progress"
	"github.com/learnhub/learnhub/internal/router"
	"github.com/learnhub/learnhub/internal/screen"
	achscreen "github.com/learnhub/learnhub/internal/screens/achievements"
	chatscreen "github.com/learnhub/learnhub/internal/screens/chat"
	"github.com/learnhub/learnhub/internal/screens/lesson"
	"github.com/learnhub/learnhub/internal/screens/search"
	"github.com/learnhub/learnhub/internal/session"
	"github.com/learnhub/learnhub/internal/ui/components"
	"github.com/learnhub/learnhub/internal/ui/layout"
	"github.com/learnhub/learnhub/internal/ui/theme"
)

// RefreshMsg tells the home screen to rebuild its lesson list, e.g.
// after a new dynamic lesson was generated or a module completed.
type RefreshMsg struct{}

// HomeScreen is the lesson catalog and entry point to everything else.
type HomeScreen struct {
	svc       *progress.Service
	cat       *catalog.Catalog
	generator *lessongen.Generator
	tutor     *chat.Tutor
	menu      components.Menu
	fact      catalog.Fact
	err       error
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. generator and tutor may be nil when no
// LLM provider is configured; the matching menu entries are disabled.
func New(svc *progress.Service, cat *catalog.Catalog, generator *lessongen.Generator, tutor *chat.Tutor, fact catalog.Fact) *HomeScreen {
	h := &HomeScreen{
		svc:       svc,
		cat:       cat,
		generator: generator,
		tutor:     tutor,
		fact:      fact,
	}
	h.menu = components.NewMenu(h.buildItems())
	return h
}

func (h *HomeScreen) buildItems() []components.MenuItem {
	rec := h.svc.Record()
	var items []components.MenuItem

	for _, l := range h.cat.All() {
		l := l
		badge := ""
		if rec.HasCompletedModule(l.ID) {
			badge = "✓"
		}
		if rec.HasBookmark(l.ID) {
			badge += " 🔖"
		}
		items = append(items, components.MenuItem{
			Label:    fmt.Sprintf("%s  %s", l.Icon, l.Title),
			Subtitle: fmt.Sprintf("%s · %s · %d sections", l.Duration, l.Difficulty, len(l.Sections)),
			Badge:    strings.TrimSpace(badge),
			Action: func() tea.Cmd {
				return h.openLesson(l)
			},
		})
	}

	items = append(items, components.MenuItem{
		Label:    "🔍  Learn Something New",
		Subtitle: "Search any topic and let AI build a lesson",
		Disabled: h.generator == nil,
		Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: search.New(h.svc, h.cat, h.generator),
				}
			}
		},
	})

	items = append(items, components.MenuItem{
		Label:    "💬  Chat with Tutor",
		Subtitle: "Ask your AI tutor a question",
		Disabled: h.tutor == nil,
		Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: chatscreen.New(h.tutor, nil),
				}
			}
		},
	})

	items = append(items, components.MenuItem{
		Label:    "🏆  Achievements",
		Subtitle: "Badges you have earned so far",
		Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: achscreen.New(h.svc)}
			}
		},
	})

	items = append(items, components.MenuItem{
		Label: "🚪  Exit",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})

	return items
}

func (h *HomeScreen) openLesson(l catalog.Lesson) tea.Cmd {
	sess, err := session.Open(l, h.svc)
	if err != nil {
		h.err = err
		return nil
	}
	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: lesson.New(sess, h.tutor),
		}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(RefreshMsg); ok {
		selected := h.menu.Selected
		h.menu = components.NewMenu(h.buildItems())
		if selected < len(h.menu.Items) {
			h.menu.Selected = selected
		}
		return h, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if kmsg.String() == "b" {
			return h, h.toggleBookmark()
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// toggleBookmark bookmarks the highlighted lesson, if the highlight is
// on a lesson row.
func (h *HomeScreen) toggleBookmark() tea.Cmd {
	lessons := h.cat.All()
	if h.menu.Selected >= len(lessons) {
		return nil
	}
	id := lessons[h.menu.Selected].ID
	return func() tea.Msg {
		_, _ = h.svc.ToggleBookmark(context.Background(), id)
		return RefreshMsg{}
	}
}

func (h *HomeScreen) View(width, height int) string {
	cw := width - 8
	if cw > 72 {
		cw = 72
	}
	if cw < 40 {
		cw = 40
	}

	var sections []string

	rec := h.svc.Record()
	earned, span := progress.LevelProgress(rec)
	pct := 0.0
	if span > 0 {
		pct = float64(earned) / float64(span)
	}

	stats := fmt.Sprintf("Level %d   ·   🔥 %d day streak   ·   %d modules done",
		rec.Level, rec.Streak, len(rec.CompletedModules))
	sections = append(sections,
		theme.Title.Width(cw).Render("Welcome back!"),
		theme.Subtitle.Width(cw).Render(stats),
		components.NewProgressBar("XP", pct, true, cw).View(),
	)

	sections = append(sections, h.menu.View())

	if h.fact.Text != "" {
		factBox := theme.Card.Width(cw).Render(
			theme.Hint.Render("💡 Did you know?") + "\n" +
				theme.Body.Render(h.fact.Text))
		sections = append(sections, factBox)
	}

	if h.err != nil {
		sections = append(sections, theme.Incorrect.Render(h.err.Error()))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// KeyHints implements screen.KeyHintProvider.
func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "b", Description: "Bookmark"},
		{Key: "Ctrl+D", Description: "Theme"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
