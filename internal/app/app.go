package app

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/learnhub/learnhub/internal/catalog"
	"github.com/learnhub/learnhub/internal/chat"
	"github.com/learnhub/learnhub/internal/lessongen"
	"github.com/learnhub/learnhub/internal/progress"
	"github.com/learnhub/learnhub/internal/router"
	"github.com/learnhub/learnhub/internal/screen"
	"github.com/learnhub/learnhub/internal/screens/home"
	"github.com/learnhub/learnhub/internal/store"
	"github.com/learnhub/learnhub/internal/ui/layout"
	"github.com/learnhub/learnhub/internal/ui/theme"
)

// Deps carries everything the TUI needs. Generator and Tutor are nil
// when no LLM provider is configured; the AI features stay disabled.
// Settings may be nil, in which case the dark-mode toggle is not
// persisted.
type Deps struct {
	Progress  *progress.Service
	Catalog   *catalog.Catalog
	Generator *lessongen.Generator
	Tutor     *chat.Tutor
	Settings  store.SettingsRepo
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	deps   Deps
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(deps Deps) AppModel {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	homeScreen := home.New(deps.Progress, deps.Catalog, deps.Generator, deps.Tutor,
		catalog.RandomFact(rng))
	return AppModel{
		deps:   deps,
		router: router.New(homeScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case router.PopScreenMsg:
		cmd := m.router.Update(msg)
		// Whoever we return to may be stale; let it rebuild.
		return m, tea.Batch(cmd, func() tea.Msg { return home.RefreshMsg{} })

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+d":
			return m, m.toggleDarkMode()
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	rec := m.deps.Progress.Record()
	earned, span := progress.LevelProgress(rec)
	header := layout.RenderHeader(title, layout.HeaderStats{
		Level:  rec.Level,
		XPInto: earned,
		XPSpan: span,
		Streak: rec.Streak,
	}, m.width)

	footerHints := m.footerHints(active)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// toggleDarkMode flips the palette and persists the choice.
func (m AppModel) toggleDarkMode() tea.Cmd {
	theme.SetDarkMode(!theme.DarkMode())
	if m.deps.Settings == nil {
		return nil
	}
	dark := theme.DarkMode()
	return func() tea.Msg {
		_ = m.deps.Settings.Set(context.Background(), store.SettingDarkMode, strconv.FormatBool(dark))
		return nil
	}
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if provider, ok := active.(screen.KeyHintProvider); ok {
		return provider.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(deps Deps) error {
	p := tea.NewProgram(newAppModel(deps))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
