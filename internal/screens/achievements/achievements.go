// Package achievements shows the badge collection and what it takes
// to earn the rest.
package achievements

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/learnhub/learnhub/internal/achievements"
	"github.com/learnhub/learnhub/internal/progress"
	"github.com/learnhub/learnhub/internal/screen"
	"github.com/learnhub/learnhub/internal/ui/layout"
	"github.com/learnhub/learnhub/internal/ui/theme"
)

// AchievementsScreen lists every badge with its unlock state.
type AchievementsScreen struct {
	svc *progress.Service
}

var _ screen.Screen = (*AchievementsScreen)(nil)

// New creates the achievements screen.
func New(svc *progress.Service) *AchievementsScreen {
	return &AchievementsScreen{svc: svc}
}

func (a *AchievementsScreen) Init() tea.Cmd {
	return nil
}

func (a *AchievementsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return a, nil
}

func (a *AchievementsScreen) View(width, height int) string {
	cw := width - 8
	if cw > 64 {
		cw = 64
	}
	if cw < 40 {
		cw = 40
	}

	rec := a.svc.Record()
	unlocked := 0

	var rows []string
	for _, ach := range achievements.Catalog() {
		if rec.HasAchievement(ach.ID) {
			unlocked++
			rows = append(rows,
				theme.Correct.Render(fmt.Sprintf("%s  %s", ach.Icon, ach.Name))+
					theme.Hint.Render("  — "+ach.Description))
		} else {
			rows = append(rows,
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(
					fmt.Sprintf("🔒  %s  — %s", ach.Name, ach.Description)))
		}
	}

	header := []string{
		theme.Title.Width(cw).Render("🏆 Achievements"),
		theme.Subtitle.Width(cw).Render(
			fmt.Sprintf("%d of %d unlocked · each badge is worth %d XP",
				unlocked, len(achievements.Catalog()), progress.XPAchievement)),
		"",
	}

	body := strings.Join(append(header, rows...), "\n")
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(
		lipgloss.NewStyle().Width(cw).Render(body))
}

func (a *AchievementsScreen) Title() string {
	return "Achievements"
}

// KeyHints implements screen.KeyHintProvider.
func (a *AchievementsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}
