package achievements

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arnavj/mathsprint/internal/achievements"
	"github.com/arnavj/mathsprint/internal/engine"
	"github.com/arnavj/mathsprint/internal/screen"
	"github.com/arnavj/mathsprint/internal/ui/components"
	"github.com/arnavj/mathsprint/internal/ui/theme"
)

// AchievementsScreen lists every achievement with its progress.
type AchievementsScreen struct {
	achievs []achievements.Achievement
	loadErr error
}

var _ screen.Screen = (*AchievementsScreen)(nil)

// New creates a new AchievementsScreen.
func New(eng *engine.Engine) *AchievementsScreen {
	s := &AchievementsScreen{}
	s.achievs, s.loadErr = eng.Achievements(context.Background())
	return s
}

func (a *AchievementsScreen) Init() tea.Cmd {
	return nil
}

func (a *AchievementsScreen) Title() string {
	return "Achievements"
}

func (a *AchievementsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return a, nil
}

func (a *AchievementsScreen) View(width, height int) string {
	if a.loadErr != nil {
		return theme.Incorrect.Render("  Could not load achievements: " + a.loadErr.Error())
	}

	unlocked := 0
	for _, ach := range a.achievs {
		if ach.Unlocked {
			unlocked++
		}
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("  Unlocked %d of %d", unlocked, len(a.achievs))))
	b.WriteString("\n\n")

	barWidth := width - 50
	if barWidth > 30 {
		barWidth = 30
	}
	if barWidth < 10 {
		barWidth = 10
	}

	for _, ach := range a.achievs {
		b.WriteString(a.renderRow(ach, barWidth))
		b.WriteString("\n")
	}
	return b.String()
}

func (a *AchievementsScreen) renderRow(ach achievements.Achievement, barWidth int) string {
	var marker, title string
	if ach.Unlocked {
		marker = theme.Stars.Render("🏆")
		title = theme.Stars.Render(fmt.Sprintf("%-22s", ach.Title))
	} else {
		marker = theme.Locked.Render("🔒")
		title = theme.Locked.Render(fmt.Sprintf("%-22s", ach.Title))
	}

	pct := 0.0
	if ach.Target > 0 {
		pct = float64(ach.Progress) / float64(ach.Target)
		if pct > 1 {
			pct = 1
		}
	}
	bar := components.NewProgressBar("", pct, false, barWidth).View()

	desc := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("  %s  (+%d XP)", ach.Description, ach.XPReward))

	return "  " + marker + " " + title + bar + desc
}
