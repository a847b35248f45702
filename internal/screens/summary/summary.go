package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arnavj/mathsprint/internal/engine"
	"github.com/arnavj/mathsprint/internal/router"
	"github.com/arnavj/mathsprint/internal/scoring"
	"github.com/arnavj/mathsprint/internal/screen"
	"github.com/arnavj/mathsprint/internal/ui/components"
	"github.com/arnavj/mathsprint/internal/ui/layout"
	"github.com/arnavj/mathsprint/internal/ui/theme"
)

// SummaryScreen shows the results of a finished quiz run.
type SummaryScreen struct {
	lesson *engine.LessonResult
	tally  *scoring.Tally
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// NewLesson creates the results screen for a completed lesson.
func NewLesson(res *engine.LessonResult) *SummaryScreen {
	return &SummaryScreen{lesson: res}
}

// NewArcade creates the results screen for an arcade run.
func NewArcade(tally *scoring.Tally) *SummaryScreen {
	return &SummaryScreen{tally: tally}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	if s.lesson != nil {
		return "Lesson Results"
	}
	return "Arcade Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			if s.lesson != nil {
				return s, tea.Batch(
					func() tea.Msg { return router.PopScreenMsg{} },
					func() tea.Msg { return screen.LessonFinishedMsg{} },
				)
			}
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var content string
	if s.lesson != nil {
		content = s.renderLesson(cw)
	} else {
		content = s.renderArcade(cw)
	}
	return components.BoardFrame(content, width, height)
}

func (s *SummaryScreen) renderLesson(cw int) string {
	res := s.lesson
	var b strings.Builder

	if res.Stars > 0 {
		b.WriteString(theme.Correct.Render("Lesson complete!"))
	} else {
		b.WriteString(theme.Correct.Render("Lesson complete! Practice again to earn stars."))
	}
	b.WriteString("\n\n")

	b.WriteString(components.StarRow(res.Stars, 3))
	b.WriteString("\n\n")

	if res.XPEarned > 0 || res.CoinsEarned > 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render(
			fmt.Sprintf("+%d XP", res.XPEarned)))
		b.WriteString("   ")
		b.WriteString(theme.Coins.Render(fmt.Sprintf("+%d coins", res.CoinsEarned)))
		b.WriteString("\n")
	}

	for _, a := range res.Unlocked {
		b.WriteString("\n")
		b.WriteString(theme.Stars.Render("🏆 " + a.Title))
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf("  +%d XP", a.XPReward)))
	}
	if len(res.Unlocked) > 0 {
		b.WriteString("\n")
	}

	if res.LeveledUp {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Render(fmt.Sprintf("LEVEL UP! You reached level %d", res.Profile.Level())))
		b.WriteString("\n")
	}

	return components.SectionCard(b.String(), cw)
}

func (s *SummaryScreen) renderArcade(cw int) string {
	t := s.tally
	var b strings.Builder

	b.WriteString(theme.Title.Render("Run complete!"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(
		fmt.Sprintf("Correct: %d/%d", t.Correct, t.Answered)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render(
		fmt.Sprintf("Score: %d", t.Score)))
	if t.BonusPoints > 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf("  (%d speed bonus)", t.BonusPoints)))
	}
	b.WriteString("\n")
	if t.BestStreak >= 2 {
		b.WriteString(theme.StreakFlame.Render(fmt.Sprintf("Best streak: %d", t.BestStreak)))
		b.WriteString("\n")
	}

	return components.SectionCard(b.String(), cw)
}
