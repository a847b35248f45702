package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arnavj/mathsprint/internal/engine"
	"github.com/arnavj/mathsprint/internal/router"
	"github.com/arnavj/mathsprint/internal/screen"
	"github.com/arnavj/mathsprint/internal/screens/achievements"
	"github.com/arnavj/mathsprint/internal/screens/quiz"
	"github.com/arnavj/mathsprint/internal/screens/shop"
	"github.com/arnavj/mathsprint/internal/screens/skillmap"
	"github.com/arnavj/mathsprint/internal/store"
	"github.com/arnavj/mathsprint/internal/ui/components"
	"github.com/arnavj/mathsprint/internal/ui/theme"
	"github.com/arnavj/mathsprint/internal/xp"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu      components.Menu
	profile   *store.Profile
	banner    string
	bannerBad bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen from the bootstrap snapshot.
func New(eng *engine.Engine, snap *engine.Snapshot) *HomeScreen {
	items := []components.MenuItem{
		{Label: "LEARN", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: skillmap.New(eng)}
			}
		}},
		{Label: "ARCADE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quiz.NewArcadePicker(eng)}
			}
		}},
		{Label: "SHOP", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: shop.New(eng)}
			}
		}},
		{Label: "ACHIEVEMENTS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: achievements.New(eng)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h := &HomeScreen{
		menu:    components.NewMenu(items),
		profile: snap.Profile,
	}

	switch {
	case snap.FreezeUsed:
		h.banner = fmt.Sprintf("A streak freeze saved your %d-day streak!", snap.Profile.StreakCount)
	case snap.StreakExtended:
		h.banner = fmt.Sprintf("Streak extended to %d days!", snap.Profile.StreakCount)
	case snap.StreakLost:
		h.banner = "Your streak reset. Start a new one today!"
		h.bannerBad = true
	}

	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if pmsg, ok := msg.(screen.ProfileUpdatedMsg); ok {
		h.profile = pmsg.Profile
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw))

	if h.banner != "" {
		style := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
		if h.bannerBad {
			style = style.Foreground(theme.Error)
		}
		sections = append(sections, style.Render(h.banner))
	}

	sections = append(sections, renderGoals(h.profile, cw))
	sections = append(sections, h.menu.View(cw-8))

	content := strings.Join(sections, "\n\n")
	return components.BoardFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func renderTitle(cw int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("M A T H S P R I N T")
	sub := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("race through the times tables")
	return components.SectionCard(title+"\n"+sub, cw)
}

func renderGoals(p *store.Profile, cw int) string {
	prog := xp.ProgressFor(p.XP)
	levelBar := components.NewProgressBar(
		fmt.Sprintf("Level %d", p.Level()),
		float64(prog.Current)/float64(prog.Needed),
		true, cw-8).View()

	goal := p.DailyXPEarned
	pct := 1.0
	if p.DailyXPGoal > 0 {
		pct = float64(goal) / float64(p.DailyXPGoal)
		if pct > 1 {
			pct = 1
		}
	}
	goalBar := components.NewProgressBar("Daily goal", pct, true, cw-8).View()

	return components.SectionCard(levelBar+"\n"+goalBar, cw)
}
