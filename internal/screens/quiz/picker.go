package quiz

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arnavj/mathsprint/internal/engine"
	"github.com/arnavj/mathsprint/internal/problemgen"
	"github.com/arnavj/mathsprint/internal/router"
	"github.com/arnavj/mathsprint/internal/screen"
	"github.com/arnavj/mathsprint/internal/ui/components"
	"github.com/arnavj/mathsprint/internal/ui/theme"
)

// ArcadePickerScreen selects the difficulty for an arcade run.
type ArcadePickerScreen struct {
	eng  *engine.Engine
	menu components.Menu
}

var _ screen.Screen = (*ArcadePickerScreen)(nil)

// NewArcadePicker creates the arcade difficulty menu.
func NewArcadePicker(eng *engine.Engine) *ArcadePickerScreen {
	difficulties := []problemgen.Difficulty{
		problemgen.DifficultyEasy,
		problemgen.DifficultyMedium,
		problemgen.DifficultyHard,
	}
	labels := []string{"EASY  (1-10)", "MEDIUM  (1-50)", "HARD  (1-100)"}

	items := make([]components.MenuItem, len(difficulties))
	for i, d := range difficulties {
		d := d
		items[i] = components.MenuItem{Label: labels[i], Action: func() tea.Cmd {
			run := eng.StartArcade(d)
			return func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: New(eng, run)}
			}
		}}
	}

	return &ArcadePickerScreen{eng: eng, menu: components.NewMenu(items)}
}

func (a *ArcadePickerScreen) Init() tea.Cmd {
	return nil
}

func (a *ArcadePickerScreen) Title() string {
	return "Arcade"
}

func (a *ArcadePickerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	a.menu, cmd = a.menu.Update(msg)
	return a, cmd
}

func (a *ArcadePickerScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	title := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render("ARCADE MODE")
	sub := theme.Hint.Render("10 questions, 30 seconds each, no hearts at stake")

	content := components.SectionCard(title+"\n"+sub, cw) + "\n\n" + a.menu.View(cw-8)
	return components.BoardFrame(content, width, height)
}
