package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arnavj/mathsprint/internal/engine"
	"github.com/arnavj/mathsprint/internal/router"
	"github.com/arnavj/mathsprint/internal/screen"
	"github.com/arnavj/mathsprint/internal/screens/home"
	"github.com/arnavj/mathsprint/internal/store"
	"github.com/arnavj/mathsprint/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	stats  layout.HeaderStats
	width  int
	height int
}

// newAppModel creates the root model seeded from the bootstrap snapshot.
func newAppModel(eng *engine.Engine, snap *engine.Snapshot) AppModel {
	return AppModel{
		router: router.New(home.New(eng, snap)),
		stats:  statsFor(snap.Profile),
	}
}

func statsFor(p *store.Profile) layout.HeaderStats {
	return layout.HeaderStats{
		Level:  p.Level(),
		Hearts: p.Hearts,
		Coins:  p.Coins,
		Streak: p.StreakCount,
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

	case screen.ProfileUpdatedMsg:
		m.stats = statsFor(msg.Profile)
		// Fall through to the router so the active screen sees it too.

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
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

	header := layout.RenderHeader(title, m.stats, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

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

// Run bootstraps the engine and starts the Bubble Tea program.
func Run(eng *engine.Engine) error {
	snap, err := eng.Bootstrap(context.Background())
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}

	p := tea.NewProgram(newAppModel(eng, snap))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
