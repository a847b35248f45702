package skillmap

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arnavj/mathsprint/internal/engine"
	"github.com/arnavj/mathsprint/internal/router"
	"github.com/arnavj/mathsprint/internal/screen"
	quizscreen "github.com/arnavj/mathsprint/internal/screens/quiz"
	"github.com/arnavj/mathsprint/internal/ui/components"
	"github.com/arnavj/mathsprint/internal/ui/layout"
	"github.com/arnavj/mathsprint/internal/ui/theme"
)

type rowKind int

const (
	rowSkillHeader rowKind = iota
	rowLesson
)

type row struct {
	kind   rowKind
	skill  *engine.SkillView
	lesson *engine.LessonView
}

// SkillMapScreen lists every skill and its lesson chain.
type SkillMapScreen struct {
	eng          *engine.Engine
	rows         []row
	cursor       int
	scrollOffset int
	status       string
}

var _ screen.Screen = (*SkillMapScreen)(nil)
var _ screen.KeyHintProvider = (*SkillMapScreen)(nil)

// New creates a new SkillMapScreen with fresh unlock state.
func New(eng *engine.Engine) *SkillMapScreen {
	s := &SkillMapScreen{eng: eng}
	s.reload()
	return s
}

func (s *SkillMapScreen) reload() {
	views, err := s.eng.Overview(context.Background())
	if err != nil {
		s.status = "Could not load progress: " + err.Error()
		return
	}

	s.rows = s.rows[:0]
	for i := range views {
		sv := &views[i]
		s.rows = append(s.rows, row{kind: rowSkillHeader, skill: sv})
		for j := range sv.Lessons {
			s.rows = append(s.rows, row{kind: rowLesson, skill: sv, lesson: &sv.Lessons[j]})
		}
	}

	// Cursor starts on the first lesson row.
	for i, r := range s.rows {
		if r.kind == rowLesson {
			s.cursor = i
			break
		}
	}
}

func (s *SkillMapScreen) Init() tea.Cmd {
	return nil
}

func (s *SkillMapScreen) Title() string {
	return "Skill Map"
}

func (s *SkillMapScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Play"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SkillMapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.LessonFinishedMsg:
		// Returning from a finished lesson: unlocks may have changed.
		s.reload()
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "enter":
			return s, s.selectLesson()
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SkillMapScreen) moveCursor(delta int) {
	s.status = ""
	for i := s.cursor + delta; i >= 0 && i < len(s.rows); i += delta {
		if s.rows[i].kind == rowLesson {
			s.cursor = i
			return
		}
	}
}

func (s *SkillMapScreen) selectLesson() tea.Cmd {
	if s.cursor < 0 || s.cursor >= len(s.rows) {
		return nil
	}
	r := s.rows[s.cursor]
	if r.kind != rowLesson {
		return nil
	}

	run, err := s.eng.StartLesson(context.Background(), r.lesson.Lesson.ID)
	switch {
	case errors.Is(err, engine.ErrNoLivesRemaining):
		s.status = "Out of hearts! Wait for a refill or visit the shop."
		if p, perr := s.eng.Profile(context.Background()); perr == nil {
			hs := s.eng.HeartStatus(p)
			if hs.MinutesUntilRefill > 0 {
				s.status = fmt.Sprintf("Out of hearts! Next heart in %d min, or refill in the shop.", hs.MinutesUntilRefill)
			}
		}
		return nil
	case errors.Is(err, engine.ErrLessonLocked):
		s.status = "Locked. Complete the previous lesson first."
		return nil
	case err != nil:
		s.status = err.Error()
		return nil
	}

	return func() tea.Msg {
		return router.PushScreenMsg{Screen: quizscreen.New(s.eng, run)}
	}
}

func (s *SkillMapScreen) View(width, height int) string {
	if len(s.rows) == 0 {
		return theme.Hint.Render("  " + s.status)
	}

	listHeight := height
	if s.status != "" {
		listHeight -= 2
	}
	s.adjustScroll(listHeight)

	var lines []string
	visible := 0
	for i, r := range s.rows {
		if i < s.scrollOffset {
			continue
		}
		if visible >= listHeight {
			break
		}
		switch r.kind {
		case rowSkillHeader:
			lines = append(lines, s.renderSkillHeader(r.skill, width))
		case rowLesson:
			lines = append(lines, s.renderLessonRow(r, i == s.cursor, width))
		}
		visible++
	}

	out := strings.Join(lines, "\n")
	if s.status != "" {
		out += "\n\n" + lipgloss.NewStyle().Foreground(theme.Error).Render("  "+s.status)
	}
	return out
}

func (s *SkillMapScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	if s.cursor < s.scrollOffset {
		s.scrollOffset = s.cursor
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

func (s *SkillMapScreen) renderSkillHeader(sv *engine.SkillView, width int) string {
	name := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(strings.ToUpper(sv.Skill.Name))
	count := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %d/%d lessons", sv.Completion.Completed, sv.Completion.Total))
	return "\n  " + name + count
}

func (s *SkillMapScreen) renderLessonRow(r row, selected bool, width int) string {
	lv := r.lesson

	prefix := "    "
	if selected {
		prefix = "  ▸ "
	}

	stars := components.StarRow(lv.Progress.Stars, 3)
	reward := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  +%d XP  +%d coins", lv.Lesson.XPReward, lv.Lesson.CoinReward))

	label := fmt.Sprintf("%-16s %s", lv.Lesson.Name, lv.Lesson.Description)

	var line string
	switch {
	case !lv.Unlocked:
		line = theme.Locked.Render(prefix+"🔒 "+label) + reward
	case selected:
		line = theme.Selected.Render(prefix+label) + "  " + stars + reward
	default:
		line = theme.Unselected.Render(prefix+label) + "  " + stars + reward
	}
	return line
}
