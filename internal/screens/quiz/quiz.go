package quiz

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arnavj/mathsprint/internal/engine"
	"github.com/arnavj/mathsprint/internal/problemgen"
	"github.com/arnavj/mathsprint/internal/quiz"
	"github.com/arnavj/mathsprint/internal/router"
	"github.com/arnavj/mathsprint/internal/scoring"
	"github.com/arnavj/mathsprint/internal/screen"
	"github.com/arnavj/mathsprint/internal/screens/summary"
	"github.com/arnavj/mathsprint/internal/store"
	"github.com/arnavj/mathsprint/internal/ui/components"
	"github.com/arnavj/mathsprint/internal/ui/theme"
)

type phase int

const (
	phaseQuestion phase = iota
	phaseFeedback
)

// tickMsg drives the per-question countdown. The quiz ID filters out
// ticks from an abandoned run.
type tickMsg struct {
	quizID string
}

// QuizScreen plays one quiz run, lesson or arcade.
type QuizScreen struct {
	eng *engine.Engine
	run *quiz.Quiz

	input     components.AnswerInput
	remaining int
	phase     phase
	outcome   quiz.Outcome
	invalid   bool
	profile   *store.Profile
	noHearts  bool
}

var _ screen.Screen = (*QuizScreen)(nil)

// New creates a screen for an already-built quiz run.
func New(eng *engine.Engine, run *quiz.Quiz) *QuizScreen {
	s := &QuizScreen{
		eng:       eng,
		run:       run,
		remaining: scoring.DefaultConfig().TimerSecs,
	}
	if run.Mode == quiz.ModeLesson {
		s.profile, _ = eng.Profile(context.Background())
	}
	s.input = components.NewAnswerInput(4)
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return tea.Batch(s.input.Init(), s.tick())
}

func (s *QuizScreen) tick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{quizID: s.run.ID}
	})
}

func (s *QuizScreen) Title() string {
	if s.run.Mode == quiz.ModeArcade {
		return "Arcade"
	}
	return "Lesson"
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.quizID != s.run.ID || s.phase != phaseQuestion {
			return s, nil
		}
		s.remaining--
		if s.remaining > 0 {
			return s, s.tick()
		}
		return s, s.apply(s.run.Timeout())

	case tea.KeyMsg:
		if msg.String() == "enter" {
			if s.phase == phaseFeedback {
				return s, s.advance()
			}
			return s, s.submit()
		}
		if s.phase == phaseQuestion {
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}
	}
	return s, nil
}

func (s *QuizScreen) submit() tea.Cmd {
	out, err := s.run.Submit(s.input.Value(), s.remaining)
	if errors.Is(err, problemgen.ErrInvalidInput) {
		s.invalid = true
		return nil
	}
	if err != nil {
		return nil
	}
	return s.apply(out)
}

// apply records one outcome, charges a heart in lesson mode, and moves
// to the feedback phase.
func (s *QuizScreen) apply(out quiz.Outcome) tea.Cmd {
	s.invalid = false
	s.outcome = out
	s.phase = phaseFeedback

	var cmds []tea.Cmd
	if out.HeartLost {
		p, err := s.eng.LoseHeart(context.Background())
		if err == nil {
			s.profile = p
			s.noHearts = p.Hearts <= 0
			cmds = append(cmds, func() tea.Msg { return screen.ProfileUpdatedMsg{Profile: p} })
		}
	}
	return tea.Batch(cmds...)
}

// advance moves from feedback to the next question, or off the quiz
// entirely. Running out of hearts before the last question abandons the
// run without recording it.
func (s *QuizScreen) advance() tea.Cmd {
	if s.noHearts && !s.outcome.Finished {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.outcome.Finished {
		return s.finish()
	}

	s.phase = phaseQuestion
	s.remaining = scoring.DefaultConfig().TimerSecs
	s.input = components.NewAnswerInput(4)
	return tea.Batch(s.input.Init(), s.tick())
}

func (s *QuizScreen) finish() tea.Cmd {
	if s.run.Mode == quiz.ModeArcade {
		next := summary.NewArcade(s.run.Tally)
		return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}

	res, err := s.eng.CompleteLesson(context.Background(),
		s.run.LessonID, s.run.Tally.Correct, len(s.run.Questions))
	if err != nil {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	next := summary.NewLesson(res)
	return tea.Batch(
		func() tea.Msg { return screen.ProfileUpdatedMsg{Profile: res.Profile} },
		func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} },
	)
}

func (s *QuizScreen) View(width, height int) string {
	question, ok := s.run.Current()
	if !ok && s.phase != phaseFeedback {
		return ""
	}

	cw := components.ContentWidth(width)
	var sections []string

	sections = append(sections, s.renderStatus(cw))

	if s.phase == phaseFeedback {
		sections = append(sections, s.renderFeedback(cw))
	} else {
		prompt := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render(question.Prompt())
		sections = append(sections, components.SectionCard(prompt+"\n\n"+s.input.View(), cw))

		timer := components.NewProgressBar("Time",
			float64(s.remaining)/float64(scoring.DefaultConfig().TimerSecs), false, cw-8)
		if s.remaining <= 5 {
			timer.Fill = theme.Error
		}
		sections = append(sections, timer.View())

		if s.invalid {
			sections = append(sections, theme.Incorrect.Render("Enter a number"))
		}
	}

	content := strings.Join(sections, "\n\n")
	return components.BoardFrame(content, width, height)
}

func (s *QuizScreen) renderStatus(cw int) string {
	parts := []string{
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf("Question %d/%d", min(s.run.Index+1, len(s.run.Questions)), len(s.run.Questions))),
	}
	if s.run.Mode == quiz.ModeLesson && s.profile != nil {
		parts = append(parts, theme.Hearts.Render(strings.Repeat("♥ ", s.profile.Hearts)+
			strings.Repeat("♡ ", s.profile.MaxHearts-s.profile.Hearts)))
	}
	if s.run.Mode == quiz.ModeArcade {
		parts = append(parts, lipgloss.NewStyle().Foreground(theme.Accent).Render(
			fmt.Sprintf("Score %d", s.run.Tally.Score)))
		if s.run.Tally.Streak >= 2 {
			parts = append(parts, theme.StreakFlame.Render(fmt.Sprintf("x%d streak", s.run.Tally.Streak)))
		}
	}
	return strings.Join(parts, "    ")
}

func (s *QuizScreen) renderFeedback(cw int) string {
	var b strings.Builder
	switch {
	case s.outcome.Correct && s.outcome.Bonus:
		b.WriteString(theme.Correct.Render("Correct! Speed bonus!"))
	case s.outcome.Correct:
		b.WriteString(theme.Correct.Render("Correct!"))
	default:
		b.WriteString(theme.Incorrect.Render(fmt.Sprintf("The answer was %d", s.outcome.Expected)))
	}

	if s.noHearts {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render("Out of hearts!"))
	}

	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("Press Enter to continue"))
	return components.SectionCard(b.String(), cw)
}
