package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// AnswerInput is the entry field for quiz answers. It wraps
// bubbles/textinput and drops any keystroke that is not a digit or a
// leading minus sign.
type AnswerInput struct {
	model textinput.Model
}

// NewAnswerInput creates a focused input accepting up to maxDigits
// characters.
func NewAnswerInput(maxDigits int) AnswerInput {
	ti := textinput.New()
	ti.Placeholder = "?"
	ti.CharLimit = maxDigits
	ti.Focus()
	return AnswerInput{model: ti}
}

func (a AnswerInput) Init() tea.Cmd {
	return a.model.Focus()
}

func (a AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if key := kmsg.String(); len(key) == 1 && !allowedAnswerKey(key[0], a.model.Value()) {
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.model, cmd = a.model.Update(msg)
	return a, cmd
}

func allowedAnswerKey(c byte, current string) bool {
	if c >= '0' && c <= '9' {
		return true
	}
	return c == '-' && current == ""
}

func (a AnswerInput) View() string {
	return a.model.View()
}

// Value returns the raw typed answer.
func (a AnswerInput) Value() string {
	return a.model.Value()
}
