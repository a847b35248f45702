package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func press(key rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: key, Text: string(key)}
}

func TestMenuWrapsAround(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "a"}, {Label: "b"}, {Label: "c"}})

	m, _ = m.Update(press('k'))
	if m.selected != 2 {
		t.Errorf("up from the top selects %d, want 2", m.selected)
	}
	m, _ = m.Update(press('j'))
	if m.selected != 0 {
		t.Errorf("down from the bottom selects %d, want 0", m.selected)
	}
}

func TestMenuEnterRunsAction(t *testing.T) {
	ran := false
	m := NewMenu([]MenuItem{
		{Label: "play", Action: func() tea.Cmd {
			ran = true
			return nil
		}},
	})

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !ran {
		t.Error("enter did not run the selected action")
	}
}

func TestAnswerInputFiltersKeys(t *testing.T) {
	in := NewAnswerInput(4)

	for _, key := range []rune{'7', 'x', '3', '!'} {
		in, _ = in.Update(press(key))
	}
	if got := in.Value(); got != "73" {
		t.Errorf("value = %q, want %q", got, "73")
	}
}

func TestAnswerInputMinusOnlyLeads(t *testing.T) {
	in := NewAnswerInput(4)

	for _, key := range []rune{'-', '4', '-', '2'} {
		in, _ = in.Update(press(key))
	}
	if got := in.Value(); got != "-42" {
		t.Errorf("value = %q, want %q", got, "-42")
	}
}

func TestProgressBarClamps(t *testing.T) {
	over := NewProgressBar("", 1.5, false, 20).View()
	if strings.Contains(over, "░") {
		t.Error("overfull bar still shows empty cells")
	}

	under := NewProgressBar("", -0.5, false, 20).View()
	if strings.Contains(under, "█") {
		t.Error("negative bar shows filled cells")
	}
}
