package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
)

// MenuItem is one entry in a Menu. Action produces the command to run
// when the entry is chosen.
type MenuItem struct {
	Label  string
	Action func() tea.Cmd
}

// Menu is a vertical list of row buttons. Navigation wraps around at
// both ends.
type Menu struct {
	items    []MenuItem
	selected int
}

func NewMenu(items []MenuItem) Menu {
	return Menu{items: items}
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.items) == 0 {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		m.selected = (m.selected + len(m.items) - 1) % len(m.items)
	case "down", "j":
		m.selected = (m.selected + 1) % len(m.items)
	case "enter":
		if item := m.items[m.selected]; item.Action != nil {
			return m, item.Action()
		}
	}
	return m, nil
}

// View renders every entry as a SelectButton row at the given width.
func (m Menu) View(width int) string {
	rows := make([]string, len(m.items))
	for i, item := range m.items {
		rows[i] = SelectButton(item.Label, i == m.selected, width)
	}
	return strings.Join(rows, "\n")
}
