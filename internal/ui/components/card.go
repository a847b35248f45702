package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/arnavj/mathsprint/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for boxed sections.
// All cards on a screen render at this width so they visually align.
func ContentWidth(frameWidth int) int {
	// Leave room for the outer border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

// BoardFrame wraps content in a double-border frame, centering it
// within the given dimensions.
func BoardFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// SectionCard wraps content in a rounded-border card at the given
// content width.
func SectionCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw-2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// SelectButton renders a full-width selectable row button.
func SelectButton(label string, selected bool, width int) string {
	if selected {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Bold(true).
			Foreground(theme.BgDark).
			Background(theme.Accent).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Accent).
			Padding(0, 1).
			Render("▸ " + label)
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Render(label)
}

// StarRow renders an earned/total star rating like "★★☆".
func StarRow(earned, total int) string {
	var b strings.Builder
	for i := 0; i < total; i++ {
		if i < earned {
			b.WriteString(theme.Stars.Render("★"))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("☆"))
		}
	}
	return b.String()
}
