package view

import (
	"github.com/charmbracelet/lipgloss"
)

const buttonGap = 2

var (
	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("27")).
			Padding(1, 3).
			Align(lipgloss.Center)

	focusedButtonStyle = buttonStyle.
				Background(lipgloss.Color("205")).
				Underline(true)
)

// RenderButton draws a filled button. A width of 0 sizes it to its label.
func RenderButton(label string, focused bool, width int) string {
	style := buttonStyle
	if focused {
		style = focusedButtonStyle
	}

	if width > 0 {
		style = style.Width(width)
	}

	return style.Render(label)
}

// ButtonRow lays out buttons horizontally with a fixed gap.
func ButtonRow(buttons ...string) string {
	if len(buttons) == 0 {
		return ""
	}

	gap := lipgloss.NewStyle().Width(buttonGap).Render("")
	cells := make([]string, 0, len(buttons)*2-1)

	for i, b := range buttons {
		if i > 0 {
			cells = append(cells, gap)
		}

		cells = append(cells, b)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}
