package bankview

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// RenderFooter renders the screen trail on the left and a note on the right.
func RenderFooter(trail, note string, width int) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	left := trail
	right := note

	// Calculate padding
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	footer := style.Render(left + strings.Repeat(" ", padding) + right)
	return footer
}
