package tally

import (
	"strings"

	"charm.land/lipgloss/v2"

	"tally/style"
)

// RenderFooter renders a footer line with left and right aligned parts.
func RenderFooter(left, right string, width int) string {

	// Calculate padding
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return style.MutedStyle.Render(left + strings.Repeat(" ", padding) + right)
}
