package style

import (
	"strings"

	"charm.land/lipgloss/v2"

	"tally/viewport"
)

var (
	BorderColor      = lipgloss.Color("240")                                 // Subtle warm grey border
	HeaderStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	DetailHeadStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("246")) // Warm muted grey text
	EvenRowStyle     = lipgloss.NewStyle()
	OddRowStyle      = lipgloss.NewStyle().Background(lipgloss.Color("234")) // Dark warm grey stripe
	SelectedRowStyle = lipgloss.NewStyle().Background(lipgloss.Color("235")) // Very subtle warm grey row
	SelectedStyle    = lipgloss.NewStyle().Background(lipgloss.Color("237")) // Slightly warmer cell
	EditingStyle     = lipgloss.NewStyle().Background(lipgloss.Color("24")).Foreground(lipgloss.Color("231"))
	MutedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
	ErrorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	RuleStyle        = lipgloss.NewStyle().Foreground(BorderColor)
	CaretStyle       = lipgloss.NewStyle().Reverse(true)
)

// RowStyle returns the style of a row by parity and selection.
func RowStyle(parity viewport.Parity, selected bool) lipgloss.Style {

	switch {
	case selected:
		return SelectedRowStyle
	case parity == viewport.Odd:
		return OddRowStyle
	}
	return EvenRowStyle
}

// CellStyle returns the style of a cell within a row.
// The selected cell stands out from its row, more so while edited.
func CellStyle(row lipgloss.Style, selected, editing bool) lipgloss.Style {

	switch {
	case editing:
		return EditingStyle
	case selected:
		return SelectedStyle
	}
	return row
}

// Cell renders text in a cell exactly width columns wide, truncating as needed.
func Cell(text string, width int, st lipgloss.Style) string {

	if width <= 0 {
		return ""
	}
	return st.Width(width).MaxWidth(width).MaxHeight(1).Render(text)
}

// CellRight renders text in a cell like Cell, aligned right.
func CellRight(text string, width int, st lipgloss.Style) string {

	if width <= 0 {
		return ""
	}
	return st.Width(width).MaxWidth(width).MaxHeight(1).Align(lipgloss.Right).Render(text)
}

// Caret renders text being edited with the caret between before and after.
func Caret(before, after string) string {

	under := " "
	rest := after
	if after != "" {
		runes := []rune(after)
		under = string(runes[0])
		rest = string(runes[1:])
	}
	return before + CaretStyle.Render(under) + rest
}

// Rule renders a horizontal rule width columns wide.
func Rule(width int) string {

	if width <= 0 {
		return ""
	}
	return RuleStyle.Render(strings.Repeat("─", width))
}
