package style

import (
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
)

var (
	TableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")) // Subtle warm grey border
	HeaderStyle      = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	CellStyle        = lipgloss.NewStyle().Padding(0, 1)
	HlRowStyle       = CellStyle.Background(lipgloss.Color("235")) // Very subtle warm grey row
	MenuRowStyle     = CellStyle.Background(lipgloss.Color("237")) // Row whose menu is open
	MutedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
	TitleStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	ErrorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	FocusStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	MenuStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 1)
	CursorStyle      = lipgloss.NewStyle().Reverse(true)
	LabelStyle       = lipgloss.NewStyle().Width(18).Foreground(lipgloss.Color("246"))
	FocusLabelStyle  = LabelStyle.Foreground(lipgloss.Color("63")).Bold(true)
	UnStyle          = lipgloss.NewStyle()
)

// RowStyler returns a StyleFunc that highlights the selected row and the row with an open menu
func RowStyler(selectedRow, menuRow int) func(row, col int) lipgloss.Style {
	return func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return HeaderStyle
		case row == menuRow:
			return MenuRowStyle
		case row == selectedRow:
			return HlRowStyle
		}
		return CellStyle
	}
}

// StyleTable applies consistent table styling for borders and separators
func StyleTable(tbl *table.Table) {
	tbl.Border(lipgloss.Border{
		Top:         "─", // Horizontal parts of separator
		Middle:      "─", // Between columns in separator
		MiddleLeft:  "─", // Left edge of separator
		MiddleRight: "─", // Right edge of separator
	}).
		BorderTop(false).    // Disable top border
		BorderBottom(false). // Disable bottom border
		BorderLeft(false).   // Disable left border
		BorderRight(false).  // Disable right border
		BorderColumn(false). // Disable column separators
		BorderStyle(TableBorderStyle)
}
