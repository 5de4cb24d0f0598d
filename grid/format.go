package grid

import (
	"github.com/shopspring/decimal"

	nt "bankview/entity"
	"bankview/style"
)

// Formatter renders a resolved value for a cell.
type Formatter func(nt.Value) string

// makeFormatter picks a formatter by the column's format name, falling back to plain strings.
func makeFormatter(format string) Formatter {

	switch format {
	case "money":
		return func(val nt.Value) string {
			f, err := val.Float()
			if err != nil {
				return val.String()
			}
			return decimal.NewFromFloat(f).StringFixed(2)
		}

	case "date":
		return func(val nt.Value) string {
			t, err := val.Time()
			if err != nil {
				return val.String()
			}
			return t.Format(nt.DateFormat)
		}

	case "bool":
		return func(val nt.Value) string {
			b, err := val.Bool()
			if err != nil {
				return val.String()
			}
			if b {
				return "sí"
			}
			return "no"
		}
	}

	return func(val nt.Value) string {
		return val.String()
	}
}

// Cell resolves and formats one column of a row; absent fields render blank.
func Cell(row nt.Record, col nt.Column) string {

	val, ok := ResolveField(row, col.Field)
	if !ok {
		return ""
	}
	return truncate(makeFormatter(col.Format)(val), col.Width)
}

func truncate(in string, width int) string {

	runes := []rune(in)
	if width <= 0 || len(runes) <= width {
		return in
	}

	truncated := string(runes[:width-1])
	ellipsis := style.MutedStyle.Render("…")
	return truncated + ellipsis
}
