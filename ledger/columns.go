package ledger

import (
	nt "tally/entity"
	"tally/selection"
)

const (
	// date, payee, memo and amount
	columnCount = 4
)

var defaultWidths = map[string]int{
	"date":   12,
	"payee":  28,
	"memo":   28,
	"amount": 12,
}

// columns resolves the configured column widths and formats.
// A detail row's category spans the date and payee columns.
type columns struct {
	date   nt.Column
	payee  nt.Column
	memo   nt.Column
	amount nt.Column
}

func newColumns(cols []nt.Column) columns {

	byField := map[string]nt.Column{}
	for _, col := range cols {
		if col.Width <= 0 {
			col.Width = defaultWidths[col.Field]
		}
		if col.Hidden {
			col.Width = 0
		}
		byField[col.Field] = col
	}

	resolve := func(field string) nt.Column {
		col, ok := byField[field]
		if !ok {
			col = nt.Column{Field: field, Width: defaultWidths[field]}
		}
		return col
	}

	return columns{
		date:   resolve("date"),
		payee:  resolve("payee"),
		memo:   resolve("memo"),
		amount: resolve("amount"),
	}
}

// width is the total width of a row.
func (cols columns) width() int {
	return cols.date.Width + cols.payee.Width + cols.memo.Width + cols.amount.Width
}

// groupCells are the cell boxes of a transaction row.
func (cols columns) groupCells() []selection.CellBox {
	return boxes([]int{cols.date.Width, cols.payee.Width, cols.memo.Width, cols.amount.Width}, []int{1, 1, 1, 1})
}

// detailCells are the cell boxes of a split row.
func (cols columns) detailCells() []selection.CellBox {
	return boxes([]int{cols.date.Width + cols.payee.Width, cols.memo.Width, cols.amount.Width}, []int{2, 1, 1})
}

func boxes(widths, spans []int) []selection.CellBox {

	cells := make([]selection.CellBox, len(widths))
	left := 0
	for i, width := range widths {
		cells[i] = selection.CellBox{Left: left, Right: left + width, Span: spans[i]}
		left += width
	}
	return cells
}
