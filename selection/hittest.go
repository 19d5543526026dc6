package selection

// HitTester maps a click position in viewport lines and columns to a cell.
type HitTester interface {
	HitTest(x, y int) (cell Cell, ok bool)
}

// CellBox is the horizontal extent of a rendered cell, Right exclusive.
type CellBox struct {
	Left  int
	Right int
	Span  int
}

// RowBox is the vertical extent of a rendered table row, Bottom exclusive.
type RowBox struct {
	Top    int
	Bottom int
	Cells  []CellBox
}

// TableHitTest finds cells in rendered table rows.
// Offset is the absolute row of the first rendered row. RowIndex, when set,
// holds the absolute row of each rendered row, for frames that skipped rows.
type TableHitTest struct {
	Offset   int
	Rows     []RowBox
	RowIndex []int
}

// HitTest returns the cell under the click.
// Columns count the spans of preceding cells so merged cells map to their first column.
func (ht TableHitTest) HitTest(x, y int) (Cell, bool) {

	for idx, row := range ht.Rows {
		if y < row.Top || y >= row.Bottom {
			continue
		}

		column := 0
		for _, cell := range row.Cells {
			if x >= cell.Left && x < cell.Right {
				return Cell{Row: rowAt(ht.RowIndex, ht.Offset, idx), Column: column}, true
			}
			column += max(cell.Span, 1)
		}
		return Cell{}, false
	}

	return Cell{}, false
}

// ListHitTest finds rows in a rendered list by linear scan.
// Bottoms are the exclusive bottom lines of the rendered rows, top to bottom.
// RowIndex is as for TableHitTest.
type ListHitTest struct {
	Offset   int
	Bottoms  []int
	RowIndex []int
}

// HitTest returns the first row whose bottom is below the click.
// Clicks past the last rendered row hit nothing.
func (ht ListHitTest) HitTest(x, y int) (Cell, bool) {

	for idx, bottom := range ht.Bottoms {
		if bottom > y {
			return Cell{Row: rowAt(ht.RowIndex, ht.Offset, idx)}, true
		}
	}

	return Cell{}, false
}

// unexported

func rowAt(index []int, offset, idx int) int {

	if idx < len(index) {
		return index[idx]
	}
	return offset + idx
}
