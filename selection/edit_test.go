package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memos backs column 1 with editable values; other columns are read-only.
type memos map[int]string

func (mm memos) editors(cell Cell) *Editor {
	if cell.Column != 1 {
		return nil
	}
	return &Editor{
		GetValue: func(row int) string { return mm[row] },
		SetValue: func(row int, value string) { mm[row] = value },
	}
}

func newEditable() (*Cursor, memos) {

	mm := memos{0: "rent", 1: "coffee", 2: "groceries"}
	cur, _ := newTable(3, 3, 10)
	cur.SetEditors(mm.editors)
	cur.SetCell(1, 1)

	return cur, mm
}

func typeText(cur *Cursor, text string) {
	for _, rn := range text {
		cur.KeyDown(Key{Text: string(rn)})
	}
}

func TestEditPrintable(t *testing.T) {

	cur, mm := newEditable()

	res := cur.KeyDown(Key{Text: "t"})
	assert.True(t, res.StopPropagation)
	assert.Equal(t, Editing, cur.Mode())
	typeText(cur, "ea")

	pnd, ok := cur.Pending()
	require.True(t, ok)
	assert.Equal(t, Cell{Row: 1, Column: 1}, pnd.Cell)
	assert.Equal(t, "tea", pnd.Input.Value())

	res = cur.KeyDown(enter)
	assert.True(t, res.Refocus)
	assert.Equal(t, Idle, cur.Mode())
	assert.Equal(t, "tea", mm[1])
}

func TestEditF2(t *testing.T) {

	cur, mm := newEditable()

	cur.KeyDown(Key{Name: "f2"})
	cur.KeyDown(Key{Name: "backspace"})
	cur.KeyDown(Key{Name: "left"})
	typeText(cur, "f")
	cur.KeyDown(enter)

	assert.Equal(t, "cofffe", mm[1])
}

func TestEditDeleteClears(t *testing.T) {

	cur, mm := newEditable()

	cur.KeyDown(Key{Name: "delete"})
	pnd, ok := cur.Pending()
	require.True(t, ok)
	assert.Equal(t, "", pnd.Input.Value())

	cur.KeyDown(enter)
	assert.Equal(t, "", mm[1])
}

func TestEditEscape(t *testing.T) {

	cur, mm := newEditable()

	typeText(cur, "junk")
	res := cur.KeyDown(escape)

	assert.True(t, res.Handled)
	assert.True(t, res.Refocus)
	assert.False(t, res.StopPropagation)
	assert.Equal(t, Idle, cur.Mode())
	assert.Equal(t, "coffee", mm[1])
}

func TestEditReadOnly(t *testing.T) {

	cur, _ := newEditable()
	cur.SetCell(1, 0)

	res := cur.KeyDown(Key{Text: "x"})
	assert.False(t, res.Handled)
	assert.Equal(t, Idle, cur.Mode())
}

func TestEditTabCommitsAndMoves(t *testing.T) {

	cur, mm := newEditable()

	typeText(cur, "latte")
	cur.KeyDown(tab)
	assert.Equal(t, "latte", mm[1])
	assert.Equal(t, Cell{Row: 1, Column: 2}, cur.Cell())

	cur.SetCell(2, 1)
	typeText(cur, "market")
	cur.KeyDown(shiftTab)
	assert.Equal(t, "market", mm[2])
	assert.Equal(t, Cell{Row: 2, Column: 0}, cur.Cell())
}

func TestEditKeysStayInEditor(t *testing.T) {

	cur, _ := newEditable()

	typeText(cur, "ab")
	res := cur.KeyDown(up)
	assert.True(t, res.StopPropagation)
	assert.Equal(t, Cell{Row: 1, Column: 1}, cur.Cell())

	cur.KeyDown(Key{Name: "a", Ctrl: true})
	typeText(cur, "x")
	pnd, _ := cur.Pending()
	assert.Equal(t, "xab", pnd.Input.Value())
}

func TestEditCommitsOnNavigateAway(t *testing.T) {

	cur, mm := newEditable()

	typeText(cur, "mocha")
	hit := TableHitTest{Rows: []RowBox{
		{Top: 0, Bottom: 1, Cells: []CellBox{{Left: 0, Right: 5, Span: 1}, {Left: 5, Right: 10, Span: 1}, {Left: 10, Right: 15, Span: 1}}},
	}}

	// same cell keeps editing
	cur.SetCell(1, 1)
	assert.Equal(t, Editing, cur.Mode())

	res := cur.MouseDown(hit, 2, 0)
	assert.True(t, res.Handled)
	assert.Equal(t, Idle, cur.Mode())
	assert.Equal(t, "mocha", mm[1])
	assert.Equal(t, Cell{Row: 0, Column: 0}, cur.Cell())
}

func TestBlur(t *testing.T) {

	cur, mm := newEditable()

	typeText(cur, "chai")
	cur.Blur()
	assert.Equal(t, Idle, cur.Mode())
	assert.Equal(t, "chai", mm[1])

	cur.Blur()
	assert.Equal(t, "chai", mm[1])
}
