package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tally/scroll"
)

type fakeScroller struct {
	vp  scroll.Viewport
	trk *scroll.Tracker
}

func (fs *fakeScroller) Viewport() scroll.Viewport {
	return fs.vp
}

func (fs *fakeScroller) ScrollTo(top int) {
	fs.vp.ScrollTop = top
	fs.trk.OnScroll(fs.vp)
}

func newTable(rows, columns, clientHeight int) (*Cursor, *fakeScroller) {

	trk := (&scroll.Config{RowHeight: 1}).New()
	fs := &fakeScroller{vp: scroll.Viewport{ClientHeight: clientHeight}, trk: trk}
	return NewTable(trk, fs, rows, columns), fs
}

var (
	up       = Key{Name: "up"}
	down     = Key{Name: "down"}
	left     = Key{Name: "left"}
	right    = Key{Name: "right"}
	tab      = Key{Name: "tab"}
	shiftTab = Key{Name: "tab", Shift: true}
	escape   = Key{Name: "esc"}
	enter    = Key{Name: "enter"}
)

func TestArrowUpScenario(t *testing.T) {

	cur, _ := newTable(1245, 4, 20)
	cur.SetCell(9, 0)

	cur.KeyDown(up)
	assert.Equal(t, Cell{Row: 8}, cur.Cell())

	cur.SetCell(9, 0)
	for range 9 {
		cur.KeyDown(up)
	}
	assert.Equal(t, Cell{Row: 0}, cur.Cell())

	res := cur.KeyDown(up)
	assert.Equal(t, Cell{Row: 0}, cur.Cell())
	assert.True(t, res.Handled)
	assert.True(t, res.StopPropagation)
}

func TestPageScenario(t *testing.T) {

	cur, _ := newTable(1245, 4, 20)
	cur.SetCell(40, 0)
	cur.KeyDown(Key{Name: "pgup"})
	assert.Equal(t, 20, cur.Cell().Row)

	cur, _ = newTable(1245, 4, 20)
	cur.SetCell(40, 0)
	cur.KeyDown(Key{Name: "pgdown"})
	assert.Equal(t, 60, cur.Cell().Row)
}

func TestRowClamping(t *testing.T) {

	for _, rows := range []int{1, 2, 17, 300} {
		cur, _ := newTable(rows, 3, 10)

		for range rows + 5 {
			cur.KeyDown(up)
			require.GreaterOrEqual(t, cur.Cell().Row, 0)
		}

		cur.SetCell(rows-1, 0)
		for range 5 {
			cur.KeyDown(down)
			cur.KeyDown(Key{Name: "pgdown"})
			require.LessOrEqual(t, cur.Cell().Row, rows-1)
		}
		assert.Equal(t, rows-1, cur.Cell().Row)
	}
}

func TestColumnWrap(t *testing.T) {

	cur, _ := newTable(10, 4, 10)

	cur.KeyDown(left)
	assert.Equal(t, Cell{Row: 0, Column: 3}, cur.Cell())

	cur.KeyDown(right)
	assert.Equal(t, Cell{Row: 0, Column: 0}, cur.Cell())

	cur.Move(0, 9)
	assert.Equal(t, 1, cur.Cell().Column)
}

func TestHomeEnd(t *testing.T) {

	cur, fs := newTable(100, 4, 10)
	cur.SetCell(50, 2)
	fs.ScrollTo(45)

	cur.KeyDown(Key{Name: "end"})
	assert.Equal(t, Cell{Row: 50, Column: 3}, cur.Cell())

	cur.KeyDown(Key{Name: "home"})
	assert.Equal(t, Cell{Row: 50, Column: 0}, cur.Cell())

	res := cur.KeyDown(Key{Name: "end", Ctrl: true})
	assert.True(t, res.PreventDefault)
	assert.Equal(t, Cell{Row: 99, Column: 0}, cur.Cell())
	assert.Equal(t, 90, fs.vp.ScrollTop)

	cur.KeyDown(Key{Name: "home", Ctrl: true})
	assert.Equal(t, Cell{Row: 0, Column: 0}, cur.Cell())
	assert.Equal(t, 0, fs.vp.ScrollTop)
}

func TestTabTraversal(t *testing.T) {

	cur, _ := newTable(3, 4, 10)

	for row := range 2 {
		cur.SetCell(row, 3)
		res := cur.KeyDown(tab)
		assert.Equal(t, Cell{Row: row + 1, Column: 0}, cur.Cell())
		assert.True(t, res.PreventDefault)
	}

	cur.SetCell(2, 3)
	res := cur.KeyDown(tab)
	assert.Equal(t, Cell{Row: 2, Column: 3}, cur.Cell())
	assert.False(t, res.PreventDefault)
	assert.True(t, res.StopPropagation)

	cur.SetCell(1, 0)
	cur.KeyDown(shiftTab)
	assert.Equal(t, Cell{Row: 0, Column: 3}, cur.Cell())

	cur.SetCell(0, 0)
	res = cur.KeyDown(shiftTab)
	assert.Equal(t, Cell{Row: 0, Column: 0}, cur.Cell())
	assert.False(t, res.PreventDefault)
}

func TestListStyle(t *testing.T) {

	trk := (&scroll.Config{RowHeight: 1}).New()
	fs := &fakeScroller{vp: scroll.Viewport{ClientHeight: 5}, trk: trk}
	cur := NewList(trk, fs, 8)

	for _, key := range []Key{left, right, tab, {Name: "home"}, {Name: "end"}} {
		res := cur.KeyDown(key)
		assert.False(t, res.Handled, key.Name)
		assert.False(t, res.StopPropagation, key.Name)
	}
	assert.Equal(t, Cell{}, cur.Cell())

	cur.KeyDown(down)
	cur.Move(0, 3)
	assert.Equal(t, Cell{Row: 1}, cur.Cell())
}

func TestEnsureVisible(t *testing.T) {

	// the header is not taken from the client height a second time
	trk := (&scroll.Config{RowHeight: 1, HeaderHeight: 2}).New()
	fs := &fakeScroller{vp: scroll.Viewport{ClientHeight: 8}, trk: trk}
	cur := NewTable(trk, fs, 100, 2)

	// eight rows fit in the band
	cur.SetCell(7, 0)
	cur.EnsureVisible()
	assert.Equal(t, 0, fs.vp.ScrollTop)

	cur.KeyDown(down)
	assert.Equal(t, 1, fs.vp.ScrollTop)

	fs.ScrollTo(20)
	cur.SetCell(20, 0)
	cur.KeyDown(up)
	assert.Equal(t, 19, fs.vp.ScrollTop)

	// a page is the eight rows showing
	cur.KeyDown(Key{Name: "pgdown"})
	assert.Equal(t, 27, cur.Cell().Row)
	assert.Equal(t, 20, fs.vp.ScrollTop)
}

func TestEscapeIdle(t *testing.T) {

	cur, _ := newTable(3, 3, 10)

	res := cur.KeyDown(escape)
	assert.False(t, res.Handled)
	assert.False(t, res.StopPropagation)

	res = cur.KeyDown(enter)
	assert.False(t, res.Handled)
}

func TestNoRows(t *testing.T) {

	cur, fs := newTable(0, 3, 10)

	for _, key := range []Key{up, down, {Name: "pgdown"}, {Name: "end", Ctrl: true}, {Name: "home", Ctrl: true}, tab, shiftTab} {
		cur.KeyDown(key)
	}
	assert.Equal(t, 0, cur.Cell().Row)
	assert.Equal(t, 0, fs.vp.ScrollTop)
}

func TestUnmeasuredRows(t *testing.T) {

	trk := (&scroll.Config{}).New()
	fs := &fakeScroller{vp: scroll.Viewport{ClientHeight: 10}, trk: trk}
	cur := NewTable(trk, fs, 50, 2)
	cur.SetCell(10, 0)

	cur.KeyDown(Key{Name: "pgdown"})
	assert.Equal(t, 10, cur.Cell().Row)

	cur.KeyDown(down)
	assert.Equal(t, 11, cur.Cell().Row)
	assert.Equal(t, 0, fs.vp.ScrollTop)
}

func TestInitialCellFollowsScroll(t *testing.T) {

	trk := (&scroll.Config{RowHeight: 1}).New()
	trk.OnScroll(scroll.Viewport{ClientHeight: 10, ScrollTop: 40})

	cur := NewTable(trk, nil, 100, 3)
	assert.Equal(t, Cell{Row: 30}, cur.Cell())
}

func TestSetCounts(t *testing.T) {

	cur, _ := newTable(100, 4, 10)
	cur.SetCell(80, 3)

	cur.SetCounts(50, 2)
	assert.Equal(t, Cell{Row: 49, Column: 1}, cur.Cell())

	rows, columns := cur.Counts()
	assert.Equal(t, 50, rows)
	assert.Equal(t, 2, columns)
}

func TestSubscribe(t *testing.T) {

	cur, _ := newTable(10, 2, 10)
	got := []Cell{}
	unsubscribe := cur.Subscribe(func(cell Cell) { got = append(got, cell) })

	cur.KeyDown(down)
	cur.KeyDown(up)
	cur.KeyDown(up)
	assert.Equal(t, []Cell{{Row: 1}, {Row: 0}}, got)

	unsubscribe()
	cur.KeyDown(down)
	assert.Len(t, got, 2)
}
