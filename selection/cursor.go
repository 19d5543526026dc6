// Package selection maintains the selected cell of a virtualized grid and
// moves it in response to keyboard and mouse input.
package selection

import (
	"tally/edit"
	"tally/notify"
	"tally/scroll"
)

// Style selects list or table navigation.
type Style int

const (
	// ListStyle navigates rows only.
	ListStyle Style = iota
	// TableStyle navigates rows and columns, with tab wrapping.
	TableStyle
)

// Mode is the editing state of a cursor.
type Mode int

const (
	// Idle moves between cells.
	Idle Mode = iota
	// Editing sends keys to the pending cell's input.
	Editing
)

// Cell is a position in the grid.
type Cell struct {
	Row    int
	Column int
}

// Scroller is the container a cursor keeps its row visible in.
// Its viewport's client height is the band rows scroll through, below any sticky header.
type Scroller interface {
	Viewport() scroll.Viewport
	ScrollTo(top int)
}

// Editor reads and writes the value edited in place for a row.
type Editor struct {
	GetValue func(row int) string
	SetValue func(row int, value string)
}

// EditorFunc returns the editor for a cell, or nil when it is read-only.
type EditorFunc func(cell Cell) *Editor

// Pending is a cell under edit.
type Pending struct {
	Cell  Cell
	Input edit.Input
}

// Cursor is the selected cell of a grid of rows and columns.
type Cursor struct {
	style    Style
	tracker  *scroll.Tracker
	scroller Scroller
	rows     int
	columns  int
	cell     Cell
	pending  *Pending
	editors  EditorFunc
	changes  notify.List[Cell]
}

// NewList creates a single column cursor.
func NewList(tracker *scroll.Tracker, scroller Scroller, rowCount int) *Cursor {
	return newCursor(ListStyle, tracker, scroller, rowCount, 1)
}

// NewTable creates a multi-column cursor.
func NewTable(tracker *scroll.Tracker, scroller Scroller, rowCount, columnCount int) *Cursor {
	return newCursor(TableStyle, tracker, scroller, rowCount, columnCount)
}

func newCursor(style Style, tracker *scroll.Tracker, scroller Scroller, rows, columns int) *Cursor {

	return &Cursor{
		style:    style,
		tracker:  tracker,
		scroller: scroller,
		rows:     rows,
		columns:  columns,
		cell:     Cell{Row: tracker.StartRow()},
	}
}

// SetEditors sets the per-cell editor lookup.
func (cur *Cursor) SetEditors(editors EditorFunc) {
	cur.editors = editors
}

// Subscribe registers for cell and edit changes.
func (cur *Cursor) Subscribe(fn func(Cell)) (unsubscribe func()) {
	return cur.changes.Register(fn)
}

// Cell returns the selected cell.
func (cur *Cursor) Cell() Cell {
	return cur.cell
}

// Mode returns Editing while a cell is under edit.
func (cur *Cursor) Mode() Mode {
	if cur.pending != nil {
		return Editing
	}
	return Idle
}

// Pending returns the cell under edit, if any.
func (cur *Cursor) Pending() (Pending, bool) {
	if cur.pending == nil {
		return Pending{}, false
	}
	return *cur.pending, true
}

// Counts returns the grid dimensions.
func (cur *Cursor) Counts() (rows, columns int) {
	return cur.rows, cur.columns
}

// SetCounts changes the grid dimensions, pulling the cursor back inside.
func (cur *Cursor) SetCounts(rows, columns int) {

	cur.rows = rows
	cur.columns = columns

	cell := cur.cell
	if rows > 0 && cell.Row > rows-1 {
		cell.Row = rows - 1
	}
	if columns > 0 && cell.Column > columns-1 {
		cell.Column = columns - 1
	}

	if cur.pending != nil && (cur.pending.Cell.Row >= rows || cur.pending.Cell.Column >= columns) {
		cur.pending = nil
	}
	cur.set(cell)
}

// SetCell selects a cell as given, without clamping.
func (cur *Cursor) SetCell(row, column int) {

	cur.leave(Cell{Row: row, Column: column})
	cur.set(Cell{Row: row, Column: column})
}

// Move moves the cursor, clamping the row and wrapping the column,
// then scrolls the row into view.
func (cur *Cursor) Move(deltaRows, deltaColumns int) {

	cell := cur.cell

	if cur.rows > 0 {
		cell.Row = clamp(cell.Row+deltaRows, 0, cur.rows-1)
	}
	if cur.style == TableStyle && cur.columns > 0 {
		cell.Column = wrap(cell.Column+deltaColumns, cur.columns)
	}

	cur.leave(cell)
	cur.set(cell)
	cur.EnsureVisible()
}

// EnsureVisible scrolls the container so the selected row is inside its
// client height.
func (cur *Cursor) EnsureVisible() {

	rowHeight := cur.tracker.RowHeight()
	if cur.scroller == nil || cur.rows == 0 || rowHeight <= 0 {
		return
	}

	vp := cur.scroller.Viewport()
	band := vp.ClientHeight
	top := cur.cell.Row * rowHeight
	bottom := top + rowHeight

	switch {
	case top < vp.ScrollTop:
		cur.scroller.ScrollTo(top)
	case bottom > vp.ScrollTop+band:
		cur.scroller.ScrollTo(min(top, bottom-band))
	}
}

// KeyDown handles a keystroke.
func (cur *Cursor) KeyDown(key Key) Result {

	if cur.pending != nil {
		return cur.editKey(key)
	}

	res, ok := cur.startEdit(key)
	if ok {
		return res
	}

	return cur.navigate(key)
}

// MouseDown selects the cell under a click, if any.
func (cur *Cursor) MouseDown(hit HitTester, x, y int) Result {

	cell, ok := hit.HitTest(x, y)
	if !ok {
		return Result{}
	}
	if cur.style == ListStyle {
		cell.Column = cur.cell.Column
	}

	cur.leave(cell)
	cur.set(cell)

	return Result{Handled: true, StopPropagation: true}
}

// Blur commits any pending edit.
func (cur *Cursor) Blur() {

	if cur.pending != nil {
		cur.commit()
	}
}

// unexported

func (cur *Cursor) navigate(key Key) Result {

	table := cur.style == TableStyle

	switch {
	case key.Name == "up":
		cur.Move(-1, 0)
	case key.Name == "down":
		cur.Move(1, 0)
	case key.Name == "left" && table:
		cur.Move(0, -1)
	case key.Name == "right" && table:
		cur.Move(0, 1)
	case key.Name == "pgup":
		cur.Move(-cur.pageSize(), 0)
	case key.Name == "pgdown":
		cur.Move(cur.pageSize(), 0)
	case key.Name == "home" && key.Ctrl:
		cur.first()
	case key.Name == "end" && key.Ctrl:
		cur.last()
	case key.Name == "home" && table:
		cur.set(Cell{Row: cur.cell.Row, Column: 0})
	case key.Name == "end" && table:
		cur.set(Cell{Row: cur.cell.Row, Column: max(cur.columns-1, 0)})
	case key.Name == "tab" && table && key.Shift:
		return handled(cur.prevCell())
	case key.Name == "tab" && table:
		return handled(cur.nextCell())
	default:
		return Result{}
	}

	return handled(true)
}

func (cur *Cursor) first() {

	if cur.rows == 0 {
		return
	}

	cur.set(Cell{Row: 0, Column: cur.cell.Column})
	if cur.scroller != nil {
		cur.scroller.ScrollTo(0)
	}
}

func (cur *Cursor) last() {

	if cur.rows == 0 {
		return
	}

	cur.set(Cell{Row: cur.rows - 1, Column: cur.cell.Column})
	cur.EnsureVisible()
}

// nextCell advances one column, wrapping to the start of the next row.
// The last cell of the last row stays put.
func (cur *Cursor) nextCell() bool {

	if cur.rows == 0 || cur.columns == 0 {
		return false
	}

	cell := cur.cell
	switch {
	case cell.Column < cur.columns-1:
		cell.Column++
	case cell.Row < cur.rows-1:
		cell.Row++
		cell.Column = 0
	default:
		return false
	}

	cur.set(cell)
	cur.EnsureVisible()
	return true
}

// prevCell is the reverse of nextCell, stopping at the first cell.
func (cur *Cursor) prevCell() bool {

	if cur.rows == 0 || cur.columns == 0 {
		return false
	}

	cell := cur.cell
	switch {
	case cell.Column > 0:
		cell.Column--
	case cell.Row > 0:
		cell.Row--
		cell.Column = cur.columns - 1
	default:
		return false
	}

	cur.set(cell)
	cur.EnsureVisible()
	return true
}

func (cur *Cursor) pageSize() int {

	if cur.scroller == nil {
		return 0
	}
	return cur.tracker.PageSize(cur.scroller.Viewport().ClientHeight)
}

func (cur *Cursor) startEdit(key Key) (Result, bool) {

	printable := key.Name == "" && key.Printable()
	switch {
	case printable, key.Name == "f2", key.Name == "delete", key.Name == "backspace":
	default:
		return Result{}, false
	}

	editor := cur.editor(cur.cell)
	if editor == nil {
		return Result{}, false
	}

	seed := ""
	switch {
	case printable:
		seed = key.Text
	case key.Name == "f2" && editor.GetValue != nil:
		seed = editor.GetValue(cur.cell.Row)
	}

	cur.pending = &Pending{Cell: cur.cell, Input: edit.New(seed, 0)}
	cur.changes.Notify(cur.cell)

	return Result{Handled: true, PreventDefault: true, StopPropagation: true}, true
}

func (cur *Cursor) editKey(key Key) Result {

	switch key.Name {
	case "esc":
		cur.pending = nil
		cur.changes.Notify(cur.cell)
		return Result{Handled: true, PreventDefault: true, Refocus: true}

	case "enter":
		cur.commit()
		return Result{Handled: true, PreventDefault: true, StopPropagation: true, Refocus: true}

	case "tab":
		cur.commit()
		if key.Shift {
			cur.prevCell()
		} else {
			cur.nextCell()
		}
		return Result{Handled: true, PreventDefault: true, StopPropagation: true, Refocus: true}
	}

	name := key.Name
	if key.Ctrl && name != "" {
		name = "ctrl+" + name
	}
	text := ""
	if key.Printable() {
		text = key.Text
	}

	input, ok := cur.pending.Input.Apply(name, text)
	if ok {
		cur.pending.Input = input
		cur.changes.Notify(cur.cell)
	}

	// keys go nowhere else while editing
	return Result{Handled: true, PreventDefault: ok, StopPropagation: true}
}

func (cur *Cursor) commit() {

	pnd := cur.pending
	cur.pending = nil

	editor := cur.editor(pnd.Cell)
	if editor != nil && editor.SetValue != nil {
		editor.SetValue(pnd.Cell.Row, pnd.Input.Value())
	}
	cur.changes.Notify(cur.cell)
}

// leave commits a pending edit when the cursor is about to move off it.
func (cur *Cursor) leave(next Cell) {

	if cur.pending != nil && cur.pending.Cell != next {
		cur.commit()
	}
}

func (cur *Cursor) editor(cell Cell) *Editor {

	if cur.editors == nil || cur.rows == 0 {
		return nil
	}
	return cur.editors(cell)
}

func (cur *Cursor) set(cell Cell) {

	if cell == cur.cell {
		return
	}
	cur.cell = cell
	cur.changes.Notify(cell)
}

func clamp(val, lo, hi int) int {
	return max(lo, min(val, hi))
}

func wrap(val, count int) int {
	return ((val % count) + count) % count
}
