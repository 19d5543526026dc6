// Package ledger is a table of transactions, each a row over the rows of its splits.
package ledger

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	nt "tally/entity"
	"tally/keys"
	"tally/message"
	"tally/notify"
	"tally/scroll"
	"tally/selection"
	"tally/viewport"
)

const (
	// wheelLines is how far a wheel notch scrolls
	wheelLines = 3

	headerSelector    = "header"
	prototypeSelector = "prototype"
)

// Config is the layout of a ledger panel.
type Config struct {
	Scroll  scroll.Config `yaml:"scroll"`
	Columns []nt.Column   `yaml:"columns"`
}

// Panel displays transactions with their splits, editing payees, memos and categories in place.
type Panel struct {
	// Data state
	book *book

	// Column state, shared with the resize callback
	cols *columns

	// Scroll and selection
	port   *scroll.Port
	cursor *selection.Cursor

	unregister func()
}

// New creates a panel sized by notifications from sizes.
func (cfg *Config) New(sizes *notify.List[scroll.Size]) Panel {

	scrollCfg := cfg.Scroll
	port := scroll.NewPort(scrollCfg.New())
	cols := newColumns(cfg.Columns)

	pnl := Panel{
		book: newBook(nil),
		cols: &cols,
		port: port,
	}
	pnl.cursor = selection.NewTable(port.Tracker(), port, 0, columnCount)
	pnl.cursor.SetEditors(pnl.book.editor)

	// resize sees only shared state, so a copy of the panel will do
	pnl.unregister = sizes.Register(pnl.resize)
	return pnl
}

func (pnl Panel) Init() tea.Cmd {
	return nil
}

func (pnl Panel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {

	switch msg := msg.(type) {

	case message.TransactionsMsg:
		return pnl.load(msg.Transactions)

	case tea.KeyPressMsg:
		var cmd tea.Cmd
		pnl, _, cmd = pnl.HandleKey(msg)
		return pnl, cmd

	case tea.MouseClickMsg:
		return pnl, pnl.click(msg)

	case tea.MouseWheelMsg:
		pnl.port.ScrollBy(wheelLines * keys.Wheel(msg))
		return pnl, nil
	}

	return pnl, nil
}

// HandleKey gives a key press to the cursor, reporting what it did.
func (pnl Panel) HandleKey(msg tea.KeyPressMsg) (Panel, selection.Result, tea.Cmd) {

	res := pnl.cursor.KeyDown(keys.Key(msg))
	return pnl, res, pnl.editCmd()
}

// Blur commits a pending edit.
func (pnl Panel) Blur() (Panel, tea.Cmd) {

	pnl.cursor.Blur()
	return pnl, pnl.editCmd()
}

// Close stops listening for resizes.
func (pnl Panel) Close() {
	pnl.unregister()
}

// SetColumns replaces the column layout.
func (pnl Panel) SetColumns(cols []nt.Column) {
	*pnl.cols = newColumns(cols)
}

// Position returns the selected row, counting from one, and the number of rows.
func (pnl Panel) Position() (row, total int) {

	total, _ = pnl.cursor.Counts()
	if total == 0 {
		return
	}
	row = pnl.cursor.Cell().Row + 1
	return
}

// Cursor returns the panel's selection cursor.
func (pnl Panel) Cursor() *selection.Cursor {
	return pnl.cursor
}

// Viewport returns the scroll state of the panel.
func (pnl Panel) Viewport() scroll.Viewport {
	return pnl.port.Viewport()
}

// ScrollTo scrolls the rows so that line top is shown first.
func (pnl Panel) ScrollTo(top int) {
	pnl.port.ScrollTo(top)
}

// Measure returns the rendered height of the header or prototype row.
func (pnl Panel) Measure(selector string) (height int, ok bool) {

	switch selector {
	case headerSelector:
		return lipgloss.Height(pnl.header()), true
	case prototypeSelector:
		return lipgloss.Height(pnl.prototype()), true
	}
	return 0, false
}

func (pnl Panel) View() tea.View {
	return tea.NewView(pnl.Render())
}

// Render renders the header over the rows in the scrolled band.
func (pnl Panel) Render() string {

	size := pnl.port.Size()
	if size.Height <= 0 {
		return ""
	}

	band := pnl.port.Band()
	lines := []string{pnl.header()}
	frm := pnl.frame()
	if !frm.Deferred {
		lines = append(lines, frm.Paint(pnl.port.ScrollTop(), band)...)
	}

	return strings.Join(lines, "\n")
}

// unexported

func (pnl Panel) load(txns []nt.Transaction) (Panel, tea.Cmd) {

	// finish with the old book before the cursor sees the new one
	pnl.cursor.Blur()
	cmd := pnl.editCmd()

	pnl.book = newBook(txns)
	pnl.cursor.SetEditors(pnl.book.editor)

	rows := pnl.book.index.RowCount()
	pnl.port.SetRowCount(rows)
	pnl.port.ScrollTo(0)
	pnl.cursor.SetCounts(rows, columnCount)
	pnl.cursor.SetCell(0, 0)

	return pnl, cmd
}

func (pnl Panel) resize(size scroll.Size) {

	pnl.port.Resize(size, pnl)
	pnl.cursor.EnsureVisible()
}

func (pnl Panel) click(msg tea.MouseClickMsg) tea.Cmd {

	x, y, ok := keys.Click(msg)
	header := pnl.port.Tracker().HeaderHeight()
	if !ok || y < header {
		return nil
	}

	hit := pnl.frame().TableHitTest(pnl.port.ScrollTop(), header)
	pnl.cursor.MouseDown(hit, x, y)
	return pnl.editCmd()
}

func (pnl Panel) frame() viewport.Frame {

	layout := viewport.Layout{
		RowHeight:      pnl.port.Tracker().RowHeight(),
		ViewportHeight: pnl.port.Band(),
	}
	return pnl.renderer().Render(pnl.book.entries, pnl.book.index, pnl.port.Range(), layout, pnl.cursor.Cell().Row)
}

func (pnl Panel) editCmd() tea.Cmd {

	cmds := []tea.Cmd{}
	for _, edit := range pnl.book.drain() {
		cmds = append(cmds, message.EditCmd(edit.TransactionID, edit.Field, edit.Value))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}
