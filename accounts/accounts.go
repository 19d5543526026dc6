// Package accounts is a list of accounts with their balances.
package accounts

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
	"tally/style"
	"tally/viewport"
)

const (
	wheelLines = 3

	headerSelector    = "header"
	prototypeSelector = "prototype"
)

var defaultWidths = map[string]int{
	"name":    28,
	"kind":    12,
	"balance": 14,
}

// Config is the layout of an accounts panel.
type Config struct {
	Scroll  scroll.Config `yaml:"scroll"`
	Columns []nt.Column   `yaml:"columns"`
}

// item is an account as a rendered row.
type item struct {
	acct nt.Account
}

func (it item) ID() string {
	return it.acct.ID
}

// Panel lists accounts, Enter shows the transactions of the selected one.
type Panel struct {
	items  []item
	widths map[string]int

	port   *scroll.Port
	cursor *selection.Cursor

	unregister func()
}

// New creates a panel sized by notifications from sizes.
func (cfg *Config) New(sizes *notify.List[scroll.Size]) Panel {

	widths := map[string]int{}
	for field, width := range defaultWidths {
		widths[field] = width
	}
	for _, col := range cfg.Columns {
		if _, ok := widths[col.Field]; ok && col.Hidden {
			widths[col.Field] = 0
		}
	}
	for _, col := range nt.Visible(cfg.Columns) {
		if _, ok := widths[col.Field]; ok && col.Width > 0 {
			widths[col.Field] = col.Width
		}
	}

	scrollCfg := cfg.Scroll
	port := scroll.NewPort(scrollCfg.New())

	pnl := Panel{
		widths: widths,
		port:   port,
	}
	pnl.cursor = selection.NewList(port.Tracker(), port, 0)

	pnl.unregister = sizes.Register(func(size scroll.Size) {
		port.Resize(size, pnl)
		pnl.cursor.EnsureVisible()
	})
	return pnl
}

func (pnl Panel) Init() tea.Cmd {
	return nil
}

func (pnl Panel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {

	switch msg := msg.(type) {

	case message.AccountsMsg:
		pnl.items = make([]item, len(msg.Accounts))
		for i, acct := range msg.Accounts {
			pnl.items[i] = item{acct: acct}
		}
		pnl.port.SetRowCount(len(pnl.items))
		pnl.cursor.SetCounts(len(pnl.items), 1)
		return pnl, nil

	case tea.KeyPressMsg:
		var cmd tea.Cmd
		pnl, _, cmd = pnl.HandleKey(msg)
		return pnl, cmd

	case tea.MouseClickMsg:
		x, y, ok := keys.Click(msg)
		header := pnl.port.Tracker().HeaderHeight()
		if ok && y >= header {
			pnl.cursor.MouseDown(pnl.frame().ListHitTest(pnl.port.ScrollTop(), header), x, y)
		}
		return pnl, nil

	case tea.MouseWheelMsg:
		pnl.port.ScrollBy(wheelLines * keys.Wheel(msg))
		return pnl, nil
	}

	return pnl, nil
}

// HandleKey moves the cursor, or picks the selected account on enter.
func (pnl Panel) HandleKey(msg tea.KeyPressMsg) (Panel, selection.Result, tea.Cmd) {

	sk := keys.Key(msg)
	if sk.Name == "enter" {
		acct, ok := pnl.Selected()
		if !ok {
			return pnl, selection.Result{}, nil
		}
		res := selection.Result{Handled: true, PreventDefault: true, StopPropagation: true}
		return pnl, res, message.AccountCmd(acct.ID)
	}

	return pnl, pnl.cursor.KeyDown(sk), nil
}

// Selected returns the selected account.
func (pnl Panel) Selected() (acct nt.Account, ok bool) {

	row := pnl.cursor.Cell().Row
	if row < 0 || row >= len(pnl.items) {
		return
	}
	return pnl.items[row].acct, true
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

// Close stops listening for resizes.
func (pnl Panel) Close() {
	pnl.unregister()
}

// Measure returns the rendered height of the header or prototype row.
func (pnl Panel) Measure(selector string) (height int, ok bool) {

	switch selector {
	case headerSelector:
		return lipgloss.Height(pnl.header()), true
	case prototypeSelector:
		return lipgloss.Height(pnl.row(nt.Account{Name: "Prototype"}, viewport.Even, false)), true
	}
	return 0, false
}

func (pnl Panel) View() tea.View {
	return tea.NewView(pnl.Render())
}

// Render renders the header over the accounts in the scrolled band.
func (pnl Panel) Render() string {

	if pnl.port.Size().Height <= 0 {
		return ""
	}

	lines := []string{pnl.header()}
	frm := pnl.frame()
	if !frm.Deferred {
		lines = append(lines, frm.Paint(pnl.port.ScrollTop(), pnl.port.Band())...)
	}
	return strings.Join(lines, "\n")
}

// unexported

func (pnl Panel) frame() viewport.Frame {

	layout := viewport.Layout{
		RowHeight:      pnl.port.Tracker().RowHeight(),
		ViewportHeight: pnl.port.Band(),
	}

	render := func(it item, index int, selected bool) (viewport.Element, bool) {
		return viewport.Element{Content: pnl.row(it.acct, viewport.ParityOf(index), selected)}, true
	}

	// the prototype rides along with no height of its own
	proto := viewport.Element{Key: prototypeSelector}

	return viewport.RenderList(pnl.items, pnl.port.Range(), layout, pnl.cursor.Cell().Row, render, proto)
}

func (pnl Panel) header() string {

	return style.Cell(" Account", pnl.widths["name"], style.HeaderStyle) +
		style.Cell(" Kind", pnl.widths["kind"], style.HeaderStyle) +
		style.CellRight("Balance ", pnl.widths["balance"], style.HeaderStyle)
}

func (pnl Panel) row(acct nt.Account, par viewport.Parity, selected bool) string {

	st := style.RowStyle(par, selected)
	balance := nt.Value{Raw: acct.Balance}.Format("")
	return style.Cell(" "+acct.Name, pnl.widths["name"], st) +
		style.Cell(" "+acct.Kind, pnl.widths["kind"], st) +
		style.CellRight(balance+" ", pnl.widths["balance"], st)
}
