package tally

import (
	"context"
	"fmt"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"tally/accounts"
	nt "tally/entity"
	"tally/keys"
	"tally/ledger"
	"tally/message"
	"tally/notify"
	"tally/scroll"
	"tally/selection"
	"tally/style"
)

const (
	// rule, status and help lines
	footerHeight = 3
)

// Model is the bubbletea model for the ledger TUI.
type Model struct {
	store      Store
	layout     *Layout
	layoutPath string
	logger     nt.Logger
	ctx        context.Context

	keys keys.Map
	help help.Model

	// sizes is told of the space left to the panels on each window resize
	sizes *notify.List[scroll.Size]

	CurrentScreen Screen
	Accounts      accounts.Panel
	Ledger        ledger.Panel

	accountID   string
	errorString string

	Width  int
	Height int
}

// NewModel creates a new bt model.
func NewModel(ctx context.Context, layoutPath string, store Store, lgr nt.Logger) (model Model, err error) {

	layout, err := loadLayout(layoutPath)
	if err != nil {
		return
	}

	err = store.SetView(layout.Filter, layout.Sorts)
	if err != nil {
		return
	}

	sizes := &notify.List[scroll.Size]{}

	model = Model{
		store:         store,
		layout:        layout,
		layoutPath:    layoutPath,
		logger:        lgr,
		ctx:           ctx,
		keys:          keys.DefaultMap(),
		help:          help.New(),
		sizes:         sizes,
		CurrentScreen: AccountsScreen,
		Accounts:      layout.Accounts.New(sizes),
		Ledger:        layout.Ledger.New(sizes),
	}
	return
}

func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return message.LoadMsg{} }
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {

	switch msg := msg.(type) {

	case message.LoadMsg:
		return m, tea.Batch(m.loadAccounts(), m.loadTransactions())

	case message.AccountsMsg:
		return m.updateAccounts(msg)

	case message.TransactionsMsg:
		return m.updateLedger(msg)

	case message.AccountMsg:
		return m.showAccount(msg.AccountID)

	case message.EditMsg:
		m.logger.Info(m.ctx, "edited", "transaction_id", msg.TransactionID, "field", msg.Field, "value", msg.Value)
		return m, nil

	case message.LayoutMsg:
		m.logger.Info(m.ctx, "reloaded layout", "path", m.layoutPath)
		return m, nil

	case message.ErrorMsg:
		m.logger.Error(m.ctx, "error msg", msg.Err)
		m.errorString = msg.Err.Error()
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

		m.sizes.Notify(scroll.Size{
			Width:  msg.Width,
			Height: max(msg.Height-footerHeight, 0),
		})
		return m, nil

	case tea.MouseClickMsg, tea.MouseWheelMsg:
		if m.CurrentScreen == LedgerScreen {
			return m.updateLedger(msg)
		}
		return m.updateAccounts(msg)
	}

	return m, nil
}

func (m Model) View() tea.View {

	if m.Width == 0 {
		return tea.NewView("Loading...")
	}

	var content string
	var row, total int
	switch m.CurrentScreen {
	case LedgerScreen:
		content = m.Ledger.Render()
		row, total = m.Ledger.Position()
	default:
		content = m.Accounts.Render()
		row, total = m.Accounts.Position()
	}

	height := max(m.Height-footerHeight, 0)
	content = lipgloss.NewStyle().Height(height).MaxHeight(height).Render(content)

	status := RenderFooter(fmt.Sprintf("%d/%d", row, total), m.source(), m.Width)
	if m.errorString != "" {
		status = style.ErrorStyle.Render(m.errorString)
	}

	footer := []string{style.Rule(m.Width), status, m.help.ShortHelpView(m.keys.ShortHelp())}
	view := tea.NewView(lipgloss.JoinVertical(lipgloss.Left, append([]string{content}, footer...)...))
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion
	return view
}

// Close stops the panels listening for resizes.
func (m Model) Close() {
	m.Accounts.Close()
	m.Ledger.Close()
}

// unexported

// handleKey offers a key to the current panel, falling back to the app bindings.
func (m Model) handleKey(msg tea.KeyPressMsg) (Model, tea.Cmd) {

	m.errorString = ""

	if key.Matches(msg, m.keys.Quit) {
		var cmd tea.Cmd
		m.Ledger, cmd = m.Ledger.Blur()
		return m, tea.Sequence(cmd, tea.Quit)
	}

	var cmd tea.Cmd
	var res selection.Result
	switch m.CurrentScreen {
	case LedgerScreen:
		m.Ledger, res, cmd = m.Ledger.HandleKey(msg)
	default:
		m.Accounts, res, cmd = m.Accounts.HandleKey(msg)
	}
	if res.StopPropagation {
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.NextScreen):
		var blur tea.Cmd
		if m.CurrentScreen == LedgerScreen {
			m.Ledger, blur = m.Ledger.Blur()
		}
		m.CurrentScreen = m.CurrentScreen.next()
		return m, tea.Batch(cmd, blur)

	case key.Matches(msg, m.keys.Reload):
		var reload tea.Cmd
		m, reload = m.reloadLayout()
		return m, tea.Batch(cmd, reload)

	case key.Matches(msg, m.keys.ClearFilter):
		return m, tea.Batch(cmd, message.AccountCmd(""))
	}

	return m, cmd
}

func (m Model) updateAccounts(msg tea.Msg) (Model, tea.Cmd) {

	mdl, cmd := m.Accounts.Update(msg)
	m.Accounts = mdl.(accounts.Panel)
	return m, cmd
}

func (m Model) updateLedger(msg tea.Msg) (Model, tea.Cmd) {

	mdl, cmd := m.Ledger.Update(msg)
	m.Ledger = mdl.(ledger.Panel)
	return m, cmd
}

// source names the store and the account shown, if any.
func (m Model) source() string {

	if m.accountID == "" {
		return m.store.Name()
	}
	return fmt.Sprintf("%s %s", m.accountID, m.store.Name())
}
