package tally

import (
	tea "charm.land/bubbletea/v2"

	"tally/message"
)

// loadAccounts gets accounts with balances from the store
func (m Model) loadAccounts() tea.Cmd {

	return func() tea.Msg {

		accts, err := m.store.Accounts()
		if err != nil {
			return message.ErrorMsg{Err: err}
		}
		return message.AccountsMsg{Accounts: accts}
	}
}

// loadTransactions gets all transactions in view from the store
func (m Model) loadTransactions() tea.Cmd {

	return func() tea.Msg {

		count, err := m.store.GetView()
		if err != nil {
			return message.ErrorMsg{Err: err}
		}

		txns, err := m.store.GetPage(0, count)
		if err != nil {
			return message.ErrorMsg{Err: err}
		}
		return message.TransactionsMsg{Transactions: txns}
	}
}

// showAccount sets the view to an account's transactions and loads them
func (m Model) showAccount(accountID string) (Model, tea.Cmd) {

	err := m.store.SetView(m.layout.view(accountID), m.layout.Sorts)
	if err != nil {
		return m, message.ErrorCmd(err)
	}

	m.accountID = accountID
	m.CurrentScreen = LedgerScreen
	return m, m.loadTransactions()
}

// reloadLayout loads layout from file and applies columns and view
func (m Model) reloadLayout() (Model, tea.Cmd) {

	layout, err := loadLayout(m.layoutPath)
	if err != nil {
		return m, message.ErrorCmd(err)
	}

	m.layout = layout
	m.Ledger.SetColumns(layout.Ledger.Columns)

	err = m.store.SetView(layout.view(m.accountID), layout.Sorts)
	if err != nil {
		return m, message.ErrorCmd(err)
	}

	return m, tea.Batch(m.loadTransactions(), func() tea.Msg { return message.LayoutMsg{} })
}
