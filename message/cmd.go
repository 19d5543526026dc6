package message

import (
	tea "charm.land/bubbletea/v2"
)

// ErrorCmd returns a command reporting err
func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Err: err}
	}
}

// AccountCmd returns a command to show the transactions of an account
func AccountCmd(accountID string) tea.Cmd {
	return func() tea.Msg {
		return AccountMsg{AccountID: accountID}
	}
}

// EditCmd returns a command reporting an edit
func EditCmd(transactionID, field, value string) tea.Cmd {
	return func() tea.Msg {
		return EditMsg{
			TransactionID: transactionID,
			Field:         field,
			Value:         value,
		}
	}
}
