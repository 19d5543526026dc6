package message

import (
	nt "tally/entity"
)

// ErrorMsg contains an error
type ErrorMsg struct {
	Err error
}

// LoadMsg signals to load accounts and transactions from the store
type LoadMsg struct{}

// AccountsMsg contains accounts with their balances
type AccountsMsg struct {
	Accounts []nt.Account
}

// TransactionsMsg contains the transactions in view
type TransactionsMsg struct {
	Transactions []nt.Transaction
}

// AccountMsg signals to show the transactions of an account, all accounts when empty
type AccountMsg struct {
	AccountID string
}

// EditMsg reports a value edited in place
type EditMsg struct {
	TransactionID string
	Field         string
	Value         string
}

// LayoutMsg signals the layout was reloaded
type LayoutMsg struct{}
