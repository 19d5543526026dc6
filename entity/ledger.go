package entity

import (
	"time"
)

// Account is a ledger account.
type Account struct {
	ID      string  `yaml:"id"`
	Name    string  `yaml:"name"`
	Kind    string  `yaml:"kind"`
	Balance float64 `yaml:"-"`
}

// Split is one line item of a transaction.
type Split struct {
	Category string  `yaml:"category"`
	Memo     string  `yaml:"memo,omitempty"`
	Amount   float64 `yaml:"amount"`
}

// Transaction is a dated movement of money in an account, broken into splits.
type Transaction struct {
	ID        string    `yaml:"id"`
	AccountID string    `yaml:"account"`
	Date      time.Time `yaml:"date"`
	Payee     string    `yaml:"payee"`
	Memo      string    `yaml:"memo,omitempty"`
	Splits    []Split   `yaml:"splits"`
}

// Amount returns the sum of the splits.
func (tx Transaction) Amount() (amount float64) {

	for _, split := range tx.Splits {
		amount += split.Amount
	}
	return
}

// Value returns a field of the transaction by name.
func (tx Transaction) Value(field string) Value {

	switch field {
	case "id":
		return Value{Raw: tx.ID}
	case "account":
		return Value{Raw: tx.AccountID}
	case "date":
		return Value{Raw: tx.Date}
	case "payee":
		return Value{Raw: tx.Payee}
	case "memo":
		return Value{Raw: tx.Memo}
	case "amount":
		return Value{Raw: tx.Amount()}
	}
	return Value{}
}

// Value returns a field of the split by name.
func (split Split) Value(field string) Value {

	switch field {
	case "category":
		return Value{Raw: split.Category}
	case "memo":
		return Value{Raw: split.Memo}
	case "amount":
		return Value{Raw: split.Amount}
	}
	return Value{}
}
