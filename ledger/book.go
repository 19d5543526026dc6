package ledger

import (
	"fmt"

	nt "tally/entity"
	"tally/message"
	"tally/selection"
	"tally/viewport"
)

// entry is a transaction as a rendered group.
type entry struct {
	tx *nt.Transaction
}

func (ent entry) ID() string {
	return ent.tx.ID
}

// book holds the transactions shown and the edits made to them.
type book struct {
	txns    []nt.Transaction
	entries []entry
	index   viewport.GroupIndex
	edits   []message.EditMsg
}

func newBook(txns []nt.Transaction) *book {

	bk := &book{
		txns:    txns,
		entries: make([]entry, len(txns)),
	}

	counts := make([]int, len(txns))
	for i := range txns {
		bk.entries[i] = entry{tx: &bk.txns[i]}
		counts[i] = len(txns[i].Splits)
	}
	bk.index = viewport.NewGroupIndex(counts)

	return bk
}

// locate returns the transaction of a row and its split, -1 for the transaction row.
func (bk *book) locate(row int) (tx *nt.Transaction, split int, ok bool) {

	if row < 0 || row >= bk.index.RowCount() {
		return
	}

	group, offset := bk.index.Locate(row)
	tx = bk.entries[group].tx
	split = offset - 1
	ok = true
	return
}

// editor returns the editor of a cell, nil for read-only cells.
func (bk *book) editor(cell selection.Cell) *selection.Editor {

	_, split, ok := bk.locate(cell.Row)
	if !ok {
		return nil
	}

	fld, ok := fieldAt(split >= 0, cell.Column)
	if !ok {
		return nil
	}

	return &selection.Editor{
		GetValue: func(row int) string {
			tx, split, ok := bk.locate(row)
			if !ok {
				return ""
			}
			return fld.get(tx, split)
		},
		SetValue: func(row int, value string) {
			tx, split, ok := bk.locate(row)
			if !ok || fld.get(tx, split) == value {
				return
			}
			fld.set(tx, split, value)
			bk.edits = append(bk.edits, message.EditMsg{
				TransactionID: tx.ID,
				Field:         fld.name(split),
				Value:         value,
			})
		},
	}
}

// drain returns and forgets the edits made so far.
func (bk *book) drain() (edits []message.EditMsg) {

	edits = bk.edits
	bk.edits = nil
	return
}

// field is an editable text field of a transaction or split.
type field struct {
	name func(split int) string
	get  func(tx *nt.Transaction, split int) string
	set  func(tx *nt.Transaction, split int, value string)
}

var (
	payeeField = field{
		name: func(int) string { return "payee" },
		get:  func(tx *nt.Transaction, _ int) string { return tx.Payee },
		set:  func(tx *nt.Transaction, _ int, value string) { tx.Payee = value },
	}
	memoField = field{
		name: func(int) string { return "memo" },
		get:  func(tx *nt.Transaction, _ int) string { return tx.Memo },
		set:  func(tx *nt.Transaction, _ int, value string) { tx.Memo = value },
	}
	categoryField = field{
		name: func(split int) string { return fmt.Sprintf("splits.%d.category", split) },
		get:  func(tx *nt.Transaction, split int) string { return tx.Splits[split].Category },
		set:  func(tx *nt.Transaction, split int, value string) { tx.Splits[split].Category = value },
	}
	splitMemoField = field{
		name: func(split int) string { return fmt.Sprintf("splits.%d.memo", split) },
		get:  func(tx *nt.Transaction, split int) string { return tx.Splits[split].Memo },
		set:  func(tx *nt.Transaction, split int, value string) { tx.Splits[split].Memo = value },
	}
)

// fieldAt returns the field edited in a column of a transaction or split row.
// Dates and amounts are read-only.
func fieldAt(detail bool, column int) (fld field, ok bool) {

	switch {
	case !detail && column == 1:
		return payeeField, true
	case !detail && column == 2:
		return memoField, true
	case detail && (column == 0 || column == 1):
		return categoryField, true
	case detail && column == 2:
		return splitMemoField, true
	}
	return
}
