package tally

import (
	"tally/accounts"
	nt "tally/entity"
	"tally/ledger"
	"tally/util"
)

// Layout is the per panel scroll config and columns, with the base view.
type Layout struct {
	Accounts accounts.Config `yaml:"accounts"`
	Ledger   ledger.Config   `yaml:"ledger"`
	Filter   nt.Filter       `yaml:"filter,omitempty"`
	Sorts    []nt.Sort       `yaml:"sorts,omitempty"`
}

func loadLayout(path string) (layout *Layout, err error) {

	layout = &Layout{}
	err = util.LoadConfig(layout, path)
	if err != nil {
		layout = nil
	}
	return
}

// view returns the filter showing an account's transactions within the base filter.
// All accounts are shown when accountID is empty.
func (layout *Layout) view(accountID string) nt.Filter {

	if accountID == "" {
		return layout.Filter
	}

	return nt.Filter{
		Op:       nt.And,
		Children: []nt.Filter{layout.Filter, nt.AccountFilter(accountID)},
	}
}

// SampleLayout is written when no layout file is found.
var SampleLayout = []byte(`# tally layout
accounts:
  scroll:
    row_height: 1
    prototype: prototype
    header: header
  columns:
    - field: name
      width: 28
    - field: kind
      width: 12
    - field: balance
      width: 14
ledger:
  scroll:
    row_height: 1
    prototype: prototype
    header: header
    overscan_factor: 1
  columns:
    - field: date
      width: 12
      format: "2006-01-02"
    - field: payee
      width: 28
    - field: memo
      width: 28
    - field: amount
      width: 12
      format: "%.2f"
sorts:
  - field: date
`)

// SampleConfig is written when no config file is found.
var SampleConfig = []byte(`# tally config
layout: layout.yaml
ledger: test/data/ledger.yaml
log_file: tally.log
`)
