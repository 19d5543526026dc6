// Package tally is a terminal ledger of accounts, transactions and their splits.
package tally

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/pkg/errors"

	nt "tally/entity"
)

// Store specifies a backing datastore.
type Store interface {
	// Name returns the name of the data source
	Name() string
	// Load a ledger file
	Load(ctx context.Context, path string) (err error)
	// SetView Filter and Sort(s)
	SetView(filter nt.Filter, sorts []nt.Sort) (err error)
	// GetView count of transactions
	GetView() (count int, err error)
	// GetPage of transactions with their splits
	GetPage(offset, size int) (txns []nt.Transaction, err error)
	// Accounts with balances
	Accounts() (accts []nt.Account, err error)
}

// Config is the application config.
type Config struct {
	Layout  string `yaml:"layout"`
	Ledger  string `yaml:"ledger"`
	LogFile string `yaml:"log_file"`
}

// Tally runs the terminal ui over a store.
type Tally struct {
	cfg    Config
	store  Store
	logger nt.Logger
}

func (cfg *Config) New(store Store, lgr nt.Logger) *Tally {

	return &Tally{
		cfg:    *cfg,
		store:  store,
		logger: lgr,
	}
}

// Run loads the ledger and runs the ui until quit.
func (tly *Tally) Run(ctx context.Context) (err error) {

	err = tly.store.Load(ctx, tly.cfg.Ledger)
	if err != nil {
		return
	}

	model, err := NewModel(ctx, tly.cfg.Layout, tly.store, tly.logger)
	if err != nil {
		return
	}

	final, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
	if err != nil {
		err = errors.Wrapf(err, "failed to run")
	}

	done, ok := final.(Model)
	if ok {
		done.Close()
	}
	return
}
