package tally

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nt "tally/entity"
	"tally/message"
)

type fakeStore struct {
	accts  []nt.Account
	txns   []nt.Transaction
	filter nt.Filter
	sorts  []nt.Sort
	err    error
}

func (fs *fakeStore) Name() string {
	return "fake.yaml"
}

func (fs *fakeStore) Load(ctx context.Context, path string) error {
	return fs.err
}

func (fs *fakeStore) SetView(filter nt.Filter, sorts []nt.Sort) error {
	if fs.err != nil {
		return fs.err
	}
	fs.filter = filter
	fs.sorts = sorts
	return nil
}

func (fs *fakeStore) GetView() (int, error) {
	return len(fs.txns), fs.err
}

func (fs *fakeStore) GetPage(offset, size int) ([]nt.Transaction, error) {
	return fs.txns[offset : offset+size], fs.err
}

func (fs *fakeStore) Accounts() ([]nt.Account, error) {
	return fs.accts, fs.err
}

type logged struct {
	msg string
	kv  []any
}

type fakeLogger struct {
	infos  []logged
	errors []error
}

func (fl *fakeLogger) Info(ctx context.Context, msg string, kv ...any) {
	fl.infos = append(fl.infos, logged{msg: msg, kv: kv})
}

func (fl *fakeLogger) Error(ctx context.Context, msg string, err error, kv ...any) {
	fl.errors = append(fl.errors, err)
}

func newStore() *fakeStore {

	date := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	return &fakeStore{
		accts: []nt.Account{
			{ID: "chk", Name: "Checking", Kind: "bank", Balance: 120},
			{ID: "visa", Name: "Visa", Kind: "card", Balance: -40},
		},
		txns: []nt.Transaction{
			{ID: "t1", AccountID: "chk", Date: date, Payee: "Acme", Splits: []nt.Split{{Category: "salary", Amount: 120}}},
			{ID: "t2", AccountID: "visa", Date: date, Payee: "Grocer", Splits: []nt.Split{{Category: "food", Amount: -40}}},
		},
	}
}

func newModel(t *testing.T, store *fakeStore) (Model, *fakeLogger) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, SampleLayout, 0644))

	lgr := &fakeLogger{}
	model, err := NewModel(context.Background(), path, store, lgr)
	require.NoError(t, err)
	t.Cleanup(model.Close)

	return model, lgr
}

// run executes cmd and any batched cmds, returning the messages produced.
func run(cmd tea.Cmd) (msgs []tea.Msg) {

	if cmd == nil {
		return
	}

	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	for _, cmd := range batch {
		msgs = append(msgs, run(cmd)...)
	}
	return
}

// feed updates the model with msg and each message its commands produce.
func feed(model Model, msg tea.Msg) Model {

	mdl, cmd := model.Update(msg)
	model = mdl.(Model)
	for _, msg := range run(cmd) {
		model = feed(model, msg)
	}
	return model
}

func update(model Model, msg tea.Msg) (Model, tea.Cmd) {
	mdl, cmd := model.Update(msg)
	return mdl.(Model), cmd
}

func ctrl(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code, Mod: tea.ModCtrl}
}

func TestNewModel(t *testing.T) {

	store := newStore()
	model, _ := newModel(t, store)

	assert.Equal(t, AccountsScreen, model.CurrentScreen)
	assert.Equal(t, []nt.Sort{{Field: "date"}}, store.sorts)
	assert.Equal(t, "Loading...", model.View().Content)
}

func TestNewModelMissingLayout(t *testing.T) {

	_, err := NewModel(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"), newStore(), &fakeLogger{})
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {

	model, _ := newModel(t, newStore())
	model = feed(model, model.Init()())

	_, total := model.Accounts.Position()
	assert.Equal(t, 2, total)

	// a header row and a split row per transaction
	_, total = model.Ledger.Position()
	assert.Equal(t, 4, total)
}

func TestView(t *testing.T) {

	model, _ := newModel(t, newStore())
	model = feed(model, tea.WindowSizeMsg{Width: 80, Height: 12})
	model = feed(model, message.LoadMsg{})

	view := model.View()
	assert.True(t, view.AltScreen)
	assert.Equal(t, tea.MouseModeCellMotion, view.MouseMode)
	assert.Contains(t, view.Content, "Checking")
	assert.Contains(t, view.Content, "1/2")
	assert.Contains(t, view.Content, "fake.yaml")
	assert.Contains(t, view.Content, "────")

	// panels get the height above the footer
	assert.Len(t, strings.Split(model.Accounts.Render(), "\n"), 12-footerHeight)
}

func TestShowAccount(t *testing.T) {

	store := newStore()
	model, _ := newModel(t, store)
	model = feed(model, tea.WindowSizeMsg{Width: 100, Height: 12})
	model = feed(model, message.LoadMsg{})

	// enter on the first account
	model = feed(model, tea.KeyPressMsg{Code: tea.KeyEnter})

	assert.Equal(t, LedgerScreen, model.CurrentScreen)
	require.Len(t, store.filter.Children, 2)
	assert.Equal(t, nt.AccountFilter("chk"), store.filter.Children[1])
	assert.Contains(t, model.View().Content, "chk fake.yaml")

	model = feed(model, ctrl('x'))
	assert.Equal(t, nt.Filter{}, store.filter)
	assert.Equal(t, "", model.accountID)
}

func TestNextScreen(t *testing.T) {

	model, _ := newModel(t, newStore())

	model, _ = update(model, ctrl('n'))
	assert.Equal(t, LedgerScreen, model.CurrentScreen)

	model, _ = update(model, ctrl('n'))
	assert.Equal(t, AccountsScreen, model.CurrentScreen)
}

func TestEditLogged(t *testing.T) {

	model, lgr := newModel(t, newStore())
	model = feed(model, tea.WindowSizeMsg{Width: 100, Height: 12})
	model = feed(model, message.LoadMsg{})
	model, _ = update(model, ctrl('n'))

	// over to payee, type and commit
	model = feed(model, tea.KeyPressMsg{Code: tea.KeyRight})
	model = feed(model, tea.KeyPressMsg{Code: 'x', Text: "x"})

	// screen keys go to the editor
	model = feed(model, ctrl('n'))
	assert.Equal(t, LedgerScreen, model.CurrentScreen)

	model = feed(model, tea.KeyPressMsg{Code: tea.KeyEnter})

	require.NotEmpty(t, lgr.infos)
	last := lgr.infos[len(lgr.infos)-1]
	assert.Equal(t, "edited", last.msg)
	assert.Equal(t, []any{"transaction_id", "t1", "field", "payee", "value", "x"}, last.kv)
}

func TestError(t *testing.T) {

	model, lgr := newModel(t, newStore())
	model = feed(model, tea.WindowSizeMsg{Width: 80, Height: 12})

	model = feed(model, message.ErrorMsg{Err: errors.New("oops")})
	assert.Contains(t, model.View().Content, "oops")
	assert.Len(t, lgr.errors, 1)

	model = feed(model, tea.KeyPressMsg{Code: tea.KeyDown})
	assert.NotContains(t, model.View().Content, "oops")
}

func TestStoreError(t *testing.T) {

	store := newStore()
	model, _ := newModel(t, store)
	store.err = errors.New("store down")

	msgs := run(model.loadAccounts())
	assert.Equal(t, []tea.Msg{message.ErrorMsg{Err: store.err}}, msgs)
}

func TestReloadLayout(t *testing.T) {

	model, lgr := newModel(t, newStore())

	model = feed(model, ctrl('r'))
	require.NotEmpty(t, lgr.infos)
	assert.Equal(t, "reloaded layout", lgr.infos[len(lgr.infos)-1].msg)

	require.NoError(t, os.Remove(model.layoutPath))
	model = feed(model, ctrl('r'))
	assert.NotEmpty(t, model.errorString)
}

func TestQuit(t *testing.T) {

	model, _ := newModel(t, newStore())

	_, cmd := update(model, ctrl('q'))
	assert.NotNil(t, cmd)
}
