package duck

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/marcboeker/go-duckdb"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	nt "tally/entity"
)

// Duck is an in-memory ledger store.
type Duck struct {
	db       *sql.DB
	logger   nt.Logger
	where    string
	order    string
	filename string
}

// ledgerFile is the layout of a ledger yaml file.
type ledgerFile struct {
	Accounts     []nt.Account     `yaml:"accounts"`
	Transactions []nt.Transaction `yaml:"transactions"`
}

var (
	// fields maps view field names to sql expressions
	fields = map[string]string{
		"id":      "t.id",
		"account": "t.account",
		"date":    "t.date",
		"payee":   "t.payee",
		"memo":    "t.memo",
		"amount":  "(SELECT COALESCE(SUM(s.amount), 0.0) FROM splits s WHERE s.transaction_id = t.id)",
	}
	defaultOrder = "ORDER BY t.date, t.id"
)

func New(lgr nt.Logger) (dk *Duck, err error) {

	db, err := sql.Open("duckdb", "")
	if err != nil {
		err = errors.Wrapf(err, "failed to open memo duck")
		return
	}

	dk = &Duck{
		db:     db,
		logger: lgr,
		order:  defaultOrder,
	}

	return
}

func (dk *Duck) Close() {
	dk.db.Close()
}

// Name returns the name of the loaded file
func (dk *Duck) Name() string {
	return dk.filename
}

// Load a ledger file, replacing anything loaded before
func (dk *Duck) Load(ctx context.Context, path string) (err error) {

	data, err := os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read ledger from %s", path)
		return
	}

	var ledger ledgerFile
	err = yaml.Unmarshal(data, &ledger)
	if err != nil {
		err = errors.Wrapf(err, "failed to unmarshal ledger from %s", path)
		return
	}

	err = dk.insert(ledger)
	if err != nil {
		return
	}

	dk.filename = path
	dk.logger.Info(ctx, "loaded ledger", "path", path, "accounts", len(ledger.Accounts), "transactions", len(ledger.Transactions))
	return
}

// SetView Filter and Sort(s)
func (dk *Duck) SetView(filter nt.Filter, sorts []nt.Sort) (err error) {

	expr, err := buildFilterExpr(filter)
	if err != nil {
		return
	}

	order, err := buildOrder(sorts)
	if err != nil {
		return
	}

	dk.where = ""
	if expr != "" {
		dk.where = "WHERE " + expr
	}
	dk.order = order

	return
}

// GetView count of transactions
func (dk *Duck) GetView() (count int, err error) {

	query := fmt.Sprintf("SELECT COUNT(*) FROM transactions t %s", dk.where)
	err = dk.db.QueryRow(query).Scan(&count)
	err = errors.Wrapf(err, "failed to count transactions")
	return
}

// GetPage of transactions with their splits
func (dk *Duck) GetPage(offset, size int) (txns []nt.Transaction, err error) {

	page := fmt.Sprintf(
		"SELECT t.id, t.account, t.date, t.payee, t.memo FROM transactions t %s %s LIMIT %d OFFSET %d",
		dk.where, dk.order, max(size, 0), max(offset, 0))

	rows, err := dk.db.Query(page)
	if err != nil {
		err = errors.Wrapf(err, "failed to query transactions")
		return
	}
	defer rows.Close()

	txns = []nt.Transaction{}
	index := map[string]int{}
	for rows.Next() {
		var tx nt.Transaction
		err = rows.Scan(&tx.ID, &tx.AccountID, &tx.Date, &tx.Payee, &tx.Memo)
		if err != nil {
			err = errors.Wrapf(err, "failed to scan transaction")
			return
		}
		index[tx.ID] = len(txns)
		txns = append(txns, tx)
	}
	err = rows.Err()
	if err != nil {
		err = errors.Wrapf(err, "error iterating transactions")
		return
	}

	err = dk.attachSplits(page, txns, index)
	return
}

// Accounts with balances, by name
func (dk *Duck) Accounts() (accts []nt.Account, err error) {

	rows, err := dk.db.Query(`
		SELECT a.id, a.name, a.kind, COALESCE(SUM(s.amount), 0.0)
		FROM accounts a
		LEFT JOIN transactions t ON t.account = a.id
		LEFT JOIN splits s ON s.transaction_id = t.id
		GROUP BY a.id, a.name, a.kind
		ORDER BY a.name, a.id
	`)
	if err != nil {
		err = errors.Wrapf(err, "failed to query accounts")
		return
	}
	defer rows.Close()

	accts = []nt.Account{}
	for rows.Next() {
		var acct nt.Account
		err = rows.Scan(&acct.ID, &acct.Name, &acct.Kind, &acct.Balance)
		if err != nil {
			err = errors.Wrapf(err, "failed to scan account")
			return
		}
		accts = append(accts, acct)
	}

	err = rows.Err()
	err = errors.Wrapf(err, "error iterating accounts")
	return
}

// unexported

func (dk *Duck) attachSplits(page string, txns []nt.Transaction, index map[string]int) (err error) {

	if len(txns) == 0 {
		return
	}

	query := fmt.Sprintf(`
		SELECT transaction_id, category, memo, amount
		FROM splits
		WHERE transaction_id IN (SELECT id FROM (%s))
		ORDER BY transaction_id, idx
	`, page)

	rows, err := dk.db.Query(query)
	if err != nil {
		err = errors.Wrapf(err, "failed to query splits")
		return
	}
	defer rows.Close()

	for rows.Next() {
		var txID string
		var split nt.Split
		err = rows.Scan(&txID, &split.Category, &split.Memo, &split.Amount)
		if err != nil {
			err = errors.Wrapf(err, "failed to scan split")
			return
		}

		idx, ok := index[txID]
		if !ok {
			continue
		}
		txns[idx].Splits = append(txns[idx].Splits, split)
	}

	err = rows.Err()
	err = errors.Wrapf(err, "error iterating splits")
	return
}

func (dk *Duck) insert(ledger ledgerFile) (err error) {

	for _, stmt := range []string{
		"CREATE OR REPLACE TABLE accounts (id VARCHAR PRIMARY KEY, name VARCHAR, kind VARCHAR)",
		"CREATE OR REPLACE TABLE transactions (id VARCHAR PRIMARY KEY, account VARCHAR, date DATE, payee VARCHAR, memo VARCHAR)",
		"CREATE OR REPLACE TABLE splits (transaction_id VARCHAR, idx INTEGER, category VARCHAR, memo VARCHAR, amount DOUBLE)",
	} {
		_, err = dk.db.Exec(stmt)
		if err != nil {
			err = errors.Wrapf(err, "failed to create table")
			return
		}
	}

	tx, err := dk.db.Begin()
	if err != nil {
		err = errors.Wrapf(err, "failed to begin load")
		return
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	for _, acct := range ledger.Accounts {
		_, err = tx.Exec("INSERT INTO accounts VALUES (?, ?, ?)", acct.ID, acct.Name, acct.Kind)
		if err != nil {
			err = errors.Wrapf(err, "failed to insert account %s", acct.ID)
			return
		}
	}

	for _, txn := range ledger.Transactions {
		id := txn.ID
		if id == "" {
			id = uuid.NewString()
		}

		_, err = tx.Exec("INSERT INTO transactions VALUES (?, ?, ?, ?, ?)",
			id, txn.AccountID, txn.Date, txn.Payee, txn.Memo)
		if err != nil {
			err = errors.Wrapf(err, "failed to insert transaction %s", id)
			return
		}

		for idx, split := range txn.Splits {
			_, err = tx.Exec("INSERT INTO splits VALUES (?, ?, ?, ?, ?)",
				id, idx, split.Category, split.Memo, split.Amount)
			if err != nil {
				err = errors.Wrapf(err, "failed to insert split %d of %s", idx, id)
				return
			}
		}
	}

	err = tx.Commit()
	err = errors.Wrapf(err, "failed to commit load")
	return
}

// buildFilterExpr recursively builds filter expression (without WHERE prefix)
func buildFilterExpr(flt nt.Filter) (expr string, err error) {

	switch flt.Op {
	case nt.And, nt.Or:
		return joinFilterExprs(flt)
	case nt.Not:
		if len(flt.Children) == 0 {
			return
		}
		expr, err = buildFilterExpr(flt.Children[0])
		if err != nil || expr == "" {
			return
		}
		expr = "NOT (" + expr + ")"
		return
	}

	if !flt.Enabled {
		return
	}

	field, ok := fields[flt.Field]
	if !ok {
		err = errors.Errorf("cannot filter on unknown field: %s", flt.Field)
		return
	}
	value := literal(flt.Value)

	switch flt.Op {
	case nt.Eq:
		expr = fmt.Sprintf("%s = %s", field, value)
	case nt.Ne:
		expr = fmt.Sprintf("%s != %s", field, value)
	case nt.Gt:
		expr = fmt.Sprintf("%s > %s", field, value)
	case nt.Gte:
		expr = fmt.Sprintf("%s >= %s", field, value)
	case nt.Lt:
		expr = fmt.Sprintf("%s < %s", field, value)
	case nt.Lte:
		expr = fmt.Sprintf("%s <= %s", field, value)
	case nt.Contains:
		expr = fmt.Sprintf("%s ILIKE %s", field, quote("%"+fmt.Sprintf("%v", flt.Value)+"%"))
	case nt.Match:
		expr = fmt.Sprintf("regexp_matches(%s, %s)", field, quote(fmt.Sprintf("%v", flt.Value)))
	default:
		err = errors.Errorf("unknown filter op: %d", flt.Op)
	}
	return
}

func joinFilterExprs(flt nt.Filter) (expr string, err error) {

	var clauses []string
	for _, child := range flt.Children {
		var clause string
		clause, err = buildFilterExpr(child)
		if err != nil {
			return
		}
		if clause != "" {
			clauses = append(clauses, clause)
		}
	}
	if len(clauses) == 0 {
		return
	}

	join := " AND "
	if flt.Op == nt.Or {
		join = " OR "
	}
	expr = "(" + strings.Join(clauses, join) + ")"
	return
}

func buildOrder(sorts []nt.Sort) (order string, err error) {

	if len(sorts) == 0 {
		order = defaultOrder
		return
	}

	terms := []string{}
	for _, srt := range sorts {
		field, ok := fields[srt.Field]
		if !ok {
			err = errors.Errorf("cannot sort on unknown field: %s", srt.Field)
			return
		}
		if srt.Desc {
			field += " DESC"
		}
		terms = append(terms, field)
	}

	// id breaks ties so pages are stable
	order = "ORDER BY " + strings.Join(terms, ", ") + ", t.id"
	return
}

// literal renders a filter value as a sql literal.
func literal(val any) string {

	switch v := val.(type) {
	case nil:
		return "NULL"
	case int, int64, float64:
		return fmt.Sprintf("%v", v)
	case bool:
		return fmt.Sprintf("%t", v)
	case time.Time:
		return quote(v.Format("2006-01-02"))
	}
	return quote(fmt.Sprintf("%v", val))
}

func quote(str string) string {
	return "'" + strings.ReplaceAll(str, "'", "''") + "'"
}
