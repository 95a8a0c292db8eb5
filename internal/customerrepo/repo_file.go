// Package customerrepo manages repository layer of customers.
//
// Each customer is persisted to its own plain text file named after the
// account ID. The file starts with the identity header followed by one line
// per transaction:
//
//	Name: Alice
//	Age: 30
//	AccountID: 100
//	Balance: 300
//	Transactions:
//	Transaction ID: 1, Type: Deposit, Amount: 500, Date: 2023-04-01T10:00:00Z
package customerrepo

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-petr/bank-ledger/internal/domain"
	"github.com/go-petr/bank-ledger/pkg/errorspkg"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const transactionsMarker = "Transactions:"

// RepoFile facilitates customer repository layer logic over per-account files.
type RepoFile struct {
	dir string
}

// NewRepoFile returns customer RepoFile rooted at the given data directory.
func NewRepoFile(dir string) *RepoFile {
	return &RepoFile{dir: dir}
}

func (r *RepoFile) path(accountID int) string {
	return filepath.Join(r.dir, fmt.Sprintf("%d.txt", accountID))
}

// Save merges the previously persisted transactions with the customer's
// current in-memory transactions and rewrites the customer file. Persisted
// transactions are renumbered sequentially at write time, so repeated saves
// never produce duplicate IDs on disk. The in-memory customer is not touched.
func (r *RepoFile) Save(ctx context.Context, c *domain.Customer) error {
	l := zerolog.Ctx(ctx)

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	path := r.path(c.AccountID)

	previous, err := readTransactions(path)
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	merged := make([]domain.Transaction, 0, len(previous)+len(c.Account.Transactions))
	merged = append(merged, previous...)
	merged = append(merged, c.Account.Transactions...)

	f, err := os.Create(path)
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	fmt.Fprintf(w, "Name: %s\n", c.Name)
	fmt.Fprintf(w, "Age: %d\n", c.Age)
	fmt.Fprintf(w, "AccountID: %d\n", c.AccountID)
	fmt.Fprintf(w, "Balance: %s\n", c.Balance)
	fmt.Fprintln(w, transactionsMarker)

	for i, t := range merged {
		t.ID = i + 1
		fmt.Fprintln(w, t)
	}

	if err := w.Flush(); err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	return nil
}

// Load parses a persisted customer file back into a customer.
func (r *RepoFile) Load(ctx context.Context, accountID int) (*domain.Customer, error) {
	l := zerolog.Ctx(ctx)

	f, err := os.Open(r.path(accountID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrCustomerNotFound
		}

		l.Error().Err(err).Send()

		return nil, errorspkg.ErrInternal
	}
	defer f.Close()

	c := &domain.Customer{
		Balance: decimal.Zero,
		Account: domain.NewAccount(accountID),
	}

	inTransactions := false
	scanner := bufio.NewScanner(f)

	for scanner.Scan() {
		line := scanner.Text()

		if inTransactions {
			if t, ok := parseTransactionLine(line); ok {
				c.Account.Transactions = append(c.Account.Transactions, t)
			}

			continue
		}

		switch {
		case line == transactionsMarker:
			inTransactions = true
		case strings.HasPrefix(line, "Name: "):
			c.Name = strings.TrimPrefix(line, "Name: ")
		case strings.HasPrefix(line, "Age: "):
			c.Age, err = strconv.Atoi(strings.TrimPrefix(line, "Age: "))
		case strings.HasPrefix(line, "AccountID: "):
			c.AccountID, err = strconv.Atoi(strings.TrimPrefix(line, "AccountID: "))
		case strings.HasPrefix(line, "Balance: "):
			c.Balance, err = decimal.NewFromString(strings.TrimPrefix(line, "Balance: "))
		}

		if err != nil {
			l.Error().Err(err).Str("line", line).Send()
			return nil, errorspkg.ErrInternal
		}
	}

	if err := scanner.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	c.Account.AccountID = c.AccountID

	return c, nil
}

// LoadAll parses every customer file found in the data directory.
// Files that fail to parse are skipped with a warning.
func (r *RepoFile) LoadAll(ctx context.Context) ([]*domain.Customer, error) {
	l := zerolog.Ctx(ctx)

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		l.Error().Err(err).Send()

		return nil, errorspkg.ErrInternal
	}

	customers := []*domain.Customer{}

	for _, e := range entries {
		if !strings.HasSuffix(e.Name(), ".txt") {
			continue
		}

		accountID, err := strconv.Atoi(strings.TrimSuffix(e.Name(), ".txt"))
		if err != nil {
			continue
		}

		c, err := r.Load(ctx, accountID)
		if err != nil {
			l.Warn().Err(err).Str("file", e.Name()).Msg("skipping customer file")
			continue
		}

		customers = append(customers, c)
	}

	return customers, nil
}

// readTransactions collects the previously persisted transactions.
// A missing file means no previous transactions.
func readTransactions(path string) ([]domain.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, err
	}
	defer f.Close()

	var transactions []domain.Transaction

	inTransactions := false
	scanner := bufio.NewScanner(f)

	for scanner.Scan() {
		line := scanner.Text()

		if !inTransactions {
			inTransactions = line == transactionsMarker
			continue
		}

		if t, ok := parseTransactionLine(line); ok {
			transactions = append(transactions, t)
		}
	}

	return transactions, scanner.Err()
}

// parseTransactionLine parses one persisted transaction line. Lines that do
// not match the expected shape are reported as not ok and ignored by callers.
func parseTransactionLine(line string) (domain.Transaction, bool) {
	var t domain.Transaction

	if !strings.HasPrefix(line, "Transaction ID:") {
		return t, false
	}

	parts := strings.Split(line, ",")
	if len(parts) != 4 {
		return t, false
	}

	values := make([]string, 4)

	for i, part := range parts {
		labelled := strings.SplitN(part, ":", 2)
		if len(labelled) != 2 {
			return t, false
		}

		values[i] = strings.TrimSpace(labelled[1])
	}

	id, err := strconv.Atoi(values[0])
	if err != nil {
		return t, false
	}

	kind, err := domain.ParseKind(values[1])
	if err != nil {
		return t, false
	}

	amount, err := decimal.NewFromString(values[2])
	if err != nil {
		return t, false
	}

	createdAt, err := time.Parse(time.RFC3339, values[3])
	if err != nil {
		return t, false
	}

	t.ID = id
	t.Kind = kind
	t.Amount = amount
	t.CreatedAt = createdAt

	return t, true
}
