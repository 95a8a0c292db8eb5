package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Account holds the append-only transaction log of one customer.
// Insertion order is chronological order.
type Account struct {
	AccountID    int
	Transactions []Transaction
}

// NewAccount returns an empty account for the given account ID.
func NewAccount(accountID int) *Account {
	return &Account{
		AccountID:    accountID,
		Transactions: []Transaction{},
	}
}

func (a *Account) record(kind Kind, amount decimal.Decimal) {
	a.Transactions = append(a.Transactions, Transaction{
		ID:        len(a.Transactions) + 1,
		Kind:      kind,
		Amount:    amount,
		CreatedAt: time.Now(),
	})
}

// Deposit records a deposit transaction. Non-positive amounts are ignored.
func (a *Account) Deposit(amount decimal.Decimal) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return
	}

	a.record(Deposit, amount)
}

// Withdraw records a withdrawal transaction. The account does not check the
// balance; overdraft protection is the owning Customer's responsibility.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	a.record(Withdrawal, amount)

	return nil
}

// String renders a short account summary.
func (a *Account) String() string {
	return fmt.Sprintf("Account ID: %d, Transactions Count: %d", a.AccountID, len(a.Transactions))
}
