// Package domain provides defenitions of all entities.
package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrUnknownKind indicates that the transaction kind is neither a deposit nor a withdrawal.
var ErrUnknownKind = errors.New("unknown transaction kind")

// Kind is the direction of a balance movement.
type Kind string

const (
	// Deposit increases the balance.
	Deposit Kind = "Deposit"
	// Withdrawal decreases the balance.
	Withdrawal Kind = "Withdrawal"
)

// ParseKind converts a textual transaction kind to a Kind, ignoring case.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "deposit":
		return Deposit, nil
	case "withdrawal":
		return Withdrawal, nil
	}

	return "", ErrUnknownKind
}

// Transaction holds one balance movement of an account.
// It is immutable after creation.
type Transaction struct {
	ID        int // sequence number within the owning account
	Kind      Kind
	Amount    decimal.Decimal // always positive
	CreatedAt time.Time
}

// String renders the transaction in its persisted form. The persistence codec
// writes and parses this exact shape, so the two must not drift apart.
func (t Transaction) String() string {
	return fmt.Sprintf("Transaction ID: %d, Type: %s, Amount: %s, Date: %s",
		t.ID, t.Kind, t.Amount, t.CreatedAt.Format(time.RFC3339))
}

// FilterByMonth returns the transactions created within the given year and month.
func FilterByMonth(transactions []Transaction, year int, month time.Month) []Transaction {
	filtered := []Transaction{}

	for _, t := range transactions {
		if t.CreatedAt.Year() == year && t.CreatedAt.Month() == month {
			filtered = append(filtered, t)
		}
	}

	return filtered
}

// FilterByKind returns the transactions of the given kind.
func FilterByKind(transactions []Transaction, kind Kind) []Transaction {
	filtered := []Transaction{}

	for _, t := range transactions {
		if t.Kind == kind {
			filtered = append(filtered, t)
		}
	}

	return filtered
}
