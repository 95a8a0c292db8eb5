package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount indicates a non-positive deposit or withdrawal amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInsufficientBalance indicates that the withdrawal exceeds the balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrCustomerNotFound indicates that the customer is not found.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrDuplicateName indicates that a customer with the given name already exists.
	ErrDuplicateName = errors.New("customer name already exists")
	// ErrInvalidName indicates an empty customer name.
	ErrInvalidName = errors.New("invalid customer name")
	// ErrInvalidAge indicates a negative customer age.
	ErrInvalidAge = errors.New("invalid customer age")
)

// Customer holds the identity, the balance and the account of one customer.
type Customer struct {
	Name      string
	Age       int
	AccountID int
	Balance   decimal.Decimal
	Account   *Account
}

// NewCustomer returns a customer with a zero balance and an empty account.
func NewCustomer(name string, age, accountID int) *Customer {
	return &Customer{
		Name:      name,
		Age:       age,
		AccountID: accountID,
		Balance:   decimal.Zero,
		Account:   NewAccount(accountID),
	}
}

// DepositMoney increases the balance and records a deposit transaction.
func (c *Customer) DepositMoney(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	c.Balance = c.Balance.Add(amount)
	c.Account.Deposit(amount)

	return nil
}

// WithdrawMoney decreases the balance and records a withdrawal transaction.
// The balance check happens here, not in Account.
func (c *Customer) WithdrawMoney(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if amount.GreaterThan(c.Balance) {
		return ErrInsufficientBalance
	}

	c.Balance = c.Balance.Sub(amount)

	return c.Account.Withdraw(amount)
}

// GetBalance returns the current balance.
func (c *Customer) GetBalance() decimal.Decimal {
	return c.Balance
}

// String renders a one line customer summary for listings.
func (c *Customer) String() string {
	return fmt.Sprintf("Name: %s, Age: %d, Account ID: %d, Balance: %s",
		c.Name, c.Age, c.AccountID, c.Balance)
}
