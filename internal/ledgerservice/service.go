// Package ledgerservice manages business logic layer of the ledger.
//
// The service keeps the in-memory customer registry, allocates account IDs
// and orchestrates persistence. Indices are populated only by CreateCustomer
// within the running process; Restore rebuilds them from disk on request.
package ledgerservice

import (
	"context"
	"strings"

	"github.com/go-petr/bank-ledger/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// CustomerRepo provides data access layer interface needed by ledger service layer.
type CustomerRepo interface {
	Save(ctx context.Context, c *domain.Customer) error
	LoadAll(ctx context.Context) ([]*domain.Customer, error)
}

// CounterRepo provides durable storage for the next account ID.
type CounterRepo interface {
	Load(ctx context.Context) int
	Save(ctx context.Context, next int) error
}

// CreateCustomerParams is the input data to open an account.
type CreateCustomerParams struct {
	Name string `validate:"required,min=1"`
	Age  int    `validate:"gte=0"`
}

// Service facilitates ledger service layer logic.
type Service struct {
	customers CustomerRepo
	counter   CounterRepo
	validate  *validator.Validate

	byID          map[int]*domain.Customer
	byName        map[string]*domain.Customer
	nextAccountID int
}

// New returns ledger service struct with the counter loaded from its repo.
func New(ctx context.Context, customers CustomerRepo, counter CounterRepo) *Service {
	return &Service{
		customers:     customers,
		counter:       counter,
		validate:      validator.New(),
		byID:          make(map[int]*domain.Customer),
		byName:        make(map[string]*domain.Customer),
		nextAccountID: counter.Load(ctx),
	}
}

// CreateCustomer opens an account for the given name and age and returns the
// new customer. Names are unique ignoring case; a duplicate is rejected with
// domain.ErrDuplicateName. The counter and the customer file are persisted
// best effort: a failed write is logged and does not undo the creation.
func (s *Service) CreateCustomer(ctx context.Context, name string, age int) (*domain.Customer, error) {
	l := zerolog.Ctx(ctx)

	// A name of only whitespace is as empty as the empty string.
	if err := s.validate.Struct(CreateCustomerParams{Name: strings.TrimSpace(name), Age: age}); err != nil {
		l.Info().Err(err).Send()

		for _, fieldErr := range err.(validator.ValidationErrors) {
			if fieldErr.Field() == "Age" {
				return nil, domain.ErrInvalidAge
			}
		}

		return nil, domain.ErrInvalidName
	}

	key := strings.ToLower(name)

	if _, ok := s.byName[key]; ok {
		return nil, domain.ErrDuplicateName
	}

	c := domain.NewCustomer(name, age, s.nextAccountID)
	s.nextAccountID++

	s.byID[c.AccountID] = c
	s.byName[key] = c

	if err := s.counter.Save(ctx, s.nextAccountID); err != nil {
		l.Error().Err(err).Msg("cannot persist account counter")
	}

	s.persist(ctx, c)

	l.Info().Str("name", c.Name).Int("account_id", c.AccountID).Msg("customer created")

	return c, nil
}

// GetByAccountID returns the customer with the given account ID.
func (s *Service) GetByAccountID(ctx context.Context, accountID int) (*domain.Customer, error) {
	c, ok := s.byID[accountID]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}

	return c, nil
}

// GetByName returns the customer with the given name, ignoring case.
func (s *Service) GetByName(ctx context.Context, name string) (*domain.Customer, error) {
	c, ok := s.byName[strings.ToLower(name)]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}

	return c, nil
}

// ListAll returns a snapshot of all known customers.
// The order follows map iteration and is suitable for display only.
func (s *Service) ListAll(ctx context.Context) []*domain.Customer {
	customers := make([]*domain.Customer, 0, len(s.byID))

	for _, c := range s.byID {
		customers = append(customers, c)
	}

	return customers
}

// Deposit credits the customer's balance and persists the customer file.
func (s *Service) Deposit(ctx context.Context, accountID int, amount decimal.Decimal) (*domain.Customer, error) {
	c, err := s.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if err := c.DepositMoney(amount); err != nil {
		return nil, err
	}

	s.persist(ctx, c)

	return c, nil
}

// Withdraw debits the customer's balance and persists the customer file.
func (s *Service) Withdraw(ctx context.Context, accountID int, amount decimal.Decimal) (*domain.Customer, error) {
	c, err := s.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if err := c.WithdrawMoney(amount); err != nil {
		return nil, err
	}

	s.persist(ctx, c)

	return c, nil
}

// Persist saves the given customer's file.
func (s *Service) Persist(ctx context.Context, c *domain.Customer) error {
	return s.customers.Save(ctx, c)
}

// Restore rebuilds the lookup indices from all persisted customer files.
// It is opt-in: a fresh service starts with empty indices otherwise. When a
// restored account ID reaches the counter, the counter is bumped past it so
// newly issued IDs stay unique.
func (s *Service) Restore(ctx context.Context) error {
	l := zerolog.Ctx(ctx)

	customers, err := s.customers.LoadAll(ctx)
	if err != nil {
		return err
	}

	for _, c := range customers {
		key := strings.ToLower(c.Name)

		if _, ok := s.byName[key]; ok {
			l.Warn().Str("name", c.Name).Int("account_id", c.AccountID).
				Msg("duplicate name on restore, skipping name index")
		} else {
			s.byName[key] = c
		}

		s.byID[c.AccountID] = c

		if c.AccountID >= s.nextAccountID {
			s.nextAccountID = c.AccountID + 1
		}
	}

	l.Info().Int("customers", len(customers)).Msg("indices restored from disk")

	return nil
}

// persist saves the customer file best effort. Persistence failures never
// roll back or corrupt the in-memory state; they are logged and swallowed.
func (s *Service) persist(ctx context.Context, c *domain.Customer) {
	l := zerolog.Ctx(ctx)

	if err := s.customers.Save(ctx, c); err != nil {
		l.Error().Err(err).Int("account_id", c.AccountID).Msg("cannot persist customer")
	}
}
