package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/go-petr/bank-ledger/internal/counterrepo"
	"github.com/go-petr/bank-ledger/internal/customerrepo"
	"github.com/go-petr/bank-ledger/internal/domain"
	"github.com/go-petr/bank-ledger/internal/ledgerservice"
	"github.com/go-petr/bank-ledger/pkg/configpkg"
	"github.com/go-petr/bank-ledger/pkg/logpkg"
)

func main() {
	restore := flag.Bool("restore", false, "rebuild lookup indices from persisted customer files")
	flag.Parse()

	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := logpkg.GetLogger(config)
	logger = logger.With().Str("session_id", uuid.NewString()).Logger()

	ctx := logger.WithContext(context.Background())

	customerRepo := customerrepo.NewRepoFile(config.DataDir)
	counterRepo := counterrepo.NewRepoFile(filepath.Join(config.DataDir, config.CounterFile))

	ledger := ledgerservice.New(ctx, customerRepo, counterRepo)

	if *restore {
		if err := ledger.Restore(ctx); err != nil {
			logger.Error().Err(err).Msg("cannot restore indices")
		}
	}

	run(ctx, ledger, bufio.NewScanner(os.Stdin))
}

func run(ctx context.Context, ledger *ledgerservice.Service, in *bufio.Scanner) {
	for {
		fmt.Println("\nWelcome to the Bank Ledger!")
		fmt.Println("1. Create a new account")
		fmt.Println("2. Use an existing account")
		fmt.Println("3. Admin options")
		fmt.Println("4. Exit")

		choice, ok := prompt(in, "Choose an option: ")
		if !ok {
			fmt.Println("\nExiting the Bank Ledger. Thank you!")
			return
		}

		switch choice {
		case "1":
			name, ok := prompt(in, "Enter customer name: ")
			if !ok {
				return
			}

			ageInput, ok := prompt(in, "Enter customer age: ")
			if !ok {
				return
			}

			age, err := strconv.Atoi(ageInput)
			if err != nil {
				fmt.Println("Invalid age.")
				continue
			}

			c, err := ledger.CreateCustomer(ctx, name, age)
			if err != nil {
				fmt.Println("Cannot create account:", err)
				continue
			}

			fmt.Printf("Account created for %s with Account ID: %d\n", c.Name, c.AccountID)
			operate(ctx, ledger, in, c)
		case "2":
			idInput, ok := prompt(in, "Enter Account ID: ")
			if !ok {
				return
			}

			accountID, err := strconv.Atoi(idInput)
			if err != nil {
				fmt.Println("Invalid account ID.")
				continue
			}

			c, err := ledger.GetByAccountID(ctx, accountID)
			if err != nil {
				fmt.Println("Account not found.")
				continue
			}

			operate(ctx, ledger, in, c)
		case "3":
			admin(ctx, ledger, in)
		case "4":
			fmt.Println("Exiting the Bank Ledger. Thank you!")
			return
		default:
			fmt.Println("Invalid choice, please try again.")
		}
	}
}

// operate drives the per-customer menu. It returns when the customer is done
// or the input is exhausted; the caller's own prompt then sees the same EOF.
func operate(ctx context.Context, ledger *ledgerservice.Service, in *bufio.Scanner, c *domain.Customer) {
	for {
		fmt.Println("\nChoose an operation:")
		fmt.Println("1. Deposit money")
		fmt.Println("2. Withdraw money")
		fmt.Println("3. View previous transactions")
		fmt.Println("4. View balance")
		fmt.Println("5. Filter transactions")
		fmt.Println("6. Exit")

		choice, ok := prompt(in, "Choose an option: ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			input, ok := prompt(in, "Enter deposit amount: ")
			if !ok {
				return
			}

			amount, err := decimal.NewFromString(input)
			if err != nil {
				fmt.Println("Invalid amount.")
				continue
			}

			if _, err := ledger.Deposit(ctx, c.AccountID, amount); err != nil {
				fmt.Println("Deposit failed:", err)
				continue
			}

			fmt.Println("New Balance:", c.GetBalance())
		case "2":
			input, ok := prompt(in, "Enter withdrawal amount: ")
			if !ok {
				return
			}

			amount, err := decimal.NewFromString(input)
			if err != nil {
				fmt.Println("Invalid amount.")
				continue
			}

			if _, err := ledger.Withdraw(ctx, c.AccountID, amount); err != nil {
				fmt.Println("Withdrawal failed:", err)
				continue
			}

			fmt.Println("New Balance:", c.GetBalance())
		case "3":
			fmt.Println("Previous Transactions:")

			for _, t := range c.Account.Transactions {
				fmt.Println(t)
			}
		case "4":
			fmt.Println("Your balance is:", c.GetBalance())
		case "5":
			filterTransactions(in, c)
		case "6":
			return
		default:
			fmt.Println("Invalid choice, please try again.")
		}
	}
}

func filterTransactions(in *bufio.Scanner, c *domain.Customer) {
	fmt.Println("Filter transactions by:")
	fmt.Println("1. Date")
	fmt.Println("2. Type")

	choice, ok := prompt(in, "Choose an option: ")
	if !ok {
		return
	}

	var filtered []domain.Transaction

	switch choice {
	case "1":
		yearInput, ok := prompt(in, "Enter year (yyyy): ")
		if !ok {
			return
		}

		year, err := strconv.Atoi(yearInput)
		if err != nil {
			fmt.Println("Invalid year.")
			return
		}

		monthInput, ok := prompt(in, "Enter month (1-12): ")
		if !ok {
			return
		}

		month, err := strconv.Atoi(monthInput)
		if err != nil || month < 1 || month > 12 {
			fmt.Println("Invalid month.")
			return
		}

		filtered = domain.FilterByMonth(c.Account.Transactions, year, time.Month(month))
	case "2":
		kindInput, ok := prompt(in, "Enter transaction type (Deposit/Withdrawal): ")
		if !ok {
			return
		}

		kind, err := domain.ParseKind(kindInput)
		if err != nil {
			fmt.Println("Invalid transaction type.")
			return
		}

		filtered = domain.FilterByKind(c.Account.Transactions, kind)
	default:
		fmt.Println("Invalid choice.")
		return
	}

	if len(filtered) == 0 {
		fmt.Println("No transactions found.")
		return
	}

	for _, t := range filtered {
		fmt.Println(t)
	}
}

func admin(ctx context.Context, ledger *ledgerservice.Service, in *bufio.Scanner) {
	fmt.Println("Admin options:")
	fmt.Println("1. View all accounts")
	fmt.Println("2. View all transactions")

	customers := ledger.ListAll(ctx)

	if len(customers) == 0 {
		fmt.Println("No accounts found.")
		return
	}

	choice, ok := prompt(in, "Choose an option: ")
	if !ok {
		return
	}

	switch choice {
	case "1":
		fmt.Println("\nAll Accounts:")

		for _, c := range customers {
			fmt.Println(c)
		}
	case "2":
		fmt.Println("\nAll Transactions:")

		for _, c := range customers {
			fmt.Printf("Account ID: %d - %s - Transactions:\n", c.AccountID, c.Name)

			for _, t := range c.Account.Transactions {
				fmt.Println(t)
			}
		}
	default:
		fmt.Println("Invalid choice.")
	}
}

// prompt reads one trimmed input line. It reports false when the input is
// exhausted so menu loops stop instead of spinning on an empty choice.
func prompt(in *bufio.Scanner, msg string) (string, bool) {
	fmt.Print(msg)

	if !in.Scan() {
		return "", false
	}

	return strings.TrimSpace(in.Text()), true
}
