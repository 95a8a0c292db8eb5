package main

import (
	"bufio"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-petr/bank-ledger/internal/counterrepo"
	"github.com/go-petr/bank-ledger/internal/customerrepo"
	"github.com/go-petr/bank-ledger/internal/ledgerservice"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *ledgerservice.Service {
	t.Helper()

	dataDir := t.TempDir()

	return ledgerservice.New(
		context.Background(),
		customerrepo.NewRepoFile(dataDir),
		counterrepo.NewRepoFile(filepath.Join(dataDir, "next_account_id.txt")),
	)
}

// runWithInput runs the menu loop over scripted input and fails the test if
// the loop does not come back.
func runWithInput(t *testing.T, ledger *ledgerservice.Service, input string) {
	t.Helper()

	done := make(chan struct{})

	go func() {
		defer close(done)
		run(context.Background(), ledger, bufio.NewScanner(strings.NewReader(input)))
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("run did not return")
	}
}

func TestRunReturnsOnExhaustedInput(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "Empty input"},
		{name: "EOF at customer name", input: "1\n"},
		{name: "EOF inside operations menu", input: "1\nAlice\n30\n"},
		{name: "EOF after invalid choices", input: "9\n0\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			runWithInput(t, newTestService(t), tc.input)
		})
	}
}

func TestRunScriptedSession(t *testing.T) {
	ledger := newTestService(t)

	// Create Alice, deposit and withdraw, leave the operations menu, exit.
	runWithInput(t, ledger, "1\nAlice\n30\n1\n500\n2\n200\n6\n4\n")

	alice, err := ledger.GetByName(context.Background(), "alice")
	require.NoError(t, err)
	require.Equal(t, 100, alice.AccountID)
	require.True(t, alice.GetBalance().Equal(decimal.NewFromInt(300)))
	require.Len(t, alice.Account.Transactions, 2)
}
