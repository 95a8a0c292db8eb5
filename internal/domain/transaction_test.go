package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	testCases := []struct {
		input    string
		wantKind Kind
		wantErr  error
	}{
		{input: "Deposit", wantKind: Deposit},
		{input: "deposit", wantKind: Deposit},
		{input: "WITHDRAWAL", wantKind: Withdrawal},
		{input: " Withdrawal ", wantKind: Withdrawal},
		{input: "transfer", wantErr: ErrUnknownKind},
		{input: "", wantErr: ErrUnknownKind},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			kind, err := ParseKind(tc.input)

			require.ErrorIs(t, err, tc.wantErr)
			require.Equal(t, tc.wantKind, kind)
		})
	}
}

func TestTransactionString(t *testing.T) {
	tx := Transaction{
		ID:        1,
		Kind:      Deposit,
		Amount:    decimal.NewFromInt(500),
		CreatedAt: time.Date(2023, 4, 1, 10, 0, 0, 0, time.UTC),
	}

	want := "Transaction ID: 1, Type: Deposit, Amount: 500, Date: 2023-04-01T10:00:00Z"
	require.Equal(t, want, tx.String())
}

func TestFilterByMonth(t *testing.T) {
	april := Transaction{ID: 1, Kind: Deposit, Amount: decimal.NewFromInt(10),
		CreatedAt: time.Date(2023, time.April, 1, 0, 0, 0, 0, time.UTC)}
	may := Transaction{ID: 2, Kind: Deposit, Amount: decimal.NewFromInt(20),
		CreatedAt: time.Date(2023, time.May, 1, 0, 0, 0, 0, time.UTC)}
	aprilNextYear := Transaction{ID: 3, Kind: Deposit, Amount: decimal.NewFromInt(30),
		CreatedAt: time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)}

	transactions := []Transaction{april, may, aprilNextYear}

	filtered := FilterByMonth(transactions, 2023, time.April)
	require.Equal(t, []Transaction{april}, filtered)

	require.Empty(t, FilterByMonth(transactions, 2023, time.June))
}

func TestFilterByKind(t *testing.T) {
	deposit := Transaction{ID: 1, Kind: Deposit, Amount: decimal.NewFromInt(10)}
	withdrawal := Transaction{ID: 2, Kind: Withdrawal, Amount: decimal.NewFromInt(5)}

	transactions := []Transaction{deposit, withdrawal}

	require.Equal(t, []Transaction{deposit}, FilterByKind(transactions, Deposit))
	require.Equal(t, []Transaction{withdrawal}, FilterByKind(transactions, Withdrawal))
	require.Empty(t, FilterByKind(nil, Deposit))
}
