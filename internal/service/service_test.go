package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
)

func TestAccountService_GetAccount(t *testing.T) {
	reader := storage.NewMockReader(t)
	id := uuid.Must(uuid.NewV4())
	want := &ledger.Account{
		ID:      id,
		Name:    "Checking",
		Type:    ledger.AccountTypeChecking,
		Balance: decimal.RequireFromString("12.34"),
	}
	reader.EXPECT().GetAccount(mock.Anything, id).Return(want, nil)

	svc := NewAccountService(reader)
	got, err := svc.GetAccount(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestAccountService_GetAccount_Absent(t *testing.T) {
	reader := storage.NewMockReader(t)
	id := uuid.Must(uuid.NewV4())
	reader.EXPECT().GetAccount(mock.Anything, id).Return(nil, nil)

	svc := NewAccountService(reader)
	got, err := svc.GetAccount(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAccountService_ListAccounts(t *testing.T) {
	reader := storage.NewMockReader(t)
	accounts := []ledger.Account{
		{ID: uuid.Must(uuid.NewV4()), Name: "Checking", Type: ledger.AccountTypeChecking},
		{ID: uuid.Must(uuid.NewV4()), Name: "Savings", Type: ledger.AccountTypeSavings},
	}
	reader.EXPECT().ListAccounts(mock.Anything).Return(accounts, nil)

	svc := NewAccountService(reader)
	got, err := svc.ListAccounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, accounts, got)
}

func TestTransactionService_ListTransactions_PassesCap(t *testing.T) {
	reader := storage.NewMockReader(t)
	transactions := []ledger.Transaction{
		{ID: uuid.Must(uuid.NewV4()), Type: ledger.TransactionTypeExpense, Description: "Lunch"},
	}
	reader.EXPECT().ListTransactions(mock.Anything, storage.MaxTransactionList).Return(transactions, nil)

	svc := NewTransactionService(reader)
	got, err := svc.ListTransactions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, transactions, got)
}

func TestTransactionService_ListTransactions_Error(t *testing.T) {
	reader := storage.NewMockReader(t)
	wantErr := errors.New("backend down")
	reader.EXPECT().ListTransactions(mock.Anything, storage.MaxTransactionList).Return(nil, wantErr)

	svc := NewTransactionService(reader)
	_, err := svc.ListTransactions(context.Background())
	assert.ErrorIs(t, err, wantErr)
}

func TestSummaryService_Summarize(t *testing.T) {
	reader := storage.NewMockReader(t)
	now := time.Now()
	reader.EXPECT().ListAccounts(mock.Anything).Return([]ledger.Account{
		{Balance: decimal.RequireFromString("100")},
		{Balance: decimal.RequireFromString("-25.50")},
	}, nil)
	reader.EXPECT().ListTransactions(mock.Anything, storage.MaxTransactionList).Return([]ledger.Transaction{
		{Type: ledger.TransactionTypeIncome, Amount: decimal.RequireFromString("300"), Date: now},
		{Type: ledger.TransactionTypeExpense, Amount: decimal.RequireFromString("40"), Date: now},
		{Type: ledger.TransactionTypeExpense, Amount: decimal.RequireFromString("10"), Date: now},
		{Type: ledger.TransactionTypeInvestment, Amount: decimal.RequireFromString("75"), Date: now},
		// Transfers move money between accounts; they are not income or
		// spending and stay out of every total.
		{Type: ledger.TransactionTypeTransfer, Amount: decimal.RequireFromString("999"), Date: now},
	}, nil)

	svc := NewSummaryService(reader)
	summary, err := svc.Summarize(context.Background())
	require.NoError(t, err)
	assert.True(t, summary.TotalBalance.Equal(decimal.RequireFromString("74.50")))
	assert.True(t, summary.TotalIncome.Equal(decimal.RequireFromString("300")))
	assert.True(t, summary.TotalExpenses.Equal(decimal.RequireFromString("50")))
	assert.True(t, summary.TotalInvestments.Equal(decimal.RequireFromString("75")))
}

func TestSummaryService_Summarize_ReaderError(t *testing.T) {
	reader := storage.NewMockReader(t)
	wantErr := errors.New("backend down")
	reader.EXPECT().ListAccounts(mock.Anything).Return(nil, wantErr)

	svc := NewSummaryService(reader)
	_, err := svc.Summarize(context.Background())
	assert.ErrorIs(t, err, wantErr)
}
