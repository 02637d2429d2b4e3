package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
)

// Summary is the dashboard's headline numbers. The transaction totals are
// computed over the same window the transaction list shows (the most
// recent storage.MaxTransactionList records), not over all history.
type Summary struct {
	TotalBalance     decimal.Decimal
	TotalIncome      decimal.Decimal
	TotalExpenses    decimal.Decimal
	TotalInvestments decimal.Decimal
}

// SummaryService aggregates balances and recent transaction totals.
type SummaryService struct {
	reader storage.Reader
}

// NewSummaryService creates a new SummaryService.
func NewSummaryService(reader storage.Reader) *SummaryService {
	return &SummaryService{reader: reader}
}

// Summarize computes the dashboard aggregates as of the call.
func (s *SummaryService) Summarize(ctx context.Context) (*Summary, error) {
	accounts, err := s.reader.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	transactions, err := s.reader.ListTransactions(ctx, storage.MaxTransactionList)
	if err != nil {
		return nil, err
	}

	summary := &Summary{}
	for _, account := range accounts {
		summary.TotalBalance = summary.TotalBalance.Add(account.Balance)
	}
	for _, tx := range transactions {
		switch tx.Type {
		case ledger.TransactionTypeIncome:
			summary.TotalIncome = summary.TotalIncome.Add(tx.Amount)
		case ledger.TransactionTypeExpense:
			summary.TotalExpenses = summary.TotalExpenses.Add(tx.Amount)
		case ledger.TransactionTypeInvestment:
			summary.TotalInvestments = summary.TotalInvestments.Add(tx.Amount)
		}
	}
	return summary, nil
}
