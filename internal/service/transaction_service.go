package service

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
)

// TransactionService handles transaction reads.
type TransactionService struct {
	reader storage.Reader
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(reader storage.Reader) *TransactionService {
	return &TransactionService{reader: reader}
}

// ListTransactions returns the most recent transactions, newest first,
// capped at storage.MaxTransactionList.
func (s *TransactionService) ListTransactions(ctx context.Context) ([]ledger.Transaction, error) {
	return s.reader.ListTransactions(ctx, storage.MaxTransactionList)
}
