package service

import (
	"github.com/carson-networks/ledger-server/internal/storage"
)

// Service holds the read-side services. Mutations do not live here; they go
// through the operator queue.
type Service struct {
	Account     *AccountService
	Transaction *TransactionService
	Summary     *SummaryService
}

// NewService creates a new Service over the given storage.
func NewService(store *storage.Storage) *Service {
	reader := store.Reader()
	return &Service{
		Account:     NewAccountService(reader),
		Transaction: NewTransactionService(reader),
		Summary:     NewSummaryService(reader),
	}
}
