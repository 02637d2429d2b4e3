package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
)

// AccountService handles account reads.
type AccountService struct {
	reader storage.Reader
}

// NewAccountService creates a new AccountService.
func NewAccountService(reader storage.Reader) *AccountService {
	return &AccountService{reader: reader}
}

// GetAccount retrieves an account by ID. An unresolved id returns
// (nil, nil).
func (s *AccountService) GetAccount(ctx context.Context, id uuid.UUID) (*ledger.Account, error) {
	return s.reader.GetAccount(ctx, id)
}

// ListAccounts returns a finite snapshot of all accounts in insertion
// order.
func (s *AccountService) ListAccounts(ctx context.Context) ([]ledger.Account, error) {
	return s.reader.ListAccounts(ctx)
}
