package storage

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/config"
	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage/memory"
)

// MaxTransactionList caps how many transactions a read returns.
const MaxTransactionList = 100

// Reader provides consistent point-in-time reads. An absent account is a
// valid outcome, reported as (nil, nil).
type Reader interface {
	GetAccount(ctx context.Context, id uuid.UUID) (*ledger.Account, error)
	ListAccounts(ctx context.Context) ([]ledger.Account, error)
	// ListTransactions returns at most limit transactions, most recently
	// inserted first.
	ListTransactions(ctx context.Context, limit int) ([]ledger.Transaction, error)
}

// Writer is a single staged mutation scope. Reads through it observe staged
// writes, and GetAccountForUpdate pins the account against concurrent
// writers for the life of the scope. Exactly one of Commit or Rollback must
// be called.
type Writer interface {
	GetAccountForUpdate(ctx context.Context, id uuid.UUID) (*ledger.Account, error)
	InsertAccount(ctx context.Context, create *ledger.AccountCreate) (uuid.UUID, error)
	InsertTransaction(ctx context.Context, create *ledger.TransactionCreate) (uuid.UUID, error)
	// PatchAccountBalance overwrites the balance field only. It returns
	// ledger.ErrAccountNotFound when id does not resolve.
	PatchAccountBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error
	Commit() error
	Rollback() error
}

// Backend is a Ledger Store implementation.
type Backend interface {
	Reader() Reader
	Write(ctx context.Context) (Writer, error)
	Close() error
}

// Storage is the durable record store for accounts and transactions. It
// exclusively owns both collections; no other component holds authoritative
// state.
type Storage struct {
	backend Backend
}

// NewStorage selects a backend from config: "postgres" (default) or
// "memory".
func NewStorage(env *config.Config) (*Storage, error) {
	switch env.StorageBackend {
	case config.BackendPostgres:
		backend, err := NewPostgresBackend(env)
		if err != nil {
			return nil, fmt.Errorf("storage: open postgres: %w", err)
		}
		return &Storage{backend: backend}, nil
	case config.BackendMemory:
		return NewMemoryStorage(), nil
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", env.StorageBackend)
	}
}

// NewStorageWithBackend wraps an already-constructed backend. Used by tests
// and by callers that manage the backend lifecycle themselves.
func NewStorageWithBackend(backend Backend) *Storage {
	return &Storage{backend: backend}
}

// NewMemoryStorage builds a Storage over a fresh in-memory backend.
func NewMemoryStorage() *Storage {
	return &Storage{backend: memoryBackend{store: memory.NewStore()}}
}

func (s *Storage) Reader() Reader {
	return s.backend.Reader()
}

func (s *Storage) Write(ctx context.Context) (Writer, error) {
	return s.backend.Write(ctx)
}

func (s *Storage) Close() error {
	return s.backend.Close()
}

// memoryBackend adapts memory.Store to Backend so the memory package does
// not need to import storage.
type memoryBackend struct {
	store *memory.Store
}

func (b memoryBackend) Reader() Reader {
	return b.store.Reader()
}

func (b memoryBackend) Write(ctx context.Context) (Writer, error) {
	w, err := b.store.Write(ctx)
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (b memoryBackend) Close() error {
	return nil
}
