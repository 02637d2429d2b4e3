// Package memory is an in-process ledger store. It backs tests and local
// runs, and stands in for deployments without a transactional database.
// Write scopes are exclusive: the queue of writers is serialized on a
// semaphore, which is what gives read-modify-write balance updates their
// consistency on this backend.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

// Store holds both record collections in memory. Insertion order is
// preserved: accounts list in creation order, transactions list newest
// first.
type Store struct {
	mu           sync.RWMutex // guards the committed state below
	accounts     map[uuid.UUID]ledger.Account
	accountOrder []uuid.UUID
	transactions []ledger.Transaction

	writeSem chan struct{} // exclusive write scope
}

func NewStore() *Store {
	return &Store{
		accounts: make(map[uuid.UUID]ledger.Account),
		writeSem: make(chan struct{}, 1),
	}
}

// Reader returns a read handle over committed state.
func (s *Store) Reader() *Reader {
	return &Reader{store: s}
}

// Write opens an exclusive staged write scope. It blocks until any other
// writer commits or rolls back, or until ctx is done.
func (s *Store) Write(ctx context.Context) (*Writer, error) {
	select {
	case s.writeSem <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return &Writer{
		store:    s,
		balances: make(map[uuid.UUID]decimal.Decimal),
	}, nil
}

type Reader struct {
	store *Store
}

// GetAccount returns the account or (nil, nil) when the id does not
// resolve.
func (r *Reader) GetAccount(ctx context.Context, id uuid.UUID) (*ledger.Account, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	account, ok := r.store.accounts[id]
	if !ok {
		return nil, nil
	}
	return &account, nil
}

// ListAccounts returns all accounts in insertion order.
func (r *Reader) ListAccounts(ctx context.Context) ([]ledger.Account, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]ledger.Account, 0, len(r.store.accountOrder))
	for _, id := range r.store.accountOrder {
		result = append(result, r.store.accounts[id])
	}
	return result, nil
}

// ListTransactions returns at most limit transactions, most recently
// inserted first. limit <= 0 means no cap.
func (r *Reader) ListTransactions(ctx context.Context, limit int) ([]ledger.Transaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	n := len(r.store.transactions)
	if limit > 0 && limit < n {
		n = limit
	}
	result := make([]ledger.Transaction, 0, n)
	for i := len(r.store.transactions) - 1; i >= 0 && len(result) < n; i-- {
		result = append(result, r.store.transactions[i])
	}
	return result, nil
}

// Writer stages mutations until Commit. Reads through the Writer observe
// the staged state. Exactly one of Commit or Rollback must be called; the
// write scope stays exclusive until then.
type Writer struct {
	store *Store

	insertedAccounts     []ledger.Account
	balances             map[uuid.UUID]decimal.Decimal
	insertedTransactions []ledger.Transaction
	done                 bool
}

// GetAccountForUpdate resolves an account, observing staged inserts and
// balance patches. Exclusivity of the write scope is the lock.
func (w *Writer) GetAccountForUpdate(ctx context.Context, id uuid.UUID) (*ledger.Account, error) {
	for _, account := range w.insertedAccounts {
		if account.ID == id {
			w.applyStagedBalance(&account)
			return &account, nil
		}
	}

	w.store.mu.RLock()
	account, ok := w.store.accounts[id]
	w.store.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	w.applyStagedBalance(&account)
	return &account, nil
}

func (w *Writer) applyStagedBalance(account *ledger.Account) {
	if balance, ok := w.balances[account.ID]; ok {
		account.Balance = balance
	}
}

func (w *Writer) InsertAccount(ctx context.Context, create *ledger.AccountCreate) (uuid.UUID, error) {
	id := uuid.Must(uuid.NewV4())
	w.insertedAccounts = append(w.insertedAccounts, ledger.Account{
		ID:        id,
		Name:      create.Name,
		Type:      create.Type,
		Balance:   create.Balance,
		CreatedAt: time.Now(),
	})
	return id, nil
}

func (w *Writer) InsertTransaction(ctx context.Context, create *ledger.TransactionCreate) (uuid.UUID, error) {
	id := uuid.Must(uuid.NewV4())
	w.insertedTransactions = append(w.insertedTransactions, ledger.Transaction{
		ID:            id,
		Type:          create.Type,
		Amount:        create.Amount,
		Description:   create.Description,
		Category:      create.Category,
		FromAccountID: create.FromAccountID,
		ToAccountID:   create.ToAccountID,
		Date:          create.Date,
		CreatedAt:     create.Date,
	})
	return id, nil
}

func (w *Writer) PatchAccountBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error {
	account, err := w.GetAccountForUpdate(ctx, id)
	if err != nil {
		return err
	}
	if account == nil {
		return ledger.ErrAccountNotFound
	}
	w.balances[id] = balance
	return nil
}

// Commit applies the staged mutations and releases the write scope.
func (w *Writer) Commit() error {
	if w.done {
		return nil
	}
	w.done = true

	w.store.mu.Lock()
	for _, account := range w.insertedAccounts {
		w.store.accounts[account.ID] = account
		w.store.accountOrder = append(w.store.accountOrder, account.ID)
	}
	for id, balance := range w.balances {
		account, ok := w.store.accounts[id]
		if !ok {
			continue
		}
		account.Balance = balance
		w.store.accounts[id] = account
	}
	w.store.transactions = append(w.store.transactions, w.insertedTransactions...)
	w.store.mu.Unlock()

	<-w.store.writeSem
	return nil
}

// Rollback discards the staged mutations and releases the write scope.
func (w *Writer) Rollback() error {
	if w.done {
		return nil
	}
	w.done = true
	<-w.store.writeSem
	return nil
}
