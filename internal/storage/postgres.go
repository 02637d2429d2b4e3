package storage

import (
	"context"
	"database/sql"

	"github.com/gofrs/uuid/v5"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/ledger-server/internal/config"
	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// PostgresBackend is the durable Ledger Store. Write scopes map to database
// transactions; account resolution inside a scope row-locks with
// SELECT ... FOR UPDATE, so concurrent postings against the same account
// serialize on the database rather than on this process.
type PostgresBackend struct {
	db  *sql.DB
	bdb bob.DB
}

func NewPostgresBackend(env *config.Config) (*PostgresBackend, error) {
	db, err := sql.Open("postgres", env.PostgresDSN())
	if err != nil {
		return nil, err
	}
	return &PostgresBackend{db: db, bdb: bob.NewDB(db)}, nil
}

func (b *PostgresBackend) Reader() Reader {
	return &pgReader{
		accounts:     account.NewReader(b.bdb),
		transactions: transaction.NewReader(b.bdb),
	}
}

func (b *PostgresBackend) Write(ctx context.Context) (Writer, error) {
	tx, err := b.bdb.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &pgWriter{
		tx:           tx,
		accounts:     account.NewWriter(tx),
		transactions: transaction.NewWriter(tx),
	}, nil
}

func (b *PostgresBackend) Close() error {
	return b.db.Close()
}

type pgReader struct {
	accounts     *account.Reader
	transactions *transaction.Reader
}

func (r *pgReader) GetAccount(ctx context.Context, id uuid.UUID) (*ledger.Account, error) {
	return r.accounts.FindByID(ctx, id)
}

func (r *pgReader) ListAccounts(ctx context.Context) ([]ledger.Account, error) {
	return r.accounts.List(ctx)
}

func (r *pgReader) ListTransactions(ctx context.Context, limit int) ([]ledger.Transaction, error) {
	return r.transactions.List(ctx, limit)
}

type pgWriter struct {
	tx           bob.Tx
	accounts     *account.Writer
	transactions *transaction.Writer
}

func (w *pgWriter) GetAccountForUpdate(ctx context.Context, id uuid.UUID) (*ledger.Account, error) {
	return w.accounts.FindByIDForUpdate(ctx, id)
}

func (w *pgWriter) InsertAccount(ctx context.Context, create *ledger.AccountCreate) (uuid.UUID, error) {
	return w.accounts.Insert(ctx, create)
}

func (w *pgWriter) InsertTransaction(ctx context.Context, create *ledger.TransactionCreate) (uuid.UUID, error) {
	return w.transactions.Insert(ctx, create)
}

func (w *pgWriter) PatchAccountBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error {
	return w.accounts.UpdateBalance(ctx, id, balance)
}

func (w *pgWriter) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *pgWriter) Rollback() error {
	return w.tx.Rollback(context.Background())
}
