package account

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

type Writer struct {
	tx bob.Tx
	Reader
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// FindByIDForUpdate resolves an account and row-locks it for the rest of
// the transaction. (nil, nil) when the id does not resolve.
func (w *Writer) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*ledger.Account, error) {
	query := psql.Select(
		sm.Columns(toAny(columns)...),
		sm.From("accounts"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.ForUpdate(),
	)
	row, err := bob.One(ctx, w.tx, query, scan.StructMapper[Row]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	account := rowToAccount(row)
	return &account, nil
}

// Insert creates a new account and returns its generated ID.
func (w *Writer) Insert(ctx context.Context, create *ledger.AccountCreate) (uuid.UUID, error) {
	query := psql.Insert(
		im.Into("accounts", "name", "type", "balance"),
		im.Values(psql.Arg(create.Name, string(create.Type), create.Balance)),
		im.Returning("id"),
	)
	return bob.One(ctx, w.tx, query, scan.SingleColumnMapper[uuid.UUID])
}

// UpdateBalance overwrites the balance field only. It reports
// ledger.ErrAccountNotFound when the id does not resolve.
func (w *Writer) UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error {
	query := psql.Update(
		um.Table("accounts"),
		um.SetCol("balance").ToArg(balance),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	result, err := bob.Exec(ctx, w.tx, query)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ledger.ErrAccountNotFound
	}
	return nil
}
