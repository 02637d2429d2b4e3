package account

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

var columns = []string{"id", "name", "type", "balance", "created_at"}

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// FindByID retrieves an account by primary key. An unresolved id is a valid
// outcome, returned as (nil, nil).
func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Account, error) {
	query := psql.Select(
		sm.Columns(toAny(columns)...),
		sm.From("accounts"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, r.exec, query, scan.StructMapper[Row]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	account := rowToAccount(row)
	return &account, nil
}

// List returns all accounts in insertion order.
func (r *Reader) List(ctx context.Context) ([]ledger.Account, error) {
	query := psql.Select(
		sm.Columns(toAny(columns)...),
		sm.From("accounts"),
		sm.OrderBy("created_at").Asc(),
		sm.OrderBy("id").Asc(),
	)
	rows, err := bob.All(ctx, r.exec, query, scan.StructMapper[Row]())
	if err != nil {
		return nil, err
	}
	result := make([]ledger.Account, len(rows))
	for i, row := range rows {
		result[i] = rowToAccount(row)
	}
	return result, nil
}

func toAny(names []string) []any {
	result := make([]any, len(names))
	for i, name := range names {
		result[i] = name
	}
	return result
}
