package transaction

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

var columns = []string{
	"id", "type", "amount", "description", "category",
	"from_account_id", "to_account_id", "date", "created_at",
}

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// List returns at most limit transactions ordered by the store's insertion
// key descending, which is the order the dashboard shows. limit <= 0 means
// no cap.
func (r *Reader) List(ctx context.Context, limit int) ([]ledger.Transaction, error) {
	mods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(toAny(columns)...),
		sm.From("transactions"),
		sm.OrderBy("created_at").Desc(),
		sm.OrderBy("id").Desc(),
	}
	if limit > 0 {
		mods = append(mods, sm.Limit(limit))
	}
	rows, err := bob.All(ctx, r.exec, psql.Select(mods...), scan.StructMapper[Row]())
	if err != nil {
		return nil, err
	}
	result := make([]ledger.Transaction, len(rows))
	for i, row := range rows {
		result[i] = rowToTransaction(row)
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
