package transaction

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
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

// Insert appends a transaction record and returns its generated ID.
// created_at is written from create.Date so the two timestamps agree.
func (w *Writer) Insert(ctx context.Context, create *ledger.TransactionCreate) (uuid.UUID, error) {
	query := psql.Insert(
		im.Into("transactions",
			"type", "amount", "description", "category",
			"from_account_id", "to_account_id", "date", "created_at"),
		im.Values(psql.Arg(
			string(create.Type), create.Amount, create.Description, create.Category,
			create.FromAccountID, create.ToAccountID, create.Date, create.Date)),
		im.Returning("id"),
	)
	return bob.One(ctx, w.tx, query, scan.SingleColumnMapper[uuid.UUID])
}
