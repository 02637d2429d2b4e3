package transaction

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

// Row is the transactions table row shape. Category and the two account
// references are nullable; the references are weak (no foreign keys), so a
// stored id may have long stopped resolving.
type Row struct {
	ID            uuid.UUID       `db:"id"`
	Type          string          `db:"type"`
	Amount        decimal.Decimal `db:"amount"`
	Description   string          `db:"description"`
	Category      *string         `db:"category"`
	FromAccountID *uuid.UUID      `db:"from_account_id"`
	ToAccountID   *uuid.UUID      `db:"to_account_id"`
	Date          time.Time       `db:"date"`
	CreatedAt     time.Time       `db:"created_at"`
}

func rowToTransaction(row Row) ledger.Transaction {
	return ledger.Transaction{
		ID:            row.ID,
		Type:          ledger.TransactionType(row.Type),
		Amount:        row.Amount,
		Description:   row.Description,
		Category:      row.Category,
		FromAccountID: row.FromAccountID,
		ToAccountID:   row.ToAccountID,
		Date:          row.Date,
		CreatedAt:     row.CreatedAt,
	}
}
