package account

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

// Row is the accounts table row shape.
type Row struct {
	ID        uuid.UUID       `db:"id"`
	Name      string          `db:"name"`
	Type      string          `db:"type"`
	Balance   decimal.Decimal `db:"balance"`
	CreatedAt time.Time       `db:"created_at"`
}

func rowToAccount(row Row) ledger.Account {
	return ledger.Account{
		ID:        row.ID,
		Name:      row.Name,
		Type:      ledger.AccountType(row.Type),
		Balance:   row.Balance,
		CreatedAt: row.CreatedAt,
	}
}
