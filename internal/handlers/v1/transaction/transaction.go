package transaction

import (
	"time"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

// Transaction is the API response model for a transaction. It is used only
// for responses, not for request bodies.
type Transaction struct {
	ID            string `json:"id" doc:"Transaction UUID"`
	Type          string `json:"type" doc:"Transaction type: expense, income, transfer, investment"`
	Amount        string `json:"amount" doc:"Decimal amount (positive magnitude)"`
	Description   string `json:"description" doc:"Free-form description"`
	Category      string `json:"category,omitempty" doc:"Optional category"`
	FromAccountID string `json:"fromAccountId,omitempty" doc:"Source account UUID"`
	ToAccountID   string `json:"toAccountId,omitempty" doc:"Destination account UUID"`
	Date          string `json:"date" doc:"RFC3339 posting time"`
	CreatedAt     string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromLedger(tx ledger.Transaction) Transaction {
	out := Transaction{
		ID:          tx.ID.String(),
		Type:        string(tx.Type),
		Amount:      tx.Amount.String(),
		Description: tx.Description,
		Date:        tx.Date.Format(time.RFC3339),
		CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
	}
	if tx.Category != nil {
		out.Category = *tx.Category
	}
	if tx.FromAccountID != nil {
		out.FromAccountID = tx.FromAccountID.String()
	}
	if tx.ToAccountID != nil {
		out.ToAccountID = tx.ToAccountID.String()
	}
	return out
}
