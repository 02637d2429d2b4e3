package account

import (
	"time"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

// Account is the API response model for an account.
type Account struct {
	ID        string `json:"id" doc:"Account UUID"`
	Name      string `json:"name" doc:"Account name"`
	Type      string `json:"type" doc:"Account type: checking, savings, investment, credit"`
	Balance   string `json:"balance" doc:"Decimal balance"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromLedger(account ledger.Account) Account {
	return Account{
		ID:        account.ID.String(),
		Name:      account.Name,
		Type:      string(account.Type),
		Balance:   account.Balance.String(),
		CreatedAt: account.CreatedAt.Format(time.RFC3339),
	}
}
