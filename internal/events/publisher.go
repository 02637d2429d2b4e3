// Package events publishes ledger lifecycle events for downstream
// consumers. Publishing is best-effort: a failed publish never unwinds a
// committed posting.
package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionPosted is emitted after a transaction commits. The applied
// flags mirror ledger.PostResult so consumers can tell a fully-applied
// posting from an audit-only record.
type TransactionPosted struct {
	TransactionID string          `json:"transaction_id"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	FromAccountID *string         `json:"from_account_id,omitempty"`
	ToAccountID   *string         `json:"to_account_id,omitempty"`
	FromApplied   bool            `json:"from_applied"`
	ToApplied     bool            `json:"to_applied"`
	OccurredAt    time.Time       `json:"occurred_at"`
}

type Publisher interface {
	Publish(topic string, event any) error
}

// NopPublisher drops every event. Used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(topic string, event any) error {
	return nil
}
