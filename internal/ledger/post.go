package ledger

import (
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// PostRequest is the caller's request to post a transaction. Amount is a
// positive magnitude; the sign of the balance effect is implied by Type and
// direction. FromAccountID and ToAccountID are optional weak references.
type PostRequest struct {
	Type          TransactionType
	Amount        decimal.Decimal
	Description   string
	Category      *string
	FromAccountID *uuid.UUID
	ToAccountID   *uuid.UUID
}

// Validate checks the request fields. It does not resolve account
// references; that happens at posting time.
func (r *PostRequest) Validate() error {
	if !r.Type.IsValid() {
		return &ValidationError{Field: "type", Reason: "must be one of expense, income, transfer, investment"}
	}
	if r.Amount.IsNegative() {
		return &ValidationError{Field: "amount", Reason: "must be a non-negative magnitude"}
	}
	return nil
}

// Side names which account reference of a transaction a SkipReason is about.
type Side string

const (
	SideFrom Side = "from"
	SideTo   Side = "to"
)

// SkipCause is why a required balance mutation was not applied.
type SkipCause string

const (
	// SkipMissingReference: the branch table requires the side but the
	// request did not supply an account id.
	SkipMissingReference SkipCause = "missing_reference"
	// SkipUnresolvedReference: an id was supplied but did not resolve.
	SkipUnresolvedReference SkipCause = "unresolved_reference"
	// SkipCounterparty: the side itself was usable, but a transfer never
	// touches one account without the other.
	SkipCounterparty SkipCause = "counterparty_skipped"
)

// SkipReason records one side of a posting whose balance mutation was
// skipped. Only sides the transaction kind requires are ever listed.
type SkipReason struct {
	Side  Side
	Cause SkipCause
}

// PostResult is the observable outcome of posting a transaction. The
// transaction record is always appended; FromApplied and ToApplied report
// which balance mutations actually happened, and Skipped explains the rest.
type PostResult struct {
	TransactionID uuid.UUID
	FromApplied   bool
	ToApplied     bool
	Skipped       []SkipReason
}
