package ledger

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// AccountType is the closed set of account kinds.
type AccountType string

const (
	AccountTypeChecking   AccountType = "checking"
	AccountTypeSavings    AccountType = "savings"
	AccountTypeInvestment AccountType = "investment"
	AccountTypeCredit     AccountType = "credit"
)

// IsValid reports whether t is one of the enumerated account types.
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeChecking, AccountTypeSavings, AccountTypeInvestment, AccountTypeCredit:
		return true
	}
	return false
}

// TransactionType is the closed set of transaction kinds.
type TransactionType string

const (
	TransactionTypeExpense    TransactionType = "expense"
	TransactionTypeIncome     TransactionType = "income"
	TransactionTypeTransfer   TransactionType = "transfer"
	TransactionTypeInvestment TransactionType = "investment"
)

// IsValid reports whether t is one of the enumerated transaction types.
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeExpense, TransactionTypeIncome, TransactionTypeTransfer, TransactionTypeInvestment:
		return true
	}
	return false
}

// Account is a named balance-holding entity. Balance is the running sum of
// all posted deltas since creation; it is allowed to go negative.
type Account struct {
	ID        uuid.UUID
	Name      string
	Type      AccountType
	Balance   decimal.Decimal
	CreatedAt time.Time
}

// Transaction is an immutable record of a financial event. FromAccountID and
// ToAccountID are weak references: they may point at accounts that no longer
// resolve, and a nil pointer means the side was never given.
type Transaction struct {
	ID            uuid.UUID
	Type          TransactionType
	Amount        decimal.Decimal
	Description   string
	Category      *string
	FromAccountID *uuid.UUID
	ToAccountID   *uuid.UUID
	Date          time.Time
	CreatedAt     time.Time
}

// AccountCreate is the input for creating a new account.
type AccountCreate struct {
	Name    string
	Type    AccountType
	Balance decimal.Decimal
}

// Validate checks the create input against the account invariants.
func (c *AccountCreate) Validate() error {
	if c.Name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if !c.Type.IsValid() {
		return &ValidationError{Field: "type", Reason: "must be one of checking, savings, investment, credit"}
	}
	return nil
}

// TransactionCreate is the input for appending a transaction record.
// CreatedAt is set to Date by the store so the two timestamps always agree.
type TransactionCreate struct {
	Type          TransactionType
	Amount        decimal.Decimal
	Description   string
	Category      *string
	FromAccountID *uuid.UUID
	ToAccountID   *uuid.UUID
	Date          time.Time
}
