package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAccountType_IsValid(t *testing.T) {
	for _, accountType := range []AccountType{
		AccountTypeChecking, AccountTypeSavings, AccountTypeInvestment, AccountTypeCredit,
	} {
		assert.True(t, accountType.IsValid(), accountType)
	}

	assert.False(t, AccountType("").IsValid())
	assert.False(t, AccountType("cash").IsValid())
	assert.False(t, AccountType("Checking").IsValid())
}

func TestTransactionType_IsValid(t *testing.T) {
	for _, txType := range []TransactionType{
		TransactionTypeExpense, TransactionTypeIncome, TransactionTypeTransfer, TransactionTypeInvestment,
	} {
		assert.True(t, txType.IsValid(), txType)
	}

	assert.False(t, TransactionType("").IsValid())
	assert.False(t, TransactionType("withdrawal").IsValid())
}

func TestAccountCreate_Validate(t *testing.T) {
	valid := AccountCreate{
		Name:    "Checking",
		Type:    AccountTypeChecking,
		Balance: decimal.RequireFromString("100.00"),
	}
	assert.NoError(t, valid.Validate())

	// Negative starting balances are allowed: nothing enforces
	// non-negativity anywhere in the ledger.
	negative := valid
	negative.Balance = decimal.RequireFromString("-250.00")
	assert.NoError(t, negative.Validate())

	missingName := valid
	missingName.Name = ""
	err := missingName.Validate()
	assert.Error(t, err)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "name", validationErr.Field)

	badType := valid
	badType.Type = AccountType("cash")
	err = badType.Validate()
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "type", validationErr.Field)
}
