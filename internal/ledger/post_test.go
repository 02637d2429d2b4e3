package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPostRequest_Validate(t *testing.T) {
	valid := PostRequest{
		Type:        TransactionTypeExpense,
		Amount:      decimal.RequireFromString("12.50"),
		Description: "Coffee",
	}
	assert.NoError(t, valid.Validate())

	// Zero is a legal magnitude.
	zero := valid
	zero.Amount = decimal.Zero
	assert.NoError(t, zero.Validate())

	var validationErr *ValidationError

	badType := valid
	badType.Type = TransactionType("refund")
	err := badType.Validate()
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "type", validationErr.Field)

	negative := valid
	negative.Amount = decimal.RequireFromString("-1")
	err = negative.Validate()
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "amount", validationErr.Field)

	// Description is free text; empty is acceptable.
	noDescription := valid
	noDescription.Description = ""
	assert.NoError(t, noDescription.Validate())
}

func TestPostRequest_Validate_DoesNotResolveReferences(t *testing.T) {
	// References are weak; Validate never rejects an id that does not
	// resolve. That policy lives in the posting branch table.
	request := PostRequest{
		Type:        TransactionTypeTransfer,
		Amount:      decimal.RequireFromString("5"),
		Description: "Move",
	}
	assert.NoError(t, request.Validate())
}
