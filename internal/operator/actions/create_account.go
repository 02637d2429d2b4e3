package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
)

// CreateAccount inserts a new account. ID is filled in after a successful
// Perform.
type CreateAccount struct {
	Create ledger.AccountCreate

	ID uuid.UUID
}

func (c *CreateAccount) Perform(ctx context.Context, writer storage.Writer) error {
	if err := c.Create.Validate(); err != nil {
		return err
	}

	id, err := writer.InsertAccount(ctx, &c.Create)
	if err != nil {
		return err
	}

	c.ID = id
	return nil
}
