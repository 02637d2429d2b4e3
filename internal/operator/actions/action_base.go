package actions

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/storage"
)

// IAction is one unit of write work. Perform runs inside a single store
// write scope; the operator commits on nil and rolls back on error.
type IAction interface {
	Perform(ctx context.Context, writer storage.Writer) error
}
