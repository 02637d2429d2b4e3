package ledger

import (
	"errors"
	"fmt"
)

// ErrAccountNotFound is returned by PatchAccountBalance when the account id
// does not resolve. Posting call sites only patch after a successful lookup,
// so seeing this error indicates a stale id or a store-level race.
var ErrAccountNotFound = errors.New("account not found")

// ErrUnresolvedReference is returned in strict mode when a transaction
// references an account id that does not resolve. In the default (lenient)
// mode the unresolved side is skipped and reported in PostResult instead.
var ErrUnresolvedReference = errors.New("transaction references an unresolved account")

// ValidationError reports malformed input on a create operation. It aborts
// the operation before any persistence.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
