package actions

import (
	"context"
	"fmt"
	"time"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
)

// PostTransaction applies a transaction's balance effects and appends its
// audit record, all inside one write scope.
//
// Balance mutation and transaction logging are decoupled: the record is
// appended even when a referenced account cannot be resolved, so the ledger
// stays an append-only audit log while balances reflect only successfully
// resolved mutations. Result reports which sides applied.
//
// With Strict set, an unresolved reference instead fails the whole
// operation before anything is persisted.
type PostTransaction struct {
	Request ledger.PostRequest
	Strict  bool

	Result ledger.PostResult
}

func (p *PostTransaction) Perform(ctx context.Context, writer storage.Writer) error {
	if err := p.Request.Validate(); err != nil {
		return err
	}

	result, err := p.applyBalances(ctx, writer)
	if err != nil {
		return err
	}

	now := time.Now()
	id, err := writer.InsertTransaction(ctx, &ledger.TransactionCreate{
		Type:          p.Request.Type,
		Amount:        p.Request.Amount,
		Description:   p.Request.Description,
		Category:      p.Request.Category,
		FromAccountID: p.Request.FromAccountID,
		ToAccountID:   p.Request.ToAccountID,
		Date:          now,
	})
	if err != nil {
		return err
	}

	result.TransactionID = id
	p.Result = result
	return nil
}

// applyBalances walks the branch table for the transaction kind. The switch
// covers every ledger.TransactionType; anything outside the closed set is
// rejected here even though Validate has already screened it.
func (p *PostTransaction) applyBalances(ctx context.Context, writer storage.Writer) (ledger.PostResult, error) {
	var result ledger.PostResult
	req := p.Request

	switch req.Type {
	case ledger.TransactionTypeTransfer:
		if req.FromAccountID == nil || req.ToAccountID == nil {
			result.Skipped = appendSkip(result.Skipped, ledger.SideFrom, transferSkipCause(req.FromAccountID == nil))
			result.Skipped = appendSkip(result.Skipped, ledger.SideTo, transferSkipCause(req.ToAccountID == nil))
			return result, nil
		}

		// Resolve both before applying either: a transfer never touches
		// one account without the other.
		from, err := writer.GetAccountForUpdate(ctx, *req.FromAccountID)
		if err != nil {
			return result, err
		}
		to, err := writer.GetAccountForUpdate(ctx, *req.ToAccountID)
		if err != nil {
			return result, err
		}
		if from == nil || to == nil {
			if p.Strict {
				return result, fmt.Errorf("transfer: %w", ledger.ErrUnresolvedReference)
			}
			result.Skipped = appendSkip(result.Skipped, ledger.SideFrom, unresolvedSkipCause(from == nil))
			result.Skipped = appendSkip(result.Skipped, ledger.SideTo, unresolvedSkipCause(to == nil))
			return result, nil
		}

		if err := writer.PatchAccountBalance(ctx, from.ID, from.Balance.Sub(req.Amount)); err != nil {
			return result, err
		}
		if err := writer.PatchAccountBalance(ctx, to.ID, to.Balance.Add(req.Amount)); err != nil {
			return result, err
		}
		result.FromApplied = true
		result.ToApplied = true

	case ledger.TransactionTypeExpense, ledger.TransactionTypeInvestment:
		if req.FromAccountID == nil {
			result.Skipped = appendSkip(result.Skipped, ledger.SideFrom, ledger.SkipMissingReference)
			return result, nil
		}
		from, err := writer.GetAccountForUpdate(ctx, *req.FromAccountID)
		if err != nil {
			return result, err
		}
		if from == nil {
			if p.Strict {
				return result, fmt.Errorf("%s: %w", req.Type, ledger.ErrUnresolvedReference)
			}
			result.Skipped = appendSkip(result.Skipped, ledger.SideFrom, ledger.SkipUnresolvedReference)
			return result, nil
		}
		if err := writer.PatchAccountBalance(ctx, from.ID, from.Balance.Sub(req.Amount)); err != nil {
			return result, err
		}
		result.FromApplied = true

	case ledger.TransactionTypeIncome:
		if req.ToAccountID == nil {
			result.Skipped = appendSkip(result.Skipped, ledger.SideTo, ledger.SkipMissingReference)
			return result, nil
		}
		to, err := writer.GetAccountForUpdate(ctx, *req.ToAccountID)
		if err != nil {
			return result, err
		}
		if to == nil {
			if p.Strict {
				return result, fmt.Errorf("income: %w", ledger.ErrUnresolvedReference)
			}
			result.Skipped = appendSkip(result.Skipped, ledger.SideTo, ledger.SkipUnresolvedReference)
			return result, nil
		}
		if err := writer.PatchAccountBalance(ctx, to.ID, to.Balance.Add(req.Amount)); err != nil {
			return result, err
		}
		result.ToApplied = true

	default:
		return result, &ledger.ValidationError{Field: "type", Reason: fmt.Sprintf("unsupported transaction type %q", req.Type)}
	}

	return result, nil
}

func appendSkip(skipped []ledger.SkipReason, side ledger.Side, cause ledger.SkipCause) []ledger.SkipReason {
	return append(skipped, ledger.SkipReason{Side: side, Cause: cause})
}

func transferSkipCause(missing bool) ledger.SkipCause {
	if missing {
		return ledger.SkipMissingReference
	}
	return ledger.SkipCounterparty
}

func unresolvedSkipCause(unresolved bool) ledger.SkipCause {
	if unresolved {
		return ledger.SkipUnresolvedReference
	}
	return ledger.SkipCounterparty
}
