package operator

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/storage"
)

func TestOperatorDelegator_ProcessCreateAccount(t *testing.T) {
	store := storage.NewMemoryStorage()
	delegator := NewOperatorDelegator(store, 1)
	delegator.Start()
	defer delegator.Stop()

	action := &actions.CreateAccount{Create: ledger.AccountCreate{
		Name:    "Checking",
		Type:    ledger.AccountTypeChecking,
		Balance: decimal.RequireFromString("25"),
	}}
	require.NoError(t, delegator.Process(context.Background(), action))

	account, err := store.Reader().GetAccount(context.Background(), action.ID)
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, "Checking", account.Name)
}

func TestOperatorDelegator_ActionErrorRollsBack(t *testing.T) {
	store := storage.NewMemoryStorage()
	delegator := NewOperatorDelegator(store, 1)
	delegator.Start()
	defer delegator.Stop()

	ghostID := uuid.Must(uuid.NewV4())
	action := &actions.PostTransaction{
		Request: ledger.PostRequest{
			Type:          ledger.TransactionTypeExpense,
			Amount:        decimal.RequireFromString("5"),
			Description:   "Ghost expense",
			FromAccountID: &ghostID,
		},
		Strict: true,
	}
	err := delegator.Process(context.Background(), action)
	assert.ErrorIs(t, err, ledger.ErrUnresolvedReference)

	transactions, err := store.Reader().ListTransactions(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestOperatorDelegator_ProcessCanceledContext(t *testing.T) {
	store := storage.NewMemoryStorage()
	delegator := NewOperatorDelegator(store, 1)
	delegator.Start()
	defer delegator.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	action := &actions.CreateAccount{Create: ledger.AccountCreate{
		Name: "Never",
		Type: ledger.AccountTypeChecking,
	}}
	err := delegator.Process(ctx, action)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOperatorDelegator_StopIsIdempotent(t *testing.T) {
	delegator := NewOperatorDelegator(storage.NewMemoryStorage(), 2)
	delegator.Start()
	delegator.Stop()
	delegator.Stop()
}

// Hammers the single-worker queue with transfers between two accounts. The
// queue serializes every read-modify-write, so the total of the two
// balances must be conserved exactly.
func TestOperatorDelegator_SerializedTransfers(t *testing.T) {
	store := storage.NewMemoryStorage()
	delegator := NewOperatorDelegator(store, 1)
	delegator.Start()
	defer delegator.Stop()

	createA := &actions.CreateAccount{Create: ledger.AccountCreate{
		Name: "A", Type: ledger.AccountTypeChecking, Balance: decimal.RequireFromString("1000"),
	}}
	createB := &actions.CreateAccount{Create: ledger.AccountCreate{
		Name: "B", Type: ledger.AccountTypeSavings, Balance: decimal.RequireFromString("1000"),
	}}
	require.NoError(t, delegator.Process(context.Background(), createA))
	require.NoError(t, delegator.Process(context.Background(), createB))

	const posts = 50
	var wg sync.WaitGroup
	errs := make(chan error, posts)
	for i := 0; i < posts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- delegator.Process(context.Background(), &actions.PostTransaction{
				Request: ledger.PostRequest{
					Type:          ledger.TransactionTypeTransfer,
					Amount:        decimal.RequireFromString("1"),
					Description:   "Shuffle",
					FromAccountID: &createA.ID,
					ToAccountID:   &createB.ID,
				},
			})
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	accountA, err := store.Reader().GetAccount(context.Background(), createA.ID)
	require.NoError(t, err)
	accountB, err := store.Reader().GetAccount(context.Background(), createB.ID)
	require.NoError(t, err)
	assert.True(t, accountA.Balance.Equal(decimal.RequireFromString("950")))
	assert.True(t, accountB.Balance.Equal(decimal.RequireFromString("1050")))
	assert.True(t, accountA.Balance.Add(accountB.Balance).Equal(decimal.RequireFromString("2000")))
}

func TestOperator_RunExitsOnClosedQueue(t *testing.T) {
	queue := make(chan ActionItem)
	op := NewOperator(storage.NewMemoryStorage(), queue)

	done := make(chan struct{})
	go func() {
		op.Run()
		close(done)
	}()
	close(queue)
	<-done
}

type failingAction struct{ err error }

func (a failingAction) Perform(ctx context.Context, writer storage.Writer) error {
	return a.err
}

func TestOperatorDelegator_PropagatesActionError(t *testing.T) {
	store := storage.NewMemoryStorage()
	delegator := NewOperatorDelegator(store, 1)
	delegator.Start()
	defer delegator.Stop()

	wantErr := errors.New("perform failed")
	err := delegator.Process(context.Background(), failingAction{err: wantErr})
	assert.ErrorIs(t, err, wantErr)

	// The write scope was released; the next action is not blocked.
	next := &actions.CreateAccount{Create: ledger.AccountCreate{
		Name: "After", Type: ledger.AccountTypeChecking,
	}}
	require.NoError(t, delegator.Process(context.Background(), next))
}
