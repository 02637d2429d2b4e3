package account

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/operator"
	"github.com/carson-networks/ledger-server/internal/storage"
)

// newCreateTestAPI wires the handler to a real operator over in-memory
// storage. Mutations have no service seam to mock; the queue is the
// contract.
func newCreateTestAPI(t *testing.T) (humatest.TestAPI, *storage.Storage) {
	t.Helper()
	store := storage.NewMemoryStorage()
	delegator := operator.NewOperatorDelegator(store, 1)
	delegator.Start()
	t.Cleanup(delegator.Stop)

	_, api := humatest.New(t)
	NewCreateAccountHandler(delegator).Register(api)
	return api, store
}

// -- parseCreateAccountInput unit tests --

func TestParseCreateAccountInput_DefaultsBalanceToZero(t *testing.T) {
	create, err := parseCreateAccountInput(&CreateAccountInput{
		Body: CreateAccountBody{Name: "Checking", Type: "checking"},
	})
	assert.NoError(t, err)
	assert.True(t, create.Balance.Equal(decimal.Zero))
}

func TestParseCreateAccountInput_NegativeBalanceAllowed(t *testing.T) {
	create, err := parseCreateAccountInput(&CreateAccountInput{
		Body: CreateAccountBody{Name: "Visa", Type: "credit", Balance: "-250.00"},
	})
	assert.NoError(t, err)
	assert.True(t, create.Balance.Equal(decimal.RequireFromString("-250.00")))
}

func TestParseCreateAccountInput_InvalidBalance(t *testing.T) {
	_, err := parseCreateAccountInput(&CreateAccountInput{
		Body: CreateAccountBody{Name: "Checking", Type: "checking", Balance: "lots"},
	})
	assert.Error(t, err)
}

// -- HTTP integration tests (full Huma stack via humatest) --

func TestHTTP_CreateAccount_Success(t *testing.T) {
	api, store := newCreateTestAPI(t)

	resp := api.Post("/v1/account", CreateAccountBody{
		Name:    "Checking",
		Type:    "checking",
		Balance: "100.50",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body CreateAccountResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	id := uuid.Must(uuid.FromString(body.ID))
	created, err := store.Reader().GetAccount(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "Checking", created.Name)
	assert.Equal(t, ledger.AccountTypeChecking, created.Type)
	assert.True(t, created.Balance.Equal(decimal.RequireFromString("100.50")))
}

func TestHTTP_CreateAccount_DefaultBalance(t *testing.T) {
	api, store := newCreateTestAPI(t)

	resp := api.Post("/v1/account", CreateAccountBody{
		Name: "Savings",
		Type: "savings",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body CreateAccountResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	created, err := store.Reader().GetAccount(context.Background(), uuid.Must(uuid.FromString(body.ID)))
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.True(t, created.Balance.Equal(decimal.Zero))
}

func TestHTTP_CreateAccount_InvalidType(t *testing.T) {
	api, store := newCreateTestAPI(t)

	// The enum tag rejects this before the handler runs.
	resp := api.Post("/v1/account", CreateAccountBody{
		Name: "Wallet",
		Type: "cash",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)

	accounts, err := store.Reader().ListAccounts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestHTTP_CreateAccount_EmptyName(t *testing.T) {
	api, _ := newCreateTestAPI(t)

	// minLength:"1" violation, rejected at the schema.
	resp := api.Post("/v1/account", CreateAccountBody{
		Name: "",
		Type: "checking",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestHTTP_CreateAccount_InvalidBalance(t *testing.T) {
	api, _ := newCreateTestAPI(t)

	// Balance is a plain string with no format tag, so
	// parseCreateAccountInput handles it and returns 400.
	resp := api.Post("/v1/account", CreateAccountBody{
		Name:    "Checking",
		Type:    "checking",
		Balance: "not-a-decimal",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
