package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

type mockTransactionLister struct {
	mock.Mock
}

func (m *mockTransactionLister) ListTransactions(ctx context.Context) ([]ledger.Transaction, error) {
	args := m.Called(ctx)
	transactions, _ := args.Get(0).([]ledger.Transaction)
	return transactions, args.Error(1)
}

func newListTestAPI(t *testing.T, svc transactionLister) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListTransactionsHandler(svc).Register(api)
	return api
}

func TestHTTP_ListTransactions_Success(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	txID := uuid.Must(uuid.NewV4())
	fromID := uuid.Must(uuid.NewV4())
	category := "food"

	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything).Return([]ledger.Transaction{
		{
			ID:            txID,
			Type:          ledger.TransactionTypeExpense,
			Amount:        decimal.RequireFromString("12.50"),
			Description:   "Lunch",
			Category:      &category,
			FromAccountID: &fromID,
			Date:          now,
			CreatedAt:     now,
		},
	}, nil)

	resp := newListTestAPI(t, mockSvc).Get("/v1/transactions")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Transactions, 1)
	assert.Equal(t, txID.String(), body.Transactions[0].ID)
	assert.Equal(t, "expense", body.Transactions[0].Type)
	assert.Equal(t, "12.5", body.Transactions[0].Amount)
	assert.Equal(t, "food", body.Transactions[0].Category)
	assert.Equal(t, fromID.String(), body.Transactions[0].FromAccountID)
	assert.Empty(t, body.Transactions[0].ToAccountID)
	assert.Equal(t, now.Format(time.RFC3339), body.Transactions[0].Date)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_NoResults(t *testing.T) {
	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything).Return(([]ledger.Transaction)(nil), nil)

	resp := newListTestAPI(t, mockSvc).Get("/v1/transactions")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Transactions)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything).Return(([]ledger.Transaction)(nil), errors.New("database unavailable"))

	resp := newListTestAPI(t, mockSvc).Get("/v1/transactions")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
