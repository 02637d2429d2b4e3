package transaction

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/internal/events"
	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/operator"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// CreateTransactionBody is the request body for posting a transaction.
// Account references are optional; which ones matter depends on the type.
type CreateTransactionBody struct {
	Type          string `json:"type" enum:"expense,income,transfer,investment" doc:"Transaction type"`
	Amount        string `json:"amount" doc:"Decimal amount, entered as a positive magnitude"`
	Description   string `json:"description,omitempty" doc:"Free-form description, may be empty"`
	Category      string `json:"category,omitempty" doc:"Optional category"`
	FromAccountID string `json:"fromAccountId,omitempty" doc:"Source account UUID"`
	ToAccountID   string `json:"toAccountId,omitempty" doc:"Destination account UUID"`
}

// CreateTransactionInput is the Huma input for posting a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// SkippedSide reports one side of the posting whose balance update was not
// applied, and why.
type SkippedSide struct {
	Side  string `json:"side" doc:"Which reference: from or to"`
	Cause string `json:"cause" doc:"missing_reference, unresolved_reference, or counterparty_skipped"`
}

// CreateTransactionResponse is the response body for posting a transaction.
// The transaction is always recorded; fromApplied/toApplied report which
// balance updates actually happened.
type CreateTransactionResponse struct {
	ID          string        `json:"id" doc:"Created transaction UUID"`
	FromApplied bool          `json:"fromApplied" doc:"Whether the source balance was debited"`
	ToApplied   bool          `json:"toApplied" doc:"Whether the destination balance was credited"`
	Skipped     []SkippedSide `json:"skipped,omitempty" doc:"Sides whose balance update was skipped"`
}

// CreateTransactionOutput is the Huma output for posting a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   CreateTransactionResponse
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	Operator  *operator.OperatorDelegator
	Publisher events.Publisher
	Topic     string
	Strict    bool
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(op *operator.OperatorDelegator, publisher events.Publisher, topic string, strict bool) *CreateTransactionHandler {
	return &CreateTransactionHandler{Operator: op, Publisher: publisher, Topic: topic, Strict: strict}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/transaction",
		Summary:     "Post a transaction",
		Description: "Applies the transaction's balance effects and appends its record. " +
			"The record is appended even when a referenced account does not resolve; " +
			"the response reports which balance updates were applied.",
		Tags: []string{"Transactions"},
	}, h.handle)
}

func parseCreateTransactionInput(input *CreateTransactionInput) (ledger.PostRequest, error) {
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return ledger.PostRequest{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	request := ledger.PostRequest{
		Type:        ledger.TransactionType(input.Body.Type),
		Amount:      amount,
		Description: input.Body.Description,
	}
	if input.Body.Category != "" {
		category := input.Body.Category
		request.Category = &category
	}
	if input.Body.FromAccountID != "" {
		id, err := uuid.FromString(input.Body.FromAccountID)
		if err != nil {
			return ledger.PostRequest{}, huma.NewError(http.StatusBadRequest, "invalid fromAccountId", err)
		}
		request.FromAccountID = &id
	}
	if input.Body.ToAccountID != "" {
		id, err := uuid.FromString(input.Body.ToAccountID)
		if err != nil {
			return ledger.PostRequest{}, huma.NewError(http.StatusBadRequest, "invalid toAccountId", err)
		}
		request.ToAccountID = &id
	}
	if err := request.Validate(); err != nil {
		return ledger.PostRequest{}, huma.NewError(http.StatusBadRequest, err.Error())
	}
	return request, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	request, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	action := &actions.PostTransaction{Request: request, Strict: h.Strict}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("postTransactionMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		var validationErr *ledger.ValidationError
		switch {
		case errors.As(err, &validationErr):
			return nil, huma.NewError(http.StatusBadRequest, validationErr.Error())
		case errors.Is(err, ledger.ErrUnresolvedReference):
			return nil, huma.NewError(http.StatusConflict, "transaction references an unresolved account", err)
		default:
			return nil, huma.NewError(http.StatusInternalServerError, "failed to post transaction", err)
		}
	}

	result := action.Result
	if logData != nil {
		logData.AddData("transactionID", result.TransactionID.String())
		logData.AddData("fromApplied", result.FromApplied)
		logData.AddData("toApplied", result.ToApplied)
	}

	h.publish(request, result)

	resp := CreateTransactionResponse{
		ID:          result.TransactionID.String(),
		FromApplied: result.FromApplied,
		ToApplied:   result.ToApplied,
	}
	for _, skip := range result.Skipped {
		resp.Skipped = append(resp.Skipped, SkippedSide{Side: string(skip.Side), Cause: string(skip.Cause)})
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   resp,
	}, nil
}

// publish emits the posted event. Best-effort: the posting has already
// committed, so a publish failure is only logged.
func (h *CreateTransactionHandler) publish(request ledger.PostRequest, result ledger.PostResult) {
	event := events.TransactionPosted{
		TransactionID: result.TransactionID.String(),
		Type:          string(request.Type),
		Amount:        request.Amount,
		FromApplied:   result.FromApplied,
		ToApplied:     result.ToApplied,
		OccurredAt:    time.Now(),
	}
	if request.FromAccountID != nil {
		id := request.FromAccountID.String()
		event.FromAccountID = &id
	}
	if request.ToAccountID != nil {
		id := request.ToAccountID.String()
		event.ToAccountID = &id
	}

	if err := h.Publisher.Publish(h.Topic, event); err != nil {
		logrus.WithError(err).Warn("CreateTransaction.publish failed")
	}
}
