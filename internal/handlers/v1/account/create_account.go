package account

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/operator"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// CreateAccountInput is the Huma input for creating an account.
type CreateAccountInput struct {
	Body CreateAccountBody
}

// CreateAccountBody is the request body fields for creating an account.
type CreateAccountBody struct {
	Name    string `json:"name" minLength:"1" doc:"Account name"`
	Type    string `json:"type" enum:"checking,savings,investment,credit" doc:"Account type"`
	Balance string `json:"balance,omitempty" doc:"Initial balance (e.g. '0' or '1234.56'), defaults to 0"`
}

// CreateAccountResponse is the response body for creating an account.
type CreateAccountResponse struct {
	ID string `json:"id" doc:"Created account UUID"`
}

// CreateAccountOutput is the response for creating an account.
type CreateAccountOutput struct {
	Status int
	Body   CreateAccountResponse
}

// CreateAccountHandler handles POST /v1/account.
type CreateAccountHandler struct {
	Operator *operator.OperatorDelegator
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(op *operator.OperatorDelegator) *CreateAccountHandler {
	return &CreateAccountHandler{Operator: op}
}

// Register registers the create account endpoint with the Huma API.
func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-account",
		Method:      http.MethodPost,
		Path:        "/v1/account",
		Summary:     "Create an account",
		Description: "Creates a new account with the given name, type, and initial balance.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func parseCreateAccountInput(input *CreateAccountInput) (ledger.AccountCreate, error) {
	balanceStr := input.Body.Balance
	if balanceStr == "" {
		balanceStr = "0"
	}
	balance, err := decimal.NewFromString(balanceStr)
	if err != nil {
		return ledger.AccountCreate{}, huma.NewError(http.StatusBadRequest, "invalid balance", err)
	}

	create := ledger.AccountCreate{
		Name:    input.Body.Name,
		Type:    ledger.AccountType(input.Body.Type),
		Balance: balance,
	}
	if err := create.Validate(); err != nil {
		return ledger.AccountCreate{}, huma.NewError(http.StatusBadRequest, err.Error())
	}
	return create, nil
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error) {
	logData := logging.GetLogData(ctx)

	create, err := parseCreateAccountInput(input)
	if err != nil {
		return nil, err
	}

	action := &actions.CreateAccount{Create: create}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createAccountMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		var validationErr *ledger.ValidationError
		if errors.As(err, &validationErr) {
			return nil, huma.NewError(http.StatusBadRequest, validationErr.Error())
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create account", err)
	}

	if logData != nil {
		logData.AddData("accountID", action.ID.String())
	}

	return &CreateAccountOutput{
		Status: http.StatusCreated,
		Body:   CreateAccountResponse{ID: action.ID.String()},
	}, nil
}
