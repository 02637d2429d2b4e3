package summary

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// SummaryInput is the Huma input for the dashboard summary.
type SummaryInput struct{}

// SummaryResponseBody is the dashboard's headline numbers. Transaction
// totals cover the same window the transaction list shows.
type SummaryResponseBody struct {
	TotalBalance     string `json:"totalBalance" doc:"Sum of all account balances"`
	TotalIncome      string `json:"totalIncome" doc:"Income total over the recent transaction window"`
	TotalExpenses    string `json:"totalExpenses" doc:"Expense total over the recent transaction window"`
	TotalInvestments string `json:"totalInvestments" doc:"Investment total over the recent transaction window"`
}

// SummaryOutput is the Huma output for the dashboard summary.
type SummaryOutput struct {
	Body SummaryResponseBody
}

// summarizer is the interface for computing the dashboard aggregates.
type summarizer interface {
	Summarize(ctx context.Context) (*service.Summary, error)
}

// Handler handles GET /v1/summary.
type Handler struct {
	SummaryService summarizer
}

// NewHandler creates a new summary Handler.
func NewHandler(svc summarizer) *Handler {
	return &Handler{SummaryService: svc}
}

// Register registers the summary endpoint with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-summary",
		Method:      http.MethodGet,
		Path:        "/v1/summary",
		Summary:     "Dashboard summary",
		Description: "Returns total balance across accounts and income/expense/investment totals over the recent transaction window.",
		Tags:        []string{"Summary"},
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, input *SummaryInput) (*SummaryOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("summaryMs")
	}
	summary, err := h.SummaryService.Summarize(ctx)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute summary", err)
	}

	return &SummaryOutput{
		Body: SummaryResponseBody{
			TotalBalance:     summary.TotalBalance.String(),
			TotalIncome:      summary.TotalIncome.String(),
			TotalExpenses:    summary.TotalExpenses.String(),
			TotalInvestments: summary.TotalInvestments.String(),
		},
	}, nil
}
