package dto

import (
	"github.com/shopspring/decimal"

	"github.com/projworks/advance_ledger_app/internal/core/domain"
	"github.com/projworks/advance_ledger_app/internal/core/ledger"
)

// MonthTotalResponse is one dashboard bucket in the summary response.
type MonthTotalResponse struct {
	Month       string          `json:"month"` // "YYYY-MM"
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// SummaryResponse pairs the debtor and creditor monthly rollups.
type SummaryResponse struct {
	Debtors   []MonthTotalResponse `json:"debtors"`
	Creditors []MonthTotalResponse `json:"creditors"`
}

// ToSummaryResponse converts a domain summary to the response DTO, applying
// display rounding to the bucket totals.
func ToSummaryResponse(s *domain.AdvancesSummary) SummaryResponse {
	return SummaryResponse{
		Debtors:   toMonthTotalResponses(s.Debtors),
		Creditors: toMonthTotalResponses(s.Creditors),
	}
}

func toMonthTotalResponses(totals []domain.MonthTotal) []MonthTotalResponse {
	out := make([]MonthTotalResponse, len(totals))
	for i, t := range totals {
		out[i] = MonthTotalResponse{
			Month:       t.Month,
			TotalAmount: ledger.DisplayAmount(t.TotalAmount),
		}
	}
	return out
}
