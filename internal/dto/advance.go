package dto

import (
	"github.com/shopspring/decimal"

	"github.com/projworks/advance_ledger_app/internal/core/domain"
	"github.com/projworks/advance_ledger_app/internal/core/ledger"
)

// DateLayout is the wire format for calendar dates. Dates cross the boundary
// timezone-free.
const DateLayout = "2006-01-02"

// CreateAdvanceRequest defines the expected JSON body for creating an advance.
type CreateAdvanceRequest struct {
	ProjectID     *string         `json:"projectID"`
	CustomerName  string          `json:"customerName" binding:"required"`
	AdvanceDate   string          `json:"advanceDate" binding:"required,dateonly"` // YYYY-MM-DD
	AdvanceAmount decimal.Decimal `json:"advanceAmount" binding:"required"`
	PaymentTerms  string          `json:"paymentTerms"`
}

// UpdateAdvanceRequest defines the JSON body for editing an advance's
// structural fields. Settlements are never touched through this path.
type UpdateAdvanceRequest struct {
	ProjectID     *string         `json:"projectID"`
	CustomerName  string          `json:"customerName" binding:"required"`
	AdvanceDate   string          `json:"advanceDate" binding:"required,dateonly"`
	AdvanceAmount decimal.Decimal `json:"advanceAmount" binding:"required"`
	PaymentTerms  string          `json:"paymentTerms"`
}

// SettleRequest defines the JSON body for recording a settlement.
type SettleRequest struct {
	InvoiceNumber string          `json:"invoiceNumber" binding:"required"`
	SettledAmount decimal.Decimal `json:"settledAmount" binding:"required"`
}

// SettlementResponse is one settlement in an advance response.
type SettlementResponse struct {
	SettlementID   string          `json:"settlementID"`
	InvoiceNumber  string          `json:"invoiceNumber"`
	SettledAmount  decimal.Decimal `json:"settledAmount"`
	SettlementDate string          `json:"settlementDate"`
}

// AdvanceResponse is an advance record annotated with its computed ledger
// state and the linked project's display fields.
type AdvanceResponse struct {
	AdvanceID           string               `json:"advanceID"`
	ProjectID           *string              `json:"projectID"`
	ProjectNo           string               `json:"projectNo"`
	ProjectName         string               `json:"projectName"`
	ProjectCustomerName string               `json:"projectCustomerName"`
	CustomerName        string               `json:"customerName"`
	AdvanceDate         string               `json:"advanceDate"`
	AdvanceAmount       decimal.Decimal      `json:"advanceAmount"`
	PaymentTerms        string               `json:"paymentTerms"`
	RemainingAmount     decimal.Decimal      `json:"remainingAmount"`
	TotalSettled        decimal.Decimal      `json:"totalSettled"`
	LastInvoiceNumber   string               `json:"lastInvoiceNumber"`
	Settled             bool                 `json:"settled"`
	Settlements         []SettlementResponse `json:"settlements"`
}

// ToAdvanceResponse builds the enriched view of a record. The ledger state
// is recomputed here on every read; nothing is taken from stored columns.
// Monetary outputs carry display rounding; project may be nil when the link
// is absent or unresolvable.
func ToAdvanceResponse(rec *domain.AdvanceRecord, project *domain.ProjectRef) AdvanceResponse {
	resp := AdvanceResponse{
		AdvanceID:       rec.AdvanceID,
		ProjectID:       rec.ProjectID,
		CustomerName:    rec.CustomerName,
		AdvanceDate:     rec.AdvanceDate.Format(DateLayout),
		AdvanceAmount:   rec.AdvanceAmount,
		PaymentTerms:    rec.PaymentTerms,
		RemainingAmount: ledger.DisplayAmount(ledger.RemainingBalance(*rec)),
		TotalSettled:    ledger.DisplayAmount(ledger.TotalSettled(*rec)),
		Settled:         ledger.IsSettled(*rec),
		Settlements:     make([]SettlementResponse, len(rec.Settlements)),
	}
	if inv, ok := ledger.LastInvoiceNumber(*rec); ok {
		resp.LastInvoiceNumber = inv
	}
	if project != nil {
		resp.ProjectNo = project.ProjectNo
		resp.ProjectName = project.ProjectName
		resp.ProjectCustomerName = project.CustomerName
	}
	for i, s := range rec.Settlements {
		resp.Settlements[i] = SettlementResponse{
			SettlementID:   s.SettlementID,
			InvoiceNumber:  s.InvoiceNumber,
			SettledAmount:  s.SettledAmount,
			SettlementDate: s.SettlementDate.UTC().Format("2006-01-02T15:04:05Z07:00"),
		}
	}
	return resp
}

// ListAdvancesResponse wraps an enriched listing of one population.
type ListAdvancesResponse struct {
	Advances []AdvanceResponse `json:"advances"`
}
