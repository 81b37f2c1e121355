package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settlement is a single repayment event against an advance. Settlements are
// never edited in place; reversal removes the entry from the sequence.
type Settlement struct {
	SettlementID   string          `json:"settlementID"`
	InvoiceNumber  string          `json:"invoiceNumber"`
	SettledAmount  decimal.Decimal `json:"settledAmount"`
	SettlementDate time.Time       `json:"settlementDate"` // assigned at append, immutable
}

// AdvanceRecord is one debtor or creditor advance tied (optionally) to a
// project, holding its settlements in append order.
type AdvanceRecord struct {
	AdvanceID     string          `json:"advanceID"`
	Population    Population      `json:"population"`
	ProjectID     *string         `json:"projectID"` // nil when no project is linked
	CustomerName  string          `json:"customerName"`
	AdvanceDate   time.Time       `json:"advanceDate"`   // calendar date; aggregation bucket key
	AdvanceAmount decimal.Decimal `json:"advanceAmount"` // original principal, > 0
	PaymentTerms  string          `json:"paymentTerms"`
	Settlements   []Settlement    `json:"settlements"` // insertion order == chronological order
	AuditFields
}
