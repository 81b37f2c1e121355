package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdvanceRecord is the storage-facing shape of an advance row.
type AdvanceRecord struct {
	AdvanceID     string          `db:"advance_id" json:"advanceID"`
	Population    string          `db:"population" json:"population"`
	ProjectID     *string         `db:"project_id" json:"projectID"`
	CustomerName  string          `db:"customer_name" json:"customerName"`
	AdvanceDate   time.Time       `db:"advance_date" json:"advanceDate"`
	AdvanceAmount decimal.Decimal `db:"advance_amount" json:"advanceAmount"`
	PaymentTerms  string          `db:"payment_terms" json:"paymentTerms"`
	Settlements   []Settlement    `db:"-" json:"settlements"` // child rows, position ordered
	AuditFields
}

// Settlement is the storage-facing shape of a settlement row.
type Settlement struct {
	SettlementID   string          `db:"settlement_id" json:"settlementID"`
	AdvanceID      string          `db:"advance_id" json:"advanceID"`
	Position       int             `db:"position" json:"-"` // append order within the advance
	InvoiceNumber  string          `db:"invoice_number" json:"invoiceNumber"`
	SettledAmount  decimal.Decimal `db:"settled_amount" json:"settledAmount"`
	SettlementDate time.Time       `db:"settlement_date" json:"settlementDate"`
}
