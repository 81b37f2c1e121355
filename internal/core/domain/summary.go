package domain

import "github.com/shopspring/decimal"

// MonthTotal is one dashboard bucket: the sum of remaining balances for all
// unsettled advances recorded in a calendar month.
type MonthTotal struct {
	Month       string          `json:"month"` // "YYYY-MM"
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// AdvancesSummary pairs the debtor and creditor monthly rollups. The two
// populations are summarized independently and never merged.
type AdvancesSummary struct {
	Debtors   []MonthTotal `json:"debtors"`
	Creditors []MonthTotal `json:"creditors"`
}
