package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/projworks/advance_ledger_app/internal/core/domain"
)

// monthKey formats the bucket key from the record's own calendar date. No
// timezone conversion is applied beyond what the date value already encodes.
const monthKeyLayout = "2006-01"

// SummarizeByMonth rolls one population's records into per-month totals of
// remaining balance. Fully settled records are excluded entirely. Buckets
// appear in first-occurrence order while scanning the input; any display
// ordering is the caller's concern.
func SummarizeByMonth(records []domain.AdvanceRecord) []domain.MonthTotal {
	totals := []domain.MonthTotal{}
	index := make(map[string]int)

	for _, rec := range records {
		remaining := RemainingBalance(rec)
		if remaining.LessThanOrEqual(decimal.Zero) {
			continue
		}
		month := rec.AdvanceDate.Format(monthKeyLayout)
		if i, ok := index[month]; ok {
			totals[i].TotalAmount = totals[i].TotalAmount.Add(remaining)
			continue
		}
		index[month] = len(totals)
		totals = append(totals, domain.MonthTotal{Month: month, TotalAmount: remaining})
	}
	return totals
}

// FilterByMonth keeps records whose advance date falls in the given calendar
// (year, month). Unlike SummarizeByMonth this is a pure date filter: fully
// settled records are included.
func FilterByMonth(records []domain.AdvanceRecord, year int, month int) []domain.AdvanceRecord {
	out := []domain.AdvanceRecord{}
	for _, rec := range records {
		if rec.AdvanceDate.Year() == year && int(rec.AdvanceDate.Month()) == month {
			out = append(out, rec)
		}
	}
	return out
}
