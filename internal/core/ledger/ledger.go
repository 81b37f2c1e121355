// Package ledger holds the settlement arithmetic shared by every storage
// backend. Balances are always recomputed from the settlement sequence,
// never read from a stored column, so the two backends cannot diverge.
package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/projworks/advance_ledger_app/internal/apperrors"
	"github.com/projworks/advance_ledger_app/internal/core/domain"
)

// TotalSettled returns the exact sum of all settlement amounts, zero if none.
func TotalSettled(rec domain.AdvanceRecord) decimal.Decimal {
	total := decimal.Zero
	for _, s := range rec.Settlements {
		total = total.Add(s.SettledAmount)
	}
	return total
}

// RemainingBalance returns advanceAmount minus the settled total. The result
// may be negative for over-settled records; callers treat <= 0 as settled.
func RemainingBalance(rec domain.AdvanceRecord) decimal.Decimal {
	return rec.AdvanceAmount.Sub(TotalSettled(rec))
}

// IsSettled reports whether the record is fully paid off.
func IsSettled(rec domain.AdvanceRecord) bool {
	return RemainingBalance(rec).LessThanOrEqual(decimal.Zero)
}

// LastInvoiceNumber returns the invoice number of the most recently appended
// settlement. The second return is false when there are no settlements.
func LastInvoiceNumber(rec domain.AdvanceRecord) (string, bool) {
	if len(rec.Settlements) == 0 {
		return "", false
	}
	return rec.Settlements[len(rec.Settlements)-1].InvoiceNumber, true
}

// Settle appends a new settlement and returns the updated record. The input
// record is not mutated. The amount must lie in (0, remaining balance]; an
// out-of-range amount is rejected with apperrors.ErrIntegrity and an empty
// invoice number with apperrors.ErrValidation.
func Settle(rec domain.AdvanceRecord, invoiceNumber string, amount decimal.Decimal, settlementID string, now time.Time) (domain.AdvanceRecord, error) {
	if invoiceNumber == "" {
		return rec, fmt.Errorf("%w: invoice number is required", apperrors.ErrValidation)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return rec, fmt.Errorf("%w: settlement amount must be positive, got %s", apperrors.ErrIntegrity, amount.String())
	}
	remaining := RemainingBalance(rec)
	if amount.GreaterThan(remaining) {
		return rec, fmt.Errorf("%w: settlement amount %s exceeds remaining balance %s", apperrors.ErrIntegrity, amount.String(), remaining.String())
	}

	updated := rec
	updated.Settlements = make([]domain.Settlement, len(rec.Settlements), len(rec.Settlements)+1)
	copy(updated.Settlements, rec.Settlements)
	updated.Settlements = append(updated.Settlements, domain.Settlement{
		SettlementID:   settlementID,
		InvoiceNumber:  invoiceNumber,
		SettledAmount:  amount,
		SettlementDate: now,
	})
	return updated, nil
}

// Unsettle removes the settlement with the given ID and returns the updated
// record plus whether the settlement existed. The input record is not
// mutated; an absent ID returns the record unchanged.
func Unsettle(rec domain.AdvanceRecord, settlementID string) (domain.AdvanceRecord, bool) {
	idx := -1
	for i, s := range rec.Settlements {
		if s.SettlementID == settlementID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return rec, false
	}

	updated := rec
	updated.Settlements = make([]domain.Settlement, 0, len(rec.Settlements)-1)
	updated.Settlements = append(updated.Settlements, rec.Settlements[:idx]...)
	updated.Settlements = append(updated.Settlements, rec.Settlements[idx+1:]...)
	return updated, true
}

// DisplayAmount rounds a monetary value to two decimal places for
// presentation. Internal accumulation stays exact.
func DisplayAmount(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
