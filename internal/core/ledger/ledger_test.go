package ledger_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projworks/advance_ledger_app/internal/apperrors"
	"github.com/projworks/advance_ledger_app/internal/core/domain"
	"github.com/projworks/advance_ledger_app/internal/core/ledger"
)

func newRecord(amount string, settled ...string) domain.AdvanceRecord {
	rec := domain.AdvanceRecord{
		AdvanceID:     uuid.NewString(),
		Population:    domain.Debtor,
		CustomerName:  "Acme Industries",
		AdvanceDate:   time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		AdvanceAmount: decimal.RequireFromString(amount),
	}
	for _, s := range settled {
		rec.Settlements = append(rec.Settlements, domain.Settlement{
			SettlementID:   uuid.NewString(),
			InvoiceNumber:  "INV-" + s,
			SettledAmount:  decimal.RequireFromString(s),
			SettlementDate: time.Now().UTC(),
		})
	}
	return rec
}

func TestRemainingBalance(t *testing.T) {
	tests := []struct {
		name     string
		record   domain.AdvanceRecord
		expected string
	}{
		{"no settlements", newRecord("100"), "100"},
		{"partial", newRecord("100", "30", "20.50"), "49.5"},
		{"fully settled", newRecord("100", "60", "40"), "0"},
		{"over settled stays negative", newRecord("100", "60", "60"), "-20"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ledger.RemainingBalance(tt.record)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.expected)),
				"expected %s, got %s", tt.expected, got.String())
		})
	}
}

func TestRemainingBalanceNoDriftOverManySettlements(t *testing.T) {
	rec := newRecord("10")
	cent := decimal.RequireFromString("0.01")
	for i := 0; i < 1000; i++ {
		rec.Settlements = append(rec.Settlements, domain.Settlement{
			SettlementID:  uuid.NewString(),
			InvoiceNumber: "INV-1",
			SettledAmount: cent,
		})
	}
	assert.True(t, ledger.RemainingBalance(rec).IsZero(),
		"1000 settlements of 0.01 against 10 must leave exactly zero, got %s",
		ledger.RemainingBalance(rec).String())
	assert.True(t, ledger.IsSettled(rec))
}

func TestIsSettled(t *testing.T) {
	assert.False(t, ledger.IsSettled(newRecord("50")))
	assert.True(t, ledger.IsSettled(newRecord("50", "50")))
	assert.True(t, ledger.IsSettled(newRecord("50", "30", "25")))
}

func TestTotalSettled(t *testing.T) {
	assert.True(t, ledger.TotalSettled(newRecord("100")).IsZero())
	got := ledger.TotalSettled(newRecord("100", "10.25", "5.75"))
	assert.True(t, got.Equal(decimal.RequireFromString("16")))
}

func TestLastInvoiceNumber(t *testing.T) {
	_, ok := ledger.LastInvoiceNumber(newRecord("100"))
	assert.False(t, ok)

	inv, ok := ledger.LastInvoiceNumber(newRecord("100", "10", "20"))
	require.True(t, ok)
	assert.Equal(t, "INV-20", inv)
}

func TestSettleAppendsCopyOnWrite(t *testing.T) {
	rec := newRecord("100", "25")
	now := time.Now().UTC()

	updated, err := ledger.Settle(rec, "INV-77", decimal.RequireFromString("40"), "settlement-1", now)
	require.NoError(t, err)

	// Original untouched.
	assert.Len(t, rec.Settlements, 1)
	require.Len(t, updated.Settlements, 2)

	last := updated.Settlements[1]
	assert.Equal(t, "settlement-1", last.SettlementID)
	assert.Equal(t, "INV-77", last.InvoiceNumber)
	assert.Equal(t, now, last.SettlementDate)
	assert.True(t, ledger.RemainingBalance(updated).Equal(decimal.RequireFromString("35")))
}

func TestSettleRejectsOutOfRangeAmounts(t *testing.T) {
	rec := newRecord("100", "80")
	now := time.Now().UTC()

	_, err := ledger.Settle(rec, "INV-1", decimal.RequireFromString("20.01"), "s1", now)
	assert.ErrorIs(t, err, apperrors.ErrIntegrity)

	_, err = ledger.Settle(rec, "INV-1", decimal.Zero, "s1", now)
	assert.ErrorIs(t, err, apperrors.ErrIntegrity)

	_, err = ledger.Settle(rec, "INV-1", decimal.RequireFromString("-5"), "s1", now)
	assert.ErrorIs(t, err, apperrors.ErrIntegrity)

	// Settling exactly the remaining balance is allowed.
	updated, err := ledger.Settle(rec, "INV-1", decimal.RequireFromString("20"), "s1", now)
	require.NoError(t, err)
	assert.True(t, ledger.IsSettled(updated))
}

func TestSettleRequiresInvoiceNumber(t *testing.T) {
	_, err := ledger.Settle(newRecord("100"), "", decimal.RequireFromString("10"), "s1", time.Now())
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestUnsettleIsExactInverseOfSettle(t *testing.T) {
	rec := newRecord("100", "30")
	before := ledger.RemainingBalance(rec)

	settled, err := ledger.Settle(rec, "INV-9", decimal.RequireFromString("15"), "s-new", time.Now().UTC())
	require.NoError(t, err)

	reverted, found := ledger.Unsettle(settled, "s-new")
	require.True(t, found)
	assert.Equal(t, rec.Settlements, reverted.Settlements)
	assert.True(t, ledger.RemainingBalance(reverted).Equal(before))
}

func TestUnsettleMissingIDLeavesRecordUnchanged(t *testing.T) {
	rec := newRecord("100", "30", "20")

	unchanged, found := ledger.Unsettle(rec, "no-such-settlement")
	assert.False(t, found)
	assert.Equal(t, rec.Settlements, unchanged.Settlements)
}

func TestUnsettleRemovesFromMiddlePreservingOrder(t *testing.T) {
	rec := newRecord("100", "10", "20", "30")
	target := rec.Settlements[1].SettlementID

	updated, found := ledger.Unsettle(rec, target)
	require.True(t, found)
	require.Len(t, updated.Settlements, 2)
	assert.Equal(t, "INV-10", updated.Settlements[0].InvoiceNumber)
	assert.Equal(t, "INV-30", updated.Settlements[1].InvoiceNumber)
	// Original untouched.
	assert.Len(t, rec.Settlements, 3)
}

func TestDisplayAmount(t *testing.T) {
	assert.Equal(t, "49.50", ledger.DisplayAmount(decimal.RequireFromString("49.5")).StringFixed(2))
	assert.Equal(t, "33.33", ledger.DisplayAmount(decimal.RequireFromString("33.333")).StringFixed(2))
}
