package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projworks/advance_ledger_app/internal/core/domain"
	"github.com/projworks/advance_ledger_app/internal/core/ledger"
)

func datedRecord(date string, amount string, settled ...string) domain.AdvanceRecord {
	rec := newRecord(amount, settled...)
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	rec.AdvanceDate = d
	return rec
}

func TestSummarizeByMonthExcludesSettledRecords(t *testing.T) {
	records := []domain.AdvanceRecord{
		datedRecord("2024-03-05", "100", "100"), // fully settled, must not appear
		datedRecord("2024-03-18", "50"),
	}

	totals := ledger.SummarizeByMonth(records)
	require.Len(t, totals, 1)
	assert.Equal(t, "2024-03", totals[0].Month)
	assert.True(t, totals[0].TotalAmount.Equal(decimal.RequireFromString("50")))
}

func TestSummarizeByMonthBucketsAcrossMonths(t *testing.T) {
	records := []domain.AdvanceRecord{
		datedRecord("2024-01-15", "40", "10"), // remaining 30
		datedRecord("2024-01-28", "20"),       // remaining 20
		datedRecord("2024-02-01", "75"),       // new bucket
	}

	totals := ledger.SummarizeByMonth(records)
	require.Len(t, totals, 2)
	assert.Equal(t, "2024-01", totals[0].Month)
	assert.True(t, totals[0].TotalAmount.Equal(decimal.RequireFromString("50")))
	assert.Equal(t, "2024-02", totals[1].Month)
	assert.True(t, totals[1].TotalAmount.Equal(decimal.RequireFromString("75")))
}

func TestSummarizeByMonthPreservesFirstOccurrenceOrder(t *testing.T) {
	records := []domain.AdvanceRecord{
		datedRecord("2024-05-02", "10"),
		datedRecord("2024-02-20", "20"),
		datedRecord("2024-05-30", "30"),
	}

	totals := ledger.SummarizeByMonth(records)
	require.Len(t, totals, 2)
	// Not sorted: 2024-05 was seen first.
	assert.Equal(t, "2024-05", totals[0].Month)
	assert.True(t, totals[0].TotalAmount.Equal(decimal.RequireFromString("40")))
	assert.Equal(t, "2024-02", totals[1].Month)
}

func TestSummarizeByMonthSumsRemainingNotPrincipal(t *testing.T) {
	records := []domain.AdvanceRecord{
		datedRecord("2024-03-01", "100", "60"),
	}
	totals := ledger.SummarizeByMonth(records)
	require.Len(t, totals, 1)
	assert.True(t, totals[0].TotalAmount.Equal(decimal.RequireFromString("40")))
}

func TestSummarizeByMonthEmptyInput(t *testing.T) {
	assert.Empty(t, ledger.SummarizeByMonth(nil))
}

func TestFilterByMonthIncludesSettledRecords(t *testing.T) {
	settled := datedRecord("2024-03-05", "100", "100")
	open := datedRecord("2024-03-22", "40")
	other := datedRecord("2024-04-01", "40")

	got := ledger.FilterByMonth([]domain.AdvanceRecord{settled, open, other}, 2024, 3)
	require.Len(t, got, 2)
	assert.Equal(t, settled.AdvanceID, got[0].AdvanceID)
	assert.Equal(t, open.AdvanceID, got[1].AdvanceID)
}

func TestFilterByMonthRespectsYearBoundary(t *testing.T) {
	records := []domain.AdvanceRecord{
		datedRecord("2023-03-10", "10"),
		datedRecord("2024-03-10", "20"),
	}
	got := ledger.FilterByMonth(records, 2024, 3)
	require.Len(t, got, 1)
	assert.Equal(t, records[1].AdvanceID, got[0].AdvanceID)
}
