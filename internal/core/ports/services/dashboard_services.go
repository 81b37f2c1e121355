package services

import (
	"context"

	"github.com/projworks/advance_ledger_app/internal/core/domain"
	"github.com/projworks/advance_ledger_app/internal/dto"
)

// DashboardSvc feeds the advances dashboard: monthly rollups and per-month
// detail drill-downs.
type DashboardSvc interface {
	// GetSummary computes the debtor and creditor monthly totals of
	// remaining balance. The two populations are never merged.
	GetSummary(ctx context.Context) (*dto.SummaryResponse, error)

	// GetDetails lists the records of one population whose advance date
	// falls in the given calendar (year, month), settled ones included,
	// newest advance date first.
	GetDetails(ctx context.Context, population domain.Population, year int, month int) ([]dto.AdvanceResponse, error)
}
