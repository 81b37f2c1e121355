package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/projworks/advance_ledger_app/internal/core/domain"
	"github.com/projworks/advance_ledger_app/internal/core/ledger"
	portsrepo "github.com/projworks/advance_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/projworks/advance_ledger_app/internal/core/ports/services"
	"github.com/projworks/advance_ledger_app/internal/dto"
)

type dashboardService struct {
	BaseService
	advanceRepo portsrepo.AdvanceReader
	projectRepo portsrepo.ProjectReader
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(advanceRepo portsrepo.AdvanceReader, projectRepo portsrepo.ProjectReader) portssvc.DashboardSvc {
	return &dashboardService{
		advanceRepo: advanceRepo,
		projectRepo: projectRepo,
	}
}

var _ portssvc.DashboardSvc = (*dashboardService)(nil)

// GetSummary rolls up the remaining balance of open advances by calendar
// month, separately for each population.
func (s *dashboardService) GetSummary(ctx context.Context) (*dto.SummaryResponse, error) {
	debtors, err := s.advanceRepo.ListAdvances(ctx, domain.Debtor)
	if err != nil {
		s.LogError(ctx, err, "Failed to load debtor advances for summary")
		return nil, fmt.Errorf("failed to load debtor advances: %w", err)
	}
	creditors, err := s.advanceRepo.ListAdvances(ctx, domain.Creditor)
	if err != nil {
		s.LogError(ctx, err, "Failed to load creditor advances for summary")
		return nil, fmt.Errorf("failed to load creditor advances: %w", err)
	}

	summary := domain.AdvancesSummary{
		Debtors:   ledger.SummarizeByMonth(debtors),
		Creditors: ledger.SummarizeByMonth(creditors),
	}
	resp := dto.ToSummaryResponse(&summary)

	s.LogDebug(ctx, "Summary computed",
		slog.Int("debtor_months", len(resp.Debtors)),
		slog.Int("creditor_months", len(resp.Creditors)))
	return &resp, nil
}

// GetDetails returns the records of one population whose advance date falls
// in the given month, settled records included, newest first.
func (s *dashboardService) GetDetails(ctx context.Context, population domain.Population, year int, month int) ([]dto.AdvanceResponse, error) {
	records, err := s.advanceRepo.ListAdvances(ctx, population)
	if err != nil {
		s.LogError(ctx, err, "Failed to load advances for details", slog.String("population", population.String()))
		return nil, fmt.Errorf("failed to load %s advances: %w", population, err)
	}

	matched := ledger.FilterByMonth(records, year, month)
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].AdvanceDate.After(matched[j].AdvanceDate)
	})

	projects, err := s.projectRepo.ListProjects(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load projects for details")
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}
	refs := make(map[string]domain.ProjectRef, len(projects))
	for _, p := range projects {
		refs[p.ProjectID] = domain.ProjectRef{
			ProjectNo:    p.ProjectNo,
			ProjectName:  p.ProjectName,
			CustomerName: p.CustomerName,
		}
	}

	responses := make([]dto.AdvanceResponse, len(matched))
	for i := range matched {
		var ref *domain.ProjectRef
		if matched[i].ProjectID != nil {
			if r, ok := refs[*matched[i].ProjectID]; ok {
				ref = &r
			}
		}
		responses[i] = dto.ToAdvanceResponse(&matched[i], ref)
	}

	s.LogDebug(ctx, "Details computed",
		slog.String("population", population.String()),
		slog.Int("year", year),
		slog.Int("month", month),
		slog.Int("count", len(responses)))
	return responses, nil
}
