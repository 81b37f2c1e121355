package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/projworks/advance_ledger_app/internal/apperrors"
	"github.com/projworks/advance_ledger_app/internal/core/domain"
	"github.com/projworks/advance_ledger_app/internal/core/ledger"
	portsrepo "github.com/projworks/advance_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/projworks/advance_ledger_app/internal/core/ports/services"
	"github.com/projworks/advance_ledger_app/internal/dto"
)

// advanceService implements the advance boundary operations. Every mutation
// is a full read-modify-write of one record; a per-population mutex
// serializes writers so near-simultaneous settlements cannot drop updates.
type advanceService struct {
	BaseService
	advanceRepo portsrepo.AdvanceRepositoryFacade
	projectRepo portsrepo.ProjectReader

	debtorMu   sync.Mutex
	creditorMu sync.Mutex
}

// NewAdvanceService creates a new advance service.
func NewAdvanceService(advanceRepo portsrepo.AdvanceRepositoryFacade, projectRepo portsrepo.ProjectReader) portssvc.AdvanceSvcFacade {
	return &advanceService{
		advanceRepo: advanceRepo,
		projectRepo: projectRepo,
	}
}

var _ portssvc.AdvanceSvcFacade = (*advanceService)(nil)

// writeLock returns the writer mutex for one population. Reads are not
// locked: they operate on whatever snapshot the repository returns.
func (s *advanceService) writeLock(population domain.Population) *sync.Mutex {
	if population == domain.Creditor {
		return &s.creditorMu
	}
	return &s.debtorMu
}

func parseAdvanceDate(value string) (time.Time, error) {
	d, err := time.Parse(dto.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: advance date must be a valid YYYY-MM-DD date", apperrors.ErrValidation)
	}
	return d, nil
}

// validateAdvanceFields checks the structural fields shared by create and
// update. All validation happens before any mutation; there are no partial
// writes to roll back.
func validateAdvanceFields(customerName string, advanceDate string, advanceAmount decimal.Decimal) (time.Time, error) {
	if strings.TrimSpace(customerName) == "" {
		return time.Time{}, fmt.Errorf("%w: customer name is required", apperrors.ErrValidation)
	}
	date, err := parseAdvanceDate(advanceDate)
	if err != nil {
		return time.Time{}, err
	}
	if advanceAmount.LessThanOrEqual(decimal.Zero) {
		return time.Time{}, fmt.Errorf("%w: advance amount must be a positive decimal", apperrors.ErrValidation)
	}
	return date, nil
}

// resolveProjectRef looks up the display fields of a linked project. An
// absent or unresolvable link yields nil, never an error: the listing still
// renders, just with empty project columns.
func (s *advanceService) resolveProjectRef(ctx context.Context, projectID *string) *domain.ProjectRef {
	if projectID == nil || *projectID == "" {
		return nil
	}
	project, err := s.projectRepo.FindProjectByID(ctx, *projectID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to resolve linked project", slog.String("project_id", *projectID))
		}
		return nil
	}
	return &domain.ProjectRef{
		ProjectNo:    project.ProjectNo,
		ProjectName:  project.ProjectName,
		CustomerName: project.CustomerName,
	}
}

// ListAdvances returns the whole population enriched with ledger state.
// Implements portssvc.AdvanceReaderSvc.
func (s *advanceService) ListAdvances(ctx context.Context, population domain.Population) ([]dto.AdvanceResponse, error) {
	records, err := s.advanceRepo.ListAdvances(ctx, population)
	if err != nil {
		s.LogError(ctx, err, "Failed to list advances", slog.String("population", population.String()))
		return nil, fmt.Errorf("failed to list %s advances: %w", population, err)
	}

	// One pass over the projects table instead of a lookup per record.
	projects, err := s.projectRepo.ListProjects(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load projects for enrichment")
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

	responses := make([]dto.AdvanceResponse, len(records))
	for i := range records {
		var ref *domain.ProjectRef
		if records[i].ProjectID != nil {
			if r, ok := refs[*records[i].ProjectID]; ok {
				ref = &r
			}
		}
		responses[i] = dto.ToAdvanceResponse(&records[i], ref)
	}

	s.LogDebug(ctx, "Advances listed", slog.String("population", population.String()), slog.Int("count", len(responses)))
	return responses, nil
}

// CreateAdvance validates and persists a new advance record.
// Implements portssvc.AdvanceWriterSvc.
func (s *advanceService) CreateAdvance(ctx context.Context, population domain.Population, req dto.CreateAdvanceRequest) (*dto.AdvanceResponse, error) {
	date, err := validateAdvanceFields(req.CustomerName, req.AdvanceDate, req.AdvanceAmount)
	if err != nil {
		return nil, err
	}

	mu := s.writeLock(population)
	mu.Lock()
	defer mu.Unlock()

	now := time.Now().UTC()
	record := domain.AdvanceRecord{
		AdvanceID:     uuid.NewString(),
		Population:    population,
		ProjectID:     req.ProjectID,
		CustomerName:  strings.TrimSpace(req.CustomerName),
		AdvanceDate:   date,
		AdvanceAmount: req.AdvanceAmount,
		PaymentTerms:  req.PaymentTerms,
		Settlements:   []domain.Settlement{},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.advanceRepo.SaveAdvance(ctx, record); err != nil {
		s.LogError(ctx, err, "Failed to save advance", slog.String("population", population.String()))
		return nil, fmt.Errorf("failed to save advance: %w", err)
	}

	s.LogInfo(ctx, "Advance created", slog.String("advance_id", record.AdvanceID), slog.String("population", population.String()))
	resp := dto.ToAdvanceResponse(&record, s.resolveProjectRef(ctx, record.ProjectID))
	return &resp, nil
}

// UpdateAdvance edits the structural fields of a record. The settlement
// sequence is carried over untouched.
func (s *advanceService) UpdateAdvance(ctx context.Context, population domain.Population, advanceID string, req dto.UpdateAdvanceRequest) (*dto.AdvanceResponse, error) {
	date, err := validateAdvanceFields(req.CustomerName, req.AdvanceDate, req.AdvanceAmount)
	if err != nil {
		return nil, err
	}

	mu := s.writeLock(population)
	mu.Lock()
	defer mu.Unlock()

	record, err := s.advanceRepo.FindAdvanceByID(ctx, population, advanceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find advance for update", slog.String("advance_id", advanceID))
		}
		return nil, fmt.Errorf("failed to find advance %s: %w", advanceID, err)
	}

	record.ProjectID = req.ProjectID
	record.CustomerName = strings.TrimSpace(req.CustomerName)
	record.AdvanceDate = date
	record.AdvanceAmount = req.AdvanceAmount
	record.PaymentTerms = req.PaymentTerms
	record.LastUpdatedAt = time.Now().UTC()

	if err := s.advanceRepo.UpdateAdvance(ctx, *record); err != nil {
		s.LogError(ctx, err, "Failed to update advance", slog.String("advance_id", advanceID))
		return nil, fmt.Errorf("failed to update advance %s: %w", advanceID, err)
	}

	s.LogInfo(ctx, "Advance updated", slog.String("advance_id", advanceID))
	resp := dto.ToAdvanceResponse(record, s.resolveProjectRef(ctx, record.ProjectID))
	return &resp, nil
}

// DeleteAdvance removes a record and its settlements.
func (s *advanceService) DeleteAdvance(ctx context.Context, population domain.Population, advanceID string) error {
	mu := s.writeLock(population)
	mu.Lock()
	defer mu.Unlock()

	if err := s.advanceRepo.DeleteAdvance(ctx, population, advanceID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete advance", slog.String("advance_id", advanceID))
		}
		return fmt.Errorf("failed to delete advance %s: %w", advanceID, err)
	}

	s.LogInfo(ctx, "Advance deleted", slog.String("advance_id", advanceID), slog.String("population", population.String()))
	return nil
}

// SettleAdvance appends a settlement to the record. The ledger engine
// rejects amounts outside (0, remaining] before anything is persisted.
func (s *advanceService) SettleAdvance(ctx context.Context, population domain.Population, advanceID string, req dto.SettleRequest) error {
	mu := s.writeLock(population)
	mu.Lock()
	defer mu.Unlock()

	record, err := s.advanceRepo.FindAdvanceByID(ctx, population, advanceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find advance for settlement", slog.String("advance_id", advanceID))
		}
		return fmt.Errorf("failed to find advance %s: %w", advanceID, err)
	}

	now := time.Now().UTC()
	updated, err := ledger.Settle(*record, strings.TrimSpace(req.InvoiceNumber), req.SettledAmount, uuid.NewString(), now)
	if err != nil {
		return err
	}
	updated.LastUpdatedAt = now

	if err := s.advanceRepo.UpdateAdvance(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to persist settlement", slog.String("advance_id", advanceID))
		return fmt.Errorf("failed to persist settlement for advance %s: %w", advanceID, err)
	}

	s.LogInfo(ctx, "Settlement recorded",
		slog.String("advance_id", advanceID),
		slog.String("invoice_number", req.InvoiceNumber),
		slog.String("remaining", ledger.RemainingBalance(updated).String()))
	return nil
}

// UnsettleAdvance removes one settlement by ID. A settlement ID absent from
// the record is reported as not found rather than silently ignored.
func (s *advanceService) UnsettleAdvance(ctx context.Context, population domain.Population, advanceID string, settlementID string) error {
	mu := s.writeLock(population)
	mu.Lock()
	defer mu.Unlock()

	record, err := s.advanceRepo.FindAdvanceByID(ctx, population, advanceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find advance for unsettle", slog.String("advance_id", advanceID))
		}
		return fmt.Errorf("failed to find advance %s: %w", advanceID, err)
	}

	updated, found := ledger.Unsettle(*record, settlementID)
	if !found {
		return fmt.Errorf("%w: settlement %s not found on advance %s", apperrors.ErrNotFound, settlementID, advanceID)
	}
	updated.LastUpdatedAt = time.Now().UTC()

	if err := s.advanceRepo.UpdateAdvance(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to persist settlement removal", slog.String("advance_id", advanceID), slog.String("settlement_id", settlementID))
		return fmt.Errorf("failed to persist settlement removal for advance %s: %w", advanceID, err)
	}

	s.LogInfo(ctx, "Settlement removed", slog.String("advance_id", advanceID), slog.String("settlement_id", settlementID))
	return nil
}
