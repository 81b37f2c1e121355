package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/projworks/advance_ledger_app/internal/apperrors"
	"github.com/projworks/advance_ledger_app/internal/core/domain"
	portsrepo "github.com/projworks/advance_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/projworks/advance_ledger_app/internal/core/ports/services"
	"github.com/projworks/advance_ledger_app/internal/dto"
)

type stageService struct {
	BaseService
	stageRepo portsrepo.StageRepositoryFacade
}

// NewStageService creates a new stage service.
func NewStageService(stageRepo portsrepo.StageRepositoryFacade) portssvc.StageSvcFacade {
	return &stageService{stageRepo: stageRepo}
}

var _ portssvc.StageSvcFacade = (*stageService)(nil)

func (s *stageService) ListStages(ctx context.Context) ([]dto.StageResponse, error) {
	stages, err := s.stageRepo.ListStages(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list stages")
		return nil, fmt.Errorf("failed to list stages: %w", err)
	}
	responses := make([]dto.StageResponse, len(stages))
	for i := range stages {
		responses[i] = dto.ToStageResponse(&stages[i])
	}
	return responses, nil
}

func (s *stageService) CreateStage(ctx context.Context, req dto.CreateStageRequest) (*dto.StageResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: stage name is required", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	stage := domain.Stage{
		StageID: uuid.NewString(),
		Name:    name,
		Remarks: req.Remarks,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.stageRepo.SaveStage(ctx, stage); err != nil {
		s.LogError(ctx, err, "Failed to save stage", slog.String("name", name))
		return nil, fmt.Errorf("failed to save stage: %w", err)
	}

	s.LogInfo(ctx, "Stage created", slog.String("stage_id", stage.StageID), slog.String("name", name))
	resp := dto.ToStageResponse(&stage)
	return &resp, nil
}

func (s *stageService) UpdateStage(ctx context.Context, stageID string, req dto.UpdateStageRequest) (*dto.StageResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: stage name is required", apperrors.ErrValidation)
	}

	stage := domain.Stage{
		StageID: stageID,
		Name:    name,
		Remarks: req.Remarks,
		AuditFields: domain.AuditFields{
			LastUpdatedAt: time.Now().UTC(),
		},
	}

	if err := s.stageRepo.UpdateStage(ctx, stage); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update stage", slog.String("stage_id", stageID))
		}
		return nil, fmt.Errorf("failed to update stage %s: %w", stageID, err)
	}

	s.LogInfo(ctx, "Stage updated", slog.String("stage_id", stageID))
	resp := dto.ToStageResponse(&stage)
	return &resp, nil
}

func (s *stageService) DeleteStage(ctx context.Context, stageID string) error {
	if err := s.stageRepo.DeleteStage(ctx, stageID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete stage", slog.String("stage_id", stageID))
		}
		return fmt.Errorf("failed to delete stage %s: %w", stageID, err)
	}
	s.LogInfo(ctx, "Stage deleted", slog.String("stage_id", stageID))
	return nil
}
