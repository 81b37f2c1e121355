package services

import (
	"context"

	"github.com/projworks/advance_ledger_app/internal/dto"
)

// StageSvcFacade defines CRUD operations for production stages.
type StageSvcFacade interface {
	ListStages(ctx context.Context) ([]dto.StageResponse, error)
	CreateStage(ctx context.Context, req dto.CreateStageRequest) (*dto.StageResponse, error)
	UpdateStage(ctx context.Context, stageID string, req dto.UpdateStageRequest) (*dto.StageResponse, error)
	DeleteStage(ctx context.Context, stageID string) error
}
