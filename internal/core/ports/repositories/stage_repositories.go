package repositories

import (
	"context"

	"github.com/projworks/advance_ledger_app/internal/core/domain"
)

// StageReader defines read operations for production stages.
type StageReader interface {
	ListStages(ctx context.Context) ([]domain.Stage, error)
}

// StageWriter defines write operations for production stages.
type StageWriter interface {
	SaveStage(ctx context.Context, stage domain.Stage) error
	UpdateStage(ctx context.Context, stage domain.Stage) error
	DeleteStage(ctx context.Context, stageID string) error
}

// StageRepositoryFacade combines all stage repository interfaces.
type StageRepositoryFacade interface {
	StageReader
	StageWriter
}
