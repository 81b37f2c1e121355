package services

import (
	"context"

	"github.com/projworks/advance_ledger_app/internal/core/domain"
	"github.com/projworks/advance_ledger_app/internal/dto"
)

// AdvanceReaderSvc defines read operations over one population of advances.
type AdvanceReaderSvc interface {
	// ListAdvances returns every record of the population, enriched with
	// computed ledger state and project display fields.
	ListAdvances(ctx context.Context, population domain.Population) ([]dto.AdvanceResponse, error)
}

// AdvanceWriterSvc defines the mutating boundary operations. Each one is a
// full read-modify-write over the targeted record; writers within one
// population are serialized.
type AdvanceWriterSvc interface {
	CreateAdvance(ctx context.Context, population domain.Population, req dto.CreateAdvanceRequest) (*dto.AdvanceResponse, error)
	UpdateAdvance(ctx context.Context, population domain.Population, advanceID string, req dto.UpdateAdvanceRequest) (*dto.AdvanceResponse, error)
	DeleteAdvance(ctx context.Context, population domain.Population, advanceID string) error

	// SettleAdvance appends a settlement. Amounts outside (0, remaining]
	// are rejected with apperrors.ErrIntegrity before anything is written.
	SettleAdvance(ctx context.Context, population domain.Population, advanceID string, req dto.SettleRequest) error

	// UnsettleAdvance removes one settlement by ID. A missing settlement is
	// apperrors.ErrNotFound.
	UnsettleAdvance(ctx context.Context, population domain.Population, advanceID string, settlementID string) error
}

// AdvanceSvcFacade combines all advance service interfaces.
type AdvanceSvcFacade interface {
	AdvanceReaderSvc
	AdvanceWriterSvc
}
