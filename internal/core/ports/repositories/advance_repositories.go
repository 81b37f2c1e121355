package repositories

import (
	"context"

	"github.com/projworks/advance_ledger_app/internal/core/domain"
)

// AdvanceReader defines read operations for advance records.
type AdvanceReader interface {
	// ListAdvances retrieves every record of one population, settlements
	// included, in creation order.
	ListAdvances(ctx context.Context, population domain.Population) ([]domain.AdvanceRecord, error)

	// FindAdvanceByID retrieves a single advance with its settlements.
	// Returns apperrors.ErrNotFound when absent from the population.
	FindAdvanceByID(ctx context.Context, population domain.Population, advanceID string) (*domain.AdvanceRecord, error)
}

// AdvanceWriter defines write operations for advance records. Every write is
// a whole-record persist: structural fields plus the full settlement
// sequence. Backends only load and store; they never compute balances.
type AdvanceWriter interface {
	// SaveAdvance inserts a new advance record.
	SaveAdvance(ctx context.Context, record domain.AdvanceRecord) error

	// UpdateAdvance replaces the stored record, settlements included.
	// Returns apperrors.ErrNotFound when the record has vanished.
	UpdateAdvance(ctx context.Context, record domain.AdvanceRecord) error

	// DeleteAdvance removes the record and cascades its settlements.
	// Returns apperrors.ErrNotFound when absent.
	DeleteAdvance(ctx context.Context, population domain.Population, advanceID string) error
}

// AdvanceRepositoryFacade combines all advance repository interfaces.
type AdvanceRepositoryFacade interface {
	AdvanceReader
	AdvanceWriter
}
