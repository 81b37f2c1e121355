package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/projworks/advance_ledger_app/internal/apperrors"
	"github.com/projworks/advance_ledger_app/internal/core/domain"
	portsrepo "github.com/projworks/advance_ledger_app/internal/core/ports/repositories"
	"github.com/projworks/advance_ledger_app/internal/models"
	"github.com/projworks/advance_ledger_app/internal/utils/mapping"
)

type PgxStageRepository struct {
	BaseRepository
}

// newPgxStageRepository creates a new repository for production stage data.
func newPgxStageRepository(pool *pgxpool.Pool) portsrepo.StageRepositoryFacade {
	return &PgxStageRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.StageRepositoryFacade = (*PgxStageRepository)(nil)

// ListStages retrieves all stages in creation order.
func (r *PgxStageRepository) ListStages(ctx context.Context) ([]domain.Stage, error) {
	query := `
		SELECT stage_id, name, remarks, created_at, last_updated_at
		FROM stages
		ORDER BY created_at, stage_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query stages: %w", err)
	}
	defer rows.Close()

	modelStages, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Stage, error) {
		var m models.Stage
		err := row.Scan(&m.StageID, &m.Name, &m.Remarks, &m.CreatedAt, &m.LastUpdatedAt)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan stages: %w", err)
	}

	stages := make([]domain.Stage, len(modelStages))
	for i, m := range modelStages {
		stages[i] = mapping.ToDomainStage(m)
	}
	return stages, nil
}

// SaveStage inserts a new stage.
func (r *PgxStageRepository) SaveStage(ctx context.Context, stage domain.Stage) error {
	m := mapping.ToModelStage(stage)
	query := `
		INSERT INTO stages (stage_id, name, remarks, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query, m.StageID, m.Name, m.Remarks, m.CreatedAt, m.LastUpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert stage %s: %w", m.StageID, err)
	}
	return nil
}

// UpdateStage replaces the editable columns of a stage.
func (r *PgxStageRepository) UpdateStage(ctx context.Context, stage domain.Stage) error {
	m := mapping.ToModelStage(stage)
	query := `
		UPDATE stages
		SET name = $1, remarks = $2, last_updated_at = $3
		WHERE stage_id = $4;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, m.Name, m.Remarks, m.LastUpdatedAt, m.StageID)
	if err != nil {
		return fmt.Errorf("failed to update stage %s: %w", m.StageID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteStage removes a stage.
func (r *PgxStageRepository) DeleteStage(ctx context.Context, stageID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM stages WHERE stage_id = $1;`, stageID)
	if err != nil {
		return fmt.Errorf("failed to delete stage %s: %w", stageID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
