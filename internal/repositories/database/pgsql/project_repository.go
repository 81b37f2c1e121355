package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/projworks/advance_ledger_app/internal/apperrors"
	"github.com/projworks/advance_ledger_app/internal/core/domain"
	portsrepo "github.com/projworks/advance_ledger_app/internal/core/ports/repositories"
	"github.com/projworks/advance_ledger_app/internal/models"
	"github.com/projworks/advance_ledger_app/internal/utils/mapping"
)

type PgxProjectRepository struct {
	BaseRepository
}

// newPgxProjectRepository creates a new repository for project data.
func newPgxProjectRepository(pool *pgxpool.Pool) portsrepo.ProjectRepositoryFacade {
	return &PgxProjectRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ProjectRepositoryFacade = (*PgxProjectRepository)(nil)

const projectColumns = `project_id, project_no, project_name, customer_name, owner, project_date, target_date, dispatch_month, production_stage, remarks, created_at, last_updated_at`

func scanProject(row pgx.Row) (models.Project, error) {
	var m models.Project
	err := row.Scan(
		&m.ProjectID,
		&m.ProjectNo,
		&m.ProjectName,
		&m.CustomerName,
		&m.Owner,
		&m.ProjectDate,
		&m.TargetDate,
		&m.DispatchMonth,
		&m.ProductionStage,
		&m.Remarks,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// ListProjects retrieves all projects in creation order.
func (r *PgxProjectRepository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		ORDER BY created_at, project_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	modelProjects, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Project, error) {
		return scanProject(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan projects: %w", err)
	}

	projects := make([]domain.Project, len(modelProjects))
	for i, m := range modelProjects {
		projects[i] = mapping.ToDomainProject(m)
	}
	return projects, nil
}

// FindProjectByID retrieves a project by its ID.
func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE project_id = $1;
	`
	m, err := scanProject(r.Pool.QueryRow(ctx, query, projectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find project %s: %w", projectID, err)
	}

	project := mapping.ToDomainProject(m)
	return &project, nil
}

// SaveProject inserts a new project.
func (r *PgxProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	m := mapping.ToModelProject(project)
	query := `
		INSERT INTO projects (` + projectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ProjectID,
		m.ProjectNo,
		m.ProjectName,
		m.CustomerName,
		m.Owner,
		m.ProjectDate,
		m.TargetDate,
		m.DispatchMonth,
		m.ProductionStage,
		m.Remarks,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert project %s: %w", m.ProjectID, err)
	}
	return nil
}

// UpdateProject replaces the editable columns of a project.
func (r *PgxProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	m := mapping.ToModelProject(project)
	query := `
		UPDATE projects
		SET project_no = $1, project_name = $2, customer_name = $3, owner = $4, project_date = $5,
		    target_date = $6, dispatch_month = $7, production_stage = $8, remarks = $9, last_updated_at = $10
		WHERE project_id = $11;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.ProjectNo,
		m.ProjectName,
		m.CustomerName,
		m.Owner,
		m.ProjectDate,
		m.TargetDate,
		m.DispatchMonth,
		m.ProductionStage,
		m.Remarks,
		m.LastUpdatedAt,
		m.ProjectID,
	)
	if err != nil {
		return fmt.Errorf("failed to update project %s: %w", m.ProjectID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteProject removes a project. Advances referencing it keep their link
// column; the reference simply stops resolving.
func (r *PgxProjectRepository) DeleteProject(ctx context.Context, projectID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM projects WHERE project_id = $1;`, projectID)
	if err != nil {
		return fmt.Errorf("failed to delete project %s: %w", projectID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
