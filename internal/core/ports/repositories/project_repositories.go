package repositories

import (
	"context"

	"github.com/projworks/advance_ledger_app/internal/core/domain"
)

// ProjectReader defines read operations for project data.
type ProjectReader interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)

	// FindProjectByID returns apperrors.ErrNotFound when absent.
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)
}

// ProjectWriter defines write operations for project data.
type ProjectWriter interface {
	SaveProject(ctx context.Context, project domain.Project) error
	UpdateProject(ctx context.Context, project domain.Project) error
	DeleteProject(ctx context.Context, projectID string) error
}

// ProjectRepositoryFacade combines all project repository interfaces.
type ProjectRepositoryFacade interface {
	ProjectReader
	ProjectWriter
}
