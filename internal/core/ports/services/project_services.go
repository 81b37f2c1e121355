package services

import (
	"context"

	"github.com/projworks/advance_ledger_app/internal/dto"
)

// ProjectReaderSvc defines read operations for projects.
type ProjectReaderSvc interface {
	ListProjects(ctx context.Context) ([]dto.ProjectResponse, error)
	GetProjectByID(ctx context.Context, projectID string) (*dto.ProjectResponse, error)
}

// ProjectWriterSvc defines write operations for projects.
type ProjectWriterSvc interface {
	CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	UpdateProject(ctx context.Context, projectID string, req dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	DeleteProject(ctx context.Context, projectID string) error
}

// ProjectSvcFacade combines all project service interfaces.
type ProjectSvcFacade interface {
	ProjectReaderSvc
	ProjectWriterSvc
}
