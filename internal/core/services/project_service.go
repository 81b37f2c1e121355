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

type projectService struct {
	BaseService
	projectRepo portsrepo.ProjectRepositoryFacade
}

// NewProjectService creates a new project service.
func NewProjectService(projectRepo portsrepo.ProjectRepositoryFacade) portssvc.ProjectSvcFacade {
	return &projectService{projectRepo: projectRepo}
}

var _ portssvc.ProjectSvcFacade = (*projectService)(nil)

// parseOptionalDate parses an optional YYYY-MM-DD field. Empty means unset.
func parseOptionalDate(field string, value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	d, err := time.Parse(dto.DateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a valid YYYY-MM-DD date", apperrors.ErrValidation, field)
	}
	return &d, nil
}

func applyProjectFields(project *domain.Project, req dto.CreateProjectRequest) error {
	projectDate, err := parseOptionalDate("project date", req.ProjectDate)
	if err != nil {
		return err
	}
	targetDate, err := parseOptionalDate("target date", req.TargetDate)
	if err != nil {
		return err
	}
	project.ProjectNo = strings.TrimSpace(req.ProjectNo)
	project.ProjectName = strings.TrimSpace(req.ProjectName)
	project.CustomerName = strings.TrimSpace(req.CustomerName)
	project.Owner = strings.TrimSpace(req.Owner)
	project.ProjectDate = projectDate
	project.TargetDate = targetDate
	project.DispatchMonth = req.DispatchMonth
	project.ProductionStage = req.ProductionStage
	project.Remarks = req.Remarks
	return nil
}

func (s *projectService) ListProjects(ctx context.Context) ([]dto.ProjectResponse, error) {
	projects, err := s.projectRepo.ListProjects(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list projects")
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	responses := make([]dto.ProjectResponse, len(projects))
	for i := range projects {
		responses[i] = dto.ToProjectResponse(&projects[i])
	}
	return responses, nil
}

func (s *projectService) GetProjectByID(ctx context.Context, projectID string) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find project", slog.String("project_id", projectID))
		}
		return nil, fmt.Errorf("failed to find project %s: %w", projectID, err)
	}
	resp := dto.ToProjectResponse(project)
	return &resp, nil
}

func (s *projectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	now := time.Now().UTC()
	project := domain.Project{
		ProjectID: uuid.NewString(),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := applyProjectFields(&project, req); err != nil {
		return nil, err
	}

	if err := s.projectRepo.SaveProject(ctx, project); err != nil {
		s.LogError(ctx, err, "Failed to save project", slog.String("project_no", project.ProjectNo))
		return nil, fmt.Errorf("failed to save project: %w", err)
	}

	s.LogInfo(ctx, "Project created", slog.String("project_id", project.ProjectID), slog.String("project_no", project.ProjectNo))
	resp := dto.ToProjectResponse(&project)
	return &resp, nil
}

func (s *projectService) UpdateProject(ctx context.Context, projectID string, req dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find project for update", slog.String("project_id", projectID))
		}
		return nil, fmt.Errorf("failed to find project %s: %w", projectID, err)
	}
	if err := applyProjectFields(project, req); err != nil {
		return nil, err
	}
	project.LastUpdatedAt = time.Now().UTC()

	if err := s.projectRepo.UpdateProject(ctx, *project); err != nil {
		s.LogError(ctx, err, "Failed to update project", slog.String("project_id", projectID))
		return nil, fmt.Errorf("failed to update project %s: %w", projectID, err)
	}

	s.LogInfo(ctx, "Project updated", slog.String("project_id", projectID))
	resp := dto.ToProjectResponse(project)
	return &resp, nil
}

func (s *projectService) DeleteProject(ctx context.Context, projectID string) error {
	if err := s.projectRepo.DeleteProject(ctx, projectID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete project", slog.String("project_id", projectID))
		}
		return fmt.Errorf("failed to delete project %s: %w", projectID, err)
	}
	s.LogInfo(ctx, "Project deleted", slog.String("project_id", projectID))
	return nil
}
