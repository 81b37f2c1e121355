package dto

import (
	"github.com/projworks/advance_ledger_app/internal/core/domain"
)

// CreateProjectRequest defines the expected JSON body for creating a project.
type CreateProjectRequest struct {
	ProjectNo       string `json:"projectNo" binding:"required"`
	ProjectName     string `json:"projectName" binding:"required"`
	CustomerName    string `json:"customerName" binding:"required"`
	Owner           string `json:"owner" binding:"required"`
	ProjectDate     string `json:"projectDate" binding:"omitempty,dateonly"` // YYYY-MM-DD, optional
	TargetDate      string `json:"targetDate" binding:"omitempty,dateonly"`  // YYYY-MM-DD, optional
	DispatchMonth   string `json:"dispatchMonth"`
	ProductionStage string `json:"productionStage"`
	Remarks         string `json:"remarks"`
}

// UpdateProjectRequest mirrors CreateProjectRequest for full-row updates.
type UpdateProjectRequest = CreateProjectRequest

// ProjectResponse defines the data returned for a project.
type ProjectResponse struct {
	ProjectID       string `json:"projectID"`
	ProjectNo       string `json:"projectNo"`
	ProjectName     string `json:"projectName"`
	CustomerName    string `json:"customerName"`
	Owner           string `json:"owner"`
	ProjectDate     string `json:"projectDate"`
	TargetDate      string `json:"targetDate"`
	DispatchMonth   string `json:"dispatchMonth"`
	ProductionStage string `json:"productionStage"`
	Remarks         string `json:"remarks"`
}

// ToProjectResponse converts a domain.Project to ProjectResponse DTO.
func ToProjectResponse(p *domain.Project) ProjectResponse {
	resp := ProjectResponse{
		ProjectID:       p.ProjectID,
		ProjectNo:       p.ProjectNo,
		ProjectName:     p.ProjectName,
		CustomerName:    p.CustomerName,
		Owner:           p.Owner,
		DispatchMonth:   p.DispatchMonth,
		ProductionStage: p.ProductionStage,
		Remarks:         p.Remarks,
	}
	if p.ProjectDate != nil {
		resp.ProjectDate = p.ProjectDate.Format(DateLayout)
	}
	if p.TargetDate != nil {
		resp.TargetDate = p.TargetDate.Format(DateLayout)
	}
	return resp
}

// ListProjectsResponse wraps a project listing.
type ListProjectsResponse struct {
	Projects []ProjectResponse `json:"projects"`
}
