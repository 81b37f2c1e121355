package dto

import "github.com/projworks/advance_ledger_app/internal/core/domain"

// CreateStageRequest defines the expected JSON body for creating a stage.
type CreateStageRequest struct {
	Name    string `json:"name" binding:"required"`
	Remarks string `json:"remarks"`
}

// UpdateStageRequest mirrors CreateStageRequest.
type UpdateStageRequest = CreateStageRequest

// StageResponse defines the data returned for a production stage.
type StageResponse struct {
	StageID string `json:"stageID"`
	Name    string `json:"name"`
	Remarks string `json:"remarks"`
}

// ToStageResponse converts a domain.Stage to StageResponse DTO.
func ToStageResponse(s *domain.Stage) StageResponse {
	return StageResponse{
		StageID: s.StageID,
		Name:    s.Name,
		Remarks: s.Remarks,
	}
}

// ListStagesResponse wraps a stage listing.
type ListStagesResponse struct {
	Stages []StageResponse `json:"stages"`
}
