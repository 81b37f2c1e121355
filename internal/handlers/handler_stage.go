package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/projworks/advance_ledger_app/internal/core/ports/services"
	"github.com/projworks/advance_ledger_app/internal/dto"
)

type stageHandler struct {
	stageService portssvc.StageSvcFacade
}

func newStageHandler(ss portssvc.StageSvcFacade) *stageHandler {
	return &stageHandler{stageService: ss}
}

// registerStageRoutes registers routes related to production stages.
func registerStageRoutes(rg *gin.RouterGroup, stageService portssvc.StageSvcFacade) {
	h := newStageHandler(stageService)

	stages := rg.Group("/stages")
	{
		stages.GET("", h.listStages)
		stages.POST("", h.createStage)
		stages.PUT("/:id", h.updateStage)
		stages.DELETE("/:id", h.deleteStage)
	}
}

// listStages godoc
// @Summary List production stages
// @Tags stages
// @Produce json
// @Success 200 {object} dto.ListStagesResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /stages [get]
func (h *stageHandler) listStages(c *gin.Context) {
	stages, err := h.stageService.ListStages(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list stages")
		return
	}
	c.JSON(http.StatusOK, dto.ListStagesResponse{Stages: stages})
}

// createStage godoc
// @Summary Create a production stage
// @Tags stages
// @Accept json
// @Produce json
// @Param stage body dto.CreateStageRequest true "Stage details"
// @Success 201 {object} dto.StageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /stages [post]
func (h *stageHandler) createStage(c *gin.Context) {
	var req dto.CreateStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.stageService.CreateStage(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create stage")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// updateStage godoc
// @Summary Update a production stage
// @Tags stages
// @Accept json
// @Produce json
// @Param id path string true "Stage ID"
// @Param stage body dto.UpdateStageRequest true "Stage details"
// @Success 200 {object} dto.StageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /stages/{id} [put]
func (h *stageHandler) updateStage(c *gin.Context) {
	var req dto.UpdateStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.stageService.UpdateStage(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update stage")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// deleteStage godoc
// @Summary Delete a production stage
// @Tags stages
// @Produce json
// @Param id path string true "Stage ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /stages/{id} [delete]
func (h *stageHandler) deleteStage(c *gin.Context) {
	if err := h.stageService.DeleteStage(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete stage")
		return
	}
	c.Status(http.StatusNoContent)
}
