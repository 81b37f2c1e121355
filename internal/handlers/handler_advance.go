package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/projworks/advance_ledger_app/internal/apperrors"
	"github.com/projworks/advance_ledger_app/internal/core/domain"
	portssvc "github.com/projworks/advance_ledger_app/internal/core/ports/services"
	"github.com/projworks/advance_ledger_app/internal/dto"
	"github.com/projworks/advance_ledger_app/internal/middleware"
)

// advanceHandler serves one population's routes. The debtor and creditor
// groups share this handler, parameterized by population.
type advanceHandler struct {
	advanceService portssvc.AdvanceSvcFacade
	population     domain.Population
}

func newAdvanceHandler(as portssvc.AdvanceSvcFacade, population domain.Population) *advanceHandler {
	return &advanceHandler{
		advanceService: as,
		population:     population,
	}
}

// RegisterAdvanceRoutes registers the debtor and creditor route groups.
func RegisterAdvanceRoutes(rg *gin.RouterGroup, advanceService portssvc.AdvanceSvcFacade) {
	for path, population := range map[string]domain.Population{
		"/debtors":   domain.Debtor,
		"/creditors": domain.Creditor,
	} {
		h := newAdvanceHandler(advanceService, population)
		group := rg.Group(path)
		{
			group.GET("", h.listAdvances)
			group.POST("", h.createAdvance)
			group.PUT("/:id", h.updateAdvance)
			group.DELETE("/:id", h.deleteAdvance)
			group.POST("/:id/settlements", h.settleAdvance)
			group.DELETE("/:id/settlements/:settlementID", h.unsettleAdvance)
		}
	}
}

// respondError maps service errors onto HTTP statuses.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrIntegrity):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	default:
		logger.Error("Request failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}

// listAdvances godoc
// @Summary List advances
// @Description Lists every advance of the population with computed remaining balance and settled state.
// @Tags advances
// @Produce json
// @Success 200 {object} dto.ListAdvancesResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /debtors [get]
func (h *advanceHandler) listAdvances(c *gin.Context) {
	advances, err := h.advanceService.ListAdvances(c.Request.Context(), h.population)
	if err != nil {
		respondError(c, err, "Failed to list advances")
		return
	}
	c.JSON(http.StatusOK, dto.ListAdvancesResponse{Advances: advances})
}

// createAdvance godoc
// @Summary Create an advance
// @Description Records a new advance for the population.
// @Tags advances
// @Accept json
// @Produce json
// @Param advance body dto.CreateAdvanceRequest true "Advance details"
// @Success 201 {object} dto.AdvanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /debtors [post]
func (h *advanceHandler) createAdvance(c *gin.Context) {
	var req dto.CreateAdvanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.advanceService.CreateAdvance(c.Request.Context(), h.population, req)
	if err != nil {
		respondError(c, err, "Failed to create advance")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// updateAdvance godoc
// @Summary Update an advance
// @Description Edits the structural fields of an advance. Settlements are untouched.
// @Tags advances
// @Accept json
// @Produce json
// @Param id path string true "Advance ID"
// @Param advance body dto.UpdateAdvanceRequest true "Advance details"
// @Success 200 {object} dto.AdvanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /debtors/{id} [put]
func (h *advanceHandler) updateAdvance(c *gin.Context) {
	var req dto.UpdateAdvanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.advanceService.UpdateAdvance(c.Request.Context(), h.population, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update advance")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// deleteAdvance godoc
// @Summary Delete an advance
// @Description Removes an advance and its settlements.
// @Tags advances
// @Produce json
// @Param id path string true "Advance ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /debtors/{id} [delete]
func (h *advanceHandler) deleteAdvance(c *gin.Context) {
	if err := h.advanceService.DeleteAdvance(c.Request.Context(), h.population, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete advance")
		return
	}
	c.Status(http.StatusNoContent)
}

// settleAdvance godoc
// @Summary Record a settlement
// @Description Appends a settlement against an advance. The amount must stay within the remaining balance.
// @Tags advances
// @Accept json
// @Produce json
// @Param id path string true "Advance ID"
// @Param settlement body dto.SettleRequest true "Settlement details"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /debtors/{id}/settlements [post]
func (h *advanceHandler) settleAdvance(c *gin.Context) {
	var req dto.SettleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	if err := h.advanceService.SettleAdvance(c.Request.Context(), h.population, c.Param("id"), req); err != nil {
		respondError(c, err, "Failed to record settlement")
		return
	}
	c.Status(http.StatusNoContent)
}

// unsettleAdvance godoc
// @Summary Remove a settlement
// @Description Deletes one settlement from an advance, restoring its amount to the remaining balance.
// @Tags advances
// @Produce json
// @Param id path string true "Advance ID"
// @Param settlementID path string true "Settlement ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /debtors/{id}/settlements/{settlementID} [delete]
func (h *advanceHandler) unsettleAdvance(c *gin.Context) {
	if err := h.advanceService.UnsettleAdvance(c.Request.Context(), h.population, c.Param("id"), c.Param("settlementID")); err != nil {
		respondError(c, err, "Failed to remove settlement")
		return
	}
	c.Status(http.StatusNoContent)
}
