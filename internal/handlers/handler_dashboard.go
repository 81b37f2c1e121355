package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/projworks/advance_ledger_app/internal/core/domain"
	portssvc "github.com/projworks/advance_ledger_app/internal/core/ports/services"
	"github.com/projworks/advance_ledger_app/internal/dto"
)

type dashboardHandler struct {
	dashboardService portssvc.DashboardSvc
}

func newDashboardHandler(ds portssvc.DashboardSvc) *dashboardHandler {
	return &dashboardHandler{dashboardService: ds}
}

// registerDashboardRoutes registers the summary and detail routes.
func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvc) {
	h := newDashboardHandler(dashboardService)

	advances := rg.Group("/advances")
	{
		advances.GET("/summary", h.getSummary)
		advances.GET("/details", h.getDetails)
	}
}

// getSummary godoc
// @Summary Monthly advances summary
// @Description Rolls up the remaining balances of open advances by month, debtors and creditors separately.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.SummaryResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /advances/summary [get]
func (h *dashboardHandler) getSummary(c *gin.Context) {
	summary, err := h.dashboardService.GetSummary(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to compute summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// getDetails godoc
// @Summary Monthly advance details
// @Description Lists the advances of one population for a calendar month, settled records included.
// @Tags dashboard
// @Produce json
// @Param type query string true "Population" Enums(debtor, creditor)
// @Param year query int true "Calendar year"
// @Param month query int true "Calendar month (1-12)"
// @Success 200 {object} dto.ListAdvancesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /advances/details [get]
func (h *dashboardHandler) getDetails(c *gin.Context) {
	population := domain.Population(c.Query("type"))
	if !population.IsValid() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "type must be 'debtor' or 'creditor'"})
		return
	}

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 1 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "year must be a positive integer"})
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "month must be an integer between 1 and 12"})
		return
	}

	details, err := h.dashboardService.GetDetails(c.Request.Context(), population, year, month)
	if err != nil {
		respondError(c, err, "Failed to load details")
		return
	}
	c.JSON(http.StatusOK, dto.ListAdvancesResponse{Advances: details})
}
