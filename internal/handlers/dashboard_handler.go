package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"finboard/internal/services"
)

// DashboardHandler serves the derived summary and analytics figures.
type DashboardHandler struct {
	dashboardService services.DashboardServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService services.DashboardServicer) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetSummary handles the retrieval of the dashboard summary
// @Summary     Get dashboard summary
// @Description Get the derived summary: total balance, current-month actuals, configured targets, and companion ratios. Recomputed from a full reload on every call.
// @Tags        dashboard
// @Accept      json
// @Produce     json
// @Success     200 {object} services.DashboardSummary "Dashboard summary"
// @Failure     503 {object} ErrorResponse "Store unavailable"
// @Router      /summary [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	summary, err := h.dashboardService.GetSummary(c.Request.Context(), time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// GetAnalytics handles the retrieval of the analytics report
// @Summary     Get analytics report
// @Description Get chart series (category breakdown, monthly trend, daily cash flow) and health figures
// @Tags        dashboard
// @Accept      json
// @Produce     json
// @Success     200 {object} services.AnalyticsReport "Analytics report"
// @Failure     503 {object} ErrorResponse "Store unavailable"
// @Router      /analytics [get]
func (h *DashboardHandler) GetAnalytics(c *gin.Context) {
	report, err := h.dashboardService.GetAnalytics(c.Request.Context(), time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"analytics": report})
}
