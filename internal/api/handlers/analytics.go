package handlers

import (
	"net/http"
	"strconv"

	"business-suite-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler handles HTTP requests for analytics aggregates
type AnalyticsHandler struct {
	service service.AnalyticsServiceInterface
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(service service.AnalyticsServiceInterface) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// GetDashboard handles GET /api/v1/analytics/dashboard
// @Summary Organization dashboard
// @Description Get record counts, voucher totals by type and ticket counts by status
// @Tags analytics
// @Accept json
// @Produce json
// @Success 200 {object} service.DashboardResponse "Dashboard aggregates"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /analytics/dashboard [get]
func (h *AnalyticsHandler) GetDashboard(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}

	dashboard, err := h.service.Dashboard(access.OrganizationID)
	if err != nil {
		respondServiceError(c, err, "Failed to build dashboard")
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// GetMonthlyTotals handles GET /api/v1/analytics/vouchers/monthly
// @Summary Monthly voucher totals
// @Description Get approved voucher totals per month for one voucher type
// @Tags analytics
// @Accept json
// @Produce json
// @Param type query string true "Voucher type" Enums(purchase, sales, payment, receipt, manufacturing_journal)
// @Param months query int false "Trailing months window" default(12)
// @Success 200 {object} service.MonthlyTotalsResponse "Monthly totals"
// @Failure 400 {object} map[string]interface{} "Unknown voucher type"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /analytics/vouchers/monthly [get]
func (h *AnalyticsHandler) GetMonthlyTotals(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}

	months, _ := strconv.Atoi(c.DefaultQuery("months", "12"))

	totals, err := h.service.MonthlyTotals(access.OrganizationID, c.Query("type"), months)
	if err != nil {
		respondServiceError(c, err, "Failed to aggregate monthly totals")
		return
	}

	c.JSON(http.StatusOK, totals)
}
