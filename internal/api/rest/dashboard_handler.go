package rest

import (
	"net/http"

	"github.com/hrms-lite/hrms-backend/internal/domain/dashboard"

	"github.com/gin-gonic/gin"
)

// DashboardHandler defines the interface for handling dashboard operations
type DashboardHandler interface {
	Summary(ctx *gin.Context)
}

type dashboardHandler struct {
	dashboardService dashboard.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandler{
		dashboardService: dashboardService,
	}
}

// Summary handles the GET request for today's organisation-wide attendance figures
// @Summary Get today's attendance summary
// @Tags Dashboard
// @Produce json
// @Success 200 {object} dashboard.DashboardSummary
// @Router /dashboard/summary [get]
func (handler *dashboardHandler) Summary(ctx *gin.Context) {
	summary, err := handler.dashboardService.Summary(ctx)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, summary)
}
