package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthStatus is the fixed status reported by the health check.
const HealthStatus = "HRMS Lite Backend Running"

// Health handles GET /. It has no inputs and always succeeds.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router / [get]
func Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, HealthResponse{Status: HealthStatus})
}
