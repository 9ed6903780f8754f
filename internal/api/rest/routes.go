package rest

import (
	"github.com/hrms-lite/hrms-backend/internal/domain/attendance"
	"github.com/hrms-lite/hrms-backend/internal/domain/dashboard"
	"github.com/hrms-lite/hrms-backend/internal/domain/employees"
	"github.com/hrms-lite/hrms-backend/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes mounts the health check, the metrics endpoint and the
// employee, attendance and dashboard route modules.
func SetupRoutes(r *gin.Engine,
	employeeService employees.EmployeeService,
	attendanceService attendance.AttendanceService,
	dashboardService dashboard.DashboardService) {

	r.GET("/", Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Employee Routes
	employeeHandler := NewEmployeeHandler(employeeService, attendanceService)
	employeeRoutes := r.Group("/employees")
	employeeRoutes.GET("", employeeHandler.List)
	employeeRoutes.POST("", employeeHandler.Create)
	employeeRoutes.GET("/:id", employeeHandler.GetByID)
	employeeRoutes.DELETE("/:id", employeeHandler.DeleteByID)
	employeeRoutes.GET("/:id/attendance-summary", employeeHandler.AttendanceSummary)

	// Attendance Routes
	attendanceHandler := NewAttendanceHandler(attendanceService)
	attendanceRoutes := r.Group("/attendance")
	attendanceRoutes.POST("", attendanceHandler.Mark)
	attendanceRoutes.GET("/:employee_id", attendanceHandler.List)

	// Dashboard Routes
	dashboardHandler := NewDashboardHandler(dashboardService)
	dashboardRoutes := r.Group("/dashboard")
	dashboardRoutes.GET("/summary", dashboardHandler.Summary)
}

// NewEngine assembles a gin engine with recovery, request IDs, access logging,
// metrics, the CORS policy and every route.
func NewEngine(log logger.Logger,
	frontendURL string,
	employeeService employees.EmployeeService,
	attendanceService attendance.AttendanceService,
	dashboardService dashboard.DashboardService) *gin.Engine {

	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), AccessLog(log), Metrics(), CORS(frontendURL))

	SetupRoutes(r, employeeService, attendanceService, dashboardService)
	return r
}
