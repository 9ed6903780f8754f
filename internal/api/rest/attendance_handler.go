package rest

import (
	"net/http"

	"github.com/hrms-lite/hrms-backend/internal/domain/attendance"

	"github.com/gin-gonic/gin"
)

// AttendanceHandler defines the interface for handling attendance-related operations
type AttendanceHandler interface {
	Mark(ctx *gin.Context)
	List(ctx *gin.Context)
}

type attendanceHandler struct {
	attendanceService attendance.AttendanceService
}

// NewAttendanceHandler creates a new AttendanceHandler
func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandler{
		attendanceService: attendanceService,
	}
}

// Mark handles the POST request to record today's attendance of an employee
// @Summary Mark attendance for today
// @Tags Attendance
// @Accept json
// @Produce json
// @Param requestBody body MarkAttendanceRequest true "Attendance Data"
// @Success 201 {object} AttendanceRecordResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /attendance [post]
func (handler *attendanceHandler) Mark(ctx *gin.Context) {
	var request MarkAttendanceRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondError(ctx, http.StatusUnprocessableEntity, "invalid attendance data: "+err.Error())
		return
	}

	if err := request.Validate(); err != nil {
		respondError(ctx, http.StatusUnprocessableEntity, "validation failed: "+err.Error())
		return
	}

	record, err := handler.attendanceService.Mark(ctx, request.EmployeeID, attendance.Status(request.Status))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newAttendanceRecordResponse(record))
}

// List handles the GET request to list an employee's attendance records
// @Summary List attendance records of an employee
// @Description Records are ordered newest first. Use either date or a from_date/to_date range.
// @Tags Attendance
// @Produce json
// @Param employee_id path int true "Employee ID"
// @Param date query string false "Single day (YYYY-MM-DD)"
// @Param from_date query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param to_date query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Success 200 {array} AttendanceRecordResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /attendance/{employee_id} [get]
func (handler *attendanceHandler) List(ctx *gin.Context) {
	employeeID, ok := parseID(ctx, "employee_id")
	if !ok {
		respondError(ctx, http.StatusBadRequest, detailInvalidEmployeeID)
		return
	}

	query := attendance.NewAttendanceQuery(employeeID)
	query.Date = ctx.Query("date")
	query.FromDate = ctx.Query("from_date")
	query.ToDate = ctx.Query("to_date")

	records, err := handler.attendanceService.List(ctx, query)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	listResponse := make([]AttendanceRecordResponse, 0, len(records))
	for _, record := range records {
		listResponse = append(listResponse, newAttendanceRecordResponse(record))
	}

	ctx.JSON(http.StatusOK, listResponse)
}
