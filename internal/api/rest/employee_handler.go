package rest

import (
	"net/http"

	"github.com/hrms-lite/hrms-backend/internal/domain/attendance"
	"github.com/hrms-lite/hrms-backend/internal/domain/employees"

	"github.com/gin-gonic/gin"
)

// EmployeeHandler defines the interface for handling employee-related operations
type EmployeeHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	AttendanceSummary(ctx *gin.Context)
}

type employeeHandler struct {
	employeeService   employees.EmployeeService
	attendanceService attendance.AttendanceService
}

// NewEmployeeHandler creates a new EmployeeHandler
func NewEmployeeHandler(employeeService employees.EmployeeService, attendanceService attendance.AttendanceService) EmployeeHandler {
	return &employeeHandler{
		employeeService:   employeeService,
		attendanceService: attendanceService,
	}
}

// Create handles the POST request to register an employee
// @Summary Register an employee
// @Tags Employee
// @Accept json
// @Produce json
// @Param requestBody body CreateEmployeeRequest true "Employee Data"
// @Success 201 {object} EmployeeResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /employees [post]
func (handler *employeeHandler) Create(ctx *gin.Context) {
	var request CreateEmployeeRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondError(ctx, http.StatusUnprocessableEntity, "invalid employee data: "+err.Error())
		return
	}

	if err := request.Validate(); err != nil {
		respondError(ctx, http.StatusUnprocessableEntity, "validation failed: "+err.Error())
		return
	}

	employee, err := handler.employeeService.Create(ctx, request.ToDomain())
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newEmployeeResponse(employee))
}

// List handles the GET request to list employees
// @Summary List employees
// @Tags Employee
// @Produce json
// @Param department query string false "Department"
// @Success 200 {array} EmployeeResponse
// @Failure 400 {object} ErrorResponse
// @Router /employees [get]
func (handler *employeeHandler) List(ctx *gin.Context) {
	query := employees.NewEmployeeQuery()
	query.Department = ctx.Query("department")

	if err := query.Validate(); err != nil {
		respondError(ctx, http.StatusBadRequest, err.Error())
		return
	}

	list, err := handler.employeeService.List(ctx, query)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	listResponse := make([]EmployeeResponse, 0, len(list))
	for _, employee := range list {
		listResponse = append(listResponse, newEmployeeResponse(employee))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to fetch one employee
// @Summary Get an employee by ID
// @Tags Employee
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} EmployeeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /employees/{id} [get]
func (handler *employeeHandler) GetByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		respondError(ctx, http.StatusBadRequest, detailInvalidEmployeeID)
		return
	}

	employee, err := handler.employeeService.GetByID(ctx, id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newEmployeeResponse(employee))
}

// DeleteByID handles the DELETE request to remove an employee and their attendance
// @Summary Delete an employee by ID
// @Tags Employee
// @Param id path int true "Employee ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /employees/{id} [delete]
func (handler *employeeHandler) DeleteByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		respondError(ctx, http.StatusBadRequest, detailInvalidEmployeeID)
		return
	}

	if err := handler.employeeService.DeleteByID(ctx, id); err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// AttendanceSummary handles the GET request for an employee's attendance totals
// @Summary Get attendance totals of an employee
// @Tags Employee
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} attendance.AttendanceSummary
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /employees/{id}/attendance-summary [get]
func (handler *employeeHandler) AttendanceSummary(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		respondError(ctx, http.StatusBadRequest, detailInvalidEmployeeID)
		return
	}

	summary, err := handler.attendanceService.Summary(ctx, id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, summary)
}
