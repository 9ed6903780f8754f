package rest

import (
	"errors"
	"net/http"

	"github.com/hrms-lite/hrms-backend/internal/domain/attendance"
	"github.com/hrms-lite/hrms-backend/internal/domain/employees"

	"github.com/gin-gonic/gin"
)

// Messages returned to clients in ErrorResponse.Detail.
const (
	detailEmployeeNotFound  = "Employee not found"
	detailDuplicateID       = "Employee with this employee_id already exists"
	detailDuplicateEmail    = "Employee with this email already exists"
	detailDuplicateEmployee = "Employee already exists"
	detailAlreadyMarked     = "Attendance already marked for today"
	detailInvalidEmployeeID = "Invalid employee id"
	detailInternal          = "Internal server error"
)

func respondError(ctx *gin.Context, status int, detail string) {
	ctx.AbortWithStatusJSON(status, ErrorResponse{Detail: detail})
}

// respondServiceError maps domain errors to status codes. Unknown errors are
// attached to the context for the access log and reported as 500.
func respondServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, employees.ErrEmployeeNotFound):
		respondError(ctx, http.StatusNotFound, detailEmployeeNotFound)
	case errors.Is(err, employees.ErrDuplicateEmployeeID):
		respondError(ctx, http.StatusConflict, detailDuplicateID)
	case errors.Is(err, employees.ErrDuplicateEmail):
		respondError(ctx, http.StatusConflict, detailDuplicateEmail)
	case errors.Is(err, employees.ErrDuplicateEmployee):
		respondError(ctx, http.StatusConflict, detailDuplicateEmployee)
	case errors.Is(err, attendance.ErrAlreadyMarked):
		respondError(ctx, http.StatusConflict, detailAlreadyMarked)
	case errors.Is(err, attendance.ErrInvalidQuery):
		respondError(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, employees.ErrInvalidEmployee), errors.Is(err, attendance.ErrInvalidRecord):
		respondError(ctx, http.StatusUnprocessableEntity, err.Error())
	default:
		_ = ctx.Error(err)
		respondError(ctx, http.StatusInternalServerError, detailInternal)
	}
}
