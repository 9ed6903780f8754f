package rest

import (
	"fmt"
	"time"

	"github.com/hrms-lite/hrms-backend/internal/domain/attendance"
	"github.com/hrms-lite/hrms-backend/internal/domain/employees"
	"github.com/hrms-lite/hrms-backend/internal/pkg/validators"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// HealthResponse is returned by the health check.
type HealthResponse struct {
	Status string `json:"status"`
}

// CreateEmployeeRequest is the payload of POST /employees
type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,notblank,max=64"`
	FullName   string `json:"full_name" validate:"required,notblank,max=255"`
	Email      string `json:"email" validate:"required,email,max=255"`
	Department string `json:"department" validate:"required,notblank,max=128"`
}

// Normalize applies the employee normalization rules to the raw payload.
func (r *CreateEmployeeRequest) Normalize() {
	employee := r.ToDomain()
	employee.Normalize()

	r.EmployeeID = employee.EmployeeID
	r.FullName = employee.FullName
	r.Email = employee.Email
	r.Department = employee.Department
}

// Validate normalizes the request in place, then checks it
func (r *CreateEmployeeRequest) Validate() error {
	r.Normalize()
	if err := validators.New().Struct(r); err != nil {
		return fmt.Errorf("%s", validators.Describe(err))
	}
	return nil
}

// ToDomain converts the request into an unsaved employee.
func (r *CreateEmployeeRequest) ToDomain() *employees.Employee {
	return &employees.Employee{
		EmployeeID: r.EmployeeID,
		FullName:   r.FullName,
		Email:      r.Email,
		Department: r.Department,
	}
}

// MarkAttendanceRequest is the payload of POST /attendance.
// EmployeeID is the employee's surrogate id, not the human-facing code.
type MarkAttendanceRequest struct {
	EmployeeID uint   `json:"employee_id" validate:"required"`
	Status     string `json:"status" validate:"required,oneof=Present Absent"`
}

// Validate for validating MarkAttendanceRequest struct
func (r *MarkAttendanceRequest) Validate() error {
	if err := validators.New().Struct(r); err != nil {
		return fmt.Errorf("%s", validators.Describe(err))
	}
	return nil
}

// EmployeeResponse represents an employee in API responses
type EmployeeResponse struct {
	ID         uint      `json:"id"`
	EmployeeID string    `json:"employee_id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
}

func newEmployeeResponse(e *employees.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		FullName:   e.FullName,
		Email:      e.Email,
		Department: e.Department,
		CreatedAt:  e.CreatedAt,
	}
}

// AttendanceRecordResponse represents an attendance mark in API responses
type AttendanceRecordResponse struct {
	ID         uint      `json:"id"`
	EmployeeID uint      `json:"employee_id"`
	Date       string    `json:"date"`
	MarkedAt   time.Time `json:"marked_at"`
	Status     string    `json:"status"`
}

func newAttendanceRecordResponse(r *attendance.AttendanceRecord) AttendanceRecordResponse {
	return AttendanceRecordResponse{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		Date:       r.Date,
		MarkedAt:   r.MarkedAt,
		Status:     string(r.Status),
	}
}
