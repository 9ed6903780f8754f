// Package attendance defines daily attendance records, the queries used to
// read them back and the contracts of the attendance route module.
package attendance

import (
	"fmt"
	"time"

	"github.com/hrms-lite/hrms-backend/internal/pkg/validators"
)

// Status is the outcome recorded for an employee on a given day
type Status string

// Supported attendance statuses
const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
)

// Valid reports whether s is one of the supported statuses.
func (s Status) Valid() bool {
	return s == StatusPresent || s == StatusAbsent
}

// AttendanceRecord is a single mark for one employee on one calendar day.
// Date is the YYYY-MM-DD day in the configured timezone; MarkedAt is the instant of marking.
type AttendanceRecord struct {
	ID         uint      `json:"id"`
	EmployeeID uint      `json:"employee_id" validate:"required"`
	Date       string    `json:"date" validate:"required,isodate"`
	MarkedAt   time.Time `json:"marked_at" validate:"required"`
	Status     Status    `json:"status" validate:"required,oneof=Present Absent"`
}

// Validate for validating AttendanceRecord struct
func (r *AttendanceRecord) Validate() error {
	if err := validators.New().Struct(r); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidRecord, validators.Describe(err))
	}
	return nil
}

// AttendanceQuery selects the records of one employee.
// Date picks a single day; FromDate and ToDate are inclusive bounds and may be used alone.
type AttendanceQuery struct {
	EmployeeID uint   `validate:"required"`
	Date       string `validate:"omitempty,isodate"`
	FromDate   string `validate:"omitempty,isodate"`
	ToDate     string `validate:"omitempty,isodate"`
}

// NewAttendanceQuery creates an unfiltered query for the given employee.
func NewAttendanceQuery(employeeID uint) *AttendanceQuery {
	return &AttendanceQuery{EmployeeID: employeeID}
}

// Validate for validating AttendanceQuery struct
func (q *AttendanceQuery) Validate() error {
	if err := validators.New().Struct(q); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidQuery, validators.Describe(err))
	}

	if q.Date != "" && (q.FromDate != "" || q.ToDate != "") {
		return fmt.Errorf("%w: date cannot be combined with from_date or to_date", ErrInvalidQuery)
	}

	// ISO dates order lexically.
	if q.FromDate != "" && q.ToDate != "" && q.FromDate > q.ToDate {
		return fmt.Errorf("%w: from_date must not be after to_date", ErrInvalidQuery)
	}

	return nil
}

// AttendanceSummary aggregates every record of one employee.
type AttendanceSummary struct {
	EmployeeID  uint  `json:"employee_id"`
	PresentDays int64 `json:"present_days"`
	AbsentDays  int64 `json:"absent_days"`
	TotalDays   int64 `json:"total_days"`
}

// StatusCounts maps each status to a number of records.
type StatusCounts map[Status]int64
