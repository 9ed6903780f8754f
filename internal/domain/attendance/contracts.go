package attendance

import "context"

// AttendanceService defines the operations exposed by the attendance route module.
type AttendanceService interface {
	// Mark records today's status for the employee with the given surrogate ID.
	// It fails with employees.ErrEmployeeNotFound or ErrAlreadyMarked.
	Mark(ctx context.Context, employeeID uint, status Status) (*AttendanceRecord, error)

	// List returns the employee's records matching the query, newest first.
	List(ctx context.Context, query *AttendanceQuery) ([]*AttendanceRecord, error)

	// Summary counts the employee's present and absent days over all time.
	Summary(ctx context.Context, employeeID uint) (*AttendanceSummary, error)
}

// AttendanceRepository defines the interface for AttendanceRecord-related persistence operations
type AttendanceRepository interface {
	// Create stores the record; a second record for the same employee and day yields ErrAlreadyMarked.
	Create(ctx context.Context, record *AttendanceRecord) error
	List(ctx context.Context, query *AttendanceQuery) ([]*AttendanceRecord, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID uint, date string) (*AttendanceRecord, error)
	CountByEmployee(ctx context.Context, employeeID uint) (StatusCounts, error)
	CountByDate(ctx context.Context, date string) (StatusCounts, error)
}
