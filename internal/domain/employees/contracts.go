package employees

import "context"

// EmployeeService defines the operations exposed by the employee route module.
type EmployeeService interface {
	// Create registers a new employee after normalizing and validating it.
	// It returns ErrInvalidEmployee or ErrDuplicateEmployee (wrapped) on rejection.
	Create(ctx context.Context, employee *Employee) (*Employee, error)

	// List returns employees ordered by ID, filtered by the query when set.
	List(ctx context.Context, query *EmployeeQuery) ([]*Employee, error)

	// GetByID returns the employee with the given surrogate ID or ErrEmployeeNotFound.
	GetByID(ctx context.Context, id uint) (*Employee, error)

	// DeleteByID removes the employee and all of their attendance records.
	DeleteByID(ctx context.Context, id uint) error
}

// EmployeeRepository defines the interface for Employee-related persistence operations
type EmployeeRepository interface {
	Create(ctx context.Context, employee *Employee) error
	List(ctx context.Context, query *EmployeeQuery) ([]*Employee, error)
	GetByID(ctx context.Context, id uint) (*Employee, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (*Employee, error)
	GetByEmail(ctx context.Context, email string) (*Employee, error)
	DeleteByID(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}
