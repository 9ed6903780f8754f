package employees

import (
	"fmt"
	"strings"
	"time"

	"github.com/hrms-lite/hrms-backend/internal/pkg/validators"
)

// Employee represents a person on the HR register.
// ID is the surrogate key assigned by storage; EmployeeID is the human-facing code.
type Employee struct {
	ID         uint      `json:"id"`
	EmployeeID string    `json:"employee_id" validate:"required,notblank,max=64"`
	FullName   string    `json:"full_name" validate:"required,notblank,max=255"`
	Email      string    `json:"email" validate:"required,email,max=255"`
	Department string    `json:"department" validate:"required,notblank,max=128"`
	CreatedAt  time.Time `json:"created_at"`
}

// Normalize trims every text field and lower-cases the email address.
func (e *Employee) Normalize() {
	e.EmployeeID = strings.TrimSpace(e.EmployeeID)
	e.FullName = strings.TrimSpace(e.FullName)
	e.Email = strings.ToLower(strings.TrimSpace(e.Email))
	e.Department = strings.TrimSpace(e.Department)
}

// Validate for validating Employee struct
func (e *Employee) Validate() error {
	if err := validators.New().Struct(e); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidEmployee, validators.Describe(err))
	}
	return nil
}

// EmployeeQuery filters employee listings. Zero values mean "no filter".
type EmployeeQuery struct {
	Department string `validate:"omitempty,max=128"`
}

// NewEmployeeQuery creates an EmployeeQuery without filters.
func NewEmployeeQuery() *EmployeeQuery {
	return &EmployeeQuery{}
}

// Validate for validating EmployeeQuery struct
func (q *EmployeeQuery) Validate() error {
	if err := validators.New().Struct(q); err != nil {
		return fmt.Errorf("invalid employee query: %s", validators.Describe(err))
	}
	return nil
}
