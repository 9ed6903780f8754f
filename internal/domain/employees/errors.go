package employees

import (
	"errors"
	"fmt"
)

var (
	// ErrEmployeeNotFound is returned when no employee matches the requested key.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrInvalidEmployee wraps field validation failures.
	ErrInvalidEmployee = errors.New("invalid employee")

	// ErrDuplicateEmployee is returned when a uniqueness constraint would be violated.
	ErrDuplicateEmployee = errors.New("employee already exists")

	// ErrDuplicateEmployeeID narrows ErrDuplicateEmployee to the employee code.
	ErrDuplicateEmployeeID = fmt.Errorf("%w: employee_id is already registered", ErrDuplicateEmployee)

	// ErrDuplicateEmail narrows ErrDuplicateEmployee to the email address.
	ErrDuplicateEmail = fmt.Errorf("%w: email is already registered", ErrDuplicateEmployee)
)
