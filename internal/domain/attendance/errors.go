package attendance

import "errors"

var (
	// ErrAlreadyMarked is returned when the employee already has a record for the day.
	ErrAlreadyMarked = errors.New("attendance already marked for today")

	// ErrInvalidRecord wraps field validation failures of a record.
	ErrInvalidRecord = errors.New("invalid attendance record")

	// ErrInvalidQuery wraps malformed or contradictory query filters.
	ErrInvalidQuery = errors.New("invalid attendance query")

	// ErrRecordNotFound is returned when no record matches the lookup.
	ErrRecordNotFound = errors.New("attendance record not found")
)
