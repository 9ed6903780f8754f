package app

import "time"

// Clock supplies the current instant in the location that defines "today".
type Clock interface {
	Now() time.Time
}

type systemClock struct {
	location *time.Location
}

// NewSystemClock returns a Clock backed by time.Now in the given location.
// A nil location means UTC.
func NewSystemClock(location *time.Location) Clock {
	if location == nil {
		location = time.UTC
	}
	return &systemClock{location: location}
}

func (c *systemClock) Now() time.Time {
	return time.Now().In(c.location)
}

// FixedClock always reports the same instant.
type FixedClock struct {
	Instant time.Time
}

func (c FixedClock) Now() time.Time {
	return c.Instant
}
