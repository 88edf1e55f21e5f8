package availability

import "fmt"

// AvailabilityError is a caller-facing error with a stable code.
type AvailabilityError struct {
	Code    string
	Message string
}

func (e *AvailabilityError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrInvalidDuration rejects a service whose duration is zero or negative
// before any slot generation happens.
var ErrInvalidDuration = &AvailabilityError{
	Code:    "invalidServiceDuration",
	Message: "service duration must be greater than zero",
}
