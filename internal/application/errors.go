package application

import (
	"errors"
	"fmt"
)

// ErrRoomNotFound is returned when a room name resolves to no catalog entry.
var ErrRoomNotFound = errors.New("application: room not found")

// ValidationError captures field level validation issues that callers can surface to users.
type ValidationError struct {
	FieldErrors map[string]string
}

// Error implements the error interface.
func (v *ValidationError) Error() string {
	if v == nil {
		return ""
	}
	return "validation failed"
}

// HasErrors reports whether any field level issues were recorded.
func (v *ValidationError) HasErrors() bool {
	return v != nil && len(v.FieldErrors) > 0
}

// add records a field level validation error.
func (v *ValidationError) add(field, message string) {
	if v.FieldErrors == nil {
		v.FieldErrors = make(map[string]string)
	}
	v.FieldErrors[field] = message
}

// UpstreamError wraps a failed call to the timetable provider. It is not
// locally recoverable; the chat boundary shows a generic failure message and
// operators get the wrapped cause in the logs.
type UpstreamError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s failed: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying provider error.
func (e *UpstreamError) Unwrap() error {
	return e.Err
}
