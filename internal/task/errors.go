package task

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is wrapped by every ValidationError.
	ErrValidation = errors.New("invalid task")

	ErrEmptyText   = &ValidationError{Reason: "task name is empty"}
	ErrTextTooLong = &ValidationError{Reason: fmt.Sprintf("task name must be at most %d characters", MaxTextLength)}
	ErrMissingDate = &ValidationError{Reason: "due date is missing"}
	ErrInvalidDate = &ValidationError{Reason: "due date must be YYYY-MM-DD"}
	ErrPastDate    = &ValidationError{Reason: "due date cannot be in the past"}

	ErrOutOfRange    = errors.New("position out of range")
	ErrInvalidStatus = errors.New("invalid status")
)

// ValidationError describes why Add rejected its input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func (e *ValidationError) Unwrap() error { return ErrValidation }

// IndexError reports a position that does not address an existing task.
type IndexError struct {
	Position int
	Len      int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("position %d out of range [0, %d)", e.Position, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrOutOfRange }

// DecodeError wraps a stored value that could not be decoded as a task list.
// It is handled inside the Adapter and never returned to callers.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return "decoding stored tasks: " + e.Err.Error() }

func (e *DecodeError) Unwrap() error { return e.Err }
