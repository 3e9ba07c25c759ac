package entity

import (
	"errors"
	"fmt"
)

var (
	// Command errors
	ErrInvalidCommand     = errors.New("invalid command")
	ErrMissingArgument    = errors.New("missing argument")
	ErrInvalidIndexFormat = errors.New("task index must be a non-negative integer")
	ErrIndexZero          = errors.New("task index starts at 1")
	ErrIndexOutOfRange    = errors.New("task index out of range")
	ErrAlreadyDone        = errors.New("task is already done")

	// Task errors
	ErrTaskNotFound         = errors.New("task not found")
	ErrEmptyTaskDescription = errors.New("task description cannot be empty")
	ErrInvalidTaskID        = errors.New("invalid task ID")
	ErrInvalidKind          = errors.New("invalid task kind")
	ErrInvalidDate          = errors.New("invalid date")
)

// MissingArgumentError reports a command body that lacks its required marker
type MissingArgumentError struct {
	Marker string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingArgument, e.Marker)
}

// Is lets errors.Is match ErrMissingArgument
func (e *MissingArgumentError) Is(target error) bool {
	return target == ErrMissingArgument
}
