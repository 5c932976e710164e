package domain

import (
	"errors"
	"fmt"
)

// ErrorCode represents a semantic classification shared across transport layers.
type ErrorCode string

const (
	ErrCodeNotFound           ErrorCode = "NOT_FOUND"
	ErrCodeInvalid            ErrorCode = "INVALID"
	ErrCodeInvalidOperation   ErrorCode = "INVALID_OPERATION"
	ErrCodeStorageUnavailable ErrorCode = "STORAGE_UNAVAILABLE"
	ErrCodeInternal           ErrorCode = "INTERNAL"
)

// Error represents a domain-level error.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewError builds a domain error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError wraps an existing error with a domain classification.
func WrapError(code ErrorCode, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common domain errors.
var (
	ErrListNotFound     = NewError(ErrCodeNotFound, "list not found")
	ErrLabelNotFound    = NewError(ErrCodeNotFound, "label not found")
	ErrTaskNotFound     = NewError(ErrCodeNotFound, "task not found")
	ErrSubtaskNotFound  = NewError(ErrCodeNotFound, "subtask not found")
	ErrReminderNotFound = NewError(ErrCodeNotFound, "reminder not found")

	ErrNameRequired      = NewError(ErrCodeInvalid, "name must not be blank")
	ErrInvalidPriority   = NewError(ErrCodeInvalid, "unknown priority")
	ErrInvalidRecurrence = NewError(ErrCodeInvalid, "unknown recurrence type")
	ErrInvalidClock      = NewError(ErrCodeInvalid, "time must be in HH:MM form")

	ErrDefaultListProtected = NewError(ErrCodeInvalidOperation, "cannot delete the default list")
	ErrSubtaskNesting       = NewError(ErrCodeInvalidOperation, "subtasks cannot have their own subtasks")
)

// IsDomainError helps checking error codes.
func IsDomainError(err error, code ErrorCode) bool {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code == code
	}
	return false
}
