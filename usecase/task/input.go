package task

import (
	"time"

	"github.com/planly/backend/domain"
)

// Field carries an optional update value. Set distinguishes "change to
// Value" (including a nil Value, which clears the column) from "leave
// untouched".
type Field[T any] struct {
	Set   bool
	Value T
}

// Change wraps a value into a set Field.
func Change[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: v}
}

// CreateTaskInput carries everything createTask accepts. Estimate is a
// wall-clock "HH:MM" string normalized to minutes before storage.
type CreateTaskInput struct {
	Name              string
	Description       *string
	ListID            string
	NoList            bool
	Date              *time.Time
	Deadline          *time.Time
	Priority          domain.Priority
	Estimate          string
	Recurrence        domain.Recurrence
	RecurrencePattern *string
	Labels            []string
}

// UpdateTaskInput is a partial update: only set fields are applied.
// Position changes are applied but never logged.
type UpdateTaskInput struct {
	Name              Field[string]
	Description       Field[*string]
	ListID            Field[string]
	Date              Field[*time.Time]
	Deadline          Field[*time.Time]
	Priority          Field[domain.Priority]
	Estimate          Field[*string]
	ActualTime        Field[*string]
	Recurrence        Field[domain.Recurrence]
	RecurrencePattern Field[*string]
	Position          Field[int]
	Completed         Field[bool]
}
