package task

import (
	"strings"
	"time"

	"github.com/planly/backend/domain"
)

// applyUpdate copies the task, applies every set field that actually
// differs, and records the loggable transitions. dirty reports whether
// anything changed at all; the changes map excludes position, which is
// reordering noise rather than auditable history.
func applyUpdate(current domain.Task, in UpdateTaskInput, now time.Time) (domain.Task, map[string]domain.FieldChange, bool, error) {
	updated := current
	changes := make(map[string]domain.FieldChange)
	dirty := false

	if in.Name.Set {
		name := strings.TrimSpace(in.Name.Value)
		if name == "" {
			return current, nil, false, domain.ErrNameRequired
		}
		if name != current.Name {
			changes["name"] = domain.FieldChange{Old: current.Name, New: name}
			updated.Name = name
			dirty = true
		}
	}

	if in.Description.Set && !eqStrPtr(in.Description.Value, current.Description) {
		changes["description"] = domain.FieldChange{Old: strVal(current.Description), New: strVal(in.Description.Value)}
		updated.Description = in.Description.Value
		dirty = true
	}

	if in.ListID.Set && in.ListID.Value != current.ListID {
		changes["list_id"] = domain.FieldChange{Old: current.ListID, New: in.ListID.Value}
		updated.ListID = in.ListID.Value
		dirty = true
	}

	if in.Date.Set && !eqTimePtr(in.Date.Value, current.Date) {
		changes["date"] = domain.FieldChange{Old: current.Date, New: in.Date.Value}
		updated.Date = in.Date.Value
		dirty = true
	}

	if in.Deadline.Set && !eqTimePtr(in.Deadline.Value, current.Deadline) {
		changes["deadline"] = domain.FieldChange{Old: current.Deadline, New: in.Deadline.Value}
		updated.Deadline = in.Deadline.Value
		dirty = true
	}

	if in.Priority.Set {
		if !in.Priority.Value.Valid() {
			return current, nil, false, domain.ErrInvalidPriority
		}
		if in.Priority.Value != current.Priority {
			changes["priority"] = domain.FieldChange{Old: current.Priority, New: in.Priority.Value}
			updated.Priority = in.Priority.Value
			dirty = true
		}
	}

	if in.Estimate.Set {
		minutes, err := clockPtr(in.Estimate.Value)
		if err != nil {
			return current, nil, false, err
		}
		if !eqIntPtr(minutes, current.EstimateMinutes) {
			changes["estimate"] = domain.FieldChange{Old: intVal(current.EstimateMinutes), New: intVal(minutes)}
			updated.EstimateMinutes = minutes
			dirty = true
		}
	}

	if in.ActualTime.Set {
		minutes, err := clockPtr(in.ActualTime.Value)
		if err != nil {
			return current, nil, false, err
		}
		if !eqIntPtr(minutes, current.ActualMinutes) {
			changes["actual_time"] = domain.FieldChange{Old: intVal(current.ActualMinutes), New: intVal(minutes)}
			updated.ActualMinutes = minutes
			dirty = true
		}
	}

	if in.Recurrence.Set {
		if !in.Recurrence.Value.Valid() {
			return current, nil, false, domain.ErrInvalidRecurrence
		}
		if in.Recurrence.Value != current.Recurrence {
			changes["recurrence"] = domain.FieldChange{Old: current.Recurrence, New: in.Recurrence.Value}
			updated.Recurrence = in.Recurrence.Value
			dirty = true
		}
	}

	if in.RecurrencePattern.Set && !eqStrPtr(in.RecurrencePattern.Value, current.RecurrencePattern) {
		changes["recurrence_pattern"] = domain.FieldChange{Old: strVal(current.RecurrencePattern), New: strVal(in.RecurrencePattern.Value)}
		updated.RecurrencePattern = in.RecurrencePattern.Value
		dirty = true
	}

	if in.Position.Set && in.Position.Value != current.Position {
		updated.Position = in.Position.Value
		dirty = true
	}

	if in.Completed.Set && in.Completed.Value != current.Completed {
		changes["completed"] = domain.FieldChange{Old: current.Completed, New: in.Completed.Value}
		updated.Completed = in.Completed.Value
		if in.Completed.Value {
			completedAt := now
			updated.CompletedAt = &completedAt
		} else {
			updated.CompletedAt = nil
		}
		dirty = true
	}

	return updated, changes, dirty, nil
}

func clockPtr(clock *string) (*int, error) {
	if clock == nil {
		return nil, nil
	}
	minutes, err := domain.ParseClock(*clock)
	if err != nil {
		return nil, err
	}
	return &minutes, nil
}

func eqStrPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func eqIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func eqTimePtr(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.UnixMilli() == b.UnixMilli()
}

func strVal(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func intVal(n *int) any {
	if n == nil {
		return nil
	}
	return *n
}
