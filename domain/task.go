package domain

import "time"

// Priority orders tasks within views. Rank runs high → none.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
	PriorityNone   Priority = "none"
)

// Rank returns the sort rank for a priority; unknown values sort last.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

// Valid reports whether p is one of the known priority values.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow, PriorityNone:
		return true
	}
	return false
}

// Recurrence describes how a task repeats. Custom carries a free-form
// pattern alongside.
type Recurrence string

const (
	RecurrenceNone     Recurrence = "none"
	RecurrenceDaily    Recurrence = "daily"
	RecurrenceWeekly   Recurrence = "weekly"
	RecurrenceWeekdays Recurrence = "weekdays"
	RecurrenceMonthly  Recurrence = "monthly"
	RecurrenceYearly   Recurrence = "yearly"
	RecurrenceCustom   Recurrence = "custom"
)

// Valid reports whether r is one of the known recurrence types.
func (r Recurrence) Valid() bool {
	switch r {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceWeekdays,
		RecurrenceMonthly, RecurrenceYearly, RecurrenceCustom:
		return true
	}
	return false
}

// Task is the central planner entity. A task with a non-nil ParentTaskID
// is a subtask: it is excluded from top-level views and fetched only as a
// relation of its parent. Position gives a stable ascending order among
// siblings in the same list.
type Task struct {
	ID                string     `json:"id"`
	ListID            string     `json:"list_id"`
	Name              string     `json:"name"`
	Description       *string    `json:"description,omitempty"`
	Date              *time.Time `json:"date,omitempty"`
	Deadline          *time.Time `json:"deadline,omitempty"`
	EstimateMinutes   *int       `json:"estimate_minutes,omitempty"`
	ActualMinutes     *int       `json:"actual_minutes,omitempty"`
	Priority          Priority   `json:"priority"`
	Completed         bool       `json:"completed"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
	Recurrence        Recurrence `json:"recurrence"`
	RecurrencePattern *string    `json:"recurrence_pattern,omitempty"`
	ParentTaskID      *string    `json:"parent_task_id,omitempty"`
	Position          int        `json:"position"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// IsSubtask reports whether the task belongs to a parent task.
func (t *Task) IsSubtask() bool {
	return t != nil && t.ParentTaskID != nil
}

// TaskWithRelations is a task enriched for display: labels ordered by
// name, subtasks ordered by creation time.
type TaskWithRelations struct {
	Task
	Labels   []Label `json:"labels"`
	Subtasks []Task  `json:"subtasks"`
}

// TaskDetails is the full read model for a single task.
type TaskDetails struct {
	TaskWithRelations
	Reminders   []Reminder      `json:"reminders"`
	Attachments []Attachment    `json:"attachments"`
	Activity    []ActivityEntry `json:"activity"`
}
