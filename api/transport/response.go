package transport

import (
	"encoding/json"
	"time"

	"github.com/planly/backend/domain"
)

// Envelope is the standard API response wrapper used for both success and error payloads.
type Envelope struct {
	Status string      `json:"status"`
	Code   string      `json:"code,omitempty"`
	Data   interface{} `json:"data,omitempty"`
	Error  interface{} `json:"error,omitempty"`
	Meta   interface{} `json:"meta,omitempty"`
}

// NewSuccess returns a success envelope.
func NewSuccess(data interface{}, meta interface{}) Envelope {
	return Envelope{
		Status: "success",
		Data:   data,
		Meta:   meta,
	}
}

// NewError returns an error envelope with optional metadata.
func NewError(code string, err interface{}, meta interface{}) Envelope {
	return Envelope{
		Status: "error",
		Code:   code,
		Error:  err,
		Meta:   meta,
	}
}

// String returns the JSON representation (best-effort) for logging purposes.
func (e Envelope) String() string {
	out, err := json.Marshal(e)
	if err != nil {
		return "{}"
	}
	return string(out)
}

// TaskResponse is the wire shape of a task. Durations stored as minutes
// are rendered back in clock notation.
type TaskResponse struct {
	ID                string     `json:"id"`
	ListID            string     `json:"list_id"`
	Name              string     `json:"name"`
	Description       *string    `json:"description"`
	Date              *time.Time `json:"date"`
	Deadline          *time.Time `json:"deadline"`
	Estimate          *string    `json:"estimate"`
	ActualTime        *string    `json:"actual_time"`
	Priority          string     `json:"priority"`
	Completed         bool       `json:"completed"`
	CompletedAt       *time.Time `json:"completed_at"`
	Recurrence        string     `json:"recurrence"`
	RecurrencePattern *string    `json:"recurrence_pattern"`
	ParentTaskID      *string    `json:"parent_task_id"`
	Position          int        `json:"position"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// TaskViewResponse is a task with the relations every view renders.
type TaskViewResponse struct {
	TaskResponse
	Labels   []domain.Label `json:"labels"`
	Subtasks []TaskResponse `json:"subtasks"`
}

// TaskDetailResponse is the full single-task payload.
type TaskDetailResponse struct {
	TaskViewResponse
	Reminders   []domain.Reminder      `json:"reminders"`
	Attachments []domain.Attachment    `json:"attachments"`
	Activity    []domain.ActivityEntry `json:"activity"`
}

// SearchResultResponse carries the matcher score alongside the task.
type SearchResultResponse struct {
	TaskViewResponse
	Score int `json:"score"`
}

func NewTaskResponse(t domain.Task) TaskResponse {
	return TaskResponse{
		ID:                t.ID,
		ListID:            t.ListID,
		Name:              t.Name,
		Description:       t.Description,
		Date:              t.Date,
		Deadline:          t.Deadline,
		Estimate:          clockString(t.EstimateMinutes),
		ActualTime:        clockString(t.ActualMinutes),
		Priority:          string(t.Priority),
		Completed:         t.Completed,
		CompletedAt:       t.CompletedAt,
		Recurrence:        string(t.Recurrence),
		RecurrencePattern: t.RecurrencePattern,
		ParentTaskID:      t.ParentTaskID,
		Position:          t.Position,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

func NewTaskViewResponse(t domain.TaskWithRelations) TaskViewResponse {
	subtasks := make([]TaskResponse, 0, len(t.Subtasks))
	for _, s := range t.Subtasks {
		subtasks = append(subtasks, NewTaskResponse(s))
	}
	labels := t.Labels
	if labels == nil {
		labels = []domain.Label{}
	}
	return TaskViewResponse{
		TaskResponse: NewTaskResponse(t.Task),
		Labels:       labels,
		Subtasks:     subtasks,
	}
}

func NewTaskDetailResponse(d domain.TaskDetails) TaskDetailResponse {
	return TaskDetailResponse{
		TaskViewResponse: NewTaskViewResponse(d.TaskWithRelations),
		Reminders:        emptyIfNil(d.Reminders),
		Attachments:      emptyIfNil(d.Attachments),
		Activity:         emptyIfNil(d.Activity),
	}
}

func NewTaskViewList(tasks []domain.TaskWithRelations) []TaskViewResponse {
	out := make([]TaskViewResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, NewTaskViewResponse(t))
	}
	return out
}

func clockString(minutes *int) *string {
	if minutes == nil {
		return nil
	}
	s := domain.FormatClock(*minutes)
	return &s
}

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
