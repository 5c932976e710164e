package domain

import (
	"encoding/json"
	"time"
)

// Activity actions recorded by the change logger.
const (
	ActionCreated         = "created"
	ActionUpdated         = "updated"
	ActionDeleted         = "deleted"
	ActionLabelAdded      = "label_added"
	ActionLabelRemoved    = "label_removed"
	ActionReminderAdded   = "reminder_added"
	ActionReminderRemoved = "reminder_removed"
	ActionSubtaskAdded    = "subtask_added"
	ActionSubtaskUpdated  = "subtask_updated"
)

// FieldChange records one field's transition inside an "updated" payload.
type FieldChange struct {
	Old any `json:"old"`
	New any `json:"new"`
}

// ActivityEntry is an immutable append-only audit record. It is never
// mutated or deleted except by cascade when its task is deleted.
type ActivityEntry struct {
	ID        string          `json:"id"`
	TaskID    string          `json:"task_id"`
	Action    string          `json:"action"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}
