package spool

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Entry is an activity record waiting to reach the primary store.
type Entry struct {
	ID        string          `json:"id"`
	TaskID    string          `json:"task_id"`
	Action    string          `json:"action"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
	Retries   int             `json:"retries"`

	bucketKey []byte
}

func (e *Entry) normalize() {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
}
