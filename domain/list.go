package domain

import "time"

// List is a named bucket for tasks. Exactly one list is the default
// ("Inbox"); it is created at store initialization and cannot be deleted.
type List struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon"`
	Color     string    `json:"color"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
