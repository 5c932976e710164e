package domain

import "time"

// Label is a named tag associated many-to-many with tasks. Deleting a
// label removes only its task associations; tasks are untouched.
type Label struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
