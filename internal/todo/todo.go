// Package todo owns the in-memory todo collection and its mutations.
package todo

import "time"

// Todo is the domain model for a single task record.
type Todo struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Completed bool       `json:"completed"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"` // nil until first edit or toggle
}
