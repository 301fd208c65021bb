package models

import "time"

// Todo is a personal checklist item owned by exactly one user.
type Todo struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"userId"`
	Text      string    `db:"text" json:"text"`
	Completed bool      `db:"completed" json:"completed"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// TodoCreateRequest is the payload for adding a checklist item.
type TodoCreateRequest struct {
	Text string `json:"text" validate:"required"`
}

// TodoPatch holds the mutable todo fields for partial updates.
type TodoPatch struct {
	Text      *string `json:"text,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}
