package models

import "time"

// Event is a calendar entry posted by an admin.
type Event struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Date        time.Time `db:"date" json:"date"`
	Category    string    `db:"category" json:"category"`
	Description *string   `db:"description" json:"description,omitempty"`
}

// EventCreateRequest is the payload for posting a calendar event.
type EventCreateRequest struct {
	Title       string    `json:"title" validate:"required"`
	Date        time.Time `json:"date" validate:"required"`
	Category    string    `json:"category" validate:"required"`
	Description *string   `json:"description,omitempty"`
}
