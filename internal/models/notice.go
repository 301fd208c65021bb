package models

import "time"

// Notice is an announcement visible to all authenticated users. Expired
// notices are kept; filtering by expiry is a display concern.
type Notice struct {
	ID         int64      `db:"id" json:"id"`
	Title      string     `db:"title" json:"title"`
	Content    string     `db:"content" json:"content"`
	Category   string     `db:"category" json:"category"`
	PostedDate time.Time  `db:"posted_date" json:"postedDate"`
	ExpiryDate *time.Time `db:"expiry_date" json:"expiryDate,omitempty"`
}

// NoticeCreateRequest is the payload for posting a notice.
type NoticeCreateRequest struct {
	Title      string     `json:"title" validate:"required"`
	Content    string     `json:"content" validate:"required"`
	Category   string     `json:"category" validate:"required"`
	ExpiryDate *time.Time `json:"expiryDate,omitempty"`
}
