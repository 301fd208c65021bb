package models

import "time"

// Message is a support-chat message. A nil ReceiverID means broadcast.
type Message struct {
	ID         int64     `db:"id" json:"id"`
	SenderID   int64     `db:"sender_id" json:"senderId"`
	ReceiverID *int64    `db:"receiver_id" json:"receiverId,omitempty"`
	Content    string    `db:"content" json:"content"`
	Timestamp  time.Time `db:"timestamp" json:"timestamp"`
	Read       bool      `db:"read" json:"read"`
}

// MessageCreateRequest is the payload for sending a message. Omitting
// receiverId broadcasts to everyone.
type MessageCreateRequest struct {
	ReceiverID *int64 `json:"receiverId,omitempty"`
	Content    string `json:"content" validate:"required"`
}
