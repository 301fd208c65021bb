package pgstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/arpitagupta-cpu/campus-connect-digital/internal/models"
	"github.com/arpitagupta-cpu/campus-connect-digital/internal/store"
)

const messageColumns = `id, sender_id, receiver_id, content, timestamp, read`

func (s *Store) ListMessages(ctx context.Context, userID int64) ([]models.Message, error) {
	// Broadcasts (NULL receiver) are visible to everyone.
	query := fmt.Sprintf(`SELECT %s FROM messages
WHERE sender_id = $1 OR receiver_id = $1 OR receiver_id IS NULL
ORDER BY timestamp DESC, id DESC`, messageColumns)
	messages := []models.Message{}
	if err := s.db.SelectContext(ctx, &messages, query, userID); err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return messages, nil
}

func (s *Store) GetMessage(ctx context.Context, id int64) (*models.Message, error) {
	query := fmt.Sprintf(`SELECT %s FROM messages WHERE id = $1`, messageColumns)
	var message models.Message
	if err := s.db.GetContext(ctx, &message, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("get message: %w", err)
	}
	return &message, nil
}

func (s *Store) CreateMessage(ctx context.Context, message *models.Message) error {
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now().UTC()
	}
	const query = `INSERT INTO messages (sender_id, receiver_id, content, timestamp, read)
VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := s.db.QueryRowxContext(ctx, query,
		message.SenderID, message.ReceiverID, message.Content, message.Timestamp, message.Read,
	).Scan(&message.ID)
	if err != nil {
		return fmt.Errorf("create message: %w", err)
	}
	return nil
}

func (s *Store) MarkMessageRead(ctx context.Context, id int64) (*models.Message, error) {
	query := fmt.Sprintf(`UPDATE messages SET read = TRUE WHERE id = $1 RETURNING %s`, messageColumns)
	var message models.Message
	if err := s.db.GetContext(ctx, &message, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("mark message read: %w", err)
	}
	return &message, nil
}
