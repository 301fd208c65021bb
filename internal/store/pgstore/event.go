package pgstore

import (
	"context"
	"fmt"

	"github.com/arpitagupta-cpu/campus-connect-digital/internal/models"
)

const eventColumns = `id, title, date, category, description`

func (s *Store) ListEvents(ctx context.Context) ([]models.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events ORDER BY date DESC, id DESC`, eventColumns)
	events := []models.Event{}
	if err := s.db.SelectContext(ctx, &events, query); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *Store) CreateEvent(ctx context.Context, event *models.Event) error {
	const query = `INSERT INTO events (title, date, category, description)
VALUES ($1, $2, $3, $4) RETURNING id`
	err := s.db.QueryRowxContext(ctx, query,
		event.Title, event.Date, event.Category, event.Description,
	).Scan(&event.ID)
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}
