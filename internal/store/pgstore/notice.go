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

const noticeColumns = `id, title, content, category, posted_date, expiry_date`

func (s *Store) ListNotices(ctx context.Context) ([]models.Notice, error) {
	query := fmt.Sprintf(`SELECT %s FROM notices ORDER BY posted_date DESC, id DESC`, noticeColumns)
	notices := []models.Notice{}
	if err := s.db.SelectContext(ctx, &notices, query); err != nil {
		return nil, fmt.Errorf("list notices: %w", err)
	}
	return notices, nil
}

func (s *Store) GetNotice(ctx context.Context, id int64) (*models.Notice, error) {
	query := fmt.Sprintf(`SELECT %s FROM notices WHERE id = $1`, noticeColumns)
	var notice models.Notice
	if err := s.db.GetContext(ctx, &notice, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("get notice: %w", err)
	}
	return &notice, nil
}

func (s *Store) CreateNotice(ctx context.Context, notice *models.Notice) error {
	if notice.PostedDate.IsZero() {
		notice.PostedDate = time.Now().UTC()
	}
	const query = `INSERT INTO notices (title, content, category, posted_date, expiry_date)
VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := s.db.QueryRowxContext(ctx, query,
		notice.Title, notice.Content, notice.Category, notice.PostedDate, notice.ExpiryDate,
	).Scan(&notice.ID)
	if err != nil {
		return fmt.Errorf("create notice: %w", err)
	}
	return nil
}

func (s *Store) DeleteNotice(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM notices WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete notice: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete notice: %w", err)
	}
	return n > 0, nil
}
