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

const resourceColumns = `id, title, course_code, category, file_type, file_size, file_url, upload_date`

func (s *Store) ListResources(ctx context.Context, category string) ([]models.Resource, error) {
	query := fmt.Sprintf(`SELECT %s FROM resources`, resourceColumns)
	var args []interface{}
	if category != "" {
		query += " WHERE category = $1"
		args = append(args, category)
	}
	query += " ORDER BY upload_date DESC, id DESC"

	resources := []models.Resource{}
	if err := s.db.SelectContext(ctx, &resources, query, args...); err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	return resources, nil
}

func (s *Store) GetResource(ctx context.Context, id int64) (*models.Resource, error) {
	query := fmt.Sprintf(`SELECT %s FROM resources WHERE id = $1`, resourceColumns)
	var resource models.Resource
	if err := s.db.GetContext(ctx, &resource, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("get resource: %w", err)
	}
	return &resource, nil
}

func (s *Store) CreateResource(ctx context.Context, resource *models.Resource) error {
	if resource.UploadDate.IsZero() {
		resource.UploadDate = time.Now().UTC()
	}
	const query = `INSERT INTO resources (title, course_code, category, file_type, file_size, file_url, upload_date)
VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	err := s.db.QueryRowxContext(ctx, query,
		resource.Title, resource.CourseCode, resource.Category, resource.FileType,
		resource.FileSize, resource.FileURL, resource.UploadDate,
	).Scan(&resource.ID)
	if err != nil {
		return fmt.Errorf("create resource: %w", err)
	}
	return nil
}

func (s *Store) DeleteResource(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM resources WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete resource: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete resource: %w", err)
	}
	return n > 0, nil
}
