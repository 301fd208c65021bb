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

const assignmentColumns = `id, title, course, course_code, due_date, status, description, posted_date, file_url`

func (s *Store) ListAssignments(ctx context.Context) ([]models.Assignment, error) {
	query := fmt.Sprintf(`SELECT %s FROM assignments ORDER BY posted_date DESC, id DESC`, assignmentColumns)
	assignments := []models.Assignment{}
	if err := s.db.SelectContext(ctx, &assignments, query); err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	return assignments, nil
}

func (s *Store) GetAssignment(ctx context.Context, id int64) (*models.Assignment, error) {
	query := fmt.Sprintf(`SELECT %s FROM assignments WHERE id = $1`, assignmentColumns)
	var assignment models.Assignment
	if err := s.db.GetContext(ctx, &assignment, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	return &assignment, nil
}

func (s *Store) CreateAssignment(ctx context.Context, assignment *models.Assignment) error {
	if assignment.PostedDate.IsZero() {
		assignment.PostedDate = time.Now().UTC()
	}
	const query = `INSERT INTO assignments (title, course, course_code, due_date, status, description, posted_date, file_url)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err := s.db.QueryRowxContext(ctx, query,
		assignment.Title, assignment.Course, assignment.CourseCode, assignment.DueDate,
		assignment.Status, assignment.Description, assignment.PostedDate, assignment.FileURL,
	).Scan(&assignment.ID)
	if err != nil {
		return fmt.Errorf("create assignment: %w", err)
	}
	return nil
}

func (s *Store) UpdateAssignment(ctx context.Context, id int64, patch models.AssignmentPatch) (*models.Assignment, error) {
	b := &setBuilder{}
	if patch.Title != nil {
		b.add("title", *patch.Title)
	}
	if patch.Course != nil {
		b.add("course", *patch.Course)
	}
	if patch.CourseCode != nil {
		b.add("course_code", *patch.CourseCode)
	}
	if patch.DueDate != nil {
		b.add("due_date", *patch.DueDate)
	}
	if patch.Status != nil {
		b.add("status", *patch.Status)
	}
	if patch.Description != nil {
		b.add("description", *patch.Description)
	}
	if patch.FileURL != nil {
		b.add("file_url", *patch.FileURL)
	}
	if b.empty() {
		return s.GetAssignment(ctx, id)
	}
	query := fmt.Sprintf(`UPDATE assignments SET %s WHERE id = $%d RETURNING %s`, b.set(), b.next(), assignmentColumns)
	args := append(b.args, id)
	var assignment models.Assignment
	if err := s.db.GetContext(ctx, &assignment, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("update assignment: %w", err)
	}
	return &assignment, nil
}

func (s *Store) DeleteAssignment(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM assignments WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete assignment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete assignment: %w", err)
	}
	return n > 0, nil
}
