package pgstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/arpitagupta-cpu/campus-connect-digital/internal/models"
	"github.com/arpitagupta-cpu/campus-connect-digital/internal/store"
)

const rosterColumns = `id, student_id, section, department, year, semester, assigned, user_id`

func (s *Store) ListStudentEntries(ctx context.Context) ([]models.StudentEntry, error) {
	query := fmt.Sprintf(`SELECT %s FROM student_roster ORDER BY id`, rosterColumns)
	entries := []models.StudentEntry{}
	if err := s.db.SelectContext(ctx, &entries, query); err != nil {
		return nil, fmt.Errorf("list student roster: %w", err)
	}
	return entries, nil
}

func (s *Store) GetStudentEntry(ctx context.Context, id int64) (*models.StudentEntry, error) {
	query := fmt.Sprintf(`SELECT %s FROM student_roster WHERE id = $1`, rosterColumns)
	var entry models.StudentEntry
	if err := s.db.GetContext(ctx, &entry, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("get student entry: %w", err)
	}
	return &entry, nil
}

func (s *Store) GetStudentEntryByStudentID(ctx context.Context, studentID string) (*models.StudentEntry, error) {
	query := fmt.Sprintf(`SELECT %s FROM student_roster WHERE student_id = $1`, rosterColumns)
	var entry models.StudentEntry
	if err := s.db.GetContext(ctx, &entry, query, studentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("get student entry by student id: %w", err)
	}
	return &entry, nil
}

func (s *Store) CreateStudentEntry(ctx context.Context, entry *models.StudentEntry) error {
	const query = `INSERT INTO student_roster (student_id, section, department, year, semester, assigned, user_id)
VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	err := s.db.QueryRowxContext(ctx, query,
		entry.StudentID, entry.Section, entry.Department, entry.Year, entry.Semester,
		entry.Assigned, entry.UserID,
	).Scan(&entry.ID)
	if err != nil {
		if uniqueViolation(err) {
			return store.ErrDuplicate
		}
		return fmt.Errorf("create student entry: %w", err)
	}
	return nil
}

func (s *Store) UpdateStudentEntry(ctx context.Context, id int64, patch models.StudentEntryPatch) (*models.StudentEntry, error) {
	b := &setBuilder{}
	if patch.Section != nil {
		b.add("section", *patch.Section)
	}
	if patch.Department != nil {
		b.add("department", *patch.Department)
	}
	if patch.Year != nil {
		b.add("year", *patch.Year)
	}
	if patch.Semester != nil {
		b.add("semester", *patch.Semester)
	}
	if patch.Assigned != nil {
		b.add("assigned", *patch.Assigned)
	}
	if patch.UserID != nil {
		b.add("user_id", *patch.UserID)
	}
	if b.empty() {
		return s.GetStudentEntry(ctx, id)
	}
	query := fmt.Sprintf(`UPDATE student_roster SET %s WHERE id = $%d RETURNING %s`, b.set(), b.next(), rosterColumns)
	args := append(b.args, id)
	var entry models.StudentEntry
	if err := s.db.GetContext(ctx, &entry, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("update student entry: %w", err)
	}
	return &entry, nil
}
