package pgstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/arpitagupta-cpu/campus-connect-digital/internal/models"
)

const submissionColumns = `id, assignment_id, student_id, submission_date, status, grade, feedback`

func (s *Store) ListSubmissions(ctx context.Context, filter models.SubmissionFilter) ([]models.Submission, error) {
	var conditions []string
	var args []interface{}
	if filter.AssignmentID != 0 {
		args = append(args, filter.AssignmentID)
		conditions = append(conditions, fmt.Sprintf("assignment_id = $%d", len(args)))
	}
	if filter.StudentID != 0 {
		args = append(args, filter.StudentID)
		conditions = append(conditions, fmt.Sprintf("student_id = $%d", len(args)))
	}
	query := fmt.Sprintf(`SELECT %s FROM submissions`, submissionColumns)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id"

	submissions := []models.Submission{}
	if err := s.db.SelectContext(ctx, &submissions, query, args...); err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	return submissions, nil
}

func (s *Store) CreateSubmission(ctx context.Context, submission *models.Submission) error {
	const query = `INSERT INTO submissions (assignment_id, student_id, submission_date, status, grade, feedback)
VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := s.db.QueryRowxContext(ctx, query,
		submission.AssignmentID, submission.StudentID, submission.SubmissionDate,
		submission.Status, submission.Grade, submission.Feedback,
	).Scan(&submission.ID)
	if err != nil {
		return fmt.Errorf("create submission: %w", err)
	}
	return nil
}
