package models

import "time"

// Submission records a student's hand-in for an assignment. Re-submission
// is permitted; no uniqueness holds over (assignment, student).
type Submission struct {
	ID             int64            `db:"id" json:"id"`
	AssignmentID   int64            `db:"assignment_id" json:"assignmentId"`
	StudentID      int64            `db:"student_id" json:"studentId"`
	SubmissionDate *time.Time       `db:"submission_date" json:"submissionDate,omitempty"`
	Status         AssignmentStatus `db:"status" json:"status"`
	Grade          *string          `db:"grade" json:"grade,omitempty"`
	Feedback       *string          `db:"feedback" json:"feedback,omitempty"`
}

// SubmissionCreateRequest is the payload for handing in an assignment.
type SubmissionCreateRequest struct {
	AssignmentID int64 `json:"assignmentId" validate:"required"`
}

// SubmissionFilter narrows submission listings. Zero values mean no filter.
type SubmissionFilter struct {
	AssignmentID int64
	StudentID    int64
}
