package models

import "time"

// AssignmentStatus tracks the lifecycle of an assignment.
type AssignmentStatus string

const (
	AssignmentPending   AssignmentStatus = "pending"
	AssignmentSubmitted AssignmentStatus = "submitted"
	AssignmentLate      AssignmentStatus = "late"
	AssignmentGraded    AssignmentStatus = "graded"
)

// Valid reports whether the status is a known lifecycle state.
func (s AssignmentStatus) Valid() bool {
	switch s {
	case AssignmentPending, AssignmentSubmitted, AssignmentLate, AssignmentGraded:
		return true
	}
	return false
}

// Assignment is coursework posted by an admin.
type Assignment struct {
	ID          int64            `db:"id" json:"id"`
	Title       string           `db:"title" json:"title"`
	Course      string           `db:"course" json:"course"`
	CourseCode  string           `db:"course_code" json:"courseCode"`
	DueDate     time.Time        `db:"due_date" json:"dueDate"`
	Status      AssignmentStatus `db:"status" json:"status"`
	Description *string          `db:"description" json:"description,omitempty"`
	PostedDate  time.Time        `db:"posted_date" json:"postedDate"`
	FileURL     *string          `db:"file_url" json:"fileUrl,omitempty"`
}

// AssignmentCreateRequest is the payload for posting a new assignment.
type AssignmentCreateRequest struct {
	Title       string            `json:"title" validate:"required"`
	Course      string            `json:"course" validate:"required"`
	CourseCode  string            `json:"courseCode" validate:"required"`
	DueDate     time.Time         `json:"dueDate" validate:"required"`
	Status      *AssignmentStatus `json:"status,omitempty"`
	Description *string           `json:"description,omitempty"`
	FileURL     *string           `json:"fileUrl,omitempty"`
}

// AssignmentPatch holds the mutable assignment fields for partial updates.
// Nil fields are left untouched.
type AssignmentPatch struct {
	Title       *string           `json:"title,omitempty"`
	Course      *string           `json:"course,omitempty"`
	CourseCode  *string           `json:"courseCode,omitempty"`
	DueDate     *time.Time        `json:"dueDate,omitempty"`
	Status      *AssignmentStatus `json:"status,omitempty"`
	Description *string           `json:"description,omitempty"`
	FileURL     *string           `json:"fileUrl,omitempty"`
}
