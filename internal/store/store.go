// Package store defines the access contract shared by the portal's two
// storage backends: the volatile in-memory store and the PostgreSQL
// store. Both honor the same semantics: server-assigned ids, partial
// updates that never upsert, idempotent deletes, and a strict split
// between "row absent" and "backend failed".
package store

import (
	"context"
	"errors"

	"github.com/arpitagupta-cpu/campus-connect-digital/internal/models"
)

// ErrNotFound reports that the target row does not exist. Backends
// return it verbatim so callers can distinguish absence from an
// unreachable backend (any other error).
var ErrNotFound = errors.New("record not found")

// ErrDuplicate reports a uniqueness violation (username, student id).
var ErrDuplicate = errors.New("duplicate record")

// Store is the access-controlled entity store contract. Create methods
// assign a fresh id on the passed record, overwriting any caller value.
// Update methods merge the non-nil patch fields into the existing row
// and return ErrNotFound without inserting when the id is absent.
// Delete methods report whether a row was removed.
type Store interface {
	// Users
	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error

	// Assignments
	ListAssignments(ctx context.Context) ([]models.Assignment, error)
	GetAssignment(ctx context.Context, id int64) (*models.Assignment, error)
	CreateAssignment(ctx context.Context, assignment *models.Assignment) error
	UpdateAssignment(ctx context.Context, id int64, patch models.AssignmentPatch) (*models.Assignment, error)
	DeleteAssignment(ctx context.Context, id int64) (bool, error)

	// Submissions
	ListSubmissions(ctx context.Context, filter models.SubmissionFilter) ([]models.Submission, error)
	CreateSubmission(ctx context.Context, submission *models.Submission) error

	// Resources
	ListResources(ctx context.Context, category string) ([]models.Resource, error)
	GetResource(ctx context.Context, id int64) (*models.Resource, error)
	CreateResource(ctx context.Context, resource *models.Resource) error
	DeleteResource(ctx context.Context, id int64) (bool, error)

	// Notices
	ListNotices(ctx context.Context) ([]models.Notice, error)
	GetNotice(ctx context.Context, id int64) (*models.Notice, error)
	CreateNotice(ctx context.Context, notice *models.Notice) error
	DeleteNotice(ctx context.Context, id int64) (bool, error)

	// Schedule
	ListSchedule(ctx context.Context, day string) ([]models.ScheduleEntry, error)
	CreateScheduleEntry(ctx context.Context, entry *models.ScheduleEntry) error
	UpdateScheduleEntry(ctx context.Context, id int64, patch models.SchedulePatch) (*models.ScheduleEntry, error)

	// Todos
	ListTodos(ctx context.Context, userID int64) ([]models.Todo, error)
	GetTodo(ctx context.Context, id int64) (*models.Todo, error)
	CreateTodo(ctx context.Context, todo *models.Todo) error
	UpdateTodo(ctx context.Context, id int64, patch models.TodoPatch) (*models.Todo, error)
	DeleteTodo(ctx context.Context, id int64) (bool, error)

	// Events
	ListEvents(ctx context.Context) ([]models.Event, error)
	CreateEvent(ctx context.Context, event *models.Event) error

	// Messages
	ListMessages(ctx context.Context, userID int64) ([]models.Message, error)
	GetMessage(ctx context.Context, id int64) (*models.Message, error)
	CreateMessage(ctx context.Context, message *models.Message) error
	MarkMessageRead(ctx context.Context, id int64) (*models.Message, error)

	// Student roster
	ListStudentEntries(ctx context.Context) ([]models.StudentEntry, error)
	GetStudentEntry(ctx context.Context, id int64) (*models.StudentEntry, error)
	GetStudentEntryByStudentID(ctx context.Context, studentID string) (*models.StudentEntry, error)
	CreateStudentEntry(ctx context.Context, entry *models.StudentEntry) error
	UpdateStudentEntry(ctx context.Context, id int64, patch models.StudentEntryPatch) (*models.StudentEntry, error)

	// Audit trail
	CreateAuditLog(ctx context.Context, log *models.AuditLog) error
	ListAuditLogs(ctx context.Context, limit int) ([]models.AuditLog, error)
}
