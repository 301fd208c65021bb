package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/arpitagupta-cpu/campus-connect-digital/internal/models"
	"github.com/arpitagupta-cpu/campus-connect-digital/internal/session"
	"github.com/arpitagupta-cpu/campus-connect-digital/internal/store"
	appErrors "github.com/arpitagupta-cpu/campus-connect-digital/pkg/errors"
)

type submissionStore interface {
	ListSubmissions(ctx context.Context, filter models.SubmissionFilter) ([]models.Submission, error)
	CreateSubmission(ctx context.Context, submission *models.Submission) error
	GetAssignment(ctx context.Context, id int64) (*models.Assignment, error)
}

// SubmissionService records assignment hand-ins. Re-submission is
// permitted; a student's later submission does not replace an earlier
// one.
type SubmissionService struct {
	store     submissionStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSubmissionService constructs a SubmissionService instance.
func NewSubmissionService(st submissionStore, validate *validator.Validate, logger *zap.Logger) *SubmissionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &SubmissionService{store: st, validator: validate, logger: logger}
}

// List returns submissions for the caller. Admins see every submission
// and may filter by assignment or student; students are always scoped
// to their own hand-ins.
func (s *SubmissionService) List(ctx context.Context, caller session.Identity, filter models.SubmissionFilter) ([]models.Submission, error) {
	if caller.Role != models.RoleAdmin {
		filter.StudentID = caller.UserID
	}

	submissions, err := s.store.ListSubmissions(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list submissions")
	}
	return submissions, nil
}

// Create records a hand-in by the calling student for an existing
// assignment. Submissions after the due date are marked late.
func (s *SubmissionService) Create(ctx context.Context, studentID int64, req models.SubmissionCreateRequest) (*models.Submission, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid submission payload")
	}

	assignment, err := s.store.GetAssignment(ctx, req.AssignmentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrValidation, "assignment does not exist")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to look up assignment")
	}

	now := time.Now().UTC()
	status := models.AssignmentSubmitted
	if now.After(assignment.DueDate) {
		status = models.AssignmentLate
	}

	submission := &models.Submission{
		AssignmentID:   assignment.ID,
		StudentID:      studentID,
		SubmissionDate: &now,
		Status:         status,
	}
	if err := s.store.CreateSubmission(ctx, submission); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create submission")
	}
	return submission, nil
}
