package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/arpitagupta-cpu/campus-connect-digital/internal/models"
	"github.com/arpitagupta-cpu/campus-connect-digital/internal/store"
	appErrors "github.com/arpitagupta-cpu/campus-connect-digital/pkg/errors"
)

type assignmentStore interface {
	ListAssignments(ctx context.Context) ([]models.Assignment, error)
	GetAssignment(ctx context.Context, id int64) (*models.Assignment, error)
	CreateAssignment(ctx context.Context, assignment *models.Assignment) error
	UpdateAssignment(ctx context.Context, id int64, patch models.AssignmentPatch) (*models.Assignment, error)
	DeleteAssignment(ctx context.Context, id int64) (bool, error)
}

// AssignmentService manages posted coursework.
type AssignmentService struct {
	store     assignmentStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAssignmentService constructs an AssignmentService instance.
func NewAssignmentService(st assignmentStore, validate *validator.Validate, logger *zap.Logger) *AssignmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &AssignmentService{store: st, validator: validate, logger: logger}
}

// List returns all assignments, newest posting first.
func (s *AssignmentService) List(ctx context.Context) ([]models.Assignment, error) {
	assignments, err := s.store.ListAssignments(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list assignments")
	}
	return assignments, nil
}

// Get returns a single assignment by id.
func (s *AssignmentService) Get(ctx context.Context, id int64) (*models.Assignment, error) {
	assignment, err := s.store.GetAssignment(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "assignment not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch assignment")
	}
	return assignment, nil
}

// Create posts a new assignment. Status defaults to pending.
func (s *AssignmentService) Create(ctx context.Context, req models.AssignmentCreateRequest) (*models.Assignment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid assignment payload")
	}

	status := models.AssignmentPending
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, appErrors.Clone(appErrors.ErrValidation, "unknown assignment status")
		}
		status = *req.Status
	}

	assignment := &models.Assignment{
		Title:       req.Title,
		Course:      req.Course,
		CourseCode:  req.CourseCode,
		DueDate:     req.DueDate,
		Status:      status,
		Description: req.Description,
		PostedDate:  time.Now().UTC(),
		FileURL:     req.FileURL,
	}
	if err := s.store.CreateAssignment(ctx, assignment); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create assignment")
	}
	return assignment, nil
}

// Update merges the patch into an existing assignment. A missing id is
// a not-found, never an insert.
func (s *AssignmentService) Update(ctx context.Context, id int64, patch models.AssignmentPatch) (*models.Assignment, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown assignment status")
	}

	assignment, err := s.store.UpdateAssignment(ctx, id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "assignment not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update assignment")
	}
	return assignment, nil
}

// Delete removes an assignment. Deleting an absent id is a not-found.
func (s *AssignmentService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.store.DeleteAssignment(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete assignment")
	}
	if !deleted {
		return appErrors.Clone(appErrors.ErrNotFound, "assignment not found")
	}
	return nil
}
