package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/arpitagupta-cpu/campus-connect-digital/internal/models"
	"github.com/arpitagupta-cpu/campus-connect-digital/internal/store"
	appErrors "github.com/arpitagupta-cpu/campus-connect-digital/pkg/errors"
)

type scheduleStore interface {
	ListSchedule(ctx context.Context, day string) ([]models.ScheduleEntry, error)
	CreateScheduleEntry(ctx context.Context, entry *models.ScheduleEntry) error
	UpdateScheduleEntry(ctx context.Context, id int64, patch models.SchedulePatch) (*models.ScheduleEntry, error)
}

// ScheduleService manages the weekly timetable.
type ScheduleService struct {
	store     scheduleStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewScheduleService constructs a ScheduleService instance.
func NewScheduleService(st scheduleStore, validate *validator.Validate, logger *zap.Logger) *ScheduleService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &ScheduleService{store: st, validator: validate, logger: logger}
}

// List returns timetable slots in insertion order, optionally narrowed
// to a single day.
func (s *ScheduleService) List(ctx context.Context, day string) ([]models.ScheduleEntry, error) {
	entries, err := s.store.ListSchedule(ctx, day)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list schedule")
	}
	return entries, nil
}

// Create adds a timetable slot. Status defaults to Active.
func (s *ScheduleService) Create(ctx context.Context, req models.ScheduleCreateRequest) (*models.ScheduleEntry, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid schedule payload")
	}

	status := models.ScheduleActive
	if req.Status != nil {
		if *req.Status != models.ScheduleActive && *req.Status != models.ScheduleCancelled {
			return nil, appErrors.Clone(appErrors.ErrValidation, "unknown schedule status")
		}
		status = *req.Status
	}

	entry := &models.ScheduleEntry{
		Day:        req.Day,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Course:     req.Course,
		CourseCode: req.CourseCode,
		Room:       req.Room,
		Building:   req.Building,
		Type:       req.Type,
		Status:     status,
	}
	if err := s.store.CreateScheduleEntry(ctx, entry); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create schedule entry")
	}
	return entry, nil
}

// Update merges the patch into an existing slot. A missing id is a
// not-found, never an insert.
func (s *ScheduleService) Update(ctx context.Context, id int64, patch models.SchedulePatch) (*models.ScheduleEntry, error) {
	if patch.Status != nil && *patch.Status != models.ScheduleActive && *patch.Status != models.ScheduleCancelled {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown schedule status")
	}

	entry, err := s.store.UpdateScheduleEntry(ctx, id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "schedule entry not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update schedule entry")
	}
	return entry, nil
}
