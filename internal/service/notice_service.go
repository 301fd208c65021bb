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

type noticeStore interface {
	ListNotices(ctx context.Context) ([]models.Notice, error)
	GetNotice(ctx context.Context, id int64) (*models.Notice, error)
	CreateNotice(ctx context.Context, notice *models.Notice) error
	DeleteNotice(ctx context.Context, id int64) (bool, error)
}

// NoticeService manages announcements. Expired notices stay listed;
// filtering on expiryDate is left to clients.
type NoticeService struct {
	store     noticeStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewNoticeService constructs a NoticeService instance.
func NewNoticeService(st noticeStore, validate *validator.Validate, logger *zap.Logger) *NoticeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &NoticeService{store: st, validator: validate, logger: logger}
}

// List returns all notices, newest posting first.
func (s *NoticeService) List(ctx context.Context) ([]models.Notice, error) {
	notices, err := s.store.ListNotices(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list notices")
	}
	return notices, nil
}

// Get returns a single notice by id.
func (s *NoticeService) Get(ctx context.Context, id int64) (*models.Notice, error) {
	notice, err := s.store.GetNotice(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "notice not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch notice")
	}
	return notice, nil
}

// Create posts a new notice.
func (s *NoticeService) Create(ctx context.Context, req models.NoticeCreateRequest) (*models.Notice, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid notice payload")
	}

	notice := &models.Notice{
		Title:      req.Title,
		Content:    req.Content,
		Category:   req.Category,
		PostedDate: time.Now().UTC(),
		ExpiryDate: req.ExpiryDate,
	}
	if err := s.store.CreateNotice(ctx, notice); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create notice")
	}
	return notice, nil
}

// Delete removes a notice. Deleting an absent id is a not-found.
func (s *NoticeService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.store.DeleteNotice(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete notice")
	}
	if !deleted {
		return appErrors.Clone(appErrors.ErrNotFound, "notice not found")
	}
	return nil
}
