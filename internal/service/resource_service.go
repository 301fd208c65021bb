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

type resourceStore interface {
	ListResources(ctx context.Context, category string) ([]models.Resource, error)
	GetResource(ctx context.Context, id int64) (*models.Resource, error)
	CreateResource(ctx context.Context, resource *models.Resource) error
	DeleteResource(ctx context.Context, id int64) (bool, error)
}

// ResourceService manages downloadable course material metadata.
type ResourceService struct {
	store     resourceStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewResourceService constructs a ResourceService instance.
func NewResourceService(st resourceStore, validate *validator.Validate, logger *zap.Logger) *ResourceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &ResourceService{store: st, validator: validate, logger: logger}
}

// List returns resources newest upload first, optionally narrowed to an
// exact category match.
func (s *ResourceService) List(ctx context.Context, category string) ([]models.Resource, error) {
	resources, err := s.store.ListResources(ctx, category)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list resources")
	}
	return resources, nil
}

// Get returns a single resource by id.
func (s *ResourceService) Get(ctx context.Context, id int64) (*models.Resource, error) {
	resource, err := s.store.GetResource(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "resource not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch resource")
	}
	return resource, nil
}

// Create records new resource metadata.
func (s *ResourceService) Create(ctx context.Context, req models.ResourceCreateRequest) (*models.Resource, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid resource payload")
	}

	resource := &models.Resource{
		Title:      req.Title,
		CourseCode: req.CourseCode,
		Category:   req.Category,
		FileType:   req.FileType,
		FileSize:   req.FileSize,
		FileURL:    req.FileURL,
		UploadDate: time.Now().UTC(),
	}
	if err := s.store.CreateResource(ctx, resource); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create resource")
	}
	return resource, nil
}

// Delete removes a resource. Deleting an absent id is a not-found.
func (s *ResourceService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.store.DeleteResource(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete resource")
	}
	if !deleted {
		return appErrors.Clone(appErrors.ErrNotFound, "resource not found")
	}
	return nil
}
