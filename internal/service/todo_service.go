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

type todoStore interface {
	ListTodos(ctx context.Context, userID int64) ([]models.Todo, error)
	GetTodo(ctx context.Context, id int64) (*models.Todo, error)
	CreateTodo(ctx context.Context, todo *models.Todo) error
	UpdateTodo(ctx context.Context, id int64, patch models.TodoPatch) (*models.Todo, error)
	DeleteTodo(ctx context.Context, id int64) (bool, error)
}

// TodoService manages personal checklist items. Every operation is
// scoped to the calling user; another user's todo behaves as if it
// does not exist.
type TodoService struct {
	store     todoStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTodoService constructs a TodoService instance.
func NewTodoService(st todoStore, validate *validator.Validate, logger *zap.Logger) *TodoService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &TodoService{store: st, validator: validate, logger: logger}
}

// List returns the caller's todos, newest first.
func (s *TodoService) List(ctx context.Context, userID int64) ([]models.Todo, error) {
	todos, err := s.store.ListTodos(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list todos")
	}
	return todos, nil
}

// Create adds a todo owned by the caller.
func (s *TodoService) Create(ctx context.Context, userID int64, req models.TodoCreateRequest) (*models.Todo, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid todo payload")
	}

	todo := &models.Todo{
		UserID:    userID,
		Text:      req.Text,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.CreateTodo(ctx, todo); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create todo")
	}
	return todo, nil
}

// Update merges the patch into the caller's todo. A todo owned by
// someone else is reported as not found and left untouched.
func (s *TodoService) Update(ctx context.Context, userID, id int64, patch models.TodoPatch) (*models.Todo, error) {
	if err := s.authorize(ctx, userID, id); err != nil {
		return nil, err
	}

	todo, err := s.store.UpdateTodo(ctx, id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "todo not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update todo")
	}
	return todo, nil
}

// Delete removes the caller's todo.
func (s *TodoService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.authorize(ctx, userID, id); err != nil {
		return err
	}

	deleted, err := s.store.DeleteTodo(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete todo")
	}
	if !deleted {
		return appErrors.Clone(appErrors.ErrNotFound, "todo not found")
	}
	return nil
}

func (s *TodoService) authorize(ctx context.Context, userID, id int64) error {
	todo, err := s.store.GetTodo(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return appErrors.Clone(appErrors.ErrNotFound, "todo not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch todo")
	}
	if todo.UserID != userID {
		return appErrors.Clone(appErrors.ErrNotFound, "todo not found")
	}
	return nil
}
