package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arpitagupta-cpu/campus-connect-digital/internal/models"
	"github.com/arpitagupta-cpu/campus-connect-digital/internal/store/memstore"
	appErrors "github.com/arpitagupta-cpu/campus-connect-digital/pkg/errors"
)

func TestTodoCreateAndList(t *testing.T) {
	svc := NewTodoService(memstore.New(), nil, nil)
	ctx := context.Background()

	todo, err := svc.Create(ctx, 1, models.TodoCreateRequest{Text: "revise"})
	require.NoError(t, err)
	assert.Positive(t, todo.ID)
	assert.Equal(t, int64(1), todo.UserID)

	todos, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, "revise", todos[0].Text)
}

func TestTodoCrossUserUpdateRejectedWithoutMutating(t *testing.T) {
	st := memstore.New()
	svc := NewTodoService(st, nil, nil)
	ctx := context.Background()

	owned, err := svc.Create(ctx, 1, models.TodoCreateRequest{Text: "original"})
	require.NoError(t, err)

	text := "hijacked"
	_, err = svc.Update(ctx, 2, owned.ID, models.TodoPatch{Text: &text})
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)

	unchanged, err := st.GetTodo(ctx, owned.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", unchanged.Text)
}

func TestTodoCrossUserDeleteRejected(t *testing.T) {
	st := memstore.New()
	svc := NewTodoService(st, nil, nil)
	ctx := context.Background()

	owned, err := svc.Create(ctx, 1, models.TodoCreateRequest{Text: "keep me"})
	require.NoError(t, err)

	err = svc.Delete(ctx, 2, owned.ID)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)

	_, err = st.GetTodo(ctx, owned.ID)
	assert.NoError(t, err)
}

func TestTodoToggleCompleted(t *testing.T) {
	svc := NewTodoService(memstore.New(), nil, nil)
	ctx := context.Background()

	todo, err := svc.Create(ctx, 1, models.TodoCreateRequest{Text: "revise"})
	require.NoError(t, err)

	completed := true
	updated, err := svc.Update(ctx, 1, todo.ID, models.TodoPatch{Completed: &completed})
	require.NoError(t, err)
	assert.True(t, updated.Completed)

	completed = false
	updated, err = svc.Update(ctx, 1, todo.ID, models.TodoPatch{Completed: &completed})
	require.NoError(t, err)
	assert.False(t, updated.Completed)
}

func TestTodoDeleteIsTerminal(t *testing.T) {
	svc := NewTodoService(memstore.New(), nil, nil)
	ctx := context.Background()

	todo, err := svc.Create(ctx, 1, models.TodoCreateRequest{Text: "once"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, 1, todo.ID))

	err = svc.Delete(ctx, 1, todo.ID)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestTodoCreateValidation(t *testing.T) {
	svc := NewTodoService(memstore.New(), nil, nil)

	_, err := svc.Create(context.Background(), 1, models.TodoCreateRequest{})
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}
