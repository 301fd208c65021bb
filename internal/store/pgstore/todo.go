package pgstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/arpitagupta-cpu/campus-connect-digital/internal/models"
	"github.com/arpitagupta-cpu/campus-connect-digital/internal/store"
)

const todoColumns = `id, user_id, text, completed, created_at`

func (s *Store) ListTodos(ctx context.Context, userID int64) ([]models.Todo, error) {
	query := fmt.Sprintf(`SELECT %s FROM todos WHERE user_id = $1 ORDER BY created_at DESC, id DESC`, todoColumns)
	todos := []models.Todo{}
	if err := s.db.SelectContext(ctx, &todos, query, userID); err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return todos, nil
}

func (s *Store) GetTodo(ctx context.Context, id int64) (*models.Todo, error) {
	query := fmt.Sprintf(`SELECT %s FROM todos WHERE id = $1`, todoColumns)
	var todo models.Todo
	if err := s.db.GetContext(ctx, &todo, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("get todo: %w", err)
	}
	return &todo, nil
}

func (s *Store) CreateTodo(ctx context.Context, todo *models.Todo) error {
	if todo.CreatedAt.IsZero() {
		todo.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO todos (user_id, text, completed, created_at)
VALUES ($1, $2, $3, $4) RETURNING id`
	err := s.db.QueryRowxContext(ctx, query,
		todo.UserID, todo.Text, todo.Completed, todo.CreatedAt,
	).Scan(&todo.ID)
	if err != nil {
		return fmt.Errorf("create todo: %w", err)
	}
	return nil
}

func (s *Store) UpdateTodo(ctx context.Context, id int64, patch models.TodoPatch) (*models.Todo, error) {
	b := &setBuilder{}
	if patch.Text != nil {
		b.add("text", *patch.Text)
	}
	if patch.Completed != nil {
		b.add("completed", *patch.Completed)
	}
	if b.empty() {
		return s.GetTodo(ctx, id)
	}
	query := fmt.Sprintf(`UPDATE todos SET %s WHERE id = $%d RETURNING %s`, b.set(), b.next(), todoColumns)
	args := append(b.args, id)
	var todo models.Todo
	if err := s.db.GetContext(ctx, &todo, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("update todo: %w", err)
	}
	return &todo, nil
}

func (s *Store) DeleteTodo(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM todos WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete todo: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete todo: %w", err)
	}
	return n > 0, nil
}
