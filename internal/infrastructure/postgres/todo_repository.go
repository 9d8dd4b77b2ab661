package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

var _ repository.TodoRepository = (*TodoRepo)(nil)

// TodoRepo implementación de TodoRepository sobre PostgreSQL.
type TodoRepo struct {
	q Querier
}

// NewTodoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTodoRepository(q Querier) *TodoRepo {
	return &TodoRepo{q: q}
}

// Create persiste una nueva tarea.
func (r *TodoRepo) Create(todo *entity.Todo) error {
	query := `
		INSERT INTO todos (id, user_id, task, is_done, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		todo.ID, todo.UserID, todo.Task, todo.IsDone, todo.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert todo: %w", err)
	}
	return nil
}

// GetByID obtiene una tarea por ID. Devuelve nil (sin error) si no existe.
func (r *TodoRepo) GetByID(id string) (*entity.Todo, error) {
	query := `SELECT id, user_id, task, is_done, created_at FROM todos WHERE id = $1`
	var t entity.Todo
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.UserID, &t.Task, &t.IsDone, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get todo: %w", err)
	}
	return &t, nil
}

// ListByUser lista las tareas de un usuario, más recientes primero.
func (r *TodoRepo) ListByUser(userID string) ([]*entity.Todo, error) {
	query := `SELECT id, user_id, task, is_done, created_at FROM todos WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Todo
	for rows.Next() {
		var t entity.Todo
		if err := rows.Scan(&t.ID, &t.UserID, &t.Task, &t.IsDone, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan todo: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Update actualiza una tarea.
func (r *TodoRepo) Update(todo *entity.Todo) error {
	query := `UPDATE todos SET task = $2, is_done = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, todo.ID, todo.Task, todo.IsDone)
	if err != nil {
		return fmt.Errorf("update todo: %w", err)
	}
	return nil
}

// Delete elimina una tarea por ID.
func (r *TodoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM todos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	return nil
}
