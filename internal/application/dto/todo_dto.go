package dto

import "time"

// CreateTodoRequest entrada para crear una tarea.
type CreateTodoRequest struct {
	Task string `json:"task" validate:"required,min=1,max=500"`
}

// UpdateTodoRequest entrada para actualizar una tarea.
type UpdateTodoRequest struct {
	Task   *string `json:"task" validate:"omitempty,min=1,max=500"`
	IsDone *bool   `json:"is_done"`
}

// TodoResponse salida de una tarea.
type TodoResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Task      string    `json:"task"`
	IsDone    bool      `json:"is_done"`
	CreatedAt time.Time `json:"created_at"`
}
