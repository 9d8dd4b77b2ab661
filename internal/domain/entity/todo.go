package entity

import "time"

// Todo representa una tarea pendiente de un usuario.
type Todo struct {
	ID        string
	UserID    string
	Task      string
	IsDone    bool
	CreatedAt time.Time
}
