package repository

import "github.com/jhoicas/estoque-api/internal/domain/entity"

// TodoRepository define el puerto de persistencia para Todo (DIP).
type TodoRepository interface {
	Create(todo *entity.Todo) error
	GetByID(id string) (*entity.Todo, error)
	ListByUser(userID string) ([]*entity.Todo, error)
	Update(todo *entity.Todo) error
	Delete(id string) error
}
