package repository

import "github.com/jhoicas/estoque-api/internal/domain/entity"

// RoomRepository define el puerto de persistencia para Room (DIP).
// La lista embebida de ítems vive en la misma fila (jsonb); borrar la sala la elimina.
type RoomRepository interface {
	Create(room *entity.Room) error
	GetByID(id string) (*entity.Room, error)
	ListByUser(userID string) ([]*entity.Room, error)
	Update(room *entity.Room) error
	Delete(id string) error
}
