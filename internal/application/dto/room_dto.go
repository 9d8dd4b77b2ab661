package dto

import (
	"time"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// CreateRoomRequest entrada para crear una sala con su inventario embebido.
type CreateRoomRequest struct {
	Name  string            `json:"name" validate:"required,min=1,max=200"`
	Items []entity.RoomItem `json:"items"`
}

// UpdateRoomRequest entrada para actualizar una sala.
// Items nil = no tocar la lista; lista vacía = vaciarla.
type UpdateRoomRequest struct {
	Name  *string            `json:"name" validate:"omitempty,min=1,max=200"`
	Items *[]entity.RoomItem `json:"items"`
}

// RoomResponse salida de una sala.
type RoomResponse struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	Name      string            `json:"name"`
	Items     []entity.RoomItem `json:"items"`
	CreatedAt time.Time         `json:"created_at"`
}
