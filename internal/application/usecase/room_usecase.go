package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// RoomUseCase casos de uso CRUD para salas con inventario embebido.
type RoomUseCase struct {
	repo repository.RoomRepository
}

// NewRoomUseCase construye el caso de uso.
func NewRoomUseCase(repo repository.RoomRepository) *RoomUseCase {
	return &RoomUseCase{repo: repo}
}

// Create crea una sala con su lista de ítems embebida.
func (uc *RoomUseCase) Create(userID string, in dto.CreateRoomRequest) (*dto.RoomResponse, error) {
	items := in.Items
	if items == nil {
		items = []entity.RoomItem{}
	}
	room := &entity.Room{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      in.Name,
		Items:     items,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(room); err != nil {
		return nil, err
	}
	return toRoomResponse(room), nil
}

// List lista las salas del usuario.
func (uc *RoomUseCase) List(userID string) ([]dto.RoomResponse, error) {
	list, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RoomResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toRoomResponse(r))
	}
	return items, nil
}

// Update actualiza una sala. Items nil no toca la lista embebida.
func (uc *RoomUseCase) Update(userID, id string, in dto.UpdateRoomRequest) (*dto.RoomResponse, error) {
	room, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if room == nil || room.UserID != userID {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		room.Name = *in.Name
	}
	if in.Items != nil {
		room.Items = *in.Items
	}
	if err := uc.repo.Update(room); err != nil {
		return nil, err
	}
	return toRoomResponse(room), nil
}

// Delete elimina una sala. La lista embebida de ítems se va con la fila;
// no hay otros efectos en cascada.
func (uc *RoomUseCase) Delete(userID, id string) error {
	room, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if room == nil || room.UserID != userID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toRoomResponse(r *entity.Room) *dto.RoomResponse {
	if r == nil {
		return nil
	}
	return &dto.RoomResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		Name:      r.Name,
		Items:     r.Items,
		CreatedAt: r.CreatedAt,
	}
}
