package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

var _ repository.RoomRepository = (*RoomRepo)(nil)

// RoomRepo implementación de RoomRepository sobre PostgreSQL.
// La lista de ítems de la sala se guarda como jsonb en la misma fila.
type RoomRepo struct {
	q Querier
}

// NewRoomRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRoomRepository(q Querier) *RoomRepo {
	return &RoomRepo{q: q}
}

// Create persiste una nueva sala.
func (r *RoomRepo) Create(room *entity.Room) error {
	items, err := json.Marshal(room.Items)
	if err != nil {
		return fmt.Errorf("marshal room items: %w", err)
	}
	query := `
		INSERT INTO rooms (id, user_id, name, items, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err = r.q.Exec(context.Background(), query,
		room.ID, room.UserID, room.Name, items, room.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert room: %w", err)
	}
	return nil
}

// GetByID obtiene una sala por ID. Devuelve nil (sin error) si no existe.
func (r *RoomRepo) GetByID(id string) (*entity.Room, error) {
	query := `SELECT id, user_id, name, items, created_at FROM rooms WHERE id = $1`
	var room entity.Room
	var items []byte
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&room.ID, &room.UserID, &room.Name, &items, &room.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get room: %w", err)
	}
	if err := json.Unmarshal(items, &room.Items); err != nil {
		return nil, fmt.Errorf("unmarshal room items: %w", err)
	}
	return &room, nil
}

// ListByUser lista las salas de un usuario, más recientes primero.
func (r *RoomRepo) ListByUser(userID string) ([]*entity.Room, error) {
	query := `SELECT id, user_id, name, items, created_at FROM rooms WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	var list []*entity.Room
	for rows.Next() {
		var room entity.Room
		var items []byte
		if err := rows.Scan(&room.ID, &room.UserID, &room.Name, &items, &room.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		if err := json.Unmarshal(items, &room.Items); err != nil {
			return nil, fmt.Errorf("unmarshal room items: %w", err)
		}
		list = append(list, &room)
	}
	return list, rows.Err()
}

// Update actualiza una sala, incluida su lista embebida de ítems.
func (r *RoomRepo) Update(room *entity.Room) error {
	items, err := json.Marshal(room.Items)
	if err != nil {
		return fmt.Errorf("marshal room items: %w", err)
	}
	query := `UPDATE rooms SET name = $2, items = $3 WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query, room.ID, room.Name, items)
	if err != nil {
		return fmt.Errorf("update room: %w", err)
	}
	return nil
}

// Delete elimina una sala (y con la fila, su lista embebida de ítems).
func (r *RoomRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete room: %w", err)
	}
	return nil
}
