package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

var _ repository.SupplyRepository = (*SupplyRepo)(nil)

const supplyColumns = `id, user_id, name, priority, value, observation, is_purchased, created_at`

// SupplyRepo implementación de SupplyRepository sobre PostgreSQL.
type SupplyRepo struct {
	q Querier
}

// NewSupplyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplyRepository(q Querier) *SupplyRepo {
	return &SupplyRepo{q: q}
}

// Create persiste un nuevo suministro.
func (r *SupplyRepo) Create(supply *entity.Supply) error {
	query := `
		INSERT INTO supplies (` + supplyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		supply.ID, supply.UserID, supply.Name, supply.Priority, supply.Value,
		supply.Observation, supply.IsPurchased, supply.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert supply: %w", err)
	}
	return nil
}

// GetByID obtiene un suministro por ID. Devuelve nil (sin error) si no existe.
func (r *SupplyRepo) GetByID(id string) (*entity.Supply, error) {
	query := `SELECT ` + supplyColumns + ` FROM supplies WHERE id = $1`
	var s entity.Supply
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.UserID, &s.Name, &s.Priority, &s.Value, &s.Observation,
		&s.IsPurchased, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supply: %w", err)
	}
	return &s, nil
}

// ListByUser lista los suministros de un usuario, más recientes primero.
func (r *SupplyRepo) ListByUser(userID string) ([]*entity.Supply, error) {
	query := `SELECT ` + supplyColumns + ` FROM supplies WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list supplies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Supply
	for rows.Next() {
		var s entity.Supply
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.Name, &s.Priority, &s.Value, &s.Observation,
			&s.IsPurchased, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan supply: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza un suministro.
func (r *SupplyRepo) Update(supply *entity.Supply) error {
	query := `
		UPDATE supplies
		SET name = $2, priority = $3, value = $4, observation = $5, is_purchased = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		supply.ID, supply.Name, supply.Priority, supply.Value, supply.Observation,
		supply.IsPurchased,
	)
	if err != nil {
		return fmt.Errorf("update supply: %w", err)
	}
	return nil
}

// Delete elimina un suministro por ID.
func (r *SupplyRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM supplies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supply: %w", err)
	}
	return nil
}
